package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/domo-cli/internal/constants"
	"github.com/fivetwenty-io/domo-cli/internal/http"
	"github.com/fivetwenty-io/domo-cli/pkg/domo"
)

// UsersClient implements domo.UsersClient.
type UsersClient struct {
	httpClient *http.Client
	users      *resource[domo.User]
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *http.Client) *UsersClient {
	return &UsersClient{
		httpClient: httpClient,
		users:      newResource[domo.User](httpClient, constants.UsersPath, "user"),
	}
}

// List implements domo.UsersClient.List.
func (c *UsersClient) List(ctx context.Context, opts *domo.ListOptions) ([]domo.User, error) {
	return c.users.list(ctx, opts)
}

// ListAll implements domo.UsersClient.ListAll.
func (c *UsersClient) ListAll(ctx context.Context) ([]domo.User, error) {
	return listAll(ctx, c.List)
}

// BulkByEmail implements domo.UsersClient.BulkByEmail.
func (c *UsersClient) BulkByEmail(ctx context.Context, emails []string) ([]domo.User, error) {
	resp, err := c.httpClient.Post(ctx, constants.UsersPath+"/bulk/emails", emails)
	if err != nil {
		return nil, fmt.Errorf("looking up users by email: %w", err)
	}

	var users []domo.User

	err = json.Unmarshal(resp.Body, &users)
	if err != nil {
		return nil, fmt.Errorf("parsing users list: %w", err)
	}

	return users, nil
}

// Create implements domo.UsersClient.Create.
func (c *UsersClient) Create(ctx context.Context, user *domo.User) (*domo.User, error) {
	return c.users.create(ctx, user)
}

// Get implements domo.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, id string) (*domo.User, error) {
	return c.users.get(ctx, id)
}

// Update implements domo.UsersClient.Update.
func (c *UsersClient) Update(ctx context.Context, id string, user *domo.User) (*domo.User, error) {
	return c.users.put(ctx, id, user)
}

// Delete implements domo.UsersClient.Delete.
func (c *UsersClient) Delete(ctx context.Context, id string) error {
	return c.users.delete(ctx, id)
}
