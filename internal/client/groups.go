package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/domo-cli/internal/constants"
	"github.com/fivetwenty-io/domo-cli/internal/http"
	"github.com/fivetwenty-io/domo-cli/pkg/domo"
)

// GroupsClient implements domo.GroupsClient.
type GroupsClient struct {
	httpClient *http.Client
	groups     *resource[domo.Group]
}

// NewGroupsClient creates a new groups client.
func NewGroupsClient(httpClient *http.Client) *GroupsClient {
	return &GroupsClient{
		httpClient: httpClient,
		groups:     newResource[domo.Group](httpClient, constants.GroupsPath, "group"),
	}
}

// List implements domo.GroupsClient.List.
func (c *GroupsClient) List(ctx context.Context, opts *domo.ListOptions) ([]domo.Group, error) {
	return c.groups.list(ctx, opts)
}

// ListAll implements domo.GroupsClient.ListAll.
func (c *GroupsClient) ListAll(ctx context.Context) ([]domo.Group, error) {
	return listAll(ctx, c.List)
}

// Create implements domo.GroupsClient.Create.
func (c *GroupsClient) Create(ctx context.Context, group *domo.Group) (*domo.Group, error) {
	return c.groups.create(ctx, group)
}

// Get implements domo.GroupsClient.Get.
func (c *GroupsClient) Get(ctx context.Context, id string) (*domo.Group, error) {
	return c.groups.get(ctx, id)
}

// Update implements domo.GroupsClient.Update.
func (c *GroupsClient) Update(ctx context.Context, id string, group *domo.Group) (*domo.Group, error) {
	return c.groups.put(ctx, id, group)
}

// Delete implements domo.GroupsClient.Delete.
func (c *GroupsClient) Delete(ctx context.Context, id string) error {
	return c.groups.delete(ctx, id)
}

// ListUsers implements domo.GroupsClient.ListUsers.
func (c *GroupsClient) ListUsers(ctx context.Context, id string) ([]int64, error) {
	resp, err := c.httpClient.Get(ctx, c.groups.path(id)+"/users", nil)
	if err != nil {
		return nil, fmt.Errorf("listing group users: %w", err)
	}

	var userIDs []int64

	err = json.Unmarshal(resp.Body, &userIDs)
	if err != nil {
		return nil, fmt.Errorf("parsing group users list: %w", err)
	}

	return userIDs, nil
}

// AddUser implements domo.GroupsClient.AddUser.
func (c *GroupsClient) AddUser(ctx context.Context, id, userID string) error {
	_, err := c.httpClient.Put(ctx, c.groups.path(id)+"/users/"+url.PathEscape(userID), nil)
	if err != nil {
		return fmt.Errorf("adding user to group: %w", err)
	}

	return nil
}

// RemoveUser implements domo.GroupsClient.RemoveUser.
func (c *GroupsClient) RemoveUser(ctx context.Context, id, userID string) error {
	_, err := c.httpClient.Delete(ctx, c.groups.path(id)+"/users/"+url.PathEscape(userID))
	if err != nil {
		return fmt.Errorf("removing user from group: %w", err)
	}

	return nil
}
