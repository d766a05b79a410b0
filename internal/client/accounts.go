package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/domo-cli/internal/constants"
	"github.com/fivetwenty-io/domo-cli/internal/http"
	"github.com/fivetwenty-io/domo-cli/pkg/domo"
)

// AccountsClient implements domo.AccountsClient.
type AccountsClient struct {
	httpClient *http.Client
	accounts   *resource[domo.Account]
	types      *resource[domo.AccountType]
}

// NewAccountsClient creates a new accounts client.
func NewAccountsClient(httpClient *http.Client) *AccountsClient {
	return &AccountsClient{
		httpClient: httpClient,
		accounts:   newResource[domo.Account](httpClient, constants.AccountsPath, "account"),
		types:      newResource[domo.AccountType](httpClient, constants.AccountTypesPath, "account type"),
	}
}

// List implements domo.AccountsClient.List.
func (c *AccountsClient) List(ctx context.Context, opts *domo.ListOptions) ([]domo.Account, error) {
	return c.accounts.list(ctx, opts)
}

// ListAll implements domo.AccountsClient.ListAll.
func (c *AccountsClient) ListAll(ctx context.Context) ([]domo.Account, error) {
	return listAll(ctx, c.List)
}

// Create implements domo.AccountsClient.Create.
func (c *AccountsClient) Create(ctx context.Context, account *domo.Account) (*domo.Account, error) {
	return c.accounts.create(ctx, account)
}

// Get implements domo.AccountsClient.Get.
func (c *AccountsClient) Get(ctx context.Context, id string) (*domo.Account, error) {
	return c.accounts.get(ctx, id)
}

// Update implements domo.AccountsClient.Update.
func (c *AccountsClient) Update(ctx context.Context, id string, account *domo.Account) error {
	_, err := c.httpClient.Patch(ctx, c.accounts.path(id), account)
	if err != nil {
		return fmt.Errorf("updating account: %w", err)
	}

	return nil
}

// Delete implements domo.AccountsClient.Delete.
func (c *AccountsClient) Delete(ctx context.Context, id string) error {
	return c.accounts.delete(ctx, id)
}

// Share implements domo.AccountsClient.Share.
func (c *AccountsClient) Share(ctx context.Context, id string, userID int64) error {
	share := &domo.AccountShare{User: domo.AccountShareUser{ID: userID}}

	_, err := c.httpClient.Post(ctx, c.accounts.path(id)+"/shares", share)
	if err != nil {
		return fmt.Errorf("sharing account: %w", err)
	}

	return nil
}

// ListTypes implements domo.AccountsClient.ListTypes.
func (c *AccountsClient) ListTypes(ctx context.Context, opts *domo.ListOptions) ([]domo.AccountType, error) {
	return c.types.list(ctx, opts)
}

// GetType implements domo.AccountsClient.GetType.
func (c *AccountsClient) GetType(ctx context.Context, id string) (*domo.AccountType, error) {
	return c.types.get(ctx, id)
}
