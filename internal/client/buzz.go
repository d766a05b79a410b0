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

// integrationList and subscriptionList are the wrapped list bodies returned
// by the Buzz API.
type integrationList struct {
	Integrations []domo.Integration `json:"integrations"`
}

type subscriptionList struct {
	Subscriptions []domo.Subscription `json:"subscriptions"`
}

// BuzzClient implements domo.BuzzClient.
type BuzzClient struct {
	httpClient   *http.Client
	integrations *resource[domo.Integration]
}

// NewBuzzClient creates a new Buzz client.
func NewBuzzClient(httpClient *http.Client) *BuzzClient {
	return &BuzzClient{
		httpClient:   httpClient,
		integrations: newResource[domo.Integration](httpClient, constants.IntegrationsPath, "integration"),
	}
}

// ListIntegrations implements domo.BuzzClient.ListIntegrations.
func (c *BuzzClient) ListIntegrations(ctx context.Context) ([]domo.Integration, error) {
	resp, err := c.httpClient.Get(ctx, constants.IntegrationsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("listing integrations: %w", err)
	}

	var list integrationList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing integrations list: %w", err)
	}

	return list.Integrations, nil
}

// CreateIntegration implements domo.BuzzClient.CreateIntegration.
func (c *BuzzClient) CreateIntegration(ctx context.Context, integration *domo.Integration) (*domo.Integration, error) {
	return c.integrations.create(ctx, integration)
}

// GetIntegration implements domo.BuzzClient.GetIntegration.
func (c *BuzzClient) GetIntegration(ctx context.Context, id string) (*domo.Integration, error) {
	return c.integrations.get(ctx, id)
}

// DeleteIntegration implements domo.BuzzClient.DeleteIntegration.
func (c *BuzzClient) DeleteIntegration(ctx context.Context, id string) error {
	return c.integrations.delete(ctx, id)
}

// ListSubscriptions implements domo.BuzzClient.ListSubscriptions.
func (c *BuzzClient) ListSubscriptions(ctx context.Context, id string) ([]domo.Subscription, error) {
	resp, err := c.httpClient.Get(ctx, c.subscriptionsPath(id), nil)
	if err != nil {
		return nil, fmt.Errorf("listing subscriptions: %w", err)
	}

	var list subscriptionList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, fmt.Errorf("parsing subscriptions list: %w", err)
	}

	return list.Subscriptions, nil
}

// CreateSubscription implements domo.BuzzClient.CreateSubscription.
func (c *BuzzClient) CreateSubscription(ctx context.Context, id string, subscription *domo.Subscription) (*domo.Subscription, error) {
	resp, err := c.httpClient.Post(ctx, c.subscriptionsPath(id), subscription)
	if err != nil {
		return nil, fmt.Errorf("creating subscription: %w", err)
	}

	return decode[domo.Subscription](resp, "subscription")
}

// DeleteSubscription implements domo.BuzzClient.DeleteSubscription.
func (c *BuzzClient) DeleteSubscription(ctx context.Context, id, subscriptionID string) error {
	_, err := c.httpClient.Delete(ctx, c.subscriptionsPath(id)+"/"+url.PathEscape(subscriptionID))
	if err != nil {
		return fmt.Errorf("deleting subscription: %w", err)
	}

	return nil
}

func (c *BuzzClient) subscriptionsPath(id string) string {
	return c.integrations.path(id) + "/subscriptions"
}
