package client

import (
	"context"
	"fmt"
	nethttp "net/http"

	"github.com/fivetwenty-io/domo-cli/internal/constants"
	"github.com/fivetwenty-io/domo-cli/internal/http"
	"github.com/fivetwenty-io/domo-cli/pkg/domo"
)

// integrationMessage is the body accepted by a Buzz integration webhook.
type integrationMessage struct {
	Content integrationContent `json:"content"`
}

type integrationContent struct {
	Text string `json:"text"`
}

// WebhooksClient implements domo.WebhooksClient. Webhook URLs are absolute,
// so the underlying client has no base URL and no token source.
type WebhooksClient struct {
	httpClient *http.Client
}

// NewWebhooksClient creates a new webhooks client.
func NewWebhooksClient(httpClient *http.Client) *WebhooksClient {
	return &WebhooksClient{
		httpClient: httpClient,
	}
}

// PostIntegrationMessage implements domo.WebhooksClient.PostIntegrationMessage.
func (c *WebhooksClient) PostIntegrationMessage(ctx context.Context, url, token, text string) error {
	_, err := c.httpClient.Do(ctx, &http.Request{
		Method:  nethttp.MethodPost,
		Path:    url,
		Body:    &integrationMessage{Content: integrationContent{Text: text}},
		Headers: map[string]string{constants.BuzzBotTokenHeader: token},
	})
	if err != nil {
		return fmt.Errorf("posting integration message: %w", err)
	}

	return nil
}

// PostBuzzMessage implements domo.WebhooksClient.PostBuzzMessage.
func (c *WebhooksClient) PostBuzzMessage(ctx context.Context, url string, message *domo.BuzzMessage) error {
	_, err := c.httpClient.Post(ctx, url, message)
	if err != nil {
		return fmt.Errorf("posting buzz message: %w", err)
	}

	return nil
}

// PostDataSetJSON implements domo.WebhooksClient.PostDataSetJSON.
func (c *WebhooksClient) PostDataSetJSON(ctx context.Context, url string, row interface{}) error {
	_, err := c.httpClient.Post(ctx, url, row)
	if err != nil {
		return fmt.Errorf("posting dataset row: %w", err)
	}

	return nil
}
