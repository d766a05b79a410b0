package domoclient

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/domo-cli/internal/client"
	"github.com/fivetwenty-io/domo-cli/internal/constants"
	"github.com/fivetwenty-io/domo-cli/pkg/domo"
)

// New creates a new Domo API client. The config is copied; an empty host
// falls back to the public API host.
func New(config *domo.Config) (domo.Client, error) {
	if config == nil {
		return nil, domo.ErrConfigRequired
	}

	resolved := *config
	resolved.Host = NormalizeHost(config.Host)

	apiClient, err := client.New(&resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithClientCredentials creates a client for host using client credentials.
func NewWithClientCredentials(host, clientID, clientSecret string) (domo.Client, error) {
	return New(&domo.Config{
		Host:         host,
		ClientID:     clientID,
		ClientSecret: clientSecret,
	})
}

// NewWebhooks creates a client for posting to inbound webhook URLs.
func NewWebhooks(config *domo.Config) domo.WebhooksClient {
	return client.NewWebhooks(config)
}

// NormalizeHost trims a trailing slash and adds "https://" when no scheme is
// present. An empty host becomes the public API host.
func NormalizeHost(host string) string {
	host = strings.TrimSuffix(strings.TrimSpace(host), "/")
	if host == "" {
		return constants.DefaultHost
	}

	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "https://" + host
	}

	return host
}
