package client

import (
	"github.com/fivetwenty-io/domo-cli/internal/auth"
	"github.com/fivetwenty-io/domo-cli/internal/http"
	"github.com/fivetwenty-io/domo-cli/pkg/domo"
)

// Client implements the domo.Client interface. Each resource family talks
// through its own HTTP client bound to the token scope that family needs.
type Client struct {
	baseURL  string
	provider *auth.Provider

	// Resource clients
	accounts *AccountsClient
	datasets *DataSetsClient
	groups   *GroupsClient
	pages    *PagesClient
	streams  *StreamsClient
	users    *UsersClient
	workflow *WorkflowClient
	buzz     *BuzzClient
	activity *ActivityClient
	webhooks *WebhooksClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *domo.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	return httpOpts
}

// New creates a client for config.Host. The credentials are exchanged for a
// scoped token on every request.
func New(config *domo.Config) (*Client, error) {
	if config == nil {
		return nil, domo.ErrConfigRequired
	}

	if config.Host == "" {
		return nil, domo.ErrHostRequired
	}

	if config.ClientID == "" || config.ClientSecret == "" {
		return nil, domo.ErrCredentialsRequired
	}

	httpOpts := createHTTPClientOptions(config)

	client := &Client{
		baseURL:  config.Host,
		provider: auth.NewProvider(config.Host, config.ClientID, config.ClientSecret, httpOpts...),
	}

	client.initializeResourceClients(httpOpts)

	return client, nil
}

// NewWebhooks creates a client for the unauthenticated webhook endpoints.
// It needs neither a host nor credentials.
func NewWebhooks(config *domo.Config) *WebhooksClient {
	if config == nil {
		config = &domo.Config{}
	}

	return NewWebhooksClient(http.NewClient("", nil, createHTTPClientOptions(config)...))
}

// scoped returns an HTTP client whose requests carry a token for scope.
func (c *Client) scoped(scope domo.Scope, httpOpts []http.Option) *http.Client {
	return http.NewClient(c.baseURL, c.provider.ForScope(scope), httpOpts...)
}

func (c *Client) initializeResourceClients(httpOpts []http.Option) {
	dataClient := c.scoped(domo.ScopeData, httpOpts)
	userClient := c.scoped(domo.ScopeUser, httpOpts)

	c.accounts = NewAccountsClient(c.scoped(domo.ScopeAccount, httpOpts))
	c.datasets = NewDataSetsClient(dataClient)
	c.groups = NewGroupsClient(userClient)
	c.pages = NewPagesClient(c.scoped(domo.ScopeDashboard, httpOpts))
	c.streams = NewStreamsClient(dataClient)
	c.users = NewUsersClient(userClient)
	c.workflow = NewWorkflowClient(c.scoped(domo.ScopeWorkflow, httpOpts))
	c.buzz = NewBuzzClient(c.scoped(domo.ScopeBuzz, httpOpts))
	c.activity = NewActivityClient(c.scoped(domo.ScopeAudit, httpOpts))
	c.webhooks = NewWebhooksClient(http.NewClient("", nil, httpOpts...))
}

// Resource client accessors

// Accounts implements domo.Client.Accounts.
func (c *Client) Accounts() domo.AccountsClient {
	return c.accounts
}

// DataSets implements domo.Client.DataSets.
func (c *Client) DataSets() domo.DataSetsClient {
	return c.datasets
}

// Groups implements domo.Client.Groups.
func (c *Client) Groups() domo.GroupsClient {
	return c.groups
}

// Pages implements domo.Client.Pages.
func (c *Client) Pages() domo.PagesClient {
	return c.pages
}

// Streams implements domo.Client.Streams.
func (c *Client) Streams() domo.StreamsClient {
	return c.streams
}

// Users implements domo.Client.Users.
func (c *Client) Users() domo.UsersClient {
	return c.users
}

// Workflow implements domo.Client.Workflow.
func (c *Client) Workflow() domo.WorkflowClient {
	return c.workflow
}

// Buzz implements domo.Client.Buzz.
func (c *Client) Buzz() domo.BuzzClient {
	return c.buzz
}

// Activity implements domo.Client.Activity.
func (c *Client) Activity() domo.ActivityClient {
	return c.activity
}

// Webhooks implements domo.Client.Webhooks.
func (c *Client) Webhooks() domo.WebhooksClient {
	return c.webhooks
}

// loggerAdapter adapts domo.Logger to http.Logger.
type loggerAdapter struct {
	logger domo.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}

var _ domo.Client = (*Client)(nil)
