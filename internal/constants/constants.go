package constants

import "time"

// File and directory permissions.
const (
	// EditBufferPerm is the permission for editor staging files.
	EditBufferPerm = 0600

	// OutputFilePerm is the permission for downloaded attachments.
	OutputFilePerm = 0600
)

// HTTP defaults.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultUserAgent is sent when no override is configured.
	DefaultUserAgent = "domo-cli"

	// DefaultHost is the public API host.
	DefaultHost = "https://api.domo.com"

	// TokenPath is the client-credentials token endpoint.
	TokenPath = "/oauth/token"
)

// API paths.
const (
	AccountsPath     = "/v1/accounts"
	AccountTypesPath = "/v1/account-types"
	DataSetsPath     = "/v1/datasets"
	GroupsPath       = "/v1/groups"
	PagesPath        = "/v1/pages"
	StreamsPath      = "/v1/streams"
	UsersPath        = "/v1/users"
	ProjectsPath     = "/v1/projects"
	IntegrationsPath = "/v1/buzz/integrations"
	AuditPath        = "/v1/audit"
)

// Content types.
const (
	ContentTypeJSON = "application/json"
	ContentTypeCSV  = "text/csv"
)

// Output.
const (
	// JSONIndentSize is the indent used by json and yaml encoders.
	JSONIndentSize = 2

	// DefaultEditor runs when neither --editor nor DOMO_EDITOR is set.
	DefaultEditor = "vim"
)

// Environment variables.
const (
	EnvPrefix                  = "DOMO"
	EnvHost                    = "DOMO_API_HOST"
	EnvClientID                = "DOMO_API_CLIENT_ID"
	EnvClientSecret            = "DOMO_API_CLIENT_SECRET"
	EnvEditor                  = "DOMO_EDITOR"
	EnvIntegrationWebhookURL   = "DOMO_INTEGRATION_WH_URL"
	EnvIntegrationWebhookToken = "DOMO_INTEGRATION_WH_TOKEN"
	EnvBuzzWebhookURL          = "DOMO_BUZZ_WH_URL"
	EnvDataSetWebhookURL       = "DOMO_DATASET_WH_URL"
)

// Webhook headers.
const (
	// BuzzBotTokenHeader carries the integration token on integration messages.
	BuzzBotTokenHeader = "x-buzz-bot-token"
)
