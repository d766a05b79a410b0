package domo

import (
	"context"
	"io"
	"time"
)

// AccountsClient wraps the account API (scope "account").
type AccountsClient interface {
	List(ctx context.Context, opts *ListOptions) ([]Account, error)
	ListAll(ctx context.Context) ([]Account, error)
	Create(ctx context.Context, account *Account) (*Account, error)
	Get(ctx context.Context, id string) (*Account, error)
	// Update patches an account. The API returns no body.
	Update(ctx context.Context, id string, account *Account) error
	Delete(ctx context.Context, id string) error
	Share(ctx context.Context, id string, userID int64) error
	ListTypes(ctx context.Context, opts *ListOptions) ([]AccountType, error)
	GetType(ctx context.Context, id string) (*AccountType, error)
}

// DataSetsClient wraps the dataset API (scope "data").
type DataSetsClient interface {
	List(ctx context.Context, opts *ListOptions) ([]DataSet, error)
	ListAll(ctx context.Context) ([]DataSet, error)
	Create(ctx context.Context, dataset *DataSet) (*DataSet, error)
	Get(ctx context.Context, id string) (*DataSet, error)
	Update(ctx context.Context, id string, dataset *DataSet) (*DataSet, error)
	Delete(ctx context.Context, id string) error
	// Import replaces the entire content of a dataset with csv.
	Import(ctx context.Context, id string, csv io.Reader) error
	// Export returns the dataset content as CSV text including a header row.
	Export(ctx context.Context, id string) (string, error)
	Query(ctx context.Context, id, sql string) (*QueryResult, error)
	ListPolicies(ctx context.Context, id string) ([]Policy, error)
	CreatePolicy(ctx context.Context, id string, policy *Policy) (*Policy, error)
	GetPolicy(ctx context.Context, id, policyID string) (*Policy, error)
	UpdatePolicy(ctx context.Context, id, policyID string, policy *Policy) (*Policy, error)
	DeletePolicy(ctx context.Context, id, policyID string) error
}

// GroupsClient wraps the group API (scope "user").
type GroupsClient interface {
	List(ctx context.Context, opts *ListOptions) ([]Group, error)
	ListAll(ctx context.Context) ([]Group, error)
	Create(ctx context.Context, group *Group) (*Group, error)
	Get(ctx context.Context, id string) (*Group, error)
	Update(ctx context.Context, id string, group *Group) (*Group, error)
	Delete(ctx context.Context, id string) error
	ListUsers(ctx context.Context, id string) ([]int64, error)
	AddUser(ctx context.Context, id, userID string) error
	RemoveUser(ctx context.Context, id, userID string) error
}

// PagesClient wraps the page API (scope "dashboard").
type PagesClient interface {
	List(ctx context.Context, opts *ListOptions) ([]Page, error)
	Create(ctx context.Context, page *Page) (*Page, error)
	Get(ctx context.Context, id string) (*Page, error)
	Update(ctx context.Context, id string, page *Page) (*Page, error)
	Delete(ctx context.Context, id string) error
	ListCollections(ctx context.Context, id string) ([]Collection, error)
	CreateCollection(ctx context.Context, id string, collection *Collection) (*Collection, error)
	UpdateCollection(ctx context.Context, id, collectionID string, collection *Collection) error
	DeleteCollection(ctx context.Context, id, collectionID string) error
}

// StreamsClient wraps the stream API (scope "data").
type StreamsClient interface {
	List(ctx context.Context, opts *ListOptions) ([]Stream, error)
	ListAll(ctx context.Context) ([]Stream, error)
	SearchByDataSetID(ctx context.Context, datasetID string) ([]Stream, error)
	SearchByOwnerID(ctx context.Context, ownerID string) ([]Stream, error)
	Create(ctx context.Context, stream *Stream) (*Stream, error)
	Get(ctx context.Context, id string) (*Stream, error)
	Update(ctx context.Context, id string, stream *Stream) (*Stream, error)
	Delete(ctx context.Context, id string) error
	ListExecutions(ctx context.Context, id string, opts *ListOptions) ([]Execution, error)
	CreateExecution(ctx context.Context, id string) (*Execution, error)
	GetExecution(ctx context.Context, id, executionID string) (*Execution, error)
	// UploadPart uploads one CSV part. Re-uploading a part id replaces it.
	UploadPart(ctx context.Context, id, executionID, partID string, csv io.Reader) (*Execution, error)
	// Commit finalizes an execution once every part is uploaded.
	Commit(ctx context.Context, id, executionID string) (*Execution, error)
	Abort(ctx context.Context, id, executionID string) error
}

// UsersClient wraps the user API (scope "user").
type UsersClient interface {
	List(ctx context.Context, opts *ListOptions) ([]User, error)
	ListAll(ctx context.Context) ([]User, error)
	BulkByEmail(ctx context.Context, emails []string) ([]User, error)
	Create(ctx context.Context, user *User) (*User, error)
	Get(ctx context.Context, id string) (*User, error)
	Update(ctx context.Context, id string, user *User) (*User, error)
	Delete(ctx context.Context, id string) error
}

// WorkflowClient wraps the projects and tasks API (scope "workflow").
type WorkflowClient interface {
	ListProjects(ctx context.Context, opts *ListOptions) ([]Project, error)
	CreateProject(ctx context.Context, project *Project) (*Project, error)
	GetProject(ctx context.Context, projectID string) (*Project, error)
	UpdateProject(ctx context.Context, projectID string, project *Project) (*Project, error)
	DeleteProject(ctx context.Context, projectID string) error
	ListMembers(ctx context.Context, projectID string) ([]int64, error)
	UpdateMembers(ctx context.Context, projectID string, members []int64) error
	ListProjectTasks(ctx context.Context, projectID string, opts *ListOptions) ([]Task, error)
	ListLists(ctx context.Context, projectID string) ([]List, error)
	CreateList(ctx context.Context, projectID string, list *List) (*List, error)
	GetList(ctx context.Context, projectID, listID string) (*List, error)
	UpdateList(ctx context.Context, projectID, listID string, list *List) (*List, error)
	DeleteList(ctx context.Context, projectID, listID string) error
	ListTasks(ctx context.Context, projectID, listID string, opts *ListOptions) ([]Task, error)
	CreateTask(ctx context.Context, projectID, listID string, task *Task) (*Task, error)
	GetTask(ctx context.Context, projectID, listID, taskID string) (*Task, error)
	UpdateTask(ctx context.Context, projectID, listID, taskID string, task *Task) (*Task, error)
	DeleteTask(ctx context.Context, projectID, listID, taskID string) error
	ListAttachments(ctx context.Context, projectID, listID, taskID string) ([]Attachment, error)
	DownloadAttachment(ctx context.Context, projectID, listID, taskID, attachmentID string) ([]byte, error)
	UploadAttachment(ctx context.Context, projectID, listID, taskID, fileName string, content io.Reader) (*Attachment, error)
	DeleteAttachment(ctx context.Context, projectID, listID, taskID, attachmentID string) error
}

// BuzzClient wraps the Buzz integration API (scope "buzz").
type BuzzClient interface {
	ListIntegrations(ctx context.Context) ([]Integration, error)
	CreateIntegration(ctx context.Context, integration *Integration) (*Integration, error)
	GetIntegration(ctx context.Context, id string) (*Integration, error)
	DeleteIntegration(ctx context.Context, id string) error
	ListSubscriptions(ctx context.Context, id string) ([]Subscription, error)
	CreateSubscription(ctx context.Context, id string, subscription *Subscription) (*Subscription, error)
	DeleteSubscription(ctx context.Context, id, subscriptionID string) error
}

// ActivityClient wraps the activity log API (scope "audit").
type ActivityClient interface {
	ListEntries(ctx context.Context, query *ActivityQuery) ([]LogEntry, error)
}

// WebhooksClient posts to inbound webhook URLs. Requests are unauthenticated.
type WebhooksClient interface {
	PostIntegrationMessage(ctx context.Context, url, token, text string) error
	PostBuzzMessage(ctx context.Context, url string, message *BuzzMessage) error
	PostDataSetJSON(ctx context.Context, url string, row interface{}) error
}

// Client provides access to every resource-family client.
type Client interface {
	Accounts() AccountsClient
	DataSets() DataSetsClient
	Groups() GroupsClient
	Pages() PagesClient
	Streams() StreamsClient
	Users() UsersClient
	Workflow() WorkflowClient
	Buzz() BuzzClient
	Activity() ActivityClient
	Webhooks() WebhooksClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a domo.Client.
//
// The value is resolved once (flags, environment, config file) and handed to
// domoclient.New; the client never reads global state.
type Config struct {
	// Host: base URL of the API, e.g. "https://api.domo.com". domoclient.New
	// trims a trailing slash and adds "https://" if no scheme is present.
	Host string
	// ClientID and ClientSecret are exchanged for a scoped bearer token on
	// every call using the client_credentials grant.
	ClientID     string
	ClientSecret string

	// HTTPTimeout bounds each HTTP round trip. Zero uses the default.
	HTTPTimeout time.Duration
	// Debug enables request/response logging when a Logger is provided.
	Debug bool
	// Logger receives HTTP debug output.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string
}
