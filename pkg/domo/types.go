package domo

// Scope names the permission domain a client-credentials token is issued for.
type Scope string

// Token scopes, one per resource family.
const (
	ScopeAccount   Scope = "account"
	ScopeAudit     Scope = "audit"
	ScopeBuzz      Scope = "buzz"
	ScopeDashboard Scope = "dashboard"
	ScopeData      Scope = "data"
	ScopeUser      Scope = "user"
	ScopeWorkflow  Scope = "workflow"
)

// PageSize is the number of records requested per call by ListAll helpers.
const PageSize = 50

// ListOptions carries the optional limit and offset of a paged listing.
// A nil value leaves the choice to the server.
type ListOptions struct {
	Limit  *int
	Offset *int
}

// NewListOptions returns empty list options.
func NewListOptions() *ListOptions {
	return &ListOptions{}
}

// WithLimit sets the page size.
func (o *ListOptions) WithLimit(limit int) *ListOptions {
	o.Limit = &limit

	return o
}

// WithOffset sets the starting offset.
func (o *ListOptions) WithOffset(offset int) *ListOptions {
	o.Offset = &offset

	return o
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
