package domo

// Group represents a Domo user group.
type Group struct {
	ID          *int64  `json:"id,omitempty"          yaml:"id,omitempty"`
	Name        *string `json:"name,omitempty"        yaml:"name,omitempty"`
	Default     *bool   `json:"default,omitempty"     yaml:"default,omitempty"`
	Active      *bool   `json:"active,omitempty"      yaml:"active,omitempty"`
	CreatorID   *string `json:"creatorId,omitempty"   yaml:"creatorId,omitempty"`
	MemberCount *int    `json:"memberCount,omitempty" yaml:"memberCount,omitempty"`
}

// NewGroupTemplate returns a placeholder group for an edit buffer.
func NewGroupTemplate() *Group {
	return &Group{
		ID:          Ptr(int64(0)),
		Name:        Ptr("Group Name"),
		Default:     Ptr(false),
		Active:      Ptr(true),
		CreatorID:   Ptr("0"),
		MemberCount: Ptr(0),
	}
}
