package domo

// User represents a Domo user.
type User struct {
	ID             *int64  `json:"id,omitempty"             yaml:"id,omitempty"`
	Name           *string `json:"name,omitempty"           yaml:"name,omitempty"`
	Email          *string `json:"email,omitempty"          yaml:"email,omitempty"`
	AlternateEmail *string `json:"alternateEmail,omitempty" yaml:"alternateEmail,omitempty"`
	EmployeeID     *string `json:"employeeId,omitempty"     yaml:"employeeId,omitempty"`
	EmployeeNumber *int64  `json:"employeeNumber,omitempty" yaml:"employeeNumber,omitempty"`
	Title          *string `json:"title,omitempty"          yaml:"title,omitempty"`
	Phone          *string `json:"phone,omitempty"          yaml:"phone,omitempty"`
	Location       *string `json:"location,omitempty"       yaml:"location,omitempty"`
	Department     *string `json:"department,omitempty"     yaml:"department,omitempty"`
	Timezone       *string `json:"timezone,omitempty"       yaml:"timezone,omitempty"`
	Locale         *string `json:"locale,omitempty"         yaml:"locale,omitempty"`
	Role           *string `json:"role,omitempty"           yaml:"role,omitempty"`
	RoleID         *int64  `json:"roleId,omitempty"         yaml:"roleId,omitempty"`
	Deleted        *bool   `json:"deleted,omitempty"        yaml:"deleted,omitempty"`
}

// NewUserTemplate returns a placeholder user for an edit buffer.
func NewUserTemplate() *User {
	return &User{
		ID:             Ptr(int64(0)),
		Name:           Ptr("First Last"),
		Email:          Ptr("First.Last@company.com"),
		AlternateEmail: Ptr("first.last@gmail.com"),
		EmployeeID:     Ptr("employee id"),
		EmployeeNumber: Ptr(int64(0)),
		Title:          Ptr("Title"),
		Phone:          Ptr("+1 (800) 700-6000"),
		Location:       Ptr("CA"),
		Department:     Ptr("department"),
		Timezone:       Ptr("America/Los_Angeles"),
		Locale:         Ptr("en-US"),
		Role:           Ptr("Admin - Match roles defined in instance"),
		RoleID:         Ptr(int64(0)),
		Deleted:        Ptr(false),
	}
}
