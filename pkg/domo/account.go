package domo

// DefaultAccountTemplate is the account-type template used to seed new accounts.
const DefaultAccountTemplate = "default"

// Account represents a set of credentials stored for a data provider.
type Account struct {
	ID    *string      `json:"id,omitempty"    yaml:"id,omitempty"`
	Name  *string      `json:"name,omitempty"  yaml:"name,omitempty"`
	Valid *bool        `json:"valid,omitempty" yaml:"valid,omitempty"`
	Type  *AccountType `json:"type,omitempty"  yaml:"type,omitempty"`
}

// AccountType describes a data provider and the properties its accounts need.
type AccountType struct {
	ID         *string                    `json:"id,omitempty"         yaml:"id,omitempty"`
	Name       *string                    `json:"name,omitempty"       yaml:"name,omitempty"`
	Properties map[string]string          `json:"properties,omitzero"  yaml:"properties,omitempty"`
	Templates  map[string]AccountTemplate `json:"_templates,omitzero"  yaml:"_templates,omitempty"`
}

// AccountTemplate lists the properties required to create an account of a type.
type AccountTemplate struct {
	Name        *string    `json:"name,omitempty"        yaml:"name,omitempty"`
	Title       *string    `json:"title,omitempty"       yaml:"title,omitempty"`
	ContentType *string    `json:"contentType,omitempty" yaml:"contentType,omitempty"`
	Method      *string    `json:"method,omitempty"      yaml:"method,omitempty"`
	Properties  []Property `json:"properties,omitzero"   yaml:"properties,omitempty"`
}

// Property describes one account-type property.
type Property struct {
	Name     *string `json:"name,omitempty"     yaml:"name,omitempty"`
	Prompt   *string `json:"prompt,omitempty"   yaml:"prompt,omitempty"`
	Regex    *string `json:"regex,omitempty"    yaml:"regex,omitempty"`
	Required *bool   `json:"required,omitempty" yaml:"required,omitempty"`
}

// NewAccountTemplate returns a placeholder account for an edit buffer.
func NewAccountTemplate() *Account {
	return &Account{
		ID:    Ptr("0"),
		Name:  Ptr("Account Name"),
		Valid: Ptr(true),
	}
}

// NewAccountForType returns a placeholder account whose type carries one
// "TODO: <prompt>" entry per property of the type's default template.
func NewAccountForType(accountType *AccountType) (*Account, error) {
	if accountType == nil {
		return nil, ErrNoDefaultTemplate
	}

	template, ok := accountType.Templates[DefaultAccountTemplate]
	if !ok {
		return nil, ErrNoDefaultTemplate
	}

	properties := make(map[string]string, len(template.Properties))

	for _, property := range template.Properties {
		if property.Name == nil {
			continue
		}

		prompt := ""
		if property.Prompt != nil {
			prompt = *property.Prompt
		}

		properties[*property.Name] = "TODO: " + prompt
	}

	seeded := *accountType
	seeded.Properties = properties

	account := NewAccountTemplate()
	account.Type = &seeded

	return account, nil
}

// AccountShare is the body of an account share request.
type AccountShare struct {
	User AccountShareUser `json:"user" yaml:"user"`
}

// AccountShareUser identifies the user an account is shared with.
type AccountShareUser struct {
	ID int64 `json:"id" yaml:"id"`
}
