package domo

// Integration scopes.
const (
	IntegrationScopePublicChannels = "PUBLIC_CHANNELS"
	IntegrationScopeOwnerAccess    = "OWNER_ACCESS"
	IntegrationScopeChannelList    = "CHANNEL_LIST"
)

// Subscription event types.
const (
	EventMessagePosted      = "MESSAGE_POSTED"
	EventSlashCommand       = "SLASH_COMMAND"
	EventThreadCreated      = "THREAD_CREATED"
	EventUsersJoinedChannel = "USERS_JOINED_CHANNEL"
	EventUsersLeftChannel   = "USERS_LEFT_CHANNEL"
)

// Integration is a Buzz bot integration.
type Integration struct {
	ID          *string  `json:"id,omitempty"          yaml:"id,omitempty"`
	Name        *string  `json:"name,omitempty"        yaml:"name,omitempty"`
	Description *string  `json:"description,omitempty" yaml:"description,omitempty"`
	Scope       *string  `json:"scope,omitempty"       yaml:"scope,omitempty"`
	ChannelIDs  []string `json:"channelIds,omitzero"   yaml:"channelIds,omitempty"`
	Headers     []Header `json:"headers,omitzero"      yaml:"headers,omitempty"`
}

// Header is sent by Buzz with every event delivered to an integration.
type Header struct {
	Name  *string `json:"name,omitempty"  yaml:"name,omitempty"`
	Value *string `json:"value,omitempty" yaml:"value,omitempty"`
}

// Subscription subscribes an integration to one event type.
type Subscription struct {
	ID           *string `json:"id,omitempty"           yaml:"id,omitempty"`
	EventType    *string `json:"eventType,omitempty"    yaml:"eventType,omitempty"`
	URL          *string `json:"url,omitempty"          yaml:"url,omitempty"`
	SlashCommand *string `json:"slashCommand,omitempty" yaml:"slashCommand,omitempty"`
}

// Event is the payload Buzz posts to a subscription URL.
type Event struct {
	Author       *BuzzUser     `json:"author,omitempty"       yaml:"author,omitempty"`
	Thread       *Channel      `json:"thread,omitempty"       yaml:"thread,omitempty"`
	Message      *Message      `json:"message,omitempty"      yaml:"message,omitempty"`
	Users        []BuzzUser    `json:"users,omitzero"         yaml:"users,omitempty"`
	Event        *EventDetail  `json:"event,omitempty"        yaml:"event,omitempty"`
	Owner        *BuzzUser     `json:"owner,omitempty"        yaml:"owner,omitempty"`
	Organization *Organization `json:"organization,omitempty" yaml:"organization,omitempty"`
	Channel      *Channel      `json:"channel,omitempty"      yaml:"channel,omitempty"`
	Callback     *Callback     `json:"callback,omitempty"     yaml:"callback,omitempty"`
}

// EventDetail carries the event type.
type EventDetail struct {
	Type *string `json:"type,omitempty" yaml:"type,omitempty"`
}

// Organization is the Domo customer hosting Buzz.
type Organization struct {
	Domain *string `json:"domain,omitempty" yaml:"domain,omitempty"`
}

// BuzzUser is a user as described in Buzz events.
type BuzzUser struct {
	ID          *int64  `json:"id,omitempty"          yaml:"id,omitempty"`
	DisplayName *string `json:"displayName,omitempty" yaml:"displayName,omitempty"`
	Email       *string `json:"email,omitempty"       yaml:"email,omitempty"`
}

// Message is a Buzz message.
type Message struct {
	ID   *string `json:"id,omitempty"   yaml:"id,omitempty"`
	Text *string `json:"text,omitempty" yaml:"text,omitempty"`
}

// Channel is a Buzz channel or thread.
type Channel struct {
	ID       *string `json:"id,omitempty"       yaml:"id,omitempty"`
	ParentID *string `json:"parentId,omitempty" yaml:"parentId,omitempty"`
	Title    *string `json:"title,omitempty"    yaml:"title,omitempty"`
}

// Callback is the URL and headers an integration uses to reply to an event.
// It expires one hour after the event.
type Callback struct {
	URL     *string           `json:"url,omitempty"     yaml:"url,omitempty"`
	Headers map[string]string `json:"headers,omitzero"  yaml:"headers,omitempty"`
}

// NewIntegrationTemplate returns a placeholder integration for an edit buffer.
func NewIntegrationTemplate() *Integration {
	return &Integration{
		ID:          Ptr("UUID"),
		Name:        Ptr("Integration Name"),
		Description: Ptr("Integration Description"),
		Scope:       Ptr("PUBLIC_CHANNELS | OWNER_ACCESS | CHANNEL_LIST"),
		ChannelIDs: []string{
			"CHANNEL-A ID for CHANNEL_LIST scope",
			"CHANNEL-B ID for CHANNEL_LIST scope",
			"CHANNEL-C ID for CHANNEL_LIST scope",
		},
		Headers: []Header{
			{Name: Ptr("HeaderName"), Value: Ptr("HeaderValue")},
			{Name: Ptr("x-my-api-key"), Value: Ptr("ABC123")},
		},
	}
}

// NewSubscriptionTemplate returns a placeholder subscription for an edit buffer.
func NewSubscriptionTemplate() *Subscription {
	return &Subscription{
		ID:           Ptr("UUID"),
		EventType:    Ptr("MESSAGE_POSTED | SLASH_COMMAND | THREAD_CREATED | USERS_JOINED_CHANNEL | USERS_LEFT_CHANNEL"),
		URL:          Ptr("The integration will post to this URL when an event occurs"),
		SlashCommand: Ptr("Required if and only if eventType is SLASH_COMMAND"),
	}
}
