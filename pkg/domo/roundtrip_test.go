package domo

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// jsonRoundTrip checks that value survives encoding and decoding unchanged.
func jsonRoundTrip[T any](value T) func(*testing.T) {
	return func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(value)
		require.NoError(t, err)

		var decoded T

		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, value, decoded, string(data))
	}
}

func TestModelRoundTrip(t *testing.T) {
	t.Parallel()

	when := time.Date(2024, time.March, 1, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		check func(*testing.T)
	}{
		{name: "account", check: jsonRoundTrip(Account{
			ID: Ptr(""), Name: Ptr("Warehouse"), Valid: Ptr(false),
			Type: &AccountType{ID: Ptr("mysql"), Properties: map[string]string{}},
		})},
		{name: "account type", check: jsonRoundTrip(AccountType{
			ID:         Ptr("mysql"),
			Properties: map[string]string{"user": ""},
			Templates: map[string]AccountTemplate{
				DefaultAccountTemplate: {Name: Ptr(""), Properties: []Property{}},
				"oauth":                {Properties: []Property{{Name: Ptr("token"), Required: Ptr(false)}}},
			},
		})},
		{name: "dataset", check: jsonRoundTrip(DataSet{
			ID: Ptr("ds-1"), Description: Ptr(""), Owner: &Owner{ID: Ptr(int64(0))},
			CreatedAt: &when, Schema: &Schema{Columns: []Column{}}, PDPEnabled: Ptr(false),
			Policies: []Policy{}, Rows: Ptr(int64(0)), Columns: Ptr(0),
		})},
		{name: "policy", check: jsonRoundTrip(Policy{
			ID: Ptr(int64(0)), Type: Ptr("user"),
			Filters: []Filter{{Column: Ptr("region"), Not: Ptr(false), Values: []string{}}},
			Users:   []int64{}, Groups: []string{},
		})},
		{name: "query result", check: jsonRoundTrip(QueryResult{
			DataSource: Ptr("ds-1"),
			Columns:    []string{"id", "ratio", "name", "flag", "missing"},
			Metadata:   []QueryMetadata{},
			Rows: [][]interface{}{
				{int64(9007199254740993), 2.5, "x", false, nil},
				{int64(0), -0.5, "", true, nil},
			},
			NumRows: Ptr(int64(2)), FromCache: Ptr(false),
		})},
		{name: "group", check: jsonRoundTrip(Group{ID: Ptr(int64(0)), Default: Ptr(false), MemberCount: Ptr(0)})},
		{name: "page", check: jsonRoundTrip(Page{
			ID: Ptr(int64(1)), Locked: Ptr(false), CollectionIDs: []int64{}, CardIDs: []int64{3},
			Children:   []Page{{ID: Ptr(int64(2)), Children: []Page{}}},
			Visibility: &Visibility{UserIDs: []int64{}, GroupIDs: []int64{}},
		})},
		{name: "collection", check: jsonRoundTrip(Collection{ID: Ptr(int64(0)), Description: Ptr(""), CardIDs: []int64{}})},
		{name: "stream", check: jsonRoundTrip(Stream{
			ID: Ptr(int64(0)), ModifiedAt: &when, UpdateMethod: Ptr(UpdateMethodUpsert),
			DataSet: &DataSet{Policies: []Policy{}}, Deleted: Ptr(false),
		})},
		{name: "execution", check: jsonRoundTrip(Execution{ID: Ptr(int64(0)), StartedAt: &when, CurrentState: Ptr("")})},
		{name: "user", check: jsonRoundTrip(User{ID: Ptr(int64(0)), Email: Ptr(""), RoleID: Ptr(int64(0)), Deleted: Ptr(false)})},
		{name: "project", check: jsonRoundTrip(Project{ID: Ptr("0"), DueDate: &when, Public: Ptr(false), Members: []int64{}})},
		{name: "list", check: jsonRoundTrip(List{ID: Ptr(int64(0)), Type: Ptr(""), Index: Ptr(0)})},
		{name: "task", check: jsonRoundTrip(Task{
			ID: Ptr(int64(0)), Priority: Ptr(0), Contributors: []int64{}, Tags: []string{},
			AttachmentCount: Ptr(0), Archived: Ptr(false),
		})},
		{name: "attachment", check: jsonRoundTrip(Attachment{ID: Ptr(int64(0)), CreatedDate: &when, FileName: Ptr("")})},
		{name: "integration", check: jsonRoundTrip(Integration{
			ID: Ptr("i-1"), Scope: Ptr(IntegrationScopeChannelList), ChannelIDs: []string{}, Headers: []Header{},
		})},
		{name: "subscription", check: jsonRoundTrip(Subscription{ID: Ptr("s-1"), EventType: Ptr(EventSlashCommand), SlashCommand: Ptr("")})},
		{name: "event", check: jsonRoundTrip(Event{
			Author:       &BuzzUser{ID: Ptr(int64(0)), DisplayName: Ptr("")},
			Users:        []BuzzUser{},
			Event:        &EventDetail{Type: Ptr(EventMessagePosted)},
			Organization: &Organization{Domain: Ptr("")},
			Callback:     &Callback{URL: Ptr("https://example.com"), Headers: map[string]string{}},
		})},
		{name: "log entry", check: jsonRoundTrip(LogEntry{ActorID: Ptr(int64(0)), Time: &when, AdditionalComment: Ptr("")})},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.check)
	}
}

func TestEmptyListsAreSent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{name: "unset lists are omitted", value: Policy{}, want: `{}`},
		{name: "empty lists are kept", value: Policy{Users: []int64{}, Groups: []string{}}, want: `{"users":[],"groups":[]}`},
		{name: "empty card ids", value: Collection{CardIDs: []int64{}}, want: `{"cardIds":[]}`},
		{name: "empty members", value: Project{Members: []int64{}}, want: `{"members":[]}`},
		{name: "empty properties", value: AccountType{Properties: map[string]string{}}, want: `{"properties":{}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := json.Marshal(tt.value)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(out))
		})
	}
}
