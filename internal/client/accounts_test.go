package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/domo-cli/pkg/domo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountsClient_Update(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, http.StatusOK, nil, func(request *http.Request) {
		assert.Equal(t, http.MethodPatch, request.Method)
		assert.Equal(t, "/v1/accounts/acc-1", request.URL.Path)

		var body map[string]interface{}

		decodeBody(t, request, &body)
		assert.Equal(t, "Renamed", body["name"])
	})

	accounts := NewAccountsClient(newTestHTTPClient(server.URL))

	err := accounts.Update(context.Background(), "acc-1", &domo.Account{Name: domo.Ptr("Renamed")})
	require.NoError(t, err)
}

func TestAccountsClient_Share(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, http.StatusOK, nil, func(request *http.Request) {
		assert.Equal(t, http.MethodPost, request.Method)
		assert.Equal(t, "/v1/accounts/acc-1/shares", request.URL.Path)

		var body struct {
			User struct {
				ID int64 `json:"id"`
			} `json:"user"`
		}

		decodeBody(t, request, &body)
		assert.Equal(t, int64(27), body.User.ID)
	})

	accounts := NewAccountsClient(newTestHTTPClient(server.URL))

	err := accounts.Share(context.Background(), "acc-1", 27)
	require.NoError(t, err)
}

func TestAccountsClient_GetType(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, http.StatusOK, map[string]interface{}{
		"id":   "mysql",
		"name": "MySQL",
		"_templates": map[string]interface{}{
			"default": map[string]interface{}{
				"properties": []map[string]interface{}{
					{"name": "user", "prompt": "Enter user", "required": true},
				},
			},
		},
	}, func(request *http.Request) {
		assert.Equal(t, "/v1/account-types/mysql", request.URL.Path)
	})

	accounts := NewAccountsClient(newTestHTTPClient(server.URL))

	accountType, err := accounts.GetType(context.Background(), "mysql")
	require.NoError(t, err)
	assert.Equal(t, "MySQL", *accountType.Name)
	require.Contains(t, accountType.Templates, "default")
	assert.Equal(t, "user", *accountType.Templates["default"].Properties[0].Name)
}

func TestAccountsClient_ListTypes(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, http.StatusOK, []map[string]string{{"id": "mysql"}}, func(request *http.Request) {
		assert.Equal(t, "/v1/account-types", request.URL.Path)
		assert.Equal(t, "5", request.URL.Query().Get("limit"))
		assert.False(t, request.URL.Query().Has("offset"))
	})

	accounts := NewAccountsClient(newTestHTTPClient(server.URL))

	types, err := accounts.ListTypes(context.Background(), domo.NewListOptions().WithLimit(5))
	require.NoError(t, err)
	assert.Len(t, types, 1)
}
