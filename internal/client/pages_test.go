package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/domo-cli/pkg/domo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPagesClient_Collections(t *testing.T) {
	t.Parallel()

	t.Run("list", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusOK, []map[string]interface{}{
			{"id": 1, "title": "First"},
			{"id": 2, "title": "Second", "cardIds": []int{7, 9}},
		}, func(request *http.Request) {
			assert.Equal(t, "/v1/pages/42/collections", request.URL.Path)
		})

		pages := NewPagesClient(newTestHTTPClient(server.URL))

		collections, err := pages.ListCollections(context.Background(), "42")
		require.NoError(t, err)
		require.Len(t, collections, 2)
		assert.Equal(t, "Second", *collections[1].Title)
	})

	t.Run("update", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusNoContent, nil, func(request *http.Request) {
			assert.Equal(t, http.MethodPut, request.Method)
			assert.Equal(t, "/v1/pages/42/collections/2", request.URL.Path)
		})

		pages := NewPagesClient(newTestHTTPClient(server.URL))

		err := pages.UpdateCollection(context.Background(), "42", "2", &domo.Collection{Title: domo.Ptr("Renamed")})
		require.NoError(t, err)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusNoContent, nil, func(request *http.Request) {
			assert.Equal(t, http.MethodDelete, request.Method)
			assert.Equal(t, "/v1/pages/42/collections/2", request.URL.Path)
		})

		pages := NewPagesClient(newTestHTTPClient(server.URL))

		require.NoError(t, pages.DeleteCollection(context.Background(), "42", "2"))
	})
}

func TestPagesClient_Get_NotFound(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, http.StatusNotFound, map[string]interface{}{
		"status":       404,
		"statusReason": "Not Found",
		"message":      "Page not found",
		"toe":          "ABC123",
	}, nil)

	pages := NewPagesClient(newTestHTTPClient(server.URL))

	_, err := pages.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, domo.IsNotFound(err))
	assert.Contains(t, err.Error(), "Page not found")
}
