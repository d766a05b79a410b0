package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/domo-cli/pkg/domo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityClient_ListEntries(t *testing.T) {
	t.Parallel()

	t.Run("all filters", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusOK, []map[string]interface{}{
			{"userName": "Ada", "eventText": "Viewed page", "time": "2020-01-02T03:04:05Z"},
		}, func(request *http.Request) {
			query := request.URL.Query()
			assert.Equal(t, "/v1/audit", request.URL.Path)
			assert.Equal(t, "27", query.Get("user"))
			assert.Equal(t, "1000", query.Get("start"))
			assert.Equal(t, "2000", query.Get("end"))
			assert.Equal(t, "10", query.Get("limit"))
			assert.Equal(t, "5", query.Get("offset"))
		})

		entries, err := NewActivityClient(newTestHTTPClient(server.URL)).ListEntries(context.Background(), &domo.ActivityQuery{
			User:   domo.Ptr(int64(27)),
			Start:  1000,
			End:    domo.Ptr(int64(2000)),
			Limit:  domo.Ptr(10),
			Offset: domo.Ptr(5),
		})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "Ada", *entries[0].UserName)
		assert.Equal(t, 2020, entries[0].Time.Year())
	})

	t.Run("start only", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusOK, []map[string]interface{}{}, func(request *http.Request) {
			assert.Equal(t, "start=1000", request.URL.RawQuery)
		})

		_, err := NewActivityClient(newTestHTTPClient(server.URL)).ListEntries(context.Background(), &domo.ActivityQuery{Start: 1000})
		require.NoError(t, err)
	})
}
