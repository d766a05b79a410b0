package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamsClient_Search(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		wantQuery string
		call      func(*StreamsClient) (int, error)
	}{
		{
			name:      "by dataset id",
			wantQuery: "dataSource.id:ds-1",
			call: func(c *StreamsClient) (int, error) {
				streams, err := c.SearchByDataSetID(context.Background(), "ds-1")

				return len(streams), err
			},
		},
		{
			name:      "by owner id",
			wantQuery: "dataSource.owner.id:27",
			call: func(c *StreamsClient) (int, error) {
				streams, err := c.SearchByOwnerID(context.Background(), "27")

				return len(streams), err
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := newTestServer(t, http.StatusOK, []map[string]interface{}{{"id": 1}, {"id": 2}}, func(request *http.Request) {
				assert.Equal(t, "/v1/streams/search", request.URL.Path)
				assert.Equal(t, testCase.wantQuery, request.URL.Query().Get("q"))
			})

			count, err := testCase.call(NewStreamsClient(newTestHTTPClient(server.URL)))
			require.NoError(t, err)
			assert.Equal(t, 2, count)
		})
	}
}

func TestStreamsClient_Update(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, http.StatusOK, map[string]interface{}{"id": 7, "updateMethod": "REPLACE"}, func(request *http.Request) {
		assert.Equal(t, http.MethodPatch, request.Method)
		assert.Equal(t, "/v1/streams/7", request.URL.Path)
	})

	stream, err := NewStreamsClient(newTestHTTPClient(server.URL)).Update(context.Background(), "7", nil)
	require.NoError(t, err)
	assert.Equal(t, "REPLACE", *stream.UpdateMethod)
}

func TestStreamsClient_Executions(t *testing.T) {
	t.Parallel()

	t.Run("create", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusCreated, map[string]interface{}{"id": 3, "currentState": "ACTIVE"}, func(request *http.Request) {
			assert.Equal(t, http.MethodPost, request.Method)
			assert.Equal(t, "/v1/streams/7/executions", request.URL.Path)

			body, _ := io.ReadAll(request.Body)
			assert.JSONEq(t, `{}`, string(body))
		})

		execution, err := NewStreamsClient(newTestHTTPClient(server.URL)).CreateExecution(context.Background(), "7")
		require.NoError(t, err)
		assert.Equal(t, int64(3), *execution.ID)
		assert.Equal(t, "ACTIVE", *execution.CurrentState)
	})

	t.Run("upload part", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, http.MethodPut, request.Method)
			assert.Equal(t, "/v1/streams/7/executions/3/part/1", request.URL.Path)
			assert.Equal(t, "text/csv", request.Header.Get("Content-Type"))

			body, _ := io.ReadAll(request.Body)
			assert.Equal(t, "x,y\n", string(body))

			_, _ = writer.Write([]byte(`{"id":3}`))
		}))
		defer server.Close()

		execution, err := NewStreamsClient(newTestHTTPClient(server.URL)).
			UploadPart(context.Background(), "7", "3", "1", strings.NewReader("x,y\n"))
		require.NoError(t, err)
		assert.Equal(t, int64(3), *execution.ID)
	})

	t.Run("commit", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusOK, map[string]interface{}{"id": 3, "currentState": "SUCCESS"}, func(request *http.Request) {
			assert.Equal(t, http.MethodPut, request.Method)
			assert.Equal(t, "/v1/streams/7/executions/3/commit", request.URL.Path)
		})

		execution, err := NewStreamsClient(newTestHTTPClient(server.URL)).Commit(context.Background(), "7", "3")
		require.NoError(t, err)
		assert.Equal(t, "SUCCESS", *execution.CurrentState)
	})

	t.Run("abort", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusOK, nil, func(request *http.Request) {
			assert.Equal(t, http.MethodPut, request.Method)
			assert.Equal(t, "/v1/streams/7/executions/3/abort", request.URL.Path)
		})

		require.NoError(t, NewStreamsClient(newTestHTTPClient(server.URL)).Abort(context.Background(), "7", "3"))
	})
}
