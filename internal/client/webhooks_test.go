package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/domo-cli/pkg/domo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhooksClient(t *testing.T) {
	t.Parallel()

	t.Run("integration message", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusOK, nil, func(request *http.Request) {
			assert.Equal(t, http.MethodPost, request.Method)
			assert.Equal(t, "/hooks/abc", request.URL.Path)
			assert.Equal(t, "secret", request.Header.Get("x-buzz-bot-token"))
			assert.Empty(t, request.Header.Get("Authorization"))

			var body map[string]map[string]string

			decodeBody(t, request, &body)
			assert.Equal(t, "deploy finished", body["content"]["text"])
		})

		err := NewWebhooks(nil).PostIntegrationMessage(context.Background(), server.URL+"/hooks/abc", "secret", "deploy finished")
		require.NoError(t, err)
	})

	t.Run("buzz message", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusOK, nil, func(request *http.Request) {
			var body map[string]string

			decodeBody(t, request, &body)
			assert.Equal(t, map[string]string{"title": "Heads up", "text": "**bold**"}, body)
		})

		err := NewWebhooks(nil).PostBuzzMessage(context.Background(), server.URL, &domo.BuzzMessage{
			Title: domo.Ptr("Heads up"),
			Text:  "**bold**",
		})
		require.NoError(t, err)
	})

	t.Run("buzz message without title", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusOK, nil, func(request *http.Request) {
			var body map[string]interface{}

			decodeBody(t, request, &body)
			assert.NotContains(t, body, "title")
		})

		err := NewWebhooks(nil).PostBuzzMessage(context.Background(), server.URL, &domo.BuzzMessage{Text: "hi"})
		require.NoError(t, err)
	})

	t.Run("dataset row", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusOK, nil, func(request *http.Request) {
			var body map[string]interface{}

			decodeBody(t, request, &body)
			assert.Equal(t, "Column A Value", body["a"])
			assert.InDelta(t, 43.0, body["b"], 0)
		})

		err := NewWebhooks(nil).PostDataSetJSON(context.Background(), server.URL, domo.NewDataSetJSONTemplate())
		require.NoError(t, err)
	})

	t.Run("rejected", func(t *testing.T) {
		t.Parallel()

		server := newTestServer(t, http.StatusBadRequest, map[string]interface{}{"message": "bad token"}, nil)

		err := NewWebhooks(nil).PostIntegrationMessage(context.Background(), server.URL, "nope", "x")
		require.Error(t, err)
		assert.Equal(t, 400, domo.StatusCode(err))
	})
}
