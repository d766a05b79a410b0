package commands

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/fivetwenty-io/domo-cli/internal/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	method string
	token  string
	body   string
}

func newWebhookServer(t *testing.T) (*httptest.Server, *[]capturedRequest) {
	t.Helper()

	var requests []capturedRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		requests = append(requests, capturedRequest{
			method: r.Method,
			token:  r.Header.Get(constants.BuzzBotTokenHeader),
			body:   string(body),
		})

		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	return server, &requests
}

func TestWebhooksBuzzMessage(t *testing.T) { //nolint:paralleltest // reads global viper
	resetViper(t)

	server, requests := newWebhookServer(t)

	cmd := NewWebhooksCommand()
	cmd.SetArgs([]string{"create-buzz-message", "Title", "--url", server.URL, "-m", "hi"})
	require.NoError(t, cmd.Execute())

	require.Len(t, *requests, 1)
	assert.Equal(t, http.MethodPost, (*requests)[0].method)
	assert.JSONEq(t, `{"title":"Title","text":"hi"}`, (*requests)[0].body)
}

func TestWebhooksIntegrationMessage(t *testing.T) { //nolint:paralleltest // reads global viper
	resetViper(t)

	server, requests := newWebhookServer(t)

	cmd := NewWebhooksCommand()
	cmd.SetArgs([]string{"create-integration-message", "--url", server.URL, "--token", "bot-token", "-m", "**done**"})
	require.NoError(t, cmd.Execute())

	require.Len(t, *requests, 1)
	assert.Equal(t, "bot-token", (*requests)[0].token)
	assert.JSONEq(t, `{"content":{"text":"**done**"}}`, (*requests)[0].body)
}

func TestWebhooksDataSetJSONFromFile(t *testing.T) { //nolint:paralleltest // reads global viper
	resetViper(t)

	server, requests := newWebhookServer(t)

	path := filepath.Join(t.TempDir(), "row.json")
	row, err := json.Marshal(map[string]interface{}{"a": "x", "b": 1})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, row, 0o600))

	cmd := NewWebhooksCommand()
	cmd.SetArgs([]string{"create-dataset-json", "--url", server.URL, "--file", path})
	require.NoError(t, cmd.Execute())

	require.Len(t, *requests, 1)
	assert.JSONEq(t, `{"a":"x","b":1}`, (*requests)[0].body)
}

func TestWebhooksErrors(t *testing.T) { //nolint:paralleltest // reads global viper
	t.Run("missing url", func(t *testing.T) {
		resetViper(t)
		t.Setenv(constants.EnvBuzzWebhookURL, "")

		cmd := NewWebhooksCommand()
		cmd.SetArgs([]string{"create-buzz-message", "-m", "hi"})
		cmd.SetErr(io.Discard)
		cmd.SetOut(io.Discard)

		require.ErrorIs(t, cmd.Execute(), constants.ErrMissingWebhookURL)
	})

	t.Run("missing token", func(t *testing.T) {
		resetViper(t)
		t.Setenv(constants.EnvIntegrationWebhookToken, "")

		cmd := NewWebhooksCommand()
		cmd.SetArgs([]string{"create-integration-message", "--url", "http://127.0.0.1:1", "-m", "hi"})
		cmd.SetErr(io.Discard)
		cmd.SetOut(io.Discard)

		require.ErrorIs(t, cmd.Execute(), constants.ErrMissingWebhookToken)
	})

	t.Run("empty message", func(t *testing.T) {
		resetViper(t)

		cmd := NewWebhooksCommand()
		cmd.SetArgs([]string{"create-buzz-message", "--url", "http://127.0.0.1:1", "-m", ""})
		cmd.SetErr(io.Discard)
		cmd.SetOut(io.Discard)

		require.ErrorIs(t, cmd.Execute(), constants.ErrEmptyMessage)
	})
}
