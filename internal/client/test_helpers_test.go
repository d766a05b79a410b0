package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	internalhttp "github.com/fivetwenty-io/domo-cli/internal/http"
)

// newTestServer starts a server that runs check and then writes response as
// JSON with statusCode.
func newTestServer(t *testing.T, statusCode int, response interface{}, check func(*http.Request)) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if check != nil {
			check(request)
		}

		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(statusCode)

		if response != nil {
			_ = json.NewEncoder(writer).Encode(response)
		}
	}))
	t.Cleanup(server.Close)

	return server
}

// newTestHTTPClient returns an unauthenticated client for baseURL.
func newTestHTTPClient(baseURL string) *internalhttp.Client {
	return internalhttp.NewClient(baseURL, nil)
}

// decodeBody decodes a JSON request body into v.
func decodeBody(t *testing.T, request *http.Request, v interface{}) {
	t.Helper()

	err := json.NewDecoder(request.Body).Decode(v)
	if err != nil {
		t.Errorf("decoding request body: %v", err)
	}
}
