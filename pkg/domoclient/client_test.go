package domoclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fivetwenty-io/domo-cli/pkg/domo"
	"github.com/fivetwenty-io/domo-cli/pkg/domoclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("creates client with config", func(t *testing.T) {
		t.Parallel()

		config := &domo.Config{
			Host:         "api.example.com/",
			ClientID:     "id",
			ClientSecret: "secret",
		}

		client, err := domoclient.New(config)
		require.NoError(t, err)
		assert.NotNil(t, client)
		assert.Equal(t, "api.example.com/", config.Host, "caller's config is not modified")
	})

	t.Run("requires config", func(t *testing.T) {
		t.Parallel()

		_, err := domoclient.New(nil)
		require.ErrorIs(t, err, domo.ErrConfigRequired)
	})

	t.Run("requires credentials", func(t *testing.T) {
		t.Parallel()

		_, err := domoclient.New(&domo.Config{Host: "https://api.example.com"})
		require.ErrorIs(t, err, domo.ErrCredentialsRequired)
	})
}

func TestNormalizeHost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: "https://api.domo.com"},
		{in: "api.domo.com", want: "https://api.domo.com"},
		{in: "https://api.domo.com/", want: "https://api.domo.com"},
		{in: "http://localhost:8080", want: "http://localhost:8080"},
	}

	for _, testCase := range tests {
		assert.Equal(t, testCase.want, domoclient.NormalizeHost(testCase.in), testCase.in)
	}
}

func TestNewWithClientCredentials(t *testing.T) {
	t.Parallel()

	client, err := domoclient.NewWithClientCredentials("https://api.example.com", "client-id", "client-secret")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestClientIntegration(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch request.URL.Path {
		case "/oauth/token":
			_ = json.NewEncoder(writer).Encode(map[string]string{"access_token": "abc"})
		case "/v1/users/27":
			assert.Equal(t, "Bearer abc", request.Header.Get("Authorization"))
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{"id": 27, "name": "Ada"})
		default:
			writer.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client, err := domoclient.NewWithClientCredentials(server.URL, "id", "secret")
	require.NoError(t, err)

	user, err := client.Users().Get(context.Background(), "27")
	require.NoError(t, err)
	assert.Equal(t, "Ada", *user.Name)
	assert.Nil(t, user.Email)
}
