package domo

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      *APIError
		expected string
	}{
		{
			name:     "status and message",
			err:      &APIError{Status: 403, Message: "Forbidden"},
			expected: "Forbidden (status: 403)",
		},
		{
			name: "all fields",
			err: &APIError{
				Status:       404,
				StatusReason: Ptr("Not Found"),
				Message:      "DataSet not found",
				Path:         Ptr("/v1/datasets/x"),
				Toe:          Ptr("TOE123"),
			},
			expected: "DataSet not found (status: 404, reason: Not Found, path: /v1/datasets/x, toe: TOE123)",
		},
		{
			name:     "empty optional fields are skipped",
			err:      &APIError{Status: 500, Message: "boom", StatusReason: Ptr("")},
			expected: "boom (status: 500)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAPIError_Decode(t *testing.T) {
	t.Parallel()

	var apiErr APIError

	err := json.Unmarshal([]byte(`{"status":403,"message":"Forbidden"}`), &apiErr)
	require.NoError(t, err)
	assert.Equal(t, 403, apiErr.Status)
	assert.Equal(t, "Forbidden", apiErr.Message)
	assert.Nil(t, apiErr.StatusReason)
	assert.Nil(t, apiErr.Path)
	assert.Nil(t, apiErr.Toe)
}

func TestResponseDecodeError(t *testing.T) {
	t.Parallel()

	cause := errors.New("unexpected end of JSON input")
	err := &ResponseDecodeError{StatusCode: 502, Body: []byte("<html>"), Err: cause}

	assert.Contains(t, err.Error(), "status 502")
	require.ErrorIs(t, err, cause)
}

func TestStatusHelpers(t *testing.T) {
	t.Parallel()

	notFound := fmt.Errorf("getting dataset: %w", &APIError{Status: 404, Message: "Not Found"})
	unauthorized := &APIError{Status: 401, Message: "Unauthorized"}
	forbidden := fmt.Errorf("wrapped: %w", &ResponseDecodeError{StatusCode: 403})
	plain := errors.New("plain")

	assert.True(t, IsNotFound(notFound))
	assert.False(t, IsNotFound(unauthorized))
	assert.True(t, IsUnauthorized(unauthorized))
	assert.True(t, IsForbidden(forbidden))
	assert.Equal(t, 0, StatusCode(plain))
	assert.False(t, IsNotFound(nil))
}
