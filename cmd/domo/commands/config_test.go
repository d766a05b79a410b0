package commands

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) { //nolint:paralleltest // mutates global viper
	t.Run("missing client id", func(t *testing.T) {
		resetViper(t)
		viper.Set("clientsecret", "secret")

		_, err := LoadConfig(&cobra.Command{})
		require.ErrorIs(t, err, ErrMissingCredentials)
	})

	t.Run("resolved settings", func(t *testing.T) {
		resetViper(t)
		viper.Set("host", "api.example.com")
		viper.Set("clientid", "id")
		viper.Set("clientsecret", "secret")
		viper.Set("timeout", "45s")

		config, err := LoadConfig(&cobra.Command{})
		require.NoError(t, err)

		assert.Equal(t, "api.example.com", config.Host)
		assert.Equal(t, "id", config.ClientID)
		assert.Equal(t, "secret", config.ClientSecret)
		assert.Equal(t, 45*time.Second, config.HTTPTimeout)
		assert.False(t, config.Debug)
		assert.Nil(t, config.Logger)
	})

	t.Run("verbose attaches a logger", func(t *testing.T) {
		resetViper(t)
		viper.Set("clientid", "id")
		viper.Set("clientsecret", "secret")
		viper.Set("verbose", true)

		config, err := LoadConfig(&cobra.Command{})
		require.NoError(t, err)

		assert.True(t, config.Debug)
		assert.NotNil(t, config.Logger)
	})
}

func TestCreateClient(t *testing.T) { //nolint:paralleltest // mutates global viper
	resetViper(t)
	viper.Set("host", "api.example.com")
	viper.Set("clientid", "id")
	viper.Set("clientsecret", "secret")

	client, err := CreateClient(&cobra.Command{})
	require.NoError(t, err)
	assert.NotNil(t, client.DataSets())
	assert.NotNil(t, client.Webhooks())
}

func TestStderrLogger(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	logger := NewStderrLogger(&out)
	logger.Debug("request", map[string]interface{}{"b": "x", "a": 1})
	logger.Error("failed", nil)

	assert.Equal(t, "level=DEBUG msg=request a=1 b=x\nlevel=ERROR msg=failed\n", out.String())
}
