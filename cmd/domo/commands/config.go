package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/fivetwenty-io/domo-cli/pkg/domo"
	"github.com/fivetwenty-io/domo-cli/pkg/domoclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// LoadConfig resolves the client configuration from flags, environment and
// config file. A missing client secret is prompted for on a terminal.
func LoadConfig(cmd *cobra.Command) (*domo.Config, error) {
	clientID := viper.GetString("clientid")
	clientSecret := viper.GetString("clientsecret")

	if clientID == "" {
		return nil, ErrMissingCredentials
	}

	if clientSecret == "" {
		if !isTerminal(os.Stdin) {
			return nil, ErrMissingCredentials
		}

		secret, err := promptSecret(cmd.ErrOrStderr())
		if err != nil {
			return nil, err
		}

		if secret == "" {
			return nil, ErrMissingCredentials
		}

		clientSecret = secret
	}

	config := &domo.Config{
		Host:         viper.GetString("host"),
		ClientID:     clientID,
		ClientSecret: clientSecret,
		HTTPTimeout:  viper.GetDuration("timeout"),
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = NewStderrLogger(cmd.ErrOrStderr())
	}

	return config, nil
}

func promptSecret(w io.Writer) (string, error) {
	_, _ = fmt.Fprint(w, "Client secret: ")

	secret, err := term.ReadPassword(int(os.Stdin.Fd())) //nolint:gosec // file descriptors fit in int
	_, _ = fmt.Fprintln(w)

	if err != nil {
		return "", fmt.Errorf("reading client secret: %w", err)
	}

	return strings.TrimSpace(string(secret)), nil
}

// CreateClient builds an API client from the resolved configuration.
func CreateClient(cmd *cobra.Command) (domo.Client, error) {
	config, err := LoadConfig(cmd)
	if err != nil {
		return nil, err
	}

	return domoclient.New(config)
}

// CreateWebhooksClient builds the unauthenticated webhook client.
func CreateWebhooksClient(cmd *cobra.Command) domo.WebhooksClient {
	config := &domo.Config{HTTPTimeout: viper.GetDuration("timeout")}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = NewStderrLogger(cmd.ErrOrStderr())
	}

	return domoclient.NewWebhooks(config)
}

// StderrLogger writes domo.Logger calls as logfmt lines without timestamps.
type StderrLogger struct {
	logger *slog.Logger
}

// NewStderrLogger creates a logger writing to w.
func NewStderrLogger(w io.Writer) *StderrLogger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			if len(groups) == 0 && attr.Key == slog.TimeKey {
				return slog.Attr{}
			}

			return attr
		},
	})

	return &StderrLogger{logger: slog.New(handler)}
}

// Debug implements domo.Logger.
func (l *StderrLogger) Debug(msg string, fields map[string]interface{}) {
	l.log(slog.LevelDebug, msg, fields)
}

// Info implements domo.Logger.
func (l *StderrLogger) Info(msg string, fields map[string]interface{}) {
	l.log(slog.LevelInfo, msg, fields)
}

// Warn implements domo.Logger.
func (l *StderrLogger) Warn(msg string, fields map[string]interface{}) {
	l.log(slog.LevelWarn, msg, fields)
}

// Error implements domo.Logger.
func (l *StderrLogger) Error(msg string, fields map[string]interface{}) {
	l.log(slog.LevelError, msg, fields)
}

// log emits fields in key order.
func (l *StderrLogger) log(level slog.Level, msg string, fields map[string]interface{}) {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	attrs := make([]slog.Attr, 0, len(keys))
	for _, key := range keys {
		attrs = append(attrs, slog.Any(key, fields[key]))
	}

	l.logger.LogAttrs(context.Background(), level, msg, attrs...)
}

var _ domo.Logger = (*StderrLogger)(nil)
