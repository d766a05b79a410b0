//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	Host         string
	ClientID     string
	ClientSecret string
	DomoPath     string
	Verbose      bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		Host:         os.Getenv("DOMO_API_HOST"),
		ClientID:     os.Getenv("DOMO_API_CLIENT_ID"),
		ClientSecret: os.Getenv("DOMO_API_CLIENT_SECRET"),
		DomoPath:     getDomoPath(),
		Verbose:      os.Getenv("DOMO_VERBOSE") == "true",
	}
}

// getDomoPath determines the path to the domo binary
func getDomoPath() string {
	if path := os.Getenv("DOMO_BINARY_PATH"); path != "" {
		return path
	}

	candidates := []string{
		"../../domo",
		"./domo",
		"../domo",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "domo"
}

// SkipIfMissingConfig skips test if required config is missing
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.ClientID == "" || config.ClientSecret == "" {
		t.Skip("DOMO_API_CLIENT_ID or DOMO_API_CLIENT_SECRET not set, skipping integration test")
	}

	if _, err := exec.LookPath(config.DomoPath); err != nil {
		t.Skipf("domo binary not found at %s, skipping integration test", config.DomoPath)
	}
}

// CommandRunner runs the domo binary against a live instance
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	t.Helper()

	return &CommandRunner{
		config: config,
		t:      t,
	}
}

// Run executes a domo command and returns output. Credentials reach the
// binary through the inherited environment.
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	return runner.RunWithInput("", args...)
}

// RunWithInput executes a domo command with stdin input
func (runner *CommandRunner) RunWithInput(input string, args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(runner.config.DomoPath, args...)

	var stdoutBuf, stderrBuf bytes.Buffer

	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	cmd.Stdin = strings.NewReader(input)

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.DomoPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// RunJSON executes a domo command with --template json and decodes stdout into v
func (runner *CommandRunner) RunJSON(v interface{}, args ...string) error {
	stdout, stderr, err := runner.Run(append(args, "--template", "json")...)
	if err != nil {
		return fmt.Errorf("%w: %s", err, stderr)
	}

	return json.Unmarshal([]byte(stdout), v)
}

// WriteInputFile writes content to a temporary file for --file
func WriteInputFile(t *testing.T, name, content string) string {
	t.Helper()

	path := t.TempDir() + string(os.PathSeparator) + name

	err := os.WriteFile(path, []byte(content), 0o600)
	if err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}

	return path
}

// GenerateTestName creates a unique test resource name
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().Unix())
}

// CleanupResource attempts to delete a test resource
func (runner *CommandRunner) CleanupResource(resourceType, id string) {
	var args []string

	switch resourceType {
	case "group", "user", "dataset", "page":
		args = []string{resourceType, "delete", id}
	default:
		runner.t.Logf("Unknown resource type for cleanup: %s", resourceType)

		return
	}

	stdout, stderr, err := runner.Run(args...)
	if err != nil && runner.config.Verbose {
		runner.t.Logf("Cleanup warning for %s %s: %s\nStderr: %s", resourceType, id, stdout, stderr)
	}
}
