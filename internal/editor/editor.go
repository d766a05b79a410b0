// Package editor stages values in a temporary file, opens them in an external
// editor and reads the result back.
package editor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/fivetwenty-io/domo-cli/internal/constants"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Static errors for the edit round trip.
var (
	ErrEditorFailed   = errors.New("editor failed")
	ErrNoEditor       = errors.New("no editor configured")
	ErrUnknownFileExt = errors.New("unsupported file extension")
)

// Editor runs an external program against a staged temp file.
type Editor struct {
	command string
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
}

// Option configures an Editor.
type Option func(*Editor)

// WithStreams attaches the editor process to the given streams.
func WithStreams(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(e *Editor) {
		e.stdin = stdin
		e.stdout = stdout
		e.stderr = stderr
	}
}

// New creates an Editor for command. The command may carry arguments, e.g.
// "code --wait"; the staged file path is appended as the last argument.
func New(command string, opts ...Option) *Editor {
	e := &Editor{
		command: command,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Command returns the configured editor command line.
func (e *Editor) Command() string {
	return e.command
}

// EditObject renders obj as YAML followed by help as comment lines, runs the
// editor and decodes the saved buffer into a fresh T.
func EditObject[T any](ctx context.Context, e *Editor, obj *T, help string) (*T, error) {
	var buf bytes.Buffer

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(constants.JSONIndentSize)

	err := encoder.Encode(obj)
	if err != nil {
		return nil, fmt.Errorf("encoding edit buffer: %w", err)
	}

	_ = encoder.Close()

	buf.WriteString(commentLines(help))

	edited, err := e.edit(ctx, buf.Bytes(), "*.yml")
	if err != nil {
		return nil, err
	}

	var result T

	err = yaml.Unmarshal(edited, &result)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing edited yaml: %w", ErrEditorFailed, err)
	}

	return &result, nil
}

// EditText opens text in the editor as markdown and returns the saved text
// with surrounding whitespace trimmed.
func (e *Editor) EditText(ctx context.Context, text string) (string, error) {
	edited, err := e.edit(ctx, []byte(text), "*.md")
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(edited)), nil
}

func (e *Editor) edit(ctx context.Context, content []byte, pattern string) ([]byte, error) {
	args := strings.Fields(e.command)
	if len(args) == 0 {
		return nil, ErrNoEditor
	}

	file, err := os.CreateTemp("", "domo-"+pattern)
	if err != nil {
		return nil, fmt.Errorf("creating edit buffer: %w", err)
	}

	path := file.Name()
	defer func() { _ = os.Remove(path) }()

	err = file.Chmod(constants.EditBufferPerm)
	if err == nil {
		_, err = file.Write(content)
	}

	closeErr := file.Close()
	if err == nil {
		err = closeErr
	}

	if err != nil {
		return nil, fmt.Errorf("writing edit buffer: %w", err)
	}

	//nolint:gosec // the editor command is user configuration
	cmd := exec.CommandContext(ctx, args[0], append(args[1:], path)...)
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	err = cmd.Run()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrEditorFailed, e.command, err)
	}

	edited, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("reading edit buffer: %w", err)
	}

	return edited, nil
}

func commentLines(help string) string {
	help = strings.TrimSpace(help)
	if help == "" {
		return ""
	}

	var sb strings.Builder

	sb.WriteString("\n")

	for _, line := range strings.Split(help, "\n") {
		sb.WriteString("# ")
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return sb.String()
}

// LoadFile decodes a YAML, JSON or JSONC file into a fresh T. ".yml" and
// ".yaml" files are read as YAML; ".json" and ".jsonc" have comments and
// trailing commas stripped first.
func LoadFile[T any](path string) (*T, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var result T

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		err = yaml.Unmarshal(data, &result)
	case ".json", ".jsonc":
		err = json.Unmarshal(jsonc.ToJSON(data), &result)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFileExt, path)
	}

	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &result, nil
}
