package editor_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/fivetwenty-io/domo-cli/internal/editor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name  *string `json:"name,omitempty"  yaml:"name,omitempty"`
	Count *int    `json:"count,omitempty" yaml:"count,omitempty"`
}

// fakeEditor writes a shell script that runs body with the staged file as $1
// and returns the editor command line plus a scratch directory.
func fakeEditor(t *testing.T, body string) (string, string) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("fake editor requires a POSIX shell")
	}

	// t.TempDir may contain spaces, which the command line cannot carry.
	dir, err := os.MkdirTemp("", "domo-editor")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(dir) })

	path := filepath.Join(dir, "editor.sh")
	err = os.WriteFile(path, []byte(body+"\n"), 0o600)
	require.NoError(t, err)

	return "/bin/sh " + path, dir
}

func quiet(command string) *editor.Editor {
	return editor.New(command, editor.WithStreams(nil, nil, nil))
}

func TestEditObject(t *testing.T) {
	t.Parallel()

	t.Run("decodes the saved buffer", func(t *testing.T) {
		t.Parallel()

		script, _ := fakeEditor(t, `printf 'name: Edited\n' > "$1"`)
		name := "Original"
		count := 3

		result, err := editor.EditObject(context.Background(), quiet(script), &record{Name: &name, Count: &count}, "")
		require.NoError(t, err)
		require.NotNil(t, result.Name)
		assert.Equal(t, "Edited", *result.Name)
		assert.Nil(t, result.Count, "fields removed in the editor must not survive")
	})

	t.Run("stages yaml with help comments and removes the file", func(t *testing.T) {
		t.Parallel()

		script, dir := fakeEditor(t, `cp "$1" "$(dirname "$0")/capture"; printf '%s' "$1" > "$(dirname "$0")/staged"`)
		capture := filepath.Join(dir, "capture")
		staged := filepath.Join(dir, "staged")
		name := "Original"

		result, err := editor.EditObject(context.Background(), quiet(script), &record{Name: &name}, "Save and quit\nto submit")
		require.NoError(t, err)
		assert.Equal(t, "Original", *result.Name)

		content, err := os.ReadFile(capture)
		require.NoError(t, err)
		assert.Contains(t, string(content), "name: Original\n")
		assert.Contains(t, string(content), "# Save and quit\n# to submit\n")

		path, err := os.ReadFile(staged)
		require.NoError(t, err)
		assert.Equal(t, ".yml", filepath.Ext(string(path)))
		assert.NoFileExists(t, string(path))
	})

	t.Run("editor exit status", func(t *testing.T) {
		t.Parallel()

		script, dir := fakeEditor(t, `printf '%s' "$1" > "$(dirname "$0")/staged"; exit 3`)
		staged := filepath.Join(dir, "staged")

		_, err := editor.EditObject(context.Background(), quiet(script), &record{}, "")
		require.ErrorIs(t, err, editor.ErrEditorFailed)

		path, readErr := os.ReadFile(staged)
		require.NoError(t, readErr)
		assert.NoFileExists(t, string(path))
	})

	t.Run("unparseable result", func(t *testing.T) {
		t.Parallel()

		script, _ := fakeEditor(t, `printf 'name: [unterminated\n' > "$1"`)

		_, err := editor.EditObject(context.Background(), quiet(script), &record{}, "")
		require.ErrorIs(t, err, editor.ErrEditorFailed)
	})

	t.Run("empty command", func(t *testing.T) {
		t.Parallel()

		_, err := editor.EditObject(context.Background(), quiet("  "), &record{}, "")
		require.ErrorIs(t, err, editor.ErrNoEditor)
	})
}

func TestEditor_EditText(t *testing.T) {
	t.Parallel()

	script, dir := fakeEditor(t, `printf '%s' "$1" > "$(dirname "$0")/staged"; printf '\n# Title\n\nbody\n\n' > "$1"`)
	staged := filepath.Join(dir, "staged")

	text, err := quiet(script).EditText(context.Background(), "draft")
	require.NoError(t, err)
	assert.Equal(t, "# Title\n\nbody", text)

	path, err := os.ReadFile(staged)
	require.NoError(t, err)
	assert.Equal(t, ".md", filepath.Ext(string(path)))
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		return path
	}

	tests := []struct {
		name      string
		path      string
		wantName  string
		wantCount int
		wantErr   error
	}{
		{
			name:      "yaml",
			path:      write("in.yaml", "name: From YAML\ncount: 2\n"),
			wantName:  "From YAML",
			wantCount: 2,
		},
		{
			name:      "json",
			path:      write("in.json", `{"name":"From JSON","count":5}`),
			wantName:  "From JSON",
			wantCount: 5,
		},
		{
			name:      "jsonc with comments and trailing comma",
			path:      write("in.jsonc", "{\n  // comment\n  \"name\": \"From JSONC\",\n  \"count\": 7,\n}\n"),
			wantName:  "From JSONC",
			wantCount: 7,
		},
		{
			name:    "unknown extension",
			path:    write("in.txt", "name: x"),
			wantErr: editor.ErrUnknownFileExt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := editor.LoadFile[record](tt.path)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantName, *result.Name)
			assert.Equal(t, tt.wantCount, *result.Count)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := editor.LoadFile[record](filepath.Join(dir, "missing.yml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
