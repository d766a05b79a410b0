package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/fivetwenty-io/domo-cli/internal/constants"
	"github.com/fivetwenty-io/domo-cli/internal/editor"
	"github.com/fivetwenty-io/domo-cli/pkg/domo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// Flag names shared across commands.
const (
	limitFlag  = "limit"
	offsetFlag = "offset"
	fileFlag   = "file"
)

// editHelp is appended to every YAML edit buffer.
const editHelp = `Edit the object above, then save and quit to submit it.
Quit without saving to submit it unchanged.`

// Common static errors used throughout the commands package.
var (
	ErrMissingCredentials = errors.New("client id and client secret are required (--clientid/--clientsecret or " +
		constants.EnvClientID + "/" + constants.EnvClientSecret + ")")
	ErrNoTerminal = errors.New("the editor needs an interactive terminal; use --file to read input from a file")
)

// addListFlags adds the optional --limit/-l and --offset/-o flags. Unset
// flags are not sent, leaving the page size to the server.
func addListFlags(cmd *cobra.Command) {
	cmd.Flags().IntP(limitFlag, "l", 0, "maximum number of records to return")
	cmd.Flags().IntP(offsetFlag, "o", 0, "number of records to skip")
}

func listOptions(cmd *cobra.Command) *domo.ListOptions {
	opts := domo.NewListOptions()

	if cmd.Flags().Changed(limitFlag) {
		limit, _ := cmd.Flags().GetInt(limitFlag)
		opts.WithLimit(limit)
	}

	if cmd.Flags().Changed(offsetFlag) {
		offset, _ := cmd.Flags().GetInt(offsetFlag)
		opts.WithOffset(offset)
	}

	return opts
}

func addFileFlag(cmd *cobra.Command) {
	cmd.Flags().StringP(fileFlag, "f", "", "read the object from a YAML, JSON or JSONC file instead of the editor")
}

// editInput returns the object to submit: the --file contents when given,
// otherwise obj after a round trip through the configured editor.
func editInput[T any](cmd *cobra.Command, obj *T) (*T, error) {
	path, _ := cmd.Flags().GetString(fileFlag)
	if path != "" {
		return editor.LoadFile[T](path)
	}

	ed := newEditor(cmd)
	if ed.Command() == constants.DefaultEditor && !isTerminal(os.Stdin) {
		return nil, ErrNoTerminal
	}

	return editor.EditObject(commandContext(cmd), ed, obj, editHelp)
}

func newEditor(cmd *cobra.Command) *editor.Editor {
	command := viper.GetString("editor")
	if command == "" {
		command = constants.DefaultEditor
	}

	return editor.New(command, editor.WithStreams(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()))
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int
}

// commandContext returns the command's context, or Background when the
// command was not started through Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}

func parseInt64(value, name string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", constants.ErrInvalidID, name, value)
	}

	return id, nil
}

func renderObject(cmd *cobra.Command, v interface{}) error {
	renderer, err := rendererFor(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	return renderer.Object(commandContext(cmd), v)
}

func renderList(cmd *cobra.Command, v interface{}) error {
	renderer, err := rendererFor(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	return renderer.List(commandContext(cmd), v)
}
