package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccountsCommand(t *testing.T) {
	cmd := NewAccountsCommand()
	assert.Equal(t, "account", cmd.Use)
	assert.Equal(t, []string{"accounts"}, cmd.Aliases)
	assert.Equal(t, "Manage accounts", cmd.Short)

	assert.ElementsMatch(t, []string{
		"list", "list-all", "create", "retrieve", "update", "delete",
		"share", "list-types", "retrieve-type",
	}, subcommandNames(cmd))

	create := findSubcommand(cmd, "create")
	require.NotNil(t, create)
	assert.Equal(t, "create ACCOUNT_TYPE_ID", create.Use)
	assert.NotNil(t, create.Flags().Lookup("file"))

	retrieve := findSubcommand(cmd, "retrieve")
	require.NotNil(t, retrieve)
	assert.Equal(t, []string{"get"}, retrieve.Aliases)
}

func TestNewDataSetsCommand(t *testing.T) {
	cmd := NewDataSetsCommand()
	assert.Equal(t, "dataset", cmd.Use)
	assert.Equal(t, []string{"datasets", "ds"}, cmd.Aliases)

	assert.ElementsMatch(t, []string{
		"list", "list-all", "create", "retrieve", "update", "delete",
		"import", "export", "query",
		"list-policies", "create-policy", "retrieve-policy", "update-policy", "delete-policy",
	}, subcommandNames(cmd))

	importCmd := findSubcommand(cmd, "import")
	require.NotNil(t, importCmd)
	assert.Equal(t, "import FILE DATASET_ID", importCmd.Use)
	require.Error(t, importCmd.Args(importCmd, []string{"data.csv"}))
	require.NoError(t, importCmd.Args(importCmd, []string{"data.csv", "abc"}))
}

func TestNewGroupsCommand(t *testing.T) {
	cmd := NewGroupsCommand()
	assert.Equal(t, "group", cmd.Use)

	assert.ElementsMatch(t, []string{
		"list", "list-all", "create", "retrieve", "update", "delete",
		"list-users", "add-user", "remove-user",
	}, subcommandNames(cmd))
}

func TestNewPagesCommand(t *testing.T) {
	cmd := NewPagesCommand()
	assert.Equal(t, "page", cmd.Use)

	assert.ElementsMatch(t, []string{
		"list", "create", "retrieve", "update", "delete",
		"list-collections", "create-collection", "update-collection", "delete-collection",
	}, subcommandNames(cmd))

	update := findSubcommand(cmd, "update-collection")
	require.NotNil(t, update)
	assert.Equal(t, "update-collection PAGE_ID COLLECTION_ID", update.Use)
	require.NoError(t, update.Args(update, []string{"12", "3"}))
	require.Error(t, update.Args(update, []string{"12", "abc"}))
	require.Error(t, update.Args(update, []string{"12"}))
}

func TestNewStreamsCommand(t *testing.T) {
	cmd := NewStreamsCommand()
	assert.Equal(t, "stream", cmd.Use)

	assert.ElementsMatch(t, []string{
		"list", "list-all", "create", "retrieve", "update", "delete",
		"search-owners", "search-ids",
		"list-executions", "create-execution", "retrieve-execution",
		"upload-part", "commit-execution", "abort-execution",
	}, subcommandNames(cmd))

	executions := findSubcommand(cmd, "list-executions")
	require.NotNil(t, executions)
	assert.NotNil(t, executions.Flags().Lookup("limit"))
	assert.NotNil(t, executions.Flags().Lookup("offset"))

	upload := findSubcommand(cmd, "upload-part")
	require.NotNil(t, upload)
	assert.Equal(t, "upload-part FILE STREAM_ID EXECUTION_ID PART_ID", upload.Use)
}

func TestNewUsersCommand(t *testing.T) {
	cmd := NewUsersCommand()
	assert.Equal(t, "user", cmd.Use)

	assert.ElementsMatch(t, []string{
		"list", "list-all", "list-by-email", "create", "retrieve", "update", "delete",
	}, subcommandNames(cmd))
}

func TestNewWorkflowCommand(t *testing.T) {
	cmd := NewWorkflowCommand()
	assert.Equal(t, "workflow", cmd.Use)
	assert.Equal(t, []string{"projects", "project"}, cmd.Aliases)

	assert.ElementsMatch(t, []string{
		"list", "create", "retrieve", "update", "delete",
		"list-tasks", "list-members", "update-members",
		"list-lists", "create-list", "retrieve-list", "update-list", "delete-list",
		"list-list-tasks", "create-task", "retrieve-task", "update-task", "delete-task",
		"list-attachments", "download-attachment", "upload-attachment", "delete-attachment",
	}, subcommandNames(cmd))

	download := findSubcommand(cmd, "download-attachment")
	require.NotNil(t, download)

	outputFile := download.Flags().Lookup("output-file")
	require.NotNil(t, outputFile)
	assert.Equal(t, "", outputFile.DefValue)
}

func TestNewBuzzCommand(t *testing.T) {
	cmd := NewBuzzCommand()
	assert.Equal(t, "buzz", cmd.Use)

	assert.ElementsMatch(t, []string{
		"list", "create", "retrieve", "delete",
		"list-subscriptions", "create-subscription", "delete-subscription",
	}, subcommandNames(cmd))
}

func TestNewActivityCommand(t *testing.T) {
	cmd := NewActivityCommand()
	assert.Equal(t, "activity", cmd.Use)

	list := findSubcommand(cmd, "list")
	require.NotNil(t, list)
	assert.Equal(t, "list START", list.Use)

	for flag, shorthand := range map[string]string{"end": "e", "user": "u", "limit": "l", "offset": "o"} {
		f := list.Flags().Lookup(flag)
		require.NotNil(t, f, "Flag %s should exist", flag)
		assert.Equal(t, shorthand, f.Shorthand)
	}
}

func TestNewWebhooksCommand(t *testing.T) {
	cmd := NewWebhooksCommand()
	assert.Equal(t, "webhook", cmd.Use)

	assert.ElementsMatch(t, []string{
		"create-integration-message", "create-buzz-message", "create-dataset-json",
	}, subcommandNames(cmd))

	integration := findSubcommand(cmd, "create-integration-message")
	require.NotNil(t, integration)
	assert.NotNil(t, integration.Flags().Lookup("url"))
	assert.NotNil(t, integration.Flags().Lookup("token"))
	assert.NotNil(t, integration.Flags().Lookup("message"))
}

func TestNewVersionCommand(t *testing.T) {
	resetViper(t)

	cmd := NewVersionCommand("1.2.3", "abc123", "unknown")
	assert.Equal(t, "version", cmd.Use)

	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.RunE(cmd, nil))
	assert.Equal(t, "version: 1.2.3\ncommit: abc123\nbuilt: unknown\n", out.String())
}
