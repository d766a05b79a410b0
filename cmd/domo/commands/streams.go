package commands

import (
	"fmt"

	"github.com/fivetwenty-io/domo-cli/pkg/domo"
	"github.com/spf13/cobra"
)

// NewStreamsCommand creates the stream command group.
func NewStreamsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stream",
		Aliases: []string{"streams"},
		Short:   "Manage streams",
		Long: `Manage streams and their executions. An execution uploads data to the
stream's dataset in parts and is finalized by a commit.`,
	}

	cmd.AddCommand(newStreamsListCommand())
	cmd.AddCommand(newStreamsListAllCommand())
	cmd.AddCommand(newStreamsCreateCommand())
	cmd.AddCommand(newStreamsRetrieveCommand())
	cmd.AddCommand(newStreamsUpdateCommand())
	cmd.AddCommand(newStreamsDeleteCommand())
	cmd.AddCommand(newStreamsSearchOwnersCommand())
	cmd.AddCommand(newStreamsSearchIDsCommand())
	cmd.AddCommand(newStreamsListExecutionsCommand())
	cmd.AddCommand(newStreamsCreateExecutionCommand())
	cmd.AddCommand(newStreamsRetrieveExecutionCommand())
	cmd.AddCommand(newStreamsUploadPartCommand())
	cmd.AddCommand(newStreamsCommitExecutionCommand())
	cmd.AddCommand(newStreamsAbortExecutionCommand())

	return cmd
}

func newStreamsListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List streams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			streams, err := client.Streams().List(commandContext(cmd), listOptions(cmd))
			if err != nil {
				return fmt.Errorf("failed to list streams: %w", err)
			}

			return renderList(cmd, streams)
		},
	}

	addListFlags(cmd)

	return cmd
}

func newStreamsListAllCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list-all",
		Short: "List all streams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			streams, err := client.Streams().ListAll(commandContext(cmd))
			if err != nil {
				return fmt.Errorf("failed to list streams: %w", err)
			}

			return renderList(cmd, streams)
		},
	}
}

func newStreamsCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a stream",
		Long:  "Create a stream together with the dataset it feeds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			stream, err := editInput(cmd, domo.NewStreamTemplate())
			if err != nil {
				return err
			}

			created, err := client.Streams().Create(commandContext(cmd), stream)
			if err != nil {
				return fmt.Errorf("failed to create stream: %w", err)
			}

			return renderObject(cmd, created)
		},
	}

	addFileFlag(cmd)

	return cmd
}

func newStreamsRetrieveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "retrieve STREAM_ID",
		Aliases: []string{"get"},
		Short:   "Retrieve a stream",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			stream, err := client.Streams().Get(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to get stream: %w", err)
			}

			return renderObject(cmd, stream)
		},
	}
}

func newStreamsUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update STREAM_ID",
		Short: "Update a stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)

			stream, err := client.Streams().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get stream: %w", err)
			}

			stream, err = editInput(cmd, stream)
			if err != nil {
				return err
			}

			updated, err := client.Streams().Update(ctx, args[0], stream)
			if err != nil {
				return fmt.Errorf("failed to update stream: %w", err)
			}

			return renderObject(cmd, updated)
		},
	}

	addFileFlag(cmd)

	return cmd
}

func newStreamsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete STREAM_ID",
		Short: "Delete a stream",
		Long:  "Delete a stream. The dataset it feeds is kept.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			err = client.Streams().Delete(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete stream: %w", err)
			}

			return nil
		},
	}
}

func newStreamsSearchOwnersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search-owners OWNER_ID",
		Short: "Search streams by dataset owner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			streams, err := client.Streams().SearchByOwnerID(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to search streams: %w", err)
			}

			return renderList(cmd, streams)
		},
	}
}

func newStreamsSearchIDsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search-ids DATASET_ID",
		Short: "Search streams by dataset id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			streams, err := client.Streams().SearchByDataSetID(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to search streams: %w", err)
			}

			return renderList(cmd, streams)
		},
	}
}

func newStreamsListExecutionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list-executions STREAM_ID",
		Short: "List a stream's executions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			executions, err := client.Streams().ListExecutions(commandContext(cmd), args[0], listOptions(cmd))
			if err != nil {
				return fmt.Errorf("failed to list executions: %w", err)
			}

			return renderList(cmd, executions)
		},
	}

	addListFlags(cmd)

	return cmd
}

func newStreamsCreateExecutionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create-execution STREAM_ID",
		Short: "Start a stream execution",
		Long:  "Create an execution to start sending data to a stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			execution, err := client.Streams().CreateExecution(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to create execution: %w", err)
			}

			return renderObject(cmd, execution)
		},
	}
}

func newStreamsRetrieveExecutionCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "retrieve-execution STREAM_ID EXECUTION_ID",
		Aliases: []string{"get-execution"},
		Short:   "Retrieve a stream execution",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			execution, err := client.Streams().GetExecution(commandContext(cmd), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to get execution: %w", err)
			}

			return renderObject(cmd, execution)
		},
	}
}

func newStreamsUploadPartCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "upload-part FILE STREAM_ID EXECUTION_ID PART_ID",
		Short: "Upload a CSV part to an execution",
		Long: `Upload a chunk of CSV rows to an execution. Number parts in increasing order.
A failed part can be uploaded again under the same id; every part must be
present before the execution is committed. Use - to read standard input.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, closeData, err := openInput(cmd, args[0])
			if err != nil {
				return err
			}
			defer closeData()

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			_, err = client.Streams().UploadPart(commandContext(cmd), args[1], args[2], args[3], data)
			if err != nil {
				return fmt.Errorf("failed to upload part: %w", err)
			}

			return nil
		},
	}
}

func newStreamsCommitExecutionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "commit-execution STREAM_ID EXECUTION_ID",
		Short: "Commit a stream execution",
		Long:  "Commit an execution, importing every uploaded part. The server allows one commit per stream every 15 minutes.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			execution, err := client.Streams().Commit(commandContext(cmd), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to commit execution: %w", err)
			}

			return renderObject(cmd, execution)
		},
	}
}

func newStreamsAbortExecutionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "abort-execution STREAM_ID EXECUTION_ID",
		Short: "Abort a stream execution",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			err = client.Streams().Abort(commandContext(cmd), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to abort execution: %w", err)
			}

			return nil
		},
	}
}
