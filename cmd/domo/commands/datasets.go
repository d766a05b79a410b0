package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fivetwenty-io/domo-cli/pkg/domo"
	"github.com/spf13/cobra"
)

// NewDataSetsCommand creates the dataset command group.
func NewDataSetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dataset",
		Aliases: []string{"datasets", "ds"},
		Short:   "Manage datasets",
		Long:    "Manage datasets, their data and their personalized data permission (PDP) policies",
	}

	cmd.AddCommand(newDataSetsListCommand())
	cmd.AddCommand(newDataSetsListAllCommand())
	cmd.AddCommand(newDataSetsCreateCommand())
	cmd.AddCommand(newDataSetsRetrieveCommand())
	cmd.AddCommand(newDataSetsUpdateCommand())
	cmd.AddCommand(newDataSetsDeleteCommand())
	cmd.AddCommand(newDataSetsImportCommand())
	cmd.AddCommand(newDataSetsExportCommand())
	cmd.AddCommand(newDataSetsQueryCommand())
	cmd.AddCommand(newDataSetsListPoliciesCommand())
	cmd.AddCommand(newDataSetsCreatePolicyCommand())
	cmd.AddCommand(newDataSetsRetrievePolicyCommand())
	cmd.AddCommand(newDataSetsUpdatePolicyCommand())
	cmd.AddCommand(newDataSetsDeletePolicyCommand())

	return cmd
}

func newDataSetsListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List datasets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			datasets, err := client.DataSets().List(commandContext(cmd), listOptions(cmd))
			if err != nil {
				return fmt.Errorf("failed to list datasets: %w", err)
			}

			return renderList(cmd, datasets)
		},
	}

	addListFlags(cmd)

	return cmd
}

func newDataSetsListAllCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list-all",
		Short: "List all datasets",
		Long:  "Page through every dataset, 50 at a time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			datasets, err := client.DataSets().ListAll(commandContext(cmd))
			if err != nil {
				return fmt.Errorf("failed to list datasets: %w", err)
			}

			return renderList(cmd, datasets)
		},
	}
}

func newDataSetsCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			dataset, err := editInput(cmd, domo.NewDataSetTemplate())
			if err != nil {
				return err
			}

			created, err := client.DataSets().Create(commandContext(cmd), dataset)
			if err != nil {
				return fmt.Errorf("failed to create dataset: %w", err)
			}

			return renderObject(cmd, created)
		},
	}

	addFileFlag(cmd)

	return cmd
}

func newDataSetsRetrieveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "retrieve DATASET_ID",
		Aliases: []string{"get"},
		Short:   "Retrieve a dataset",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			dataset, err := client.DataSets().Get(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to get dataset: %w", err)
			}

			return renderObject(cmd, dataset)
		},
	}
}

func newDataSetsUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update DATASET_ID",
		Short: "Update a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)

			dataset, err := client.DataSets().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get dataset: %w", err)
			}

			dataset, err = editInput(cmd, dataset)
			if err != nil {
				return err
			}

			updated, err := client.DataSets().Update(ctx, args[0], dataset)
			if err != nil {
				return fmt.Errorf("failed to update dataset: %w", err)
			}

			return renderObject(cmd, updated)
		},
	}

	addFileFlag(cmd)

	return cmd
}

func newDataSetsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete DATASET_ID",
		Short: "Delete a dataset",
		Long:  "Permanently delete a dataset. This works for every dataset, not only those created through the API.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			err = client.DataSets().Delete(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete dataset: %w", err)
			}

			return nil
		},
	}
}

func newDataSetsImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE DATASET_ID",
		Short: "Replace a dataset's data with a CSV file",
		Long:  "Import a CSV file into a dataset. The file replaces all data currently in the dataset. Use - to read standard input.",
		Args:  cobra.ExactArgs(2),
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

			err = client.DataSets().Import(commandContext(cmd), args[1], data)
			if err != nil {
				return fmt.Errorf("failed to import dataset data: %w", err)
			}

			return nil
		},
	}
}

// openInput opens path for reading, or standard input when path is "-".
func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}

	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	return file, func() { _ = file.Close() }, nil
}

func newDataSetsExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export DATASET_ID",
		Short: "Export a dataset's data",
		Long:  "Export a dataset as CSV including the header row. With -t json or -t yaml the CSV is parsed into rows of fields.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			data, err := client.DataSets().Export(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to export dataset data: %w", err)
			}

			renderer, err := rendererFor(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			return renderer.CSVText(commandContext(cmd), data)
		},
	}
}

func newDataSetsQueryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "query DATASET_ID SQL",
		Short: "Query a dataset with SQL",
		Long:  "Run a SQL query against a dataset, e.g. \"SELECT * FROM table\". With -t csv the rows are written as CSV under the column names.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			result, err := client.DataSets().Query(commandContext(cmd), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to query dataset: %w", err)
			}

			renderer, err := rendererFor(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			return renderer.QueryResult(commandContext(cmd), result)
		},
	}
}

func newDataSetsListPoliciesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list-policies DATASET_ID",
		Short: "List a dataset's PDP policies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			policies, err := client.DataSets().ListPolicies(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to list policies: %w", err)
			}

			return renderList(cmd, policies)
		},
	}
}

func newDataSetsCreatePolicyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-policy DATASET_ID",
		Short: "Create a PDP policy",
		Long:  "Create a PDP policy granting users or groups access to rows of a dataset. The users and groups must already exist.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			policy, err := editInput(cmd, domo.NewPolicyTemplate())
			if err != nil {
				return err
			}

			created, err := client.DataSets().CreatePolicy(commandContext(cmd), args[0], policy)
			if err != nil {
				return fmt.Errorf("failed to create policy: %w", err)
			}

			return renderObject(cmd, created)
		},
	}

	addFileFlag(cmd)

	return cmd
}

func newDataSetsRetrievePolicyCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "retrieve-policy DATASET_ID POLICY_ID",
		Aliases: []string{"get-policy"},
		Short:   "Retrieve a PDP policy",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			policy, err := client.DataSets().GetPolicy(commandContext(cmd), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to get policy: %w", err)
			}

			return renderObject(cmd, policy)
		},
	}
}

func newDataSetsUpdatePolicyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-policy DATASET_ID POLICY_ID",
		Short: "Update a PDP policy",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)

			policy, err := client.DataSets().GetPolicy(ctx, args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to get policy: %w", err)
			}

			policy, err = editInput(cmd, policy)
			if err != nil {
				return err
			}

			updated, err := client.DataSets().UpdatePolicy(ctx, args[0], args[1], policy)
			if err != nil {
				return fmt.Errorf("failed to update policy: %w", err)
			}

			return renderObject(cmd, updated)
		},
	}

	addFileFlag(cmd)

	return cmd
}

func newDataSetsDeletePolicyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-policy DATASET_ID POLICY_ID",
		Short: "Delete a PDP policy",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			err = client.DataSets().DeletePolicy(commandContext(cmd), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to delete policy: %w", err)
			}

			return nil
		},
	}
}
