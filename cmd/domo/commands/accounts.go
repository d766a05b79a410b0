package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/fivetwenty-io/domo-cli/pkg/domo"
	"github.com/spf13/cobra"
)

// NewAccountsCommand creates the account command group.
func NewAccountsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "account",
		Aliases: []string{"accounts"},
		Short:   "Manage accounts",
		Long:    "List, create, update, share and delete data provider accounts",
	}

	cmd.AddCommand(newAccountsListCommand())
	cmd.AddCommand(newAccountsListAllCommand())
	cmd.AddCommand(newAccountsCreateCommand())
	cmd.AddCommand(newAccountsRetrieveCommand())
	cmd.AddCommand(newAccountsUpdateCommand())
	cmd.AddCommand(newAccountsDeleteCommand())
	cmd.AddCommand(newAccountsShareCommand())
	cmd.AddCommand(newAccountsListTypesCommand())
	cmd.AddCommand(newAccountsRetrieveTypeCommand())

	return cmd
}

func newAccountsListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Long:  "Get a list of the accounts the client has permission to see",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			accounts, err := client.Accounts().List(commandContext(cmd), listOptions(cmd))
			if err != nil {
				return fmt.Errorf("failed to list accounts: %w", err)
			}

			return renderList(cmd, accounts)
		},
	}

	addListFlags(cmd)

	return cmd
}

func newAccountsListAllCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list-all",
		Short: "List all accounts",
		Long:  "Page through every account the client has permission to see",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			accounts, err := client.Accounts().ListAll(commandContext(cmd))
			if err != nil {
				return fmt.Errorf("failed to list accounts: %w", err)
			}

			return renderList(cmd, accounts)
		},
	}
}

func newAccountsCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create ACCOUNT_TYPE_ID",
		Short: "Create an account",
		Long: `Create an account of the given type. The edit buffer is seeded with one
"TODO: <prompt>" property per entry in the type's default template.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)

			account, err := newAccountFromType(ctx, client.Accounts(), args[0])
			if err != nil {
				return err
			}

			account, err = editInput(cmd, account)
			if err != nil {
				return err
			}

			created, err := client.Accounts().Create(ctx, account)
			if err != nil {
				return fmt.Errorf("failed to create account: %w", err)
			}

			return renderObject(cmd, created)
		},
	}

	addFileFlag(cmd)

	return cmd
}

// newAccountFromType fetches the account type and seeds a template account
// from its default property template. A type without one is attached as is.
func newAccountFromType(ctx context.Context, accounts domo.AccountsClient, typeID string) (*domo.Account, error) {
	accountType, err := accounts.GetType(ctx, typeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account type: %w", err)
	}

	account, err := domo.NewAccountForType(accountType)
	if errors.Is(err, domo.ErrNoDefaultTemplate) {
		account = domo.NewAccountTemplate()
		account.Type = accountType

		return account, nil
	}

	return account, err
}

func newAccountsRetrieveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "retrieve ACCOUNT_ID",
		Aliases: []string{"get"},
		Short:   "Retrieve an account",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			account, err := client.Accounts().Get(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to get account: %w", err)
			}

			return renderObject(cmd, account)
		},
	}
}

func newAccountsUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update ACCOUNT_ID",
		Short: "Update an account",
		Long:  "Update an account's metadata and type properties. The API returns no body, so nothing is printed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)

			account, err := client.Accounts().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get account: %w", err)
			}

			account, err = editInput(cmd, account)
			if err != nil {
				return err
			}

			err = client.Accounts().Update(ctx, args[0], account)
			if err != nil {
				return fmt.Errorf("failed to update account: %w", err)
			}

			return nil
		},
	}

	addFileFlag(cmd)

	return cmd
}

func newAccountsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ACCOUNT_ID",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			err = client.Accounts().Delete(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete account: %w", err)
			}

			return nil
		},
	}
}

func newAccountsShareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "share ACCOUNT_ID USER_ID",
		Short: "Share an account with a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseInt64(args[1], "user id")
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			err = client.Accounts().Share(commandContext(cmd), args[0], userID)
			if err != nil {
				return fmt.Errorf("failed to share account: %w", err)
			}

			return nil
		},
	}
}

func newAccountsListTypesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list-types",
		Short: "List account types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			types, err := client.Accounts().ListTypes(commandContext(cmd), listOptions(cmd))
			if err != nil {
				return fmt.Errorf("failed to list account types: %w", err)
			}

			return renderList(cmd, types)
		},
	}

	addListFlags(cmd)

	return cmd
}

func newAccountsRetrieveTypeCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "retrieve-type ACCOUNT_TYPE_ID",
		Aliases: []string{"get-type"},
		Short:   "Retrieve an account type",
		Long:    "Retrieve an account type, including the property templates an account of that type needs",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			accountType, err := client.Accounts().GetType(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to get account type: %w", err)
			}

			return renderObject(cmd, accountType)
		},
	}
}
