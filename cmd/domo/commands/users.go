package commands

import (
	"fmt"

	"github.com/fivetwenty-io/domo-cli/pkg/domo"
	"github.com/spf13/cobra"
)

// NewUsersCommand creates the user command group.
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "user",
		Aliases: []string{"users"},
		Short:   "Manage users",
		Long:    "List, create, update and delete users",
	}

	cmd.AddCommand(newUsersListCommand())
	cmd.AddCommand(newUsersListAllCommand())
	cmd.AddCommand(newUsersListByEmailCommand())
	cmd.AddCommand(newUsersCreateCommand())
	cmd.AddCommand(newUsersRetrieveCommand())
	cmd.AddCommand(newUsersUpdateCommand())
	cmd.AddCommand(newUsersDeleteCommand())

	return cmd
}

func newUsersListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			users, err := client.Users().List(commandContext(cmd), listOptions(cmd))
			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}

			return renderList(cmd, users)
		},
	}

	addListFlags(cmd)

	return cmd
}

func newUsersListAllCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list-all",
		Short: "List all users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			users, err := client.Users().ListAll(commandContext(cmd))
			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}

			return renderList(cmd, users)
		},
	}
}

func newUsersListByEmailCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list-by-email EMAIL...",
		Short: "Look up users by email address",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			users, err := client.Users().BulkByEmail(commandContext(cmd), args)
			if err != nil {
				return fmt.Errorf("failed to look up users: %w", err)
			}

			return renderList(cmd, users)
		},
	}
}

func newUsersCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			user, err := editInput(cmd, domo.NewUserTemplate())
			if err != nil {
				return err
			}

			created, err := client.Users().Create(commandContext(cmd), user)
			if err != nil {
				return fmt.Errorf("failed to create user: %w", err)
			}

			return renderObject(cmd, created)
		},
	}

	addFileFlag(cmd)

	return cmd
}

func newUsersRetrieveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "retrieve USER_ID",
		Aliases: []string{"get"},
		Short:   "Retrieve a user",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			user, err := client.Users().Get(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to get user: %w", err)
			}

			return renderObject(cmd, user)
		},
	}
}

func newUsersUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update USER_ID",
		Short: "Update a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)

			user, err := client.Users().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get user: %w", err)
			}

			user, err = editInput(cmd, user)
			if err != nil {
				return err
			}

			updated, err := client.Users().Update(ctx, args[0], user)
			if err != nil {
				return fmt.Errorf("failed to update user: %w", err)
			}

			return renderObject(cmd, updated)
		},
	}

	addFileFlag(cmd)

	return cmd
}

func newUsersDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete USER_ID",
		Short: "Delete a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			err = client.Users().Delete(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete user: %w", err)
			}

			return nil
		},
	}
}
