package commands

import (
	"fmt"

	"github.com/fivetwenty-io/domo-cli/pkg/domo"
	"github.com/spf13/cobra"
)

// NewGroupsCommand creates the group command group.
func NewGroupsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "group",
		Aliases: []string{"groups"},
		Short:   "Manage groups",
		Long:    "List, create, update and delete groups and manage their members",
	}

	cmd.AddCommand(newGroupsListCommand())
	cmd.AddCommand(newGroupsListAllCommand())
	cmd.AddCommand(newGroupsCreateCommand())
	cmd.AddCommand(newGroupsRetrieveCommand())
	cmd.AddCommand(newGroupsUpdateCommand())
	cmd.AddCommand(newGroupsDeleteCommand())
	cmd.AddCommand(newGroupsListUsersCommand())
	cmd.AddCommand(newGroupsAddUserCommand())
	cmd.AddCommand(newGroupsRemoveUserCommand())

	return cmd
}

func newGroupsListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			groups, err := client.Groups().List(commandContext(cmd), listOptions(cmd))
			if err != nil {
				return fmt.Errorf("failed to list groups: %w", err)
			}

			return renderList(cmd, groups)
		},
	}

	addListFlags(cmd)

	return cmd
}

func newGroupsListAllCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list-all",
		Short: "List all groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			groups, err := client.Groups().ListAll(commandContext(cmd))
			if err != nil {
				return fmt.Errorf("failed to list groups: %w", err)
			}

			return renderList(cmd, groups)
		},
	}
}

func newGroupsCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			group, err := editInput(cmd, domo.NewGroupTemplate())
			if err != nil {
				return err
			}

			created, err := client.Groups().Create(commandContext(cmd), group)
			if err != nil {
				return fmt.Errorf("failed to create group: %w", err)
			}

			return renderObject(cmd, created)
		},
	}

	addFileFlag(cmd)

	return cmd
}

func newGroupsRetrieveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "retrieve GROUP_ID",
		Aliases: []string{"get"},
		Short:   "Retrieve a group",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			group, err := client.Groups().Get(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to get group: %w", err)
			}

			return renderObject(cmd, group)
		},
	}
}

func newGroupsUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update GROUP_ID",
		Short: "Update a group",
		Long:  "Update a group. Attributes left out of the edited object keep their current value.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)

			group, err := client.Groups().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get group: %w", err)
			}

			group, err = editInput(cmd, group)
			if err != nil {
				return err
			}

			updated, err := client.Groups().Update(ctx, args[0], group)
			if err != nil {
				return fmt.Errorf("failed to update group: %w", err)
			}

			return renderObject(cmd, updated)
		},
	}

	addFileFlag(cmd)

	return cmd
}

func newGroupsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete GROUP_ID",
		Short: "Delete a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			err = client.Groups().Delete(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete group: %w", err)
			}

			return nil
		},
	}
}

func newGroupsListUsersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list-users GROUP_ID",
		Short: "List the user ids in a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			users, err := client.Groups().ListUsers(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to list group users: %w", err)
			}

			return renderList(cmd, users)
		},
	}
}

func newGroupsAddUserCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add-user GROUP_ID USER_ID",
		Short: "Add a user to a group",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			err = client.Groups().AddUser(commandContext(cmd), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to add user to group: %w", err)
			}

			return nil
		},
	}
}

func newGroupsRemoveUserCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-user GROUP_ID USER_ID",
		Short: "Remove a user from a group",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			err = client.Groups().RemoveUser(commandContext(cmd), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to remove user from group: %w", err)
			}

			return nil
		},
	}
}
