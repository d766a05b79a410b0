package commands

import (
	"fmt"

	"github.com/fivetwenty-io/domo-cli/pkg/domo"
	"github.com/spf13/cobra"
)

// NewBuzzCommand creates the buzz command group.
func NewBuzzCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buzz",
		Short: "Manage Buzz integrations",
		Long:  "Manage Buzz integrations and their event subscriptions",
	}

	cmd.AddCommand(newBuzzListCommand())
	cmd.AddCommand(newBuzzCreateCommand())
	cmd.AddCommand(newBuzzRetrieveCommand())
	cmd.AddCommand(newBuzzDeleteCommand())
	cmd.AddCommand(newBuzzListSubscriptionsCommand())
	cmd.AddCommand(newBuzzCreateSubscriptionCommand())
	cmd.AddCommand(newBuzzDeleteSubscriptionCommand())

	return cmd
}

func newBuzzListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List integrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			integrations, err := client.Buzz().ListIntegrations(commandContext(cmd))
			if err != nil {
				return fmt.Errorf("failed to list integrations: %w", err)
			}

			return renderList(cmd, integrations)
		},
	}
}

func newBuzzCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an integration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			integration, err := editInput(cmd, domo.NewIntegrationTemplate())
			if err != nil {
				return err
			}

			created, err := client.Buzz().CreateIntegration(commandContext(cmd), integration)
			if err != nil {
				return fmt.Errorf("failed to create integration: %w", err)
			}

			return renderObject(cmd, created)
		},
	}

	addFileFlag(cmd)

	return cmd
}

func newBuzzRetrieveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "retrieve INTEGRATION_ID",
		Aliases: []string{"get"},
		Short:   "Retrieve an integration",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			integration, err := client.Buzz().GetIntegration(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to get integration: %w", err)
			}

			return renderObject(cmd, integration)
		},
	}
}

func newBuzzDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete INTEGRATION_ID",
		Short: "Delete an integration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			err = client.Buzz().DeleteIntegration(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete integration: %w", err)
			}

			return nil
		},
	}
}

func newBuzzListSubscriptionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list-subscriptions INTEGRATION_ID",
		Short: "List an integration's subscriptions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			subscriptions, err := client.Buzz().ListSubscriptions(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to list subscriptions: %w", err)
			}

			return renderList(cmd, subscriptions)
		},
	}
}

func newBuzzCreateSubscriptionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-subscription INTEGRATION_ID",
		Short: "Subscribe an integration to an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			subscription, err := editInput(cmd, domo.NewSubscriptionTemplate())
			if err != nil {
				return err
			}

			created, err := client.Buzz().CreateSubscription(commandContext(cmd), args[0], subscription)
			if err != nil {
				return fmt.Errorf("failed to create subscription: %w", err)
			}

			return renderObject(cmd, created)
		},
	}

	addFileFlag(cmd)

	return cmd
}

func newBuzzDeleteSubscriptionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-subscription INTEGRATION_ID SUBSCRIPTION_ID",
		Short: "Delete a subscription",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			err = client.Buzz().DeleteSubscription(commandContext(cmd), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to delete subscription: %w", err)
			}

			return nil
		},
	}
}
