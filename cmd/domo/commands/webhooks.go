package commands

import (
	"fmt"

	"github.com/fivetwenty-io/domo-cli/internal/constants"
	"github.com/fivetwenty-io/domo-cli/pkg/domo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// messagePlaceholder seeds the message editor.
const messagePlaceholder = "Your message here"

// NewWebhooksCommand creates the webhook command group. Webhook calls carry
// no API credentials.
func NewWebhooksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "webhook",
		Aliases: []string{"webhooks", "wh"},
		Short:   "Post to inbound webhooks",
		Long:    "Post messages and rows to Buzz, integration and dataset webhooks. No client credentials are needed.",
	}

	cmd.AddCommand(newWebhooksIntegrationMessageCommand())
	cmd.AddCommand(newWebhooksBuzzMessageCommand())
	cmd.AddCommand(newWebhooksDataSetJSONCommand())

	return cmd
}

// webhookSetting reads a command flag, falling back to env when the flag
// was not given.
func webhookSetting(cmd *cobra.Command, flag, env string) string {
	settings := viper.New()
	_ = settings.BindPFlag(flag, cmd.Flags().Lookup(flag))
	_ = settings.BindEnv(flag, env)

	return settings.GetString(flag)
}

// messageText returns --message, or the text written in the editor.
func messageText(cmd *cobra.Command) (string, error) {
	text, _ := cmd.Flags().GetString("message")

	if !cmd.Flags().Changed("message") {
		ed := newEditor(cmd)

		var err error

		text, err = ed.EditText(commandContext(cmd), messagePlaceholder)
		if err != nil {
			return "", err
		}
	}

	if text == "" {
		return "", constants.ErrEmptyMessage
	}

	return text, nil
}

func newWebhooksIntegrationMessageCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-integration-message",
		Short: "Post a message to an integration webhook",
		Long:  "Post a markdown message to an integration webhook, authenticated by the integration token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			url := webhookSetting(cmd, "url", constants.EnvIntegrationWebhookURL)
			if url == "" {
				return fmt.Errorf("%w (--url or %s)", constants.ErrMissingWebhookURL, constants.EnvIntegrationWebhookURL)
			}

			token := webhookSetting(cmd, "token", constants.EnvIntegrationWebhookToken)
			if token == "" {
				return fmt.Errorf("%w (--token or %s)", constants.ErrMissingWebhookToken, constants.EnvIntegrationWebhookToken)
			}

			text, err := messageText(cmd)
			if err != nil {
				return err
			}

			err = CreateWebhooksClient(cmd).PostIntegrationMessage(commandContext(cmd), url, token, text)
			if err != nil {
				return fmt.Errorf("failed to post integration message: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().String("url", "", "integration webhook url (env "+constants.EnvIntegrationWebhookURL+")")
	cmd.Flags().String("token", "", "integration token (env "+constants.EnvIntegrationWebhookToken+")")
	cmd.Flags().StringP("message", "m", "", "message text; opens the editor when omitted")

	return cmd
}

func newWebhooksBuzzMessageCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-buzz-message [TITLE]",
		Short: "Post a message to a Buzz channel webhook",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := webhookSetting(cmd, "url", constants.EnvBuzzWebhookURL)
			if url == "" {
				return fmt.Errorf("%w (--url or %s)", constants.ErrMissingWebhookURL, constants.EnvBuzzWebhookURL)
			}

			text, err := messageText(cmd)
			if err != nil {
				return err
			}

			message := &domo.BuzzMessage{Text: text}
			if len(args) == 1 {
				message.Title = &args[0]
			}

			err = CreateWebhooksClient(cmd).PostBuzzMessage(commandContext(cmd), url, message)
			if err != nil {
				return fmt.Errorf("failed to post buzz message: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().String("url", "", "Buzz webhook url (env "+constants.EnvBuzzWebhookURL+")")
	cmd.Flags().StringP("message", "m", "", "message text; opens the editor when omitted")

	return cmd
}

func newWebhooksDataSetJSONCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-dataset-json",
		Short: "Post a JSON row to a dataset webhook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			url := webhookSetting(cmd, "url", constants.EnvDataSetWebhookURL)
			if url == "" {
				return fmt.Errorf("%w (--url or %s)", constants.ErrMissingWebhookURL, constants.EnvDataSetWebhookURL)
			}

			template := domo.NewDataSetJSONTemplate()

			row, err := editInput(cmd, &template)
			if err != nil {
				return err
			}

			err = CreateWebhooksClient(cmd).PostDataSetJSON(commandContext(cmd), url, *row)
			if err != nil {
				return fmt.Errorf("failed to post dataset row: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().String("url", "", "dataset webhook url (env "+constants.EnvDataSetWebhookURL+")")
	addFileFlag(cmd)

	return cmd
}
