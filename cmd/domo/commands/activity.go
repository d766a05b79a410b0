package commands

import (
	"fmt"

	"github.com/fivetwenty-io/domo-cli/pkg/domo"
	"github.com/spf13/cobra"
)

// NewActivityCommand creates the activity command group.
func NewActivityCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "activity",
		Aliases: []string{"audit"},
		Short:   "Read the activity log",
	}

	cmd.AddCommand(newActivityListCommand())

	return cmd
}

func newActivityListCommand() *cobra.Command {
	var (
		end    int64
		userID int64
	)

	cmd := &cobra.Command{
		Use:   "list START",
		Short: "List activity log entries",
		Long:  "List activity log entries from START, in epoch milliseconds, optionally up to --end and for one --user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseInt64(args[0], "start time")
			if err != nil {
				return err
			}

			opts := listOptions(cmd)
			query := &domo.ActivityQuery{
				Start:  start,
				Limit:  opts.Limit,
				Offset: opts.Offset,
			}

			if cmd.Flags().Changed("end") {
				query.End = &end
			}

			if cmd.Flags().Changed("user") {
				query.User = &userID
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			entries, err := client.Activity().ListEntries(commandContext(cmd), query)
			if err != nil {
				return fmt.Errorf("failed to list activity entries: %w", err)
			}

			return renderList(cmd, entries)
		},
	}

	cmd.Flags().Int64VarP(&end, "end", "e", 0, "end time in epoch milliseconds")
	cmd.Flags().Int64VarP(&userID, "user", "u", 0, "only entries for this user id")
	addListFlags(cmd)

	return cmd
}
