package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fivetwenty-io/domo-cli/internal/constants"
	"github.com/fivetwenty-io/domo-cli/pkg/domo"
	"github.com/spf13/cobra"
)

// NewWorkflowCommand creates the workflow command group.
func NewWorkflowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "workflow",
		Aliases: []string{"projects", "project"},
		Short:   "Manage projects, lists and tasks",
		Long:    "Manage workflow projects, their lists, the tasks on those lists and task attachments",
	}

	cmd.AddCommand(newWorkflowListCommand())
	cmd.AddCommand(newWorkflowCreateCommand())
	cmd.AddCommand(newWorkflowRetrieveCommand())
	cmd.AddCommand(newWorkflowUpdateCommand())
	cmd.AddCommand(newWorkflowDeleteCommand())
	cmd.AddCommand(newWorkflowListTasksCommand())
	cmd.AddCommand(newWorkflowListMembersCommand())
	cmd.AddCommand(newWorkflowUpdateMembersCommand())
	cmd.AddCommand(newWorkflowListListsCommand())
	cmd.AddCommand(newWorkflowCreateListCommand())
	cmd.AddCommand(newWorkflowRetrieveListCommand())
	cmd.AddCommand(newWorkflowUpdateListCommand())
	cmd.AddCommand(newWorkflowDeleteListCommand())
	cmd.AddCommand(newWorkflowListListTasksCommand())
	cmd.AddCommand(newWorkflowCreateTaskCommand())
	cmd.AddCommand(newWorkflowRetrieveTaskCommand())
	cmd.AddCommand(newWorkflowUpdateTaskCommand())
	cmd.AddCommand(newWorkflowDeleteTaskCommand())
	cmd.AddCommand(newWorkflowListAttachmentsCommand())
	cmd.AddCommand(newWorkflowDownloadAttachmentCommand())
	cmd.AddCommand(newWorkflowUploadAttachmentCommand())
	cmd.AddCommand(newWorkflowDeleteAttachmentCommand())

	return cmd
}

func newWorkflowListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			projects, err := client.Workflow().ListProjects(commandContext(cmd), listOptions(cmd))
			if err != nil {
				return fmt.Errorf("failed to list projects: %w", err)
			}

			return renderList(cmd, projects)
		},
	}

	addListFlags(cmd)

	return cmd
}

func newWorkflowCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			project, err := editInput(cmd, domo.NewProjectTemplate())
			if err != nil {
				return err
			}

			created, err := client.Workflow().CreateProject(commandContext(cmd), project)
			if err != nil {
				return fmt.Errorf("failed to create project: %w", err)
			}

			return renderObject(cmd, created)
		},
	}

	addFileFlag(cmd)

	return cmd
}

func newWorkflowRetrieveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "retrieve PROJECT_ID",
		Aliases: []string{"get"},
		Short:   "Retrieve a project",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			project, err := client.Workflow().GetProject(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to get project: %w", err)
			}

			return renderObject(cmd, project)
		},
	}
}

func newWorkflowUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update PROJECT_ID",
		Short: "Update a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)

			project, err := client.Workflow().GetProject(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get project: %w", err)
			}

			project, err = editInput(cmd, project)
			if err != nil {
				return err
			}

			updated, err := client.Workflow().UpdateProject(ctx, args[0], project)
			if err != nil {
				return fmt.Errorf("failed to update project: %w", err)
			}

			return renderObject(cmd, updated)
		},
	}

	addFileFlag(cmd)

	return cmd
}

func newWorkflowDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete PROJECT_ID",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			err = client.Workflow().DeleteProject(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete project: %w", err)
			}

			return nil
		},
	}
}

func newWorkflowListTasksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list-tasks PROJECT_ID",
		Short: "List every task in a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			tasks, err := client.Workflow().ListProjectTasks(commandContext(cmd), args[0], listOptions(cmd))
			if err != nil {
				return fmt.Errorf("failed to list tasks: %w", err)
			}

			return renderList(cmd, tasks)
		},
	}

	addListFlags(cmd)

	return cmd
}

func newWorkflowListMembersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list-members PROJECT_ID",
		Short: "List the user ids of a project's members",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			members, err := client.Workflow().ListMembers(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to list members: %w", err)
			}

			return renderList(cmd, members)
		},
	}
}

func newWorkflowUpdateMembersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "update-members PROJECT_ID USER_ID...",
		Short: "Replace a project's members",
		Long:  "Replace the member list of a project with the given user ids",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			members := make([]int64, 0, len(args)-1)

			for _, arg := range args[1:] {
				id, err := parseInt64(arg, "user id")
				if err != nil {
					return err
				}

				members = append(members, id)
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			err = client.Workflow().UpdateMembers(commandContext(cmd), args[0], members)
			if err != nil {
				return fmt.Errorf("failed to update members: %w", err)
			}

			return nil
		},
	}
}

func newWorkflowListListsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list-lists PROJECT_ID",
		Short: "List a project's lists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			lists, err := client.Workflow().ListLists(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to list lists: %w", err)
			}

			return renderList(cmd, lists)
		},
	}
}

func newWorkflowCreateListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-list PROJECT_ID",
		Short: "Create a list in a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			list, err := editInput(cmd, domo.NewListTemplate())
			if err != nil {
				return err
			}

			created, err := client.Workflow().CreateList(commandContext(cmd), args[0], list)
			if err != nil {
				return fmt.Errorf("failed to create list: %w", err)
			}

			return renderObject(cmd, created)
		},
	}

	addFileFlag(cmd)

	return cmd
}

func newWorkflowRetrieveListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "retrieve-list PROJECT_ID LIST_ID",
		Aliases: []string{"get-list"},
		Short:   "Retrieve a list",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			list, err := client.Workflow().GetList(commandContext(cmd), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to get list: %w", err)
			}

			return renderObject(cmd, list)
		},
	}
}

func newWorkflowUpdateListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-list PROJECT_ID LIST_ID",
		Short: "Update a list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)

			list, err := client.Workflow().GetList(ctx, args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to get list: %w", err)
			}

			list, err = editInput(cmd, list)
			if err != nil {
				return err
			}

			updated, err := client.Workflow().UpdateList(ctx, args[0], args[1], list)
			if err != nil {
				return fmt.Errorf("failed to update list: %w", err)
			}

			return renderObject(cmd, updated)
		},
	}

	addFileFlag(cmd)

	return cmd
}

func newWorkflowDeleteListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-list PROJECT_ID LIST_ID",
		Short: "Delete a list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			err = client.Workflow().DeleteList(commandContext(cmd), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to delete list: %w", err)
			}

			return nil
		},
	}
}

func newWorkflowListListTasksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list-list-tasks PROJECT_ID LIST_ID",
		Short: "List the tasks on a list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			tasks, err := client.Workflow().ListTasks(commandContext(cmd), args[0], args[1], listOptions(cmd))
			if err != nil {
				return fmt.Errorf("failed to list tasks: %w", err)
			}

			return renderList(cmd, tasks)
		},
	}

	addListFlags(cmd)

	return cmd
}

func newWorkflowCreateTaskCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-task PROJECT_ID LIST_ID",
		Short: "Create a task on a list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			task, err := editInput(cmd, domo.NewTaskTemplate())
			if err != nil {
				return err
			}

			created, err := client.Workflow().CreateTask(commandContext(cmd), args[0], args[1], task)
			if err != nil {
				return fmt.Errorf("failed to create task: %w", err)
			}

			return renderObject(cmd, created)
		},
	}

	addFileFlag(cmd)

	return cmd
}

func newWorkflowRetrieveTaskCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "retrieve-task PROJECT_ID LIST_ID TASK_ID",
		Aliases: []string{"get-task"},
		Short:   "Retrieve a task",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			task, err := client.Workflow().GetTask(commandContext(cmd), args[0], args[1], args[2])
			if err != nil {
				return fmt.Errorf("failed to get task: %w", err)
			}

			return renderObject(cmd, task)
		},
	}
}

func newWorkflowUpdateTaskCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-task PROJECT_ID LIST_ID TASK_ID",
		Short: "Update a task",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)

			task, err := client.Workflow().GetTask(ctx, args[0], args[1], args[2])
			if err != nil {
				return fmt.Errorf("failed to get task: %w", err)
			}

			task, err = editInput(cmd, task)
			if err != nil {
				return err
			}

			updated, err := client.Workflow().UpdateTask(ctx, args[0], args[1], args[2], task)
			if err != nil {
				return fmt.Errorf("failed to update task: %w", err)
			}

			return renderObject(cmd, updated)
		},
	}

	addFileFlag(cmd)

	return cmd
}

func newWorkflowDeleteTaskCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-task PROJECT_ID LIST_ID TASK_ID",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			err = client.Workflow().DeleteTask(commandContext(cmd), args[0], args[1], args[2])
			if err != nil {
				return fmt.Errorf("failed to delete task: %w", err)
			}

			return nil
		},
	}
}

func newWorkflowListAttachmentsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list-attachments PROJECT_ID LIST_ID TASK_ID",
		Short: "List a task's attachments",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			attachments, err := client.Workflow().ListAttachments(commandContext(cmd), args[0], args[1], args[2])
			if err != nil {
				return fmt.Errorf("failed to list attachments: %w", err)
			}

			return renderList(cmd, attachments)
		},
	}
}

func newWorkflowDownloadAttachmentCommand() *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "download-attachment PROJECT_ID LIST_ID TASK_ID ATTACHMENT_ID",
		Short: "Download an attachment",
		Long:  "Download an attachment to standard output, or to a file with --output-file",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			content, err := client.Workflow().DownloadAttachment(commandContext(cmd), args[0], args[1], args[2], args[3])
			if err != nil {
				return fmt.Errorf("failed to download attachment: %w", err)
			}

			if outputFile == "" {
				_, err = cmd.OutOrStdout().Write(content)

				return err
			}

			err = os.WriteFile(filepath.Clean(outputFile), content, constants.OutputFilePerm)
			if err != nil {
				return fmt.Errorf("failed to write %s: %w", outputFile, err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&outputFile, "output-file", "", "write the attachment to this file instead of standard output")

	return cmd
}

func newWorkflowUploadAttachmentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "upload-attachment PROJECT_ID LIST_ID TASK_ID FILE",
		Short: "Attach a file to a task",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(filepath.Clean(args[3]))
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[3], err)
			}
			defer func() { _ = file.Close() }()

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			attachment, err := client.Workflow().UploadAttachment(commandContext(cmd), args[0], args[1], args[2],
				filepath.Base(args[3]), file)
			if err != nil {
				return fmt.Errorf("failed to upload attachment: %w", err)
			}

			return renderObject(cmd, attachment)
		},
	}
}

func newWorkflowDeleteAttachmentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-attachment PROJECT_ID LIST_ID TASK_ID ATTACHMENT_ID",
		Short: "Delete an attachment",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			err = client.Workflow().DeleteAttachment(commandContext(cmd), args[0], args[1], args[2], args[3])
			if err != nil {
				return fmt.Errorf("failed to delete attachment: %w", err)
			}

			return nil
		},
	}
}
