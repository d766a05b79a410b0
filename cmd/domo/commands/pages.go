package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/fivetwenty-io/domo-cli/pkg/domo"
	"github.com/spf13/cobra"
)

// NewPagesCommand creates the page command group.
func NewPagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "page",
		Aliases: []string{"pages"},
		Short:   "Manage pages",
		Long:    "List, create, update and delete pages and their card collections",
	}

	cmd.AddCommand(newPagesListCommand())
	cmd.AddCommand(newPagesCreateCommand())
	cmd.AddCommand(newPagesRetrieveCommand())
	cmd.AddCommand(newPagesUpdateCommand())
	cmd.AddCommand(newPagesDeleteCommand())
	cmd.AddCommand(newPagesListCollectionsCommand())
	cmd.AddCommand(newPagesCreateCollectionCommand())
	cmd.AddCommand(newPagesUpdateCollectionCommand())
	cmd.AddCommand(newPagesDeleteCollectionCommand())

	return cmd
}

// pageArgs validates that every argument is a numeric page or collection id.
func pageArgs(n int) cobra.PositionalArgs {
	return cobra.MatchAll(cobra.ExactArgs(n), func(cmd *cobra.Command, args []string) error {
		for _, arg := range args {
			_, err := parseInt64(arg, "id")
			if err != nil {
				return err
			}
		}

		return nil
	})
}

func newPagesListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			pages, err := client.Pages().List(commandContext(cmd), listOptions(cmd))
			if err != nil {
				return fmt.Errorf("failed to list pages: %w", err)
			}

			return renderList(cmd, pages)
		},
	}

	addListFlags(cmd)

	return cmd
}

func newPagesCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			page, err := editInput(cmd, domo.NewPageTemplate())
			if err != nil {
				return err
			}

			created, err := client.Pages().Create(commandContext(cmd), page)
			if err != nil {
				return fmt.Errorf("failed to create page: %w", err)
			}

			return renderObject(cmd, created)
		},
	}

	addFileFlag(cmd)

	return cmd
}

func newPagesRetrieveCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "retrieve PAGE_ID",
		Aliases: []string{"get"},
		Short:   "Retrieve a page",
		Args:    pageArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			page, err := client.Pages().Get(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to get page: %w", err)
			}

			return renderObject(cmd, page)
		},
	}
}

func newPagesUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update PAGE_ID",
		Short: "Update a page",
		Args:  pageArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)

			page, err := client.Pages().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get page: %w", err)
			}

			page, err = editInput(cmd, page)
			if err != nil {
				return err
			}

			updated, err := client.Pages().Update(ctx, args[0], page)
			if err != nil {
				return fmt.Errorf("failed to update page: %w", err)
			}

			return renderObject(cmd, updated)
		},
	}

	addFileFlag(cmd)

	return cmd
}

func newPagesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete PAGE_ID",
		Short: "Delete a page",
		Args:  pageArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			err = client.Pages().Delete(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete page: %w", err)
			}

			return nil
		},
	}
}

func newPagesListCollectionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list-collections PAGE_ID",
		Short: "List a page's collections",
		Args:  pageArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			collections, err := client.Pages().ListCollections(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to list collections: %w", err)
			}

			return renderList(cmd, collections)
		},
	}
}

func newPagesCreateCollectionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-collection PAGE_ID",
		Short: "Create a collection on a page",
		Args:  pageArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			collection, err := editInput(cmd, domo.NewCollectionTemplate())
			if err != nil {
				return err
			}

			created, err := client.Pages().CreateCollection(commandContext(cmd), args[0], collection)
			if err != nil {
				return fmt.Errorf("failed to create collection: %w", err)
			}

			return renderObject(cmd, created)
		},
	}

	addFileFlag(cmd)

	return cmd
}

func newPagesUpdateCollectionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-collection PAGE_ID COLLECTION_ID",
		Short: "Update a collection on a page",
		Long:  "Update a collection. The API cannot fetch a single collection, so the page's collections are listed and searched first.",
		Args:  pageArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			collectionID, err := parseInt64(args[1], "collection id")
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			return editCollection(commandContext(cmd), client.Pages(), args[0], collectionID,
				func(collection *domo.Collection) (*domo.Collection, error) {
					return editInput(cmd, collection)
				})
		},
	}

	addFileFlag(cmd)

	return cmd
}

// editCollection looks collectionID up among the page's collections, passes
// it through edit and writes the result back. Nothing is written when the
// page has no such collection.
func editCollection(
	ctx context.Context,
	pages domo.PagesClient,
	pageID string,
	collectionID int64,
	edit func(*domo.Collection) (*domo.Collection, error),
) error {
	collections, err := pages.ListCollections(ctx, pageID)
	if err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}

	collection, err := domo.FindCollection(collections, collectionID)
	if err != nil {
		return fmt.Errorf("%w: %d on page %s", err, collectionID, pageID)
	}

	collection, err = edit(collection)
	if err != nil {
		return err
	}

	err = pages.UpdateCollection(ctx, pageID, strconv.FormatInt(collectionID, 10), collection)
	if err != nil {
		return fmt.Errorf("failed to update collection: %w", err)
	}

	return nil
}

func newPagesDeleteCollectionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-collection PAGE_ID COLLECTION_ID",
		Short: "Delete a collection from a page",
		Args:  pageArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			err = client.Pages().DeleteCollection(commandContext(cmd), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to delete collection: %w", err)
			}

			return nil
		},
	}
}
