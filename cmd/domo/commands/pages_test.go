package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/fivetwenty-io/domo-cli/pkg/domo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type collectionUpdate struct {
	pageID       string
	collectionID string
	collection   *domo.Collection
}

type fakePages struct {
	domo.PagesClient

	collections []domo.Collection
	listErr     error
	updates     []collectionUpdate
}

func (f *fakePages) ListCollections(_ context.Context, _ string) ([]domo.Collection, error) {
	return f.collections, f.listErr
}

func (f *fakePages) UpdateCollection(_ context.Context, id, collectionID string, collection *domo.Collection) error {
	f.updates = append(f.updates, collectionUpdate{pageID: id, collectionID: collectionID, collection: collection})

	return nil
}

func newFakePages() *fakePages {
	return &fakePages{
		collections: []domo.Collection{
			{ID: domo.Ptr(int64(1)), Title: domo.Ptr("First")},
			{ID: domo.Ptr(int64(2)), Title: domo.Ptr("Second")},
		},
	}
}

func retitle(title string) func(*domo.Collection) (*domo.Collection, error) {
	return func(collection *domo.Collection) (*domo.Collection, error) {
		collection.Title = domo.Ptr(title)

		return collection, nil
	}
}

func TestEditCollection(t *testing.T) {
	t.Parallel()

	t.Run("unknown collection is rejected before any write", func(t *testing.T) {
		t.Parallel()

		pages := newFakePages()

		err := editCollection(context.Background(), pages, "42", 3, retitle("x"))
		require.ErrorIs(t, err, domo.ErrInvalidCollectionID)
		assert.Contains(t, err.Error(), "3 on page 42")
		assert.Empty(t, pages.updates)
	})

	t.Run("existing collection is written once", func(t *testing.T) {
		t.Parallel()

		pages := newFakePages()

		err := editCollection(context.Background(), pages, "42", 2, retitle("Renamed"))
		require.NoError(t, err)
		require.Len(t, pages.updates, 1)

		update := pages.updates[0]
		assert.Equal(t, "42", update.pageID)
		assert.Equal(t, "2", update.collectionID)
		assert.Equal(t, "Renamed", *update.collection.Title)
	})

	t.Run("edit failure skips the write", func(t *testing.T) {
		t.Parallel()

		pages := newFakePages()
		failure := errors.New("editor closed")

		err := editCollection(context.Background(), pages, "42", 1, func(*domo.Collection) (*domo.Collection, error) {
			return nil, failure
		})
		require.ErrorIs(t, err, failure)
		assert.Empty(t, pages.updates)
	})

	t.Run("list failure", func(t *testing.T) {
		t.Parallel()

		pages := newFakePages()
		pages.listErr = &domo.APIError{Status: 404, Message: "Not Found"}

		err := editCollection(context.Background(), pages, "42", 1, retitle("x"))
		require.Error(t, err)
		assert.True(t, domo.IsNotFound(err))
		assert.Empty(t, pages.updates)
	})
}
