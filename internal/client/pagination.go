package client

import (
	"context"

	"github.com/fivetwenty-io/domo-cli/pkg/domo"
)

// pageFetcher returns one page of a paged listing.
type pageFetcher[T any] func(ctx context.Context, opts *domo.ListOptions) ([]T, error)

// listAll requests offsets 0, 50, 100, ... and stops after the first page
// holding fewer than domo.PageSize items. When the total is an exact
// multiple of the page size the final request comes back empty.
func listAll[T any](ctx context.Context, fetch pageFetcher[T]) ([]T, error) {
	all := []T{}

	for offset := 0; ; offset += domo.PageSize {
		page, err := fetch(ctx, domo.NewListOptions().WithLimit(domo.PageSize).WithOffset(offset))
		if err != nil {
			return nil, err
		}

		all = append(all, page...)

		if len(page) < domo.PageSize {
			return all, nil
		}
	}
}
