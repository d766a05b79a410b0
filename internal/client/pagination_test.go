package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/fivetwenty-io/domo-cli/pkg/domo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePages serves pages of the given sizes, numbering items consecutively.
func fakePages(sizes []int, calls *int, offsets *[]int) pageFetcher[int] {
	next := 0

	return func(_ context.Context, opts *domo.ListOptions) ([]int, error) {
		*offsets = append(*offsets, *opts.Offset)

		size := 0
		if *calls < len(sizes) {
			size = sizes[*calls]
		}

		*calls++

		page := make([]int, 0, size)
		for range size {
			page = append(page, next)
			next++
		}

		return page, nil
	}
}

func TestListAll(t *testing.T) {
	t.Parallel()

	t.Run("stops after a short page", func(t *testing.T) {
		t.Parallel()

		var (
			calls   int
			offsets []int
		)

		all, err := listAll(context.Background(), fakePages([]int{50, 50, 23}, &calls, &offsets))
		require.NoError(t, err)
		assert.Len(t, all, 123)
		assert.Equal(t, 3, calls)
		assert.Equal(t, []int{0, 50, 100}, offsets)

		for i, item := range all {
			assert.Equal(t, i, item)
		}
	})

	t.Run("exact multiple of the page size needs an empty page", func(t *testing.T) {
		t.Parallel()

		var (
			calls   int
			offsets []int
		)

		all, err := listAll(context.Background(), fakePages([]int{50, 50}, &calls, &offsets))
		require.NoError(t, err)
		assert.Len(t, all, 100)
		assert.Equal(t, 3, calls)
		assert.Equal(t, []int{0, 50, 100}, offsets)
	})

	t.Run("empty listing", func(t *testing.T) {
		t.Parallel()

		var (
			calls   int
			offsets []int
		)

		all, err := listAll(context.Background(), fakePages(nil, &calls, &offsets))
		require.NoError(t, err)
		assert.Empty(t, all)
		assert.Equal(t, 1, calls)
	})

	t.Run("error aborts", func(t *testing.T) {
		t.Parallel()

		fetchErr := errors.New("boom")
		calls := 0

		_, err := listAll(context.Background(), func(_ context.Context, _ *domo.ListOptions) ([]int, error) {
			calls++
			if calls == 2 {
				return nil, fetchErr
			}

			return make([]int, domo.PageSize), nil
		})
		require.ErrorIs(t, err, fetchErr)
		assert.Equal(t, 2, calls)
	})
}

func TestDataSetsClient_ListAll(t *testing.T) {
	t.Parallel()

	var requests int32

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		atomic.AddInt32(&requests, 1)

		assert.Equal(t, "/v1/datasets", request.URL.Path)
		assert.Equal(t, "50", request.URL.Query().Get("limit"))

		offset, _ := strconv.Atoi(request.URL.Query().Get("offset"))

		count := domo.PageSize
		if offset == 100 {
			count = 7
		}

		body := "["
		for i := range count {
			if i > 0 {
				body += ","
			}

			body += `{"id":"ds-` + strconv.Itoa(offset+i) + `"}`
		}

		body += "]"

		writer.Header().Set("Content-Type", "application/json")
		_, _ = writer.Write([]byte(body))
	}))
	defer server.Close()

	datasets := NewDataSetsClient(newTestHTTPClient(server.URL))

	all, err := datasets.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 107)
	assert.Equal(t, "ds-0", *all[0].ID)
	assert.Equal(t, "ds-106", *all[106].ID)
	assert.Equal(t, int32(3), atomic.LoadInt32(&requests))
}
