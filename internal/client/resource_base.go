package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/fivetwenty-io/domo-cli/internal/http"
	"github.com/fivetwenty-io/domo-cli/pkg/domo"
)

// resource provides the CRUD calls shared by the flat /v1/<family> endpoints.
type resource[T any] struct {
	httpClient   *http.Client
	resourcePath string
	kind         string
}

func newResource[T any](httpClient *http.Client, resourcePath, kind string) *resource[T] {
	return &resource[T]{
		httpClient:   httpClient,
		resourcePath: resourcePath,
		kind:         kind,
	}
}

func (r *resource[T]) path(id string) string {
	return r.resourcePath + "/" + url.PathEscape(id)
}

func (r *resource[T]) list(ctx context.Context, opts *domo.ListOptions) ([]T, error) {
	resp, err := r.httpClient.Get(ctx, r.resourcePath, listQuery(opts))
	if err != nil {
		return nil, fmt.Errorf("listing %ss: %w", r.kind, err)
	}

	var items []T

	err = json.Unmarshal(resp.Body, &items)
	if err != nil {
		return nil, fmt.Errorf("parsing %ss list: %w", r.kind, err)
	}

	return items, nil
}

func (r *resource[T]) create(ctx context.Context, item *T) (*T, error) {
	resp, err := r.httpClient.Post(ctx, r.resourcePath, item)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", r.kind, err)
	}

	return decode[T](resp, r.kind)
}

func (r *resource[T]) get(ctx context.Context, id string) (*T, error) {
	resp, err := r.httpClient.Get(ctx, r.path(id), nil)
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", r.kind, err)
	}

	return decode[T](resp, r.kind)
}

// put replaces the resource and returns the server's copy.
func (r *resource[T]) put(ctx context.Context, id string, item *T) (*T, error) {
	resp, err := r.httpClient.Put(ctx, r.path(id), item)
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", r.kind, err)
	}

	return decode[T](resp, r.kind)
}

func (r *resource[T]) patch(ctx context.Context, id string, item *T) (*T, error) {
	resp, err := r.httpClient.Patch(ctx, r.path(id), item)
	if err != nil {
		return nil, fmt.Errorf("updating %s: %w", r.kind, err)
	}

	return decode[T](resp, r.kind)
}

func (r *resource[T]) delete(ctx context.Context, id string) error {
	_, err := r.httpClient.Delete(ctx, r.path(id))
	if err != nil {
		return fmt.Errorf("deleting %s: %w", r.kind, err)
	}

	return nil
}

// decode unmarshals a response body into a new T.
func decode[T any](resp *http.Response, kind string) (*T, error) {
	var item T

	err := json.Unmarshal(resp.Body, &item)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", kind, err)
	}

	return &item, nil
}

// listQuery renders limit and offset, omitting whichever is unset.
func listQuery(opts *domo.ListOptions) url.Values {
	if opts == nil {
		return nil
	}

	query := url.Values{}

	if opts.Limit != nil {
		query.Set("limit", strconv.Itoa(*opts.Limit))
	}

	if opts.Offset != nil {
		query.Set("offset", strconv.Itoa(*opts.Offset))
	}

	return query
}
