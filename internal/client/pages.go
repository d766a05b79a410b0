package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/domo-cli/internal/constants"
	"github.com/fivetwenty-io/domo-cli/internal/http"
	"github.com/fivetwenty-io/domo-cli/pkg/domo"
)

// PagesClient implements domo.PagesClient.
type PagesClient struct {
	httpClient *http.Client
	pages      *resource[domo.Page]
}

// NewPagesClient creates a new pages client.
func NewPagesClient(httpClient *http.Client) *PagesClient {
	return &PagesClient{
		httpClient: httpClient,
		pages:      newResource[domo.Page](httpClient, constants.PagesPath, "page"),
	}
}

// List implements domo.PagesClient.List.
func (c *PagesClient) List(ctx context.Context, opts *domo.ListOptions) ([]domo.Page, error) {
	return c.pages.list(ctx, opts)
}

// Create implements domo.PagesClient.Create.
func (c *PagesClient) Create(ctx context.Context, page *domo.Page) (*domo.Page, error) {
	return c.pages.create(ctx, page)
}

// Get implements domo.PagesClient.Get.
func (c *PagesClient) Get(ctx context.Context, id string) (*domo.Page, error) {
	return c.pages.get(ctx, id)
}

// Update implements domo.PagesClient.Update.
func (c *PagesClient) Update(ctx context.Context, id string, page *domo.Page) (*domo.Page, error) {
	return c.pages.put(ctx, id, page)
}

// Delete implements domo.PagesClient.Delete.
func (c *PagesClient) Delete(ctx context.Context, id string) error {
	return c.pages.delete(ctx, id)
}

// ListCollections implements domo.PagesClient.ListCollections.
func (c *PagesClient) ListCollections(ctx context.Context, id string) ([]domo.Collection, error) {
	resp, err := c.httpClient.Get(ctx, c.collectionsPath(id), nil)
	if err != nil {
		return nil, fmt.Errorf("listing page collections: %w", err)
	}

	var collections []domo.Collection

	err = json.Unmarshal(resp.Body, &collections)
	if err != nil {
		return nil, fmt.Errorf("parsing page collections list: %w", err)
	}

	return collections, nil
}

// CreateCollection implements domo.PagesClient.CreateCollection.
func (c *PagesClient) CreateCollection(ctx context.Context, id string, collection *domo.Collection) (*domo.Collection, error) {
	resp, err := c.httpClient.Post(ctx, c.collectionsPath(id), collection)
	if err != nil {
		return nil, fmt.Errorf("creating page collection: %w", err)
	}

	return decode[domo.Collection](resp, "page collection")
}

// UpdateCollection implements domo.PagesClient.UpdateCollection.
func (c *PagesClient) UpdateCollection(ctx context.Context, id, collectionID string, collection *domo.Collection) error {
	_, err := c.httpClient.Put(ctx, c.collectionsPath(id)+"/"+url.PathEscape(collectionID), collection)
	if err != nil {
		return fmt.Errorf("updating page collection: %w", err)
	}

	return nil
}

// DeleteCollection implements domo.PagesClient.DeleteCollection.
func (c *PagesClient) DeleteCollection(ctx context.Context, id, collectionID string) error {
	_, err := c.httpClient.Delete(ctx, c.collectionsPath(id)+"/"+url.PathEscape(collectionID))
	if err != nil {
		return fmt.Errorf("deleting page collection: %w", err)
	}

	return nil
}

func (c *PagesClient) collectionsPath(id string) string {
	return c.pages.path(id) + "/collections"
}
