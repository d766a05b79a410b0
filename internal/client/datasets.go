package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"

	"github.com/fivetwenty-io/domo-cli/internal/constants"
	"github.com/fivetwenty-io/domo-cli/internal/http"
	"github.com/fivetwenty-io/domo-cli/pkg/domo"
)

// DataSetsClient implements domo.DataSetsClient.
type DataSetsClient struct {
	httpClient *http.Client
	datasets   *resource[domo.DataSet]
}

// NewDataSetsClient creates a new datasets client.
func NewDataSetsClient(httpClient *http.Client) *DataSetsClient {
	return &DataSetsClient{
		httpClient: httpClient,
		datasets:   newResource[domo.DataSet](httpClient, constants.DataSetsPath, "dataset"),
	}
}

// List implements domo.DataSetsClient.List.
func (c *DataSetsClient) List(ctx context.Context, opts *domo.ListOptions) ([]domo.DataSet, error) {
	return c.datasets.list(ctx, opts)
}

// ListAll implements domo.DataSetsClient.ListAll.
func (c *DataSetsClient) ListAll(ctx context.Context) ([]domo.DataSet, error) {
	return listAll(ctx, c.List)
}

// Create implements domo.DataSetsClient.Create.
func (c *DataSetsClient) Create(ctx context.Context, dataset *domo.DataSet) (*domo.DataSet, error) {
	return c.datasets.create(ctx, dataset)
}

// Get implements domo.DataSetsClient.Get.
func (c *DataSetsClient) Get(ctx context.Context, id string) (*domo.DataSet, error) {
	return c.datasets.get(ctx, id)
}

// Update implements domo.DataSetsClient.Update.
func (c *DataSetsClient) Update(ctx context.Context, id string, dataset *domo.DataSet) (*domo.DataSet, error) {
	return c.datasets.put(ctx, id, dataset)
}

// Delete implements domo.DataSetsClient.Delete.
func (c *DataSetsClient) Delete(ctx context.Context, id string) error {
	return c.datasets.delete(ctx, id)
}

// Import implements domo.DataSetsClient.Import.
func (c *DataSetsClient) Import(ctx context.Context, id string, csv io.Reader) error {
	req := &http.Request{
		Method:      nethttp.MethodPut,
		Path:        c.datasets.path(id) + "/data",
		Body:        csv,
		ContentType: constants.ContentTypeCSV,
	}

	_, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return fmt.Errorf("importing dataset data: %w", err)
	}

	return nil
}

// Export implements domo.DataSetsClient.Export.
func (c *DataSetsClient) Export(ctx context.Context, id string) (string, error) {
	query := url.Values{}
	query.Set("includeHeader", "true")

	resp, err := c.httpClient.Get(ctx, c.datasets.path(id)+"/data", query)
	if err != nil {
		return "", fmt.Errorf("exporting dataset data: %w", err)
	}

	return string(resp.Body), nil
}

// Query implements domo.DataSetsClient.Query.
func (c *DataSetsClient) Query(ctx context.Context, id, sql string) (*domo.QueryResult, error) {
	path := constants.DataSetsPath + "/query/execute/" + url.PathEscape(id)

	resp, err := c.httpClient.Post(ctx, path, &domo.QueryRequest{SQL: sql})
	if err != nil {
		return nil, fmt.Errorf("querying dataset: %w", err)
	}

	return decode[domo.QueryResult](resp, "query result")
}

// ListPolicies implements domo.DataSetsClient.ListPolicies.
func (c *DataSetsClient) ListPolicies(ctx context.Context, id string) ([]domo.Policy, error) {
	resp, err := c.httpClient.Get(ctx, c.policiesPath(id), nil)
	if err != nil {
		return nil, fmt.Errorf("listing policies: %w", err)
	}

	var policies []domo.Policy

	err = json.Unmarshal(resp.Body, &policies)
	if err != nil {
		return nil, fmt.Errorf("parsing policies list: %w", err)
	}

	return policies, nil
}

// CreatePolicy implements domo.DataSetsClient.CreatePolicy.
func (c *DataSetsClient) CreatePolicy(ctx context.Context, id string, policy *domo.Policy) (*domo.Policy, error) {
	resp, err := c.httpClient.Post(ctx, c.policiesPath(id), policy)
	if err != nil {
		return nil, fmt.Errorf("creating policy: %w", err)
	}

	return decode[domo.Policy](resp, "policy")
}

// GetPolicy implements domo.DataSetsClient.GetPolicy.
func (c *DataSetsClient) GetPolicy(ctx context.Context, id, policyID string) (*domo.Policy, error) {
	resp, err := c.httpClient.Get(ctx, c.policiesPath(id)+"/"+url.PathEscape(policyID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting policy: %w", err)
	}

	return decode[domo.Policy](resp, "policy")
}

// UpdatePolicy implements domo.DataSetsClient.UpdatePolicy.
func (c *DataSetsClient) UpdatePolicy(ctx context.Context, id, policyID string, policy *domo.Policy) (*domo.Policy, error) {
	resp, err := c.httpClient.Put(ctx, c.policiesPath(id)+"/"+url.PathEscape(policyID), policy)
	if err != nil {
		return nil, fmt.Errorf("updating policy: %w", err)
	}

	return decode[domo.Policy](resp, "policy")
}

// DeletePolicy implements domo.DataSetsClient.DeletePolicy.
func (c *DataSetsClient) DeletePolicy(ctx context.Context, id, policyID string) error {
	_, err := c.httpClient.Delete(ctx, c.policiesPath(id)+"/"+url.PathEscape(policyID))
	if err != nil {
		return fmt.Errorf("deleting policy: %w", err)
	}

	return nil
}

func (c *DataSetsClient) policiesPath(id string) string {
	return c.datasets.path(id) + "/policies"
}
