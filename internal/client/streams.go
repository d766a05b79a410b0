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

// Stream search qualifiers.
const (
	streamSearchDataSetID = "dataSource.id:"
	streamSearchOwnerID   = "dataSource.owner.id:"
)

// StreamsClient implements domo.StreamsClient.
type StreamsClient struct {
	httpClient *http.Client
	streams    *resource[domo.Stream]
}

// NewStreamsClient creates a new streams client.
func NewStreamsClient(httpClient *http.Client) *StreamsClient {
	return &StreamsClient{
		httpClient: httpClient,
		streams:    newResource[domo.Stream](httpClient, constants.StreamsPath, "stream"),
	}
}

// List implements domo.StreamsClient.List.
func (c *StreamsClient) List(ctx context.Context, opts *domo.ListOptions) ([]domo.Stream, error) {
	return c.streams.list(ctx, opts)
}

// ListAll implements domo.StreamsClient.ListAll.
func (c *StreamsClient) ListAll(ctx context.Context) ([]domo.Stream, error) {
	return listAll(ctx, c.List)
}

// SearchByDataSetID implements domo.StreamsClient.SearchByDataSetID.
func (c *StreamsClient) SearchByDataSetID(ctx context.Context, datasetID string) ([]domo.Stream, error) {
	return c.search(ctx, streamSearchDataSetID+datasetID)
}

// SearchByOwnerID implements domo.StreamsClient.SearchByOwnerID.
func (c *StreamsClient) SearchByOwnerID(ctx context.Context, ownerID string) ([]domo.Stream, error) {
	return c.search(ctx, streamSearchOwnerID+ownerID)
}

func (c *StreamsClient) search(ctx context.Context, q string) ([]domo.Stream, error) {
	query := url.Values{}
	query.Set("q", q)

	resp, err := c.httpClient.Get(ctx, constants.StreamsPath+"/search", query)
	if err != nil {
		return nil, fmt.Errorf("searching streams: %w", err)
	}

	var streams []domo.Stream

	err = json.Unmarshal(resp.Body, &streams)
	if err != nil {
		return nil, fmt.Errorf("parsing streams search: %w", err)
	}

	return streams, nil
}

// Create implements domo.StreamsClient.Create.
func (c *StreamsClient) Create(ctx context.Context, stream *domo.Stream) (*domo.Stream, error) {
	return c.streams.create(ctx, stream)
}

// Get implements domo.StreamsClient.Get.
func (c *StreamsClient) Get(ctx context.Context, id string) (*domo.Stream, error) {
	return c.streams.get(ctx, id)
}

// Update implements domo.StreamsClient.Update.
func (c *StreamsClient) Update(ctx context.Context, id string, stream *domo.Stream) (*domo.Stream, error) {
	return c.streams.patch(ctx, id, stream)
}

// Delete implements domo.StreamsClient.Delete.
func (c *StreamsClient) Delete(ctx context.Context, id string) error {
	return c.streams.delete(ctx, id)
}

// ListExecutions implements domo.StreamsClient.ListExecutions.
func (c *StreamsClient) ListExecutions(ctx context.Context, id string, opts *domo.ListOptions) ([]domo.Execution, error) {
	resp, err := c.httpClient.Get(ctx, c.executionsPath(id), listQuery(opts))
	if err != nil {
		return nil, fmt.Errorf("listing stream executions: %w", err)
	}

	var executions []domo.Execution

	err = json.Unmarshal(resp.Body, &executions)
	if err != nil {
		return nil, fmt.Errorf("parsing stream executions list: %w", err)
	}

	return executions, nil
}

// CreateExecution implements domo.StreamsClient.CreateExecution.
func (c *StreamsClient) CreateExecution(ctx context.Context, id string) (*domo.Execution, error) {
	resp, err := c.httpClient.Post(ctx, c.executionsPath(id), map[string]interface{}{})
	if err != nil {
		return nil, fmt.Errorf("creating stream execution: %w", err)
	}

	return decode[domo.Execution](resp, "stream execution")
}

// GetExecution implements domo.StreamsClient.GetExecution.
func (c *StreamsClient) GetExecution(ctx context.Context, id, executionID string) (*domo.Execution, error) {
	resp, err := c.httpClient.Get(ctx, c.executionPath(id, executionID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting stream execution: %w", err)
	}

	return decode[domo.Execution](resp, "stream execution")
}

// UploadPart implements domo.StreamsClient.UploadPart.
func (c *StreamsClient) UploadPart(ctx context.Context, id, executionID, partID string, csv io.Reader) (*domo.Execution, error) {
	req := &http.Request{
		Method:      nethttp.MethodPut,
		Path:        c.executionPath(id, executionID) + "/part/" + url.PathEscape(partID),
		Body:        csv,
		ContentType: constants.ContentTypeCSV,
	}

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("uploading stream part: %w", err)
	}

	return decode[domo.Execution](resp, "stream execution")
}

// Commit implements domo.StreamsClient.Commit.
func (c *StreamsClient) Commit(ctx context.Context, id, executionID string) (*domo.Execution, error) {
	resp, err := c.httpClient.Put(ctx, c.executionPath(id, executionID)+"/commit", nil)
	if err != nil {
		return nil, fmt.Errorf("committing stream execution: %w", err)
	}

	return decode[domo.Execution](resp, "stream execution")
}

// Abort implements domo.StreamsClient.Abort.
func (c *StreamsClient) Abort(ctx context.Context, id, executionID string) error {
	_, err := c.httpClient.Put(ctx, c.executionPath(id, executionID)+"/abort", nil)
	if err != nil {
		return fmt.Errorf("aborting stream execution: %w", err)
	}

	return nil
}

func (c *StreamsClient) executionsPath(id string) string {
	return c.streams.path(id) + "/executions"
}

func (c *StreamsClient) executionPath(id, executionID string) string {
	return c.executionsPath(id) + "/" + url.PathEscape(executionID)
}
