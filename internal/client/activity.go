package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/fivetwenty-io/domo-cli/internal/constants"
	"github.com/fivetwenty-io/domo-cli/internal/http"
	"github.com/fivetwenty-io/domo-cli/pkg/domo"
)

// ActivityClient implements domo.ActivityClient.
type ActivityClient struct {
	httpClient *http.Client
}

// NewActivityClient creates a new activity log client.
func NewActivityClient(httpClient *http.Client) *ActivityClient {
	return &ActivityClient{
		httpClient: httpClient,
	}
}

// ListEntries implements domo.ActivityClient.ListEntries.
func (c *ActivityClient) ListEntries(ctx context.Context, query *domo.ActivityQuery) ([]domo.LogEntry, error) {
	resp, err := c.httpClient.Get(ctx, constants.AuditPath, activityValues(query))
	if err != nil {
		return nil, fmt.Errorf("listing activity log entries: %w", err)
	}

	var entries []domo.LogEntry

	err = json.Unmarshal(resp.Body, &entries)
	if err != nil {
		return nil, fmt.Errorf("parsing activity log entries: %w", err)
	}

	return entries, nil
}

func activityValues(query *domo.ActivityQuery) url.Values {
	values := url.Values{}
	if query == nil {
		query = &domo.ActivityQuery{}
	}

	if query.User != nil {
		values.Set("user", strconv.FormatInt(*query.User, 10))
	}

	values.Set("start", strconv.FormatInt(query.Start, 10))

	if query.End != nil {
		values.Set("end", strconv.FormatInt(*query.End, 10))
	}

	if query.Limit != nil {
		values.Set("limit", strconv.Itoa(*query.Limit))
	}

	if query.Offset != nil {
		values.Set("offset", strconv.Itoa(*query.Offset))
	}

	return values
}
