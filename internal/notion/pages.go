package notion

import (
	"context"
	"net/http"

	"github.com/agentstation/mirrorsync/pkg/properties"
)

// AllPages returns every page of the database in store order, chaining the
// opaque continuation cursor one page at a time until the store reports no
// more results.
func (c *Client) AllPages(ctx context.Context, databaseID string) ([]properties.Page, error) {
	var pages []properties.Page
	cursor := ""

	for {
		req := queryRequest{PageSize: c.pageSize, StartCursor: cursor}
		var resp queryResponse
		if err := c.api.DoJSON(ctx, http.MethodPost, "/v1/databases/"+databaseID+"/query", req, &resp); err != nil {
			return nil, err
		}
		for _, p := range resp.Results {
			pages = append(pages, p.toPage())
		}
		if !resp.HasMore || resp.NextCursor == "" {
			break
		}
		cursor = resp.NextCursor
	}
	return pages, nil
}

type pageParent struct {
	Type       string `json:"type"`
	DatabaseID string `json:"database_id"`
}

type createPageRequest struct {
	Parent     pageParent         `json:"parent"`
	Properties properties.Payload `json:"properties"`
}

type updatePageRequest struct {
	Properties properties.Payload `json:"properties"`
}

type pageRef struct {
	ID string `json:"id"`
}

// CreatePage creates a page in the database and returns its ID.
func (c *Client) CreatePage(ctx context.Context, databaseID string, payload properties.Payload) (string, error) {
	req := createPageRequest{
		Parent:     pageParent{Type: "database_id", DatabaseID: databaseID},
		Properties: payload,
	}
	var ref pageRef
	if err := c.api.DoJSON(ctx, http.MethodPost, "/v1/pages", req, &ref); err != nil {
		return "", err
	}
	return ref.ID, nil
}

// UpdatePage overwrites the given properties of an existing page.
func (c *Client) UpdatePage(ctx context.Context, pageID string, payload properties.Payload) (string, error) {
	req := updatePageRequest{Properties: payload}
	var ref pageRef
	if err := c.api.DoJSON(ctx, http.MethodPatch, "/v1/pages/"+pageID, req, &ref); err != nil {
		return "", err
	}
	return ref.ID, nil
}
