// Package notion implements the remote store collaborator on top of the
// Notion REST API: schema introspection, paginated page queries, and page
// create/update. It satisfies the syncer.Store interface.
package notion

import (
	"context"
	"net/http"

	"github.com/agentstation/mirrorsync/internal/transport"
	"github.com/agentstation/mirrorsync/pkg/constants"
	"github.com/agentstation/mirrorsync/pkg/errors"
	"github.com/agentstation/mirrorsync/pkg/logging"
	"github.com/agentstation/mirrorsync/pkg/properties"
)

// Client is a Notion API client scoped to one integration token.
type Client struct {
	api      *transport.Client
	pageSize int
}

// Option configures a Client.
type Option func(*Client)

// WithPageSize sets the number of pages requested per query.
func WithPageSize(pageSize int) Option {
	return func(c *Client) {
		if pageSize > 0 {
			c.pageSize = pageSize
		}
	}
}

// WithTransport replaces the underlying transport client, primarily for tests.
func WithTransport(api *transport.Client) Option {
	return func(c *Client) { c.api = api }
}

// NewClient creates a Notion client for the given integration token.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		api:      transport.New(token),
		pageSize: constants.DefaultPageSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Preflight verifies the database is reachable and shared with the
// integration, logging its title. Run before any sync work so access
// problems surface before writes begin.
func (c *Client) Preflight(ctx context.Context, databaseID, label string) error {
	db, err := c.database(ctx, databaseID, label)
	if err != nil {
		return err
	}
	logging.Info().
		Str("label", label).
		Str("id", Obfuscate(databaseID)).
		Str("title", db.title()).
		Msg("Database reachable")
	return nil
}

// Schema returns the database's live property declarations: each property's
// type and, for choice-like types, the option names currently legal there.
func (c *Client) Schema(ctx context.Context, databaseID string) (properties.Schema, error) {
	db, err := c.database(ctx, databaseID, "")
	if err != nil {
		return nil, err
	}

	schema := make(properties.Schema, len(db.Properties))
	for name, meta := range db.Properties {
		schema[name] = meta.toProperty()
	}
	return schema, nil
}

// database retrieves the raw database object, converting access failures
// into AccessError with remediation hints.
func (c *Client) database(ctx context.Context, databaseID, label string) (*databaseResponse, error) {
	var db databaseResponse
	err := c.api.DoJSON(ctx, http.MethodGet, "/v1/databases/"+databaseID, nil, &db)
	if err == nil {
		return &db, nil
	}
	if errors.IsNotFound(err) || errors.IsUnauthorized(err) {
		return nil, errors.NewAccessError(label, Obfuscate(databaseID),
			"use the database ID (not a view or page ID) and share the database with this integration",
			err)
	}
	return nil, err
}
