// Package syncer implements the one-way sync pass: index the mirror by
// natural key, map every master page against the mirror's live schema, and
// create or update mirror pages accordingly.
package syncer

import (
	"context"

	"github.com/agentstation/mirrorsync/pkg/errors"
	"github.com/agentstation/mirrorsync/pkg/logging"
	"github.com/agentstation/mirrorsync/pkg/mapper"
	"github.com/agentstation/mirrorsync/pkg/properties"
)

// Store is the remote database access the syncer depends on. It is
// implemented by internal/notion and faked in tests.
type Store interface {
	// Schema returns the database's live property declarations.
	Schema(ctx context.Context, databaseID string) (properties.Schema, error)

	// AllPages returns every page of the database, in store order.
	AllPages(ctx context.Context, databaseID string) ([]properties.Page, error)

	// CreatePage creates a page in the database and returns its ID.
	CreatePage(ctx context.Context, databaseID string, payload properties.Payload) (string, error)

	// UpdatePage overwrites the given properties of an existing page.
	UpdatePage(ctx context.Context, pageID string, payload properties.Payload) (string, error)
}

// Syncer performs one-way, idempotent synchronization from a master database
// to a mirror database. The master is never written.
type Syncer struct {
	store  Store
	master string
	mirror string
	rules  mapper.Rules
	dryRun bool
}

// Option configures a Syncer.
type Option func(*Syncer)

// WithRules sets the choice-translation rules applied during mapping.
func WithRules(rules mapper.Rules) Option {
	return func(s *Syncer) { s.rules = rules }
}

// WithDryRun suppresses all writes while still computing the full plan.
func WithDryRun(dryRun bool) Option {
	return func(s *Syncer) { s.dryRun = dryRun }
}

// New creates a Syncer between the two databases.
func New(store Store, masterID, mirrorID string, opts ...Option) *Syncer {
	s := &Syncer{
		store:  store,
		master: masterID,
		mirror: mirrorID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes one sync pass. Schema and page fetches are fatal on failure;
// per-page write failures are counted and the run continues. Running twice
// with no intervening master changes issues payload-identical writes.
func (s *Syncer) Run(ctx context.Context) (*Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	schema, err := s.store.Schema(ctx, s.mirror)
	if err != nil {
		return nil, err
	}
	titleProp, ok := schema.TitleProperty()
	if !ok {
		return nil, &errors.ValidationError{
			Field:   "mirror schema",
			Message: "destination database declares no title property",
		}
	}

	masterPages, err := s.store.AllPages(ctx, s.master)
	if err != nil {
		return nil, err
	}
	mirrorPages, err := s.store.AllPages(ctx, s.mirror)
	if err != nil {
		return nil, err
	}
	index := BuildIndex(mirrorPages)

	logging.Info().
		Int("master_pages", len(masterPages)).
		Int("mirror_pages", len(mirrorPages)).
		Msg("Fetched master and mirror pages")

	warnings := mapper.NewWarnings()
	m := mapper.New(s.rules, warnings)
	result := &Result{DryRun: s.dryRun}

	for _, page := range masterPages {
		title := page.Title()
		key := NormalizeKey(title)
		if key == "" {
			result.Skipped++
			continue
		}

		payload := s.mapPage(m, page, schema)

		if mirrorID, ok := index[key]; ok {
			if len(payload) > 0 && !s.dryRun {
				if _, err := s.store.UpdatePage(ctx, mirrorID, payload); err != nil {
					s.reportFailure(result, errors.NewSyncError("update", title, err))
					continue
				}
			}
			result.Updated++
			logging.Info().Str("title", title).Msg("Updated")
		} else {
			payload[titleProp] = properties.NewTitleFragment(title)
			if !s.dryRun {
				if _, err := s.store.CreatePage(ctx, s.mirror, payload); err != nil {
					s.reportFailure(result, errors.NewSyncError("create", title, err))
					continue
				}
			}
			result.Created++
			logging.Info().Str("title", title).Msg("Created")
		}
	}

	result.Warnings = warnings.Labels()
	return result, nil
}

// mapPage builds the mirror payload for one master page. Only properties the
// mirror schema declares can appear; the title is added by the caller on
// create only, so matched pages never have their display name rewritten.
func (s *Syncer) mapPage(m *mapper.Mapper, page properties.Page, schema properties.Schema) properties.Payload {
	payload := properties.Payload{}
	for name, target := range schema {
		if target.Type == properties.TypeTitle {
			continue
		}
		if fragment, ok := m.Map(page.Properties[name], target); ok {
			payload[name] = fragment
		}
	}
	return payload
}

func (s *Syncer) reportFailure(result *Result, err error) {
	result.Failed++
	logging.Err(err).Msg("Page write failed, continuing")
}
