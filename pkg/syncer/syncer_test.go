package syncer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/mirrorsync/pkg/errors"
	"github.com/agentstation/mirrorsync/pkg/mapper"
	"github.com/agentstation/mirrorsync/pkg/properties"
	"github.com/agentstation/mirrorsync/pkg/syncer"
)

type createCall struct {
	databaseID string
	payload    properties.Payload
}

type updateCall struct {
	pageID  string
	payload properties.Payload
}

// fakeStore is an in-memory syncer.Store with scriptable failures.
type fakeStore struct {
	schemas map[string]properties.Schema
	pages   map[string][]properties.Page

	creates []createCall
	updates []updateCall

	schemaErr error
	pagesErr  map[string]error
	createErr error
	updateErr error
}

func (f *fakeStore) Schema(_ context.Context, databaseID string) (properties.Schema, error) {
	if f.schemaErr != nil {
		return nil, f.schemaErr
	}
	return f.schemas[databaseID], nil
}

func (f *fakeStore) AllPages(_ context.Context, databaseID string) ([]properties.Page, error) {
	if err := f.pagesErr[databaseID]; err != nil {
		return nil, err
	}
	return f.pages[databaseID], nil
}

func (f *fakeStore) CreatePage(_ context.Context, databaseID string, payload properties.Payload) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.creates = append(f.creates, createCall{databaseID: databaseID, payload: payload})
	return "created", nil
}

func (f *fakeStore) UpdatePage(_ context.Context, pageID string, payload properties.Payload) (string, error) {
	if f.updateErr != nil {
		return "", f.updateErr
	}
	f.updates = append(f.updates, updateCall{pageID: pageID, payload: payload})
	return pageID, nil
}

func masterPage(id, title string, extra map[string]properties.Value) properties.Page {
	props := map[string]properties.Value{"Activity": properties.Title{Text: title}}
	for k, v := range extra {
		props[k] = v
	}
	return properties.Page{ID: id, Properties: props}
}

func mirrorSchema() properties.Schema {
	return properties.Schema{
		"Activity": {Type: properties.TypeTitle},
		"Status":   {Type: properties.TypeStatus, Options: []string{"Done", "In Progress"}},
	}
}

func TestRunCreatesMissingPages(t *testing.T) {
	store := &fakeStore{
		schemas: map[string]properties.Schema{"mirror": mirrorSchema()},
		pages: map[string][]properties.Page{
			"master": {
				masterPage("m1", "Task A", map[string]properties.Value{"Status": properties.Select{Option: "Done"}}),
				masterPage("m2", "Task B", map[string]properties.Value{"Status": properties.Select{Option: "WIP"}}),
			},
		},
	}

	s := syncer.New(store, "master", "mirror",
		syncer.WithRules(mapper.Rules{Renames: map[string]string{"WIP": "In Progress"}}))
	result, err := s.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 0, result.Updated)
	assert.Equal(t, 0, result.Skipped)
	assert.Empty(t, result.Warnings)

	require.Len(t, store.creates, 2)
	assert.Equal(t, "mirror", store.creates[0].databaseID)

	// Create payloads carry the original-case source title.
	assert.Equal(t, properties.NewTitleFragment("Task A"), store.creates[0].payload["Activity"])
	assert.Equal(t, properties.StatusFragment{Status: &properties.Option{Name: "Done"}},
		store.creates[0].payload["Status"])

	// "WIP" reached the destination via the rename table.
	assert.Equal(t, properties.StatusFragment{Status: &properties.Option{Name: "In Progress"}},
		store.creates[1].payload["Status"])
}

func TestRunUpdatesMatchedPages(t *testing.T) {
	store := &fakeStore{
		schemas: map[string]properties.Schema{"mirror": mirrorSchema()},
		pages: map[string][]properties.Page{
			"master": {
				masterPage("m1", "Task A", map[string]properties.Value{"Status": properties.Select{Option: "Unknown"}}),
			},
			"mirror": {
				titledPage("x9", "task a"), // case-different existing mirror page
			},
		},
	}

	s := syncer.New(store, "master", "mirror")
	result, err := s.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 1, result.Updated)
	assert.Empty(t, store.creates)

	require.Len(t, store.updates, 1)
	assert.Equal(t, "x9", store.updates[0].pageID)

	// "Unknown" has no legal equivalent: the field is cleared and warned.
	assert.Equal(t, properties.StatusFragment{}, store.updates[0].payload["Status"])
	assert.Equal(t, []string{"Unknown"}, result.Warnings)

	// Updates never rewrite the title.
	assert.NotContains(t, store.updates[0].payload, "Activity")
}

func TestRunMatchingIsCaseAndSpaceInsensitive(t *testing.T) {
	store := &fakeStore{
		schemas: map[string]properties.Schema{"mirror": mirrorSchema()},
		pages: map[string][]properties.Page{
			"master": {
				masterPage("m1", "Fix Bug", nil),
				masterPage("m2", "fix bug ", nil),
				masterPage("m3", "FIX BUG", nil),
			},
			"mirror": {titledPage("x1", "Fix Bug")},
		},
	}

	s := syncer.New(store, "master", "mirror")
	result, err := s.Run(context.Background())
	require.NoError(t, err)

	// All three master spellings resolve to the same mirror page.
	assert.Equal(t, 3, result.Updated)
	assert.Equal(t, 0, result.Created)
	for _, u := range store.updates {
		assert.Equal(t, "x1", u.pageID)
	}
}

func TestRunSkipsUntitledPages(t *testing.T) {
	store := &fakeStore{
		schemas: map[string]properties.Schema{"mirror": mirrorSchema()},
		pages: map[string][]properties.Page{
			"master": {
				masterPage("m1", "   ", nil),
				masterPage("m2", "Task B", nil),
			},
		},
	}

	s := syncer.New(store, "master", "mirror")
	result, err := s.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 1, result.Created)
}

func TestRunOmitsPropertiesAbsentFromMirrorSchema(t *testing.T) {
	store := &fakeStore{
		schemas: map[string]properties.Schema{"mirror": mirrorSchema()},
		pages: map[string][]properties.Page{
			"master": {
				masterPage("m1", "Task A", map[string]properties.Value{
					"Status":      properties.Select{Option: "Done"},
					"Master Only": properties.Select{Option: "Secret"},
				}),
			},
		},
	}

	s := syncer.New(store, "master", "mirror")
	_, err := s.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, store.creates, 1)
	assert.NotContains(t, store.creates[0].payload, "Master Only")
}

func TestRunEmptyPayloadStillCountsUpdated(t *testing.T) {
	store := &fakeStore{
		schemas: map[string]properties.Schema{"mirror": {"Activity": {Type: properties.TypeTitle}}},
		pages: map[string][]properties.Page{
			"master": {masterPage("m1", "Task A", nil)},
			"mirror": {titledPage("x1", "Task A")},
		},
	}

	s := syncer.New(store, "master", "mirror")
	result, err := s.Run(context.Background())
	require.NoError(t, err)

	// Nothing to write, but the page exists so it counts as updated.
	assert.Equal(t, 1, result.Updated)
	assert.Empty(t, store.updates)
}

func TestRunIdempotentPayloads(t *testing.T) {
	newStore := func() *fakeStore {
		return &fakeStore{
			schemas: map[string]properties.Schema{"mirror": mirrorSchema()},
			pages: map[string][]properties.Page{
				"master": {
					masterPage("m1", "Task A", map[string]properties.Value{"Status": properties.Select{Option: "Done"}}),
				},
			},
		}
	}

	first := newStore()
	second := newStore()
	_, err := syncer.New(first, "master", "mirror").Run(context.Background())
	require.NoError(t, err)
	_, err = syncer.New(second, "master", "mirror").Run(context.Background())
	require.NoError(t, err)

	require.Len(t, first.creates, 1)
	require.Len(t, second.creates, 1)
	assert.Equal(t, first.creates[0].payload, second.creates[0].payload)
}

func TestRunSchemaFailureIsFatal(t *testing.T) {
	store := &fakeStore{
		schemaErr: errors.NewAccessError("mirror", "abcd...wxyz", "HTTP 404", nil),
	}

	_, err := syncer.New(store, "master", "mirror").Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
	assert.Empty(t, store.creates)
	assert.Empty(t, store.updates)
}

func TestRunPageFetchFailureIsFatal(t *testing.T) {
	store := &fakeStore{
		schemas:  map[string]properties.Schema{"mirror": mirrorSchema()},
		pagesErr: map[string]error{"master": errors.NewAPIError(503, "/v1/databases/master/query", "down")},
	}

	_, err := syncer.New(store, "master", "mirror").Run(context.Background())
	require.Error(t, err)
	assert.Empty(t, store.creates)
}

func TestRunMissingTitlePropertyIsFatal(t *testing.T) {
	store := &fakeStore{
		schemas: map[string]properties.Schema{"mirror": {"Status": {Type: properties.TypeStatus}}},
	}

	_, err := syncer.New(store, "master", "mirror").Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
}

func TestRunWriteFailureDoesNotAbortRun(t *testing.T) {
	store := &fakeStore{
		schemas: map[string]properties.Schema{"mirror": mirrorSchema()},
		pages: map[string][]properties.Page{
			"master": {
				masterPage("m1", "Task A", nil),
				masterPage("m2", "Task B", nil),
			},
		},
		createErr: errors.NewAPIError(500, "/v1/pages", "boom"),
	}

	s := syncer.New(store, "master", "mirror")
	result, err := s.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.Failed)
	assert.Equal(t, 0, result.Created)
}

func TestRunDryRunMakesNoWrites(t *testing.T) {
	store := &fakeStore{
		schemas: map[string]properties.Schema{"mirror": mirrorSchema()},
		pages: map[string][]properties.Page{
			"master": {
				masterPage("m1", "Task A", map[string]properties.Value{"Status": properties.Select{Option: "Done"}}),
				masterPage("m2", "Task B", nil),
			},
			"mirror": {titledPage("x1", "Task B")},
		},
	}

	s := syncer.New(store, "master", "mirror", syncer.WithDryRun(true))
	result, err := s.Run(context.Background())
	require.NoError(t, err)

	assert.True(t, result.DryRun)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Updated)
	assert.Empty(t, store.creates)
	assert.Empty(t, store.updates)
}

func TestResultSummary(t *testing.T) {
	result := &syncer.Result{Created: 2, Updated: 1, Skipped: 3}
	assert.Equal(t, "Created: 2, Updated: 1, Skipped (no title): 3", result.Summary())

	result = &syncer.Result{Failed: 1, Warnings: []string{"Unknown"}, DryRun: true}
	assert.Equal(t,
		"Created: 0, Updated: 0, Skipped (no title): 0, Failed: 1; unmapped status options: Unknown (dry run)",
		result.Summary())
}

func titledPage(id, title string) properties.Page {
	return properties.Page{
		ID:         id,
		Properties: map[string]properties.Value{"Activity": properties.Title{Text: title}},
	}
}
