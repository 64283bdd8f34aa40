package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testTeam(id, name string) *Team {
	return &Team{
		TeamID:          id,
		TeamName:        name,
		ContactEmail:    name + "@example.com",
		Members:         []string{"Asha", "Bilal", "Chitra", "Dev", "Esha", "Farhan"},
		PasswordHash:    "$2a$10$hash",
		DefaultPassword: "A1B2C3D4",
	}
}

func TestSQLiteStore_TeamRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	team := testTeam("team-1", "Team Rocket")
	require.NoError(t, store.CreateTeam(ctx, team))

	got, err := store.GetTeam(ctx, "team-1")
	require.NoError(t, err)
	assert.Equal(t, team.TeamName, got.TeamName)
	assert.Equal(t, team.Members, got.Members)
	assert.Equal(t, "A1B2C3D4", got.DefaultPassword)
	assert.False(t, got.CreatedAt.IsZero())

	byName, err := store.GetTeamByName(ctx, "Team Rocket")
	require.NoError(t, err)
	assert.Equal(t, "team-1", byName.TeamID)
}

func TestSQLiteStore_TeamNotFound(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.GetTeam(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.GetTeamByName(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStore_DuplicateTeamNameRejected(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateTeam(ctx, testTeam("team-1", "Team Rocket")))
	err := store.CreateTeam(ctx, testTeam("team-2", "Team Rocket"))
	assert.Error(t, err)
}

func TestSQLiteStore_UpdatePasswordClearsDefault(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateTeam(ctx, testTeam("team-1", "Team Rocket")))
	require.NoError(t, store.UpdatePassword(ctx, "team-1", "$2a$10$newhash"))

	got, err := store.GetTeam(ctx, "team-1")
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$newhash", got.PasswordHash)
	assert.Empty(t, got.DefaultPassword)

	assert.ErrorIs(t, store.UpdatePassword(ctx, "missing", "x"), ErrNotFound)
}

func TestSQLiteStore_SelectionUpsert(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := &Selection{TeamID: "team-1", ProblemID: "SIH001", ProblemTitle: "Old Title", Theme: "Healthcare"}
	require.NoError(t, store.SaveSelection(ctx, first))

	// Selecting again replaces the previous row.
	second := &Selection{TeamID: "team-1", ProblemID: "SIH002", ProblemTitle: "New Title", Theme: "Agriculture"}
	require.NoError(t, store.SaveSelection(ctx, second))

	got, err := store.GetSelection(ctx, "team-1")
	require.NoError(t, err)
	assert.Equal(t, "SIH002", got.ProblemID)
	assert.Equal(t, "Agriculture", got.Theme)

	n, err := store.CountSelections(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSQLiteStore_SelectionNotFound(t *testing.T) {
	store := newTestStore(t)
	_, err := store.GetSelection(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStore_ThemeCounts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i, theme := range []string{"Healthcare", "Agriculture", "Healthcare", "Smart Education"} {
		sel := &Selection{
			TeamID:       "team-" + string(rune('a'+i)),
			ProblemID:    "SIH00" + string(rune('1'+i)),
			ProblemTitle: "t",
			Theme:        theme,
		}
		require.NoError(t, store.SaveSelection(ctx, sel))
	}

	counts, err := store.ThemeCounts(ctx)
	require.NoError(t, err)
	require.Len(t, counts, 3)
	assert.Equal(t, ThemeCount{Theme: "Healthcare", Count: 2}, counts[0])
}

func TestSQLiteStore_ResearchRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rec := &ResearchRecord{
		TeamID:      "team-1",
		ProblemID:   "SIH001",
		Idea:        "original idea",
		Domain:      "healthcare",
		BundleJSON:  []byte(`{"summary":"• bullet"}`),
		Novelty:     10,
		Feasibility: 9,
		Impact:      9,
	}
	require.NoError(t, store.SaveResearch(ctx, rec))

	got, err := store.GetResearch(ctx, "team-1", "SIH001")
	require.NoError(t, err)
	assert.Equal(t, rec.BundleJSON, got.BundleJSON)
	assert.Equal(t, 10, got.Novelty)

	// Regeneration overwrites the cached pack.
	rec.Idea = "revised idea"
	rec.Novelty = 9
	require.NoError(t, store.SaveResearch(ctx, rec))

	got, err = store.GetResearch(ctx, "team-1", "SIH001")
	require.NoError(t, err)
	assert.Equal(t, "revised idea", got.Idea)
	assert.Equal(t, 9, got.Novelty)

	_, err = store.GetResearch(ctx, "team-1", "SIH999")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteStore_ExportRows(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateTeam(ctx, testTeam("team-1", "Alpha")))
	require.NoError(t, store.CreateTeam(ctx, testTeam("team-2", "Beta")))
	require.NoError(t, store.CreateTeam(ctx, testTeam("team-3", "Gamma")))

	require.NoError(t, store.SaveSelection(ctx, &Selection{
		TeamID: "team-1", ProblemID: "SIH001", ProblemTitle: "First", Theme: "Healthcare",
		SelectedAt: time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, store.SaveSelection(ctx, &Selection{
		TeamID: "team-2", ProblemID: "SIH002", ProblemTitle: "Second", Theme: "Agriculture",
		SelectedAt: time.Date(2025, 9, 2, 10, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, store.SaveResearch(ctx, &ResearchRecord{
		TeamID: "team-1", ProblemID: "SIH001", BundleJSON: []byte(`{}`),
		Novelty: 10, Feasibility: 9, Impact: 9,
	}))

	rows, err := store.ExportRows(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Alpha", rows[0].TeamName)
	require.NotNil(t, rows[0].ProblemTitle)
	assert.Equal(t, "First", *rows[0].ProblemTitle)
	require.NotNil(t, rows[0].Novelty)
	assert.Equal(t, 10, *rows[0].Novelty)

	// Team without generated research exports empty score cells.
	assert.Equal(t, "Beta", rows[1].TeamName)
	assert.Nil(t, rows[1].Novelty)

	// Registered team without a selection still exports.
	assert.Equal(t, "Gamma", rows[2].TeamName)
	assert.Nil(t, rows[2].ProblemTitle)
	assert.Nil(t, rows[2].Theme)
	assert.Nil(t, rows[2].SelectedAt)
	assert.Nil(t, rows[2].Novelty)
}

func TestSQLiteStore_Counts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	n, err := store.CountTeams(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, store.CreateTeam(ctx, testTeam("team-1", "Alpha")))
	n, err = store.CountTeams(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = store.CountResearch(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
