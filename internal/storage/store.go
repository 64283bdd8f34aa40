package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// Team is one registered hackathon team.
type Team struct {
	TeamID          string
	TeamName        string
	ContactEmail    string
	Members         []string
	PasswordHash    string
	DefaultPassword string
	CreatedAt       time.Time
}

// Selection is a team's chosen problem statement. Each team holds at most
// one selection; re-selecting replaces it.
type Selection struct {
	TeamID       string
	ProblemID    string
	ProblemTitle string
	Theme        string
	SelectedAt   time.Time
}

// ResearchRecord caches one generated content pack, keyed by team and
// problem statement.
type ResearchRecord struct {
	TeamID      string
	ProblemID   string
	Idea        string
	Domain      string
	BundleJSON  []byte
	Novelty     int
	Feasibility int
	Impact      int
	CreatedAt   time.Time
}

// ThemeCount is one row of the per-theme selection analytics.
type ThemeCount struct {
	Theme string
	Count int
}

// ExportRow is one line of the admin CSV export, joining a team with its
// selection and cached scores. Selection fields are nil when the team has
// not picked a problem yet; score fields are nil when no research has been
// generated yet.
type ExportRow struct {
	TeamID       string
	TeamName     string
	ContactEmail string
	Members      []string
	ProblemTitle *string
	Theme        *string
	Novelty      *int
	Feasibility  *int
	Impact       *int
	SelectedAt   *time.Time
}

// TeamStore defines operations for persisting teams.
type TeamStore interface {
	// CreateTeam inserts a new team.
	CreateTeam(ctx context.Context, team *Team) error

	// GetTeam retrieves a team by its ID.
	GetTeam(ctx context.Context, teamID string) (*Team, error)

	// GetTeamByName retrieves a team by its exact name.
	GetTeamByName(ctx context.Context, name string) (*Team, error)

	// UpdatePassword replaces a team's password hash and clears the stored
	// default password.
	UpdatePassword(ctx context.Context, teamID, passwordHash string) error

	// CountTeams returns the number of registered teams.
	CountTeams(ctx context.Context) (int, error)
}

// SelectionStore defines operations for problem statement selections.
type SelectionStore interface {
	// SaveSelection upserts a team's selection.
	SaveSelection(ctx context.Context, sel *Selection) error

	// GetSelection retrieves a team's current selection.
	GetSelection(ctx context.Context, teamID string) (*Selection, error)

	// CountSelections returns the number of teams with a selection.
	CountSelections(ctx context.Context) (int, error)

	// ThemeCounts returns selection counts grouped by theme, most popular
	// first.
	ThemeCounts(ctx context.Context) ([]ThemeCount, error)
}

// ResearchStore defines operations for the generated-content cache.
type ResearchStore interface {
	// SaveResearch upserts a cached content pack.
	SaveResearch(ctx context.Context, rec *ResearchRecord) error

	// GetResearch retrieves the cached pack for a team and problem.
	GetResearch(ctx context.Context, teamID, problemID string) (*ResearchRecord, error)

	// CountResearch returns the number of cached packs.
	CountResearch(ctx context.Context) (int, error)

	// ExportRows returns one row per registered team for the admin export,
	// joined with its selection and scores, ordered by registration time.
	ExportRows(ctx context.Context) ([]ExportRow, error)
}

// Store combines all portal persistence capabilities.
type Store interface {
	TeamStore
	SelectionStore
	ResearchStore
	Close() error
}
