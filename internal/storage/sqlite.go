package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates or opens a SQLite database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS teams (
			team_id TEXT PRIMARY KEY,
			team_name TEXT UNIQUE,
			contact_email TEXT,
			members JSON,
			password_hash TEXT,
			default_password TEXT,
			created_at TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS selections (
			team_id TEXT PRIMARY KEY,
			problem_id TEXT,
			problem_title TEXT,
			theme TEXT,
			selected_at TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS research (
			team_id TEXT,
			problem_id TEXT,
			idea TEXT,
			domain TEXT,
			bundle JSON,
			novelty INTEGER,
			feasibility INTEGER,
			impact INTEGER,
			created_at TIMESTAMP,
			PRIMARY KEY (team_id, problem_id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_selections_theme ON selections(theme);`,
	}

	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

// --- TeamStore Implementation ---

func (s *SQLiteStore) CreateTeam(ctx context.Context, team *Team) error {
	members, err := json.Marshal(team.Members)
	if err != nil {
		return err
	}
	if team.CreatedAt.IsZero() {
		team.CreatedAt = time.Now().UTC()
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO teams (team_id, team_name, contact_email, members, password_hash, default_password, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, team.TeamID, team.TeamName, team.ContactEmail, members, team.PasswordHash, team.DefaultPassword, team.CreatedAt)
	return err
}

func (s *SQLiteStore) GetTeam(ctx context.Context, teamID string) (*Team, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT team_id, team_name, contact_email, members, password_hash, default_password, created_at
		FROM teams WHERE team_id = ?
	`, teamID)
	return scanTeam(row)
}

func (s *SQLiteStore) GetTeamByName(ctx context.Context, name string) (*Team, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT team_id, team_name, contact_email, members, password_hash, default_password, created_at
		FROM teams WHERE team_name = ?
	`, name)
	return scanTeam(row)
}

func scanTeam(row *sql.Row) (*Team, error) {
	var t Team
	var members []byte
	err := row.Scan(&t.TeamID, &t.TeamName, &t.ContactEmail, &members, &t.PasswordHash, &t.DefaultPassword, &t.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if len(members) > 0 {
		_ = json.Unmarshal(members, &t.Members)
	}
	return &t, nil
}

func (s *SQLiteStore) UpdatePassword(ctx context.Context, teamID, passwordHash string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE teams SET password_hash = ?, default_password = '' WHERE team_id = ?
	`, passwordHash, teamID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) CountTeams(ctx context.Context) (int, error) {
	return s.countRows(ctx, "teams")
}

// --- SelectionStore Implementation ---

func (s *SQLiteStore) SaveSelection(ctx context.Context, sel *Selection) error {
	if sel.SelectedAt.IsZero() {
		sel.SelectedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO selections (team_id, problem_id, problem_title, theme, selected_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(team_id) DO UPDATE SET
			problem_id=excluded.problem_id,
			problem_title=excluded.problem_title,
			theme=excluded.theme,
			selected_at=excluded.selected_at
	`, sel.TeamID, sel.ProblemID, sel.ProblemTitle, sel.Theme, sel.SelectedAt)
	return err
}

func (s *SQLiteStore) GetSelection(ctx context.Context, teamID string) (*Selection, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT team_id, problem_id, problem_title, theme, selected_at
		FROM selections WHERE team_id = ?
	`, teamID)

	var sel Selection
	err := row.Scan(&sel.TeamID, &sel.ProblemID, &sel.ProblemTitle, &sel.Theme, &sel.SelectedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sel, nil
}

func (s *SQLiteStore) CountSelections(ctx context.Context) (int, error) {
	return s.countRows(ctx, "selections")
}

func (s *SQLiteStore) ThemeCounts(ctx context.Context) ([]ThemeCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT theme, COUNT(*) AS n FROM selections
		GROUP BY theme ORDER BY n DESC, theme ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ThemeCount
	for rows.Next() {
		var tc ThemeCount
		if err := rows.Scan(&tc.Theme, &tc.Count); err != nil {
			return nil, err
		}
		out = append(out, tc)
	}
	return out, rows.Err()
}

// --- ResearchStore Implementation ---

func (s *SQLiteStore) SaveResearch(ctx context.Context, rec *ResearchRecord) error {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO research (team_id, problem_id, idea, domain, bundle, novelty, feasibility, impact, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(team_id, problem_id) DO UPDATE SET
			idea=excluded.idea,
			domain=excluded.domain,
			bundle=excluded.bundle,
			novelty=excluded.novelty,
			feasibility=excluded.feasibility,
			impact=excluded.impact,
			created_at=excluded.created_at
	`, rec.TeamID, rec.ProblemID, rec.Idea, rec.Domain, rec.BundleJSON, rec.Novelty, rec.Feasibility, rec.Impact, rec.CreatedAt)
	return err
}

func (s *SQLiteStore) GetResearch(ctx context.Context, teamID, problemID string) (*ResearchRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT team_id, problem_id, idea, domain, bundle, novelty, feasibility, impact, created_at
		FROM research WHERE team_id = ? AND problem_id = ?
	`, teamID, problemID)

	var rec ResearchRecord
	err := row.Scan(&rec.TeamID, &rec.ProblemID, &rec.Idea, &rec.Domain, &rec.BundleJSON,
		&rec.Novelty, &rec.Feasibility, &rec.Impact, &rec.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *SQLiteStore) CountResearch(ctx context.Context) (int, error) {
	return s.countRows(ctx, "research")
}

// ExportRows drives from teams so registered teams without a selection
// still export.
func (s *SQLiteStore) ExportRows(ctx context.Context) ([]ExportRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT t.team_id, t.team_name, t.contact_email, t.members,
		       sel.problem_title, sel.theme, sel.selected_at,
		       r.novelty, r.feasibility, r.impact
		FROM teams t
		LEFT JOIN selections sel ON sel.team_id = t.team_id
		LEFT JOIN research r ON r.team_id = t.team_id AND r.problem_id = sel.problem_id
		ORDER BY t.created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ExportRow
	for rows.Next() {
		var row ExportRow
		var members []byte
		if err := rows.Scan(&row.TeamID, &row.TeamName, &row.ContactEmail, &members,
			&row.ProblemTitle, &row.Theme, &row.SelectedAt,
			&row.Novelty, &row.Feasibility, &row.Impact); err != nil {
			return nil, err
		}
		if len(members) > 0 {
			_ = json.Unmarshal(members, &row.Members)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) countRows(ctx context.Context, table string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n)
	return n, err
}
