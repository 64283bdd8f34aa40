package portal

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"sihportal/internal/storage"
)

// ScoreAverages carries mean scores across teams with generated research.
type ScoreAverages struct {
	Novelty     float64 `json:"novelty"`
	Feasibility float64 `json:"feasibility"`
	Impact      float64 `json:"impact"`
}

// AdminStats summarizes portal activity for the admin dashboard.
type AdminStats struct {
	TotalTeams      int                  `json:"totalTeams"`
	TotalSelections int                  `json:"totalSelections"`
	TotalResearch   int                  `json:"totalResearch"`
	AverageScores   *ScoreAverages       `json:"averageScores,omitempty"`
	Themes          []storage.ThemeCount `json:"themes,omitempty"`
}

func (s *Service) AdminStats(ctx context.Context) (*AdminStats, error) {
	teams, err := s.store.CountTeams(ctx)
	if err != nil {
		return nil, err
	}
	selections, err := s.store.CountSelections(ctx)
	if err != nil {
		return nil, err
	}
	research, err := s.store.CountResearch(ctx)
	if err != nil {
		return nil, err
	}
	themes, err := s.store.ThemeCounts(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.store.ExportRows(ctx)
	if err != nil {
		return nil, err
	}
	return &AdminStats{
		TotalTeams:      teams,
		TotalSelections: selections,
		TotalResearch:   research,
		AverageScores:   averageScores(rows),
		Themes:          themes,
	}, nil
}

// ThemeStat is one row of the theme analytics view.
type ThemeStat struct {
	Theme         string         `json:"theme"`
	Count         int            `json:"count"`
	AverageScores *ScoreAverages `json:"averageScores,omitempty"`
}

// ThemeAnalytics returns selection counts and mean scores per theme, most
// popular theme first.
func (s *Service) ThemeAnalytics(ctx context.Context) ([]ThemeStat, error) {
	counts, err := s.store.ThemeCounts(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := s.store.ExportRows(ctx)
	if err != nil {
		return nil, err
	}

	byTheme := make(map[string][]storage.ExportRow)
	for _, row := range rows {
		if row.Theme == nil {
			continue
		}
		byTheme[*row.Theme] = append(byTheme[*row.Theme], row)
	}

	stats := make([]ThemeStat, 0, len(counts))
	for _, tc := range counts {
		stats = append(stats, ThemeStat{
			Theme:         tc.Theme,
			Count:         tc.Count,
			AverageScores: averageScores(byTheme[tc.Theme]),
		})
	}
	return stats, nil
}

// averageScores ignores rows without generated research. Returns nil when no
// row has scores.
func averageScores(rows []storage.ExportRow) *ScoreAverages {
	var sumN, sumF, sumI, n int
	for _, row := range rows {
		if row.Novelty == nil || row.Feasibility == nil || row.Impact == nil {
			continue
		}
		sumN += *row.Novelty
		sumF += *row.Feasibility
		sumI += *row.Impact
		n++
	}
	if n == 0 {
		return nil
	}
	return &ScoreAverages{
		Novelty:     float64(sumN) / float64(n),
		Feasibility: float64(sumF) / float64(n),
		Impact:      float64(sumI) / float64(n),
	}
}

var exportHeader = []string{
	"Team ID", "Team Name", "Contact Email", "Members",
	"Problem Title", "Theme",
	"Novelty Score", "Feasibility Score", "Impact Score",
	"Submission Date",
}

// ExportCSV writes the registration export, one row per registered team.
// Teams without a selection export "No Selection"/"N/A" placeholders; teams
// without generated research export empty score cells.
func (s *Service) ExportCSV(ctx context.Context, w io.Writer) error {
	rows, err := s.store.ExportRows(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.TeamID,
			row.TeamName,
			row.ContactEmail,
			strings.Join(row.Members, "; "),
			textCell(row.ProblemTitle, "No Selection"),
			textCell(row.Theme, "N/A"),
			scoreCell(row.Novelty),
			scoreCell(row.Feasibility),
			scoreCell(row.Impact),
			dateCell(row.SelectedAt),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func textCell(v *string, placeholder string) string {
	if v == nil {
		return placeholder
	}
	return *v
}

func scoreCell(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func dateCell(v *time.Time) string {
	if v == nil {
		return ""
	}
	return v.Format("2006-01-02")
}
