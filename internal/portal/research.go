package portal

import (
	"context"
	"encoding/json"
	"errors"

	"sihportal/internal/content"
	"sihportal/internal/storage"
)

// Research is the full generated pack for one team and problem statement.
type Research struct {
	ProblemID     string                `json:"problemId"`
	Title         string                `json:"title"`
	Domain        content.Domain        `json:"domain"`
	Idea          string                `json:"idea"`
	Bundle        content.ContentBundle `json:"research"`
	Scores        content.ScoreTriple   `json:"scores"`
	JudgeQA       []content.QA          `json:"judgeQA"`
	DiagramPrompt string                `json:"diagramPrompt"`
	Cached        bool                  `json:"cached"`
}

// GenerateResearch runs the content pipeline for a team's problem statement.
// Results are cached per (team, problem); regenerate forces a fresh run.
// Enrichment is best effort and never blocks generation.
func (s *Service) GenerateResearch(ctx context.Context, teamID, problemID, idea string, regenerate bool) (*Research, error) {
	problem, ok := s.catalog.Get(problemID)
	if !ok {
		return nil, ErrProblemNotFound
	}

	if !regenerate {
		rec, err := s.store.GetResearch(ctx, teamID, problemID)
		if err == nil {
			return s.researchFromRecord(rec, problem.Title)
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
	}

	enriched := s.runEnrichment(ctx, problem.Title, problem.Description, idea)
	prepared := content.PrepareIdea(problem.Title, idea, enriched)

	result := content.Generate(content.ProblemContext{
		Title:       problem.Title,
		Description: problem.Description,
		Idea:        prepared,
		Enrichment:  enriched,
	})

	bundleJSON, err := json.Marshal(result.Bundle)
	if err != nil {
		return nil, err
	}
	rec := &storage.ResearchRecord{
		TeamID:      teamID,
		ProblemID:   problemID,
		Idea:        prepared,
		Domain:      string(result.Domain),
		BundleJSON:  bundleJSON,
		Novelty:     result.Scores.Novelty,
		Feasibility: result.Scores.Feasibility,
		Impact:      result.Scores.Impact,
	}
	if err := s.store.SaveResearch(ctx, rec); err != nil {
		return nil, err
	}

	s.log.Info("research generated",
		"team_id", teamID, "problem_id", problemID, "domain", result.Domain,
		"enriched", enriched != "")

	return &Research{
		ProblemID:     problemID,
		Title:         problem.Title,
		Domain:        result.Domain,
		Idea:          prepared,
		Bundle:        result.Bundle,
		Scores:        result.Scores,
		JudgeQA:       content.JudgeQA(problem.Title, prepared, result.Scores),
		DiagramPrompt: content.DiagramPrompt(problem.Title, result.Bundle.TechnicalApproach),
	}, nil
}

// GetResearch returns the cached pack without generating.
func (s *Service) GetResearch(ctx context.Context, teamID, problemID string) (*Research, error) {
	problem, ok := s.catalog.Get(problemID)
	if !ok {
		return nil, ErrProblemNotFound
	}
	rec, err := s.store.GetResearch(ctx, teamID, problemID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNoResearch
	}
	if err != nil {
		return nil, err
	}
	return s.researchFromRecord(rec, problem.Title)
}

// RenderDeck renders the downloadable six-section content pack for a team's
// cached research.
func (s *Service) RenderDeck(ctx context.Context, teamID, problemID string) (string, error) {
	team, err := s.store.GetTeam(ctx, teamID)
	if err != nil {
		return "", err
	}
	research, err := s.GetResearch(ctx, teamID, problemID)
	if err != nil {
		return "", err
	}

	info := content.DeckInfo{
		ProblemID: problemID,
		Title:     research.Title,
		TeamName:  team.TeamName,
	}
	return content.RenderDeck(info, research.Bundle, research.Scores), nil
}

func (s *Service) researchFromRecord(rec *storage.ResearchRecord, title string) (*Research, error) {
	var bundle content.ContentBundle
	if err := json.Unmarshal(rec.BundleJSON, &bundle); err != nil {
		return nil, err
	}
	scores := content.ScoreTriple{
		Novelty:     rec.Novelty,
		Feasibility: rec.Feasibility,
		Impact:      rec.Impact,
	}
	return &Research{
		ProblemID:     rec.ProblemID,
		Title:         title,
		Domain:        content.Domain(rec.Domain),
		Idea:          rec.Idea,
		Bundle:        bundle,
		Scores:        scores,
		JudgeQA:       content.JudgeQA(title, rec.Idea, scores),
		DiagramPrompt: content.DiagramPrompt(title, bundle.TechnicalApproach),
		Cached:        true,
	}, nil
}

func (s *Service) runEnrichment(ctx context.Context, title, description, idea string) string {
	if s.chain.Empty() {
		return ""
	}

	prompt := s.prompts.BuildResearchPrompt(title, description, idea)
	text, stages := s.chain.Run(ctx, prompt)
	for _, st := range stages {
		if st.Err != nil {
			s.log.Debug("enrichment provider failed", "provider", st.Provider, "error", st.Err)
		}
	}
	if text == "" {
		s.log.Info("all enrichment providers failed, using template content")
	}
	return text
}
