package portal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"sihportal/internal/catalog"
	"sihportal/internal/enrich"
	"sihportal/internal/logger"
	"sihportal/internal/mailer"
	"sihportal/internal/storage"
)

const (
	minTeamMembers    = 6
	minPasswordLength = 6
)

// Service implements the portal's team-facing operations on top of the
// store, the problem catalog and the enrichment chain.
type Service struct {
	store   storage.Store
	catalog *catalog.Catalog
	chain   *enrich.Chain
	prompts enrich.PromptBuilder
	mail    mailer.Mailer
	log     *logger.Logger
}

func NewService(store storage.Store, cat *catalog.Catalog, chain *enrich.Chain, mail mailer.Mailer, log *logger.Logger) *Service {
	return &Service{
		store:   store,
		catalog: cat,
		chain:   chain,
		mail:    mail,
		log:     log,
	}
}

// Catalog exposes the problem statement dataset.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

type RegisterInput struct {
	TeamName     string
	ContactEmail string
	Members      []string
}

type RegisterResult struct {
	TeamID string
	// Password is the generated credential. It is always returned so the
	// frontend can show it when mail delivery is unavailable.
	Password string
	Mailed   bool
}

// Register creates a team with a generated password and mails the
// credentials. Mail failures do not fail registration.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*RegisterResult, error) {
	name := strings.TrimSpace(in.TeamName)
	email := strings.TrimSpace(in.ContactEmail)
	if name == "" || email == "" {
		return nil, fmt.Errorf("team name and contact email are required")
	}

	var members []string
	for _, m := range in.Members {
		if m = strings.TrimSpace(m); m != "" {
			members = append(members, m)
		}
	}
	if len(members) < minTeamMembers {
		return nil, ErrTooFewMembers
	}

	if _, err := s.store.GetTeamByName(ctx, name); err == nil {
		return nil, ErrDuplicateTeam
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	password, err := GeneratePassword()
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	team := &storage.Team{
		TeamID:          uuid.NewString(),
		TeamName:        name,
		ContactEmail:    email,
		Members:         members,
		PasswordHash:    string(hash),
		DefaultPassword: password,
	}
	if err := s.store.CreateTeam(ctx, team); err != nil {
		return nil, err
	}

	mailed := false
	if s.mail != nil {
		if err := s.mail.SendCredentials(email, name, team.TeamID, password); err != nil {
			s.log.Warn("credential mail failed, returning password inline",
				"team_id", team.TeamID, "error", err)
		} else {
			mailed = true
		}
	}

	s.log.Info("team registered", "team_id", team.TeamID, "team_name", name, "members", len(members))
	return &RegisterResult{TeamID: team.TeamID, Password: password, Mailed: mailed}, nil
}

// Login verifies a team's credentials. The identifier may be the team ID or
// the team name.
func (s *Service) Login(ctx context.Context, identifier, password string) (*storage.Team, error) {
	identifier = strings.TrimSpace(identifier)

	team, err := s.store.GetTeam(ctx, identifier)
	if errors.Is(err, storage.ErrNotFound) {
		team, err = s.store.GetTeamByName(ctx, identifier)
	}
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrBadCredentials
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(team.PasswordHash), []byte(password)) != nil {
		return nil, ErrBadCredentials
	}
	return team, nil
}

// ChangePassword replaces a team's password after verifying the current one.
func (s *Service) ChangePassword(ctx context.Context, teamID, current, next string) error {
	if len(next) < minPasswordLength {
		return ErrWeakPassword
	}

	team, err := s.store.GetTeam(ctx, teamID)
	if errors.Is(err, storage.ErrNotFound) {
		return ErrBadCredentials
	}
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(team.PasswordHash), []byte(current)) != nil {
		return ErrBadCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.store.UpdatePassword(ctx, teamID, string(hash))
}

// ResetPassword issues a fresh generated password for a team that lost its
// credentials. The contact email must match the registered one.
func (s *Service) ResetPassword(ctx context.Context, teamID, contactEmail string) (*RegisterResult, error) {
	team, err := s.store.GetTeam(ctx, teamID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrBadCredentials
	}
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(strings.TrimSpace(contactEmail), team.ContactEmail) {
		return nil, ErrEmailMismatch
	}

	password, err := GeneratePassword()
	if err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	if err := s.store.UpdatePassword(ctx, teamID, string(hash)); err != nil {
		return nil, err
	}

	mailed := false
	if s.mail != nil {
		if err := s.mail.SendCredentials(team.ContactEmail, team.TeamName, team.TeamID, password); err != nil {
			s.log.Warn("reset mail failed, returning password inline",
				"team_id", team.TeamID, "error", err)
		} else {
			mailed = true
		}
	}

	s.log.Info("password reset", "team_id", team.TeamID)
	return &RegisterResult{TeamID: team.TeamID, Password: password, Mailed: mailed}, nil
}

// SaveSelection records a team's chosen problem statement, replacing any
// previous choice.
func (s *Service) SaveSelection(ctx context.Context, teamID, problemID string) (*storage.Selection, error) {
	if _, err := s.store.GetTeam(ctx, teamID); err != nil {
		return nil, err
	}
	problem, ok := s.catalog.Get(problemID)
	if !ok {
		return nil, ErrProblemNotFound
	}

	sel := &storage.Selection{
		TeamID:       teamID,
		ProblemID:    problem.ID,
		ProblemTitle: problem.Title,
		Theme:        problem.Theme,
	}
	if err := s.store.SaveSelection(ctx, sel); err != nil {
		return nil, err
	}

	s.log.Info("selection saved", "team_id", teamID, "problem_id", problem.ID, "theme", problem.Theme)
	return sel, nil
}

// Dashboard bundles what a logged-in team sees on its landing page.
type Dashboard struct {
	Team        *storage.Team
	Selection   *storage.Selection
	HasResearch bool
}

func (s *Service) Dashboard(ctx context.Context, teamID string) (*Dashboard, error) {
	team, err := s.store.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	d := &Dashboard{Team: team}
	sel, err := s.store.GetSelection(ctx, teamID)
	if errors.Is(err, storage.ErrNotFound) {
		return d, nil
	}
	if err != nil {
		return nil, err
	}
	d.Selection = sel

	if _, err := s.store.GetResearch(ctx, teamID, sel.ProblemID); err == nil {
		d.HasResearch = true
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}
	return d, nil
}
