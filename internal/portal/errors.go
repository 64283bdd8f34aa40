package portal

import "errors"

var (
	ErrBadCredentials  = errors.New("invalid credentials")
	ErrDuplicateTeam   = errors.New("team name already registered")
	ErrTooFewMembers   = errors.New("a team needs at least 6 members")
	ErrWeakPassword    = errors.New("password must be at least 6 characters")
	ErrEmailMismatch   = errors.New("contact email does not match")
	ErrProblemNotFound = errors.New("unknown problem statement")
	ErrNoSelection     = errors.New("team has not selected a problem statement")
	ErrNoResearch      = errors.New("no generated content for this problem statement")
)
