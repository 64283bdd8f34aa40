// Package catalog holds the read-only problem statement dataset. It is loaded
// once at startup and passed to the components that need it; nothing mutates
// it afterwards.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

type Problem struct {
	ID           string `json:"problem_statement_id"`
	Title        string `json:"problem_statement_title"`
	Organization string `json:"organization"`
	Category     string `json:"category"`
	Theme        string `json:"theme"`
	Description  string `json:"description"`
}

type Catalog struct {
	problems []Problem
	byID     map[string]int
}

// Load reads a JSON array of problem statements from disk.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read problem dataset: %w", err)
	}

	var problems []Problem
	if err := json.Unmarshal(data, &problems); err != nil {
		return nil, fmt.Errorf("failed to parse problem dataset: %w", err)
	}
	return New(problems), nil
}

func New(problems []Problem) *Catalog {
	byID := make(map[string]int, len(problems))
	for i, p := range problems {
		byID[p.ID] = i
	}
	return &Catalog{problems: problems, byID: byID}
}

func (c *Catalog) Len() int {
	return len(c.problems)
}

// All returns a copy of the dataset so callers cannot mutate it.
func (c *Catalog) All() []Problem {
	out := make([]Problem, len(c.problems))
	copy(out, c.problems)
	return out
}

func (c *Catalog) Get(id string) (Problem, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Problem{}, false
	}
	return c.problems[i], true
}

// ByTheme filters problems by theme, case-insensitively. An empty theme
// returns the whole dataset.
func (c *Catalog) ByTheme(theme string) []Problem {
	if strings.TrimSpace(theme) == "" {
		return c.All()
	}
	var out []Problem
	for _, p := range c.problems {
		if strings.EqualFold(p.Theme, theme) {
			out = append(out, p)
		}
	}
	return out
}

// Themes lists the distinct themes present in the dataset, in first-seen order.
func (c *Catalog) Themes() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range c.problems {
		if p.Theme == "" || seen[p.Theme] {
			continue
		}
		seen[p.Theme] = true
		out = append(out, p.Theme)
	}
	return out
}
