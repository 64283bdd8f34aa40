package content

import (
	"fmt"
	"strings"
)

// DeckInfo carries the header fields for a rendered content pack.
type DeckInfo struct {
	ProblemID string
	Title     string
	TeamName  string
}

// Per-section bullet caps for the rendered pack.
const (
	deckFeatureLines    = 6
	deckTechnologyLines = 7
	deckRiskLines       = 6
	deckOutcomeLines    = 6
	deckCitationLines   = 5
)

// RenderDeck renders the six-section plain-text content pack teams download
// in place of a slide deck. Sections follow the official layout: title,
// problem and solution, technical approach, feasibility, impact, references.
func RenderDeck(info DeckInfo, bundle ContentBundle, scores ScoreTriple) string {
	var sb strings.Builder

	sb.WriteString("SLIDE 1: TITLE\n")
	sb.WriteString("SMART INDIA HACKATHON 2025\n")
	sb.WriteString(info.Title + "\n")
	fmt.Fprintf(&sb, "Problem Statement ID: %s\n", info.ProblemID)
	fmt.Fprintf(&sb, "Team: %s\n", info.TeamName)
	sb.WriteString("Innovation • Technology • Impact\n\n")

	sb.WriteString("SLIDE 2: PROBLEM & SOLUTION\n")
	writeSectionBullets(&sb, bundle.Summary, deckFeatureLines)

	sb.WriteString("\nSLIDE 3: TECHNICAL APPROACH\n")
	writeSectionBullets(&sb, bundle.TechnicalApproach, deckTechnologyLines)

	sb.WriteString("\nSLIDE 4: FEASIBILITY ANALYSIS\n")
	writeSectionBullets(&sb, bundle.Feasibility, deckRiskLines)

	sb.WriteString("\nSLIDE 5: IMPACT & BENEFITS\n")
	writeSectionBullets(&sb, bundle.Impact, deckOutcomeLines)

	sb.WriteString("\nSLIDE 6: RESEARCH & REFERENCES\n")
	refs := bundle.References
	if len(refs) > deckCitationLines {
		refs = refs[:deckCitationLines]
	}
	for _, ref := range refs {
		sb.WriteString(Bullet + " " + ref + "\n")
	}

	sb.WriteString("\nSCORES\n")
	fmt.Fprintf(&sb, "Novelty: %d/10\n", scores.Novelty)
	fmt.Fprintf(&sb, "Feasibility: %d/10\n", scores.Feasibility)
	fmt.Fprintf(&sb, "Impact: %d/10\n", scores.Impact)
	fmt.Fprintf(&sb, "Overall: %.1f/10\n", float64(scores.Novelty+scores.Feasibility+scores.Impact)/3)

	return sb.String()
}

func writeSectionBullets(sb *strings.Builder, section string, max int) {
	lines := BulletLines(section)
	if len(lines) > max {
		lines = lines[:max]
	}
	for _, line := range lines {
		sb.WriteString(line + "\n")
	}
}
