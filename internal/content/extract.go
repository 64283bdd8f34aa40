package content

import (
	"regexp"
	"strings"
)

var requirementKeywords = []string{"should", "must", "require", "need", "expected", "solution"}

var stakeholderKeywords = []string{
	"farmer", "student", "patient", "citizen", "user", "government",
	"ministry", "department", "hospital", "school", "college",
}

var challengeKeywords = []string{
	"challenge", "problem", "issue", "difficulty", "lack", "limited",
	"poor", "inadequate", "insufficient",
}

const (
	maxRequirements = 6
	maxStakeholders = 5
	maxChallenges   = 4
)

var expectedSolutionHeading = regexp.MustCompile(`(?i)expected solution:?`)

// Extract pulls requirements, stakeholders, challenges, and the expected
// solution section out of a problem description. Absence of matches yields
// empty results, never an error.
func Extract(description string) ExtractedFeatures {
	return ExtractedFeatures{
		Requirements:     matchingSentences(description, requirementKeywords, maxRequirements),
		Stakeholders:     presentKeywords(description, stakeholderKeywords, maxStakeholders),
		Challenges:       matchingSentences(description, challengeKeywords, maxChallenges),
		ExpectedSolution: expectedSolutionSection(description),
	}
}

// matchingSentences keeps sentences containing any keyword as a
// case-insensitive substring, in original order, up to max.
func matchingSentences(description string, keywords []string, max int) []string {
	var out []string
	for _, sentence := range splitSentences(description) {
		lower := strings.ToLower(sentence)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				out = append(out, strings.TrimSpace(sentence))
				break
			}
		}
		if len(out) == max {
			break
		}
	}
	return out
}

// presentKeywords returns the keywords found in the description, in list
// order, up to max.
func presentKeywords(description string, keywords []string, max int) []string {
	lower := strings.ToLower(description)
	var out []string
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			out = append(out, kw)
			if len(out) == max {
				break
			}
		}
	}
	return out
}

// expectedSolutionSection returns the text following an "Expected Solution"
// heading up to the next blank line, with the heading stripped.
func expectedSolutionSection(description string) string {
	loc := expectedSolutionHeading.FindStringIndex(description)
	if loc == nil {
		return ""
	}
	section := description[loc[0]:]
	if end := strings.Index(section, "\n\n"); end >= 0 {
		section = section[:end]
	}
	return strings.TrimSpace(expectedSolutionHeading.ReplaceAllString(section, ""))
}

func splitSentences(text string) []string {
	var out []string
	for _, s := range strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	}) {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
