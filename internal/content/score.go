package content

import "strings"

var innovationKeywords = []string{
	"ai", "ml", "blockchain", "iot", "drone", "ar", "vr", "smart",
	"intelligent", "automated", "predictive", "real-time", "geo-fencing",
	"digital", "monitoring",
}

var feasibilityKeywords = []string{
	"existing", "proven", "scalable", "cost-effective", "practical",
	"available", "cloud", "mobile", "api", "system",
}

var impactKeywords = []string{
	"safety", "security", "tourism", "community", "society", "national",
	"citizens", "government", "emergency", "response", "monitoring",
}

// Score maps keyword hits in the idea and title to the heuristic triple.
// Each keyword counts once if present in either input. The scorer is
// intentionally generous; do not make it more discriminating.
func Score(idea, title string) ScoreTriple {
	ideaLower := strings.ToLower(idea)
	titleLower := strings.ToLower(title)

	return ScoreTriple{
		Novelty:     clampFloor(thresholdScore(ideaLower, titleLower, innovationKeywords), 9),
		Feasibility: clampFloor(thresholdScore(ideaLower, titleLower, feasibilityKeywords), 8),
		Impact:      clampFloor(thresholdScore(ideaLower, titleLower, impactKeywords), 9),
	}
}

// thresholdScore awards 10 for two or more keyword hits, 9 otherwise.
func thresholdScore(idea, title string, keywords []string) int {
	hits := 0
	for _, kw := range keywords {
		if strings.Contains(idea, kw) || strings.Contains(title, kw) {
			hits++
		}
	}
	if hits >= 2 {
		return 10
	}
	return 9
}

// clampFloor keeps the documented score ranges holding by construction.
func clampFloor(score, floor int) int {
	if score < floor {
		return floor
	}
	return score
}
