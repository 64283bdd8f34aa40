package content

// Result pairs the caller-visible outputs of one pipeline invocation.
type Result struct {
	Domain   Domain            `json:"domain"`
	Features ExtractedFeatures `json:"features"`
	Bundle   ContentBundle     `json:"bundle"`
	Scores   ScoreTriple       `json:"scores"`
}

// Generate runs the full deterministic pipeline: extraction, classification,
// bundle assembly, scoring. It is pure; calling it twice with the same input
// yields byte-identical output.
func Generate(pc ProblemContext) Result {
	features := Extract(pc.Description)
	domain := Classify(pc.Title, pc.Description)
	bundle := BuildContent(domain, features, pc.Title, pc.Description, pc.Enrichment)
	scores := Score(pc.Idea, pc.Title)
	return Result{
		Domain:   domain,
		Features: features,
		Bundle:   bundle,
		Scores:   scores,
	}
}
