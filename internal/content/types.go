// Package content implements the deterministic research content pipeline:
// feature extraction from problem descriptions, domain classification,
// template-driven bundle assembly, and heuristic scoring. Everything here is
// pure; the optional enrichment text is produced elsewhere and passed in.
package content

// ProblemContext is the immutable input to one pipeline invocation.
type ProblemContext struct {
	Title       string
	Description string
	Idea        string
	// Enrichment is optional externally generated text. Empty means no
	// enrichment; the pipeline output must not otherwise depend on it.
	Enrichment string
}

// ExtractedFeatures holds the keyword-derived facts pulled from a problem
// description. All slices respect their caps (6/5/4) and preserve input
// order. Entries are bare trimmed sentences; bullet markers are a rendering
// concern and are applied when bundles are assembled.
type ExtractedFeatures struct {
	Requirements     []string `json:"requirements"`
	Stakeholders     []string `json:"stakeholders"`
	Challenges       []string `json:"challenges"`
	ExpectedSolution string   `json:"expectedSolution"`
}

// Domain is the sector classification assigned to a problem statement.
type Domain string

const (
	DomainHealthcare     Domain = "healthcare"
	DomainAgriculture    Domain = "agriculture"
	DomainTransportation Domain = "transportation"
	DomainEducation      Domain = "education"
	DomainEnvironment    Domain = "environment"
	DomainFintech        Domain = "fintech"
	DomainSmartCity      Domain = "smartcity"
	DomainTourism        Domain = "tourism"
	DomainGeneral        Domain = "general"
)

// ContentBundle is the five-field text output standing in for slide content.
// Each prose field is a newline-joined sequence of bullet lines; downstream
// code splits on newline and filters lines starting with the bullet marker,
// so that format is part of the contract.
type ContentBundle struct {
	Summary           string   `json:"summary"`
	TechnicalApproach string   `json:"technicalApproach"`
	Feasibility       string   `json:"feasibility"`
	Impact            string   `json:"impact"`
	References        []string `json:"references"`
}

// ScoreTriple holds the heuristic scores. The ranges are intentionally
// biased high (novelty and impact in [9,10], feasibility in [8,10] with an
// observed minimum of 9); this is a product decision and is preserved
// exactly for compatibility.
type ScoreTriple struct {
	Novelty     int `json:"novelty"`
	Feasibility int `json:"feasibility"`
	Impact      int `json:"impact"`
}

// Bullet is the marker prefixing every generated content line.
const Bullet = "•"
