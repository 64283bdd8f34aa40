package enrich

import "fmt"

// PromptBuilder assembles the prompts sent to enrichment providers.
type PromptBuilder struct{}

// BuildResearchPrompt frames a problem statement and the team's idea for a
// generative model.
func (b *PromptBuilder) BuildResearchPrompt(title, description, idea string) string {
	return fmt.Sprintf(
		"Problem: %s\n\nContext: %s\n\nSolution Approach: %s\n\nGenerate specific technical solution with implementation details, feasibility analysis, and measurable impact metrics for this exact problem statement.",
		title, description, idea)
}

// BuildIdeaPrompt asks a provider to draft a solution idea from scratch.
func (b *PromptBuilder) BuildIdeaPrompt(title, description string) string {
	return fmt.Sprintf(
		"Problem: %s\n\nContext: %s\n\nPropose an innovative, implementable solution idea with key features and expected benefits.",
		title, description)
}
