package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_Requirements(t *testing.T) {
	desc := "The system should track buses. It must alert parents. Drivers need training. " +
		"Weather is nice. The expected outcome is safety. A solution is required soon. " +
		"It should also work offline. It must be cheap."

	features := Extract(desc)
	require.Len(t, features.Requirements, 6, "requirements are capped at 6")
	assert.Equal(t, "The system should track buses", features.Requirements[0])
	assert.NotContains(t, features.Requirements, "Weather is nice")
}

func TestExtract_Stakeholders(t *testing.T) {
	desc := "Farmers and students visit the hospital, while the government and every ministry, department, school and college are involved. Patients wait."

	features := Extract(desc)
	require.Len(t, features.Stakeholders, 5, "stakeholders are capped at 5")
	// List order, not text order.
	assert.Equal(t, []string{"farmer", "student", "patient", "government", "ministry"}, features.Stakeholders)
}

func TestExtract_Challenges(t *testing.T) {
	desc := "There is a lack of data. Poor connectivity is an issue. The main problem is funding. " +
		"Inadequate staffing persists. Limited tooling is another difficulty."

	features := Extract(desc)
	assert.Len(t, features.Challenges, 4, "challenges are capped at 4")
}

func TestExtract_ExpectedSolution(t *testing.T) {
	desc := "Background text about the problem domain.\n" +
		"Expected Solution: Build a mobile app for farmers with offline sync.\n\n" +
		"Further notes that belong to another section."

	features := Extract(desc)
	assert.Equal(t, "Build a mobile app for farmers with offline sync.", features.ExpectedSolution)
}

func TestExtract_ExpectedSolutionMissing(t *testing.T) {
	features := Extract("No heading here at all.")
	assert.Empty(t, features.ExpectedSolution)
}

func TestExtract_EmptyDescription(t *testing.T) {
	features := Extract("")
	assert.Empty(t, features.Requirements)
	assert.Empty(t, features.Stakeholders)
	assert.Empty(t, features.Challenges)
	assert.Empty(t, features.ExpectedSolution)
}

func TestExtract_CaseInsensitive(t *testing.T) {
	features := Extract("The platform MUST serve every CITIZEN.")
	require.Len(t, features.Requirements, 1)
	assert.Equal(t, []string{"citizen"}, features.Stakeholders)
}

func TestExtract_SentenceSplitOnAllTerminators(t *testing.T) {
	features := Extract("Must it scale? It should! It needs care.")
	require.Len(t, features.Requirements, 3)
	for _, r := range features.Requirements {
		assert.False(t, strings.ContainsAny(r, ".!?"))
	}
}
