package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		want        Domain
	}{
		{"healthcare from title", "Remote Health Monitoring", "", DomainHealthcare},
		{"healthcare from description", "Village Outreach", "telemedicine and medical camps", DomainHealthcare},
		{"agriculture", "Precision Farming Advisory", "", DomainAgriculture},
		{"transportation", "Smart Traffic Management System", "", DomainTransportation},
		{"education", "Adaptive Learning Platform", "", DomainEducation},
		{"environment", "Air Pollution Tracker", "", DomainEnvironment},
		{"fintech", "Rural Banking Access", "", DomainFintech},
		{"smartcity", "Urban Services Portal", "", DomainSmartCity},
		{"tourism", "Tourist Safety Platform", "", DomainTourism},
		{"fallback", "Grievance Redressal Portal", "citizen complaints workflow", DomainGeneral},
		{"empty input", "", "", DomainGeneral},
		{"first match wins over later rules", "Health Records for Farmers", "", DomainHealthcare},
		{"case insensitive", "TRAFFIC CONTROL", "", DomainTransportation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.title, tt.description))
		})
	}
}

func TestClassify_Total(t *testing.T) {
	valid := map[Domain]bool{
		DomainHealthcare: true, DomainAgriculture: true, DomainTransportation: true,
		DomainEducation: true, DomainEnvironment: true, DomainFintech: true,
		DomainSmartCity: true, DomainTourism: true, DomainGeneral: true,
	}
	inputs := []string{"", "qwerty", "zzz 123 !!!", "completely unrelated text", "नमस्ते"}
	for _, in := range inputs {
		assert.True(t, valid[Classify(in, in)], "input %q must map to a defined domain", in)
	}
}
