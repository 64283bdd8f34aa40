package content

import "strings"

type referenceBucket struct {
	keywords []string
	items    []string
}

// referenceBuckets is scanned first-match over the description. The keyword
// sets intentionally differ from the Domain Classifier's; the two lookups
// evolved separately and are kept separate for behavioral parity.
var referenceBuckets = []referenceBucket{
	{
		keywords: []string{"health", "medical"},
		items: []string{
			"National Health Mission Guidelines",
			"WHO Digital Health Standards",
			"Ministry of Health Policy Framework",
			"Medical Device Regulations",
			"Healthcare Technology Assessment Reports",
		},
	},
	{
		keywords: []string{"education", "learning"},
		items: []string{
			"National Education Policy 2020",
			"UNESCO Education Technology Reports",
			"NCERT Digital Learning Guidelines",
			"Educational Research Studies",
			"Ministry of Education Technology Framework",
		},
	},
	{
		keywords: []string{"agriculture", "farm"},
		items: []string{
			"National Agriculture Policy",
			"ICAR Research Guidelines",
			"Ministry of Agriculture Technology Mission",
			"Precision Farming Case Studies",
			"Agricultural Innovation Reports",
		},
	},
	{
		keywords: []string{"railway", "transport"},
		items: []string{
			"Ministry of Railways Technical Standards",
			"Transportation Research Papers",
			"Railway Safety Guidelines",
			"Infrastructure Development Reports",
			"Smart Transportation Studies",
		},
	},
	{
		keywords: []string{"ayush", "ayurveda"},
		items: []string{
			"Ministry of AYUSH Guidelines",
			"Traditional Medicine Research",
			"Ayurvedic Standards and Protocols",
			"WHO Traditional Medicine Reports",
			"Herbal Medicine Quality Standards",
		},
	},
}

var genericReferences = []string{
	"Government Policy Guidelines",
	"Digital India Initiative",
	"Technology Implementation Standards",
	"Industry Best Practices",
	"Research and Development Reports",
}

// buildReferences picks the fixed 5-item reference list for the first bucket
// whose keyword appears in the description, falling back to the generic set.
func buildReferences(description string) []string {
	lower := strings.ToLower(description)
	for _, bucket := range referenceBuckets {
		for _, kw := range bucket.keywords {
			if strings.Contains(lower, kw) {
				return append([]string(nil), bucket.items...)
			}
		}
	}
	return append([]string(nil), genericReferences...)
}
