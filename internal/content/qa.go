package content

import (
	"fmt"
	"strings"
)

// lowered is a case-folded view of an input string for keyword probes.
type lowered string

func (l lowered) has(sub string) bool {
	return strings.Contains(string(l), sub)
}

func foldKeywordInput(s string) lowered {
	return lowered(strings.ToLower(s))
}

// QA is one anticipated judge question with a suggested answer.
type QA struct {
	Question string `json:"q"`
	Answer   string `json:"a"`
}

const maxJudgeQA = 5

// JudgeQA builds the anticipated judge question set for a solution. Five
// base questions apply to everything; domain-flavored questions are appended
// and the list is capped at five entries.
func JudgeQA(title, idea string, scores ScoreTriple) []QA {
	titleLower := foldKeywordInput(title)
	ideaLower := foldKeywordInput(idea)

	ruralFocus := titleLower.has("rural")
	aiIdea := ideaLower.has("ai") || ideaLower.has("ml")

	differentiator := "scalability and real-time processing"
	if ruralFocus {
		differentiator = "rural accessibility and offline capabilities"
	}
	challenge := "scalability and data processing, handled through cloud-native microservices"
	if ruralFocus {
		challenge = "connectivity issues in remote areas, which we address through offline-first architecture"
	}
	mitigation := "proven technology stack and iterative development"
	if aiIdea {
		mitigation = "robust AI model training and validation"
	}
	adoption := "50,000+ users"
	if titleLower.has("health") {
		adoption = "10,000+ patients"
	} else if titleLower.has("farm") {
		adoption = "5,000+ farmers"
	}
	improvement := "20-30%"
	if scores.Impact >= 8 {
		improvement = "30-40%"
	}
	pilotPartner := "target user groups"
	if titleLower.has("government") {
		pilotPartner = "government stakeholders"
	}
	scaleTarget := "broader geographic areas"
	if titleLower.has("india") || titleLower.has("national") {
		scaleTarget = "multiple states"
	}
	sustainability := "Revenue model through subscription/freemium approach"
	if ideaLower.has("government") {
		sustainability = "Government partnership and policy alignment"
	}

	qa := []QA{
		{
			Question: "How is your solution different from existing approaches in the market?",
			Answer:   fmt.Sprintf("Our solution stands out through innovative technology integration and user-centric design. Unlike existing solutions, we focus on %s, ensuring practical implementation with measurable impact.", differentiator),
		},
		{
			Question: "What are the main technical challenges and how will you address them?",
			Answer:   fmt.Sprintf("Key challenges include %s. We mitigate risks through %s.", challenge, mitigation),
		},
		{
			Question: "How will you measure the success and impact of your solution?",
			Answer:   fmt.Sprintf("Success metrics include: (1) User adoption rate targeting %s in first year, (2) Performance improvements of %s in key indicators, (3) Cost reduction through automation, and (4) User satisfaction scores above 4.5/5.", adoption, improvement),
		},
		{
			Question: "What is your go-to-market strategy and implementation timeline?",
			Answer:   fmt.Sprintf("Phase 1 (Months 1-3): MVP development and pilot testing with %s. Phase 2 (Months 4-8): Regional deployment and user feedback integration. Phase 3 (Months 9-12): Scaling across %s with partnership development.", pilotPartner, scaleTarget),
		},
		{
			Question: "How will you ensure the long-term sustainability and maintenance of this solution?",
			Answer:   fmt.Sprintf("Sustainability through: (1) %s, (2) Open-source components for community contribution, (3) Automated monitoring and self-healing architecture, (4) Comprehensive documentation and knowledge transfer, (5) Continuous improvement based on user feedback and emerging technologies.", sustainability),
		},
	}

	switch {
	case titleLower.has("health") || titleLower.has("medical"):
		qa = append(qa, QA{
			Question: "How will you ensure patient data privacy and regulatory compliance?",
			Answer:   "We implement end-to-end encryption, HIPAA compliance, and follow Indian healthcare data protection guidelines. All patient data is anonymized for analytics, with explicit consent mechanisms and audit trails for regulatory compliance.",
		})
	case titleLower.has("agri") || titleLower.has("farm"):
		qa = append(qa, QA{
			Question: "How will you handle the digital literacy challenges among farmers?",
			Answer:   "Our solution features intuitive voice-based interfaces in local languages, visual indicators, and community training programs. We partner with local agricultural extension officers and self-help groups for effective technology adoption.",
		})
	case titleLower.has("transport") || titleLower.has("traffic"):
		qa = append(qa, QA{
			Question: "How will your solution integrate with existing transportation infrastructure?",
			Answer:   "We use standardized APIs and protocols for seamless integration with current transport systems. Our modular architecture allows gradual deployment without disrupting existing operations, with real-time data synchronization capabilities.",
		})
	}

	if len(qa) > maxJudgeQA {
		qa = qa[:maxJudgeQA]
	}
	return qa
}
