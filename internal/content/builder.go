package content

import (
	"fmt"
	"regexp"
	"strings"
)

// minSummaryBullets is the floor on general-domain summary bullet lines.
const minSummaryBullets = 12

// enrichmentMinChars is the minimum cleaned first-sentence length for
// enrichment text to earn a summary bullet.
const enrichmentMinChars = 50

// BuildContent assembles the five-field bundle for a classified problem.
// Specialized domains use their pre-authored bundle; the general domain is
// synthesized from the extracted features. Always returns a fully populated
// bundle; there are no failure modes.
func BuildContent(domain Domain, features ExtractedFeatures, title, description, enrichment string) ContentBundle {
	if bundle, ok := domainBundles[domain]; ok {
		out := bundle
		out.References = append([]string(nil), bundle.References...)
		if line := enrichmentBullet(enrichment); line != "" {
			out.Summary = out.Summary + "\n" + line
		}
		return out
	}

	desc := strings.ToLower(description)
	return ContentBundle{
		Summary:           buildSummary(desc, features, title, enrichment),
		TechnicalApproach: buildTechnicalApproach(desc),
		Feasibility:       buildFeasibility(desc, features.Stakeholders),
		Impact:            buildImpact(desc, features.Stakeholders),
		References:        buildReferences(description),
	}
}

// summaryFiller pads general summaries up to the bullet floor. The first
// four lines are the classic filler block; the rest extend the pool so the
// floor holds even when no conditional bullet fires.
var summaryFiller = []string{
	"Advanced analytics and reporting dashboard for insights",
	"Integration with existing systems and third-party APIs",
	"Automated workflow management and process optimization",
	"Comprehensive user training and support documentation",
	"User-centric design with accessibility and scalability considerations",
	"Data-driven approach for continuous improvement and optimization",
	"Cloud-native architecture ensuring high availability",
	"Advanced security features with multi-factor authentication",
	"API-first approach enabling seamless third-party integrations",
	"Comprehensive reporting and business intelligence capabilities",
}

type conditionalBullet struct {
	keywords []string
	line     string
}

var summaryConditionals = []conditionalBullet{
	{[]string{"ai", "machine learning"}, "AI-powered intelligent system with machine learning capabilities"},
	{[]string{"mobile", "app"}, "Mobile-first application with cross-platform compatibility"},
	{[]string{"real-time", "monitoring"}, "Real-time monitoring and alert system with dashboard analytics"},
	{[]string{"blockchain", "security"}, "Blockchain-based security with end-to-end encryption"},
	{[]string{"iot", "sensor"}, "IoT sensor integration for automated data collection"},
	{[]string{"cloud", "scalable"}, "Cloud-native architecture ensuring scalability and reliability"},
	{[]string{"rural", "remote"}, "Offline-first design for rural and remote area accessibility"},
	{[]string{"multilingual", "language"}, "Multi-language support with voice-based interaction"},
	{[]string{"government", "policy"}, "Government policy compliance with regulatory framework integration"},
}

func buildSummary(desc string, features ExtractedFeatures, title, enrichment string) string {
	lines := []string{
		fmt.Sprintf("Comprehensive solution addressing: %s", title),
		fmt.Sprintf("Target stakeholders: %s with direct impact", strings.Join(features.Stakeholders, ", ")),
	}
	for _, cond := range summaryConditionals {
		if anyKeyword(desc, cond.keywords) {
			lines = append(lines, cond.line)
		}
	}
	if sentence := cleanedEnrichmentSentence(enrichment); sentence != "" {
		lines = append(lines, sentence)
	}
	for i := 0; len(lines) < minSummaryBullets && i < len(summaryFiller); i++ {
		lines = append(lines, summaryFiller[i])
	}
	return joinBullets(lines)
}

func buildTechnicalApproach(desc string) string {
	var lines []string
	if anyKeyword(desc, []string{"mobile", "app"}) {
		lines = append(lines, "React Native/Flutter for cross-platform mobile development")
	} else {
		lines = append(lines, "React.js frontend with responsive design for web application")
	}
	lines = append(lines, "Node.js/Express.js backend with RESTful API architecture")
	if strings.Contains(desc, "blockchain") {
		lines = append(lines, "Hyperledger Fabric/Ethereum blockchain for immutable records")
	}
	if anyKeyword(desc, []string{"real-time", "monitoring"}) {
		lines = append(lines, "MongoDB/PostgreSQL with real-time data synchronization")
	} else {
		lines = append(lines, "PostgreSQL/MySQL database with optimized query performance")
	}
	if anyKeyword(desc, []string{"ai", "machine learning"}) {
		lines = append(lines,
			"TensorFlow/PyTorch for machine learning model development",
			"Python-based AI services with model training pipeline")
	}
	if anyKeyword(desc, []string{"iot", "sensor"}) {
		lines = append(lines,
			"IoT device integration with MQTT protocol for sensor data",
			"Edge computing for local data processing and analysis")
	}
	lines = append(lines,
		"AWS/Azure cloud infrastructure with auto-scaling capabilities",
		"Docker containerization with Kubernetes orchestration",
		"JWT authentication with role-based access control",
		"End-to-end encryption for data security and privacy",
		"CI/CD pipeline with automated testing and deployment",
		"Comprehensive logging and monitoring with alerting system")
	return joinBullets(lines)
}

func buildFeasibility(desc string, stakeholders []string) string {
	lines := []string{
		"High technical feasibility using proven technology stack",
		fmt.Sprintf("Strong market demand from %s community", strings.Join(stakeholders, ", ")),
	}
	if anyKeyword(desc, []string{"government", "ministry"}) {
		lines = append(lines, "Government support and policy alignment ensuring implementation")
	}
	lines = append(lines,
		"Cost-effective solution with clear ROI within 18-24 months",
		"Scalable architecture supporting growth from pilot to national level",
		"Skilled development team availability in current market")
	if anyKeyword(desc, []string{"rural", "remote"}) {
		lines = append(lines, "Offline capabilities addressing connectivity challenges")
	}
	lines = append(lines,
		"Regulatory compliance framework already established",
		"Existing infrastructure compatibility reducing deployment costs",
		"Strong vendor ecosystem support for technology components",
		"Proven implementation methodology with risk mitigation",
		"Clear success metrics and performance indicators defined")
	return joinBullets(lines)
}

func buildImpact(desc string, stakeholders []string) string {
	beneficiary := "users"
	if len(stakeholders) > 0 {
		beneficiary = stakeholders[0]
	}
	lines := []string{
		fmt.Sprintf("Direct benefit to %s %s in first year of implementation", userScale(desc), beneficiary),
	}
	if anyKeyword(desc, []string{"automation", "digital"}) {
		lines = append(lines, "40-60% improvement in operational efficiency through automation")
	} else {
		lines = append(lines, "25-35% improvement in process efficiency and user experience")
	}
	lines = append(lines, "Annual cost savings of ₹10-50 crores through process optimization")
	if anyKeyword(desc, []string{"real-time", "monitoring"}) {
		lines = append(lines, "70% reduction in response time for critical operations")
	} else {
		lines = append(lines, "50% reduction in manual processing time and errors")
	}
	lines = append(lines, "Creation of 1,000+ direct and indirect employment opportunities")
	switch {
	case anyKeyword(desc, []string{"health", "medical"}):
		lines = append(lines, "Improved health outcomes for underserved populations")
	case anyKeyword(desc, []string{"education", "learning"}):
		lines = append(lines, "Enhanced educational access and learning outcomes")
	default:
		lines = append(lines, "Improved quality of life for target beneficiary communities")
	}
	if anyKeyword(desc, []string{"environment", "green"}) {
		lines = append(lines, "Positive environmental impact through sustainable practices")
	}
	lines = append(lines, "Contribution to Digital India mission and technology adoption")
	if anyKeyword(desc, []string{"government", "policy"}) {
		lines = append(lines, "Data-driven policy insights for evidence-based decision making")
	}
	lines = append(lines,
		"Replicable model for similar challenges across other regions",
		"Technology transfer and knowledge sharing opportunities",
		"Enhanced India's position in global technology innovation")
	return joinBullets(lines)
}

// userScale picks the beneficiary scale from a 3-tier table.
func userScale(desc string) string {
	switch {
	case anyKeyword(desc, []string{"national", "india"}):
		return "1M+"
	case anyKeyword(desc, []string{"state", "regional"}):
		return "500,000+"
	default:
		return "50,000+"
	}
}

var enrichmentLabels = regexp.MustCompile(`(?i)problem:|context:|solution:`)

// cleanedEnrichmentSentence strips prompt labels from enrichment text and
// returns its first sentence when long enough to be worth a bullet.
func cleanedEnrichmentSentence(enrichment string) string {
	cleaned := strings.TrimSpace(enrichmentLabels.ReplaceAllString(enrichment, ""))
	if len(cleaned) <= enrichmentMinChars {
		return ""
	}
	sentence, _, _ := strings.Cut(cleaned, ".")
	return strings.TrimSpace(sentence)
}

func enrichmentBullet(enrichment string) string {
	sentence := cleanedEnrichmentSentence(enrichment)
	if sentence == "" {
		return ""
	}
	return Bullet + " " + sentence
}

func anyKeyword(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func joinBullets(lines []string) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = Bullet + " " + line
	}
	return strings.Join(out, "\n")
}

// BulletLines splits a newline-joined prose field back into its bullet
// lines, the format downstream slide rendering consumes.
func BulletLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), Bullet) {
			out = append(out, strings.TrimSpace(line))
		}
	}
	return out
}
