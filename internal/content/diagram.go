package content

import (
	"fmt"
	"strings"
)

const maxDiagramComponents = 6

// DiagramPrompt renders the architecture-diagram prompt teams paste into an
// external drawing or AI tool. It embeds up to six bullets from the
// technical approach.
func DiagramPrompt(title, technicalApproach string) string {
	components := BulletLines(technicalApproach)
	if len(components) > maxDiagramComponents {
		components = components[:maxDiagramComponents]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Create a professional system architecture diagram for: %q\n\n", title)
	sb.WriteString("Technical Components to include:\n")
	sb.WriteString(strings.Join(components, "\n"))
	sb.WriteString("\n\nDiagram Requirements:\n")
	sb.WriteString("- Clean, professional layout\n")
	sb.WriteString("- Show data flow between components\n")
	sb.WriteString("- Include: User Interface, API Gateway, Microservices, Database, Cloud Storage\n")
	sb.WriteString("- Use boxes and arrows to show connections\n")
	sb.WriteString("- Label each component clearly\n")
	sb.WriteString("- Modern tech stack visualization\n\n")
	sb.WriteString("Style: Technical diagram, flowchart style, professional presentation quality")
	return sb.String()
}
