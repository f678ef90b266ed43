package curriculum

import (
	"fmt"
	"strings"
)

// Markdown renders result as a Markdown document.
func Markdown(result Result, topic string, level SkillLevel) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Personalized Learning Roadmap: %s\n\n", strings.TrimSpace(topic))
	if level != "" {
		fmt.Fprintf(&b, "*Skill Level: %s*\n\n", level.Title())
	}

	b.WriteString("## Learning Path\n\n")
	for i, node := range result.LearningPath {
		fmt.Fprintf(&b, "%d. **%s**", i+1, node.Label)
		if node.Duration != "" {
			fmt.Fprintf(&b, " (%s)", node.Duration)
		}
		if node.Description != "" {
			fmt.Fprintf(&b, " - %s", node.Description)
		}
		b.WriteRune('\n')
		Walk(node.Children, func(child Node, depth int) bool {
			fmt.Fprintf(&b, "%s- %s\n", strings.Repeat("  ", depth+1), child.Label)
			return true
		})
	}
	b.WriteRune('\n')

	b.WriteString("## Roadmap Phases\n\n")
	for i, node := range result.Detailed.Phases {
		fmt.Fprintf(&b, "### %d. %s", i+1, node.Label)
		if node.Duration != "" {
			fmt.Fprintf(&b, " - %s", node.Duration)
		}
		b.WriteString("\n\n")
		if node.Description != "" {
			b.WriteString(node.Description)
			b.WriteString("\n\n")
		}
		for _, section := range node.Children {
			fmt.Fprintf(&b, "**%s:**\n", section.Label)
			for _, item := range section.Children {
				fmt.Fprintf(&b, "- %s\n", item.Label)
			}
			b.WriteRune('\n')
		}
	}

	b.WriteString("## Recommended Projects\n\n")
	b.WriteString("| Project | Description | Complexity | Est. Time |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, project := range append(append([]Project(nil), result.Projects...), result.Detailed.Projects...) {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			escapeCell(project.Name), escapeCell(project.Description), project.Complexity, project.EstimatedDuration)
	}
	b.WriteRune('\n')

	b.WriteString("## Learning Resources\n\n")
	for _, category := range result.Resources.Categories() {
		if len(category.Items) == 0 {
			continue
		}
		fmt.Fprintf(&b, "### %s\n", category.Title)
		for _, item := range category.Items {
			fmt.Fprintf(&b, "- %s\n", item)
		}
		b.WriteRune('\n')
	}

	if len(result.Careers) > 0 {
		b.WriteString("## Career Opportunities\n\n")
		for _, career := range result.Careers {
			fmt.Fprintf(&b, "- %s\n", career)
		}
	}
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
