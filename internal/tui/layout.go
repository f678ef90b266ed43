package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/pathscout/internal/curriculum"
	"github.com/csheth/pathscout/internal/guide"
)

type pageLayout struct {
	windowWidth    int
	windowHeight   int
	viewportWidth  int
	viewportHeight int
	progressWidth  int
}

func newPageLayout() pageLayout {
	return pageLayout{
		viewportWidth:  80,
		viewportHeight: 20,
		progressWidth:  60,
	}
}

func (l *pageLayout) Update(width, height int) {
	l.windowWidth = width
	l.windowHeight = height
	innerWidth := width - viewportHorizontalPadding
	if innerWidth < minViewportWidth {
		innerWidth = minViewportWidth
	}
	l.viewportWidth = innerWidth
	l.progressWidth = innerWidth
	if l.progressWidth > 80 {
		l.progressWidth = 80
	}
	// hero, status bar, info line, toast and spacing
	const chrome = 16
	usable := height - chrome
	if usable < 6 {
		usable = 6
	}
	l.viewportHeight = usable
}

type displayView struct {
	content string
	anchors map[string]int
}

type contentBuilder struct {
	builder strings.Builder
	lines   int
}

func (cb *contentBuilder) WriteString(s string) {
	cb.builder.WriteString(s)
	cb.lines += strings.Count(s, "\n")
}

func (cb *contentBuilder) WriteRune(r rune) {
	cb.builder.WriteRune(r)
	if r == '\n' {
		cb.lines++
	}
}

func (cb *contentBuilder) String() string {
	return cb.builder.String()
}

func (cb *contentBuilder) Line() int {
	return cb.lines
}

func (m *model) buildDisplayContent(result curriculum.Result) displayView {
	cb := &contentBuilder{}
	anchors := map[string]int{}
	bulletWrap := m.wrapWidth(4)
	indentWrap := m.wrapWidth(8)

	section := func(anchor, title string) {
		if cb.Line() > 0 {
			cb.WriteRune('\n')
		}
		anchors[anchor] = cb.Line()
		cb.WriteString(sectionHeaderStyle.Render(title))
		cb.WriteRune('\n')
	}

	section(anchorRoadmap, "Learning Path")
	last := len(result.LearningPath) - 1
	for i, node := range result.LearningPath {
		branch := "├─"
		stem := "│ "
		if i == last {
			branch = "└─"
			stem = "  "
		}
		header := fmt.Sprintf("%s %s", branch, phaseStyle.Render(node.Label))
		if node.Duration != "" {
			header += " " + durationStyle.Render("("+node.Duration+")")
		}
		cb.WriteString(header)
		cb.WriteRune('\n')
		if node.Description != "" {
			cb.WriteString(indentMultiline(wordwrap.String(node.Description, indentWrap), stem+"   "))
			cb.WriteRune('\n')
		}
		curriculum.Walk(node.Children, func(child curriculum.Node, depth int) bool {
			prefix := stem + strings.Repeat("   ", depth+1)
			cb.WriteString(prefix + styleForNode(child).Render(bulletFor(child)+child.Label))
			cb.WriteRune('\n')
			return true
		})
	}

	section(anchorPhases, "Roadmap Phases")
	for i, node := range result.Detailed.Phases {
		cb.WriteString(fmt.Sprintf("%d. %s", i+1, phaseStyle.Render(node.Label)))
		if node.Duration != "" {
			cb.WriteString(" " + durationStyle.Render(node.Duration))
		}
		cb.WriteRune('\n')
		if node.Description != "" {
			cb.WriteString(indentMultiline(wordwrap.String(node.Description, bulletWrap), "   "))
			cb.WriteRune('\n')
		}
		for _, group := range node.Children {
			cb.WriteString("   " + styleForNode(group).Render(group.Label))
			cb.WriteRune('\n')
			for _, item := range group.Children {
				cb.WriteString("     • " + item.Label)
				cb.WriteRune('\n')
			}
		}
	}

	section(anchorProjects, "Recommended Projects")
	projects := append(append([]curriculum.Project(nil), result.Projects...), result.Detailed.Projects...)
	for i, project := range projects {
		cb.WriteString(fmt.Sprintf(" %d) %s  %s  %s\n",
			i+1,
			subtitleStyle.Render(project.Name),
			complexityStyle(project.Complexity).Render(string(project.Complexity)),
			durationStyle.Render(project.EstimatedDuration)))
		if project.Description != "" {
			cb.WriteString(indentMultiline(wordwrap.String(project.Description, indentWrap), "     "))
			cb.WriteRune('\n')
		}
		if len(project.Skills) > 0 {
			cb.WriteString(helperStyle.Render("     Skills: " + strings.Join(project.Skills, ", ")))
			cb.WriteRune('\n')
		}
	}

	section(anchorResources, "Learning Resources")
	for _, category := range result.Resources.Categories() {
		if len(category.Items) == 0 {
			continue
		}
		cb.WriteString(" " + subtitleStyle.Render(category.Title))
		cb.WriteRune('\n')
		for _, item := range category.Items {
			cb.WriteString("   • ")
			cb.WriteString(wordwrap.String(item, bulletWrap))
			cb.WriteRune('\n')
		}
	}

	section(anchorCareers, "Career Opportunities")
	for _, career := range result.Careers {
		cb.WriteString(" • " + career)
		cb.WriteRune('\n')
	}

	if req, ok := m.session.Request(); ok {
		section(anchorGuide, "Study Guide")
		steps := guide.Build(guide.Metadata{
			Topic:      req.Topic,
			SkillLevel: string(req.SkillLevel),
			Phases:     len(result.Detailed.Phases),
		})
		for i, step := range steps {
			cb.WriteString(fmt.Sprintf(" %d. %s\n", i+1, subtitleStyle.Render(step.Title)))
			cb.WriteString(indentMultiline(wordwrap.String(step.Description, indentWrap), "    "))
			cb.WriteRune('\n')
		}
	}

	if m.coursesLoading || len(m.recommendations) > 0 {
		section(anchorCourses, "Recommended Courses")
		if m.coursesLoading {
			cb.WriteString(helperStyle.Render(m.spinner.View() + " Finding the best courses for you…"))
			cb.WriteRune('\n')
		}
		for i, rec := range m.recommendations {
			cb.WriteString(fmt.Sprintf(" %d) %s  %s\n", i+1, rec.Title, helperStyle.Render(courseMeta(rec.ID, rec.Rating, rec.Difficulty))))
		}
	}

	return displayView{content: cb.String(), anchors: anchors}
}

func courseMeta(id string, rating float64, difficulty string) string {
	return fmt.Sprintf("#%s • ★ %.1f • %s", id, rating, difficulty)
}

func bulletFor(node curriculum.Node) string {
	if node.Style == curriculum.StyleItem {
		return "• "
	}
	return ""
}

func styleForNode(node curriculum.Node) lipgloss.Style {
	switch node.Style {
	case curriculum.StylePhase:
		return phaseStyle
	case curriculum.StyleConcepts:
		return conceptStyle
	case curriculum.StyleMilestones:
		return milestoneStyle
	case curriculum.StylePractice:
		return practiceStyle
	default:
		return plainStyle
	}
}

func complexityStyle(c curriculum.Complexity) lipgloss.Style {
	switch c {
	case curriculum.ComplexityLow:
		return complexityLowStyle
	case curriculum.ComplexityMedium:
		return complexityMidStyle
	default:
		return complexityHiStyle
	}
}

func indentMultiline(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
