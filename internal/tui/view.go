package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/csheth/pathscout/internal/catalog"
	"github.com/csheth/pathscout/internal/curriculum"
	"github.com/csheth/pathscout/internal/workflow"
)

// logoMinWidth is the narrowest window that still fits the block logo.
const logoMinWidth = 92

func (m *model) View() string {
	switch m.stage {
	case stageIntake:
		return m.viewIntake()
	case stageProcessing:
		return m.viewProcessing()
	case stageDisplay:
		return m.viewDisplay()
	case stageCourses:
		return m.viewCourses()
	default:
		return ""
	}
}

func (m *model) viewIntake() string {
	var b strings.Builder
	b.WriteString(sectionHeaderStyle.Render("Build a Learning Path"))
	b.WriteString("\n\n")
	b.WriteString(m.fieldLabel(fieldTopic, "Topic"))
	b.WriteRune('\n')
	b.WriteString(m.topicInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.fieldLabel(fieldLevel, "Skill level"))
	b.WriteRune('\n')
	b.WriteString(m.levelChips())
	b.WriteString("\n\n")
	b.WriteString(m.fieldLabel(fieldAI, "Personalization"))
	b.WriteRune('\n')
	box := "[ ]"
	if m.aiEnhanced {
		box = "[x]"
	}
	b.WriteString(box + " AI-enhanced recommendations")
	form := formBoxStyle.Render(b.String())

	parts := []string{m.heroView(), form, m.toastView()}
	if m.errorMessage != "" {
		parts = append(parts, errorStyle.Render(m.errorMessage))
	}
	parts = append(parts,
		helperStyle.Render(m.infoMessage),
		helperStyle.Render("↑/↓: move • Tab: complete topic • ←/→: choose level • Space: toggle • Enter: generate • Esc: quit"),
	)
	return joinNonEmpty(parts)
}

func (m *model) fieldLabel(field intakeField, label string) string {
	if m.focus == field {
		return focusedLabelStyle.Render("▸ " + label)
	}
	return blurredLabelStyle.Render("  " + label)
}

func (m *model) levelChips() string {
	chips := make([]string, 0, len(curriculum.Levels))
	for i, level := range curriculum.Levels {
		if i == m.levelIndex {
			chips = append(chips, chipActiveStyle.Render(level.Title()))
			continue
		}
		chips = append(chips, chipStyle.Render(level.Title()))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, chips...)
	if m.levelIndex < 0 {
		row += helperStyle.Render("  (none selected)")
	}
	return row
}

func (m *model) viewProcessing() string {
	req, _ := m.session.Request()
	lines := []string{
		fmt.Sprintf("%s Building your %s roadmap for %s…", m.spinner.View(), req.SkillLevel, subtitleStyle.Render(req.Topic)),
		m.progressBar.ViewAs(m.percent / 100),
		helperStyle.Render(fmt.Sprintf("%3.0f%% complete", m.percent)),
	}
	return joinNonEmpty([]string{
		m.heroView(),
		strings.Join(lines, "\n"),
		m.toastView(),
		helperStyle.Render("Press r to cancel and start over."),
	})
}

func (m *model) viewDisplay() string {
	m.refreshViewportIfDirty()
	parts := []string{m.heroView(), m.viewport.View(), m.toastView()}
	if m.errorMessage != "" {
		parts = append(parts, errorStyle.Render(m.errorMessage))
	}
	if m.infoMessage != "" {
		message := m.infoMessage
		if m.runningJobs > 0 {
			message = fmt.Sprintf("%s %s", m.spinner.View(), message)
		}
		parts = append(parts, helperStyle.Render(message))
	}
	if m.helpVisible {
		parts = append(parts, m.keyLegendView(), m.helpView())
	}
	parts = append(parts, m.sessionMeterView())
	return joinNonEmpty(parts)
}

func (m *model) viewCourses() string {
	var b strings.Builder
	b.WriteString(sectionHeaderStyle.Render("Recommended Courses"))
	b.WriteRune('\n')
	switch {
	case m.coursesLoading:
		b.WriteString(helperStyle.Render(m.spinner.View() + " Finding the best courses for you…"))
		b.WriteRune('\n')
	case len(m.recommendations) == 0:
		b.WriteString(helperStyle.Render("No recommendations yet."))
		b.WriteRune('\n')
	}
	for i, rec := range m.recommendations {
		b.WriteString(fmt.Sprintf(" %d) %s  %s\n", i+1, rec.Title, helperStyle.Render(courseMeta(rec.ID, rec.Rating, rec.Difficulty))))
	}
	b.WriteRune('\n')
	b.WriteString(sectionHeaderStyle.Render("Course Lookup"))
	b.WriteRune('\n')
	b.WriteString(m.courseInput.View())

	parts := []string{m.heroView(), b.String()}
	if m.courseDetail != nil {
		parts = append(parts, m.courseDetailView(*m.courseDetail))
	}
	parts = append(parts,
		m.toastView(),
		helperStyle.Render(m.infoMessage),
		helperStyle.Render("Enter: look up • Esc: back to roadmap • Ctrl+C: quit"),
	)
	return joinNonEmpty(parts)
}

func (m *model) courseDetailView(detail catalog.Detail) string {
	width := m.wrapWidth(8)
	lines := []string{heroTitleStyle.Render(wordwrap.String(detail.Title, width))}
	if detail.Placeholder {
		lines = append(lines,
			helperStyle.Render("Course #"+detail.ID),
			helperStyle.Render("This course is not in the catalog yet."))
		return heroBoxStyle.Render(strings.Join(lines, "\n"))
	}
	lines = append(lines,
		helperStyle.Render(courseMeta(detail.ID, detail.Rating, detail.Difficulty)),
		"Instructor: "+detail.Instructor,
		"Skills: "+strings.Join(detail.Skills, ", "),
		"",
		wordwrap.String(detail.Description, width),
	)
	return heroBoxStyle.Render(strings.Join(lines, "\n"))
}

func (m *model) toastView() string {
	if m.toast == nil {
		return ""
	}
	switch m.toast.note.Kind {
	case workflow.NotifySuccess:
		return toastSuccessStyle.Render("✓ " + m.toast.note.Message)
	case workflow.NotifyError:
		return toastErrorStyle.Render("! " + m.toast.note.Message)
	default:
		return toastInfoStyle.Render(m.toast.note.Message)
	}
}

func (m *model) heroView() string {
	req, ok := m.session.Request()
	if !ok {
		logo := heroTitleStyle.Render("PathScout")
		if m.layout.windowWidth == 0 || m.layout.windowWidth >= logoMinWidth {
			logo = renderLogo()
		}
		return lipgloss.JoinVertical(lipgloss.Left, logo, taglineStyle.Render(heroTagline))
	}

	title := heroTitleStyle.Render(wordwrap.String(req.Topic, 48))
	meta := []string{helperStyle.Render("Skill level: " + req.SkillLevel.Title())}
	if req.AIEnhanced {
		meta = append(meta, helperStyle.Render("AI-enhanced"))
	}
	if m.lastExport != "" {
		meta = append(meta, helperStyle.Render("Saved: "+m.lastExport))
	}
	summary := heroBoxStyle.Render(strings.Join(append([]string{title}, meta...), "\n"))
	header := lipgloss.JoinHorizontal(lipgloss.Bottom, heroTitleStyle.Render("PathScout"), "  ", taglineStyle.Render(heroTagline))
	return lipgloss.JoinVertical(lipgloss.Left, header, summary)
}

func joinNonEmpty(parts []string) string {
	filtered := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		filtered = append(filtered, part)
	}
	return strings.Join(filtered, "\n\n")
}

func (m *model) viewLabel() string {
	if m.markdownView {
		return "MARKDOWN"
	}
	return "ROADMAP"
}

func (m *model) sessionMeterView() string {
	stats := []string{fmt.Sprintf("View %s", m.viewLabel())}
	if result, ok := m.session.Result(); ok {
		stats = append(stats,
			fmt.Sprintf("Phases %d", len(result.Detailed.Phases)),
			fmt.Sprintf("Projects %d", len(result.Projects)+len(result.Detailed.Projects)),
		)
	}
	if len(m.recommendations) > 0 {
		stats = append(stats, fmt.Sprintf("Courses %d", len(m.recommendations)))
	}
	switch {
	case m.exporting:
		stats = append(stats, "Exporting…")
	case m.markdownLoading:
		stats = append(stats, "Rendering…")
	}
	if m.lineCount > m.viewport.Height && m.viewport.Height > 0 {
		stats = append(stats, fmt.Sprintf("%3.0f%%", m.viewport.ScrollPercent()*100))
	}
	return statusBarStyle.Render(strings.Join(stats, "  •  "))
}

type keyHint struct {
	Key         string
	Description string
}

func (m *model) keyLegendView() string {
	hints := []keyHint{
		{"↑/↓", "Scroll"},
		{"[/]", "Jump sections"},
		{"g/G", "Top or bottom"},
		{"e", "Export roadmap"},
		{"c", "Courses"},
		{"m", "Markdown view"},
		{"r", "Start over"},
		{"?", "Toggle cheatsheet"},
		{"q", "Quit"},
	}
	rows := []string{sectionHeaderStyle.Render("Navigation Cheatsheet")}
	const columns = 3
	for i := 0; i < len(hints); i += columns {
		end := i + columns
		if end > len(hints) {
			end = len(hints)
		}
		var cells []string
		for _, hint := range hints[i:end] {
			key := keyStyle.Render(hint.Key)
			desc := keyDescStyle.Render(" " + hint.Description + "  ")
			cells = append(cells, lipgloss.JoinHorizontal(lipgloss.Top, key, desc))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return legendBoxStyle.Render(strings.Join(rows, "\n"))
}

func (m *model) helpView() string {
	lines := []string{
		sectionHeaderStyle.Render("Working With Your Roadmap"),
		helperStyle.Render("• use [ and ] to jump between the roadmap sections; g / G flies to the top or bottom."),
		helperStyle.Render("• press e to save the roadmap into your download directory."),
		helperStyle.Render("• press c to browse recommended courses and look one up by id."),
		helperStyle.Render("• press m to switch between the roadmap and its markdown rendering."),
		helperStyle.Render("• press r to start a new search, q or Ctrl+C to quit."),
	}
	return helpBoxStyle.Render(strings.Join(lines, "\n"))
}

func renderLogo() string {
	if len(logoArtLines) == 0 {
		return ""
	}
	width := 0
	lineRunes := make([][]rune, len(logoArtLines))
	for i, line := range logoArtLines {
		runes := []rune(line)
		lineRunes[i] = runes
		if len(runes) > width {
			width = len(runes)
		}
	}
	width++
	height := len(logoArtLines) + 1

	type cell struct {
		r     rune
		style lipgloss.Style
	}

	grid := make([][]cell, height)
	for i := range grid {
		grid[i] = make([]cell, width)
	}

	// drop shadow first, then the face on top
	for y, runes := range lineRunes {
		for x, r := range runes {
			if r != ' ' {
				grid[y+1][x+1] = cell{r: r, style: logoShadowStyle}
			}
		}
	}
	for y, runes := range lineRunes {
		for x, r := range runes {
			if r != ' ' {
				grid[y][x] = cell{r: r, style: logoFaceStyle}
			}
		}
	}

	lines := make([]string, height)
	for y, row := range grid {
		var b strings.Builder
		for _, c := range row {
			if c.r == 0 {
				b.WriteRune(' ')
				continue
			}
			b.WriteString(c.style.Render(string(c.r)))
		}
		lines[y] = b.String()
	}
	return logoContainerStyle.Render(strings.Join(lines, "\n"))
}
