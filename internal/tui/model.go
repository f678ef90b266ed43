package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/csheth/pathscout/internal/catalog"
	"github.com/csheth/pathscout/internal/curriculum"
	"github.com/csheth/pathscout/internal/workflow"
)

// Exporter produces the roadmap download for a topic.
type Exporter interface {
	Export(ctx context.Context, topic string) (string, error)
}

// Config wires runtime options into the TUI program.
type Config struct {
	Catalog  *catalog.Catalog
	Exporter Exporter
	Logger   *zap.Logger
	Timing   workflow.Timing

	ToastTTL       time.Duration
	RecommendLimit int
	// MarkdownStyle is a glamour standard style name: dark, light or notty.
	MarkdownStyle string
}

// New returns a tea.Model ready to be mounted into a Program.
func New(config Config) tea.Model {
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	if config.Catalog == nil {
		config.Catalog = catalog.Default()
	}
	if config.Timing.Duration <= 0 || config.Timing.Interval <= 0 {
		config.Timing = workflow.DefaultTiming()
	}
	if config.ToastTTL <= 0 {
		config.ToastTTL = defaultToastTTL
	}
	if config.RecommendLimit <= 0 {
		config.RecommendLimit = defaultRecommendLimit
	}
	if config.MarkdownStyle == "" {
		config.MarkdownStyle = "dark"
	}

	topicInput := textinput.New()
	topicInput.Placeholder = topicPlaceholder
	topicInput.CharLimit = 80
	topicInput.Width = 60
	topicInput.ShowSuggestions = true
	topicInput.SetSuggestions(curriculum.Topics)
	topicInput.Focus()

	courseInput := textinput.New()
	courseInput.Placeholder = coursePlaceholder
	courseInput.CharLimit = 32
	courseInput.Width = 30

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 60

	vp := viewport.New(80, 20)
	vp.MouseWheelEnabled = true

	ctx, cancel := context.WithCancel(context.Background())
	m := &model{
		config:         config,
		logger:         config.Logger.Named("tui"),
		stage:          stageIntake,
		session:        workflow.NewSession(workflow.WithLogger(config.Logger), workflow.WithTiming(config.Timing)),
		jobs:           newJobBus(config.Logger),
		ctx:            ctx,
		cancel:         cancel,
		topicInput:     topicInput,
		levelIndex:     -1,
		courseInput:    courseInput,
		spinner:        spin,
		progressBar:    bar,
		viewport:       vp,
		layout:         newPageLayout(),
		sectionAnchors: map[string]int{},
		viewportDirty:  true,
		infoMessage:    "Pick a topic and a skill level, then press Enter.",
	}
	return m
}

type toast struct {
	id   int
	note workflow.Notification
}

type model struct {
	config  Config
	logger  *zap.Logger
	stage   stage
	session *workflow.Session
	jobs    *jobBus

	// ctx is cancelled on reset so in-flight jobs stop with the session.
	ctx    context.Context
	cancel context.CancelFunc
	epoch  int

	topicInput  textinput.Model
	levelIndex  int
	aiEnhanced  bool
	focus       intakeField
	courseInput textinput.Model
	spinner     spinner.Model
	progressBar progress.Model
	viewport    viewport.Model
	layout      pageLayout

	percent          float64
	viewportContent  string
	viewportDirty    bool
	lineCount        int
	sectionAnchors   map[string]int
	markdownView     bool
	markdownRendered string
	markdownWidth    int
	markdownLoading  bool
	exporting        bool
	lastExport       string
	coursesLoading   bool
	recommendations  []catalog.Recommendation
	courseDetail     *catalog.Detail
	runningJobs      int
	toast            *toast
	toastSeq         int
	infoMessage      string
	errorMessage     string
	helpVisible      bool
}

func (m *model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout.Update(msg.Width, msg.Height)
		m.viewport.Width = m.layout.viewportWidth
		m.viewport.Height = m.layout.viewportHeight
		m.progressBar.Width = m.layout.progressWidth
		m.markViewportDirty()
		if m.markdownView && m.markdownWidth != m.wrapWidth(0) {
			return m, m.startMarkdownRender()
		}
		return m, nil
	case spinner.TickMsg:
		if m.stage == stageProcessing || m.runningJobs > 0 {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, m.quit()
		}
		return m.handleKey(msg)
	case tea.MouseMsg:
		if m.stage == stageDisplay {
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		return m, nil
	case progressTickMsg:
		return m, m.handleProgressTick(msg)
	case progressDoneMsg:
		return m, m.handleProgressDone(msg)
	case toastExpiredMsg:
		if m.toast != nil && m.toast.id == msg.id {
			m.toast = nil
		}
		return m, nil
	case jobSignalMsg:
		m.runningJobs++
		m.logger.Debug("job started", zap.String("id", msg.Snapshot.ID), zap.String("kind", string(msg.Snapshot.Kind)))
		return m, m.spinner.Tick
	case jobResultEnvelope:
		if m.runningJobs > 0 {
			m.runningJobs--
		}
		return m.Update(msg.Payload)
	case exportResultMsg:
		return m, m.handleExportResult(msg)
	case coursesResultMsg:
		if msg.epoch != m.epoch {
			return m, nil
		}
		m.coursesLoading = false
		m.recommendations = msg.recommendations
		m.markViewportDirty()
		return m, nil
	case markdownResultMsg:
		if msg.epoch != m.epoch {
			return m, nil
		}
		m.markdownLoading = false
		if msg.err != nil {
			m.markdownView = false
			m.errorMessage = fmt.Sprintf("markdown view unavailable: %v", msg.err)
			return m, nil
		}
		m.markdownRendered = msg.rendered
		m.markdownWidth = msg.width
		m.markViewportDirty()
		return m, nil
	}
	return m, nil
}

func (m *model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.stage {
	case stageIntake:
		return m.handleIntakeKey(key)
	case stageProcessing:
		switch key.String() {
		case "r", "esc":
			m.resetSession()
			m.infoMessage = "Request cancelled. Start a new search."
			return m, nil
		}
		return m, nil
	case stageDisplay:
		return m.handleDisplayKey(key)
	case stageCourses:
		return m.handleCoursesKey(key)
	default:
		return m, nil
	}
}

func (m *model) handleIntakeKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "enter":
		return m, m.submit()
	case "esc":
		if m.focus == fieldTopic && m.topicInput.Value() != "" {
			m.topicInput.SetValue("")
			return m, nil
		}
		return m, m.quit()
	case "up", "shift+tab":
		m.focusField((m.focus + intakeFieldCount - 1) % intakeFieldCount)
		return m, nil
	case "down":
		m.focusField((m.focus + 1) % intakeFieldCount)
		return m, nil
	case "tab":
		if m.focus == fieldTopic {
			before := m.topicInput.Value()
			var cmd tea.Cmd
			m.topicInput, cmd = m.topicInput.Update(key)
			if m.topicInput.Value() != before {
				return m, cmd
			}
		}
		m.focusField((m.focus + 1) % intakeFieldCount)
		return m, nil
	}

	switch m.focus {
	case fieldLevel:
		switch key.String() {
		case "left", "h":
			m.cycleLevel(-1)
		case "right", "l", " ":
			m.cycleLevel(1)
		}
		return m, nil
	case fieldAI:
		switch key.String() {
		case " ", "left", "right", "h", "l":
			m.aiEnhanced = !m.aiEnhanced
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.topicInput, cmd = m.topicInput.Update(key)
		return m, cmd
	}
}

func (m *model) handleDisplayKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q", "esc":
		return m, m.quit()
	case "r":
		m.resetSession()
		m.infoMessage = "Start a new search."
		return m, nil
	case "e":
		return m, m.startExport()
	case "c":
		return m, m.openCourses()
	case "m":
		return m, m.toggleMarkdown()
	case "?":
		m.helpVisible = !m.helpVisible
		return m, nil
	case "[":
		m.jumpToRelativeSection(-1)
		return m, nil
	case "]":
		m.jumpToRelativeSection(1)
		return m, nil
	case "g", "home":
		m.viewport.GotoTop()
		m.infoMessage = "Jumped to top."
		return m, nil
	case "G", "end":
		m.viewport.GotoBottom()
		m.infoMessage = "Jumped to bottom."
		return m, nil
	}
	m.refreshViewportIfDirty()
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(key)
	return m, cmd
}

func (m *model) handleCoursesKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "esc":
		m.courseInput.Blur()
		m.stage = stageDisplay
		m.markViewportDirty()
		return m, nil
	case "enter":
		id := strings.TrimSpace(m.courseInput.Value())
		if id == "" {
			m.infoMessage = "Enter a course id to look it up."
			return m, nil
		}
		detail := m.config.Catalog.Lookup(id)
		m.courseDetail = &detail
		m.logger.Info("course lookup", zap.String("id", id), zap.Bool("placeholder", detail.Placeholder))
		if detail.Placeholder {
			m.infoMessage = fmt.Sprintf("No catalog entry for %q; showing a placeholder.", id)
		} else {
			m.infoMessage = fmt.Sprintf("Loaded course %s.", detail.ID)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.courseInput, cmd = m.courseInput.Update(key)
	return m, cmd
}

func (m *model) submit() tea.Cmd {
	req, note, err := m.session.Submit(m.topicInput.Value(), string(m.selectedLevel()), m.aiEnhanced)
	if err != nil {
		if errors.Is(err, workflow.ErrIncompleteIntake) {
			m.errorMessage = ""
			switch {
			case errors.Is(err, workflow.ErrTopicRequired):
				m.focusField(fieldTopic)
			case errors.Is(err, workflow.ErrSkillLevelRequired):
				m.focusField(fieldLevel)
			}
			return m.pushToast(note)
		}
		m.errorMessage = err.Error()
		return nil
	}
	m.logger.Info("intake submitted", zap.String("topic", req.Topic), zap.String("level", string(req.SkillLevel)))
	m.stage = stageProcessing
	m.percent = 0
	m.errorMessage = ""
	m.infoMessage = "Generating your learning path…"
	m.topicInput.Blur()
	gen := m.session.Progress().Generation()
	return tea.Batch(m.pushToast(note), m.spinner.Tick, progressTickCmd(gen, m.config.Timing.Interval))
}

func (m *model) handleProgressTick(msg progressTickMsg) tea.Cmd {
	res := m.session.Progress().Tick(msg.gen)
	if res.Stale {
		return nil
	}
	m.percent = res.Percent
	if res.Finished {
		return progressDoneCmd(msg.gen, m.config.Timing.Grace)
	}
	return progressTickCmd(msg.gen, m.config.Timing.Interval)
}

func (m *model) handleProgressDone(msg progressDoneMsg) tea.Cmd {
	note, ok := m.session.Complete(msg.gen)
	if !ok {
		return nil
	}
	m.stage = stageDisplay
	m.infoMessage = "Press e to export, c for courses, m for markdown, r to start over."
	m.viewport.GotoTop()
	m.markViewportDirty()
	return m.pushToast(note)
}

func (m *model) startExport() tea.Cmd {
	if m.config.Exporter == nil {
		m.errorMessage = "Export is not configured."
		return nil
	}
	if m.exporting {
		m.infoMessage = "Export already in progress…"
		return nil
	}
	req, ok := m.session.Request()
	if !ok {
		return nil
	}
	m.exporting = true
	m.infoMessage = "Preparing your roadmap PDF…"
	return m.jobs.Start(m.ctx, jobKindExport, exportJob(m.config.Exporter, m.epoch, req.Topic))
}

func (m *model) handleExportResult(msg exportResultMsg) tea.Cmd {
	if msg.epoch != m.epoch {
		return nil
	}
	m.exporting = false
	if msg.err != nil {
		if errors.Is(msg.err, context.Canceled) {
			return nil
		}
		return m.pushToast(workflow.Notification{Kind: workflow.NotifyError, Message: fmt.Sprintf("Export failed: %v", msg.err)})
	}
	m.lastExport = msg.path
	return m.pushToast(workflow.Notification{Kind: workflow.NotifySuccess, Message: "Roadmap downloaded: " + msg.path})
}

func (m *model) openCourses() tea.Cmd {
	req, ok := m.session.Request()
	if !ok {
		return nil
	}
	m.stage = stageCourses
	m.courseInput.SetValue("")
	m.courseInput.Focus()
	m.infoMessage = "Enter a course id and press Enter. Esc returns to your roadmap."
	if m.recommendations != nil || m.coursesLoading {
		return textinput.Blink
	}
	m.coursesLoading = true
	return tea.Batch(textinput.Blink, m.jobs.Start(m.ctx, jobKindCourses,
		coursesJob(m.config.Catalog, m.epoch, req.Topic, req.SkillLevel, m.config.RecommendLimit)))
}

func (m *model) toggleMarkdown() tea.Cmd {
	m.markdownView = !m.markdownView
	m.markViewportDirty()
	m.viewport.GotoTop()
	if !m.markdownView {
		m.infoMessage = "Showing the roadmap view."
		return nil
	}
	m.infoMessage = "Showing the markdown view. Press m to switch back."
	if m.markdownRendered != "" && m.markdownWidth == m.wrapWidth(0) {
		return nil
	}
	return m.startMarkdownRender()
}

func (m *model) startMarkdownRender() tea.Cmd {
	req, ok := m.session.Request()
	result, hasResult := m.session.Result()
	if !ok || !hasResult {
		return nil
	}
	m.markdownLoading = true
	document := curriculum.Markdown(result, req.Topic, req.SkillLevel)
	return m.jobs.Start(m.ctx, jobKindMarkdown, markdownJob(m.config.MarkdownStyle, m.wrapWidth(0), m.epoch, document))
}

func (m *model) resetSession() {
	m.session.Reset()
	m.cancel()
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.epoch++

	m.stage = stageIntake
	m.topicInput.SetValue("")
	m.levelIndex = -1
	m.aiEnhanced = false
	m.focusField(fieldTopic)
	m.courseInput.SetValue("")
	m.courseInput.Blur()

	m.percent = 0
	m.exporting = false
	m.lastExport = ""
	m.coursesLoading = false
	m.recommendations = nil
	m.courseDetail = nil
	m.markdownView = false
	m.markdownRendered = ""
	m.markdownWidth = 0
	m.markdownLoading = false
	m.helpVisible = false
	m.errorMessage = ""
	m.viewport.GotoTop()
	m.markViewportDirty()
	m.logger.Info("session reset", zap.Int("epoch", m.epoch))
}

func (m *model) quit() tea.Cmd {
	m.cancel()
	return tea.Quit
}

func (m *model) pushToast(note workflow.Notification) tea.Cmd {
	if note.Message == "" {
		return nil
	}
	m.toastSeq++
	m.toast = &toast{id: m.toastSeq, note: note}
	return toastExpireCmd(m.toastSeq, m.config.ToastTTL)
}

func (m *model) focusField(field intakeField) {
	m.focus = field
	if field == fieldTopic {
		m.topicInput.Focus()
		return
	}
	m.topicInput.Blur()
}

func (m *model) cycleLevel(delta int) {
	n := len(curriculum.Levels)
	if m.levelIndex < 0 {
		if delta > 0 {
			m.levelIndex = 0
		} else {
			m.levelIndex = n - 1
		}
		return
	}
	m.levelIndex = (m.levelIndex + delta + n) % n
}

func (m *model) selectedLevel() curriculum.SkillLevel {
	if m.levelIndex < 0 || m.levelIndex >= len(curriculum.Levels) {
		return ""
	}
	return curriculum.Levels[m.levelIndex]
}

func (m *model) markViewportDirty() {
	m.viewportDirty = true
}

func (m *model) refreshViewportIfDirty() {
	if m.viewportDirty {
		m.refreshViewport()
	}
}

func (m *model) refreshViewport() {
	m.viewportDirty = false
	prevYOffset := m.viewport.YOffset
	result, ok := m.session.Result()
	if !ok {
		m.viewportContent = ""
		m.viewport.SetContent("")
		m.sectionAnchors = map[string]int{}
		m.lineCount = 0
		return
	}

	var view displayView
	switch {
	case m.markdownView && m.markdownRendered != "":
		view = displayView{content: m.markdownRendered, anchors: map[string]int{}}
	case m.markdownView:
		view = displayView{content: helperStyle.Render(m.spinner.View() + " Rendering markdown…"), anchors: map[string]int{}}
	default:
		view = m.buildDisplayContent(result)
	}
	m.viewportContent = view.content
	m.sectionAnchors = view.anchors
	m.lineCount = len(splitLinesPreserve(view.content))
	m.viewport.SetContent(view.content)
	m.viewport.SetYOffset(m.clampYOffset(prevYOffset))
}

func (m *model) jumpToRelativeSection(delta int) {
	m.refreshViewportIfDirty()
	anchors := m.availableSections()
	if len(anchors) == 0 {
		m.infoMessage = "No sections available in this view."
		return
	}
	current := m.viewport.YOffset
	if delta > 0 {
		for _, anchor := range anchors {
			if m.sectionAnchors[anchor] > current {
				m.jumpToSection(anchor)
				return
			}
		}
		m.infoMessage = "Already at the last section."
		return
	}
	for i := len(anchors) - 1; i >= 0; i-- {
		if m.sectionAnchors[anchors[i]] < current {
			m.jumpToSection(anchors[i])
			return
		}
	}
	m.infoMessage = "Already at the first section."
}

func (m *model) availableSections() []string {
	var ordered []string
	for _, anchor := range sectionSequence {
		if _, ok := m.sectionAnchors[anchor]; ok {
			ordered = append(ordered, anchor)
		}
	}
	return ordered
}

func (m *model) jumpToSection(anchor string) {
	line, ok := m.sectionAnchors[anchor]
	if !ok {
		m.infoMessage = "Section unavailable."
		return
	}
	m.viewport.SetYOffset(line)
	m.infoMessage = fmt.Sprintf("Jumped to %s.", sectionLabel(anchor))
}

func sectionLabel(anchor string) string {
	switch anchor {
	case anchorRoadmap:
		return "Learning Path"
	case anchorPhases:
		return "Roadmap Phases"
	case anchorProjects:
		return "Projects"
	case anchorResources:
		return "Resources"
	case anchorCareers:
		return "Career Opportunities"
	case anchorGuide:
		return "Study Guide"
	case anchorCourses:
		return "Recommended Courses"
	default:
		return "section"
	}
}

func (m *model) wrapWidth(padding int) int {
	width := m.viewport.Width
	if width <= 0 {
		width = 80
	}
	if padding < 0 {
		padding = 0
	}
	available := width - padding
	if available < 20 {
		available = 20
	}
	return available
}

func (m *model) clampYOffset(offset int) int {
	maxOffset := m.lineCount - m.viewport.Height
	if m.viewport.Height <= 0 {
		maxOffset = m.lineCount - 1
	}
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset < 0 {
		return 0
	}
	if offset > maxOffset {
		return maxOffset
	}
	return offset
}

func splitLinesPreserve(content string) []string {
	if content == "" {
		return []string{""}
	}
	return strings.Split(content, "\n")
}
