package tui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/pathscout/internal/curriculum"
	"github.com/csheth/pathscout/internal/workflow"
)

type fakeExporter struct {
	mu     sync.Mutex
	topics []string
	path   string
	err    error
}

func (f *fakeExporter) Export(ctx context.Context, topic string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.topics = append(f.topics, topic)
	if f.err != nil {
		return "", f.err
	}
	return f.path, nil
}

func newTestModel(t *testing.T) *model {
	t.Helper()
	teaModel, ok := New(Config{
		Exporter: &fakeExporter{path: "/tmp/Web_Development_roadmap.pdf"},
		Timing:   workflow.Timing{Duration: 30 * time.Millisecond, Interval: 10 * time.Millisecond},
		ToastTTL: time.Second,
	}).(*model)
	if !ok {
		t.Fatalf("expected *model, got %T", teaModel)
	}
	t.Cleanup(func() { teaModel.cancel() })
	return teaModel
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// submitAndFinish drives m from intake to display by feeding the progress
// messages the tick commands would produce.
func submitAndFinish(t *testing.T, m *model, topic string, level curriculum.SkillLevel) {
	t.Helper()
	m.topicInput.SetValue(topic)
	for i, l := range curriculum.Levels {
		if l == level {
			m.levelIndex = i
		}
	}
	m.Update(key("enter"))
	if m.stage != stageProcessing {
		t.Fatalf("stage after submit: got %v want %v", m.stage, stageProcessing)
	}
	gen := m.session.Progress().Generation()
	for i := 0; i < 10 && m.session.Progress().Running(); i++ {
		m.Update(progressTickMsg{gen: gen})
	}
	m.Update(progressDoneMsg{gen: gen})
	if m.stage != stageDisplay {
		t.Fatalf("stage after progress: got %v want %v", m.stage, stageDisplay)
	}
}

func TestSubmitWithoutLevelIsRejected(t *testing.T) {
	m := newTestModel(t)
	m.topicInput.SetValue("Web Development")

	_, cmd := m.Update(key("enter"))
	if cmd == nil {
		t.Fatal("rejection should schedule the toast expiry")
	}
	if m.stage != stageIntake {
		t.Fatalf("stage changed on rejection: %v", m.stage)
	}
	if m.toast == nil || m.toast.note.Message != workflow.RejectionMessage {
		t.Fatalf("expected rejection toast, got %+v", m.toast)
	}
	if m.toast.note.Kind != workflow.NotifyError {
		t.Fatalf("rejection toast kind: got %v", m.toast.note.Kind)
	}
	if m.focus != fieldLevel {
		t.Fatalf("focus should move to the level field, got %v", m.focus)
	}
	if m.session.Phase() != workflow.PhaseIdle {
		t.Fatalf("session left idle: %v", m.session.Phase())
	}
}

func TestSubmitWithoutTopicFocusesTopic(t *testing.T) {
	m := newTestModel(t)
	m.levelIndex = 0
	m.focusField(fieldAI)

	m.Update(key("enter"))
	if m.stage != stageIntake {
		t.Fatalf("stage changed on rejection: %v", m.stage)
	}
	if m.focus != fieldTopic || !m.topicInput.Focused() {
		t.Fatal("topic input should regain focus")
	}
}

func TestSubmitStartsProcessing(t *testing.T) {
	m := newTestModel(t)
	m.topicInput.SetValue("  Data Science ")
	m.levelIndex = 1
	m.aiEnhanced = true

	_, cmd := m.Update(key("enter"))
	if cmd == nil {
		t.Fatal("submit should start the progress ticker")
	}
	if m.stage != stageProcessing {
		t.Fatalf("stage: got %v want %v", m.stage, stageProcessing)
	}
	req, ok := m.session.Request()
	if !ok {
		t.Fatal("session should hold the request")
	}
	if req.Topic != "Data Science" || req.SkillLevel != curriculum.Intermediate || !req.AIEnhanced {
		t.Fatalf("unexpected request %+v", req)
	}
	if m.toast == nil || m.toast.note.Message != workflow.SubmittedMessage("Data Science") {
		t.Fatalf("expected submitted toast, got %+v", m.toast)
	}
	if !strings.Contains(m.View(), "0% complete") {
		t.Fatal("processing view should show the percentage")
	}
}

func TestProgressReachesDisplay(t *testing.T) {
	m := newTestModel(t)
	m.topicInput.SetValue("Web Development")
	m.levelIndex = 0
	m.Update(key("enter"))
	gen := m.session.Progress().Generation()

	_, cmd := m.Update(progressTickMsg{gen: gen})
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	if m.percent <= 0 || m.percent >= 100 {
		t.Fatalf("percent after one tick: %v", m.percent)
	}
	m.Update(progressTickMsg{gen: gen})
	m.Update(progressTickMsg{gen: gen})
	if m.percent != 100 {
		t.Fatalf("percent should reach 100, got %v", m.percent)
	}
	if m.stage != stageProcessing {
		t.Fatal("display should wait for the completion message")
	}

	m.Update(progressDoneMsg{gen: gen})
	if m.stage != stageDisplay {
		t.Fatalf("stage: got %v want %v", m.stage, stageDisplay)
	}
	if m.toast == nil || m.toast.note.Message != workflow.ReadyMessage {
		t.Fatalf("expected ready toast, got %+v", m.toast)
	}
	view := m.View()
	for _, want := range []string{"Learning Path", "JavaScript Essentials"} {
		if !strings.Contains(view, want) {
			t.Fatalf("display view missing %q", want)
		}
	}
	if !strings.Contains(m.viewportContent, "Career Opportunities") {
		t.Fatal("roadmap content should end with career opportunities")
	}
}

func TestResetDuringProcessingDropsStaleTicks(t *testing.T) {
	m := newTestModel(t)
	m.topicInput.SetValue("Web Development")
	m.levelIndex = 0
	m.Update(key("enter"))
	gen := m.session.Progress().Generation()
	m.Update(progressTickMsg{gen: gen})

	m.Update(key("r"))
	if m.stage != stageIntake {
		t.Fatalf("stage after reset: %v", m.stage)
	}
	if m.percent != 0 {
		t.Fatalf("percent not cleared: %v", m.percent)
	}

	if _, cmd := m.Update(progressTickMsg{gen: gen}); cmd != nil {
		t.Fatal("stale tick should not reschedule")
	}
	m.Update(progressDoneMsg{gen: gen})
	if m.stage != stageIntake {
		t.Fatalf("stale completion changed stage to %v", m.stage)
	}
	if _, ok := m.session.Result(); ok {
		t.Fatal("stale completion produced a result")
	}
}

func TestResetFromDisplayClearsForm(t *testing.T) {
	m := newTestModel(t)
	submitAndFinish(t, m, "Web Development", curriculum.Beginner)
	epoch := m.epoch

	m.Update(key("r"))
	if m.stage != stageIntake {
		t.Fatalf("stage: got %v want %v", m.stage, stageIntake)
	}
	if m.topicInput.Value() != "" || m.levelIndex != -1 || m.aiEnhanced {
		t.Fatal("intake form not cleared")
	}
	if m.epoch != epoch+1 {
		t.Fatalf("epoch not advanced: %d", m.epoch)
	}
	if m.session.Phase() != workflow.PhaseIdle {
		t.Fatalf("session phase: %v", m.session.Phase())
	}
}

func TestLevelCycleAndAIToggle(t *testing.T) {
	m := newTestModel(t)
	m.Update(key("down"))
	if m.focus != fieldLevel {
		t.Fatalf("focus: got %v want %v", m.focus, fieldLevel)
	}
	if m.topicInput.Focused() {
		t.Fatal("topic input should blur when leaving the field")
	}
	m.Update(key("right"))
	if m.selectedLevel() != curriculum.Beginner {
		t.Fatalf("first level: %q", m.selectedLevel())
	}
	m.Update(key("right"))
	m.Update(key("right"))
	if m.selectedLevel() != curriculum.Advanced {
		t.Fatalf("third level: %q", m.selectedLevel())
	}
	m.Update(key("right"))
	if m.selectedLevel() != curriculum.Beginner {
		t.Fatalf("level should wrap, got %q", m.selectedLevel())
	}
	m.Update(key("left"))
	if m.selectedLevel() != curriculum.Advanced {
		t.Fatalf("level should wrap backwards, got %q", m.selectedLevel())
	}

	m.Update(key("down"))
	m.Update(key(" "))
	if !m.aiEnhanced {
		t.Fatal("space should toggle the AI option")
	}
	m.Update(key("down"))
	if m.focus != fieldTopic {
		t.Fatalf("focus should wrap to topic, got %v", m.focus)
	}
}

func TestTopicTypingStaysInInput(t *testing.T) {
	m := newTestModel(t)
	m.Update(key("q"))
	m.Update(key("r"))
	if m.topicInput.Value() != "qr" {
		t.Fatalf("topic input value: %q", m.topicInput.Value())
	}
	if m.stage != stageIntake {
		t.Fatalf("letters should not trigger shortcuts in intake, stage %v", m.stage)
	}
}

func TestExportResultHandling(t *testing.T) {
	m := newTestModel(t)
	submitAndFinish(t, m, "Web Development", curriculum.Beginner)

	if cmd := m.startExport(); cmd == nil {
		t.Fatal("export should start a job")
	}
	if !m.exporting {
		t.Fatal("exporting flag not set")
	}
	if cmd := m.startExport(); cmd != nil {
		t.Fatal("second export should be refused while one is running")
	}

	msg, err := exportJob(m.config.Exporter, m.epoch, "Web Development")(context.Background())
	if err != nil {
		t.Fatalf("export job: %v", err)
	}
	m.Update(msg)
	if m.exporting {
		t.Fatal("exporting flag not cleared")
	}
	if m.lastExport != "/tmp/Web_Development_roadmap.pdf" {
		t.Fatalf("last export: %q", m.lastExport)
	}
	if m.toast == nil || m.toast.note.Kind != workflow.NotifySuccess {
		t.Fatalf("expected success toast, got %+v", m.toast)
	}
}

func TestExportFailureShowsErrorToast(t *testing.T) {
	m := newTestModel(t)
	submitAndFinish(t, m, "Web Development", curriculum.Beginner)
	m.exporting = true

	m.Update(exportResultMsg{epoch: m.epoch, err: errors.New("disk full")})
	if m.toast == nil || m.toast.note.Kind != workflow.NotifyError {
		t.Fatalf("expected error toast, got %+v", m.toast)
	}
	if !strings.Contains(m.toast.note.Message, "disk full") {
		t.Fatalf("toast should carry the cause: %q", m.toast.note.Message)
	}
}

func TestStaleJobResultsAreIgnored(t *testing.T) {
	m := newTestModel(t)
	submitAndFinish(t, m, "Web Development", curriculum.Beginner)
	epoch := m.epoch
	m.Update(key("r"))

	m.Update(exportResultMsg{epoch: epoch, path: "/tmp/old.pdf"})
	if m.lastExport != "" || m.exporting || (m.toast != nil && strings.Contains(m.toast.note.Message, "old.pdf")) {
		t.Fatal("export result from a reset session was applied")
	}
	m.Update(coursesResultMsg{epoch: epoch, recommendations: m.config.Catalog.Recommend("web", "", 3)})
	if len(m.recommendations) != 0 {
		t.Fatal("course results from a reset session were applied")
	}
}

func TestCourseLookup(t *testing.T) {
	m := newTestModel(t)
	submitAndFinish(t, m, "Web Development", curriculum.Beginner)

	if cmd := m.openCourses(); cmd == nil {
		t.Fatal("opening courses should start the recommendation job")
	}
	if m.stage != stageCourses || !m.coursesLoading {
		t.Fatalf("stage %v loading %v", m.stage, m.coursesLoading)
	}
	req, _ := m.session.Request()
	msg, err := coursesJob(m.config.Catalog, m.epoch, req.Topic, req.SkillLevel, m.config.RecommendLimit)(context.Background())
	if err != nil {
		t.Fatalf("courses job: %v", err)
	}
	m.Update(msg)
	if m.coursesLoading || len(m.recommendations) == 0 {
		t.Fatal("recommendations not applied")
	}
	if m.recommendations[0].ID != "132" {
		t.Fatalf("top recommendation: %s", m.recommendations[0].ID)
	}

	m.courseInput.SetValue(" 132 ")
	m.Update(key("enter"))
	if m.courseDetail == nil || m.courseDetail.Placeholder {
		t.Fatalf("expected catalog detail, got %+v", m.courseDetail)
	}
	if !strings.Contains(m.View(), "Dr. Sarah Johnson") {
		t.Fatal("detail view should show the instructor")
	}

	m.courseInput.SetValue("999")
	m.Update(key("enter"))
	if m.courseDetail == nil || !m.courseDetail.Placeholder {
		t.Fatalf("expected placeholder detail, got %+v", m.courseDetail)
	}

	m.Update(key("esc"))
	if m.stage != stageDisplay {
		t.Fatalf("esc should return to display, got %v", m.stage)
	}
	m.View()
	if !strings.Contains(m.viewportContent, "Recommended Courses") {
		t.Fatal("display should list the recommended courses section")
	}
}

func TestToastExpiry(t *testing.T) {
	m := newTestModel(t)
	m.pushToast(workflow.Notification{Message: "first"})
	first := m.toast.id
	m.pushToast(workflow.Notification{Message: "second"})

	m.Update(toastExpiredMsg{id: first})
	if m.toast == nil || m.toast.note.Message != "second" {
		t.Fatal("an older expiry should not clear a newer toast")
	}
	m.Update(toastExpiredMsg{id: m.toast.id})
	if m.toast != nil {
		t.Fatal("toast should clear on its own expiry")
	}
}

func TestSectionJumps(t *testing.T) {
	m := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	submitAndFinish(t, m, "Data Science", curriculum.Intermediate)
	m.refreshViewportIfDirty()

	m.Update(key("]"))
	if m.viewport.YOffset != m.sectionAnchors[anchorPhases] {
		t.Fatalf("expected jump to phases at %d, got %d", m.sectionAnchors[anchorPhases], m.viewport.YOffset)
	}
	m.Update(key("["))
	if m.viewport.YOffset != 0 {
		t.Fatalf("expected jump back to top, got %d", m.viewport.YOffset)
	}
}

func TestMarkdownResultApplied(t *testing.T) {
	m := newTestModel(t)
	submitAndFinish(t, m, "Web Development", curriculum.Beginner)

	if cmd := m.toggleMarkdown(); cmd == nil {
		t.Fatal("markdown view should start a render job")
	}
	if !m.markdownLoading {
		t.Fatal("markdown loading flag not set")
	}
	m.Update(markdownResultMsg{epoch: m.epoch, width: m.wrapWidth(0), rendered: "rendered roadmap"})
	if m.markdownLoading {
		t.Fatal("markdown loading flag not cleared")
	}
	if !strings.Contains(m.View(), "rendered roadmap") {
		t.Fatal("markdown content not shown")
	}

	m.toggleMarkdown()
	if m.markdownView {
		t.Fatal("second toggle should return to the roadmap view")
	}
}
