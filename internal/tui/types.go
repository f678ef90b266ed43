package tui

import (
	"time"

	"github.com/csheth/pathscout/internal/catalog"
)

type stage int

const (
	stageIntake stage = iota
	stageProcessing
	stageDisplay
	stageCourses
)

func (s stage) String() string {
	switch s {
	case stageIntake:
		return "intake"
	case stageProcessing:
		return "processing"
	case stageDisplay:
		return "display"
	case stageCourses:
		return "courses"
	default:
		return "unknown"
	}
}

type intakeField int

const (
	fieldTopic intakeField = iota
	fieldLevel
	fieldAI
)

const intakeFieldCount = 3

const (
	anchorRoadmap   = "roadmap"
	anchorPhases    = "phases"
	anchorProjects  = "projects"
	anchorResources = "resources"
	anchorCareers   = "careers"
	anchorGuide     = "guide"
	anchorCourses   = "courses"
)

var sectionSequence = []string{
	anchorRoadmap,
	anchorPhases,
	anchorProjects,
	anchorResources,
	anchorCareers,
	anchorGuide,
	anchorCourses,
}

const heroTagline = "Chart a learning path with PathScout."

const (
	minViewportWidth          = 40
	viewportHorizontalPadding = 4
	defaultToastTTL           = 4 * time.Second
	defaultRecommendLimit     = 5
)

const (
	topicPlaceholder  = "Web Development, Data Science, or anything you like…"
	coursePlaceholder = "Course id, e.g. 132"
)

type progressTickMsg struct {
	gen uint64
}

type progressDoneMsg struct {
	gen uint64
}

type toastExpiredMsg struct {
	id int
}

type exportResultMsg struct {
	epoch int
	path  string
	err   error
}

type coursesResultMsg struct {
	epoch           int
	recommendations []catalog.Recommendation
}

type markdownResultMsg struct {
	epoch    int
	width    int
	rendered string
	err      error
}
