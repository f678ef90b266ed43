package curriculum

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// SkillLevel is the learner's self-reported level. Values outside the three
// known levels are carried through untouched and handled by fallbacks.
type SkillLevel string

const (
	Beginner     SkillLevel = "beginner"
	Intermediate SkillLevel = "intermediate"
	Advanced     SkillLevel = "advanced"
)

// Levels lists the selectable skill levels in presentation order.
var Levels = []SkillLevel{Beginner, Intermediate, Advanced}

// ParseSkillLevel normalizes s and reports whether it is one of the known levels.
func ParseSkillLevel(s string) (SkillLevel, bool) {
	level := SkillLevel(strings.ToLower(strings.TrimSpace(s)))
	return level, level.Valid()
}

func (l SkillLevel) Valid() bool {
	switch l {
	case Beginner, Intermediate, Advanced:
		return true
	default:
		return false
	}
}

// Title returns the level with its first letter upper-cased.
func (l SkillLevel) Title() string {
	return titleCase(string(l))
}

// Complexity tiers a project.
type Complexity string

const (
	ComplexityLow    Complexity = "Low"
	ComplexityMedium Complexity = "Medium"
	ComplexityHigh   Complexity = "High"
)

// NodeStyle tags a roadmap node so renderers can pick a presentation.
type NodeStyle string

const (
	StylePhase      NodeStyle = "phase"
	StyleConcepts   NodeStyle = "concepts"
	StyleMilestones NodeStyle = "milestones"
	StylePractice   NodeStyle = "practice"
	StyleItem       NodeStyle = "item"
)

// Node is one entry of a roadmap tree.
type Node struct {
	Label       string    `json:"label" yaml:"label"`
	Style       NodeStyle `json:"style" yaml:"style"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Duration    string    `json:"duration,omitempty" yaml:"duration,omitempty"`
	Children    []Node    `json:"children,omitempty" yaml:"children,omitempty"`
}

// Project describes a suggested hands-on project.
type Project struct {
	Name              string     `json:"name"`
	Description       string     `json:"description"`
	Complexity        Complexity `json:"complexity"`
	EstimatedDuration string     `json:"estimatedDuration"`
	Skills            []string   `json:"skills,omitempty"`
}

// Resources groups study material into five fixed categories.
type Resources struct {
	Books             []string `json:"books"`
	OnlineCourses     []string `json:"onlineCourses"`
	Communities       []string `json:"communities"`
	Tools             []string `json:"tools"`
	PracticePlatforms []string `json:"practicePlatforms"`
}

// ResourceCategory pairs a display title with its items.
type ResourceCategory struct {
	Title string
	Items []string
}

// Categories returns the five categories in display order.
func (r Resources) Categories() []ResourceCategory {
	return []ResourceCategory{
		{Title: "Recommended Books", Items: r.Books},
		{Title: "Online Courses", Items: r.OnlineCourses},
		{Title: "Communities", Items: r.Communities},
		{Title: "Essential Tools", Items: r.Tools},
		{Title: "Practice Platforms", Items: r.PracticePlatforms},
	}
}

// Detailed is the second, per-phase breakdown shown alongside the roadmap.
type Detailed struct {
	Phases   []Node    `json:"phases"`
	Projects []Project `json:"projects"`
}

// Result is everything the presentation stage renders for one request.
type Result struct {
	LearningPath []Node    `json:"learningPath"`
	Projects     []Project `json:"projects"`
	Resources    Resources `json:"resources"`
	Careers      []string  `json:"careerOpportunities"`
	Detailed     Detailed  `json:"detailed"`
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
