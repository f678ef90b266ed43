// Package curriculum turns a topic and skill level into a learning path.
//
// Everything here is table lookup and string templating: the same inputs
// always produce the same Result.
package curriculum

import (
	"fmt"
	"strings"
)

// Derive builds the learning path for topic at level. It never fails: unknown
// topics get the generic roadmap and unknown levels get the beginner projects.
func Derive(topic string, level SkillLevel) Result {
	topic = strings.TrimSpace(topic)
	return Result{
		LearningPath: roadmapFor(topic),
		Projects:     projectsFor(level),
		Resources:    resourcesFor(topic),
		Careers:      careersFor(topic),
		Detailed:     detailedFor(topic, level),
	}
}

// HasRoadmap reports whether topic has a dedicated roadmap table entry.
func HasRoadmap(topic string) bool {
	_, ok := roadmapTable[topic]
	return ok
}

func roadmapFor(topic string) []Node {
	if nodes, ok := roadmapTable[topic]; ok {
		return cloneNodes(nodes)
	}
	return cloneNodes(fallbackRoadmap)
}

func projectsFor(level SkillLevel) []Project {
	projects, ok := projectTable[level]
	if !ok {
		projects = projectTable[Beginner]
	}
	return cloneProjects(projects)
}

func resourcesFor(topic string) Resources {
	return Resources{
		Books: []string{
			fmt.Sprintf("Introduction to %s", topic),
			fmt.Sprintf("Advanced %s Techniques", topic),
			fmt.Sprintf("Mastering %s", topic),
		},
		OnlineCourses: []string{
			fmt.Sprintf("%s for Beginners", topic),
			fmt.Sprintf("Professional %s Masterclass", topic),
		},
		Communities: []string{
			"Stack Overflow",
			"Reddit",
			fmt.Sprintf("%s Discord Servers", topic),
		},
		Tools: []string{
			fmt.Sprintf("%s Development Environment", topic),
			"Version Control",
			"Testing Frameworks",
		},
		PracticePlatforms: []string{"Codecademy", "Exercism", "LeetCode"},
	}
}

func careersFor(topic string) []string {
	return []string{
		fmt.Sprintf("%s Developer", topic),
		fmt.Sprintf("%s Engineer", topic),
		fmt.Sprintf("%s Consultant", topic),
		fmt.Sprintf("%s Specialist", topic),
		fmt.Sprintf("Senior %s Architect", topic),
	}
}

func detailedFor(topic string, level SkillLevel) Detailed {
	learner := strings.ToLower(strings.TrimSpace(string(level)))
	if learner == "" {
		learner = string(Beginner)
	}
	phases := []Node{
		{
			Label:       fmt.Sprintf("Foundations of %s", topic),
			Style:       StylePhase,
			Description: fmt.Sprintf("Build core knowledge and fundamental skills in %s. As a %s learner, focus on basic principles and the essential tools.", topic, learner),
			Duration:    "4-6 weeks",
			Children: []Node{
				group("Key Concepts", StyleConcepts, topic+" basics", "Core principles", "Fundamental tools and techniques"),
				group("Milestones", StyleMilestones, fmt.Sprintf("Complete first %s exercise", topic), fmt.Sprintf("Build simple %s project", topic)),
				group("Practice Activities", StylePractice, fmt.Sprintf("Daily %s exercises", topic), "Follow beginner tutorials"),
			},
		},
		{
			Label:       fmt.Sprintf("%s Skill Development", topic),
			Style:       StylePhase,
			Description: fmt.Sprintf("Deepen your understanding of %s and apply more advanced concepts through hands-on projects pitched above the %s level.", topic, learner),
			Duration:    "8-12 weeks",
			Children: []Node{
				group("Key Concepts", StyleConcepts, fmt.Sprintf("Advanced %s techniques", topic), "Applied projects", "Specialized tools"),
				group("Milestones", StyleMilestones, fmt.Sprintf("Complete medium complexity %s project", topic), "Solve real-world problems"),
				group("Practice Activities", StylePractice, "Implement sample projects", "Participate in forums and discussions"),
			},
		},
		{
			Label:       fmt.Sprintf("%s Mastery & Specialization", topic),
			Style:       StylePhase,
			Description: fmt.Sprintf("Develop expert-level %s skills with a focus on real-world application, specialize, and build a professional portfolio.", topic),
			Duration:    "12-16 weeks",
			Children: []Node{
				group("Key Concepts", StyleConcepts, "Industry best practices", "Complex problem-solving", "Portfolio development"),
				group("Milestones", StyleMilestones, "Create capstone project", "Contribute to the community"),
				group("Practice Activities", StylePractice, "Build complex projects", "Mentor beginners"),
			},
		},
	}
	projects := []Project{
		{
			Name:              fmt.Sprintf("Beginner Project: %s Fundamentals Application", topic),
			Description:       fmt.Sprintf("Apply basic %s concepts in a simple project sized for a %s learner.", topic, learner),
			Complexity:        ComplexityLow,
			EstimatedDuration: "1-2 weeks",
			Skills:            []string{fmt.Sprintf("Basic %s principles", topic), "Problem-solving", "Tool familiarity"},
		},
		{
			Name:              fmt.Sprintf("Intermediate Project: Interactive %s Application", topic),
			Description:       fmt.Sprintf("Create a more complex application using intermediate %s skills with greater functionality.", topic),
			Complexity:        ComplexityMedium,
			EstimatedDuration: "3-4 weeks",
			Skills:            []string{fmt.Sprintf("Intermediate %s techniques", topic), "Code organization", "Testing"},
		},
		{
			Name:              fmt.Sprintf("Capstone Project: Advanced %s Implementation", topic),
			Description:       fmt.Sprintf("Apply everything in a comprehensive %s project that solves a real-world problem.", topic),
			Complexity:        ComplexityHigh,
			EstimatedDuration: "6-8 weeks",
			Skills:            []string{fmt.Sprintf("Advanced %s mastery", topic), "System design", "Optimization"},
		},
	}
	return Detailed{Phases: phases, Projects: projects}
}

// Walk visits nodes depth-first, passing each node's depth starting at zero.
// Returning false from fn skips that node's children.
func Walk(nodes []Node, fn func(node Node, depth int) bool) {
	walk(nodes, 0, fn)
}

func walk(nodes []Node, depth int, fn func(Node, int) bool) {
	for _, node := range nodes {
		if fn(node, depth) {
			walk(node.Children, depth+1, fn)
		}
	}
}

func cloneNodes(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	out := make([]Node, len(nodes))
	for i, node := range nodes {
		out[i] = node
		out[i].Children = cloneNodes(node.Children)
	}
	return out
}

func cloneProjects(projects []Project) []Project {
	out := make([]Project, len(projects))
	for i, project := range projects {
		out[i] = project
		out[i].Skills = append([]string(nil), project.Skills...)
	}
	return out
}
