// Package guide turns a learning request into a short checklist for working
// through the generated roadmap.
package guide

import (
	"fmt"
	"strings"
)

// Step is one actionable recommendation.
type Step struct {
	Title       string
	Description string
}

// Metadata carries just enough context to personalize the steps.
type Metadata struct {
	Topic      string
	SkillLevel string
	Phases     int
}

// Build returns the study checklist for meta. Advanced learners skip the
// warm-up step.
func Build(meta Metadata) []Step {
	topic := strings.TrimSpace(meta.Topic)
	if topic == "" {
		topic = "your topic"
	}
	phases := "each phase"
	if meta.Phases > 0 {
		phases = fmt.Sprintf("all %d phases", meta.Phases)
	}

	steps := []Step{
		{
			Title:       "Set a weekly rhythm",
			Description: fmt.Sprintf("Block fixed study hours for %s and plan %s on a calendar using the suggested durations.", topic, phases),
		},
		{
			Title:       "Learn by building",
			Description: "Start the first recommended project as soon as its phase begins and grow it as you go.",
		},
		{
			Title:       "Review every phase",
			Description: "Before moving on, check the milestones of the phase you finished and revisit anything you could not explain to someone else.",
		},
		{
			Title:       "Share your work",
			Description: "Publish projects and notes, and join one of the suggested communities to get feedback.",
		},
	}
	if !strings.EqualFold(strings.TrimSpace(meta.SkillLevel), "advanced") {
		warmUp := Step{
			Title:       "Warm up with the fundamentals",
			Description: fmt.Sprintf("Skim one introductory resource on %s so the vocabulary of the first phase is familiar.", topic),
		}
		steps = append([]Step{warmUp}, steps...)
	}
	return steps
}
