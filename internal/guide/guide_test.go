package guide

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPersonalizesSteps(t *testing.T) {
	steps := Build(Metadata{Topic: "Data Science", SkillLevel: "beginner", Phases: 7})
	require.Len(t, steps, 5)
	assert.Equal(t, "Warm up with the fundamentals", steps[0].Title)
	assert.Contains(t, steps[0].Description, "Data Science")
	assert.Contains(t, steps[1].Description, "all 7 phases")
}

func TestBuildSkipsWarmUpForAdvanced(t *testing.T) {
	steps := Build(Metadata{Topic: "Cloud Computing", SkillLevel: "Advanced"})
	require.Len(t, steps, 4)
	for _, step := range steps {
		assert.NotEqual(t, "Warm up with the fundamentals", step.Title)
	}
	assert.Contains(t, steps[0].Description, "each phase")
}

func TestBuildDefaultsTopic(t *testing.T) {
	steps := Build(Metadata{})
	assert.True(t, strings.Contains(steps[0].Description, "your topic"))
}
