// internal/engine/prompt_test.go
package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"askindia/internal/models"
)

func testPersona() models.Persona {
	return models.Persona{
		UUID:                    "p-1",
		Age:                     34,
		Sex:                     "Female",
		Occupation:              "School Teacher",
		EducationLevel:          "Graduate",
		MaritalStatus:           "Married",
		State:                   "KERALA",
		District:                "Kochi",
		Persona:                 "A school teacher who has taught mathematics for a decade",
		CulturalBackground:      "Grew up in a coastal town",
		SkillsAndExpertise:      "Curriculum design",
		HobbiesAndInterests:     "Classical dance",
		CareerGoalsAndAmbitions: "Become a headmistress",
	}
}

func TestBuildPrompt_SkipsEmptyBiographyFields(t *testing.T) {
	p := testPersona()
	p.CulturalBackground = ""
	p.SkillsAndExpertise = ""
	p.District = ""

	prompt := buildPrompt("q", p)

	assert.NotContains(t, prompt, "Background:")
	assert.NotContains(t, prompt, "Skills:")
	assert.Contains(t, prompt, "Lives in KERALA")
	assert.Contains(t, prompt, "Interests: Classical dance")
}

func TestReplyInstructionsNameTheContract(t *testing.T) {
	// The structured-output schema and the instructions must agree on
	// field names.
	for _, field := range []string{"answer", "rationale", "sentiment", "confidence"} {
		assert.True(t, strings.Contains(replyInstructions, field), "instructions missing %q", field)
	}
}
