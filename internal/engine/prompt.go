// internal/engine/prompt.go
package engine

import (
	"fmt"
	"strings"

	"askindia/internal/models"
)

const replyInstructions = `You are roleplaying a real person from India. Stay fully in character and answer the question the way this specific person would, grounded in their life circumstances. Return JSON with fields: answer (2-3 sentences, first person), rationale (one sentence on why this person feels this way), sentiment ("positive", "neutral" or "negative" toward the proposal in the question), confidence (0.0-1.0, how sure you are about this person's stance).`

// buildPrompt renders one persona and the question into the user turn.
// The professional persona line carries the voice; the remaining biography
// fields add texture when present.
func buildPrompt(question string, p models.Persona) string {
	var parts []string

	parts = append(parts, "Person:")
	parts = append(parts, fmt.Sprintf("- %s", p.Persona))
	parts = append(parts, fmt.Sprintf("- Age %d, %s, %s", p.Age, p.Sex, p.Occupation))
	parts = append(parts, fmt.Sprintf("- Education: %s", p.EducationLevel))

	location := p.State
	if p.District != "" {
		location = fmt.Sprintf("%s, %s", p.District, p.State)
	}
	parts = append(parts, fmt.Sprintf("- Lives in %s", location))

	if p.MaritalStatus != "" {
		parts = append(parts, fmt.Sprintf("- Marital status: %s", p.MaritalStatus))
	}
	if p.CulturalBackground != "" {
		parts = append(parts, fmt.Sprintf("- Background: %s", p.CulturalBackground))
	}
	if p.SkillsAndExpertise != "" {
		parts = append(parts, fmt.Sprintf("- Skills: %s", p.SkillsAndExpertise))
	}
	if p.HobbiesAndInterests != "" {
		parts = append(parts, fmt.Sprintf("- Interests: %s", p.HobbiesAndInterests))
	}
	if p.CareerGoalsAndAmbitions != "" {
		parts = append(parts, fmt.Sprintf("- Goals: %s", p.CareerGoalsAndAmbitions))
	}

	parts = append(parts, fmt.Sprintf("\nQuestion: %s", question))
	parts = append(parts, "\nAnswer as this person:")

	return strings.Join(parts, "\n")
}
