// internal/models/persona.go
package models

// Persona is one record from the demographic snapshot. Records are loaded
// once at startup and shared read-only across all requests.
type Persona struct {
	UUID           string `json:"uuid"`
	Age            int    `json:"age"`
	Sex            string `json:"sex"`
	Occupation     string `json:"occupation"`
	EducationLevel string `json:"education_level"`
	MaritalStatus  string `json:"marital_status"`
	State          string `json:"state"`
	District       string `json:"district"`

	// Free-text biography fields, used only when building the prompt.
	Persona                 string `json:"persona"`
	CulturalBackground      string `json:"cultural_background"`
	SkillsAndExpertise      string `json:"skills_and_expertise"`
	HobbiesAndInterests     string `json:"hobbies_and_interests"`
	CareerGoalsAndAmbitions string `json:"career_goals_and_ambitions"`
}

// Profile is the demographic snapshot echoed back with each reply.
type Profile struct {
	Age            int    `json:"age"`
	Sex            string `json:"sex"`
	Occupation     string `json:"occupation"`
	EducationLevel string `json:"education_level"`
	MaritalStatus  string `json:"marital_status,omitempty"`
	District       string `json:"district,omitempty"`
}

// Snapshot returns the profile fields of a persona.
func (p *Persona) Snapshot() Profile {
	return Profile{
		Age:            p.Age,
		Sex:            p.Sex,
		Occupation:     p.Occupation,
		EducationLevel: p.EducationLevel,
		MaritalStatus:  p.MaritalStatus,
		District:       p.District,
	}
}
