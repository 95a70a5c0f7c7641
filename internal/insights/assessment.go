package insights

import (
	"fmt"
	"strings"

	"github.com/nik-767/MindMateAI-Career-Advisor/internal/resume"
)

// Assessment is the overall narrative evaluation of a profile.
type Assessment struct {
	Summary             string   `json:"summary"`
	Strengths           []string `json:"strengths"`
	AreasForImprovement []string `json:"areas_for_improvement"`
	NextSteps           []string `json:"next_steps"`
}

// Assess produces the overall assessment from the profile strength and the
// extracted attributes.
func Assess(strength resume.ProfileStrength, skills []string, experienceLevel, careerType string) Assessment {
	assessment := Assessment{
		Summary: fmt.Sprintf("Your profile shows %s potential in %s careers.",
			strings.ToLower(strength.Level), careerType),
		Strengths:           []string{},
		AreasForImprovement: []string{},
		NextSteps:           []string{},
	}

	if len(skills) >= 10 {
		assessment.Strengths = append(assessment.Strengths, "Diverse skill set across multiple domains")
	}
	if experienceLevel == resume.LevelMid || experienceLevel == resume.LevelSenior || experienceLevel == "Expert" {
		assessment.Strengths = append(assessment.Strengths,
			fmt.Sprintf("Solid %s-level professional experience", strings.ToLower(experienceLevel)))
	}
	if strength.Score >= 70 {
		assessment.Strengths = append(assessment.Strengths, "Well-rounded professional profile")
	}

	if len(skills) < 5 {
		assessment.AreasForImprovement = append(assessment.AreasForImprovement, "Expand technical skill repertoire")
	}
	if experienceLevel == resume.LevelEntry {
		assessment.AreasForImprovement = append(assessment.AreasForImprovement, "Gain more hands-on experience")
	}
	if strength.Score < 50 {
		assessment.AreasForImprovement = append(assessment.AreasForImprovement, "Strengthen overall professional profile")
	}

	switch careerType {
	case "tech":
		assessment.NextSteps = append(assessment.NextSteps,
			"Build a strong portfolio showcasing your projects",
			"Stay current with industry trends and technologies",
		)
	case "government":
		assessment.NextSteps = append(assessment.NextSteps,
			"Focus on exam-specific preparation and current affairs",
			"Practice quantitative aptitude and reasoning regularly",
		)
	default:
		assessment.NextSteps = append(assessment.NextSteps,
			"Develop leadership and communication skills",
			"Gain industry-specific knowledge and certifications",
		)
	}

	return assessment
}
