package insights

import (
	"fmt"
	"strings"

	"github.com/nik-767/MindMateAI-Career-Advisor/internal/resume"
)

// ProfessionalSummary is a recruiter-style condensation of the full profile.
type ProfessionalSummary struct {
	ProfileType                string   `json:"profile_type"`
	KeyStrengths               []string `json:"key_strengths"`
	CareerStage                string   `json:"career_stage"`
	StandoutAchievements       []string `json:"standout_achievements"`
	ImprovementRecommendations []string `json:"improvement_recommendations"`
}

// Summarize builds the professional summary from the extracted attributes
// and the detailed strength analysis.
func Summarize(skills []string, experienceLevel string, certifications []string, strength resume.ProfileStrength) ProfessionalSummary {
	return ProfessionalSummary{
		ProfileType:                profileType(skills, strength.DetailedAnalysis.Projects, experienceLevel),
		KeyStrengths:               keyStrengths(skills, certifications, strength),
		CareerStage:                careerStage(skills, experienceLevel, strength.DetailedAnalysis.Projects),
		StandoutAchievements:       standoutAchievements(strength.DetailedAnalysis),
		ImprovementRecommendations: improvementRecommendations(skills, certifications, strength.DetailedAnalysis),
	}
}

func profileType(skills []string, projects []resume.Project, experienceLevel string) string {
	mlFocused := false
	for _, p := range projects {
		combined := strings.ToLower(p.Title + " " + p.Description)
		if strings.Contains(combined, "machine learning") {
			mlFocused = true
			break
		}
	}

	switch {
	case len(projects) >= 3 && mlFocused:
		return "Technical Specialist - Data Science/AI Focus"
	case len(skills) >= 10 && (experienceLevel == resume.LevelMid || experienceLevel == resume.LevelSenior):
		return "Experienced Technical Professional"
	case len(projects) >= 2 && experienceLevel == resume.LevelEntry:
		return "Emerging Technical Talent"
	default:
		return "Developing Professional"
	}
}

func keyStrengths(skills, certifications []string, strength resume.ProfileStrength) []string {
	var strengths []string

	if len(skills) >= 8 {
		strengths = append(strengths, fmt.Sprintf("Diverse technical skill set (%d skills)", len(skills)))
	}
	if projects := len(strength.DetailedAnalysis.Projects); projects >= 3 {
		strengths = append(strengths, fmt.Sprintf("Strong project portfolio (%d projects)", projects))
	}
	if len(certifications) >= 2 {
		strengths = append(strengths, fmt.Sprintf("Professional certifications (%d earned)", len(certifications)))
	}
	if strength.DetailedAnalysis.WorkImpact.Score >= 5 {
		strengths = append(strengths, "Demonstrated measurable impact")
	}
	if len(strength.DetailedAnalysis.Leadership) >= 1 {
		strengths = append(strengths, "Leadership experience")
	}

	if len(strengths) > 5 {
		strengths = strengths[:5]
	}
	return strengths
}

func careerStage(skills []string, experienceLevel string, projects []resume.Project) string {
	switch {
	case experienceLevel == resume.LevelSenior && len(skills) >= 12:
		return "Senior Professional - Ready for leadership roles"
	case experienceLevel == resume.LevelMid && len(projects) >= 3:
		return "Mid-level Professional - Growth trajectory"
	case experienceLevel == resume.LevelEntry && len(projects) >= 2:
		return "Junior Professional - Strong foundation"
	default:
		return "Early Career - Building experience"
	}
}

func standoutAchievements(analysis resume.DetailedAnalysis) []string {
	var out []string

	out = append(out, firstN(analysis.Achievements.Technical, 2)...)
	out = append(out, firstN(analysis.Achievements.Awards, 2)...)
	out = append(out, firstN(analysis.WorkImpact.Items, 2)...)

	if len(out) > 4 {
		out = out[:4]
	}
	return out
}

func improvementRecommendations(skills, certifications []string, analysis resume.DetailedAnalysis) []string {
	var out []string

	if len(skills) < 5 {
		out = append(out, "Expand technical skill portfolio - aim for 8-10 core skills")
	}
	if len(analysis.Projects) < 2 {
		out = append(out, "Build project portfolio - showcase 3-4 significant projects")
	}
	if len(certifications) == 0 {
		out = append(out, "Obtain relevant professional certifications")
	}
	if len(analysis.WorkImpact.Items) == 0 {
		out = append(out, "Quantify achievements with specific metrics and results")
	}
	if len(analysis.Leadership) == 0 {
		out = append(out, "Seek leadership opportunities and team collaboration roles")
	}

	if len(out) > 4 {
		out = out[:4]
	}
	return out
}

func firstN(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}
