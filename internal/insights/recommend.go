// Package insights holds the deterministic rule tables that turn extracted
// profile attributes into career recommendations, skill gaps, sample-role
// match scores and narrative insights.
package insights

import (
	"strings"

	"github.com/nik-767/MindMateAI-Career-Advisor/internal/resume"
	"github.com/nik-767/MindMateAI-Career-Advisor/internal/util"
)

// Recommendation is a suggested role with a match estimate and rationale.
type Recommendation struct {
	Role   string `json:"role"`
	Match  int    `json:"match"`
	Reason string `json:"reason"`
}

// Recommend evaluates the fixed recommendation rules in order and keeps at
// most 3 results. When nothing matches, one generic recommendation for the
// career type is emitted.
func Recommend(skills []string, experienceLevel, careerType string) []Recommendation {
	var recommendations []Recommendation

	midOrSenior := experienceLevel == resume.LevelMid || experienceLevel == resume.LevelSenior

	switch careerType {
	case "tech":
		if hasSkill(skills, "Python") || hasSkill(skills, "Data Science") || hasSkill(skills, "Machine Learning") {
			match := 70
			if midOrSenior {
				match = 85
			}
			recommendations = append(recommendations, Recommendation{
				Role:   "Data Scientist",
				Match:  match,
				Reason: "Strong data science and Python skills align well with this role",
			})
		}
		if hasSkill(skills, "JavaScript") || hasSkill(skills, "React") || hasSkill(skills, "Node.js") {
			match := 65
			if midOrSenior {
				match = 80
			}
			recommendations = append(recommendations, Recommendation{
				Role:   "Full Stack Developer",
				Match:  match,
				Reason: "Frontend and backend JavaScript skills are highly valuable",
			})
		}
		if hasSkill(skills, "AWS") || hasSkill(skills, "Docker") || hasSkill(skills, "Kubernetes") {
			match := 60
			if midOrSenior {
				match = 75
			}
			recommendations = append(recommendations, Recommendation{
				Role:   "DevOps Engineer",
				Match:  match,
				Reason: "Cloud and containerization skills are in high demand",
			})
		}
	case "government":
		if anySkillContains(skills, "banking") {
			recommendations = append(recommendations, Recommendation{
				Role:   "Bank PO",
				Match:  80,
				Reason: "Banking knowledge and analytical skills suit this role",
			})
		}
		if anySkillContains(skills, "admin") || anySkillContains(skills, "management") {
			recommendations = append(recommendations, Recommendation{
				Role:   "Administrative Officer",
				Match:  75,
				Reason: "Administrative and management skills are valuable for government roles",
			})
		}
	case "nontech":
		if anySkillContains(skills, "marketing") {
			recommendations = append(recommendations, Recommendation{
				Role:   "Marketing Manager",
				Match:  80,
				Reason: "Marketing skills and business acumen align with this role",
			})
		}
		if anySkillContains(skills, "finance") || anySkillContains(skills, "accounting") {
			recommendations = append(recommendations, Recommendation{
				Role:   "Financial Analyst",
				Match:  75,
				Reason: "Financial skills and analytical thinking are key strengths",
			})
		}
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations, Recommendation{
			Role:   util.TitleWords(careerType) + " Specialist",
			Match:  60,
			Reason: "Your skills show potential for growth in this field",
		})
	}

	if len(recommendations) > 3 {
		recommendations = recommendations[:3]
	}
	return recommendations
}

func hasSkill(skills []string, skill string) bool {
	for _, s := range skills {
		if s == skill {
			return true
		}
	}
	return false
}

func anySkillContains(skills []string, substr string) bool {
	for _, s := range skills {
		if strings.Contains(strings.ToLower(s), substr) {
			return true
		}
	}
	return false
}
