package insights

import (
	"fmt"
	"strings"

	"github.com/nik-767/MindMateAI-Career-Advisor/internal/resume"
)

// Insight is one actionable career-development suggestion.
type Insight struct {
	Category string `json:"category"`
	Insight  string `json:"insight"`
	Action   string `json:"action"`
}

// Generate produces actionable insights from the profile attributes and the
// previously identified gaps.
func Generate(skills []string, experienceLevel, careerType string, gaps []SkillGap) []Insight {
	var out []Insight

	var highPriority []string
	for _, gap := range gaps {
		if gap.Priority == "High" {
			highPriority = append(highPriority, gap.Skill)
		}
	}
	if len(highPriority) > 0 {
		if len(highPriority) > 3 {
			highPriority = highPriority[:3]
		}
		out = append(out, Insight{
			Category: "Skill Development",
			Insight:  fmt.Sprintf("Focus on developing %s to strengthen your profile", strings.Join(highPriority, ", ")),
			Action:   "Enroll in online courses or certification programs",
		})
	}

	switch experienceLevel {
	case resume.LevelEntry:
		out = append(out, Insight{
			Category: "Experience Building",
			Insight:  "Build practical experience through projects and internships",
			Action:   "Create portfolio projects and contribute to open source",
		})
	case resume.LevelMid:
		out = append(out, Insight{
			Category: "Career Growth",
			Insight:  "Consider leadership roles and advanced certifications",
			Action:   "Seek mentorship opportunities and lead team projects",
		})
	}

	switch careerType {
	case "tech":
		out = append(out, Insight{
			Category: "Technical Growth",
			Insight:  "Stay updated with latest technologies and frameworks",
			Action:   "Follow tech blogs, attend conferences, and practice coding regularly",
		})
	case "government":
		out = append(out, Insight{
			Category: "Exam Preparation",
			Insight:  "Consistent preparation and current affairs knowledge are crucial",
			Action:   "Create a study schedule and practice mock tests regularly",
		})
	}

	return out
}
