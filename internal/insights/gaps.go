package insights

import (
	"fmt"
	"strings"

	"github.com/nik-767/MindMateAI-Career-Advisor/internal/resume"
)

// SkillGap is a missing essential or advanced skill with a priority tag.
type SkillGap struct {
	Skill    string `json:"skill"`
	Priority string `json:"priority"`
	Reason   string `json:"reason"`
}

var (
	techEssentialSkills = []string{"Git", "SQL", "Problem Solving", "System Design"}
	techAdvancedSkills  = []string{"AWS", "Docker", "Microservices", "Testing"}

	governmentEssentialSkills = []string{"Current Affairs", "Quantitative Aptitude", "Reasoning", "English"}
	nonTechEssentialSkills    = []string{"Communication", "Project Management", "Leadership", "Analytics"}
)

// IdentifySkillGaps lists up to 5 essential (High priority) and, for Mid or
// Senior tech profiles, advanced (Medium priority) skills absent from the
// skill set.
func IdentifySkillGaps(skills []string, careerType, experienceLevel string) []SkillGap {
	var gaps []SkillGap

	switch careerType {
	case "tech":
		for _, skill := range techEssentialSkills {
			if !hasSkill(skills, skill) {
				gaps = append(gaps, SkillGap{
					Skill:    skill,
					Priority: "High",
					Reason:   fmt.Sprintf("%s is essential for most tech roles", skill),
				})
			}
		}
		if experienceLevel == resume.LevelMid || experienceLevel == resume.LevelSenior {
			for _, skill := range techAdvancedSkills {
				if !hasSkill(skills, skill) {
					gaps = append(gaps, SkillGap{
						Skill:    skill,
						Priority: "Medium",
						Reason:   fmt.Sprintf("%s is valuable for %s-level positions", skill, strings.ToLower(experienceLevel)),
					})
				}
			}
		}
	case "government":
		for _, skill := range governmentEssentialSkills {
			if !hasSkill(skills, skill) {
				gaps = append(gaps, SkillGap{
					Skill:    skill,
					Priority: "High",
					Reason:   fmt.Sprintf("%s is crucial for government exams", skill),
				})
			}
		}
	case "nontech":
		for _, skill := range nonTechEssentialSkills {
			if !hasSkill(skills, skill) {
				gaps = append(gaps, SkillGap{
					Skill:    skill,
					Priority: "High",
					Reason:   fmt.Sprintf("%s is important for business roles", skill),
				})
			}
		}
	}

	if len(gaps) > 5 {
		gaps = gaps[:5]
	}
	return gaps
}
