package insights

import (
	"math"
	"sort"
	"strings"

	"github.com/nik-767/MindMateAI-Career-Advisor/internal/resume"
)

// RoleMatch is the score of one sample role against the extracted skill set.
type RoleMatch struct {
	Role          string `json:"role"`
	Match         int    `json:"match"`
	MatchedSkills int    `json:"matched_skills"`
	TotalRequired int    `json:"total_required"`
}

type sampleRole struct {
	name           string
	requiredSkills []string
}

var sampleRolesByType = map[string][]sampleRole{
	"tech": {
		{"Software Developer", []string{"Programming", "Problem Solving", "Git"}},
		{"Data Analyst", []string{"SQL", "Python", "Analytics"}},
		{"DevOps Engineer", []string{"AWS", "Docker", "Linux"}},
	},
	"government": {
		{"Bank PO", []string{"Banking", "Quantitative Aptitude", "Reasoning"}},
		{"Civil Services", []string{"General Knowledge", "Current Affairs", "Essay Writing"}},
		{"SSC Officer", []string{"English", "Quantitative Aptitude", "Reasoning"}},
	},
	"nontech": {
		{"Business Analyst", []string{"Analytics", "Communication", "Problem Solving"}},
		{"Marketing Manager", []string{"Marketing", "Communication", "Strategy"}},
		{"HR Manager", []string{"HR", "Communication", "Leadership"}},
	},
}

// CalculateRoleMatches scores the fixed sample roles for the career type by
// the fraction of required skills present (case-insensitive substring match),
// nudged by experience level: Senior profiles above 60% gain up to the 95
// cap, Entry profiles above 80% lose 5 points down to an 85 cap. Results are
// sorted by descending adjusted match.
func CalculateRoleMatches(skills []string, careerType, experienceLevel string) []RoleMatch {
	samples, ok := sampleRolesByType[careerType]
	if !ok {
		samples = sampleRolesByType["nontech"]
	}

	matches := make([]RoleMatch, 0, len(samples))
	for _, role := range samples {
		matched := 0
		for _, required := range role.requiredSkills {
			if skillSetContains(skills, required) {
				matched++
			}
		}

		pct := float64(matched) / float64(len(role.requiredSkills)) * 100

		switch {
		case experienceLevel == resume.LevelSenior && pct > 60:
			pct = math.Min(95, pct+10)
		case experienceLevel == resume.LevelEntry && pct > 80:
			pct = math.Min(85, pct-5)
		}

		matches = append(matches, RoleMatch{
			Role:          role.name,
			Match:         int(math.Round(pct)),
			MatchedSkills: matched,
			TotalRequired: len(role.requiredSkills),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Match > matches[j].Match
	})
	return matches
}

func skillSetContains(skills []string, required string) bool {
	lower := strings.ToLower(required)
	for _, skill := range skills {
		if strings.Contains(strings.ToLower(skill), lower) {
			return true
		}
	}
	return false
}
