package roles

import (
	"math"

	"github.com/nik-767/MindMateAI-Career-Advisor/internal/skills"
)

// Score computes the weighted match of a normalized skill set against one
// role. Required skill names are canonicalized through the synonym table
// before comparison. A role with no required skills (or zero total weight)
// scores 0, not 100.
func Score(userSkills []string, role *Definition) ScoreResult {
	userSet := make(map[string]struct{}, len(userSkills))
	for _, s := range userSkills {
		userSet[s] = struct{}{}
	}

	var totalWeight, matchedWeight float64
	matched := []string{}
	missing := []string{}

	for _, req := range role.RequiredSkills {
		weight := req.Weight
		if weight <= 0 {
			weight = 1
		}
		totalWeight += weight

		if _, ok := userSet[skills.Canonical(req.Skill)]; ok {
			matchedWeight += weight
			matched = append(matched, req.Skill)
		} else {
			missing = append(missing, req.Skill)
		}
	}

	score := 0.0
	if totalWeight > 0 {
		score = round2(matchedWeight / totalWeight * 100)
	}

	return ScoreResult{
		Score:       score,
		MatchedList: matched,
		Missing:     missing,
	}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
