// Package roles defines the career role catalog types and the weighted
// skill-matching engine that ranks roles against a user's skill set.
package roles

// RequiredSkill is a single requirement of a role. A non-positive weight is
// treated as the default weight of 1 during scoring.
type RequiredSkill struct {
	Skill  string  `json:"skill"`
	Weight float64 `json:"weight,omitempty"`
}

// Definition is one catalog entry. Tags drive career-type and domain
// filtering; RequiredSkills drive scoring. Definitions are read-only to the
// scoring code during a request.
type Definition struct {
	ID             string          `json:"id,omitempty"`
	Title          string          `json:"title"`
	Description    string          `json:"description,omitempty"`
	Tags           []string        `json:"tags,omitempty"`
	RequiredSkills []RequiredSkill `json:"requiredSkills,omitempty"`
}

// HasTag reports whether the role carries the exact tag.
func (d *Definition) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ScoreResult is the outcome of scoring one role against a skill set. Matched
// and missing skills keep the role's declared order and original spelling.
type ScoreResult struct {
	Score       float64  `json:"score"`
	MatchedList []string `json:"matchedList"`
	Missing     []string `json:"missing"`
}

// ScoredRole pairs a catalog entry with its score for ranking.
type ScoredRole struct {
	Definition
	ScoreResult
}
