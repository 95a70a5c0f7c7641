package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nik-767/MindMateAI-Career-Advisor/internal/skills"
)

func TestScoreFullMatch(t *testing.T) {
	role := &Definition{
		Title: "Backend Developer",
		RequiredSkills: []RequiredSkill{
			{Skill: "Python", Weight: 2},
			{Skill: "SQL"},
			{Skill: "Git"},
		},
	}

	result := Score(skills.Normalize("python, sql, git"), role)

	assert.Equal(t, 100.0, result.Score)
	assert.Equal(t, []string{"Python", "SQL", "Git"}, result.MatchedList)
	assert.Empty(t, result.Missing)
}

func TestScoreWeightedPartialMatch(t *testing.T) {
	role := &Definition{
		Title: "Data Analyst",
		RequiredSkills: []RequiredSkill{
			{Skill: "Python", Weight: 3},
			{Skill: "SQL", Weight: 2},
			{Skill: "Tableau", Weight: 1},
		},
	}

	result := Score(skills.Normalize("python"), role)

	// 3 out of 6 total weight.
	assert.Equal(t, 50.0, result.Score)
	assert.Equal(t, []string{"Python"}, result.MatchedList)
	assert.Equal(t, []string{"SQL", "Tableau"}, result.Missing)
}

func TestScoreResolvesRequiredSkillSynonyms(t *testing.T) {
	role := &Definition{
		Title: "Frontend Developer",
		RequiredSkills: []RequiredSkill{
			{Skill: "JS"},
			{Skill: "React.js"},
		},
	}

	result := Score(skills.Normalize("javascript, react"), role)

	assert.Equal(t, 100.0, result.Score)
	// Matched skills keep the role's original spelling.
	assert.Equal(t, []string{"JS", "React.js"}, result.MatchedList)
}

func TestScoreNoRequiredSkills(t *testing.T) {
	role := &Definition{Title: "Generalist"}

	result := Score(skills.Normalize("python, sql"), role)

	assert.Equal(t, 0.0, result.Score)
	assert.Empty(t, result.MatchedList)
	assert.Empty(t, result.Missing)
}

func TestScoreBounds(t *testing.T) {
	roles := []Definition{
		{Title: "A", RequiredSkills: []RequiredSkill{{Skill: "x", Weight: 0.1}, {Skill: "y", Weight: 7}}},
		{Title: "B", RequiredSkills: []RequiredSkill{{Skill: "python"}}},
		{Title: "C"},
	}
	skillSets := [][]string{
		nil,
		skills.Normalize("python"),
		skills.Normalize("x, y, python"),
	}

	for i := range roles {
		for _, set := range skillSets {
			result := Score(set, &roles[i])
			require.GreaterOrEqual(t, result.Score, 0.0)
			require.LessOrEqual(t, result.Score, 100.0)
		}
	}
}

func TestScoreRoundsToTwoDecimals(t *testing.T) {
	role := &Definition{
		Title: "Three Skills",
		RequiredSkills: []RequiredSkill{
			{Skill: "a"}, {Skill: "b"}, {Skill: "c"},
		},
	}

	result := Score([]string{"a"}, role)

	assert.Equal(t, 33.33, result.Score)
}
