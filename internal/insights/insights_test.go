package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nik-767/MindMateAI-Career-Advisor/internal/resume"
)

func TestRecommendTechRules(t *testing.T) {
	got := Recommend([]string{"Python", "Machine Learning", "AWS"}, resume.LevelSenior, "tech")

	require.Len(t, got, 2)
	assert.Equal(t, "Data Scientist", got[0].Role)
	assert.Equal(t, 85, got[0].Match)
	assert.Equal(t, "DevOps Engineer", got[1].Role)
	assert.Equal(t, 75, got[1].Match)
}

func TestRecommendEntryLevelScoresLower(t *testing.T) {
	got := Recommend([]string{"JavaScript"}, resume.LevelEntry, "tech")

	require.Len(t, got, 1)
	assert.Equal(t, "Full Stack Developer", got[0].Role)
	assert.Equal(t, 65, got[0].Match)
}

func TestRecommendFallback(t *testing.T) {
	got := Recommend(nil, resume.LevelEntry, "nontech")

	require.Len(t, got, 1)
	assert.Equal(t, "Nontech Specialist", got[0].Role)
	assert.Equal(t, 60, got[0].Match)
}

func TestRecommendCapsAtThree(t *testing.T) {
	skills := []string{"Python", "JavaScript", "AWS", "React", "Docker"}

	got := Recommend(skills, resume.LevelMid, "tech")

	assert.Len(t, got, 3)
}

func TestIdentifySkillGapsTechEssentials(t *testing.T) {
	got := IdentifySkillGaps([]string{"Git", "SQL"}, "tech", resume.LevelEntry)

	require.Len(t, got, 2)
	assert.Equal(t, "Problem Solving", got[0].Skill)
	assert.Equal(t, "High", got[0].Priority)
	assert.Equal(t, "System Design", got[1].Skill)
}

func TestIdentifySkillGapsAdvancedForSeniors(t *testing.T) {
	got := IdentifySkillGaps([]string{"Git", "SQL", "Problem Solving", "System Design", "AWS"}, "tech", resume.LevelSenior)

	require.NotEmpty(t, got)
	for _, gap := range got {
		assert.Equal(t, "Medium", gap.Priority)
	}
	assert.LessOrEqual(t, len(got), 5)
}

func TestIdentifySkillGapsCap(t *testing.T) {
	got := IdentifySkillGaps(nil, "tech", resume.LevelMid)

	// 4 essentials + 4 advanced, capped to 5.
	assert.Len(t, got, 5)
}

func TestCalculateRoleMatchesSubstring(t *testing.T) {
	got := CalculateRoleMatches([]string{"Python Programming", "SQL", "Data Analytics"}, "tech", resume.LevelMid)

	require.Len(t, got, 3)
	// Sorted descending by match; Data Analyst hits all three of its
	// required skills.
	assert.Equal(t, "Data Analyst", got[0].Role)
	assert.Equal(t, 100, got[0].Match)
	assert.Equal(t, 3, got[0].MatchedSkills)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i].Match, got[i-1].Match)
	}
}

func TestCalculateRoleMatchesSeniorBoost(t *testing.T) {
	got := CalculateRoleMatches([]string{"SQL", "Python"}, "tech", resume.LevelSenior)

	for _, match := range got {
		if match.Role == "Data Analyst" {
			// 2/3 is about 67%, boosted by 10 for seniors.
			assert.Equal(t, 77, match.Match)
		}
	}
}

func TestCalculateRoleMatchesEntryReduction(t *testing.T) {
	got := CalculateRoleMatches([]string{"SQL", "Python", "Analytics"}, "tech", resume.LevelEntry)

	for _, match := range got {
		if match.Role == "Data Analyst" {
			// Full match reduced by 5 for entry-level profiles.
			assert.Equal(t, 85, match.Match)
		}
	}
}

func TestGenerateInsights(t *testing.T) {
	gaps := []SkillGap{
		{Skill: "Git", Priority: "High"},
		{Skill: "SQL", Priority: "High"},
		{Skill: "AWS", Priority: "Medium"},
	}

	got := Generate([]string{"Python"}, resume.LevelEntry, "tech", gaps)

	require.Len(t, got, 3)
	assert.Equal(t, "Skill Development", got[0].Category)
	assert.Contains(t, got[0].Insight, "Git, SQL")
	assert.NotContains(t, got[0].Insight, "AWS")
	assert.Equal(t, "Experience Building", got[1].Category)
	assert.Equal(t, "Technical Growth", got[2].Category)
}

func TestAssess(t *testing.T) {
	strength := resume.ProfileStrength{Score: 75, Level: "Strong"}
	skills := make([]string, 12)
	for i := range skills {
		skills[i] = "skill"
	}

	got := Assess(strength, skills, resume.LevelSenior, "tech")

	assert.Equal(t, "Your profile shows strong potential in tech careers.", got.Summary)
	assert.Contains(t, got.Strengths, "Diverse skill set across multiple domains")
	assert.Contains(t, got.Strengths, "Well-rounded professional profile")
	assert.Empty(t, got.AreasForImprovement)
	assert.Len(t, got.NextSteps, 2)
}

func TestSummarize(t *testing.T) {
	strength := resume.ProfileStrength{
		DetailedAnalysis: resume.DetailedAnalysis{
			Projects: []resume.Project{
				{Title: "A", Description: "machine learning pipeline"},
				{Title: "B"},
				{Title: "C"},
			},
			WorkImpact: resume.WorkImpact{Score: 6, Items: []string{"40% improvement/increase"}},
			Leadership: []resume.Leadership{{Role: "Team lead"}},
			Achievements: resume.Achievements{
				Technical: []string{"built a system"},
				Awards:    []string{"hackathon winner"},
			},
		},
	}

	got := Summarize([]string{"Python"}, resume.LevelMid, []string{"AWS SA"}, strength)

	assert.Equal(t, "Technical Specialist - Data Science/AI Focus", got.ProfileType)
	assert.Equal(t, "Mid-level Professional - Growth trajectory", got.CareerStage)
	assert.Contains(t, got.KeyStrengths, "Demonstrated measurable impact")
	assert.Contains(t, got.KeyStrengths, "Leadership experience")
	assert.Contains(t, got.StandoutAchievements, "built a system")
	assert.Contains(t, got.ImprovementRecommendations, "Expand technical skill portfolio - aim for 8-10 core skills")
	assert.LessOrEqual(t, len(got.StandoutAchievements), 4)
}
