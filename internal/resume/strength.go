package resume

import (
	"fmt"
	"math"
)

// experienceBase maps experience levels to their base contribution. Levels
// outside the table (including Executive) take the default of 5.
var experienceBase = map[string]float64{
	LevelEntry:  10,
	LevelMid:    16,
	LevelSenior: 20,
	"Expert":    20,
}

const defaultExperienceBase = 5

// AnalyzeProfileStrength combines the extraction fragments into one weighted
// composite score. Six sub-scores are capped componentwise (skills 25,
// projects 20, experience 20, credentials 15, internships 10, leadership 10)
// so the theoretical maximum is 100.
func AnalyzeProfileStrength(text string, skills []string, experienceLevel string, education, certifications []string) ProfileStrength {
	achievements := ExtractAchievements(text)
	projects := ExtractProjects(text)
	internships := ExtractInternships(text)
	impact := AnalyzeWorkImpact(text)
	leadership := ExtractLeadership(text)

	var total float64
	var factors []string

	// Skills & technical competency (25%).
	skillScore := capAt(25, float64(len(skills))*1.5+float64(len(achievements.Technical))*2)
	total += skillScore
	factors = append(factors, fmt.Sprintf("Technical skills: %d identified", len(skills)))

	// Project portfolio (20%).
	complexitySum := 0
	for _, p := range projects {
		complexitySum += p.Complexity
	}
	projectScore := capAt(20, float64(len(projects)*4+complexitySum))
	total += projectScore
	factors = append(factors, fmt.Sprintf("Projects: %d significant projects", len(projects)))

	// Professional experience (20%).
	base, ok := experienceBase[experienceLevel]
	if !ok {
		base = defaultExperienceBase
	}
	expScore := capAt(20, base+float64(impact.Score))
	total += expScore
	factors = append(factors, fmt.Sprintf("Experience: %s level with impact score %d", experienceLevel, impact.Score))

	// Education & certifications (15%).
	eduScore := capAt(15, float64(len(education)*3+len(certifications)*2))
	total += eduScore
	factors = append(factors, fmt.Sprintf("Credentials: %d degrees, %d certifications", len(education), len(certifications)))

	// Internships & training (10%).
	internScore := capAt(10, float64(len(internships)*3))
	total += internScore
	factors = append(factors, fmt.Sprintf("Practical experience: %d internships/training", len(internships)))

	// Leadership & achievements (10%).
	leadershipScore := capAt(10, float64(len(leadership)*2+len(achievements.Awards)*3))
	total += leadershipScore
	factors = append(factors, fmt.Sprintf("Leadership: %d roles, %d awards", len(leadership), len(achievements.Awards)))

	return ProfileStrength{
		Score:   int(math.Round(total)),
		Level:   strengthLevel(total),
		Factors: factors,
		DetailedAnalysis: DetailedAnalysis{
			Achievements: achievements,
			Projects:     projects,
			Internships:  internships,
			WorkImpact:   impact,
			Leadership:   leadership,
		},
	}
}

func strengthLevel(score float64) string {
	switch {
	case score >= 85:
		return "Exceptional"
	case score >= 70:
		return "Strong"
	case score >= 55:
		return "Competitive"
	case score >= 40:
		return "Developing"
	default:
		return "Entry Level"
	}
}

func capAt(limit, value float64) float64 {
	if value > limit {
		return limit
	}
	return value
}
