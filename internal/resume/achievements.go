package resume

import (
	"regexp"
	"strings"
)

var (
	actionVerbs  = []string{"developed", "built", "created", "implemented", "designed", "optimized"}
	subjectNouns = []string{"system", "application", "website", "database", "algorithm", "model"}
	awardWords   = []string{"award", "recognition", "honor", "medal", "prize", "winner", "champion"}
	pubWords     = []string{"published", "paper", "journal", "conference", "research"}

	metricsPattern = regexp.MustCompile(`\d+%|\$\d+|increased|improved|reduced|saved`)
)

// ExtractAchievements classifies every resume line into achievement buckets.
// A technical achievement needs both an action verb and a subject noun on the
// same line; performance metrics need a percentage, dollar amount or trend
// word.
func ExtractAchievements(text string) Achievements {
	achievements := Achievements{
		Technical:            []string{},
		Awards:               []string{},
		Publications:         []string{},
		CertificationsEarned: []string{},
		PerformanceMetrics:   []string{},
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)
		if lower == "" {
			continue
		}

		if containsAny(lower, actionVerbs) && containsAny(lower, subjectNouns) {
			achievements.Technical = append(achievements.Technical, trimmed)
		}
		if containsAny(lower, awardWords) {
			achievements.Awards = append(achievements.Awards, trimmed)
		}
		if containsAny(lower, pubWords) {
			achievements.Publications = append(achievements.Publications, trimmed)
		}
		if metricsPattern.MatchString(lower) {
			achievements.PerformanceMetrics = append(achievements.PerformanceMetrics, trimmed)
		}
	}

	return achievements
}

func containsAny(s string, words []string) bool {
	for _, word := range words {
		if strings.Contains(s, word) {
			return true
		}
	}
	return false
}
