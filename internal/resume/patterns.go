package resume

import (
	"regexp"
	"strings"
	"unicode"
)

// Text-pattern utilities invoked by other extractors. Each returns a fixed
// placeholder when no pattern matches.

var durationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{4}\s*-\s*\d{4}`),
	regexp.MustCompile(`\d+\s+months?`),
	regexp.MustCompile(`\d+\s+years?`),
	regexp.MustCompile(`[A-Za-z]{3}\s+\d{4}\s*-\s*[A-Za-z]{3}\s+\d{4}`),
}

func extractDuration(line string) string {
	for _, pattern := range durationPatterns {
		if match := pattern.FindString(line); match != "" {
			return match
		}
	}
	return "Duration not specified"
}

var organizationStopWords = map[string]struct{}{
	"The": {}, "And": {}, "Of": {}, "In": {}, "At": {},
}

// extractOrganization guesses a company/provider name from capitalized words
// on the line, keeping at most the first two candidates.
func extractOrganization(line string) string {
	var candidates []string

	for _, word := range strings.Fields(line) {
		runes := []rune(word)
		if len(runes) <= 2 || !unicode.IsUpper(runes[0]) {
			continue
		}
		if _, stop := organizationStopWords[word]; stop {
			continue
		}
		candidates = append(candidates, word)
		if len(candidates) == 2 {
			break
		}
	}

	if len(candidates) == 0 {
		return "Company not specified"
	}
	return strings.Join(candidates, " ")
}

var teamSizePatterns = []*regexp.Regexp{
	regexp.MustCompile(`team of (\d+)`),
	regexp.MustCompile(`(\d+) members?`),
	regexp.MustCompile(`(\d+)-person team`),
	regexp.MustCompile(`managed (\d+)`),
}

func extractTeamSize(line string) string {
	lower := strings.ToLower(line)
	for _, pattern := range teamSizePatterns {
		if match := pattern.FindStringSubmatch(lower); match != nil {
			return match[1] + " people"
		}
	}
	return "Team size not specified"
}
