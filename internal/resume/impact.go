package resume

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	percentPattern = regexp.MustCompile(`(\d+)%`)
	moneyPattern   = regexp.MustCompile(`\$(\d+(?:,\d+)*)`)

	scaleWords = []string{"million", "thousand", "users", "customers", "team of", "managed"}
)

// AnalyzeWorkImpact scores quantifiable results found in the text: +2 per
// percentage above 10, +3 per dollar amount, +1 per scale word present. The
// score is capped at 10 and at most 5 descriptors are kept.
func AnalyzeWorkImpact(text string) WorkImpact {
	score := 0
	items := []string{}

	for _, match := range percentPattern.FindAllStringSubmatch(text, -1) {
		if n, err := strconv.Atoi(match[1]); err == nil && n > 10 {
			score += 2
			items = append(items, match[1]+"% improvement/increase")
		}
	}

	for _, match := range moneyPattern.FindAllStringSubmatch(text, -1) {
		score += 3
		items = append(items, "$"+match[1]+" financial impact")
	}

	lower := strings.ToLower(text)
	for _, word := range scaleWords {
		if strings.Contains(lower, word) {
			score++
			items = append(items, "Scale: "+word)
		}
	}

	if score > 10 {
		score = 10
	}
	if len(items) > 5 {
		items = items[:5]
	}

	return WorkImpact{Score: score, Items: items}
}
