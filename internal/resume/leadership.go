package resume

import "strings"

var leadershipKeywords = []string{
	"lead", "manager", "supervisor", "coordinator", "head", "director",
	"president", "captain", "mentor", "team lead", "project manager",
}

// ExtractLeadership collects leadership mentions line by line. The first
// matching keyword classifies the line; the team-size pattern utility fills
// the scope.
func ExtractLeadership(text string) []Leadership {
	var out []Leadership

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)
		if lower == "" {
			continue
		}

		for _, keyword := range leadershipKeywords {
			if strings.Contains(lower, keyword) {
				out = append(out, Leadership{
					Role:  trimmed,
					Type:  keyword,
					Scope: extractTeamSize(trimmed),
				})
				break
			}
		}
	}

	return out
}
