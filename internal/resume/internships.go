package resume

import "strings"

var (
	internshipWords = []string{"intern", "trainee", "apprentice", "co-op", "summer program"}
	trainingWords   = []string{"training", "workshop", "bootcamp", "course completed"}
)

// ExtractInternships collects internship and training mentions line by line,
// attaching the duration and organization extracted from the same line.
func ExtractInternships(text string) []Internship {
	var out []Internship

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)
		if lower == "" {
			continue
		}

		switch {
		case containsAny(lower, internshipWords):
			out = append(out, Internship{
				Title:    trimmed,
				Type:     "internship",
				Duration: extractDuration(trimmed),
				Company:  extractOrganization(trimmed),
			})
		case containsAny(lower, trainingWords):
			out = append(out, Internship{
				Title:    trimmed,
				Type:     "training",
				Duration: extractDuration(trimmed),
				Provider: extractOrganization(trimmed),
			})
		}
	}

	return out
}
