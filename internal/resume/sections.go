package resume

import (
	"strings"
	"unicode/utf8"
)

// Bounded-window section extraction: for each keyword present in the text,
// capture a fixed-length window starting at its first occurrence, truncated
// at the first line break. Windows and caps differ per section.

var educationKeywords = []string{
	"bachelor", "master", "phd", "degree", "university", "college",
	"b.tech", "m.tech", "mba", "bca", "mca",
}

var certificationKeywords = []string{
	"certified", "certification", "certificate", "aws", "azure",
	"google cloud", "cisco", "microsoft",
}

var projectKeywords = []string{"project", "built", "developed", "created", "implemented"}

var workKeywords = []string{"experience", "worked", "employed", "position", "role", "company"}

// ExtractEducation captures up to 3 education fragments (100-char windows).
func ExtractEducation(text string) []string {
	return captureWindows(text, educationKeywords, 100, 3)
}

// ExtractCertifications captures up to 5 certification fragments (80-char
// windows).
func ExtractCertifications(text string) []string {
	return captureWindows(text, certificationKeywords, 80, 5)
}

// ExtractProjectMentions captures up to 4 project fragments (120-char
// windows). ExtractProjects produces the richer structured records.
func ExtractProjectMentions(text string) []string {
	return captureWindows(text, projectKeywords, 120, 4)
}

// ExtractWorkExperience captures up to 3 work-experience fragments (100-char
// windows).
func ExtractWorkExperience(text string) []string {
	return captureWindows(text, workKeywords, 100, 3)
}

func captureWindows(text string, keywords []string, window, limit int) []string {
	lower := strings.ToLower(text)

	var out []string
	seen := make(map[string]struct{})

	for _, keyword := range keywords {
		start := strings.Index(lower, keyword)
		if start < 0 {
			continue
		}

		end := start + window
		if end > len(text) {
			end = len(text)
		}
		// Keep the cut on a rune boundary so the fragment stays valid UTF-8.
		for end > start && end < len(text) && !utf8.RuneStart(text[end]) {
			end--
		}
		segment := text[start:end]
		if nl := strings.IndexByte(segment, '\n'); nl >= 0 {
			segment = segment[:nl]
		}

		if _, ok := seen[segment]; ok {
			continue
		}
		seen[segment] = struct{}{}
		out = append(out, segment)
	}

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
