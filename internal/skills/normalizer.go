// Package skills canonicalizes free-text skill lists into comparable sets.
package skills

import "strings"

// Rated is a single entry of the detailed assessment mode: a skill name with a
// self-reported proficiency. Entries with a zero proficiency are ignored.
type Rated struct {
	Skill       string  `json:"skill"`
	Proficiency float64 `json:"proficiency"`
}

// Normalize splits a comma-separated skill string into a deduplicated list of
// canonical lower-case skill tokens. Malformed input degrades to an empty
// list; it is up to the caller to treat that as a validation failure.
func Normalize(raw string) []string {
	var out []string
	seen := make(map[string]struct{})

	for _, part := range strings.Split(strings.ToLower(raw), ",") {
		token := normalizeToken(part)
		if token == "" {
			continue
		}
		if canonical, ok := Synonyms[token]; ok {
			token = canonical
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}

	return out
}

// NormalizeRated converts detailed-mode entries into the same canonical token
// list produced by Normalize, keeping only skills with a positive proficiency.
func NormalizeRated(entries []Rated) []string {
	var out []string
	seen := make(map[string]struct{})

	for _, entry := range entries {
		if entry.Proficiency <= 0 {
			continue
		}
		token := Canonical(entry.Skill)
		if token == "" {
			continue
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}

	return out
}

// Contains reports whether the canonical form of skill is present in the
// normalized set.
func Contains(set []string, skill string) bool {
	canonical := Canonical(skill)
	for _, s := range set {
		if s == canonical {
			return true
		}
	}
	return false
}

func normalizeToken(s string) string {
	return strings.TrimSpace(strings.ToLower(s))
}
