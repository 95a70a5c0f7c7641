package skills

// Synonyms maps common skill aliases to their canonical names. The table is
// fixed at build time; lookups are done on lower-cased input and unmapped
// skills pass through unchanged.
var Synonyms = map[string]string{
	"js":       "javascript",
	"node":     "nodejs",
	"node.js":  "nodejs",
	"react.js": "react",
	"reactjs":  "react",
	"py":       "python",
	"ml":       "machine learning",
	"dl":       "deep learning",
	"sql":      "sql",
	"postgres": "postgresql",
	"gcp":      "google cloud",
	"aws":      "amazon web services",
	"html5":    "html",
	"css3":     "css",
	// Non-tech additions.
	"poli sci":  "indian polity & constitution",
	"polity":    "indian polity & constitution",
	"eco":       "economics & social development",
	"geography": "geography",
	"history":   "modern indian history",
	"sales":     "business development representative / sales",
	"pr":        "brand / pr specialist",
	"hr":        "learning & development (l&d) specialist",
}

// Canonical returns the canonical form of a single skill name. The input is
// lower-cased and trimmed before the synonym lookup.
func Canonical(skill string) string {
	s := normalizeToken(skill)
	if canonical, ok := Synonyms[s]; ok {
		return canonical
	}
	return s
}
