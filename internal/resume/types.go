// Package resume implements the keyword-driven heuristic extraction pipeline
// over raw resume text and the profile-strength aggregation built on top of
// it. The behavior is defined entirely by fixed keyword lists, window lengths
// and caps; every extractor is a total function returning empty collections
// when nothing matches.
package resume

// Experience levels, ordered from least to most senior. Tie counts keep the
// earlier bucket.
const (
	LevelEntry     = "Entry"
	LevelMid       = "Mid"
	LevelSenior    = "Senior"
	LevelExecutive = "Executive"
)

// Achievements buckets raw resume lines by achievement type.
type Achievements struct {
	Technical            []string `json:"technical"`
	Awards               []string `json:"awards"`
	Publications         []string `json:"publications"`
	CertificationsEarned []string `json:"certifications_earned"`
	PerformanceMetrics   []string `json:"performance_metrics"`
}

// Project is a detailed project record assembled by the stateful line pass.
// Complexity is a three-tier rating (1 lowest) and is never downgraded once
// raised.
type Project struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Complexity   int      `json:"complexity"`
}

// Internship covers both internship and training entries. Company is set for
// internships, Provider for trainings.
type Internship struct {
	Title    string `json:"title"`
	Type     string `json:"type"`
	Duration string `json:"duration"`
	Company  string `json:"company,omitempty"`
	Provider string `json:"provider,omitempty"`
}

// WorkImpact summarizes quantifiable results found in the text. Score is
// capped at 10.
type WorkImpact struct {
	Score int      `json:"score"`
	Items []string `json:"items"`
}

// Leadership is a single leadership mention with the keyword that triggered
// it and the extracted team-size text.
type Leadership struct {
	Role  string `json:"role"`
	Type  string `json:"type"`
	Scope string `json:"scope"`
}

// DetailedAnalysis aggregates the independently-produced extraction
// fragments feeding the profile strength score.
type DetailedAnalysis struct {
	Achievements Achievements `json:"achievements"`
	Projects     []Project    `json:"projects"`
	Internships  []Internship `json:"internships"`
	WorkImpact   WorkImpact   `json:"work_impact"`
	Leadership   []Leadership `json:"leadership"`
}

// ProfileStrength is the weighted composite score of a resume with its
// qualitative level and explanatory factors.
type ProfileStrength struct {
	Score            int              `json:"score"`
	Level            string           `json:"level"`
	Factors          []string         `json:"factors"`
	DetailedAnalysis DetailedAnalysis `json:"detailed_analysis"`
}
