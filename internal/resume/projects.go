package resume

import "strings"

// projectHeaderWords start a new project record when found on a line shorter
// than 100 characters.
var projectHeaderWords = []string{"project", "built", "developed"}

// technologyNames maps lower-case technology keywords to their display form.
var technologyNames = []struct {
	keyword string
	display string
}{
	{"python", "Python"},
	{"javascript", "Javascript"},
	{"react", "React"},
	{"node", "Node"},
	{"sql", "Sql"},
	{"aws", "Aws"},
	{"docker", "Docker"},
	{"java", "Java"},
	{"c++", "C++"},
}

var (
	complexityHigh = []string{"machine learning", "ai", "distributed", "microservices", "cloud", "scalable"}
	complexityMid  = []string{"database", "api", "full stack"}
)

// ExtractProjects runs a stateful single pass over the resume lines and
// assembles up to 5 structured project records with technology lists and a
// three-tier complexity rating.
func ExtractProjects(text string) []Project {
	var projects []Project
	var current *Project

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)

		if containsAny(lower, projectHeaderWords) && len(trimmed) < 100 {
			if current != nil {
				projects = append(projects, *current)
			}
			current = &Project{
				Title:        trimmed,
				Technologies: []string{},
				Complexity:   1,
			}
			continue
		}

		if current == nil || trimmed == "" {
			continue
		}

		current.Description += " " + trimmed

		for _, tech := range technologyNames {
			if strings.Contains(lower, tech.keyword) && !containsString(current.Technologies, tech.display) {
				current.Technologies = append(current.Technologies, tech.display)
			}
		}

		// Complexity only ever moves up.
		if containsAny(lower, complexityHigh) {
			current.Complexity = 3
		} else if containsAny(lower, complexityMid) && current.Complexity < 2 {
			current.Complexity = 2
		}
	}

	if current != nil {
		projects = append(projects, *current)
	}

	if len(projects) > 5 {
		projects = projects[:5]
	}
	return projects
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
