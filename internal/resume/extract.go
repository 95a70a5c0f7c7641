package resume

import "strings"

// Career-type specific skill vocabularies. A skill is present when its
// lower-cased form appears anywhere in the lower-cased resume text.
var techSkills = []string{
	"Python", "JavaScript", "Java", "C++", "React", "Vue", "Angular", "Node.js",
	"SQL", "MongoDB", "PostgreSQL", "AWS", "Docker", "Kubernetes", "Git",
	"Machine Learning", "Data Science", "AI", "TensorFlow", "PyTorch",
	"HTML", "CSS", "Bootstrap", "jQuery", "Express", "Django", "Flask",
	"TypeScript", "Next.js", "Vue.js", "Svelte", "Laravel", "Spring Boot",
	"Redis", "Elasticsearch", "GraphQL", "REST API", "Microservices",
}

var nonTechSkills = []string{
	"Project Management", "Strategic Planning", "Business Analysis", "Financial Analysis",
	"Digital Marketing", "SEO", "Social Media", "Content Marketing", "Sales",
	"Excel", "QuickBooks", "SAP", "CRM", "Market Research", "Brand Management",
	"Patient Care", "Healthcare Administration", "Medical Coding",
	"Curriculum Development", "Instructional Design", "E-learning",
	"Recruitment", "HR Analytics", "Performance Management",
	"Leadership", "Communication", "Problem Solving", "Team Management",
	"Budget Management", "Risk Assessment", "Quality Assurance",
}

var governmentSkills = []string{
	"Indian History", "Geography", "Polity", "Economics", "Current Affairs",
	"Mathematics", "Logical Reasoning", "Data Interpretation",
	"English Grammar", "Essay Writing", "Public Speaking",
	"Public Administration", "Policy Making", "Governance",
	"Indian Constitution", "Legal Reasoning", "Administrative Law",
	"MS Office", "Data Entry", "Digital Literacy",
}

var softSkills = []string{
	"Communication", "Leadership", "Problem Solving", "Teamwork", "Time Management",
}

// ExtractSkills scans the resume text for known skills of the given career
// type plus the common soft skills. The result keeps vocabulary order and is
// deduplicated.
func ExtractSkills(text, careerType string) []string {
	var vocabulary []string
	switch careerType {
	case "nontech":
		vocabulary = nonTechSkills
	case "government":
		vocabulary = governmentSkills
	default:
		vocabulary = techSkills
	}
	vocabulary = append(append([]string{}, vocabulary...), softSkills...)

	lower := strings.ToLower(text)
	var found []string
	seen := make(map[string]struct{})

	for _, skill := range vocabulary {
		if _, ok := seen[skill]; ok {
			continue
		}
		if strings.Contains(lower, strings.ToLower(skill)) {
			found = append(found, skill)
			seen[skill] = struct{}{}
		}
	}

	return found
}

// experienceBuckets is the fixed keyword enumeration for the experience-level
// vote. Order matters: a later bucket must have a strictly higher count to
// win.
var experienceBuckets = []struct {
	level    string
	keywords []string
}{
	{LevelEntry, []string{"entry", "junior", "intern", "graduate", "new", "recent", "fresher"}},
	{LevelMid, []string{"mid", "intermediate", "2-3 years", "3-4 years", "experienced", "2 years", "3 years"}},
	{LevelSenior, []string{"senior", "lead", "principal", "5+ years", "expert", "architect", "5 years", "6 years"}},
	{LevelExecutive, []string{"director", "manager", "head", "vp", "cto", "ceo", "executive"}},
}

// ExtractExperienceLevel classifies the resume into one of the four
// experience levels by counting keyword hits per bucket. All-zero counts
// default to Entry.
func ExtractExperienceLevel(text string) string {
	lower := strings.ToLower(text)

	level := LevelEntry
	maxCount := 0

	for _, bucket := range experienceBuckets {
		count := 0
		for _, keyword := range bucket.keywords {
			if strings.Contains(lower, keyword) {
				count++
			}
		}
		if count > maxCount {
			maxCount = count
			level = bucket.level
		}
	}

	return level
}
