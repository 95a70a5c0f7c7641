package advice

import (
	"fmt"
	"strings"
)

// Resource is a single learning resource link.
type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// resourceLinks maps canonical lower-case skill names to curated learning
// resources. Skills without an entry get the generic course-search fallback.
var resourceLinks = map[string][]Resource{
	"python": {
		{Title: "Google: Crash Course on Python", URL: "https://grow.google/certificates/python/"},
		{Title: "freeCodeCamp: Python", URL: "https://www.freecodecamp.org/learn/"},
	},
	"sql": {
		{Title: "Mode SQL Tutorial", URL: "https://mode.com/sql-tutorial/"},
		{Title: "Kaggle: Intro to SQL", URL: "https://www.kaggle.com/learn/intro-to-sql"},
	},
	"javascript": {
		{Title: "MDN Web Docs: JavaScript Guide", URL: "https://developer.mozilla.org/docs/Web/JavaScript/Guide"},
	},
	"react": {
		{Title: "React Official Docs (Tutorial)", URL: "https://react.dev/learn"},
	},
	"google cloud": {
		{Title: "Google Cloud Skills Boost", URL: "https://www.cloudskillsboost.google/"},
	},
	// Civil services and non-tech additions.
	"indian polity & constitution": {
		{Title: "Vision IAS: Indian Polity Notes", URL: "https://visionias.in/resources/"},
		{Title: "Book: Indian Polity by M. Laxmikanth", URL: "https://www.amazon.in/Indian-Polity-M-Laxmikanth/dp/9352603630"},
	},
	"current affairs": {
		{Title: "The Hindu - Newspaper", URL: "https://www.thehindu.com/"},
		{Title: "Insights on India - Daily Current Affairs", URL: "https://www.insightsonindia.com/current-affairs/"},
	},
	"financial modeling": {
		{Title: "Coursera: Business and Financial Modeling", URL: "https://www.coursera.org/specializations/wharton-business-financial-modeling"},
	},
	"brand strategy": {
		{Title: "HubSpot Academy: Brand Building", URL: "https://academy.hubspot.com/courses/brand-building"},
	},
	"general studies": {
		{Title: "NCERT Books Online", URL: "https://ncert.nic.in/textbook.php"},
		{Title: "Vision IAS: General Studies Notes", URL: "https://visionias.in/resources/"},
	},
	"banking awareness": {
		{Title: "Bankersadda: Banking Awareness", URL: "https://www.bankersadda.com/"},
		{Title: "Oliveboard: Banking Knowledge", URL: "https://www.oliveboard.in/"},
	},
	"quantitative aptitude": {
		{Title: "IndiaBix: Quantitative Aptitude", URL: "https://www.indiabix.com/aptitude/questions-and-answers/"},
		{Title: "Khan Academy: Math", URL: "https://www.khanacademy.org/math"},
	},
}

// genericCourseSearchURL is the fallback destination for skills without
// curated links.
const genericCourseSearchURL = "https://www.coursera.org/"

// ResourcesForSkill returns the curated learning resources for a skill, or a
// single generic course-search entry naming the skill verbatim.
func ResourcesForSkill(skill string) []Resource {
	if links, ok := resourceLinks[strings.ToLower(skill)]; ok {
		return links
	}
	return []Resource{{
		Title: fmt.Sprintf("Search for %q courses on Coursera/Udemy", skill),
		URL:   genericCourseSearchURL,
	}}
}
