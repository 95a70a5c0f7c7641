package advice

import (
	"context"
	"fmt"
	"strings"

	"github.com/nik-767/MindMateAI-Career-Advisor/internal/util"
)

// Local is the deterministic advice strategy used when the Gemini API is not
// configured or fails. Output depends only on the request.
type Local struct{}

type roadmap struct {
	days30 string
	days60 string
	days90 string
}

var roadmaps = map[string]roadmap{
	"government": {
		days30: "Build GS foundation (NCERTs 6-12), start daily current affairs, and schedule weekly mock tests.",
		days60: "Choose optional, begin structured notes, and practice answer writing 3x/week.",
		days90: "Full-length mocks, revise weak areas, and start interview preparation (communication, bio).",
	},
	"nontech": {
		days30: "Complete one certification aligned to target role and document achievements.",
		days60: "Execute a portfolio-worthy mini project; expand network (2 calls/week).",
		days90: "Target 10 quality applications with tailored resumes; prepare STAR stories.",
	},
	"tech": {
		days30: "Cover fundamentals and one missing technology; solve 20-30 targeted problems.",
		days60: "Build a focused project showcasing missing skills; write a concise README.",
		days90: "Refactor and deploy; prepare interview topics and mock interviews.",
	},
}

// Advise assembles the advice narrative from the user's strengths, the top
// gaps, curated resources and the career-type 30/60/90-day roadmap.
func (Local) Advise(_ context.Context, req Request) string {
	strengths := firstN(req.UserSkills, 5)
	missing := firstN(req.Gaps, 5)

	plan, ok := roadmaps[req.CareerType]
	if !ok {
		plan = roadmaps["tech"]
	}

	roleTitle := req.RoleTitle
	if roleTitle == "" {
		roleTitle = "Target Role"
	}

	var lines []string
	lines = append(lines, fmt.Sprintf("Recommended plan for %s", roleTitle))

	if len(strengths) > 0 {
		lines = append(lines, "\nStrengths to leverage:")
		for _, s := range strengths {
			lines = append(lines, "• "+util.TitleWords(s))
		}
	}

	if len(missing) > 0 {
		lines = append(lines, "\nPriority skill gaps:")
		for _, m := range missing {
			lines = append(lines, "• "+m)
		}
	}

	if len(missing) > 0 {
		lines = append(lines, "\nFocused resources:")
		for _, skill := range firstN(missing, 3) {
			links := ResourcesForSkill(skill)
			if len(links) > 0 {
				lines = append(lines, fmt.Sprintf("• %s: %s - %s", skill, links[0].Title, links[0].URL))
			}
		}
	}

	lines = append(lines,
		"\n30-60-90 day roadmap:",
		"• Days 1-30: "+plan.days30,
		"• Days 31-60: "+plan.days60,
		"• Days 61-90: "+plan.days90,
		"\nNext steps:",
		"• Block 60-90 mins daily; track progress weekly.",
		"• Build/Update resume with project outcomes and metrics.",
		"• Schedule mock interviews or peer reviews.",
	)

	return strings.Join(lines, "\n")
}

func firstN(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}
