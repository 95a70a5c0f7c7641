// Package advice produces the career advice narrative, either through the
// Gemini API or a deterministic local template. Both strategies satisfy the
// same Provider contract; callers never learn which one ran.
package advice

import "context"

// Request carries the profile data an advice narrative is built from.
type Request struct {
	UserSkills []string
	RoleTitle  string
	Gaps       []string
	CareerType string
}

// Provider generates an advice narrative. Implementations must always return
// usable text: remote failures degrade to the local template, never to an
// error.
type Provider interface {
	Advise(ctx context.Context, req Request) string
}

const placeholderAPIKey = "your_gemini_api_key_here"

// KeyConfigured reports whether the Gemini API key looks usable. Short or
// placeholder keys select the local strategy without attempting a call.
func KeyConfigured(apiKey string) bool {
	return apiKey != "" && apiKey != placeholderAPIKey && len(apiKey) > 20
}

// ActionPlan is the two-week starter plan attached to every analysis
// response.
type ActionPlan struct {
	Week1 string `json:"week1"`
	Week2 string `json:"week2"`
}

// PlanForGaps returns the fixed starter plan. The gap list is accepted for
// interface stability; the plan text does not depend on it.
func PlanForGaps(gaps []string) ActionPlan {
	return ActionPlan{
		Week1: "Focus on foundational skills. Aim to spend 60-90 minutes daily on learning and practice.",
		Week2: "Start a mini-project to apply your new skills. This will help you build a portfolio.",
	}
}
