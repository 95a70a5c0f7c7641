package advice

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// ChatTurn is one completed exchange from the conversation history.
type ChatTurn struct {
	User      string `json:"user"`
	Assistant string `json:"assistant"`
}

// ChatRequest carries the latest message plus the profile context the
// frontend keeps between turns.
type ChatRequest struct {
	Message    string
	CareerType string
	Skills     []string
	History    []ChatTurn
}

// Chatter answers conversational messages.
type Chatter interface {
	Chat(ctx context.Context, req ChatRequest) string
}

// Chat answers with a small rule table: greetings, identity and joke
// questions get canned replies, career questions get a profile-aware answer.
func (Local) Chat(_ context.Context, req ChatRequest) string {
	lower := strings.ToLower(strings.TrimSpace(req.Message))
	if lower == "" {
		return "Could you please repeat that?"
	}

	if containsAnyOf(lower, "hello", "hi", "hey") {
		return "Hello there! How can I help you with your career goals today? You can also ask me general questions."
	}
	if containsAnyOf(lower, "who are you", "what are you") {
		return "I'm CareerPath AI, a friendly assistant designed to help you with career advice, learning paths, and more."
	}
	if containsAnyOf(lower, "joke", "funny") {
		return "Why don't scientists trust atoms? Because they make up everything!"
	}

	if containsAnyOf(lower, "career", "job", "role", "path", "opportunity") {
		reply := []string{"Thinking about your career is a great step! Based on your profile:"}
		if len(req.Skills) > 0 {
			reply = append(reply, fmt.Sprintf("• Your skills in %s are a strong asset.", strings.Join(firstN(req.Skills, 3), ", ")))
		}
		if req.CareerType == "government" {
			reply = append(reply, "• For government roles, consistency in preparation is key. Focus on mastering the syllabus for your target exam (UPSC, SSC, etc.) and stay updated with current affairs.")
		} else {
			reply = append(reply, "• For tech and business roles, building a portfolio of projects or case studies is crucial. It demonstrates practical ability.")
		}
		reply = append(reply, "\nWhat specific career path are you curious about?")
		return strings.Join(reply, "\n")
	}

	return "That's an interesting question! My primary expertise is in career guidance. Can I help you with creating a learning plan, finding resources for a skill, or preparing for an interview?"
}

// Chat sends the conversation to Gemini with the last three turns of history
// for context. Failures fall back to the local rule table.
func (g *Gemini) Chat(ctx context.Context, req ChatRequest) string {
	prompt := buildChatPrompt(req)

	raw, err := g.generate(ctx, prompt, chatMaxTokens, chatTemperature)
	if err != nil {
		g.logger.Warn("gemini chat failed, using local strategy", zap.Error(err))
		return g.fallback.Chat(ctx, req)
	}

	return FormatProfessional(raw)
}

func buildChatPrompt(req ChatRequest) string {
	history := req.History
	if len(history) > 3 {
		history = history[len(history)-3:]
	}

	var historyContext strings.Builder
	for _, turn := range history {
		historyContext.WriteString(fmt.Sprintf("User: %s\nAssistant: %s\n", turn.User, turn.Assistant))
	}

	prompt := fmt.Sprintf(`You are a friendly, conversational AI assistant named CareerPath AI. Your primary goal is to be helpful and engaging. You have special expertise in career counseling.

Here is some context about the user (use it only if their question is related to careers):
- Career Focus: %s
- User Skills: %s

Recent conversation history:
%s

Now, please provide a natural and helpful response to the user's latest message: %q
If the user asks a general question (e.g., about jokes, weather, facts), answer it naturally. Do not force career advice into every response.
`, req.CareerType, strings.Join(req.Skills, ", "), historyContext.String(), req.Message)

	return prompt + professionalSuffix
}

func containsAnyOf(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
