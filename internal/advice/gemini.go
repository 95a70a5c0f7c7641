package advice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	_ "embed"

	"github.com/nik-767/MindMateAI-Career-Advisor/internal/util"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

const (
	defaultModel = "gemini-1.5-flash-latest"

	adviceMaxTokens   = 500
	adviceTemperature = 0.6
	chatMaxTokens     = 300
	chatTemperature   = 0.8

	requestTimeout = 30 * time.Second

	defaultMaxLogLength = 200
)

//go:embed prompt.md
var advicePromptTemplate string

// professionalSuffix is appended to every outgoing prompt so responses come
// back in a consistent, structured shape.
const professionalSuffix = `

Please provide a professional, well-structured response that:
- Uses clear, concise language
- Provides specific, actionable advice
- Includes relevant examples where appropriate
- Maintains a helpful and encouraging tone
- Formats information in an organized manner
- Avoids unnecessary filler words or phrases`

// Generator wraps the Google GenAI client to provide simple prompt-based interactions.
type Generator struct {
	client    *genai.Client
	modelName string
}

// NewGenerator creates a new Generator configured for the Gemini API backend.
func NewGenerator(ctx context.Context, apiKey, model string) (*Generator, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	return &Generator{client: client, modelName: model}, nil
}

// GenerateContent sends the prompt to Gemini and returns the first textual response.
func (g *Generator) GenerateContent(ctx context.Context, prompt string, maxTokens int32, temperature float32) (string, error) {
	if g == nil || g.client == nil {
		return "", errors.New("gemini generator is not initialized")
	}

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("prompt must not be empty")
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(temperature),
		TopK:            genai.Ptr[float32](40),
		TopP:            genai.Ptr[float32](0.95),
		MaxOutputTokens: maxTokens,
		CandidateCount:  1,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", errors.New("gemini api returned empty response")
	}

	return output, nil
}

func (g *Generator) Model() string {
	if g == nil {
		return ""
	}
	return g.modelName
}

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string, maxTokens int32, temperature float32) (string, error)
}

// Gemini produces advice and chat replies through the Gemini API, falling
// back to the deterministic Local strategy whenever the API call fails.
type Gemini struct {
	generator contentGenerator
	fallback  Local
	logger    *zap.Logger
	maxLogLen int
}

func NewGemini(generator contentGenerator, logger *zap.Logger, maxLogLength int) *Gemini {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Gemini{
		generator: generator,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

// Advise builds the career-coach prompt for the request and asks Gemini for a
// personalized plan. Any failure yields the local plan instead of an error.
func (g *Gemini) Advise(ctx context.Context, req Request) string {
	prompt := buildAdvicePrompt(req)

	raw, err := g.generate(ctx, prompt, adviceMaxTokens, adviceTemperature)
	if err != nil {
		g.logger.Warn("gemini advice failed, using local strategy", zap.Error(err))
		return g.fallback.Advise(ctx, req)
	}

	return FormatProfessional(raw)
}

func buildAdvicePrompt(req Request) string {
	skills := "Not specified"
	if len(req.UserSkills) > 0 {
		skills = strings.Join(req.UserSkills, ", ")
	}
	gaps := "None"
	if len(req.Gaps) > 0 {
		gaps = strings.Join(req.Gaps, ", ")
	}

	prompt := strings.ReplaceAll(advicePromptTemplate, "{{USER_SKILLS}}", skills)
	prompt = strings.ReplaceAll(prompt, "{{ROLE_TITLE}}", req.RoleTitle)
	prompt = strings.ReplaceAll(prompt, "{{GAPS}}", gaps)
	return prompt + professionalSuffix
}

func (g *Gemini) generate(ctx context.Context, prompt string, maxTokens int32, temperature float32) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	g.logger.Debug("gemini generate content request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", util.TruncateForLog(prompt, g.maxLogLen)),
	)

	raw, err := g.generator.GenerateContent(ctx, prompt, maxTokens, temperature)
	if err != nil {
		return "", err
	}

	g.logger.Debug("gemini generate content response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", util.TruncateForLog(raw, g.maxLogLen)),
	)

	return raw, nil
}
