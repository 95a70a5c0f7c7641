package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nik-767/MindMateAI-Career-Advisor/internal/advice"
	"github.com/nik-767/MindMateAI-Career-Advisor/internal/roles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeStore struct {
	catalog  []roles.Definition
	appended []roles.Definition
	err      error
}

func (f *fakeStore) List(context.Context) ([]roles.Definition, error) {
	return f.catalog, f.err
}

func (f *fakeStore) Append(_ context.Context, role roles.Definition) (roles.Definition, error) {
	if f.err != nil {
		return roles.Definition{}, f.err
	}
	f.appended = append(f.appended, role)
	return role, nil
}

func (f *fakeStore) Close() {}

type fakeAdvisor struct {
	lastRequest advice.Request
}

func (f *fakeAdvisor) Advise(_ context.Context, req advice.Request) string {
	f.lastRequest = req
	return "stub advice"
}

func (f *fakeAdvisor) Chat(_ context.Context, req advice.ChatRequest) string {
	return "stub reply to " + req.Message
}

func testCatalog() []roles.Definition {
	return []roles.Definition{
		{
			Title:       "Data Scientist",
			Description: "Builds models",
			Tags:        []string{"data"},
			RequiredSkills: []roles.RequiredSkill{
				{Skill: "python", Weight: 2},
				{Skill: "sql"},
				{Skill: "machine learning", Weight: 2},
			},
		},
		{
			Title: "Frontend Developer",
			Tags:  []string{"web"},
			RequiredSkills: []roles.RequiredSkill{
				{Skill: "javascript", Weight: 2},
				{Skill: "react"},
			},
		},
		{
			Title: "Bank PO",
			Tags:  []string{"government", "banking"},
			RequiredSkills: []roles.RequiredSkill{
				{Skill: "quantitative aptitude", Weight: 2},
			},
		},
	}
}

func newTestServer(t *testing.T) (*Server, *fakeStore, *fakeAdvisor) {
	t.Helper()
	st := &fakeStore{catalog: testCatalog()}
	advisor := &fakeAdvisor{}
	return New(":0", st, advisor, zap.NewNop()), st, advisor
}

func postJSON(t *testing.T, s *Server, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func TestAnalyzeQuickMode(t *testing.T) {
	s, _, advisor := newTestServer(t)

	rec := postJSON(t, s, "/api/analyze", map[string]any{
		"mode":       "quick",
		"careerType": "tech",
		"skills":     "Python, JS",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp analyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.NotEmpty(t, resp.BestRoles)
	assert.LessOrEqual(t, len(resp.BestRoles), 3)
	assert.Equal(t, []string{"python", "javascript"}, resp.UserSkills)
	assert.Equal(t, "tech", resp.CareerType)

	// python weight 2 out of total 5 -> Data Scientist scores 40.
	best := resp.BestRoles[0]
	assert.Equal(t, "Frontend Developer", best.Title)
	assert.Equal(t, "No description available", best.Description)
	assert.InDelta(t, 66.67, best.Score, 0.001)

	assert.Equal(t, []string{"react"}, resp.SkillGaps)
	require.Len(t, resp.LearningPlan, 1)
	assert.Equal(t, "React", resp.LearningPlan[0].Category)
	require.NotEmpty(t, resp.LearningPlan[0].Resources)

	assert.Equal(t, "stub advice", resp.AIAdvice)
	assert.Equal(t, "Frontend Developer", advisor.lastRequest.RoleTitle)
	assert.Contains(t, resp.ActionPlan.Week1, "foundational skills")
}

func TestAnalyzeGeneralDomain(t *testing.T) {
	s, _, _ := newTestServer(t)

	rec := postJSON(t, s, "/api/analyze", map[string]any{
		"mode":       "quick",
		"careerType": "tech",
		"domain":     "general",
		"skills":     "Python, SQL, JavaScript, React, Git",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp analyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.NotEmpty(t, resp.BestRoles)
	for _, role := range resp.BestRoles {
		assert.GreaterOrEqual(t, role.Score, 0.0)
		assert.LessOrEqual(t, role.Score, 100.0)
	}
	assert.LessOrEqual(t, len(resp.SkillGaps), 5)
	assert.NotEmpty(t, resp.AIAdvice)
}

func TestAnalyzeDetailedMode(t *testing.T) {
	s, _, _ := newTestServer(t)

	rec := postJSON(t, s, "/api/analyze", map[string]any{
		"mode":       "detailed",
		"careerType": "tech",
		"skills": []map[string]any{
			{"skill": "Python", "proficiency": 4},
			{"skill": "sql", "proficiency": 0},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp analyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"python"}, resp.UserSkills)
}

func TestAnalyzeValidation(t *testing.T) {
	s, _, _ := newTestServer(t)

	rec := postJSON(t, s, "/api/analyze", map[string]any{"mode": "quick"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No skills provided")

	rec = postJSON(t, s, "/api/analyze", map[string]any{"mode": "psychic", "skills": "go"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid mode specified")
}

func TestAnalyzeNoMatchingRoles(t *testing.T) {
	s, _, _ := newTestServer(t)

	rec := postJSON(t, s, "/api/analyze", map[string]any{
		"mode":       "quick",
		"careerType": "tech",
		"domain":     "agriculture",
		"skills":     "python",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "No roles found for tech careers with domain agriculture.")
}

func TestAnalyzeStoreFailureReadsAsEmptyCatalog(t *testing.T) {
	s, st, _ := newTestServer(t)
	st.err = errors.New("connection refused")

	rec := postJSON(t, s, "/api/analyze", map[string]any{
		"mode":   "quick",
		"skills": "python",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChat(t *testing.T) {
	s, _, _ := newTestServer(t)

	rec := postJSON(t, s, "/api/chat", map[string]any{
		"message": "hello",
		"context": map[string]any{"careerType": "tech"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "stub reply to hello", resp["response"])
	assert.NotZero(t, resp["timestamp"])
}

func TestChatRequiresMessage(t *testing.T) {
	s, _, _ := newTestServer(t)

	rec := postJSON(t, s, "/api/chat", map[string]any{"message": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No message provided")
}

func TestResumeAnalyze(t *testing.T) {
	s, _, _ := newTestServer(t)

	rec := postJSON(t, s, "/api/resume/analyze", map[string]any{
		"text":       "Senior engineer with 8 years of experience in python and sql. Bachelor degree in CS. AWS certified.",
		"careerType": "tech",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp resumeAnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Contains(t, resp.Skills, "Python")
	assert.Contains(t, resp.Skills, "SQL")
	assert.Equal(t, "Senior", resp.ExperienceLevel)
	assert.Equal(t, len(resp.Skills), resp.TotalSkills)
	assert.NotEmpty(t, resp.Education)
	assert.NotEmpty(t, resp.ProfileStrength.Level)
	assert.NotZero(t, resp.AnalysisDate)
}

func TestResumeAnalyzeRequiresText(t *testing.T) {
	s, _, _ := newTestServer(t)

	rec := postJSON(t, s, "/api/resume/analyze", map[string]any{"careerType": "tech"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No resume text provided")
}

func TestAddRole(t *testing.T) {
	s, st, _ := newTestServer(t)

	rec := postJSON(t, s, "/api/add_role", map[string]any{
		"title": "Platform Engineer",
		"tags":  []string{"infra"},
		"requiredSkills": []map[string]any{
			{"skill": "kubernetes", "weight": 2},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Role added successfully")

	require.Len(t, st.appended, 1)
	assert.Equal(t, "Platform Engineer", st.appended[0].Title)
}

func TestAddRoleRequiresTitle(t *testing.T) {
	s, st, _ := newTestServer(t)

	rec := postJSON(t, s, "/api/add_role", map[string]any{"tags": []string{"infra"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, st.appended)
}

func TestHealth(t *testing.T) {
	s, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
	assert.Equal(t, Version, resp["version"])
}
