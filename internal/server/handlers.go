package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/nik-767/MindMateAI-Career-Advisor/internal/advice"
	"github.com/nik-767/MindMateAI-Career-Advisor/internal/insights"
	"github.com/nik-767/MindMateAI-Career-Advisor/internal/resume"
	"github.com/nik-767/MindMateAI-Career-Advisor/internal/roles"
	"github.com/nik-767/MindMateAI-Career-Advisor/internal/skills"
	"github.com/nik-767/MindMateAI-Career-Advisor/internal/util"
	"go.uber.org/zap"
)

const defaultAdvice = "Complete your assessment to get personalized AI advice."

type analyzeRequest struct {
	Mode       string          `json:"mode"`
	Domain     string          `json:"domain"`
	CareerType string          `json:"careerType"`
	Skills     json.RawMessage `json:"skills"`
}

type roleView struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Score       float64  `json:"score"`
	Skills      []string `json:"skills"`
	Missing     []string `json:"missing"`
}

type learningCategory struct {
	Category  string            `json:"category"`
	Resources []advice.Resource `json:"resources"`
}

type analyzeResponse struct {
	BestRoles    []roleView         `json:"bestRoles"`
	UserSkills   []string           `json:"userSkills"`
	SkillGaps    []string           `json:"skillGaps"`
	LearningPlan []learningCategory `json:"learningPlan"`
	ActionPlan   advice.ActionPlan  `json:"actionPlan"`
	AIAdvice     string             `json:"aiAdvice"`
	CareerType   string             `json:"careerType"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Mode == "" {
		req.Mode = "quick"
	}
	if req.CareerType == "" {
		req.CareerType = "tech"
	}

	var userSkills []string
	switch req.Mode {
	case "quick", "resume":
		var raw string
		if len(req.Skills) > 0 {
			if err := json.Unmarshal(req.Skills, &raw); err != nil {
				s.errorResponse(w, http.StatusBadRequest, "No skills provided")
				return
			}
		}
		if raw == "" {
			s.errorResponse(w, http.StatusBadRequest, "No skills provided")
			return
		}
		userSkills = skills.Normalize(raw)
	case "detailed":
		var rated []skills.Rated
		if len(req.Skills) > 0 {
			if err := json.Unmarshal(req.Skills, &rated); err != nil {
				s.errorResponse(w, http.StatusBadRequest, "No skills provided")
				return
			}
		}
		if len(rated) == 0 {
			s.errorResponse(w, http.StatusBadRequest, "No skills provided")
			return
		}
		userSkills = skills.NormalizeRated(rated)
	default:
		s.errorResponse(w, http.StatusBadRequest, "Invalid mode specified")
		return
	}

	catalog, err := s.store.List(r.Context())
	if err != nil {
		// A broken catalog reads as empty, matching the file fallback.
		s.logger.Error("list roles", zap.Error(err))
		catalog = nil
	}

	top, err := roles.Rank(userSkills, catalog, req.CareerType, req.Domain, s.logger)
	if err != nil {
		if errors.Is(err, roles.ErrNoRoles) {
			s.errorResponse(w, http.StatusNotFound,
				fmt.Sprintf("No roles found for %s careers with domain %s.", req.CareerType, req.Domain))
			return
		}
		s.logger.Error("rank roles", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to analyze skills")
		return
	}

	best := top[0]
	gaps := firstN(best.Missing, 5)

	views := make([]roleView, 0, len(top))
	for _, role := range top {
		description := role.Description
		if description == "" {
			description = "No description available"
		}
		views = append(views, roleView{
			Title:       role.Title,
			Description: description,
			Score:       role.Score,
			Skills:      firstN(role.MatchedList, 5),
			Missing:     role.Missing,
		})
	}

	plan := make([]learningCategory, 0, len(gaps))
	for _, skill := range gaps {
		plan = append(plan, learningCategory{
			Category:  util.TitleWords(skill),
			Resources: advice.ResourcesForSkill(skill),
		})
	}

	aiAdvice := s.advisor.Advise(r.Context(), advice.Request{
		UserSkills: userSkills,
		RoleTitle:  best.Title,
		Gaps:       gaps,
		CareerType: req.CareerType,
	})
	if aiAdvice == "" {
		aiAdvice = defaultAdvice
	}

	s.jsonResponse(w, http.StatusOK, analyzeResponse{
		BestRoles:    views,
		UserSkills:   userSkills,
		SkillGaps:    gaps,
		LearningPlan: plan,
		ActionPlan:   advice.PlanForGaps(gaps),
		AIAdvice:     aiAdvice,
		CareerType:   req.CareerType,
	})
}

type chatRequest struct {
	Message string `json:"message"`
	Context struct {
		CareerType string   `json:"careerType"`
		Skills     []string `json:"skills"`
	} `json:"context"`
	ChatHistory []advice.ChatTurn `json:"chatHistory"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// Conversational surface: a broken request still gets a reply.
		s.jsonResponse(w, http.StatusOK, map[string]any{
			"response":  "I apologize, but I encountered an error. Please try asking your question again.",
			"timestamp": unixNow(),
		})
		return
	}

	if req.Message == "" {
		s.errorResponse(w, http.StatusBadRequest, "No message provided")
		return
	}

	careerType := req.Context.CareerType
	if careerType == "" {
		careerType = "general"
	}

	reply := s.advisor.Chat(r.Context(), advice.ChatRequest{
		Message:    req.Message,
		CareerType: careerType,
		Skills:     req.Context.Skills,
		History:    req.ChatHistory,
	})

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"response":  reply,
		"timestamp": unixNow(),
	})
}

type resumeAnalyzeRequest struct {
	Text       string `json:"text"`
	CareerType string `json:"careerType"`
}

type resumeAnalyzeResponse struct {
	Skills              []string                     `json:"skills"`
	ExperienceLevel     string                       `json:"experienceLevel"`
	Education           []string                     `json:"education"`
	Certifications      []string                     `json:"certifications"`
	Projects            []string                     `json:"projects"`
	WorkExperience      []string                     `json:"workExperience"`
	ProfileStrength     resume.ProfileStrength       `json:"profileStrength"`
	CareerRecs          []insights.Recommendation    `json:"careerRecommendations"`
	SkillGaps           []insights.SkillGap          `json:"skillGaps"`
	RoleMatches         []insights.RoleMatch         `json:"roleMatches"`
	ActionableInsights  []insights.Insight           `json:"actionableInsights"`
	OverallAssessment   insights.Assessment          `json:"overallAssessment"`
	ProfessionalSummary insights.ProfessionalSummary `json:"professionalSummary"`
	AnalysisDate        float64                      `json:"analysisDate"`
	TotalSkills         int                          `json:"totalSkills"`
	TotalProjects       int                          `json:"totalProjects"`
	TotalInternships    int                          `json:"totalInternships"`
	ImpactScore         int                          `json:"impactScore"`
}

func (s *Server) handleResumeAnalyze(w http.ResponseWriter, r *http.Request) {
	var req resumeAnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Text == "" {
		s.errorResponse(w, http.StatusBadRequest, "No resume text provided")
		return
	}
	if req.CareerType == "" {
		req.CareerType = "tech"
	}

	extracted := resume.ExtractSkills(req.Text, req.CareerType)
	experienceLevel := resume.ExtractExperienceLevel(req.Text)
	education := resume.ExtractEducation(req.Text)
	certifications := resume.ExtractCertifications(req.Text)
	projectMentions := resume.ExtractProjectMentions(req.Text)
	workExperience := resume.ExtractWorkExperience(req.Text)

	strength := resume.AnalyzeProfileStrength(req.Text, extracted, experienceLevel, education, certifications)
	gaps := insights.IdentifySkillGaps(extracted, req.CareerType, experienceLevel)

	s.jsonResponse(w, http.StatusOK, resumeAnalyzeResponse{
		Skills:              extracted,
		ExperienceLevel:     experienceLevel,
		Education:           education,
		Certifications:      certifications,
		Projects:            projectMentions,
		WorkExperience:      workExperience,
		ProfileStrength:     strength,
		CareerRecs:          insights.Recommend(extracted, experienceLevel, req.CareerType),
		SkillGaps:           gaps,
		RoleMatches:         insights.CalculateRoleMatches(extracted, req.CareerType, experienceLevel),
		ActionableInsights:  insights.Generate(extracted, experienceLevel, req.CareerType, gaps),
		OverallAssessment:   insights.Assess(strength, extracted, experienceLevel, req.CareerType),
		ProfessionalSummary: insights.Summarize(extracted, experienceLevel, certifications, strength),
		AnalysisDate:        unixNow(),
		TotalSkills:         len(extracted),
		TotalProjects:       len(projectMentions),
		TotalInternships:    len(strength.DetailedAnalysis.Internships),
		ImpactScore:         strength.DetailedAnalysis.WorkImpact.Score,
	})
}

func (s *Server) handleAddRole(w http.ResponseWriter, r *http.Request) {
	var role roles.Definition
	if err := json.NewDecoder(r.Body).Decode(&role); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid role data")
		return
	}

	if role.Title == "" {
		s.errorResponse(w, http.StatusBadRequest, "Invalid role data")
		return
	}

	if _, err := s.store.Append(r.Context(), role); err != nil {
		s.logger.Error("add role", zap.String("title", role.Title), zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "Failed to add role")
		return
	}

	s.jsonResponse(w, http.StatusCreated, map[string]string{"message": "Role added successfully"})
}

func firstN(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}
