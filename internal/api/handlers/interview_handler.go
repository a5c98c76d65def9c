package handlers

import (
	"fmt"
	"math"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hbrar/intervu/internal/models"
	"github.com/hbrar/intervu/internal/services"
	"github.com/hbrar/intervu/internal/session"
)

// InterviewHandler drives the per-client flow: start form, one question per
// page, then the report. All state rides in the signed session cookie.
type InterviewHandler struct {
	orch     *services.Orchestrator
	sessions *session.Codec
	log      *logrus.Logger
}

func NewInterviewHandler(orch *services.Orchestrator, sessions *session.Codec, log *logrus.Logger) *InterviewHandler {
	return &InterviewHandler{orch: orch, sessions: sessions, log: log}
}

// Index resets the session and renders the start form.
func (h *InterviewHandler) Index(c *gin.Context) {
	h.sessions.Clear(c)
	c.HTML(http.StatusOK, "index.html", nil)
}

func (h *InterviewHandler) Begin(c *gin.Context) {
	company := strings.TrimSpace(c.PostForm("company"))
	role := strings.TrimSpace(c.PostForm("role"))

	if company == "" || role == "" {
		c.Redirect(http.StatusFound, "/")
		return
	}

	questions := h.generateQuestions(c, company, role)

	iv := &models.Interview{
		Company:   company,
		Role:      role,
		Questions: questions,
		Current:   0,
		Answers:   []models.AnswerRecord{},
	}
	if err := h.sessions.Write(c, iv); err != nil {
		h.log.WithError(err).Error("failed to write session")
		c.Redirect(http.StatusFound, "/")
		return
	}

	c.Redirect(http.StatusFound, "/interview")
}

func (h *InterviewHandler) Show(c *gin.Context) {
	iv := h.sessions.Read(c)
	if iv == nil || len(iv.Questions) == 0 {
		c.Redirect(http.StatusFound, "/")
		return
	}

	if iv.Complete() {
		c.Redirect(http.StatusFound, "/report")
		return
	}

	h.renderQuestion(c, iv, "")
}

func (h *InterviewHandler) Answer(c *gin.Context) {
	iv := h.sessions.Read(c)
	if iv == nil || len(iv.Questions) == 0 {
		c.Redirect(http.StatusFound, "/")
		return
	}

	if iv.Complete() {
		c.Redirect(http.StatusFound, "/report")
		return
	}

	answer := strings.TrimSpace(c.PostForm("answer"))
	if answer == "" {
		h.renderQuestion(c, iv, "Please provide an answer before proceeding.")
		return
	}

	iv.Answers = append(iv.Answers, models.AnswerRecord{
		Question: iv.Questions[iv.Current].Question,
		Answer:   answer,
	})
	iv.Current++

	if err := h.sessions.Write(c, iv); err != nil {
		h.log.WithError(err).Error("failed to write session")
		c.Redirect(http.StatusFound, "/")
		return
	}

	if iv.Complete() {
		c.Redirect(http.StatusFound, "/report")
		return
	}
	c.Redirect(http.StatusFound, "/interview")
}

// Report evaluates the answers on every view. The result is rendered and
// thrown away, never written back into the session.
func (h *InterviewHandler) Report(c *gin.Context) {
	iv := h.sessions.Read(c)
	if iv == nil || len(iv.Answers) == 0 {
		c.Redirect(http.StatusFound, "/")
		return
	}

	report := h.evaluateAnswers(c, iv)

	c.HTML(http.StatusOK, "report.html", gin.H{
		"Company": iv.Company,
		"Role":    iv.Role,
		"Report":  report,
	})
}

func (h *InterviewHandler) Restart(c *gin.Context) {
	h.sessions.Clear(c)
	c.Redirect(http.StatusFound, "/")
}

func (h *InterviewHandler) renderQuestion(c *gin.Context, iv *models.Interview, errMsg string) {
	total := len(iv.Questions)
	progress := int(math.Round(float64(iv.Current) / float64(total) * 100))

	c.HTML(http.StatusOK, "interview.html", gin.H{
		"Company":        iv.Company,
		"Role":           iv.Role,
		"Question":       iv.Questions[iv.Current].Question,
		"QuestionNumber": iv.Current + 1,
		"TotalQuestions": total,
		"Progress":       progress,
		"Error":          errMsg,
	})
}

// generateQuestions goes through the orchestrator and falls back to a local
// list when it errors or comes back with anything but questions. The services
// already degrade internally, so this layer only catches a facade that is
// entirely unavailable.
func (h *InterviewHandler) generateQuestions(c *gin.Context, company, role string) []models.Question {
	res, err := h.orch.Run(c.Request.Context(), services.Request{
		Action:  services.ActionGenerateQuestions,
		Company: company,
		Role:    role,
	})
	if err != nil {
		h.log.WithError(err).Warn("question generation failed, using local fallback")
		return localFallbackQuestions(company, role)
	}

	switch res.Kind {
	case services.KindQuestions:
		if len(res.Questions) > 0 {
			return res.Questions
		}
	case services.KindNone, services.KindReport:
	}

	h.log.Warn("orchestrator returned no questions, using local fallback")
	return localFallbackQuestions(company, role)
}

func (h *InterviewHandler) evaluateAnswers(c *gin.Context, iv *models.Interview) *models.Report {
	res, err := h.orch.Run(c.Request.Context(), services.Request{
		Action:  services.ActionEvaluateAnswers,
		Company: iv.Company,
		Role:    iv.Role,
		Answers: iv.Answers,
	})
	if err != nil {
		h.log.WithError(err).Warn("evaluation failed, using local fallback")
		return localFallbackReport(iv.Answers, iv.Company)
	}

	switch res.Kind {
	case services.KindReport:
		if res.Report != nil {
			return res.Report
		}
	case services.KindNone, services.KindQuestions:
	}

	h.log.Warn("orchestrator returned no report, using local fallback")
	return localFallbackReport(iv.Answers, iv.Company)
}

func localFallbackQuestions(company, role string) []models.Question {
	return []models.Question{
		{Question: fmt.Sprintf("What are the key programming concepts for a %s at %s?", role, company)},
		{Question: fmt.Sprintf("How would you design a scalable web application for %s?", company)},
		{Question: fmt.Sprintf("What database technology would you pick for %s and why?", company)},
		{Question: fmt.Sprintf("Explain an algorithmic optimization you'd apply to a %s-scale system.", company)},
	}
}

// localFallbackReport mirrors the service-side heuristic but keeps its own
// historical third tier of 150 chars (the service uses 120).
func localFallbackReport(answers []models.AnswerRecord, company string) *models.Report {
	total := 0
	for _, a := range answers {
		total += len(a.Answer)
	}
	avg := float64(total) / float64(max(len(answers), 1))

	base := 5.0
	switch {
	case avg > 400:
		base = 8
	case avg > 250:
		base = 7
	case avg > 150:
		base = 6
	}

	return &models.Report{
		OverallScore: base,
		Strengths:    []string{"Clear problem solving", "Good technical foundation"},
		Weaknesses: []string{
			fmt.Sprintf("Add more %s-specific examples", company),
			"Give more code-level details",
		},
		TopicScores: models.TopicScores{
			TechnicalKnowledge: base,
			ProblemSolving:     base + 1,
			Communication:      math.Max(base-1, 1),
			CodeQuality:        base,
			SystemDesign:       base,
		},
	}
}
