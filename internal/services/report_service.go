package services

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/hbrar/intervu/internal/models"
	"github.com/hbrar/intervu/internal/providers/llm"
	"github.com/hbrar/intervu/internal/utils"
)

const reportPrompt = `Evaluate the following answers for a %s role at %s:
%s

Return ONLY a JSON object like:
{
  "overall_score": 8.5,
  "strengths": ["..."],
  "weaknesses": ["..."],
  "topic_scores": {
    "technical_knowledge": 8,
    "problem_solving": 9,
    "communication": 7,
    "code_quality": 8,
    "system_design": 7
  }
}`

type ReportService interface {
	Evaluate(ctx context.Context, company, role string, answers []models.AnswerRecord) (*models.Report, error)
}

type reportService struct {
	provider llm.Provider
	models   []string
	log      *logrus.Logger
}

func NewReportService(provider llm.Provider, log *logrus.Logger) ReportService {
	return &reportService{provider: provider, models: defaultModels, log: log}
}

// Evaluate renders every Q/A pair into a single prompt and accepts the first
// model response whose extracted object parses; no field-presence validation
// happens here. When every model fails, the report is scored heuristically
// from answer length.
func (s *reportService) Evaluate(ctx context.Context, company, role string, answers []models.AnswerRecord) (*models.Report, error) {
	const op = "ReportService.Evaluate"

	company = strings.TrimSpace(company)
	role = strings.TrimSpace(role)
	if company == "" || role == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "company and role are required", nil)
	}

	prompt := fmt.Sprintf(reportPrompt, role, company, renderAnswers(answers))

	for _, model := range s.models {
		raw, err := s.provider.Generate(ctx, model, prompt)
		if err != nil {
			s.log.WithError(err).WithField("model", model).Warn("evaluation call failed")
			continue
		}

		report := &models.Report{}
		if err := decodeObject(raw, report); err != nil {
			s.log.WithError(err).WithField("model", model).Warn("evaluation response unparseable")
			continue
		}

		s.log.WithField("model", model).Info("report generated")
		return report, nil
	}

	s.log.WithFields(logrus.Fields{"company": company, "role": role}).
		Warn("all models exhausted, scoring heuristically")
	return heuristicReport(answers, company), nil
}

func renderAnswers(answers []models.AnswerRecord) string {
	blocks := make([]string, 0, len(answers))
	for _, a := range answers {
		blocks = append(blocks, fmt.Sprintf("Q: %s\nA: %s", a.Question, a.Answer))
	}
	return strings.Join(blocks, "\n\n")
}

// heuristicReport scores from average answer length in characters. The third
// tier sits at 120 here; the handler-level fallback uses 150. The two values
// are kept distinct on purpose.
func heuristicReport(answers []models.AnswerRecord, company string) *models.Report {
	base := baseScore(answers, 120)

	return &models.Report{
		OverallScore: base,
		Strengths:    []string{"Clear explanations", "Good problem solving"},
		Weaknesses:   []string{fmt.Sprintf("Could include more %s-specific examples", company)},
		TopicScores:  topicScores(base),
	}
}

func baseScore(answers []models.AnswerRecord, thirdTier float64) float64 {
	total := 0
	for _, a := range answers {
		total += len(a.Answer)
	}
	avg := float64(total) / float64(max(len(answers), 1))

	switch {
	case avg > 400:
		return 8
	case avg > 250:
		return 7
	case avg > thirdTier:
		return 6
	default:
		return 5
	}
}

func topicScores(base float64) models.TopicScores {
	return models.TopicScores{
		TechnicalKnowledge: base,
		ProblemSolving:     base + 1,
		Communication:      math.Max(base-1, 1),
		CodeQuality:        base,
		SystemDesign:       base,
	}
}
