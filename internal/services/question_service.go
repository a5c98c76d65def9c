package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/hbrar/intervu/internal/models"
	"github.com/hbrar/intervu/internal/providers/llm"
	"github.com/hbrar/intervu/internal/utils"
)

// Models are tried strictly in order; the first usable response wins.
var defaultModels = []string{
	"gemini-2.0-flash",
	"gemini-2.0-flash-lite",
	"gemini-pro-latest",
}

const minQuestions = 4

const questionPrompt = `Generate 6-8 TECHNICAL interview questions for a %s position at %s.
Return ONLY a JSON array where each object has a 'question' field.
Example: [{"question":"Q1"},{"question":"Q2"}]`

type QuestionService interface {
	Generate(ctx context.Context, company, role string) ([]models.Question, error)
}

type questionService struct {
	provider llm.Provider
	models   []string
	log      *logrus.Logger
}

func NewQuestionService(provider llm.Provider, log *logrus.Logger) QuestionService {
	return &questionService{provider: provider, models: defaultModels, log: log}
}

// Generate asks each configured model in turn for an interview question set
// and returns the first response that decodes to at least minQuestions
// entries. Model failures are never fatal: when every model is exhausted the
// fixed fallback list is returned instead.
func (s *questionService) Generate(ctx context.Context, company, role string) ([]models.Question, error) {
	const op = "QuestionService.Generate"

	company = strings.TrimSpace(company)
	role = strings.TrimSpace(role)
	if company == "" || role == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "company and role are required", nil)
	}

	prompt := fmt.Sprintf(questionPrompt, role, company)

	for _, model := range s.models {
		raw, err := s.provider.Generate(ctx, model, prompt)
		if err != nil {
			s.log.WithError(err).WithField("model", model).Warn("question generation call failed")
			continue
		}

		var questions []models.Question
		if err := decodeArray(raw, &questions); err != nil {
			s.log.WithError(err).WithField("model", model).Warn("question generation response unparseable")
			continue
		}
		if len(questions) < minQuestions {
			s.log.WithFields(logrus.Fields{"model": model, "count": len(questions)}).
				Warn("question generation returned too few questions")
			continue
		}

		s.log.WithFields(logrus.Fields{"model": model, "count": len(questions)}).
			Info("questions generated")
		return questions, nil
	}

	s.log.WithFields(logrus.Fields{"company": company, "role": role}).
		Warn("all models exhausted, using fallback questions")
	return fallbackQuestions(company, role), nil
}

func fallbackQuestions(company, role string) []models.Question {
	return []models.Question{
		{Question: fmt.Sprintf("What are the key programming concepts for %s at %s?", role, company)},
		{Question: fmt.Sprintf("How would you design a scalable web app for %s?", company)},
		{Question: fmt.Sprintf("Which databases suit %s and why?", company)},
		{Question: fmt.Sprintf("Describe solving a large-scale performance issue at %s.", company)},
	}
}
