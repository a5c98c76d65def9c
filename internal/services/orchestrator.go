package services

import (
	"context"

	"github.com/hbrar/intervu/internal/models"
	"github.com/hbrar/intervu/internal/utils"
)

const (
	ActionGenerateQuestions = "generate_questions"
	ActionEvaluateAnswers   = "evaluate_answers"
)

// Request is the single entry point payload: an action name plus the fields
// that action needs.
type Request struct {
	Action  string
	Company string
	Role    string
	Answers []models.AnswerRecord
}

type ResultKind uint8

const (
	KindNone ResultKind = iota
	KindQuestions
	KindReport
)

// Result is a tagged union over the possible orchestration outcomes, so
// callers can decide on a fallback exhaustively instead of sniffing shapes.
type Result struct {
	Kind      ResultKind
	Questions []models.Question
	Report    *models.Report
}

// Orchestrator dispatches an action to the matching service. It schedules
// nothing; Run is a synchronous call.
type Orchestrator struct {
	questions QuestionService
	reports   ReportService
}

func NewOrchestrator(questions QuestionService, reports ReportService) *Orchestrator {
	return &Orchestrator{questions: questions, reports: reports}
}

func (o *Orchestrator) Run(ctx context.Context, req Request) (Result, error) {
	const op = "Orchestrator.Run"

	switch req.Action {
	case ActionGenerateQuestions:
		questions, err := o.questions.Generate(ctx, req.Company, req.Role)
		if err != nil {
			return Result{}, err
		}
		return Result{Kind: KindQuestions, Questions: questions}, nil

	case ActionEvaluateAnswers:
		report, err := o.reports.Evaluate(ctx, req.Company, req.Role, req.Answers)
		if err != nil {
			return Result{}, err
		}
		return Result{Kind: KindReport, Report: report}, nil

	default:
		return Result{}, utils.E(utils.CodeInvalidArgument, op, "unknown action "+req.Action, nil)
	}
}
