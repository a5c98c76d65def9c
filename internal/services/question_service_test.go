package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/hbrar/intervu/internal/utils"
)

// fakeProvider replays one scripted response (or error) per model, recording
// the order models were tried in.
type fakeProvider struct {
	responses map[string]string
	errs      map[string]error
	calls     []string
}

func (f *fakeProvider) Generate(_ context.Context, model, _ string) (string, error) {
	f.calls = append(f.calls, model)
	if err, ok := f.errs[model]; ok {
		return "", err
	}
	if resp, ok := f.responses[model]; ok {
		return resp, nil
	}
	return "", errors.New("unexpected model " + model)
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

const validQuestionsJSON = `[{"question":"Q1"},{"question":"Q2"},{"question":"Q3"},{"question":"Q4"}]`

func TestGenerateShortCircuitsOnFirstSuccess(t *testing.T) {
	provider := &fakeProvider{
		responses: map[string]string{
			"gemini-2.0-flash": "Sure! " + validQuestionsJSON + " Good luck!",
		},
	}

	svc := NewQuestionService(provider, testLogger())
	questions, err := svc.Generate(context.Background(), "Acme", "Engineer")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(questions) != 4 {
		t.Fatalf("expected 4 questions, got %d", len(questions))
	}
	if len(provider.calls) != 1 || provider.calls[0] != "gemini-2.0-flash" {
		t.Fatalf("expected a single call to the first model, got %v", provider.calls)
	}
}

func TestGenerateTriesNextModelOnFailure(t *testing.T) {
	provider := &fakeProvider{
		errs: map[string]error{
			"gemini-2.0-flash": errors.New("quota exceeded"),
		},
		responses: map[string]string{
			"gemini-2.0-flash-lite": validQuestionsJSON,
		},
	}

	svc := NewQuestionService(provider, testLogger())
	questions, err := svc.Generate(context.Background(), "Acme", "Engineer")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(questions) != 4 {
		t.Fatalf("expected 4 questions, got %d", len(questions))
	}
	want := []string{"gemini-2.0-flash", "gemini-2.0-flash-lite"}
	if len(provider.calls) != len(want) || provider.calls[0] != want[0] || provider.calls[1] != want[1] {
		t.Fatalf("unexpected call order: %v", provider.calls)
	}
}

func TestGenerateRejectsShortArrays(t *testing.T) {
	provider := &fakeProvider{
		responses: map[string]string{
			"gemini-2.0-flash":      `[{"question":"only one"}]`,
			"gemini-2.0-flash-lite": validQuestionsJSON,
		},
	}

	svc := NewQuestionService(provider, testLogger())
	questions, err := svc.Generate(context.Background(), "Acme", "Engineer")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(questions) != 4 {
		t.Fatalf("expected the 4-question response to win, got %d", len(questions))
	}
	if len(provider.calls) != 2 {
		t.Fatalf("expected the short array to be rejected and the next model tried, calls: %v", provider.calls)
	}
}

func TestGenerateFallsBackWhenAllModelsFail(t *testing.T) {
	provider := &fakeProvider{
		errs: map[string]error{
			"gemini-2.0-flash":      errors.New("down"),
			"gemini-2.0-flash-lite": errors.New("down"),
			"gemini-pro-latest":     errors.New("down"),
		},
	}

	svc := NewQuestionService(provider, testLogger())
	questions, err := svc.Generate(context.Background(), "Acme", "Engineer")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(questions) != 4 {
		t.Fatalf("fallback must produce exactly 4 questions, got %d", len(questions))
	}
	for _, q := range questions {
		if !strings.Contains(q.Question, "Acme") {
			t.Fatalf("fallback question missing company name: %q", q.Question)
		}
	}
	if len(provider.calls) != 3 {
		t.Fatalf("expected all 3 models to be tried, calls: %v", provider.calls)
	}
}

func TestGenerateRequiresCompanyAndRole(t *testing.T) {
	svc := NewQuestionService(&fakeProvider{}, testLogger())

	_, err := svc.Generate(context.Background(), "  ", "Engineer")
	if err == nil {
		t.Fatal("expected an error for blank company")
	}
	if !utils.IsCode(err, utils.CodeInvalidArgument) {
		t.Fatalf("expected INVALID_ARGUMENT, got %v", err)
	}
}
