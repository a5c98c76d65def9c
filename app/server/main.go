package main

import (
	"context"

	"github.com/joho/godotenv"

	"github.com/hbrar/intervu/config"
	"github.com/hbrar/intervu/internal/api/handlers"
	"github.com/hbrar/intervu/internal/api/routes"
	"github.com/hbrar/intervu/internal/logger"
	"github.com/hbrar/intervu/internal/providers/llm"
	"github.com/hbrar/intervu/internal/services"
	"github.com/hbrar/intervu/internal/session"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("config init error")
	}

	ctx := context.Background()
	provider, err := llm.NewGemini(ctx, cfg.GeminiAPIKey)
	if err != nil {
		log.WithError(err).Fatal("gemini init error")
	}

	questions := services.NewQuestionService(provider, log)
	reports := services.NewReportService(provider, log)
	orch := services.NewOrchestrator(questions, reports)
	sessions := session.New(cfg.SessionSecret, config.SessionTTL)

	r := routes.New(log, routes.Deps{
		Interview: handlers.NewInterviewHandler(orch, sessions, log),
	})

	log.WithField("addr", cfg.Addr()).Info("starting server")
	if err := r.Run(cfg.Addr()); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
