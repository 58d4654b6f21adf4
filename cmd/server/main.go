package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stemsi/schoolms-backend/internal/config"
	"github.com/stemsi/schoolms-backend/internal/handler"
	"github.com/stemsi/schoolms-backend/internal/logger"
	"github.com/stemsi/schoolms-backend/internal/repository"
	"github.com/stemsi/schoolms-backend/internal/router"
	"github.com/stemsi/schoolms-backend/internal/service"
	"github.com/stemsi/schoolms-backend/internal/session"
	"github.com/stemsi/schoolms-backend/internal/store"
	"github.com/stemsi/schoolms-backend/internal/validator"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}

func main() {
	cfg := config.Load()
	log.Logger = logger.Setup(cfg.LogLevel, cfg.LogFormat)
	validator.Setup()

	// All state lives in this seeded in-memory store; nothing survives a
	// restart.
	st := store.NewSeeded()

	studentRepo := repository.NewStudentRepository(st)
	teacherRepo := repository.NewTeacherRepository(st)
	classRepo := repository.NewClassRepository(st)
	gradeRepo := repository.NewGradeRepository(st)
	parentRepo := repository.NewParentRepository(st)
	announcementRepo := repository.NewAnnouncementRepository(st)

	sessions := session.NewManager()
	authService := service.NewAuthService(cfg)
	metricsService := service.NewMetricsService(cfg, studentRepo, classRepo, gradeRepo, parentRepo)
	studentService := service.NewStudentService(studentRepo, log.Logger)
	gradeService := service.NewGradeService(gradeRepo, classRepo, log.Logger)
	viewService := service.NewViewService(
		sessions,
		metricsService,
		studentRepo,
		teacherRepo,
		classRepo,
		gradeRepo,
		parentRepo,
		announcementRepo,
		log.Logger,
	)

	handlers := router.Handlers{
		Auth:      handler.NewAuthHandler(authService, viewService, sessions, log.Logger),
		View:      handler.NewViewHandler(viewService, sessions),
		Dashboard: handler.NewDashboardHandler(viewService),
		Student:   handler.NewStudentHandler(studentService),
		Grade:     handler.NewGradeHandler(gradeService),
	}

	r := router.SetupRouter(authService, handlers, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		log.Info().Str("port", cfg.ServerPort).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server stopped")
}
