package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/mithra-tejvarma/GradientIQ/internal/analysis"
	api "github.com/mithra-tejvarma/GradientIQ/internal/api/http"
	"github.com/mithra-tejvarma/GradientIQ/internal/assessment"
	"github.com/mithra-tejvarma/GradientIQ/internal/auth"
	"github.com/mithra-tejvarma/GradientIQ/internal/catalog"
	"github.com/mithra-tejvarma/GradientIQ/internal/config"
	"github.com/mithra-tejvarma/GradientIQ/internal/db"
	"github.com/mithra-tejvarma/GradientIQ/internal/eventlog"
	"github.com/mithra-tejvarma/GradientIQ/internal/rbac"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.FromEnv()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	cat := catalog.NewSQLStore(dbh)
	store := assessment.NewSQLStore(dbh, cfg.DBDriver)
	events := eventlog.NewRepo(dbh)

	if cfg.SeedCatalog {
		if err := catalog.Seed(ctx, cat); err != nil {
			log.Fatalf("seed catalog: %v", err)
		}
	}

	authSvc := auth.NewService(cfg.AuthSecret)
	assessSvc := assessment.NewService(cat, store, events)
	engine := analysis.NewEngine(store, events)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/register", api.RegisterHandler(dbh))
	r.Post("/auth/login", api.LoginHandler(dbh, authSvc))

	// Protected API (JWT → role in context → RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		// Catalog
		pr.With(rbac.Require("catalog:view")).
			Get("/subjects", api.ListSubjectsHandler(cat))
		pr.With(rbac.Require("catalog:write")).
			Post("/subjects", api.CreateSubjectHandler(cat))
		pr.With(rbac.Require("catalog:view")).
			Get("/subjects/{subjectID}/topics", api.ListTopicsHandler(cat))
		pr.With(rbac.Require("catalog:write")).
			Post("/topics", api.CreateTopicHandler(cat))
		pr.With(rbac.Require("catalog:view")).
			Get("/topics/{topicID}/questions", api.ListQuestionsHandler(cat))
		pr.With(rbac.Require("catalog:write")).
			Post("/questions", api.CreateQuestionHandler(cat))

		// Assessment flow
		pr.With(rbac.Require("assessment:start")).
			Post("/assessment/start", api.StartAttemptHandler(assessSvc))
		pr.With(rbac.Require("assessment:answer")).
			Post("/assessment/answer", api.SubmitAnswerHandler(assessSvc, store))
		pr.With(rbac.RequireAny("assessment:view-own", "assessment:view-all")).
			Get("/assessment/status/{attemptID}", api.AttemptStatusHandler(assessSvc, store))
		pr.With(rbac.Require("assessment:answer")).
			Post("/assessment/{attemptID}/complete", api.CompleteAttemptHandler(assessSvc, store))

		// Analysis + feedback
		pr.With(rbac.Require("analysis:run")).
			Post("/analysis/answers/{answerAttemptID}", api.AnalyzeAnswerHandler(engine, store))
		pr.With(rbac.RequireAny("feedback:view-own", "feedback:view-all")).
			Get("/feedback/{answerAttemptID}", api.GetFeedbackHandler(store))

		// Capability
		pr.With(rbac.RequireAny("capability:view-own", "capability:view-all")).
			Get("/capability/subjects/{subjectID}", api.CapabilityHandler(assessSvc))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: r}
	go func() {
		log.Printf("listening on %s (db=%s)", cfg.HTTPAddr, cfg.DBDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("serve: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
