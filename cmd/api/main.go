// cmd/api/main.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dangerclosesec/trainhub/internal/audit"
	"github.com/dangerclosesec/trainhub/internal/auth"
	"github.com/dangerclosesec/trainhub/internal/config"
	"github.com/dangerclosesec/trainhub/internal/database"
	"github.com/dangerclosesec/trainhub/internal/email"
	"github.com/dangerclosesec/trainhub/internal/handler"
	"github.com/dangerclosesec/trainhub/internal/middleware"
	"github.com/dangerclosesec/trainhub/internal/repository"
	"github.com/dangerclosesec/trainhub/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	db, err := database.Open(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	maintainerRepo := repository.NewMaintainerRepository(db)
	freelancerRepo := repository.NewFreelancerRepository(db)
	trainingRepo := repository.NewTrainingRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	stackRepo := repository.NewStackRepository(db)

	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	emailService, err := email.NewEmailService(cfg, email.Provider(cfg.Email.Provider), logger)
	if err != nil {
		return fmt.Errorf("initializing email service: %w", err)
	}
	logger.Info("email provider selected", "provider", emailService.Provider())

	actionLogs := service.NewActionLogService(repository.NewActionLogRepository(db))
	var auditLogger audit.Logger = actionLogs

	// Initialize services
	orgService := service.NewOrganizationService(userRepo, orgRepo, passwordHasher, emailService, auditLogger, cfg, logger)
	userService := service.NewUserService(userRepo, orgService, passwordHasher, auditLogger, logger)
	trainingService := service.NewTrainingService(service.TrainingStores{
		Trainings:    trainingRepo,
		Orgs:         orgRepo,
		Freelancers:  freelancerRepo,
		Applications: repository.NewApplicationRepository(db),
		Feedback:     repository.NewFeedbackRepository(db),
		Categories:   categoryRepo,
		Locations:    locationRepo,
		Stacks:       stackRepo,
	}, auditLogger, logger)

	pager := handler.Pager{DefaultLimit: cfg.Pagination.DefaultLimit, MaxLimit: cfg.Pagination.MaxLimit}
	handlers := handler.Handlers{
		Users:         handler.NewUserHandler(userService, pager),
		Organizations: handler.NewOrganizationHandler(orgService, pager),
		Maintainers:   handler.NewMaintainerHandler(service.NewMaintainerService(maintainerRepo, auditLogger, logger), pager),
		Freelancers:   handler.NewFreelancerHandler(service.NewFreelancerService(freelancerRepo, auditLogger, logger), pager),
		Trainings:     handler.NewTrainingHandler(trainingService, pager),
		Categories:    handler.NewCategoryHandler(service.NewCategoryService(categoryRepo, auditLogger, logger), pager),
		Locations:     handler.NewLocationHandler(service.NewLocationService(locationRepo, auditLogger, logger), pager),
		Stacks:        handler.NewStackHandler(service.NewStackService(stackRepo, auditLogger, logger), pager),
		ActionLogs:    handler.NewActionLogHandler(actionLogs, pager),
	}

	// Create router
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AuditContext)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	r.Route("/api", func(r chi.Router) {
		handler.Mount(r, tokenManager, userRepo, handlers)
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}
