package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/saludbot/admin-api/internal/config"
	"github.com/saludbot/admin-api/internal/handler"
	authHandler "github.com/saludbot/admin-api/internal/handler/auth"
	insurerHandler "github.com/saludbot/admin-api/internal/handler/insurer"
	physicianHandler "github.com/saludbot/admin-api/internal/handler/physician"
	"github.com/saludbot/admin-api/internal/middleware"
	"github.com/saludbot/admin-api/internal/repository/postgres"
	"github.com/saludbot/admin-api/internal/router"
	authService "github.com/saludbot/admin-api/internal/service/auth"
	insurerService "github.com/saludbot/admin-api/internal/service/insurer"
	physicianService "github.com/saludbot/admin-api/internal/service/physician"
	"github.com/saludbot/admin-api/pkg/auth"
	"github.com/saludbot/admin-api/pkg/logger"
	"github.com/saludbot/admin-api/pkg/security"
)

func main() {
	log := logger.NewLogger(nil)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err, "failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal(err, "failed to connect to database")
	}
	defer db.Close()

	// Repositories
	staffRepo := postgres.NewStaffRepository(db)
	assignmentRepo := postgres.NewAssignmentRepository(db)
	insurerRepo := postgres.NewInsurerRepository(db)

	// Services
	tokens := auth.NewTokenService(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)
	hasher := security.NewBcryptHasher(12)
	authSvc := authService.NewService(staffRepo, tokens, hasher)
	physicianSvc := physicianService.NewService(assignmentRepo)
	insurerSvc := insurerService.NewService(insurerRepo)

	// Middleware and handlers
	authMiddleware := middleware.NewAuthMiddleware(authSvc)
	h := handler.NewHandler()
	authH := authHandler.NewHandler(authSvc, cfg.Server.ReleaseMode)
	physicianH := physicianHandler.NewHandler(physicianSvc)
	insurerH := insurerHandler.NewHandler(insurerSvc)

	r := router.NewRouter(authMiddleware, authH, physicianH, insurerH, h, router.Config{
		MetricsPrefix: "saludbot_admin",
		ReleaseMode:   cfg.Server.ReleaseMode,
	})
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err, "failed to start server")
		}
	}()
	log.Info("server started", "port", cfg.Server.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err, "server forced to shutdown")
	}

	log.Info("server exited properly")
}
