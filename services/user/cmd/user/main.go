package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	pkgdb "github.com/burakmt/todo-platform/pkg/db"
	"github.com/burakmt/todo-platform/pkg/events"
	"github.com/burakmt/todo-platform/pkg/logging"
	loggingmw "github.com/burakmt/todo-platform/pkg/middleware/logging"
	"github.com/burakmt/todo-platform/pkg/tokens"

	usercfg "github.com/burakmt/todo-platform/services/user/internal/config"
	"github.com/burakmt/todo-platform/services/user/internal/httpserver"
	"github.com/burakmt/todo-platform/services/user/internal/models"
	"github.com/burakmt/todo-platform/services/user/internal/repo"
	"github.com/burakmt/todo-platform/services/user/internal/service"
)

func main() {
	if err := godotenv.Load("services/user/.env"); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := usercfg.Load()

	logger := logging.New(os.Getenv("LOG_LEVEL")).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := pkgdb.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	producer := events.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
	defer producer.Close()

	issuer := &tokens.Issuer{
		Secret:    cfg.JWTSecret,
		Issuer:    cfg.JWTIssuer,
		Audience:  cfg.JWTAudience,
		AccessTTL: cfg.AccessTTL,
	}

	userRepo := &repo.GormRepo{DB: db}
	userSvc := &service.UserService{Repo: userRepo, Events: producer}
	authSvc := &service.AuthService{
		Repo:       userRepo,
		Tokens:     issuer,
		RefreshTTL: cfg.RefreshTTL,
		Events:     producer,
	}

	seedCtx, seedCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := userSvc.EnsureAdmin(seedCtx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("admin seed: %v", err)
	}
	seedCancel()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{
		AuthHandler: &httpserver.AuthHTTP{Svc: authSvc},
		UserHandler: &httpserver.UserHTTP{Svc: userSvc},
		Issuer:      issuer,
	})

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("user-service listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Println("user-service stopped")
}
