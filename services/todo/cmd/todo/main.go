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

	todocfg "github.com/burakmt/todo-platform/services/todo/internal/config"
	"github.com/burakmt/todo-platform/services/todo/internal/httpserver"
	"github.com/burakmt/todo-platform/services/todo/internal/models"
	"github.com/burakmt/todo-platform/services/todo/internal/repo"
	"github.com/burakmt/todo-platform/services/todo/internal/search"
	"github.com/burakmt/todo-platform/services/todo/internal/service"
)

func main() {
	if err := godotenv.Load("services/todo/.env"); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := todocfg.Load()

	logger := logging.New(os.Getenv("LOG_LEVEL")).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := pkgdb.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	if err := db.AutoMigrate(&models.Todo{}); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	producer := events.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
	defer producer.Close()

	idx, err := search.New(cfg.ElasticURL)
	if err != nil {
		log.Fatalf("search init: %v", err)
	}

	issuer := &tokens.Issuer{
		Secret:    cfg.JWTSecret,
		Issuer:    cfg.JWTIssuer,
		Audience:  cfg.JWTAudience,
		AccessTTL: cfg.AccessTTL,
	}

	svc := &service.TodoService{
		Repo:   &repo.GormRepo{DB: db},
		Search: idx,
		Events: producer,
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{
		TodoHandler: &httpserver.TodoHTTP{Svc: svc},
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
		log.Printf("todo-service listening on %s", srv.Addr)
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

	log.Println("todo-service stopped")
}
