// Package main wires the HTTP server for the business matching service.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/TsikyLalaina/miharina-hub-development/config"
	"github.com/TsikyLalaina/miharina-hub-development/internal/metrics"
	"github.com/TsikyLalaina/miharina-hub-development/internal/notify"
	"github.com/TsikyLalaina/miharina-hub-development/internal/repository"
	"github.com/TsikyLalaina/miharina-hub-development/internal/scoring"
	"github.com/TsikyLalaina/miharina-hub-development/internal/transport/http/middleware"
	handlers_fiber "github.com/TsikyLalaina/miharina-hub-development/internal/transport/http/server/handlers-fiber"
	"github.com/TsikyLalaina/miharina-hub-development/internal/usecase"
	"github.com/TsikyLalaina/miharina-hub-development/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}

	repo, err := repository.New(ctx, "postgres", log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	var notifier notify.Notifier = notify.Noop{}
	if cfg.Redis.Addr != "" {
		pub, err := notify.NewRedisPublisher(ctx, log, cfg.Redis)
		if err != nil {
			log.Errorw("notifier initialization error", "error", err)
			return
		}
		defer func() {
			_ = pub.Close()
		}()
		notifier = pub
	}

	m := metrics.New()
	timeout := cfg.HTTP.RequestTimeout
	uc := usecase.New(log, ctx, repo, scoring.NewConstant(), notifier, m, timeout)

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))
	serv.Use(middleware.HTTPMetrics(m))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	serv.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	h := handlers_fiber.NewHandler(log, uc)
	h.Register(serv, middleware.Auth(cfg.Auth.JWTSecret))

	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}
