// Package main wires the HTTP server for the leader command service.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/lazygod321/rustplusplus/config"
	"github.com/lazygod321/rustplusplus/internal/fuzzy"
	"github.com/lazygod321/rustplusplus/internal/leader"
	api "github.com/lazygod321/rustplusplus/internal/oapi"
	"github.com/lazygod321/rustplusplus/internal/report"
	"github.com/lazygod321/rustplusplus/internal/repository"
	"github.com/lazygod321/rustplusplus/internal/session"
	"github.com/lazygod321/rustplusplus/internal/transport/http/middleware"
	"github.com/lazygod321/rustplusplus/internal/transport/http/server/handlers-fiber"
	"github.com/lazygod321/rustplusplus/internal/usecase"
	"github.com/lazygod321/rustplusplus/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
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
	defer func() { _ = log.Sync() }()

	repo, err := repository.New(ctx, cfg.Repository.Backend, log, cfg)
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

	matcher, err := fuzzy.New(cfg.Leader.Matcher)
	if err != nil {
		log.Errorw("matcher initialization error", "error", err)
		return
	}
	resolver := leader.New(log, matcher,
		leader.WithThreshold(cfg.Leader.MatchThreshold),
		leader.WithRemoteTimeout(cfg.Leader.RemoteTimeout),
	)

	reporter, err := report.New(cfg.I18n.DefaultLocale)
	if err != nil {
		log.Errorw("reporter initialization error", "error", err)
		return
	}

	sessions := session.NewRegistry(log, nil)
	uc := usecase.New(log, ctx, repo, sessions, resolver, cfg.HTTP.RequestTimeout)

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout + cfg.Leader.RemoteTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	h := handlers_fiber.NewHandler(log, uc, reporter)
	api.RegisterHandlers(serv, h)

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
