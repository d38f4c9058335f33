package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/janisto/hello-backend/internal/http/data"
	"github.com/janisto/hello-backend/internal/http/routes"
	"github.com/janisto/hello-backend/internal/platform/config"
	applog "github.com/janisto/hello-backend/internal/platform/logging"
	"github.com/janisto/hello-backend/internal/platform/server"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	os.Exit(run())
}

func newHandler(environment data.EnvironmentFunc) http.Handler {
	router := server.NewRouter()
	api := server.NewAPI(router, "Backend API", Version)
	routes.RegisterBackend(api, environment)
	return router
}

func run() int {
	defer func() { _ = applog.Sync() }()

	ctx := context.Background()
	if err := applog.Err(); err != nil {
		applog.LogError(ctx, "logger init error", err)
	}

	if err := config.LoadEnvFiles(config.EnvFile()); err != nil {
		applog.LogError(ctx, "configuration error", err)
		return 1
	}
	cfg, err := config.ServerFromEnv(config.DefaultBackendPort)
	if err != nil {
		applog.LogError(ctx, "configuration error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, cfg.Addr(), newHandler(config.Environment)); err != nil {
		applog.LogError(ctx, "server failed", err, zap.String("addr", cfg.Addr()))
		return 1
	}
	return 0
}
