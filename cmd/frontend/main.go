package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/janisto/hello-backend/internal/http/proxy"
	"github.com/janisto/hello-backend/internal/http/routes"
	"github.com/janisto/hello-backend/internal/platform/config"
	applog "github.com/janisto/hello-backend/internal/platform/logging"
	"github.com/janisto/hello-backend/internal/platform/server"
	"github.com/janisto/hello-backend/internal/service/backend"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	os.Exit(run())
}

func newHandler(fetcher proxy.DataFetcher) http.Handler {
	router := server.NewRouter()
	api := server.NewAPI(router, "Frontend API", Version)
	routes.RegisterFrontend(api, fetcher)
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
	cfg, err := config.ServerFromEnv(config.DefaultFrontendPort)
	if err != nil {
		applog.LogError(ctx, "configuration error", err)
		return 1
	}
	backendURL := config.BackendURL()
	client := backend.NewClient(&http.Client{Timeout: backend.DefaultTimeout}, backendURL)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	applog.LogInfo(ctx, "proxying backend", zap.String("backendUrl", backendURL))
	if err := server.Run(ctx, cfg.Addr(), newHandler(client)); err != nil {
		applog.LogError(ctx, "server failed", err, zap.String("addr", cfg.Addr()))
		return 1
	}
	return 0
}
