package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/hello-backend/internal/http/data"
	"github.com/janisto/hello-backend/internal/http/health"
	"github.com/janisto/hello-backend/internal/http/proxy"
)

// RegisterBackend wires the backend API: GET /api/health and GET /api/data.
func RegisterBackend(api huma.API, environment data.EnvironmentFunc) {
	health.Register(api, "/api/health", "backend")
	data.Register(api, environment)
}

// RegisterFrontend wires the frontend proxy: GET /health and GET /api/data.
func RegisterFrontend(api huma.API, fetcher proxy.DataFetcher) {
	health.Register(api, "/health", "frontend")
	proxy.Register(api, fetcher)
}
