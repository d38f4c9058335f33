package health

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/hello-backend/internal/platform/logging"
)

// StatusHealthy is the only status the endpoint reports.
const StatusHealthy = "healthy"

// Status is the health check payload.
type Status struct {
	Status  string `json:"status" doc:"Health status" example:"healthy"`
	Service string `json:"service" doc:"Name of the reporting service" example:"backend"`
}

// Output is the response wrapper for the health endpoint.
type Output struct {
	Body Status
}

// Register adds GET path reporting service as healthy.
func Register(api huma.API, path, service string) {
	huma.Register(api, huma.Operation{
		OperationID: "get-health",
		Method:      http.MethodGet,
		Path:        path,
		Summary:     "Health check",
		Tags:        []string{"health"},
	}, func(ctx context.Context, _ *struct{}) (*Output, error) {
		applog.LogInfo(ctx, "health check", zap.String("path", path))
		return &Output{Body: Status{Status: StatusHealthy, Service: service}}, nil
	})
}
