package data

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/hello-backend/internal/platform/logging"
)

// Message is the fixed greeting returned by the data endpoint.
const Message = "Hello from Flask Backend!"

// Payload is the data endpoint body.
type Payload struct {
	Message     string `json:"message" doc:"Greeting message" example:"Hello from Flask Backend!"`
	Environment string `json:"environment" doc:"Deployment environment (ENVIRONMENT)" example:"development"`
}

// Output is the response wrapper for the data endpoint.
type Output struct {
	Body Payload
}

// EnvironmentFunc reports the current deployment environment. It is called
// once per request.
type EnvironmentFunc func() string

// Register adds GET /api/data.
func Register(api huma.API, environment EnvironmentFunc) {
	huma.Register(api, huma.Operation{
		OperationID: "get-data",
		Method:      http.MethodGet,
		Path:        "/api/data",
		Summary:     "Greeting with the deployment environment",
		Tags:        []string{"data"},
	}, func(ctx context.Context, _ *struct{}) (*Output, error) {
		env := environment()
		applog.LogInfo(ctx, "data requested", zap.String("environment", env))
		return &Output{Body: Payload{Message: Message, Environment: env}}, nil
	})
}
