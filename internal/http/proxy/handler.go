package proxy

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	applog "github.com/janisto/hello-backend/internal/platform/logging"
	"github.com/janisto/hello-backend/internal/service/backend"
)

const msgUpstreamFailure = "Failed to fetch data from backend"

// DataFetcher retrieves the backend data payload.
type DataFetcher interface {
	FetchData(ctx context.Context) (backend.Data, error)
}

// Payload is the proxied data body.
type Payload struct {
	Message     string `json:"message" doc:"Greeting message from the backend"`
	Environment string `json:"environment" doc:"Backend deployment environment"`
}

// Output is the response wrapper for the proxied data endpoint.
type Output struct {
	Body Payload
}

// UpstreamFailure is the 500 body returned when the backend call fails.
type UpstreamFailure struct {
	Message string `json:"error"`
}

func (e *UpstreamFailure) Error() string { return e.Message }

// GetStatus implements huma.StatusError.
func (e *UpstreamFailure) GetStatus() int { return http.StatusInternalServerError }

// Register adds GET /api/data, served from fetcher.
func Register(api huma.API, fetcher DataFetcher) {
	huma.Register(api, huma.Operation{
		OperationID: "proxy-data",
		Method:      http.MethodGet,
		Path:        "/api/data",
		Summary:     "Backend data, proxied",
		Tags:        []string{"data"},
	}, func(ctx context.Context, _ *struct{}) (*Output, error) {
		d, err := fetcher.FetchData(ctx)
		if err != nil {
			applog.LogError(ctx, "backend fetch failed", err)
			return nil, &UpstreamFailure{Message: msgUpstreamFailure}
		}
		return &Output{Body: Payload{Message: d.Message, Environment: d.Environment}}, nil
	})
}
