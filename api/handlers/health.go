package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"searchpilot-api/api/dto/responses"
	"searchpilot-api/pkg/featureflags"
)

// Pinger checks a backend dependency
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports liveness and storage reachability
type HealthHandler struct {
	storage Pinger
	flags   featureflags.Manager
}

// NewHealthHandler creates a new health handler. flags may be nil.
func NewHealthHandler(storage Pinger, flags featureflags.Manager) *HealthHandler {
	return &HealthHandler{storage: storage, flags: flags}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Tags:        []string{"System"},
	}, h.Health)
}

// HealthOutput defines the output for the Health operation
type HealthOutput struct {
	Body responses.HealthResponse
}

// Health handles GET /health. An unreachable store is reported as 503.
func (h *HealthHandler) Health(ctx context.Context, _ *struct{}) (*HealthOutput, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := h.storage.Ping(ctx); err != nil {
		return nil, huma.Error503ServiceUnavailable("storage unavailable")
	}

	body := responses.HealthResponse{Status: "ok", Storage: "ok"}
	if h.flags != nil {
		body.Flags = make(map[string]bool)
		for flag, enabled := range h.flags.GetAllFlags() {
			body.Flags[string(flag)] = enabled
		}
	}

	return &HealthOutput{Body: body}, nil
}
