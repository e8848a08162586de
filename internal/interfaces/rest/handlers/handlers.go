package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/payment-orchestrator/internal/application/services"
	"github.com/DanielPopoola/payment-orchestrator/internal/domain"
)

const maxBodyBytes = 1 << 20

type Handlers struct {
	orchestrator *services.Orchestrator
	logger       *slog.Logger
}

func NewHandlers(orchestrator *services.Orchestrator, logger *slog.Logger) *Handlers {
	return &Handlers{
		orchestrator: orchestrator,
		logger:       logger,
	}
}

// Register mounts every route on mux.
func (h *Handlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("POST /v1/{provider}/transactions", h.CreateTransaction)
	mux.HandleFunc("POST /v1/{provider}/transactions/{id}/refunds", h.CreateRefund)
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, domain.NewMalformedRequestError(err)
	}
	return body, nil
}

func providerName(r *http.Request) domain.ProviderName {
	return domain.ProviderName(r.PathValue("provider"))
}
