package handlers

import (
	"net/http"

	"github.com/DanielPopoola/payment-orchestrator/internal/domain"
	"github.com/DanielPopoola/payment-orchestrator/internal/interfaces/rest"
)

type HealthStatus struct {
	Status    string                `json:"status"`
	Providers []domain.ProviderName `json:"providers"`
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	rest.WriteData(w, http.StatusOK, HealthStatus{
		Status:    "ok",
		Providers: h.orchestrator.Providers(),
	})
}
