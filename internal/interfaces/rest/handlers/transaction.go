package handlers

import (
	"net/http"

	"github.com/DanielPopoola/payment-orchestrator/internal/domain"
	"github.com/DanielPopoola/payment-orchestrator/internal/interfaces/rest"
)

func (h *Handlers) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	name := providerName(r)
	if _, err := h.orchestrator.Provider(name); err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	body, err := readBody(w, r)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	req, err := domain.ParseTransactionRequest(body)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	resp, err := h.orchestrator.ProcessTransaction(r.Context(), name, req)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteData(w, http.StatusOK, resp)
}
