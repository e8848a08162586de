package handlers

import (
	"bytes"
	"net/http"

	"github.com/DanielPopoola/payment-orchestrator/internal/domain"
	"github.com/DanielPopoola/payment-orchestrator/internal/interfaces/rest"
)

// CreateRefund accepts an empty body as a full refund request.
func (h *Handlers) CreateRefund(w http.ResponseWriter, r *http.Request) {
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

	req := &domain.RefundRequest{}
	if len(bytes.TrimSpace(body)) > 0 {
		req, err = domain.ParseRefundRequest(body)
		if err != nil {
			rest.WriteError(w, err, h.logger)
			return
		}
	}

	resp, err := h.orchestrator.ProcessRefund(r.Context(), name, r.PathValue("id"), req)
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteData(w, http.StatusOK, resp)
}
