package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/payment-orchestrator/internal/application"
	"github.com/DanielPopoola/payment-orchestrator/internal/domain"
)

type APIResponse struct {
	Success bool                  `json:"success"`
	Data    any                   `json:"data,omitempty"`
	Error   *ErrorDetail          `json:"error,omitempty"`
	Decline *domain.ErrorResponse `json:"decline,omitempty"`
}

type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

func WriteData(w http.ResponseWriter, statusCode int, data any) {
	WriteJSON(w, statusCode, APIResponse{Success: true, Data: data})
}

// WriteError maps orchestrator errors to HTTP responses. Provider rejections
// carry the canonical error block so callers see the same shape for every provider.
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	statusCode := application.ToHTTPStatus(err)

	response := APIResponse{
		Success: false,
		Error: &ErrorDetail{
			Code:    application.ToErrorCode(err),
			Message: err.Error(),
		},
	}

	if errResp, ok := domain.IsErrorResponse(err); ok {
		response.Decline = errResp
	}
	if domainErr, ok := domain.IsDomainError(err); ok && domainErr.Field != "" {
		response.Error.Details = map[string]string{"field": domainErr.Field}
	}

	if statusCode >= http.StatusInternalServerError && statusCode != http.StatusBadGateway {
		logger.Error("request failed", "status", statusCode, "error", err)
	}

	WriteJSON(w, statusCode, response)
}
