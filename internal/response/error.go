package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/driverscash/driverscash-backend/internal/errs"
	"github.com/driverscash/driverscash-backend/pkg/logger"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (h *responseHandler) WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(ErrorResponse{Code: code, Message: message}); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode error response",
			"error", err, "status", status, "code", code)
	}
}

// HandleError maps the error taxonomy onto HTTP statuses for the JSON query
// endpoints. Store failures deliberately hide the cause from the caller.
func (h *responseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	switch e := err.(type) {
	case *errs.NotFoundError:
		log.Warn("resource not found", "error", e.Message)
		h.WriteError(w, r, http.StatusNotFound, "not_found", e.Message)

	case *errs.InvalidNumberError:
		log.Warn("invalid numeric input", "error", e.Message)
		h.WriteError(w, r, http.StatusBadRequest, "invalid_input", e.Message)

	case *errs.UnrecognizedError:
		log.Warn("unrecognized command", "error", e.Message)
		h.WriteError(w, r, http.StatusBadRequest, "unrecognized", e.Message)

	case *errs.UnauthenticatedError:
		log.Warn("unauthenticated request", "error", e.Message)
		h.WriteError(w, r, http.StatusUnauthorized, "unauthenticated", e.Message)

	case *errs.StoreUnavailableError:
		log.Error("row store unavailable", "operation", e.Operation, "error", e.Err)
		h.WriteError(w, r, http.StatusServiceUnavailable, "store_unavailable",
			"Service temporarily unavailable")

	case *errs.TranscriptionError:
		log.Error("transcription failed", "error", e.Err)
		h.WriteError(w, r, http.StatusBadGateway, "transcription_failed",
			"Could not process audio")

	default:
		log.Error("unexpected error", "error", err, "type", fmt.Sprintf("%T", err))
		h.WriteError(w, r, http.StatusInternalServerError, "internal_error",
			"An unexpected error occurred")
	}
}
