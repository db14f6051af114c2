package http

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"stockroom/internal/shared/apperr"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError renders an error with the status its kind maps to. Internal
// detail goes to the log, never to the client.
func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	status := apperr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", zap.Error(err))
	} else {
		logger.Warn("request rejected", zap.Error(err))
	}
	writeJSON(w, status, errorResponse{Error: apperr.MessageOf(err)})
}
