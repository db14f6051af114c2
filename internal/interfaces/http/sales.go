package http

import (
	"net/http"

	"go.uber.org/zap"

	"stockroom/internal/domain/sales"
	"stockroom/internal/shared/apperr"
	"stockroom/internal/shared/middleware"
)

type SalesHandler struct {
	repo   sales.Repository
	logger *zap.Logger
}

func NewSalesHandler(repo sales.Repository, logger *zap.Logger) *SalesHandler {
	return &SalesHandler{repo: repo, logger: logger}
}

type salesResponse struct {
	Sales   []sales.Sale  `json:"sales"`
	Summary sales.Summary `json:"summary"`
}

// HandleSales returns the caller's sale history, newest first, with the
// revenue and units-sold totals.
func (h *SalesHandler) HandleSales(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID := middleware.UserID(r.Context())

	rows, err := h.repo.List(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, apperr.RemoteRead("Failed to load sales", err))
		return
	}

	writeJSON(w, http.StatusOK, salesResponse{
		Sales:   rows,
		Summary: sales.Summarize(rows),
	})
}
