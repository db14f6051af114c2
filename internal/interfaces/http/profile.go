package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"stockroom/internal/domain/profile"
	"stockroom/internal/shared/apperr"
	"stockroom/internal/shared/middleware"
)

type ProfileHandler struct {
	service *profile.Service
	logger  *zap.Logger
}

func NewProfileHandler(service *profile.Service, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{service: service, logger: logger}
}

type UpdateProfileRequest struct {
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url"`
}

type AddEbayAccountRequest struct {
	AccountName string `json:"account_name"`
}

// HandleProfile routes /api/profile by method.
func (h *ProfileHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleGetProfile(w, r)
	case http.MethodPut:
		h.handleUpdateProfile(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleEbayAccounts routes /api/ebay-accounts by method.
func (h *ProfileHandler) HandleEbayAccounts(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleListAccounts(w, r)
	case http.MethodPost:
		h.handleAddAccount(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleEbayAccountByID routes /api/ebay-accounts/{id} by method.
func (h *ProfileHandler) HandleEbayAccountByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	h.handleDeleteAccount(w, r)
}

func (h *ProfileHandler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	p, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			writeError(w, h.logger, apperr.NotFound("Profile not found"))
			return
		}
		writeError(w, h.logger, apperr.RemoteRead("Failed to load profile", err))
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (h *ProfileHandler) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, apperr.Validation("Invalid request body"))
		return
	}

	if err := h.service.UpdateProfile(r.Context(), userID, req.FullName, req.AvatarURL); err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			writeError(w, h.logger, apperr.NotFound("Profile not found"))
			return
		}
		writeError(w, h.logger, apperr.RemoteWrite("Failed to update profile", err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ProfileHandler) handleListAccounts(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	accounts, err := h.service.ListEbayAccounts(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, apperr.RemoteRead("Failed to load ebay accounts", err))
		return
	}

	writeJSON(w, http.StatusOK, accounts)
}

func (h *ProfileHandler) handleAddAccount(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	var req AddEbayAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, apperr.Validation("Invalid request body"))
		return
	}

	if err := h.service.AddEbayAccount(r.Context(), userID, req.AccountName); err != nil {
		if errors.Is(err, profile.ErrAccountNameEmpty) {
			writeError(w, h.logger, apperr.Validation("Account name is required"))
			return
		}
		writeError(w, h.logger, apperr.RemoteWrite("Failed to add ebay account", err))
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *ProfileHandler) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	id := r.PathValue("id")
	if id == "" {
		writeError(w, h.logger, apperr.Validation("Account ID is required"))
		return
	}

	if err := h.service.DeleteEbayAccount(r.Context(), userID, id); err != nil {
		if errors.Is(err, profile.ErrAccountNotFound) {
			writeError(w, h.logger, apperr.NotFound("Account not found"))
			return
		}
		writeError(w, h.logger, apperr.RemoteWrite("Failed to remove ebay account", err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
