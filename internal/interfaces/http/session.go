package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"stockroom/internal/identity"
	"stockroom/internal/shared/apperr"
	"stockroom/internal/shared/middleware"
)

// identityAPI is the slice of the identity client the session endpoints use.
type identityAPI interface {
	GetUser(ctx context.Context, accessToken string) (*identity.User, error)
	SignIn(ctx context.Context, email, password string) (*identity.Session, error)
	SignOut(ctx context.Context, accessToken string) error
}

type SessionHandler struct {
	identity identityAPI
	logger   *zap.Logger
}

func NewSessionHandler(api identityAPI, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{identity: api, logger: logger}
}

type sessionResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// HandleSession echoes the session the guard already verified, so pages can
// render the signed-in user without another provider round trip.
func (h *SessionHandler) HandleSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{
		ID:    middleware.UserID(r.Context()),
		Email: middleware.Email(r.Context()),
	})
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleSignIn proxies the password grant to the identity provider and turns
// the returned token into an HttpOnly session cookie.
func (h *SessionHandler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req signInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, apperr.Validation("Invalid request body"))
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, h.logger, apperr.Validation("Email and password are required"))
		return
	}

	session, err := h.identity.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, identity.ErrBadCredentials) {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Invalid email or password"})
			return
		}
		writeError(w, h.logger, apperr.RemoteRead("Failed to sign in", err))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    session.AccessToken,
		Path:     "/",
		MaxAge:   session.ExpiresIn,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, http.StatusOK, sessionResponse{ID: session.User.ID, Email: session.User.Email})
}

// HandleSignOut revokes the session upstream and clears the cookie. The
// cookie is cleared even when revocation fails; the token will expire on its
// own.
func (h *SessionHandler) HandleSignOut(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if token := middleware.SessionToken(r); token != "" {
		if err := h.identity.SignOut(r.Context(), token); err != nil {
			h.logger.Warn("failed to revoke session upstream", zap.Error(err))
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	w.WriteHeader(http.StatusNoContent)
}
