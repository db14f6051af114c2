package middleware

import (
	"context"
	"net/http"
	"strings"

	"stockroom/internal/identity"
)

type ContextKey string

const (
	UserIDKey ContextKey = "user_id"
	EmailKey  ContextKey = "email"
	TokenKey  ContextKey = "access_token"
)

// SessionToken pulls the access token off a request: HttpOnly cookie first
// (browser requests), Authorization header as a fallback (API clients).
func SessionToken(r *http.Request) string {
	if cookie, err := r.Cookie("access_token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	authHeader := r.Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

func withSession(ctx context.Context, user *identity.User, token string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, user.ID)
	ctx = context.WithValue(ctx, EmailKey, user.Email)
	return context.WithValue(ctx, TokenKey, token)
}

// UserID returns the authenticated user's ID, or "" outside a session.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(UserIDKey).(string)
	return id
}

// Email returns the authenticated user's email, or "" outside a session.
func Email(ctx context.Context) string {
	email, _ := ctx.Value(EmailKey).(string)
	return email
}

// Token returns the raw session token, or "" outside a session.
func Token(ctx context.Context) string {
	token, _ := ctx.Value(TokenKey).(string)
	return token
}

// RequireSession guards API routes. Requests without a valid session get a
// 401 JSON body; valid ones continue with the user on the context.
func RequireSession(verifier identity.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := SessionToken(r)
			user, err := verifier.GetUser(r.Context(), token)
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"Authentication required"}`))
				return
			}

			next.ServeHTTP(w, r.WithContext(withSession(r.Context(), user, token)))
		})
	}
}

// RequirePage guards browser pages. Requests without a valid session are
// redirected to the landing page instead of seeing an error body.
func RequirePage(verifier identity.Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := SessionToken(r)
			user, err := verifier.GetUser(r.Context(), token)
			if err != nil {
				http.Redirect(w, r, "/", http.StatusFound)
				return
			}

			next.ServeHTTP(w, r.WithContext(withSession(r.Context(), user, token)))
		})
	}
}
