package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"stockroom/internal/identity"
)

type stubVerifier struct {
	GetUserFunc func(ctx context.Context, accessToken string) (*identity.User, error)
}

func (s *stubVerifier) GetUser(ctx context.Context, accessToken string) (*identity.User, error) {
	return s.GetUserFunc(ctx, accessToken)
}

func okVerifier(wantToken string, t *testing.T) *stubVerifier {
	return &stubVerifier{
		GetUserFunc: func(ctx context.Context, accessToken string) (*identity.User, error) {
			if accessToken != wantToken {
				t.Errorf("verifier got token %q, want %q", accessToken, wantToken)
			}
			return &identity.User{ID: "user-1", Email: "test@example.com"}, nil
		},
	}
}

func deniedVerifier() *stubVerifier {
	return &stubVerifier{
		GetUserFunc: func(ctx context.Context, accessToken string) (*identity.User, error) {
			return nil, identity.ErrNoSession
		},
	}
}

func TestRequireSession_CookieToken(t *testing.T) {
	var gotUserID, gotEmail string
	handler := RequireSession(okVerifier("cookie-token", t))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = UserID(r.Context())
		gotEmail = Email(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/inventory", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: "cookie-token"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotUserID != "user-1" || gotEmail != "test@example.com" {
		t.Errorf("context user = %q/%q", gotUserID, gotEmail)
	}
}

func TestRequireSession_BearerFallback(t *testing.T) {
	handler := RequireSession(okVerifier("header-token", t))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/api/inventory", nil)
	req.Header.Set("Authorization", "Bearer header-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestRequireSession_Unauthorized(t *testing.T) {
	called := false
	handler := RequireSession(deniedVerifier())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/inventory", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if called {
		t.Error("handler ran without a session")
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestRequirePage_RedirectsToLanding(t *testing.T) {
	handler := RequirePage(deniedVerifier())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("Location = %q, want /", loc)
	}
}

func TestSessionToken_PrefersCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: "from-cookie"})
	req.Header.Set("Authorization", "Bearer from-header")

	if got := SessionToken(req); got != "from-cookie" {
		t.Errorf("SessionToken() = %q, want from-cookie", got)
	}
}
