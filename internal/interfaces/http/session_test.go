package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"stockroom/internal/identity"
)

// MockIdentity implements identityAPI for testing
type MockIdentity struct {
	GetUserFunc func(ctx context.Context, accessToken string) (*identity.User, error)
	SignInFunc  func(ctx context.Context, email, password string) (*identity.Session, error)
	SignOutFunc func(ctx context.Context, accessToken string) error
}

func (m *MockIdentity) SignIn(ctx context.Context, email, password string) (*identity.Session, error) {
	if m.SignInFunc != nil {
		return m.SignInFunc(ctx, email, password)
	}
	return nil, identity.ErrBadCredentials
}

func (m *MockIdentity) GetUser(ctx context.Context, accessToken string) (*identity.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, accessToken)
	}
	return nil, identity.ErrNoSession
}

func (m *MockIdentity) SignOut(ctx context.Context, accessToken string) error {
	if m.SignOutFunc != nil {
		return m.SignOutFunc(ctx, accessToken)
	}
	return nil
}

func TestHandleSession_Get(t *testing.T) {
	handler := NewSessionHandler(&MockIdentity{}, zap.NewNop())

	req := sessionContext(httptest.NewRequest(http.MethodGet, "/api/session", nil), "user-1")
	rec := httptest.NewRecorder()
	handler.HandleSession(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if body := rec.Body.String(); !strings.Contains(body, "user-1") || !strings.Contains(body, "test@example.com") {
		t.Errorf("body = %s", body)
	}
}

func TestHandleSignIn(t *testing.T) {
	api := &MockIdentity{
		SignInFunc: func(ctx context.Context, email, password string) (*identity.Session, error) {
			if email != "test@example.com" || password != "hunter2" {
				t.Errorf("SignIn got %q/%q", email, password)
			}
			return &identity.Session{
				AccessToken: "new-token",
				ExpiresIn:   3600,
				User:        identity.User{ID: "user-1", Email: email},
			}, nil
		},
	}
	handler := NewSessionHandler(api, zap.NewNop())

	body := `{"email":"test@example.com","password":"hunter2"}`
	req := httptest.NewRequest(http.MethodPost, "/api/signin", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.HandleSignIn(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "access_token" {
			cookie = c
		}
	}
	if cookie == nil || cookie.Value != "new-token" || !cookie.HttpOnly || cookie.MaxAge != 3600 {
		t.Errorf("cookie = %+v", cookie)
	}
}

func TestHandleSignIn_BadCredentials(t *testing.T) {
	handler := NewSessionHandler(&MockIdentity{}, zap.NewNop())

	body := `{"email":"test@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/signin", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.HandleSignIn(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestHandleSignIn_MissingFields(t *testing.T) {
	handler := NewSessionHandler(&MockIdentity{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/signin", bytes.NewBufferString(`{"email":"a@b.c"}`))
	rec := httptest.NewRecorder()
	handler.HandleSignIn(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleSignOut(t *testing.T) {
	revoked := ""
	api := &MockIdentity{
		SignOutFunc: func(ctx context.Context, accessToken string) error {
			revoked = accessToken
			return nil
		},
	}
	handler := NewSessionHandler(api, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/signout", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: "session-token"})
	rec := httptest.NewRecorder()
	handler.HandleSignOut(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if revoked != "session-token" {
		t.Errorf("revoked token = %q", revoked)
	}

	var cleared *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "access_token" {
			cleared = c
		}
	}
	if cleared == nil || cleared.Value != "" || cleared.MaxAge != -1 {
		t.Errorf("cookie not cleared: %+v", cleared)
	}
}
