package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/licensehub/client-admin/internal/core/domain"
)

type stubAuthService struct {
	loginFn          func(ctx context.Context, username, password string) (string, error)
	logoutFn         func(ctx context.Context, username string) error
	changePasswordFn func(ctx context.Context, username, current, newPw string) error
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Logout(ctx context.Context, username string) error {
	return s.logoutFn(ctx, username)
}

func (s *stubAuthService) ChangePassword(ctx context.Context, username, current, newPw string) error {
	return s.changePasswordFn(ctx, username, current, newPw)
}

func (s *stubAuthService) Verify(context.Context, string) (string, error) {
	return "", domain.ErrInvalidToken
}

func newJSONContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, username, password string) (string, error) {
			if username != "admin" || password != "correct" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return "signed-token", nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/api/login", `{"username":"admin","password":"correct"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "signed-token" || resp["username"] != "admin" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if resp["message"] == "" {
		t.Fatalf("expected message in payload")
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	called := false
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, error) {
			called = true
			return "", nil
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newJSONContext(t, http.MethodPost, "/api/login", `{"username":"admin"}`)
	err := h.Login(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if called {
		t.Fatalf("service must not be called on validation failure")
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newJSONContext(t, http.MethodPost, "/api/login", `{"username":"admin","password":"wrong"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	var loggedOut string
	stub := &stubAuthService{
		logoutFn: func(_ context.Context, username string) error {
			loggedOut = username
			return nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/api/logout", `{"username":"admin"}`)
	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if loggedOut != "admin" {
		t.Fatalf("expected logout for admin, got %q", loggedOut)
	}
}

func TestAuthHandler_ChangePassword_ShortPassword(t *testing.T) {
	called := false
	stub := &stubAuthService{
		changePasswordFn: func(context.Context, string, string, string) error {
			called = true
			return nil
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newJSONContext(t, http.MethodPost, "/api/change-password",
		`{"currentPassword":"old-pass","newPassword":"short"}`)
	c.Set("username", "admin")

	err := h.ChangePassword(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if called {
		t.Fatalf("service must not be called for a short password")
	}
}

func TestAuthHandler_ChangePassword_Success(t *testing.T) {
	stub := &stubAuthService{
		changePasswordFn: func(_ context.Context, username, current, newPw string) error {
			if username != "admin" || current != "old-pass" || newPw != "new-password" {
				t.Fatalf("unexpected args: %s %s %s", username, current, newPw)
			}
			return nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newJSONContext(t, http.MethodPost, "/api/change-password",
		`{"currentPassword":"old-pass","newPassword":"new-password"}`)
	c.Set("username", "admin")

	if err := h.ChangePassword(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
