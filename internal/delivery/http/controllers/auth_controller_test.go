package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eduvent/internal/domain"
)

type fakeAuthService struct {
	token     string
	loginErr  error
	loggedOut bool
}

func (f *fakeAuthService) Login(ctx context.Context, username, password string) (string, error) {
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.token, nil
}

func (f *fakeAuthService) Logout(ctx context.Context) error {
	f.loggedOut = true
	return nil
}

func TestAuthController_Login_Success(t *testing.T) {
	ctrl := NewAuthController(testLogger(), &fakeAuthService{token: "tok-123"})

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"admin","password":"admin123"}`))
	w := httptest.NewRecorder()
	ctrl.Login(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if !strings.Contains(w.Body.String(), "tok-123") {
		t.Fatalf("expected token in response, got %s", w.Body.String())
	}
}

func TestAuthController_Login_InvalidCredentials(t *testing.T) {
	ctrl := NewAuthController(testLogger(), &fakeAuthService{loginErr: domain.ErrInvalidCredentials})

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"admin","password":"wrong"}`))
	w := httptest.NewRecorder()
	ctrl.Login(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestAuthController_Logout(t *testing.T) {
	svc := &fakeAuthService{}
	ctrl := NewAuthController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	w := httptest.NewRecorder()
	ctrl.Logout(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, w.Code)
	}
	if !svc.loggedOut {
		t.Fatal("expected logout to reach the service")
	}
}

type fakePrefs struct {
	theme  string
	active bool
}

func (f *fakePrefs) Theme() (string, error)            { return f.theme, nil }
func (f *fakePrefs) SaveTheme(theme string) error      { f.theme = theme; return nil }
func (f *fakePrefs) AdminSessionActive() (bool, error) { return f.active, nil }
func (f *fakePrefs) SetAdminSession(active bool) error { f.active = active; return nil }

func TestThemeController_RoundTrip(t *testing.T) {
	prefs := &fakePrefs{theme: "light"}
	ctrl := NewThemeController(testLogger(), prefs)

	req := httptest.NewRequest(http.MethodPut, "/preferences/theme", strings.NewReader(`{"theme":"dark"}`))
	w := httptest.NewRecorder()
	ctrl.PutTheme(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/preferences/theme", nil)
	w = httptest.NewRecorder()
	ctrl.GetTheme(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if !strings.Contains(w.Body.String(), "dark") {
		t.Fatalf("expected dark theme, got %s", w.Body.String())
	}
}

func TestThemeController_RejectsUnknownTheme(t *testing.T) {
	ctrl := NewThemeController(testLogger(), &fakePrefs{})

	req := httptest.NewRequest(http.MethodPut, "/preferences/theme", strings.NewReader(`{"theme":"solarized"}`))
	w := httptest.NewRecorder()
	ctrl.PutTheme(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}
