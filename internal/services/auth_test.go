package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduvent/internal/adapters/auth"
	"eduvent/internal/domain"
)

// fakePrefs is an in-memory PreferenceStore.
type fakePrefs struct {
	theme        string
	adminSession bool
}

func (f *fakePrefs) Theme() (string, error)            { return f.theme, nil }
func (f *fakePrefs) SaveTheme(theme string) error      { f.theme = theme; return nil }
func (f *fakePrefs) AdminSessionActive() (bool, error) { return f.adminSession, nil }
func (f *fakePrefs) SetAdminSession(active bool) error { f.adminSession = active; return nil }

func newAuthService(t *testing.T, prefs *fakePrefs) domain.AuthService {
	t.Helper()
	checker, err := auth.NewCredentialChecker("admin", "admin123", "")
	require.NoError(t, err)
	return NewAuthService(checker, auth.NewJWTTokens("test-secret"), prefs, time.Hour)
}

func TestLogin_ValidCredentialsIssueTokenAndSetMarker(t *testing.T) {
	prefs := &fakePrefs{}
	svc := newAuthService(t, prefs)

	token, err := svc.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, prefs.adminSession)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	prefs := &fakePrefs{}
	svc := newAuthService(t, prefs)

	_, err := svc.Login(context.Background(), "admin", "nope")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.False(t, prefs.adminSession)
}

func TestLogout_ClearsMarker(t *testing.T) {
	prefs := &fakePrefs{adminSession: true}
	svc := newAuthService(t, prefs)

	require.NoError(t, svc.Logout(context.Background()))
	assert.False(t, prefs.adminSession)
}
