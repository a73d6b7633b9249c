package domain

import (
	"context"
	"time"
)

// CredentialChecker verifies a submitted credential pair against the single
// configured administrator account.
type CredentialChecker interface {
	Check(username, password string) error
}

// TokenIssuer signs session tokens for the admin surface.
type TokenIssuer interface {
	Issue(subject string, expiry time.Duration) (string, error)
}

// TokenVerifier validates a session token and returns its subject.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// AuthService handles the admin session: a credential match on login, a
// bearer token for subsequent requests, and a persisted session marker.
type AuthService interface {
	// Login returns a session token, or ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, error)
	Logout(ctx context.Context) error
}
