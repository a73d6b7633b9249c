package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eduvent/internal/domain"
)

type authService struct {
	checker domain.CredentialChecker
	issuer  domain.TokenIssuer
	prefs   domain.PreferenceStore
	expiry  time.Duration
}

// NewAuthService returns the admin-session service. The credential check is
// a fixed-pair comparison; there are no user accounts.
func NewAuthService(checker domain.CredentialChecker, issuer domain.TokenIssuer, prefs domain.PreferenceStore, expiry time.Duration) domain.AuthService {
	return &authService{
		checker: checker,
		issuer:  issuer,
		prefs:   prefs,
		expiry:  expiry,
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	if err := s.checker.Check(username, password); err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("check credentials: %w", err)
	}
	token, err := s.issuer.Issue(username, s.expiry)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	if err := s.prefs.SetAdminSession(true); err != nil {
		return "", fmt.Errorf("set admin session: %w", err)
	}
	return token, nil
}

func (s *authService) Logout(ctx context.Context) error {
	if err := s.prefs.SetAdminSession(false); err != nil {
		return fmt.Errorf("clear admin session: %w", err)
	}
	return nil
}
