package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"eduvent/internal/domain"
)

type credentialChecker struct {
	username string
	hash     []byte
}

// NewCredentialChecker returns a CredentialChecker for the single admin
// account. If passwordHash is empty the plaintext password is hashed once at
// construction, so comparisons always run through bcrypt.
func NewCredentialChecker(username, password, passwordHash string) (domain.CredentialChecker, error) {
	hash := []byte(passwordHash)
	if passwordHash == "" {
		h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash = h
	}
	return &credentialChecker{username: username, hash: hash}, nil
}

func (c *credentialChecker) Check(username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(c.hash, []byte(password))
	if !userOK || passErr != nil {
		return domain.ErrInvalidCredentials
	}
	return nil
}
