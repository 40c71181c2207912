// Package user holds account lifecycle use cases for customers and
// admins: registration, login, token refresh, profile and subscription
// management.
package user

import "github.com/tradesift-io/tradesift/internal/shared/authorization"

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) error
}

// TokenPair is one issued access/refresh token pair.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// TokenIssuer mints and refreshes signed token pairs.
type TokenIssuer interface {
	IssuePair(userID uint, userType authorization.UserType) (*TokenPair, error)
	Refresh(refreshToken string) (*TokenPair, error)
}
