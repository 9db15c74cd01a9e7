// Package session owns the authenticated-user lifecycle: created on login,
// destroyed on logout or expiry, persisted through a pluggable store picked
// at login time. Nothing else in the module holds identity state.
package session

import (
	"time"

	"github.com/ngoclaithe/camerental/domain/user"

	"github.com/golang-jwt/jwt/v5"
)

type Session struct {
	User      user.User `json:"user"`
	Token     string    `json:"token,omitempty"`
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// HasExpired is false when no expiry is known: the cookie then decides and a
// 401 from the API ends the session instead.
func (s Session) HasExpired(now time.Time) bool {
	if s.ExpiresAt.IsZero() {
		return false
	}
	return now.After(s.ExpiresAt)
}

// tokenExpiry reads the exp claim without verifying the signature. The server
// owns the signing key; this side only needs to know when to drop a restored
// session.
func tokenExpiry(token string) time.Time {
	if token == "" {
		return time.Time{}
	}
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}
