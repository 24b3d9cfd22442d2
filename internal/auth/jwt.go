package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every way a presented token can fail verification:
// bad signature, expired, malformed.
var ErrInvalidToken = errors.New("invalid or expired session token")

// adminSubject is the only principal; there is a single shared admin account.
const adminSubject = "admin"

// Sessions issues and verifies signed admin session tokens. Tokens are HS256
// JWTs with an expiry; nothing is stored server-side, so restarting the
// service does not invalidate live sessions.
type Sessions struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSessions creates a session manager. now is injectable for tests and
// defaults to the real clock.
func NewSessions(secret []byte, ttl time.Duration, now func() time.Time) *Sessions {
	if now == nil {
		now = time.Now
	}
	return &Sessions{secret: secret, ttl: ttl, now: now}
}

// Issue mints a fresh admin session token.
func (s *Sessions) Issue() (string, error) {
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   adminSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, expiry and subject. Any failure is ErrInvalidToken.
func (s *Sessions) Verify(tokenString string) error {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}
	if claims.Subject != adminSubject {
		return ErrInvalidToken
	}
	return nil
}
