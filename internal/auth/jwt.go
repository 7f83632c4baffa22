package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/light-bringer/storefront-service/internal/pkg/clock"
)

var (
	// ErrInvalidToken is returned when a token fails verification.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned when a token has expired.
	ErrExpiredToken = errors.New("token has expired")
)

// SessionConfig holds session token configuration.
type SessionConfig struct {
	SecretKey     string
	TokenDuration time.Duration
	Issuer        string
}

// DefaultSessionConfig returns sane development defaults. The secret
// key must come from the environment in production.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		SecretKey:     "dev-secret-change-me",
		TokenDuration: 24 * time.Hour,
		Issuer:        "storefront-service",
	}
}

// SessionClaims are the custom claims carried by session tokens.
type SessionClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// SessionManager issues and verifies session tokens.
type SessionManager struct {
	config SessionConfig
	clock  clock.Clock
}

// NewSessionManager creates a SessionManager with the given configuration.
func NewSessionManager(config SessionConfig, clk clock.Clock) *SessionManager {
	return &SessionManager{
		config: config,
		clock:  clk,
	}
}

// Issue creates a signed session token for the given principal.
func (m *SessionManager) Issue(p Principal) (string, error) {
	now := m.clock.Now()
	claims := SessionClaims{
		UserID: p.UserID,
		Role:   string(p.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.config.Issuer,
			Subject:   p.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.config.TokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(m.config.SecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses a session token and returns the principal it encodes.
func (m *SessionManager) Verify(tokenString string) (*Principal, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(m.config.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	role := Role(claims.Role)
	if !role.Valid() {
		return nil, ErrInvalidToken
	}

	return &Principal{
		UserID: claims.UserID,
		Role:   role,
	}, nil
}
