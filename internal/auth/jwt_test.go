package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/storefront-service/internal/pkg/clock"
)

func testConfig() SessionConfig {
	return SessionConfig{
		SecretKey:     "test-secret",
		TokenDuration: time.Hour,
		Issuer:        "storefront-test",
	}
}

func TestSessionManager_IssueAndVerify(t *testing.T) {
	m := NewSessionManager(testConfig(), clock.NewRealClock())

	token, err := m.Issue(Principal{UserID: "user-1", Role: RoleAdmin})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	p, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", p.UserID)
	assert.Equal(t, RoleAdmin, p.Role)
}

func TestSessionManager_VerifyRejectsWrongSecret(t *testing.T) {
	m := NewSessionManager(testConfig(), clock.NewRealClock())
	token, err := m.Issue(Principal{UserID: "user-1", Role: RoleUser})
	require.NoError(t, err)

	other := NewSessionManager(SessionConfig{
		SecretKey:     "different-secret",
		TokenDuration: time.Hour,
		Issuer:        "storefront-test",
	}, clock.NewRealClock())

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionManager_VerifyRejectsExpired(t *testing.T) {
	// Issue in the past so the one-hour lifetime has already elapsed.
	past := clock.NewMockClock(time.Now().Add(-2 * time.Hour))
	m := NewSessionManager(testConfig(), past)

	token, err := m.Issue(Principal{UserID: "user-1", Role: RoleUser})
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestSessionManager_VerifyRejectsGarbage(t *testing.T) {
	m := NewSessionManager(testConfig(), clock.NewRealClock())

	_, err := m.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
