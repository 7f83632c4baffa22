package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequireAdmin(t *testing.T) {
	t.Run("nil principal fails closed", func(t *testing.T) {
		assert.ErrorIs(t, RequireAdmin(nil), ErrUnauthenticated)
	})

	t.Run("regular user is rejected", func(t *testing.T) {
		p := &Principal{UserID: "u1", Role: RoleUser}
		assert.ErrorIs(t, RequireAdmin(p), ErrForbidden)
	})

	t.Run("admin passes", func(t *testing.T) {
		p := &Principal{UserID: "u1", Role: RoleAdmin}
		assert.NoError(t, RequireAdmin(p))
	})
}

func TestRequireNotSelf(t *testing.T) {
	p := &Principal{UserID: "u1", Role: RoleAdmin}

	assert.ErrorIs(t, RequireNotSelf(p, "u1"), ErrSelfAction)
	assert.NoError(t, RequireNotSelf(p, "u2"))
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("ROOT").Valid())
	assert.False(t, Role("").Valid())
}

func TestPasswordHasher_RoundTrip(t *testing.T) {
	h := NewPasswordHasher()

	hash, err := h.Hash("hunter2!")
	assert.NoError(t, err)
	assert.NotEqual(t, "hunter2!", hash)

	assert.True(t, h.Verify("hunter2!", hash))
	assert.False(t, h.Verify("hunter3!", hash))
}
