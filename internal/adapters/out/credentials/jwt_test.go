package credentials

import (
	"testing"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActor(t *testing.T, role user.Role) user.Actor {
	t.Helper()
	a, err := user.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return a
}

func TestJWT_IssueVerify(t *testing.T) {
	j, err := NewJWT("secret", time.Hour)
	require.NoError(t, err)
	actor := newActor(t, user.Delivery)

	token, err := j.Issue(actor)
	require.NoError(t, err)

	got, err := j.Verify(token)
	require.NoError(t, err)
	assert.True(t, got.ID().IsEqual(actor.ID()))
	assert.Equal(t, user.Delivery, got.Role())
}

func TestJWT_Verify_Rejects(t *testing.T) {
	j, err := NewJWT("secret", time.Hour)
	require.NoError(t, err)
	actor := newActor(t, user.Owner)

	other, err := NewJWT("other-secret", time.Hour)
	require.NoError(t, err)
	foreign, err := other.Issue(actor)
	require.NoError(t, err)

	expiredIssuer, err := NewJWT("secret", time.Minute)
	require.NoError(t, err)
	expiredIssuer.now = func() time.Time { return time.Now().Add(-time.Hour) }
	expired, err := expiredIssuer.Issue(actor)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		Role:             "Owner",
		RegisteredClaims: jwt.RegisteredClaims{Subject: actor.ID().String()},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	badRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role: "Admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	testCases := map[string]string{
		"garbage":        "not-a-token",
		"foreign secret": foreign,
		"expired":        expired,
		"unsigned":       none,
		"unknown role":   badRole,
	}

	for name, token := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := j.Verify(token)
			require.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestNewJWT_RequiresSecret(t *testing.T) {
	_, err := NewJWT("", time.Hour)
	require.Error(t, err)
}

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(4)

	hash, err := h.Hash("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	require.NoError(t, h.Compare(hash, "correct horse"))
	require.Error(t, h.Compare(hash, "battery staple"))
}
