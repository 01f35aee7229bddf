package user_test

import (
	"testing"

	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	testCases := []struct {
		in   string
		want user.Role
	}{
		{"Client", user.Client},
		{"owner", user.Owner},
		{" DELIVERY ", user.Delivery},
	}
	for _, tc := range testCases {
		got, err := user.ParseRole(tc.in)

		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
	}

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, in := range []string{"", "Unknown", "Admin"} {
			_, err := user.ParseRole(in)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, in)
		}
	})
}

func TestRole_Validate(t *testing.T) {
	for _, r := range user.Roles() {
		require.NoError(t, r.Validate())
	}
	require.Error(t, user.UnknownRole.Validate())
	require.Error(t, user.Role(42).Validate())
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "Client", user.Client.String())
	assert.Equal(t, "Owner", user.Owner.String())
	assert.Equal(t, "Delivery", user.Delivery.String())
	assert.Equal(t, "Unknown", user.UnknownRole.String())
	assert.Equal(t, "Unknown", user.Role(42).String())
}
