package party_test

import (
	"testing"

	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/party"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRole_Validate(t *testing.T) {
	t.Run("valid_roles", func(t *testing.T) {
		require.NoError(t, party.Sender.Validate())
		require.NoError(t, party.Receiver.Validate())
	})

	t.Run("invalid_roles", func(t *testing.T) {
		require.Error(t, party.Unknown.Validate())
		require.Error(t, party.Role(99).Validate())
	})
}

func TestRole_String(t *testing.T) {
	assert.Equal(t, "sender", party.Sender.String())
	assert.Equal(t, "receiver", party.Receiver.String())
	assert.Equal(t, "Unknown", party.Unknown.String())
	assert.Equal(t, "Unknown", party.Role(99).String())
}

func TestRoleFromString(t *testing.T) {
	t.Run("parses_valid_roles", func(t *testing.T) {
		role, err := party.RoleFromString("sender")
		require.NoError(t, err)
		assert.Equal(t, party.Sender, role)

		role, err = party.RoleFromString("receiver")
		require.NoError(t, err)
		assert.Equal(t, party.Receiver, role)
	})

	t.Run("rejects_unknown_strings", func(t *testing.T) {
		for _, s := range []string{"", "Sender", "cnor", "unknown"} {
			_, err := party.RoleFromString(s)
			require.Error(t, err, "input %q", s)
		}
	})
}
