package party_test

import (
	"strings"
	"testing"

	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/kernel"
	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/party"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFields() party.Fields {
	return party.Fields{
		Name:        "Linh Tran",
		Phone:       "+84 912 345 678",
		AddressLine: "12 Nguyen Hue",
		City:        "Da Nang",
		PostalCode:  "550000",
	}
}

func accountID(id kernel.ID) *kernel.ID {
	return &id
}

func TestNewParty(t *testing.T) {
	t.Run("creates_sender_linked_to_account", func(t *testing.T) {
		p, err := party.NewParty(validFields(), party.Sender, accountID(7))

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, party.Sender, p.Role())
		require.NotNil(t, p.OwnerAccountID())
		assert.Equal(t, kernel.ID(7), *p.OwnerAccountID())
		assert.Equal(t, "Linh Tran", p.Name())
		assert.False(t, p.ID().IsAssigned())
	})

	t.Run("creates_receiver_without_account_link", func(t *testing.T) {
		p, err := party.NewParty(validFields(), party.Receiver, nil)

		require.NoError(t, err)
		assert.Equal(t, party.Receiver, p.Role())
		assert.Nil(t, p.OwnerAccountID())
	})

	t.Run("sender_without_account_is_rejected", func(t *testing.T) {
		_, err := party.NewParty(validFields(), party.Sender, nil)

		require.Error(t, err)
		assert.Equal(t, party.ErrSenderRequiresOwner, err)
	})

	t.Run("receiver_with_account_is_rejected", func(t *testing.T) {
		_, err := party.NewParty(validFields(), party.Receiver, accountID(7))

		require.Error(t, err)
		assert.Equal(t, party.ErrReceiverMustNotHaveOwner, err)
	})

	t.Run("invalid_role_is_rejected", func(t *testing.T) {
		_, err := party.NewParty(validFields(), party.Unknown, nil)
		require.Error(t, err)
	})

	t.Run("trims_whitespace_from_fields", func(t *testing.T) {
		fields := validFields()
		fields.Name = "  Linh Tran  "

		p, err := party.NewParty(fields, party.Receiver, nil)

		require.NoError(t, err)
		assert.Equal(t, "Linh Tran", p.Name())
	})
}

func TestNewParty_FieldValidation(t *testing.T) {
	t.Run("missing_required_fields_reported_together", func(t *testing.T) {
		_, err := party.NewParty(party.Fields{}, party.Receiver, nil)

		require.Error(t, err)
		var validationErr *party.ValidationError
		require.ErrorAs(t, err, &validationErr)

		assert.Len(t, validationErr.Fields, 4)
		assert.Equal(t, "is required", validationErr.Fields["name"])
		assert.Equal(t, "is required", validationErr.Fields["phone"])
		assert.Equal(t, "is required", validationErr.Fields["addressLine"])
		assert.Equal(t, "is required", validationErr.Fields["city"])
	})

	t.Run("postal_code_is_optional", func(t *testing.T) {
		fields := validFields()
		fields.PostalCode = ""

		_, err := party.NewParty(fields, party.Receiver, nil)

		require.NoError(t, err)
	})

	t.Run("overlong_fields_are_rejected", func(t *testing.T) {
		fields := validFields()
		fields.Name = strings.Repeat("x", 121)
		fields.PostalCode = strings.Repeat("9", 17)

		_, err := party.NewParty(fields, party.Receiver, nil)

		require.Error(t, err)
		var validationErr *party.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Fields, "name")
		assert.Contains(t, validationErr.Fields, "postalCode")
	})

	t.Run("error_message_lists_fields_deterministically", func(t *testing.T) {
		_, err := party.NewParty(party.Fields{}, party.Receiver, nil)

		require.Error(t, err)
		assert.Equal(t,
			"party fields are invalid: addressLine: is required; city: is required; "+
				"name: is required; phone: is required",
			err.Error())
	})
}

func TestRestoreParty(t *testing.T) {
	t.Run("restores_persisted_party", func(t *testing.T) {
		p, err := party.RestoreParty(42, validFields(), party.Sender, accountID(7))

		require.NoError(t, err)
		assert.Equal(t, kernel.ID(42), p.ID())
	})

	t.Run("rejects_unassigned_id", func(t *testing.T) {
		_, err := party.RestoreParty(0, validFields(), party.Receiver, nil)
		require.Error(t, err)
	})
}

func TestParty_Validate(t *testing.T) {
	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var p party.Party

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, party.ErrPartyIsNotConstructed, err)
	})
}

func TestParty_IsEqual(t *testing.T) {
	a, err := party.RestoreParty(1, validFields(), party.Receiver, nil)
	require.NoError(t, err)
	b, err := party.RestoreParty(1, validFields(), party.Receiver, nil)
	require.NoError(t, err)
	c, err := party.RestoreParty(2, validFields(), party.Receiver, nil)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))

	unsaved, err := party.NewParty(validFields(), party.Receiver, nil)
	require.NoError(t, err)
	assert.False(t, unsaved.IsEqual(unsaved))
}
