package order_test

import (
	"testing"
	"time"

	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/kernel"
	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDistance(t *testing.T, km float64) kernel.Distance {
	t.Helper()
	d, err := kernel.NewDistance(km)
	require.NoError(t, err)
	return d
}

func TestNewOrder(t *testing.T) {
	t.Run("creates_valid_order", func(t *testing.T) {
		ord, err := order.NewOrder(1, 2, "cod", "2 boxes of books", "leave at reception",
			mustDistance(t, 120), decimal.NewFromFloat(25.0))

		require.NoError(t, err)
		require.NoError(t, ord.Validate())
		assert.Equal(t, kernel.ID(1), ord.SenderID())
		assert.Equal(t, kernel.ID(2), ord.ReceiverID())
		assert.Equal(t, "cod", ord.PaymentMethod())
		assert.Equal(t, "2 boxes of books", ord.ProductPreview())
		assert.Equal(t, "leave at reception", ord.Note())
		assert.True(t, ord.ShippingPrice().Equal(decimal.NewFromFloat(25.0)))
		assert.NotEqual(t, uuid.Nil, ord.TrackingCode())
		assert.False(t, ord.DateCreated().IsZero())
		assert.False(t, ord.ID().IsAssigned())
	})

	t.Run("preview_and_note_are_optional", func(t *testing.T) {
		ord, err := order.NewOrder(1, 2, "card", "", "",
			mustDistance(t, 50), decimal.NewFromInt(10))

		require.NoError(t, err)
		assert.Empty(t, ord.ProductPreview())
		assert.Empty(t, ord.Note())
	})

	t.Run("rejects_unassigned_party_references", func(t *testing.T) {
		_, err := order.NewOrder(0, 2, "cod", "", "",
			mustDistance(t, 50), decimal.NewFromInt(10))
		require.Error(t, err)

		_, err = order.NewOrder(1, 0, "cod", "", "",
			mustDistance(t, 50), decimal.NewFromInt(10))
		require.Error(t, err)
	})

	t.Run("rejects_same_party_for_both_roles", func(t *testing.T) {
		_, err := order.NewOrder(5, 5, "cod", "", "",
			mustDistance(t, 50), decimal.NewFromInt(10))

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrPartiesMustDiffer)
	})

	t.Run("rejects_missing_payment_method", func(t *testing.T) {
		_, err := order.NewOrder(1, 2, "  ", "", "",
			mustDistance(t, 50), decimal.NewFromInt(10))
		require.Error(t, err)
	})

	t.Run("rejects_negative_shipping_price", func(t *testing.T) {
		_, err := order.NewOrder(1, 2, "cod", "", "",
			mustDistance(t, 50), decimal.NewFromInt(-1))
		require.Error(t, err)
	})

	t.Run("rejects_unconstructed_distance", func(t *testing.T) {
		_, err := order.NewOrder(1, 2, "cod", "", "",
			kernel.Distance{}, decimal.NewFromInt(10))
		require.Error(t, err)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores_persisted_order", func(t *testing.T) {
		trackingCode := uuid.New()
		createdAt := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

		ord, err := order.RestoreOrder(11, 1, 2, "cod", "books", "",
			mustDistance(t, 120), decimal.NewFromFloat(25.0), trackingCode, createdAt)

		require.NoError(t, err)
		assert.Equal(t, kernel.ID(11), ord.ID())
		assert.Equal(t, trackingCode, ord.TrackingCode())
		assert.Equal(t, createdAt, ord.DateCreated())
	})

	t.Run("rejects_unassigned_id", func(t *testing.T) {
		_, err := order.RestoreOrder(0, 1, 2, "cod", "", "",
			mustDistance(t, 120), decimal.NewFromInt(10), uuid.New(), time.Now())
		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var ord order.Order

		err := ord.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	a, err := order.RestoreOrder(1, 1, 2, "cod", "", "",
		mustDistance(t, 10), decimal.NewFromInt(5), uuid.New(), time.Now().UTC())
	require.NoError(t, err)
	b, err := order.RestoreOrder(1, 3, 4, "card", "", "",
		mustDistance(t, 20), decimal.NewFromInt(7), uuid.New(), time.Now().UTC())
	require.NoError(t, err)
	c, err := order.RestoreOrder(2, 1, 2, "cod", "", "",
		mustDistance(t, 10), decimal.NewFromInt(5), uuid.New(), time.Now().UTC())
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}
