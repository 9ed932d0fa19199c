package order_test

import (
	"strings"
	"testing"

	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/kernel"
	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/order"
	"github.com/AbdullahAlSalim/skywayexpress/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineItem(t *testing.T) {
	t.Run("creates_valid_line_item", func(t *testing.T) {
		item, err := order.NewLineItem("Crimson and Clover LP", "150")

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, "Crimson and Clover LP", item.Name())
		assert.Equal(t, int64(150), item.Price())
		assert.False(t, item.ID().IsAssigned())
		assert.False(t, item.OrderID().IsAssigned())
	})

	t.Run("rejects_missing_name", func(t *testing.T) {
		_, err := order.NewLineItem("  ", "150")
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_overlong_name", func(t *testing.T) {
		_, err := order.NewLineItem(strings.Repeat("x", 256), "150")
		require.Error(t, err)
	})
}

func TestNewLineItem_PriceCoercion(t *testing.T) {
	t.Run("accepts_integer_coercible_prices", func(t *testing.T) {
		tests := []struct {
			raw  string
			want int64
		}{
			{"150", 150},
			{"0", 0},
			{" 42 ", 42},
			{"12.0", 12},
			{"3e2", 300},
		}

		for _, tt := range tests {
			item, err := order.NewLineItem("item", tt.raw)
			require.NoError(t, err, "raw %q", tt.raw)
			assert.Equal(t, tt.want, item.Price(), "raw %q", tt.raw)
		}
	})

	t.Run("rejects_non_coercible_prices", func(t *testing.T) {
		for _, raw := range []string{"", "abc", "12.5", "1,5", "12.5kg"} {
			_, err := order.NewLineItem("item", raw)
			require.Error(t, err, "raw %q", raw)
		}
	})

	t.Run("rejects_negative_prices", func(t *testing.T) {
		_, err := order.NewLineItem("item", "-5")
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("reports_name_and_price_violations_together", func(t *testing.T) {
		_, err := order.NewLineItem("", "abc")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreLineItem(t *testing.T) {
	t.Run("restores_persisted_line_item", func(t *testing.T) {
		item, err := order.RestoreLineItem(3, 11, "vinyl record", 150)

		require.NoError(t, err)
		assert.Equal(t, kernel.ID(3), item.ID())
		assert.Equal(t, kernel.ID(11), item.OrderID())
		assert.Equal(t, int64(150), item.Price())
	})

	t.Run("rejects_unassigned_identifiers", func(t *testing.T) {
		_, err := order.RestoreLineItem(0, 11, "vinyl record", 150)
		require.Error(t, err)

		_, err = order.RestoreLineItem(3, 0, "vinyl record", 150)
		require.Error(t, err)
	})

	t.Run("rejects_negative_price", func(t *testing.T) {
		_, err := order.RestoreLineItem(3, 11, "vinyl record", -1)
		require.Error(t, err)
	})
}

func TestLineItem_Validate(t *testing.T) {
	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var item order.LineItem

		err := item.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrLineItemIsNotConstructed, err)
	})
}
