package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryDecrease(t *testing.T) {
	ctx := context.Background()

	t.Run("decrements tracked product", func(t *testing.T) {
		inv := NewMemory(map[int64]int64{1: 10})
		require.NoError(t, inv.Decrease(ctx, 1, 3))

		stock, err := inv.GetStock(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(7), stock.Quantity)
	})

	t.Run("insufficient stock leaves level unchanged", func(t *testing.T) {
		inv := NewMemory(map[int64]int64{1: 2})
		err := inv.Decrease(ctx, 1, 3)

		var invErr *InventoryError
		require.ErrorAs(t, err, &invErr)
		assert.Equal(t, codeConflict, invErr.Code)

		stock, err := inv.GetStock(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(2), stock.Quantity)
	})

	t.Run("untracked product", func(t *testing.T) {
		inv := NewMemory(nil)
		err := inv.Decrease(ctx, 99, 1)

		var invErr *InventoryError
		require.ErrorAs(t, err, &invErr)
		assert.Equal(t, codeNotFound, invErr.Code)
	})

	t.Run("non-positive quantity rejected", func(t *testing.T) {
		inv := NewMemory(map[int64]int64{1: 10})
		assert.ErrorIs(t, inv.Decrease(ctx, 1, 0), ErrInvalidQuantity)
		assert.ErrorIs(t, inv.Decrease(ctx, 1, -1), ErrInvalidQuantity)
	})
}

func TestMemoryIncrease(t *testing.T) {
	ctx := context.Background()
	inv := NewMemory(nil)

	require.NoError(t, inv.Increase(ctx, 5, 4))
	require.NoError(t, inv.Increase(ctx, 5, 6))

	stock, err := inv.GetStock(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(10), stock.Quantity, "increase starts tracking unknown products at zero")
}

func TestMemoryGetStock(t *testing.T) {
	inv := NewMemory(map[int64]int64{1: 10})

	_, err := inv.GetStock(context.Background(), 2)
	var invErr *InventoryError
	require.ErrorAs(t, err, &invErr)
	assert.Equal(t, codeNotFound, invErr.Code)
}
