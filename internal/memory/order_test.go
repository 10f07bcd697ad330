package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukerupert/orderflow/internal/domain"
)

func validatedOrder(t *testing.T) domain.ValidatedOrder {
	t.Helper()

	price, err := domain.NewMoney(1000)
	require.NoError(t, err)
	item, err := domain.NewOrderItem(1, 2, price)
	require.NoError(t, err)

	addr, err := domain.ValidateAddress(domain.UnvalidatedAddress{
		PostalCode:  "1500001",
		Prefecture:  "東京都",
		City:        "渋谷区",
		AddressLine: "神宮前1-2-3",
	})
	require.NoError(t, err)

	info, err := domain.ValidateCustomerInfo(domain.UnvalidatedCustomerInfo{
		Name:  "山田太郎",
		Email: "taro@example.com",
		Phone: "090-1234-5678",
	})
	require.NoError(t, err)

	order, err := domain.NewValidatedOrder([]domain.OrderItem{item}, addr, info)
	require.NoError(t, err)
	return order
}

func TestOrderRepositoryCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository()

	first, err := repo.Create(ctx, validatedOrder(t))
	require.NoError(t, err)
	second, err := repo.Create(ctx, validatedOrder(t))
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID, "ids start at 1")
	assert.Equal(t, int64(2), second.ID, "ids are sequential")
	assert.False(t, first.CreatedAt.IsZero(), "repository assigns the timestamp")
	assert.Equal(t, domain.ShippingPending, first.Status())
}

func TestOrderRepositoryFind(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository()

	created, err := repo.Create(ctx, validatedOrder(t))
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, created.TotalAmount().Amount(), found.TotalAmount().Amount())

	_, err = repo.FindByID(ctx, 999)
	assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestOrderRepositoryUpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository()

	created, err := repo.Create(ctx, validatedOrder(t))
	require.NoError(t, err)

	t.Run("legal transition persists", func(t *testing.T) {
		updated, err := repo.UpdateStatus(ctx, created.ID, domain.ShippingShipped)
		require.NoError(t, err)
		assert.Equal(t, domain.ShippingShipped, updated.Status())

		found, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ShippingShipped, found.Status())
	})

	t.Run("illegal transition rejected and state unchanged", func(t *testing.T) {
		_, err := repo.UpdateStatus(ctx, created.ID, domain.ShippingPending)
		assert.Equal(t, domain.ETRANSITION, domain.ErrorCode(err),
			"the repository must re-verify transitions, not overwrite")

		found, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ShippingShipped, found.Status())
	})

	t.Run("unknown order", func(t *testing.T) {
		_, err := repo.UpdateStatus(ctx, 999, domain.ShippingShipped)
		assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))
	})
}

func TestOrderRepositoryDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("pending order deleted", func(t *testing.T) {
		repo := NewOrderRepository()
		created, err := repo.Create(ctx, validatedOrder(t))
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, created.ID))
		_, err = repo.FindByID(ctx, created.ID)
		assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))
	})

	t.Run("delivered order refuses deletion", func(t *testing.T) {
		repo := NewOrderRepository()
		created, err := repo.Create(ctx, validatedOrder(t))
		require.NoError(t, err)
		_, err = repo.UpdateStatus(ctx, created.ID, domain.ShippingDelivered)
		require.NoError(t, err)

		err = repo.Delete(ctx, created.ID)
		assert.Equal(t, domain.ECONFLICT, domain.ErrorCode(err))

		_, err = repo.FindByID(ctx, created.ID)
		assert.NoError(t, err, "order must remain after refused deletion")
	})
}
