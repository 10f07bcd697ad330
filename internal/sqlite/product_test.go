package sqlite

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukerupert/orderflow/internal/domain"
)

func openCatalog(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`INSERT INTO products (id, title, price, description) VALUES
		(1, 'iPhone 9', 549, 'An apple mobile'),
		(2, 'iPhone X', 899, 'Another apple mobile')`)
	require.NoError(t, err)
	return db
}

func TestProductRepository_FindByID(t *testing.T) {
	repo := NewProductRepository(openCatalog(t))

	t.Run("existing product", func(t *testing.T) {
		product, err := repo.FindByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "iPhone 9", product.Title)
		assert.Equal(t, float64(549), product.Price.Float64())
	})

	t.Run("missing product", func(t *testing.T) {
		_, err := repo.FindByID(context.Background(), 99)
		assert.Equal(t, domain.ENOTFOUND, domain.ErrorCode(err))
	})
}

func TestProductRepository_FindAll(t *testing.T) {
	repo := NewProductRepository(openCatalog(t))

	products, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, int64(2), products[1].ID.Int64())
}
