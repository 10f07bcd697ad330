package postgres

import (
	"context"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dukerupert/orderflow/internal/domain"
)

// ProductRepository implements domain.ProductRepository on PostgreSQL.
type ProductRepository struct {
	pool *pgxpool.Pool
}

var _ domain.ProductRepository = (*ProductRepository)(nil)

// NewProductRepository creates a PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, price, description FROM products ORDER BY id`)
	if err != nil {
		return nil, domain.Internal(err, "product.list", "failed to list products")
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var (
			id          int64
			title       string
			price       float64
			description string
		)
		if err := rows.Scan(&id, &title, &price, &description); err != nil {
			return nil, domain.Internal(err, "product.list", "failed to scan product")
		}
		product, err := buildProduct(id, title, price, description)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.Internal(err, "product.list", "failed to read products")
	}
	return products, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	var (
		title       string
		price       float64
		description string
	)
	err := r.pool.QueryRow(ctx,
		`SELECT title, price, description FROM products WHERE id = $1`, id).
		Scan(&title, &price, &description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.NotFound("product.find", "product", strconv.FormatInt(id, 10))
	}
	if err != nil {
		return nil, domain.Internal(err, "product.find", "failed to load product")
	}

	product, err := buildProduct(id, title, price, description)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// buildProduct rebuilds the domain value from stored columns. A row that
// fails value-object validation indicates corrupt data, not bad input.
func buildProduct(id int64, title string, price float64, description string) (domain.Product, error) {
	pid, err := domain.NewProductID(id)
	if err != nil {
		return domain.Product{}, domain.Internal(err, "product.build", "stored product id is invalid")
	}
	p, err := domain.NewPrice(price)
	if err != nil {
		return domain.Product{}, domain.Internal(err, "product.build", "stored price is invalid")
	}
	return domain.Product{ID: pid, Title: title, Price: p, Description: description}, nil
}
