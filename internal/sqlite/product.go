// Package sqlite provides a SQLite-backed product catalog, useful for
// local development without a PostgreSQL instance.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	_ "modernc.org/sqlite"

	"github.com/dukerupert/orderflow/internal/domain"
)

// ProductRepository implements domain.ProductRepository on SQLite.
type ProductRepository struct {
	db *sql.DB
}

var _ domain.ProductRepository = (*ProductRepository)(nil)

// Open opens (and creates if needed) the SQLite database at path and
// ensures the products table exists.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS products (
			id INTEGER PRIMARY KEY,
			title TEXT NOT NULL,
			price REAL NOT NULL,
			description TEXT NOT NULL DEFAULT ''
		)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create products table: %w", err)
	}
	return db, nil
}

// NewProductRepository creates a SQLite-backed product repository.
func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx,
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
	err := r.db.QueryRowContext(ctx,
		`SELECT title, price, description FROM products WHERE id = ?`, id).
		Scan(&title, &price, &description)
	if errors.Is(err, sql.ErrNoRows) {
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
