// Package dummyjson provides a product catalog backed by the public
// DummyJSON API (https://dummyjson.com), used for demos.
package dummyjson

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/dukerupert/orderflow/internal/domain"
)

const defaultBaseURL = "https://dummyjson.com"

// ProductRepository implements domain.ProductRepository over HTTP.
type ProductRepository struct {
	baseURL string
	client  *http.Client
}

var _ domain.ProductRepository = (*ProductRepository)(nil)

// NewProductRepository creates a DummyJSON-backed product repository.
// baseURL may be empty, in which case the public API is used.
func NewProductRepository(baseURL string, client *http.Client) *ProductRepository {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &ProductRepository{baseURL: baseURL, client: client}
}

type productDTO struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

type productListDTO struct {
	Products []productDTO `json:"products"`
}

func (r *ProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	const op = "product.list"

	var list productListDTO
	if err := r.get(ctx, op, "/products", &list); err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(list.Products))
	for _, dto := range list.Products {
		product, err := dto.toDomain()
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	const op = "product.find"

	var dto productDTO
	if err := r.get(ctx, op, "/products/"+strconv.FormatInt(id, 10), &dto); err != nil {
		return nil, err
	}
	product, err := dto.toDomain()
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) get(ctx context.Context, op, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+path, nil)
	if err != nil {
		return domain.Internal(err, op, "failed to build request")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return domain.WrapError(err, domain.ENETWORK, op, "product catalog is unreachable")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.NotFound(op, "product", path)
	case resp.StatusCode != http.StatusOK:
		return domain.Errorf(domain.ENETWORK, op, "product catalog returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return domain.Internal(err, op, "failed to decode catalog response")
	}
	return nil
}

func (d productDTO) toDomain() (domain.Product, error) {
	pid, err := domain.NewProductID(d.ID)
	if err != nil {
		return domain.Product{}, domain.Internal(err, "product.decode", fmt.Sprintf("catalog returned invalid product id %d", d.ID))
	}
	price, err := domain.NewPrice(d.Price)
	if err != nil {
		return domain.Product{}, domain.Internal(err, "product.decode", fmt.Sprintf("catalog returned invalid price %v", d.Price))
	}
	return domain.Product{ID: pid, Title: d.Title, Price: price, Description: d.Description}, nil
}
