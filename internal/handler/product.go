package handler

import (
	"net/http"
	"time"

	"github.com/dukerupert/orderflow/internal/domain"
)

// ProductHandler serves the read-only catalog endpoints.
type ProductHandler struct {
	products domain.ProductService
}

// NewProductHandler creates a product handler.
func NewProductHandler(products domain.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

type productResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

func toProductResponse(product *domain.Product) productResponse {
	return productResponse{
		ID:          product.ID.Int64(),
		Title:       product.Title,
		Price:       product.Price.Float64(),
		Description: product.Description,
	}
}

// List handles GET /api/products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.ListProducts(r.Context())
	if err != nil {
		ErrorResponse(w, r, err)
		return
	}

	responses := make([]productResponse, 0, len(products))
	for i := range products {
		responses = append(responses, toProductResponse(&products[i]))
	}

	writeJSON(w, http.StatusOK, responses)
}

// Get handles GET /api/products/{id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "handler.product.get"

	id, err := parseID(r, op)
	if err != nil {
		ErrorResponse(w, r, err)
		return
	}

	product, err := h.products.GetProduct(r.Context(), id)
	if err != nil {
		ErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toProductResponse(product))
}

// Health handles GET /health
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
