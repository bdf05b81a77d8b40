package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	CreateCategory(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error)
	ListCategories(ctx context.Context) ([]CategoryResponse, error)

	CreateProduct(ctx context.Context, req CreateProductRequest) (*ProductResponse, error)
	ListProducts(ctx context.Context, req ListProductsRequest) ([]ProductResponse, error)
	GetProduct(ctx context.Context, id string) (*ProductResponse, error)
	UpdateProduct(ctx context.Context, req UpdateProductRequest) (*ProductResponse, error)
}

type CreateCategoryRequest struct {
	Name string `json:"name"`
}

type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateProductRequest struct {
	Name         string  `json:"name"`
	CategoryID   *string `json:"category_id"`
	Stock        *int    `json:"stock"`
	CostPrice    float64 `json:"cost_price"`
	SellingPrice float64 `json:"selling_price"`
	IsActive     *bool   `json:"is_active"`
	ImageURL     *string `json:"image_url"`
}

type ListProductsRequest struct {
	All bool
}

type UpdateProductRequest struct {
	ID           string   `json:"-"`
	Name         *string  `json:"name"`
	CategoryID   *string  `json:"category_id"`
	Stock        *int     `json:"stock"`
	CostPrice    *float64 `json:"cost_price"`
	SellingPrice *float64 `json:"selling_price"`
	IsActive     *bool    `json:"is_active"`
	ImageURL     *string  `json:"image_url"`
}

type ProductResponse struct {
	ID           string    `json:"id"`
	CategoryID   *string   `json:"category_id,omitempty"`
	Name         string    `json:"name"`
	Stock        int       `json:"stock"`
	CostPrice    float64   `json:"cost_price"`
	SellingPrice float64   `json:"selling_price"`
	StockStatus  bool      `json:"stock_status"`
	IsActive     bool      `json:"is_active"`
	ImageURL     *string   `json:"image_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

var (
	ErrInvalidName      = errors.New("invalid_name")
	ErrInvalidStock     = errors.New("invalid_stock")
	ErrInvalidPrice     = errors.New("invalid_price")
	ErrInvalidID        = errors.New("invalid_id")
	ErrNotFound         = errors.New("not_found")
	ErrCategoryNotFound = errors.New("category_not_found")
	ErrDuplicateName    = errors.New("duplicate_name")
)
