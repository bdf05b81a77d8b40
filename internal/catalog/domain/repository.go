package domain

import (
	"context"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(ctx context.Context, db *gorm.DB, category *Category) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Category, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]Category, error)
}

type ProductRepository interface {
	Create(ctx context.Context, db *gorm.DB, product *Product) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Product, error)
	List(ctx context.Context, db *gorm.DB, filter ListProductsRequest) ([]Product, error)
	Update(ctx context.Context, db *gorm.DB, product *Product) error
	// LockByID resolves a product by id under a row lock. Must run
	// inside a transaction.
	LockByID(ctx context.Context, tx *gorm.DB, id int64) (*Product, error)
	// UpdateStock persists stock and the derived stock_status.
	UpdateStock(ctx context.Context, tx *gorm.DB, id int64, stock int, inStock bool) error
}
