package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, order *Order) error
	CreateItem(ctx context.Context, db *gorm.DB, item *OrderedItem) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Order, error)
	FindItems(ctx context.Context, db *gorm.DB, orderID int64) ([]OrderedItem, error)
	FindAllItems(ctx context.Context, db *gorm.DB) ([]OrderedItem, error)
	List(ctx context.Context, db *gorm.DB, filter ListRequest) ([]Order, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, id int64, status string) error
}
