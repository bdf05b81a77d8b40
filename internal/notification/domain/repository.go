package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, n *Notification) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Notification, error)
	List(ctx context.Context, db *gorm.DB, unreadOnly bool) ([]Notification, error)
	MarkRead(ctx context.Context, db *gorm.DB, id int64) error
	HasUnreadForProduct(ctx context.Context, db *gorm.DB, kind string, productID int64) (bool, error)
}
