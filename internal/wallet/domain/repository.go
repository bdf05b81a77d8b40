package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, entry *WalletEntry) error
	List(ctx context.Context, db *gorm.DB, filter ListRequest) ([]WalletEntry, error)
}
