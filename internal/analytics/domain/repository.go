package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	DailySales(ctx context.Context, db *gorm.DB, days int) ([]DailySalesRow, error)
	TopProducts(ctx context.Context, db *gorm.DB, limit int) ([]TopProductRow, error)
}
