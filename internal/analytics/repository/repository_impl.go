package repository

import (
	"context"
	"time"

	"github.com/piadesu/attn-store/internal/analytics/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) DailySales(ctx context.Context, db *gorm.DB, days int) ([]domain.DailySalesRow, error) {
	var rows []domain.DailySalesRow
	// The cutoff is computed in Go so the query stays portable
	// across the supported dialects.
	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	err := db.WithContext(ctx).Raw(
		`SELECT DATE(order_date) AS day, SUM(total_amt) AS total
		 FROM orders
		 WHERE order_date >= ?
		 GROUP BY DATE(order_date)
		 ORDER BY day ASC`,
		cutoff,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repo) TopProducts(ctx context.Context, db *gorm.DB, limit int) ([]domain.TopProductRow, error) {
	var rows []domain.TopProductRow
	err := db.WithContext(ctx).Raw(
		`SELECT product_name, SUM(qty) AS qty
		 FROM ordered_items
		 GROUP BY product_name
		 ORDER BY qty DESC
		 LIMIT ?`,
		limit,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
