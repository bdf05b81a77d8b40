package repository

import (
	"context"

	"github.com/piadesu/attn-store/internal/notification/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, n *domain.Notification) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO notifications (id, message, kind, product_id, payload, is_read, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		n.ID,
		n.Message,
		n.Kind,
		n.ProductID,
		n.Payload,
		n.IsRead,
		n.CreatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Notification, error) {
	var n domain.Notification
	err := db.WithContext(ctx).Raw(
		`SELECT id, message, kind, product_id, payload, is_read, created_at
		 FROM notifications WHERE id = ?`,
		id,
	).Scan(&n).Error
	if err != nil {
		return nil, err
	}
	if n.ID == 0 {
		return nil, nil
	}
	return &n, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, unreadOnly bool) ([]domain.Notification, error) {
	var items []domain.Notification
	stmt := db.WithContext(ctx).Model(&domain.Notification{})
	if unreadOnly {
		stmt = stmt.Where("is_read = ?", false)
	}
	err := stmt.Order("is_read ASC").Order("created_at DESC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) MarkRead(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Exec(
		`UPDATE notifications SET is_read = ? WHERE id = ?`,
		true,
		id,
	).Error
}

func (r *repo) HasUnreadForProduct(ctx context.Context, db *gorm.DB, kind string, productID int64) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&domain.Notification{}).
		Where("kind = ? AND product_id = ? AND is_read = ?", kind, productID, false).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
