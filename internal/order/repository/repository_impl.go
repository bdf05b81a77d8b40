package repository

import (
	"context"
	"strings"

	"github.com/piadesu/attn-store/internal/order/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, order *domain.Order) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO orders (id, status, cus_name, contact_num, total_amt, order_date, due_date, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		order.ID,
		order.Status,
		order.CusName,
		order.ContactNum,
		order.TotalAmt,
		order.OrderDate,
		order.DueDate,
		order.CreatedAt,
	).Error
}

func (r *repo) CreateItem(ctx context.Context, db *gorm.DB, item *domain.OrderedItem) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO ordered_items (id, order_id, product_name, qty, cost_price, selling_price, subtotal, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID,
		item.OrderID,
		item.ProductName,
		item.Qty,
		item.CostPrice,
		item.SellingPrice,
		item.Subtotal,
		item.CreatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Order, error) {
	var o domain.Order
	err := db.WithContext(ctx).Raw(
		`SELECT id, status, cus_name, contact_num, total_amt, order_date, due_date, created_at
		 FROM orders WHERE id = ?`,
		id,
	).Scan(&o).Error
	if err != nil {
		return nil, err
	}
	if o.ID == 0 {
		return nil, nil
	}
	return &o, nil
}

func (r *repo) FindItems(ctx context.Context, db *gorm.DB, orderID int64) ([]domain.OrderedItem, error) {
	var items []domain.OrderedItem
	err := db.WithContext(ctx).Raw(
		`SELECT id, order_id, product_name, qty, cost_price, selling_price, subtotal, created_at
		 FROM ordered_items WHERE order_id = ? ORDER BY id ASC`,
		orderID,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) FindAllItems(ctx context.Context, db *gorm.DB) ([]domain.OrderedItem, error) {
	var items []domain.OrderedItem
	err := db.WithContext(ctx).Raw(
		`SELECT id, order_id, product_name, qty, cost_price, selling_price, subtotal, created_at
		 FROM ordered_items ORDER BY created_at DESC`,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListRequest) ([]domain.Order, error) {
	var items []domain.Order
	stmt := db.WithContext(ctx).Model(&domain.Order{})
	if status := strings.TrimSpace(filter.Status); status != "" {
		stmt = stmt.Where("status = ?", status)
	}
	err := stmt.Order("created_at DESC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) UpdateStatus(ctx context.Context, db *gorm.DB, id int64, status string) error {
	return db.WithContext(ctx).Exec(
		`UPDATE orders SET status = ? WHERE id = ?`,
		status,
		id,
	).Error
}
