package repository

import (
	"context"

	"github.com/piadesu/attn-store/internal/debt/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, payment *domain.DebtPayment) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO debt_payments (id, cus_name, amount_paid, payment_date, note, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		payment.ID,
		payment.CusName,
		payment.AmountPaid,
		payment.PaymentDate,
		payment.Note,
		payment.CreatedAt,
	).Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.DebtPayment, error) {
	var items []domain.DebtPayment
	err := db.WithContext(ctx).Raw(
		`SELECT id, cus_name, amount_paid, payment_date, note, created_at
		 FROM debt_payments ORDER BY created_at DESC`,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) PendingOrderTotals(ctx context.Context, db *gorm.DB) ([]domain.CustomerTotal, error) {
	var rows []domain.CustomerTotal
	err := db.WithContext(ctx).Raw(
		`SELECT cus_name, SUM(total_amt) AS total
		 FROM orders
		 WHERE status = ? AND cus_name IS NOT NULL AND cus_name <> ''
		 GROUP BY cus_name`,
		"Pending",
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repo) PaymentTotals(ctx context.Context, db *gorm.DB) ([]domain.CustomerTotal, error) {
	var rows []domain.CustomerTotal
	err := db.WithContext(ctx).Raw(
		`SELECT cus_name, SUM(amount_paid) AS total
		 FROM debt_payments
		 GROUP BY cus_name`,
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
