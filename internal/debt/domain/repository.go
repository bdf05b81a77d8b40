package domain

import (
	"context"

	"gorm.io/gorm"
)

// CustomerTotal is one row of a per-customer SUM rollup.
type CustomerTotal struct {
	CusName string
	Total   float64
}

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, payment *DebtPayment) error
	List(ctx context.Context, db *gorm.DB) ([]DebtPayment, error)
	// PendingOrderTotals sums total_amt of Pending orders per customer.
	PendingOrderTotals(ctx context.Context, db *gorm.DB) ([]CustomerTotal, error)
	// PaymentTotals sums amount_paid per customer.
	PaymentTotals(ctx context.Context, db *gorm.DB) ([]CustomerTotal, error)
}
