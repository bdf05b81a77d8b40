package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	List(ctx context.Context) ([]Response, error)
	Outstanding(ctx context.Context) ([]OutstandingResponse, error)
}

type CreateRequest struct {
	CusName     string  `json:"cus_name"`
	AmountPaid  float64 `json:"amount_paid"`
	PaymentDate *string `json:"payment_date"`
	Note        *string `json:"note"`
}

type Response struct {
	ID          string    `json:"id"`
	CusName     string    `json:"cus_name"`
	AmountPaid  float64   `json:"amount_paid"`
	PaymentDate time.Time `json:"payment_date"`
	Note        *string   `json:"note,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// OutstandingResponse is the remaining balance of one customer:
// pending order totals minus everything they have paid so far.
type OutstandingResponse struct {
	CusName     string  `json:"cus_name"`
	Pending     float64 `json:"pending"`
	Paid        float64 `json:"paid"`
	Outstanding float64 `json:"outstanding"`
}

var (
	ErrInvalidName   = errors.New("invalid_cus_name")
	ErrInvalidAmount = errors.New("invalid_amount")
	ErrInvalidDate   = errors.New("invalid_date")
)
