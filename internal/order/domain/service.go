package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	Get(ctx context.Context, id string) (*Response, error)
	List(ctx context.Context, req ListRequest) ([]Response, error)
	ListItems(ctx context.Context) ([]ItemResponse, error)
	UpdateStatus(ctx context.Context, id, status string) (*Response, error)
}

type CreateRequest struct {
	Status     string       `json:"status"`
	CusName    *string      `json:"cus_name"`
	ContactNum *string      `json:"contact_num"`
	DueDate    *string      `json:"due_date"`
	TotalAmt   float64      `json:"total_amt"`
	Items      []CreateItem `json:"items"`
}

type CreateItem struct {
	ProductID    string  `json:"product_id"`
	ProductName  *string `json:"product_name"`
	Qty          int     `json:"qty"`
	CostPrice    float64 `json:"cost_price"`
	SellingPrice float64 `json:"selling_price"`
	Subtotal     float64 `json:"subtotal"`
}

type ListRequest struct {
	Status string
}

type Response struct {
	ID         string         `json:"id"`
	Status     string         `json:"status"`
	CusName    *string        `json:"cus_name,omitempty"`
	ContactNum *string        `json:"contact_num,omitempty"`
	TotalAmt   float64        `json:"total_amt"`
	OrderDate  time.Time      `json:"order_date"`
	DueDate    *time.Time     `json:"due_date,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	Items      []ItemResponse `json:"items,omitempty"`
}

type ItemResponse struct {
	ID           string  `json:"id"`
	OrderID      string  `json:"order_id"`
	ProductName  string  `json:"product_name"`
	Qty          int     `json:"qty"`
	CostPrice    float64 `json:"cost_price"`
	SellingPrice float64 `json:"selling_price"`
	Subtotal     float64 `json:"subtotal"`
}

var (
	ErrInvalidStatus     = errors.New("invalid_status")
	ErrEmptyItems        = errors.New("empty_items")
	ErrInvalidQty        = errors.New("invalid_qty")
	ErrInvalidID         = errors.New("invalid_id")
	ErrInvalidDate       = errors.New("invalid_date")
	ErrNotFound          = errors.New("not_found")
	ErrProductNotFound   = errors.New("product_not_found")
	ErrInsufficientStock = errors.New("insufficient_stock")
)
