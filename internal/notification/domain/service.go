package domain

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Service interface {
	List(ctx context.Context, req ListRequest) ([]Response, error)
	MarkRead(ctx context.Context, id string) (*Response, error)
}

// Recorder is used by other modules to emit notifications as part of
// their own transactions.
type Recorder interface {
	RecordLowStock(ctx context.Context, tx *gorm.DB, product LowStockProduct) error
}

type LowStockProduct struct {
	ID    int64
	Name  string
	Stock int
}

type ListRequest struct {
	UnreadOnly bool
}

type Response struct {
	ID        string         `json:"id"`
	Message   string         `json:"message"`
	Kind      string         `json:"kind"`
	ProductID *string        `json:"product_id,omitempty"`
	Payload   datatypes.JSON `json:"payload,omitempty"`
	IsRead    bool           `json:"is_read"`
	CreatedAt time.Time      `json:"created_at"`
}

var (
	ErrInvalidID = errors.New("invalid_id")
	ErrNotFound  = errors.New("not_found")
)
