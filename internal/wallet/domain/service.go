package domain

import (
	"context"
	"errors"
	"time"

	"github.com/piadesu/attn-store/pkg/db/pagination"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	List(ctx context.Context, req ListRequest) (*ListResponse, error)
}

type CreateRequest struct {
	App          string  `json:"app"`
	Direction    string  `json:"direction"`
	AccountName  string  `json:"account_name"`
	MobileNumber string  `json:"mobile_number"`
	Amount       float64 `json:"amount"`
	EntryDate    *string `json:"entry_date"`
}

type ListRequest struct {
	Direction string
	From      *time.Time
	To        *time.Time
	SortBy    string
	OrderBy   string
	Page      pagination.Pagination
}

type ListResponse struct {
	Entries  []Response           `json:"entries"`
	PageInfo *pagination.PageInfo `json:"page_info"`
}

type Response struct {
	ID           string    `json:"id"`
	Reference    string    `json:"reference"`
	App          string    `json:"app"`
	Direction    string    `json:"direction"`
	AccountName  string    `json:"account_name"`
	MobileNumber string    `json:"mobile_number"`
	Amount       float64   `json:"amount"`
	Fee          float64   `json:"fee"`
	Total        float64   `json:"total"`
	EntryDate    time.Time `json:"entry_date"`
	CreatedAt    time.Time `json:"created_at"`
}

var (
	ErrInvalidApp       = errors.New("invalid_app")
	ErrInvalidDirection = errors.New("invalid_direction")
	ErrInvalidName      = errors.New("invalid_account_name")
	ErrInvalidMobile    = errors.New("invalid_mobile_number")
	ErrInvalidAmount    = errors.New("invalid_amount")
	ErrInvalidDate      = errors.New("invalid_date")
)
