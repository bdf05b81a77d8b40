package repository

import (
	"context"
	"strings"

	"github.com/piadesu/attn-store/internal/wallet/domain"
	"github.com/piadesu/attn-store/pkg/db/option"
	"gorm.io/gorm"
)

var allowedSortFields = map[string]bool{
	"created_at": true,
	"entry_date": true,
	"amount":     true,
	"total":      true,
}

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, entry *domain.WalletEntry) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO wallet_entries (id, reference, app, direction, account_name, mobile_number, amount, fee, total, entry_date, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.Reference,
		entry.App,
		entry.Direction,
		entry.AccountName,
		entry.MobileNumber,
		entry.Amount,
		entry.Fee,
		entry.Total,
		entry.EntryDate,
		entry.CreatedAt,
	).Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListRequest) ([]domain.WalletEntry, error) {
	var items []domain.WalletEntry
	stmt := db.WithContext(ctx).Model(&domain.WalletEntry{})
	if direction := strings.TrimSpace(filter.Direction); direction != "" {
		stmt = stmt.Where("direction = ?", direction)
	}
	if filter.From != nil {
		stmt = option.ApplyOperator(option.Condition{Field: "entry_date", Operator: option.GTE, Value: *filter.From}).Apply(stmt)
	}
	if filter.To != nil {
		stmt = option.ApplyOperator(option.Condition{Field: "entry_date", Operator: option.LTE, Value: *filter.To}).Apply(stmt)
	}
	stmt = option.WithSortBy(option.WithQuerySortBy(filter.SortBy, filter.OrderBy, allowedSortFields)).Apply(stmt)
	stmt = option.ApplyPagination(filter.Page).Apply(stmt)

	if err := stmt.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
