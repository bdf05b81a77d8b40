package domain

import "time"

const (
	DirectionCashIn  = "cash_in"
	DirectionCashOut = "cash_out"
)

// ValidDirection reports whether d is a supported entry direction.
func ValidDirection(d string) bool {
	return d == DirectionCashIn || d == DirectionCashOut
}

type WalletEntry struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Reference    string    `json:"reference" gorm:"type:text;not null;uniqueIndex:ux_wallet_entries_reference"`
	App          string    `json:"app" gorm:"type:text;not null"`
	Direction    string    `json:"direction" gorm:"type:text;not null;index"`
	AccountName  string    `json:"account_name" gorm:"type:text;not null"`
	MobileNumber string    `json:"mobile_number" gorm:"type:text;not null"`
	Amount       float64   `json:"amount" gorm:"not null"`
	Fee          float64   `json:"fee" gorm:"not null;default:0"`
	Total        float64   `json:"total" gorm:"not null"`
	EntryDate    time.Time `json:"entry_date" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (WalletEntry) TableName() string { return "wallet_entries" }
