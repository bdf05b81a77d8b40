package domain

import "time"

type DebtPayment struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	CusName     string    `json:"cus_name" gorm:"type:text;not null;index"`
	AmountPaid  float64   `json:"amount_paid" gorm:"not null"`
	PaymentDate time.Time `json:"payment_date" gorm:"not null"`
	Note        *string   `json:"note,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (DebtPayment) TableName() string { return "debt_payments" }
