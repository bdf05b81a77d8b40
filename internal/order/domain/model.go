package domain

import "time"

const (
	StatusPending = "Pending"
	StatusPaid    = "Paid"
)

// ValidStatus reports whether s is one of the accepted order states.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusPaid
}

type Order struct {
	ID         int64      `json:"id" gorm:"primaryKey"`
	Status     string     `json:"status" gorm:"type:text;not null;default:'Pending'"`
	CusName    *string    `json:"cus_name,omitempty" gorm:"type:text"`
	ContactNum *string    `json:"contact_num,omitempty" gorm:"type:text"`
	TotalAmt   float64    `json:"total_amt" gorm:"not null;default:0"`
	OrderDate  time.Time  `json:"order_date" gorm:"not null"`
	DueDate    *time.Time `json:"due_date,omitempty"`
	CreatedAt  time.Time  `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Order) TableName() string { return "orders" }

// OrderedItem is a value snapshot of one order line. It carries no
// product foreign key so later catalog edits never rewrite history.
type OrderedItem struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	OrderID      int64     `json:"order_id" gorm:"not null;index"`
	ProductName  string    `json:"product_name" gorm:"type:text;not null"`
	Qty          int       `json:"qty" gorm:"not null"`
	CostPrice    float64   `json:"cost_price" gorm:"not null;default:0"`
	SellingPrice float64   `json:"selling_price" gorm:"not null;default:0"`
	Subtotal     float64   `json:"subtotal" gorm:"not null;default:0"`
	CreatedAt    time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (OrderedItem) TableName() string { return "ordered_items" }
