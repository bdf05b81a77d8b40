package domain

// DailySalesRow is one day's revenue across all orders.
type DailySalesRow struct {
	Day   string  `json:"day" gorm:"column:day"`
	Total float64 `json:"total" gorm:"column:total"`
}

// TopProductRow aggregates quantity sold per product name.
type TopProductRow struct {
	ProductName string `json:"product_name" gorm:"column:product_name"`
	Qty         int    `json:"qty" gorm:"column:qty"`
}
