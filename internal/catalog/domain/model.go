package domain

import "time"

type Category struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:text;not null;uniqueIndex:ux_categories_name"`
	Slug      string    `json:"slug" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Category) TableName() string { return "categories" }

type Product struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	CategoryID   *int64    `json:"category_id,omitempty" gorm:"index"`
	Name         string    `json:"name" gorm:"type:text;not null"`
	Stock        int       `json:"stock" gorm:"not null;default:0"`
	CostPrice    float64   `json:"cost_price" gorm:"not null;default:0"`
	SellingPrice float64   `json:"selling_price" gorm:"not null;default:0"`
	StockStatus  bool      `json:"stock_status" gorm:"not null;default:false"`
	IsActive     bool      `json:"is_active" gorm:"not null;default:true"`
	ImageURL     *string   `json:"image_url,omitempty" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Product) TableName() string { return "products" }

// InStock derives the stored stock_status flag.
func (p Product) InStock() bool { return p.Stock > 0 }
