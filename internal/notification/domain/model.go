package domain

import (
	"time"

	"gorm.io/datatypes"
)

const KindLowStock = "low_stock"

type Notification struct {
	ID        int64          `json:"id" gorm:"primaryKey"`
	Message   string         `json:"message" gorm:"type:text;not null"`
	Kind      string         `json:"kind" gorm:"type:text;not null;index"`
	ProductID *int64         `json:"product_id,omitempty" gorm:"index"`
	Payload   datatypes.JSON `json:"payload,omitempty" gorm:"type:json"`
	IsRead    bool           `json:"is_read" gorm:"not null;default:false"`
	CreatedAt time.Time      `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Notification) TableName() string { return "notifications" }
