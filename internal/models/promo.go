package models

import (
	"time"
)

// Promotion is a named discount rule redeemable at the cashier screen.
// Percentage promos apply to the pre-discount subtotal; fixed promos are
// an absolute IDR amount.
type Promotion struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Code          string     `gorm:"size:50;unique;not null" json:"code"`
	Name          string     `gorm:"size:100" json:"name"`
	DiscountValue float64    `gorm:"type:decimal(10,2);not null" json:"discount_value"`
	IsPercentage  bool       `gorm:"default:false" json:"is_percentage"`
	MinOrder      float64    `gorm:"type:decimal(10,2);default:0.00" json:"min_order"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	MaxUsage      int        `gorm:"default:0" json:"max_usage"` // 0 means unlimited
	UsageCount    int        `gorm:"default:0" json:"usage_count"`
	IsActive      bool       `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
