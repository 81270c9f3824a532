package models

import (
	"time"
)

type Expense struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Description string    `gorm:"size:255;not null" json:"description"`
	Category    string    `gorm:"size:50" json:"category"` // 'supplies', 'utilities', 'salary', 'other'
	Amount      float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	ExpenseDate time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"expense_date"`
	RecordedBy  uint      `json:"recorded_by"`
	User        User      `gorm:"foreignKey:RecordedBy" json:"user"`
	CreatedAt   time.Time `json:"created_at"`
}
