package models

import (
	"time"
)

type OrderStatus struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:50;unique;not null" json:"name"` // 'in-progress', 'ready', 'completed'
	Sequence int    `gorm:"default:0" json:"sequence"`
	IsActive bool   `gorm:"default:true" json:"is_active"`
}

type Order struct {
	ID             uint        `gorm:"primaryKey" json:"id"`
	Invoice        string      `gorm:"size:50;unique;not null" json:"invoice"`
	CustomerID     *uint       `json:"customer_id"` // nil for quick purchase
	Customer       *Customer   `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	CashierID      uint        `json:"cashier_id"`
	Cashier        User        `gorm:"foreignKey:CashierID" json:"cashier"`
	DateIn         time.Time   `gorm:"default:CURRENT_TIMESTAMP" json:"date_in"`
	EstimatedDone  time.Time   `json:"estimated_done"`
	Subtotal       float64     `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	DiscountAmount float64     `gorm:"type:decimal(10,2);default:0.00" json:"discount_amount"`
	Total          float64     `gorm:"type:decimal(10,2);not null" json:"total"`
	AppliedPromos  string      `gorm:"size:255" json:"applied_promos"` // comma-joined codes snapshot
	PaymentMethod  string      `gorm:"type:enum('CASH','TRANSFER','QRIS');default:'CASH'" json:"payment_method"`
	PaymentStatus  string      `gorm:"type:enum('UNPAID','PAID');default:'UNPAID'" json:"payment_status"`
	OrderStatusID  uint        `json:"order_status_id"`
	OrderStatus    OrderStatus `gorm:"foreignKey:OrderStatusID" json:"order_status"`
	Notes          string      `gorm:"type:text" json:"notes"`
	Items          []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

// OrderItem snapshots one cart line at submission time. Quantity holds a
// piece count for products and a weight in kg for services.
type OrderItem struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	OrderID       uint        `json:"order_id"`
	CatalogItemID uint        `json:"catalog_item_id"`
	CatalogItem   CatalogItem `gorm:"foreignKey:CatalogItemID" json:"catalog_item"`
	VariationID   *uint       `json:"variation_id"`
	ItemType      string      `gorm:"type:enum('PRODUCT','SERVICE');not null" json:"item_type"`
	UnitPrice     float64     `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	Quantity      float64     `gorm:"type:decimal(8,2);not null" json:"quantity"`
	Subtotal      float64     `gorm:"type:decimal(10,2);not null" json:"subtotal"`
}
