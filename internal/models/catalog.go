package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ItemTypeProduct = "PRODUCT"
	ItemTypeService = "SERVICE"
)

// CatalogItem is one sellable unit: either a retail product (detergent,
// perfume bottles) sold per piece, or a laundry service priced per kg.
// An item either carries a flat BasePrice or a set of Variations, each
// with its own SKU and price. Stock is only meaningful for products.
type CatalogItem struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	Name              string         `gorm:"size:150;not null" json:"name"`
	SKU               string         `gorm:"size:50;index" json:"sku"`
	Type              string         `gorm:"type:enum('PRODUCT','SERVICE');not null" json:"type"`
	Description       string         `gorm:"type:text" json:"description"`
	BasePrice         float64        `gorm:"type:decimal(10,2);default:0.00" json:"base_price"`
	HasVariations     bool           `gorm:"default:false" json:"has_variations"`
	Variations        []Variation    `gorm:"foreignKey:CatalogItemID" json:"variations"`
	CurrentStock      int            `gorm:"default:0" json:"current_stock"`
	LowStockThreshold int            `gorm:"default:10" json:"low_stock_threshold"`
	IsExpress         bool           `gorm:"default:false" json:"is_express"` // services only: 1-day turnaround
	IsActive          bool           `gorm:"default:true" json:"is_active"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

type Variation struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	CatalogItemID uint    `json:"catalog_item_id"`
	Name          string  `gorm:"size:100;not null" json:"name"`
	SKU           string  `gorm:"size:50;index" json:"sku"`
	Price         float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock         int     `gorm:"default:0" json:"stock"`
}

type StockEntry struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	CatalogItemID uint       `json:"catalog_item_id"`
	CatalogItem   CatalogItem `gorm:"foreignKey:CatalogItemID" json:"catalog_item"`
	VariationID   *uint      `json:"variation_id"`
	QuantityAdded int        `json:"quantity_added"`
	AddedBy       uint       `json:"added_by"`
	User          User       `gorm:"foreignKey:AddedBy" json:"user"`
	EntryDate     time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"entry_date"`
}
