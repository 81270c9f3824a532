package handler

import (
	"net/http"

	"github.com/radityafws/laundryku-sub001/internal/models"
	"github.com/radityafws/laundryku-sub001/pkg/database"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CatalogHandler struct{}

func (h *CatalogHandler) ListItems(c *gin.Context) {
	itemType := c.Query("type") // PRODUCT | SERVICE | empty for all

	query := database.DB.Preload("Variations").Where("is_active = ?", true)
	if itemType != "" {
		query = query.Where("type = ?", itemType)
	}

	var items []models.CatalogItem
	if err := query.Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch catalog"})
		return
	}
	c.JSON(http.StatusOK, items)
}

type VariationRequest struct {
	Name  string  `json:"name" binding:"required"`
	SKU   string  `json:"sku"`
	Price float64 `json:"price" binding:"required"`
	Stock int     `json:"stock"`
}

type CreateItemRequest struct {
	Name              string             `json:"name" binding:"required"`
	SKU               string             `json:"sku"`
	Type              string             `json:"type" binding:"required,oneof=PRODUCT SERVICE"`
	Description       string             `json:"description"`
	BasePrice         float64            `json:"base_price"`
	HasVariations     bool               `json:"has_variations"`
	Variations        []VariationRequest `json:"variations"`
	OpeningStock      int                `json:"opening_stock"`
	LowStockThreshold int                `json:"low_stock_threshold"`
	IsExpress         bool               `json:"is_express"`
}

func (h *CatalogHandler) CreateItem(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.HasVariations && len(req.Variations) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Item with variations needs at least one variation"})
		return
	}
	if !req.HasVariations && req.BasePrice <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Base price is required for items without variations"})
		return
	}

	userID := c.GetUint("userID")

	tx := database.DB.Begin()

	item := models.CatalogItem{
		Name:              req.Name,
		SKU:               req.SKU,
		Type:              req.Type,
		Description:       req.Description,
		BasePrice:         req.BasePrice,
		HasVariations:     req.HasVariations,
		LowStockThreshold: req.LowStockThreshold,
		IsExpress:         req.Type == models.ItemTypeService && req.IsExpress,
		IsActive:          true,
	}
	if req.Type == models.ItemTypeProduct && !req.HasVariations {
		item.CurrentStock = req.OpeningStock
	}

	if err := tx.Create(&item).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create catalog item"})
		return
	}

	for _, v := range req.Variations {
		variation := models.Variation{
			CatalogItemID: item.ID,
			Name:          v.Name,
			SKU:           v.SKU,
			Price:         v.Price,
			Stock:         v.Stock,
		}
		if err := tx.Create(&variation).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create variation"})
			return
		}
	}

	if req.Type == models.ItemTypeProduct && !req.HasVariations && req.OpeningStock > 0 {
		entry := models.StockEntry{
			CatalogItemID: item.ID,
			QuantityAdded: req.OpeningStock,
			AddedBy:       userID,
		}
		if err := tx.Create(&entry).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log opening stock"})
			return
		}
	}

	tx.Commit()

	database.DB.Preload("Variations").First(&item, item.ID)
	c.JSON(http.StatusCreated, item)
}

type UpdateItemRequest struct {
	Name              string  `json:"name" binding:"required"`
	Description       string  `json:"description"`
	BasePrice         float64 `json:"base_price"`
	LowStockThreshold int     `json:"low_stock_threshold"`
	IsExpress         bool    `json:"is_express"`
	IsActive          bool    `json:"is_active"`
}

func (h *CatalogHandler) UpdateItem(c *gin.Context) {
	id := c.Param("id")
	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := database.DB.Model(&models.CatalogItem{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":                req.Name,
		"description":         req.Description,
		"base_price":          req.BasePrice,
		"low_stock_threshold": req.LowStockThreshold,
		"is_express":          req.IsExpress,
		"is_active":           req.IsActive,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update catalog item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Catalog item updated"})
}

func (h *CatalogHandler) DeleteItem(c *gin.Context) {
	id := c.Param("id")
	if err := database.DB.Delete(&models.CatalogItem{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete catalog item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Catalog item deleted"})
}

type AddStockRequest struct {
	CatalogItemID uint  `json:"catalog_item_id" binding:"required"`
	VariationID   *uint `json:"variation_id"`
	Quantity      int   `json:"quantity" binding:"required"`
}

func (h *CatalogHandler) AddStock(c *gin.Context) {
	var req AddStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var item models.CatalogItem
	if err := database.DB.First(&item, req.CatalogItemID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Catalog item not found"})
		return
	}
	if item.Type != models.ItemTypeProduct {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Services do not track stock"})
		return
	}

	userID := c.GetUint("userID")

	tx := database.DB.Begin()

	if req.VariationID != nil {
		if err := tx.Model(&models.Variation{}).
			Where("id = ? AND catalog_item_id = ?", *req.VariationID, item.ID).
			Update("stock", gorm.Expr("stock + ?", req.Quantity)).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stock"})
			return
		}
	} else {
		if err := tx.Model(&models.CatalogItem{}).
			Where("id = ?", item.ID).
			Update("current_stock", gorm.Expr("current_stock + ?", req.Quantity)).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stock"})
			return
		}
	}

	entry := models.StockEntry{
		CatalogItemID: req.CatalogItemID,
		VariationID:   req.VariationID,
		QuantityAdded: req.Quantity,
		AddedBy:       userID,
	}
	if err := tx.Create(&entry).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log stock entry"})
		return
	}

	tx.Commit()
	c.JSON(http.StatusOK, gin.H{"message": "Stock added successfully"})
}

func (h *CatalogHandler) GetLowStockAlerts(c *gin.Context) {
	var items []models.CatalogItem
	if err := database.DB.Preload("Variations").
		Where("type = ? AND current_stock <= low_stock_threshold AND is_active = ?", models.ItemTypeProduct, true).
		Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch alerts"})
		return
	}
	c.JSON(http.StatusOK, items)
}
