package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/radityafws/laundryku-sub001/internal/models"
	"github.com/radityafws/laundryku-sub001/internal/pos"
	"github.com/radityafws/laundryku-sub001/pkg/database"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PromoHandler struct{}

type PromotionRequest struct {
	Code          string     `json:"code" binding:"required"`
	Name          string     `json:"name"`
	DiscountValue float64    `json:"discount_value" binding:"required"`
	IsPercentage  bool       `json:"is_percentage"`
	MinOrder      float64    `json:"min_order"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	MaxUsage      int        `json:"max_usage"`
}

func (h *PromoHandler) CreatePromotion(c *gin.Context) {
	var req PromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.IsPercentage && (req.DiscountValue <= 0 || req.DiscountValue > 100) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Percentage discount must be between 0 and 100"})
		return
	}

	promo := models.Promotion{
		Code:          strings.ToUpper(strings.TrimSpace(req.Code)),
		Name:          req.Name,
		DiscountValue: req.DiscountValue,
		IsPercentage:  req.IsPercentage,
		MinOrder:      req.MinOrder,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		MaxUsage:      req.MaxUsage,
		IsActive:      true,
	}

	if err := database.DB.Create(&promo).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create promotion (code might be duplicate)"})
		return
	}
	c.JSON(http.StatusCreated, promo)
}

func (h *PromoHandler) ListPromotions(c *gin.Context) {
	var promos []models.Promotion
	if err := database.DB.Order("created_at desc").Find(&promos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch promotions"})
		return
	}
	c.JSON(http.StatusOK, promos)
}

func (h *PromoHandler) UpdatePromotion(c *gin.Context) {
	id := c.Param("id")
	var req PromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := database.DB.Model(&models.Promotion{}).Where("id = ?", id).Updates(map[string]interface{}{
		"code":           strings.ToUpper(strings.TrimSpace(req.Code)),
		"name":           req.Name,
		"discount_value": req.DiscountValue,
		"is_percentage":  req.IsPercentage,
		"min_order":      req.MinOrder,
		"start_date":     req.StartDate,
		"end_date":       req.EndDate,
		"max_usage":      req.MaxUsage,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update promotion"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Promotion updated"})
}

func (h *PromoHandler) SetPromotionStatus(c *gin.Context) {
	id := c.Param("id")
	var req struct {
		IsActive bool `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := database.DB.Model(&models.Promotion{}).Where("id = ?", id).Update("is_active", req.IsActive).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update promotion status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Promotion status updated"})
}

// promoFinder adapts the promotions table to the pos.PromoFinder port.
type promoFinder struct {
	db *gorm.DB
}

func (f promoFinder) FindByCode(ctx context.Context, code string) (pos.Promo, error) {
	var promo models.Promotion
	err := f.db.WithContext(ctx).
		Where("UPPER(code) = ? AND is_active = ?", strings.ToUpper(code), true).
		First(&promo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pos.Promo{}, pos.ErrUnknownCode
		}
		return pos.Promo{}, err
	}
	return pos.Promo{
		Code:          promo.Code,
		Name:          promo.Name,
		DiscountValue: promo.DiscountValue,
		IsPercentage:  promo.IsPercentage,
		MinOrder:      promo.MinOrder,
		StartDate:     promo.StartDate,
		EndDate:       promo.EndDate,
		MaxUsage:      promo.MaxUsage,
		UsageCount:    promo.UsageCount,
	}, nil
}
