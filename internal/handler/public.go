package handler

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/radityafws/laundryku-sub001/config"
	"github.com/radityafws/laundryku-sub001/internal/models"
	"github.com/radityafws/laundryku-sub001/pkg/database"

	"github.com/gin-gonic/gin"
)

type PublicHandler struct{}

func (h *PublicHandler) GetSiteInfo(c *gin.Context) {
	c.JSON(http.StatusOK, config.AppConfig.Site)
}

func (h *PublicHandler) GetPublicConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"company_name":    config.AppConfig.Defaults.CompanyName,
		"company_logo":    config.AppConfig.Defaults.CompanyLogo,
		"company_address": config.AppConfig.Defaults.CompanyAddress,
		"company_phone":   config.AppConfig.Defaults.CompanyPhone,
	})
}

// ListPublicCatalog feeds the marketing site's price list.
func (h *PublicHandler) ListPublicCatalog(c *gin.Context) {
	var items []models.CatalogItem
	if err := database.DB.Preload("Variations").Where("is_active = ?", true).Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch catalog"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// TrackOrder is the public "check your laundry" box: customers paste the
// invoice from their receipt and get the current status.
func (h *PublicHandler) TrackOrder(c *gin.Context) {
	invoice := c.Query("invoice")
	if invoice == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invoice number is required"})
		return
	}

	var order models.Order
	if err := database.DB.Preload("OrderStatus").Where("invoice = ?", invoice).First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"invoice":        order.Invoice,
		"status":         order.OrderStatus.Name,
		"date_in":        order.DateIn,
		"estimated_done": order.EstimatedDone,
		"payment_status": order.PaymentStatus,
		"total":          order.Total,
	})
}

// ContactLink builds a wa.me deep link for the contact section.
func (h *PublicHandler) ContactLink(c *gin.Context) {
	site := config.AppConfig.Site
	msg := fmt.Sprintf("Halo %s, saya ingin bertanya tentang layanan laundry.", site.Name)
	c.JSON(http.StatusOK, gin.H{
		"whatsapp_url": fmt.Sprintf("https://wa.me/%s?text=%s", site.Whatsapp, url.QueryEscape(msg)),
		"phone":        site.Phone,
		"email":        site.Email,
	})
}
