package handler

import (
	"fmt"
	"net/http"

	"github.com/radityafws/laundryku-sub001/internal/models"
	"github.com/radityafws/laundryku-sub001/pkg/database"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct{}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	page := 1
	limit := 10
	if c.Query("page") != "" {
		fmt.Sscanf(c.Query("page"), "%d", &page)
	}
	if c.Query("limit") != "" {
		fmt.Sscanf(c.Query("limit"), "%d", &limit)
	}
	offset := (page - 1) * limit

	query := database.DB.Model(&models.Order{})
	if statusID := c.Query("status_id"); statusID != "" {
		query = query.Where("order_status_id = ?", statusID)
	}
	if paymentStatus := c.Query("payment_status"); paymentStatus != "" {
		query = query.Where("payment_status = ?", paymentStatus)
	}
	if q := c.Query("q"); q != "" {
		query = query.Where("invoice LIKE ?", "%"+q+"%")
	}

	var total int64
	query.Count(&total)

	var orders []models.Order
	if err := query.Preload("Customer").Preload("Cashier").Preload("OrderStatus").
		Preload("Items").Preload("Items.CatalogItem").
		Order("date_in desc").Limit(limit).Offset(offset).Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  orders,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

func (h *OrderHandler) GetOrderByInvoice(c *gin.Context) {
	invoice := c.Param("invoice")

	var order models.Order
	if err := database.DB.Preload("Customer").Preload("Cashier").Preload("OrderStatus").
		Preload("Items").Preload("Items.CatalogItem").
		Where("invoice = ?", invoice).First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) ListActiveStatuses(c *gin.Context) {
	var statuses []models.OrderStatus
	if err := database.DB.Where("is_active = ?", true).Order("sequence asc").Find(&statuses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order statuses"})
		return
	}
	c.JSON(http.StatusOK, statuses)
}

func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	id := c.Param("id")
	var req struct {
		OrderStatusID uint `json:"order_status_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var status models.OrderStatus
	if err := database.DB.Where("id = ? AND is_active = ?", req.OrderStatusID, true).First(&status).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown order status"})
		return
	}

	if err := database.DB.Model(&models.Order{}).Where("id = ?", id).Update("order_status_id", status.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
}

func (h *OrderHandler) UpdatePaymentStatus(c *gin.Context) {
	id := c.Param("id")

	var order models.Order
	if err := database.DB.First(&order, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.PaymentStatus == "PAID" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order is already paid"})
		return
	}

	if err := database.DB.Model(&order).Update("payment_status", "PAID").Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment recorded"})
}
