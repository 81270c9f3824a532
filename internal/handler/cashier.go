package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/radityafws/laundryku-sub001/internal/models"
	"github.com/radityafws/laundryku-sub001/internal/pos"
	"github.com/radityafws/laundryku-sub001/pkg/database"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CashierHandler struct{}

// Promo lookups hit the database; bound them so a stuck connection shows
// up as "lookup unavailable" instead of hanging the cashier screen.
const promoLookupTimeout = 3 * time.Second

type OrderItemRequest struct {
	CatalogItemID uint    `json:"catalog_item_id" binding:"required"`
	VariationID   *uint   `json:"variation_id"`
	Quantity      float64 `json:"quantity" binding:"required"`
}

type CreateOrderRequest struct {
	CustomerID    *uint              `json:"customer_id"`
	CustomerName  string             `json:"customer_name"`
	CustomerPhone string             `json:"customer_phone"`
	QuickPurchase bool               `json:"quick_purchase"`
	Items         []OrderItemRequest `json:"items" binding:"required"`
	PromoCodes    []string           `json:"promo_codes"`
	PaymentMethod string             `json:"payment_method" binding:"required,oneof=CASH TRANSFER QRIS"`
	PaymentStatus string             `json:"payment_status" binding:"required,oneof=UNPAID PAID"`
	OrderStatusID uint               `json:"order_status_id" binding:"required"`
	Notes         string             `json:"notes"`
	PrintReceipt  bool               `json:"print_receipt"`
}

// buildCart resolves the posted item refs against the catalog and fills a
// pos.Cart. Prices, kinds and express flags are snapshotted from the
// catalog rows, never trusted from the client.
func buildCart(items []OrderItemRequest) (*pos.Cart, error) {
	cart := pos.NewCart()
	for _, itemReq := range items {
		var record models.CatalogItem
		if err := database.DB.Where("id = ? AND is_active = ?", itemReq.CatalogItemID, true).First(&record).Error; err != nil {
			return nil, fmt.Errorf("catalog item %d not found", itemReq.CatalogItemID)
		}

		item := pos.Item{
			CatalogItemID: record.ID,
			Kind:          pos.LineKind(record.Type),
			Name:          record.Name,
			UnitPrice:     record.BasePrice,
			Express:       record.IsExpress,
		}
		if record.HasVariations {
			if itemReq.VariationID == nil {
				return nil, fmt.Errorf("%s requires a variation", record.Name)
			}
			var variation models.Variation
			if err := database.DB.Where("id = ? AND catalog_item_id = ?", *itemReq.VariationID, record.ID).First(&variation).Error; err != nil {
				return nil, fmt.Errorf("variation %d not found for %s", *itemReq.VariationID, record.Name)
			}
			item.VariationID = itemReq.VariationID
			item.UnitPrice = variation.Price
			item.Name = record.Name + " - " + variation.Name
		}

		if _, err := cart.AddLine(item, itemReq.Quantity); err != nil {
			return nil, fmt.Errorf("%s: %w", record.Name, err)
		}
	}
	return cart, nil
}

func (h *CashierHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cart, err := buildCart(req.Items)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	validator := pos.NewValidator(promoFinder{db: database.DB})
	for _, code := range req.PromoCodes {
		ctx, cancel := context.WithTimeout(c.Request.Context(), promoLookupTimeout)
		promo, err := validator.Validate(ctx, code, cart.Subtotal(), cart.Promos())
		cancel()
		if err != nil {
			if errors.Is(err, pos.ErrPromoLookupUnavailable) {
				c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Promo service unavailable, try again"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Promo %s: %v", code, err)})
			return
		}
		if err := cart.ApplyPromo(promo); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Promo %s: %v", code, err)})
			return
		}
	}

	customerRef := pos.CustomerRef{
		ID:    req.CustomerID,
		Name:  strings.TrimSpace(req.CustomerName),
		Phone: strings.TrimSpace(req.CustomerPhone),
	}

	cashierID := c.GetUint("userID")

	assembled, err := pos.AssembleOrder(cart, pos.OrderInput{
		Customer:      customerRef,
		QuickPurchase: req.QuickPurchase,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: req.PaymentStatus,
		OrderStatusID: req.OrderStatusID,
		Notes:         req.Notes,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var status models.OrderStatus
	if err := database.DB.Where("id = ? AND is_active = ?", req.OrderStatusID, true).First(&status).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown order status"})
		return
	}

	tx := database.DB.Begin()

	var customer *models.Customer
	if !req.QuickPurchase {
		customer, err = resolveCustomer(tx, customerRef)
		if err != nil {
			tx.Rollback()
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	order := models.Order{
		Invoice:        assembled.Invoice,
		CashierID:      cashierID,
		DateIn:         assembled.DateIn,
		EstimatedDone:  assembled.EstimatedDone,
		Subtotal:       assembled.Totals.Subtotal,
		DiscountAmount: assembled.Totals.Discount,
		Total:          assembled.Totals.Total,
		AppliedPromos:  joinPromoCodes(assembled.Promos),
		PaymentMethod:  assembled.PaymentMethod,
		PaymentStatus:  assembled.PaymentStatus,
		OrderStatusID:  assembled.OrderStatusID,
		Notes:          assembled.Notes,
	}
	if customer != nil {
		order.CustomerID = &customer.ID
	}

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	for _, line := range assembled.Lines {
		if line.Kind == pos.LineProduct {
			if err := deductStock(tx, line); err != nil {
				tx.Rollback()
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}

		item := models.OrderItem{
			OrderID:       order.ID,
			CatalogItemID: line.CatalogItemID,
			VariationID:   line.VariationID,
			ItemType:      string(line.Kind),
			UnitPrice:     line.UnitPrice,
			Quantity:      line.Quantity,
			Subtotal:      line.Subtotal(),
		}
		if err := tx.Create(&item).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add order item"})
			return
		}
	}

	for _, promo := range assembled.Promos {
		if err := tx.Model(&models.Promotion{}).
			Where("UPPER(code) = ?", strings.ToUpper(promo.Code)).
			Update("usage_count", gorm.Expr("usage_count + 1")).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record promo usage"})
			return
		}
	}

	tx.Commit()

	resp := gin.H{
		"message":        "Order created successfully",
		"invoice":        order.Invoice,
		"order_id":       order.ID,
		"subtotal":       order.Subtotal,
		"discount":       order.DiscountAmount,
		"total":          order.Total,
		"estimated_done": order.EstimatedDone,
		"print_receipt":  req.PrintReceipt,
	}
	if customer != nil && customer.WhatsappOptIn && customer.Phone != "" {
		resp["whatsapp_url"] = whatsappURL(customer, &order, assembled.Lines)
	}
	c.JSON(http.StatusCreated, resp)
}

// resolveCustomer finds the referenced customer, or registers a walk-in
// by phone number inside the order transaction.
func resolveCustomer(tx *gorm.DB, ref pos.CustomerRef) (*models.Customer, error) {
	var customer models.Customer
	if ref.ID != nil {
		if err := tx.First(&customer, *ref.ID).Error; err != nil {
			return nil, fmt.Errorf("customer %d not found", *ref.ID)
		}
		return &customer, nil
	}

	if ref.Phone != "" {
		if err := tx.Where("phone = ?", ref.Phone).First(&customer).Error; err == nil {
			return &customer, nil
		}
	}

	customer = models.Customer{Name: ref.Name, Phone: ref.Phone}
	if err := tx.Create(&customer).Error; err != nil {
		return nil, errors.New("failed to register customer")
	}
	return &customer, nil
}

// deductStock verifies and decrements product stock for one order line.
func deductStock(tx *gorm.DB, line pos.CartLine) error {
	qty := int(line.Quantity)
	if line.VariationID != nil {
		var variation models.Variation
		if err := tx.First(&variation, *line.VariationID).Error; err != nil {
			return fmt.Errorf("variation for %s not found", line.Name)
		}
		if variation.Stock < qty {
			return fmt.Errorf("insufficient stock for %s", line.Name)
		}
		return tx.Model(&variation).Update("stock", gorm.Expr("stock - ?", qty)).Error
	}

	var item models.CatalogItem
	if err := tx.First(&item, line.CatalogItemID).Error; err != nil {
		return fmt.Errorf("catalog item for %s not found", line.Name)
	}
	if item.CurrentStock < qty {
		return fmt.Errorf("insufficient stock for %s", line.Name)
	}
	return tx.Model(&item).Update("current_stock", gorm.Expr("current_stock - ?", qty)).Error
}

func joinPromoCodes(promos []pos.Promo) string {
	codes := make([]string, len(promos))
	for i, p := range promos {
		codes[i] = p.Code
	}
	return strings.Join(codes, ",")
}

func whatsappURL(customer *models.Customer, order *models.Order, lines []pos.CartLine) string {
	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("Halo *%s*, pesanan laundry Anda *%s* sudah kami terima! 🧺\n\n*Rincian:*\n", customer.Name, order.Invoice))
	for _, line := range lines {
		if line.Kind == pos.LineService {
			msg.WriteString(fmt.Sprintf("• %s %.1f kg - Rp%.0f\n", line.Name, line.Quantity, line.Subtotal()))
		} else {
			msg.WriteString(fmt.Sprintf("• %s x %.0f - Rp%.0f\n", line.Name, line.Quantity, line.Subtotal()))
		}
	}
	if order.DiscountAmount > 0 {
		msg.WriteString(fmt.Sprintf("\n*Diskon:* Rp%.0f", order.DiscountAmount))
	}
	msg.WriteString(fmt.Sprintf("\n*Total:* Rp%.0f\n", order.Total))
	msg.WriteString(fmt.Sprintf("*Estimasi selesai:* %s\n", order.EstimatedDone.Format("02 Jan 2006")))
	msg.WriteString("\nTerima kasih sudah mempercayakan cucian Anda pada kami! 🙏")

	phone := customer.Phone
	if strings.HasPrefix(phone, "0") {
		phone = "62" + phone[1:]
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(msg.String()))
}

type ValidatePromoRequest struct {
	Code         string   `json:"code" binding:"required"`
	Subtotal     float64  `json:"subtotal" binding:"required"`
	AppliedCodes []string `json:"applied_codes"`
}

// ValidatePromo lets the cashier screen check a code before submission
// and preview the new totals.
func (h *CashierHandler) ValidatePromo(c *gin.Context) {
	var req ValidatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	finder := promoFinder{db: database.DB}
	validator := pos.NewValidator(finder)

	applied := make([]pos.Promo, 0, len(req.AppliedCodes))
	for _, code := range req.AppliedCodes {
		ctx, cancel := context.WithTimeout(c.Request.Context(), promoLookupTimeout)
		promo, err := finder.FindByCode(ctx, code)
		cancel()
		if err != nil {
			// keep the bare code so the duplicate check still works
			promo = pos.Promo{Code: code}
		}
		applied = append(applied, promo)
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), promoLookupTimeout)
	defer cancel()
	promo, err := validator.Validate(ctx, req.Code, req.Subtotal, applied)
	if err != nil {
		if errors.Is(err, pos.ErrPromoLookupUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Promo service unavailable, try again"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	totals := pos.ComputeTotals(req.Subtotal, append(applied, promo))
	c.JSON(http.StatusOK, gin.H{
		"code":           promo.Code,
		"name":           promo.Name,
		"discount_value": promo.DiscountValue,
		"is_percentage":  promo.IsPercentage,
		"totals":         totals,
	})
}

func (h *CashierHandler) GetNextInvoice(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"next_invoice": pos.NextInvoice(time.Now())})
}

func (h *CashierHandler) MyTodaySales(c *gin.Context) {
	userID := c.GetUint("userID")
	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.Add(24 * time.Hour)

	var orders []models.Order
	if err := database.DB.Where("cashier_id = ? AND date_in >= ? AND date_in < ?", userID, startOfDay, endOfDay).
		Order("date_in desc").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sales data"})
		return
	}

	var total float64
	hourlySales := make([]float64, 24)
	for _, order := range orders {
		total += order.Total
		hour := order.DateIn.Hour()
		if hour >= 0 && hour < 24 {
			hourlySales[hour] += order.Total
		}
	}

	recent := orders
	if len(recent) > 5 {
		recent = recent[:5]
	}

	c.JSON(http.StatusOK, gin.H{
		"sales":         total,
		"hourly_sales":  hourlySales,
		"recent_orders": recent,
	})
}

type CreateCustomerRequest struct {
	Name          string `json:"name" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Address       string `json:"address"`
	WhatsappOptIn bool   `json:"whatsapp_opt_in"`
}

func (h *CashierHandler) CreateCustomer(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer := models.Customer{
		Name:          req.Name,
		Phone:         req.Phone,
		Address:       req.Address,
		WhatsappOptIn: req.WhatsappOptIn,
	}

	if err := database.DB.Create(&customer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer (phone might be duplicate)"})
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *CashierHandler) SearchCustomers(c *gin.Context) {
	query := c.Query("q")
	customers := []models.Customer{}
	if query == "" {
		database.DB.Limit(20).Find(&customers)
	} else {
		database.DB.Where("name LIKE ? OR phone LIKE ?", "%"+query+"%", "%"+query+"%").Find(&customers)
	}
	c.JSON(http.StatusOK, customers)
}
