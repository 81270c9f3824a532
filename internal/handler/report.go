package handler

import (
	"net/http"
	"time"

	"github.com/radityafws/laundryku-sub001/internal/models"
	"github.com/radityafws/laundryku-sub001/pkg/database"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct{}

func dateRangeFromQuery(c *gin.Context) (time.Time, time.Time, bool) {
	start, end := c.Query("start_date"), c.Query("end_date")
	if start == "" || end == "" {
		return time.Time{}, time.Time{}, false
	}
	startDate, _ := time.Parse("2006-01-02", start)
	endDate, _ := time.Parse("2006-01-02", end)
	endDate = endDate.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	return startDate, endDate, true
}

func (h *ReportHandler) GetSalesReport(c *gin.Context) {
	query := database.DB.Preload("Items").Preload("Cashier").Preload("Customer")
	if startDate, endDate, ok := dateRangeFromQuery(c); ok {
		query = query.Where("date_in BETWEEN ? AND ?", startDate, endDate)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sales report"})
		return
	}

	var totalRevenue, totalDiscount, kgWashed float64
	var productsSold int
	for _, order := range orders {
		totalRevenue += order.Total
		totalDiscount += order.DiscountAmount
		for _, item := range order.Items {
			if item.ItemType == models.ItemTypeService {
				kgWashed += item.Quantity
			} else {
				productsSold += int(item.Quantity)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"summary": gin.H{
			"total_revenue":      totalRevenue,
			"total_discount":     totalDiscount,
			"total_transactions": len(orders),
			"kg_washed":          kgWashed,
			"products_sold":      productsSold,
		},
		"transactions": orders,
	})
}

func (h *ReportHandler) GetExpenseReport(c *gin.Context) {
	query := database.DB.Model(&models.Expense{})
	if startDate, endDate, ok := dateRangeFromQuery(c); ok {
		query = query.Where("expense_date BETWEEN ? AND ?", startDate, endDate)
	}

	var expenses []models.Expense
	if err := query.Find(&expenses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch expense report"})
		return
	}

	var total float64
	byCategory := make(map[string]float64)
	for _, e := range expenses {
		total += e.Amount
		byCategory[e.Category] += e.Amount
	}

	c.JSON(http.StatusOK, gin.H{
		"total":       total,
		"by_category": byCategory,
		"expenses":    expenses,
	})
}

func (h *ReportHandler) GetProfitSummary(c *gin.Context) {
	orderQuery := database.DB.Model(&models.Order{})
	expenseQuery := database.DB.Model(&models.Expense{})
	if startDate, endDate, ok := dateRangeFromQuery(c); ok {
		orderQuery = orderQuery.Where("date_in BETWEEN ? AND ?", startDate, endDate)
		expenseQuery = expenseQuery.Where("expense_date BETWEEN ? AND ?", startDate, endDate)
	}

	var revenue, expenses float64
	orderQuery.Select("COALESCE(SUM(total), 0)").Scan(&revenue)
	expenseQuery.Select("COALESCE(SUM(amount), 0)").Scan(&expenses)

	c.JSON(http.StatusOK, gin.H{
		"revenue":  revenue,
		"expenses": expenses,
		"profit":   revenue - expenses,
	})
}

func (h *ReportHandler) GetDashboardStats(c *gin.Context) {
	var todayRevenue, monthRevenue float64
	var activeOrders, unpaidOrders, newCustomers, lowStock int64

	today := time.Now().Format("2006-01-02")
	monthStart := time.Now().Format("2006-01") + "-01"

	database.DB.Model(&models.Order{}).Where("DATE(date_in) = ?", today).
		Select("COALESCE(SUM(total), 0)").Scan(&todayRevenue)
	database.DB.Model(&models.Order{}).Where("DATE(date_in) >= ?", monthStart).
		Select("COALESCE(SUM(total), 0)").Scan(&monthRevenue)

	database.DB.Model(&models.Order{}).
		Joins("join order_statuses on order_statuses.id = orders.order_status_id").
		Where("order_statuses.name <> ?", "completed").Count(&activeOrders)
	database.DB.Model(&models.Order{}).Where("payment_status = ?", "UNPAID").Count(&unpaidOrders)
	database.DB.Model(&models.Customer{}).Where("DATE(created_at) = ?", today).Count(&newCustomers)
	database.DB.Model(&models.CatalogItem{}).
		Where("type = ? AND current_stock <= low_stock_threshold", models.ItemTypeProduct).Count(&lowStock)

	// last 7 days of revenue for the dashboard line chart
	type ChartData struct {
		Labels []string  `json:"labels"`
		Data   []float64 `json:"data"`
	}
	dailyChart := ChartData{Labels: []string{}, Data: []float64{}}
	for i := 6; i >= 0; i-- {
		date := time.Now().AddDate(0, 0, -i)
		var dailySum float64
		database.DB.Model(&models.Order{}).Where("DATE(date_in) = ?", date.Format("2006-01-02")).
			Select("COALESCE(SUM(total), 0)").Scan(&dailySum)
		dailyChart.Labels = append(dailyChart.Labels, date.Format("Jan 02"))
		dailyChart.Data = append(dailyChart.Data, dailySum)
	}

	// revenue per service for the pie chart
	serviceChart := ChartData{Labels: []string{}, Data: []float64{}}
	rows, _ := database.DB.Table("order_items").
		Joins("JOIN catalog_items ON catalog_items.id = order_items.catalog_item_id").
		Where("order_items.item_type = ?", models.ItemTypeService).
		Select("catalog_items.name, COALESCE(SUM(order_items.subtotal), 0)").
		Group("catalog_items.name").
		Rows()
	if rows != nil {
		defer rows.Close()
		for rows.Next() {
			var name string
			var sum float64
			rows.Scan(&name, &sum)
			serviceChart.Labels = append(serviceChart.Labels, name)
			serviceChart.Data = append(serviceChart.Data, sum)
		}
	}

	// sales per cashier
	cashierChart := ChartData{Labels: []string{}, Data: []float64{}}
	cashierRows, _ := database.DB.Table("orders").
		Joins("JOIN users ON users.id = orders.cashier_id").
		Select("users.name, COALESCE(SUM(orders.total), 0)").
		Group("users.name").
		Rows()
	if cashierRows != nil {
		defer cashierRows.Close()
		for cashierRows.Next() {
			var name string
			var sum float64
			cashierRows.Scan(&name, &sum)
			cashierChart.Labels = append(cashierChart.Labels, name)
			cashierChart.Data = append(cashierChart.Data, sum)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"metrics": gin.H{
			"todayRevenue": todayRevenue,
			"monthRevenue": monthRevenue,
			"activeOrders": activeOrders,
			"unpaidOrders": unpaidOrders,
			"newCustomers": newCustomers,
			"lowStock":     lowStock,
		},
		"charts": gin.H{
			"daily":    dailyChart,
			"services": serviceChart,
			"cashiers": cashierChart,
		},
	})
}
