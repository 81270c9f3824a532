package handler

import (
	"net/http"
	"time"

	"github.com/radityafws/laundryku-sub001/internal/models"
	"github.com/radityafws/laundryku-sub001/pkg/database"

	"github.com/gin-gonic/gin"
)

type ExpenseHandler struct{}

type ExpenseRequest struct {
	Description string     `json:"description" binding:"required"`
	Category    string     `json:"category"`
	Amount      float64    `json:"amount" binding:"required,gt=0"`
	ExpenseDate *time.Time `json:"expense_date"`
}

func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expense := models.Expense{
		Description: req.Description,
		Category:    req.Category,
		Amount:      req.Amount,
		RecordedBy:  c.GetUint("userID"),
	}
	if req.ExpenseDate != nil {
		expense.ExpenseDate = *req.ExpenseDate
	} else {
		expense.ExpenseDate = time.Now()
	}

	if err := database.DB.Create(&expense).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record expense"})
		return
	}
	c.JSON(http.StatusCreated, expense)
}

func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	query := database.DB.Preload("User").Order("expense_date desc")

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if start, end := c.Query("start_date"), c.Query("end_date"); start != "" && end != "" {
		startDate, _ := time.Parse("2006-01-02", start)
		endDate, _ := time.Parse("2006-01-02", end)
		endDate = endDate.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		query = query.Where("expense_date BETWEEN ? AND ?", startDate, endDate)
	}

	var expenses []models.Expense
	if err := query.Find(&expenses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch expenses"})
		return
	}
	c.JSON(http.StatusOK, expenses)
}

func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	id := c.Param("id")
	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{
		"description": req.Description,
		"category":    req.Category,
		"amount":      req.Amount,
	}
	if req.ExpenseDate != nil {
		updates["expense_date"] = *req.ExpenseDate
	}

	if err := database.DB.Model(&models.Expense{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update expense"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expense updated"})
}

func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	id := c.Param("id")
	if err := database.DB.Delete(&models.Expense{}, id).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete expense"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted"})
}
