package handler

import (
	"fmt"
	"net/http"

	"github.com/radityafws/laundryku-sub001/config"
	"github.com/radityafws/laundryku-sub001/internal/models"
	"github.com/radityafws/laundryku-sub001/internal/utils"
	"github.com/radityafws/laundryku-sub001/pkg/database"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct{}

type CreateEmployeeRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
	RoleID   uint   `json:"role_id" binding:"required"`
	Phone    string `json:"phone"`
}

func (h *AdminHandler) CreateEmployee(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	var role models.Role
	if err := database.DB.First(&role, req.RoleID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role"})
		return
	}

	user := models.User{
		Name:         req.Name,
		PasswordHash: hashedPassword,
		RoleID:       role.ID,
		EmployeeID:   generateEmployeeID(role.Name),
		Phone:        req.Phone,
		IsActive:     true,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully", "user_id": user.ID, "employee_id": user.EmployeeID})
}

func (h *AdminHandler) ListEmployees(c *gin.Context) {
	var users []models.User
	if err := database.DB.Preload("Role").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) UpdateEmployee(c *gin.Context) {
	id := c.Param("id")
	var req struct {
		Name   string `json:"name" binding:"required"`
		Phone  string `json:"phone"`
		RoleID uint   `json:"role_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := database.DB.Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":    req.Name,
		"phone":   req.Phone,
		"role_id": req.RoleID,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update employee"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Employee updated successfully"})
}

func (h *AdminHandler) UpdateEmployeeStatus(c *gin.Context) {
	id := c.Param("id")
	var req struct {
		IsActive       bool   `json:"is_active"`
		InactiveReason string `json:"inactive_reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := database.DB.Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"is_active":       req.IsActive,
		"inactive_reason": req.InactiveReason,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated successfully"})
}

func (h *AdminHandler) ResetEmployeePassword(c *gin.Context) {
	id := c.Param("id")
	var req struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hashedPassword, _ := utils.HashPassword(req.Password)
	if err := database.DB.Model(&models.User{}).Where("id = ?", id).Update("password_hash", hashedPassword).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset password"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully"})
}

func (h *AdminHandler) GetLoginHistory(c *gin.Context) {
	var history []models.LoginHistory
	if err := database.DB.Preload("User").Preload("User.Role").Order("login_time desc").Limit(100).Find(&history).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch login history"})
		return
	}
	c.JSON(http.StatusOK, history)
}

func (h *AdminHandler) GetDashboardStats(c *gin.Context) {
	var totalEmployees int64
	var activeUsers int64

	database.DB.Model(&models.User{}).Count(&totalEmployees)
	database.DB.Model(&models.User{}).Where("is_active = ?", true).Count(&activeUsers)

	type RoleCount struct {
		Name  string
		Count int
	}
	var roleCounts []RoleCount
	database.DB.Model(&models.User{}).
		Select("roles.name, count(users.id) as count").
		Joins("left join roles on roles.id = users.role_id").
		Group("roles.name").
		Scan(&roleCounts)

	c.JSON(http.StatusOK, gin.H{
		"total_employees":   totalEmployees,
		"active_users":      activeUsers,
		"role_distribution": roleCounts,
	})
}

func generateEmployeeID(roleName string) string {
	var prefix string
	switch roleName {
	case "admin":
		prefix = "ADM"
	case "manager":
		prefix = config.AppConfig.Defaults.ManagerPrefix
	case "cashier":
		prefix = config.AppConfig.Defaults.CashierPrefix
	default:
		prefix = "EMP"
	}
	if prefix == "" {
		prefix = "EMP"
	}

	// Simple increment over the last id with this prefix. Fine for one shop;
	// a multi-branch deployment would need a sequence.
	var lastUser models.User
	if err := database.DB.Where("employee_id LIKE ?", prefix+"%").Order("id desc").First(&lastUser).Error; err != nil {
		return fmt.Sprintf("%s001", prefix)
	}

	var lastID int
	fmt.Sscanf(lastUser.EmployeeID, prefix+"%d", &lastID)
	return fmt.Sprintf("%s%03d", prefix, lastID+1)
}
