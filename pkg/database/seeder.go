package database

import (
	"log"

	"github.com/radityafws/laundryku-sub001/config"
	"github.com/radityafws/laundryku-sub001/internal/models"
	"github.com/radityafws/laundryku-sub001/internal/utils"

	"gorm.io/gorm"
)

func SeedRolesAndAdmin() {
	roles := []string{"admin", "manager", "cashier"}
	for _, r := range roles {
		var role models.Role
		if err := DB.FirstOrCreate(&role, models.Role{Name: r}).Error; err != nil {
			log.Printf("Failed to seed role %s: %v", r, err)
		}
	}

	var adminRole models.Role
	DB.Where("name = ?", "admin").First(&adminRole)

	var adminUser models.User
	if err := DB.Where("employee_id = ?", config.AppConfig.Defaults.AdminEmployeeID).First(&adminUser).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			hashedPassword, _ := utils.HashPassword(config.AppConfig.Defaults.AdminPassword)
			admin := models.User{
				EmployeeID:   config.AppConfig.Defaults.AdminEmployeeID,
				Name:         "Pemilik Laundry",
				PasswordHash: hashedPassword,
				RoleID:       adminRole.ID,
				IsActive:     true,
			}
			if err := DB.Create(&admin).Error; err != nil {
				log.Printf("Failed to seed admin user: %v", err)
			} else {
				log.Println("Admin user seeded successfully.")
			}
		}
	}
}

// SeedOrderStatuses installs the order lifecycle the cashier screen
// assigns from: in-progress -> ready -> completed.
func SeedOrderStatuses() {
	statuses := []models.OrderStatus{
		{Name: "in-progress", Sequence: 1, IsActive: true},
		{Name: "ready", Sequence: 2, IsActive: true},
		{Name: "completed", Sequence: 3, IsActive: true},
	}
	for _, s := range statuses {
		var status models.OrderStatus
		if err := DB.Where(models.OrderStatus{Name: s.Name}).Attrs(s).FirstOrCreate(&status).Error; err != nil {
			log.Printf("Failed to seed order status %s: %v", s.Name, err)
		}
	}
}
