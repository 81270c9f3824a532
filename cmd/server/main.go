package main

import (
	"log"
	"time"

	"github.com/radityafws/laundryku-sub001/config"
	"github.com/radityafws/laundryku-sub001/internal/handler"
	"github.com/radityafws/laundryku-sub001/internal/middleware"
	"github.com/radityafws/laundryku-sub001/internal/models"
	"github.com/radityafws/laundryku-sub001/pkg/database"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load Configuration
	config.LoadConfig()

	// 2. Connect to Database
	database.Connect()

	// 3. Auto-Migrate Models
	log.Println("Running migrations...")
	err := database.DB.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.LoginHistory{},
		&models.Customer{},
		&models.CatalogItem{},
		&models.Variation{},
		&models.StockEntry{},
		&models.Promotion{},
		&models.OrderStatus{},
		&models.Order{},
		&models.OrderItem{},
		&models.Expense{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migrations completed successfully.")

	// 3a. Seed Data
	database.SeedRolesAndAdmin()
	database.SeedOrderStatuses()

	// 4. Initialize Router
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 5. Setup Routes
	authHandler := &handler.AuthHandler{}
	authRoutes := r.Group("/api/v1/auth")
	{
		authRoutes.POST("/login", authHandler.Login)
	}

	userRoutes := r.Group("/api/v1/user")
	userRoutes.Use(middleware.AuthMiddleware())
	{
		userRoutes.PUT("/password", authHandler.ChangePassword)
	}

	adminHandler := &handler.AdminHandler{}
	adminRoutes := r.Group("/api/v1/admin")
	adminRoutes.Use(middleware.AuthMiddleware("admin"))
	{
		adminRoutes.POST("/employees", adminHandler.CreateEmployee)
		adminRoutes.GET("/employees", adminHandler.ListEmployees)
		adminRoutes.PUT("/employees/:id", adminHandler.UpdateEmployee)
		adminRoutes.PUT("/employees/:id/status", adminHandler.UpdateEmployeeStatus)
		adminRoutes.PUT("/employees/:id/password", adminHandler.ResetEmployeePassword)
		adminRoutes.GET("/login-history", adminHandler.GetLoginHistory)
		adminRoutes.GET("/dashboard", adminHandler.GetDashboardStats)
	}

	catalogHandler := &handler.CatalogHandler{}

	// Catalog reads for any authenticated staff
	r.GET("/api/v1/catalog", middleware.AuthMiddleware(), catalogHandler.ListItems)

	catalogRoutes := r.Group("/api/v1/catalog")
	catalogRoutes.Use(middleware.AuthMiddleware("admin", "manager"))
	{
		catalogRoutes.POST("", catalogHandler.CreateItem)
		catalogRoutes.PUT("/:id", catalogHandler.UpdateItem)
		catalogRoutes.DELETE("/:id", catalogHandler.DeleteItem)
		catalogRoutes.POST("/stock", catalogHandler.AddStock)
		catalogRoutes.GET("/alerts", catalogHandler.GetLowStockAlerts)
	}

	promoHandler := &handler.PromoHandler{}
	promoRoutes := r.Group("/api/v1/promotions")
	promoRoutes.Use(middleware.AuthMiddleware("admin", "manager"))
	{
		promoRoutes.POST("", promoHandler.CreatePromotion)
		promoRoutes.GET("", promoHandler.ListPromotions)
		promoRoutes.PUT("/:id", promoHandler.UpdatePromotion)
		promoRoutes.PUT("/:id/status", promoHandler.SetPromotionStatus)
	}

	cashierHandler := &handler.CashierHandler{}
	orderHandler := &handler.OrderHandler{}
	cashierRoutes := r.Group("/api/v1/cashier")
	cashierRoutes.Use(middleware.AuthMiddleware("cashier", "manager", "admin"))
	{
		cashierRoutes.POST("/orders", cashierHandler.CreateOrder)
		cashierRoutes.POST("/validate-promo", cashierHandler.ValidatePromo)
		cashierRoutes.GET("/next-invoice", cashierHandler.GetNextInvoice)
		cashierRoutes.GET("/my-sales", cashierHandler.MyTodaySales)
		cashierRoutes.POST("/customers", cashierHandler.CreateCustomer)
		cashierRoutes.GET("/customers", cashierHandler.SearchCustomers)
		cashierRoutes.GET("/order-statuses", orderHandler.ListActiveStatuses)

		// shared order management for the counter
		cashierRoutes.GET("/orders", orderHandler.ListOrders)
		cashierRoutes.GET("/orders/:invoice", orderHandler.GetOrderByInvoice)
		cashierRoutes.PUT("/orders/:id/status", orderHandler.UpdateOrderStatus)
		cashierRoutes.PUT("/orders/:id/payment", orderHandler.UpdatePaymentStatus)
	}

	expenseHandler := &handler.ExpenseHandler{}
	reportHandler := &handler.ReportHandler{}
	managerRoutes := r.Group("/api/v1/manager")
	managerRoutes.Use(middleware.AuthMiddleware("manager", "admin"))
	{
		managerRoutes.GET("/reports/sales", reportHandler.GetSalesReport)
		managerRoutes.GET("/reports/expenses", reportHandler.GetExpenseReport)
		managerRoutes.GET("/reports/profit", reportHandler.GetProfitSummary)
		managerRoutes.GET("/dashboard", reportHandler.GetDashboardStats)
		managerRoutes.POST("/expenses", expenseHandler.CreateExpense)
		managerRoutes.GET("/expenses", expenseHandler.ListExpenses)
		managerRoutes.PUT("/expenses/:id", expenseHandler.UpdateExpense)
		managerRoutes.DELETE("/expenses/:id", expenseHandler.DeleteExpense)
	}

	publicHandler := &handler.PublicHandler{}
	publicRoutes := r.Group("/api/v1/public")
	{
		publicRoutes.GET("/config", publicHandler.GetPublicConfig)
		publicRoutes.GET("/site-info", publicHandler.GetSiteInfo)
		publicRoutes.GET("/catalog", publicHandler.ListPublicCatalog)
		publicRoutes.GET("/order-status", publicHandler.TrackOrder)
		publicRoutes.GET("/contact", publicHandler.ContactLink)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// 6. Start Server
	port := config.AppConfig.Server.Port
	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
