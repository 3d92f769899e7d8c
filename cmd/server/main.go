package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"storefront-backend/internal/config"
	"storefront-backend/internal/database"
	"storefront-backend/internal/handler"
	"storefront-backend/internal/middleware"
	"storefront-backend/internal/repository"
	"storefront-backend/internal/service"
	"storefront-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Token manager with the two signing keys
	tokens := token.NewManager(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// 3. Database connection, schema and seed data
	db := database.Connect(cfg)
	database.Migrate(db)
	database.Seed(db)

	// 4. Repositories
	userRepo := repository.NewUserRepo(db)
	productRepo := repository.NewProductRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	// 5. Services
	authService := service.NewAuthService(userRepo, auditRepo, tokens)
	productService := service.NewProductService(productRepo)
	orderService := service.NewOrderService(orderRepo, productRepo, auditRepo)
	adminService := service.NewAdminService(userRepo, productRepo, orderRepo, auditRepo)
	workerService := service.NewWorkerService(auditRepo, cfg.Audit.Retention, cfg.Audit.PruneInterval)

	// 6. Start background worker in goroutine
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go workerService.Start(ctx)

	// 7. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 8. Setup Gin router
	r := gin.Default()
	r.Use(middleware.CORS(cfg))

	// 9. Handlers
	cookies := handler.NewCookieHelper(
		cfg.Server.GinMode == "release",
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	authHandler := handler.NewAuthHandler(authService, cookies)
	productHandler := handler.NewProductHandler(productService)
	orderHandler := handler.NewOrderHandler(orderService)
	adminHandler := handler.NewAdminHandler(adminService)

	// 10. Routes
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "storefront-backend",
		})
	})

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.POST("/refresh", authHandler.Refresh)
		auth.GET("/me", middleware.RequireAuth(tokens), authHandler.Me)
	}

	products := api.Group("/products")
	{
		products.GET("", productHandler.List)
		products.GET("/:id", productHandler.Get)
	}

	orders := api.Group("/orders")
	orders.Use(middleware.RequireAuth(tokens))
	{
		orders.GET("", orderHandler.List)
		orders.GET("/:id", orderHandler.Get)
		orders.POST("", orderHandler.Create)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.RequireAuth(tokens), middleware.RequireAdmin(userRepo))
	{
		admin.GET("/stats", adminHandler.Stats)
		admin.GET("/users", adminHandler.ListUsers)
		admin.POST("/products", adminHandler.CreateProduct)
		admin.PUT("/products/:id", adminHandler.UpdateProduct)
		admin.DELETE("/products/:id", adminHandler.DeleteProduct)
		admin.GET("/orders", adminHandler.ListOrders)
	}

	// 11. Setup graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Cancel background worker context
	cancel()
	log.Println("Server exited")
}
