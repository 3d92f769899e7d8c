package database

import (
	"fmt"
	"log"
	"time"

	"storefront-backend/internal/config"
	"storefront-backend/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect initializes and returns a GORM database connection
func Connect(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.Database,
	)

	// Configure GORM logger
	gormLogger := logger.Default.LogMode(logger.Info)
	if cfg.Server.GinMode == "release" {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Test the connection
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	log.Println("Successfully connected to database")

	return db
}

// Migrate creates or updates the schema for all models
func Migrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.AuditLog{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Println("Database migration completed")
}

// Seed inserts the initial catalog and admin account if the tables are
// empty. Safe to call on every startup.
func Seed(db *gorm.DB) {
	var productCount int64
	if err := db.Model(&models.Product{}).Count(&productCount).Error; err != nil {
		log.Printf("Warning: failed to check product count: %v", err)
		return
	}

	if productCount == 0 {
		products := []models.Product{
			{Name: "Smartphone X", Price: decimal.NewFromFloat(999.99), Description: "Latest model with advanced features"},
			{Name: "Laptop Pro", Price: decimal.NewFromFloat(1299.99), Description: "Powerful laptop for professionals"},
			{Name: "Wireless Earbuds", Price: decimal.NewFromFloat(129.99), Description: "High-quality sound with noise cancellation"},
			{Name: "Smart Watch", Price: decimal.NewFromFloat(249.99), Description: "Track fitness and stay connected"},
			{Name: "Tablet Mini", Price: decimal.NewFromFloat(399.99), Description: "Portable and powerful tablet"},
		}
		if err := db.Create(&products).Error; err != nil {
			log.Printf("Warning: failed to seed products: %v", err)
		} else {
			log.Printf("Seeded %d products", len(products))
		}
	}

	var adminCount int64
	if err := db.Model(&models.User{}).Where("is_admin = ?", true).Count(&adminCount).Error; err != nil {
		log.Printf("Warning: failed to check admin count: %v", err)
		return
	}

	if adminCount == 0 {
		admin := models.User{Username: "admin", PasswordHash: "", IsAdmin: true}
		if err := db.Create(&admin).Error; err != nil {
			log.Printf("Warning: failed to seed admin user: %v", err)
		} else {
			log.Println("Seeded admin user")
		}
	}
}
