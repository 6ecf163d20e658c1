package database

import (
	"fmt"
	"os"

	"user-api/internal/models"
	"user-api/internal/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() error {
	// Construct DSN (Data Source Name)
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	// TranslateError surfaces unique-constraint violations as
	// gorm.ErrDuplicatedKey so the service can map them to duplicate errors.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	// Auto migrate models
	if err := db.AutoMigrate(&models.User{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	DB = db
	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}

// SeedDefaultAdmin inserts the default admin user if no user holds the
// admin username yet.
func SeedDefaultAdmin(db *gorm.DB, bcryptCost int) error {
	var count int64
	if err := db.Model(&models.User{}).Where("username = ? AND deleted_at IS NULL", "admin").Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}
	if count > 0 {
		return nil
	}

	hashed, err := utils.HashPassword("Admin@123", bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	address := "Jashoda Jewellers Headquarters"
	country := "India"
	city := "Mumbai"
	state := "Maharashtra"

	admin := models.User{
		Name:      "Admin User",
		Email:     "admin@jashoda.com",
		Username:  "admin",
		FirstName: "Admin",
		LastName:  "User",
		Password:  hashed,
		Status:    models.StatusActive,
		Address:   &address,
		Country:   &country,
		City:      &city,
		State:     &state,
	}

	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	return nil
}
