package main

import (
	"log"

	"user-api/internal/config"
	"user-api/internal/database"
	"user-api/internal/handlers"
	"user-api/internal/repository"
	"user-api/internal/routes"
	"user-api/internal/services"
	"user-api/internal/validator"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func init() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}

	// Load all configs
	if err := config.LoadConfig(); err != nil {
		log.Fatal("Error loading configs:", err)
	}
	if err := config.LoadMessages(); err != nil {
		log.Fatal("Error loading messages:", err)
	}

	// Initialize validator
	validator.InitValidator()

	// Connect to database
	if err := database.ConnectDB(); err != nil {
		log.Fatal("Error connecting to database:", err)
	}

	// Seed default admin
	if err := database.SeedDefaultAdmin(database.DB, config.AppConfig.Auth.Bcrypt.Cost); err != nil {
		log.Fatal("Error seeding admin user:", err)
	}
}

func main() {
	userRepo := repository.NewUserRepository(database.DB)
	userService := services.NewUserService(userRepo, &config.AppConfig)

	app := fiber.New(fiber.Config{})

	routes.SetupRoutes(app, &config.AppConfig, handlers.NewUserHandler(userService), handlers.NewAuthHandler(userService))

	port := config.AppConfig.Server.Port
	if port == "" {
		port = "3000"
	}

	log.Fatal(app.Listen(":" + port))
}
