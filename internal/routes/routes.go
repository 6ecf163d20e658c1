package routes

import (
	"user-api/internal/config"
	"user-api/internal/handlers"
	"user-api/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, cfg *config.Config, userHandler *handlers.UserHandler, authHandler *handlers.AuthHandler) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Auth routes
	auth := v1.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Get("/userinfo", middleware.RequireAuth(cfg), authHandler.UserInfo)

	// User routes
	users := v1.Group("/users")

	// Public user routes
	users.Post("/", userHandler.Create)
	users.Post("/login", authHandler.Login)

	// Protected user routes
	protected := users.Use(middleware.RequireAuth(cfg))
	protected.Get("/", userHandler.GetAll)
	protected.Get("/:id", userHandler.GetByID)
	protected.Put("/:id", userHandler.Update)
	protected.Delete("/:id", userHandler.Delete)
}
