package routes

import (
	"garment-app/config"
	"garment-app/controllers"
	"garment-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controllers.NewAuthController(db)
	api := app.Group(config.MAIN_ROUTES + "/auth")

	api.Post("/login", authController.Login)
	api.Get("/logout", middleware.AuthMiddleware, authController.Logout)
	api.Get("/isLoggedIn", middleware.AuthMiddleware, authController.IsLoggedIn)
}
