package routes

import (
	"garment-app/config"
	"garment-app/controllers"
	"garment-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupMasterRoutes(app *fiber.App, db *gorm.DB) {
	masterController := controllers.NewMasterController(db)
	api := app.Group(config.MAIN_ROUTES, middleware.AuthMiddleware)

	api.Get("/category", masterController.GetAllCategories)
	api.Get("/item", masterController.GetAllItems)
	api.Get("/employee", masterController.GetAllEmployees)
	api.Get("/skill", masterController.GetAllSkills)
	api.Get("/supplier", masterController.GetAllSuppliers)
	api.Get("/transport", masterController.GetAllTransports)
}
