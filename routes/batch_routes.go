package routes

import (
	"garment-app/config"
	"garment-app/controllers"
	"garment-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupBatchRoutes(app *fiber.App, db *gorm.DB) {
	batchController := controllers.NewBatchController(db)
	api := app.Group(config.MAIN_ROUTES+"/batch", middleware.AuthMiddleware)

	api.Post("/", batchController.CreateBatch)
	api.Get("/", batchController.GetAllBatches)
	api.Get("/:serial_code", batchController.GetBatchBySerialCode)
	api.Post("/discard/:serial_code", batchController.DiscardBatch)
}
