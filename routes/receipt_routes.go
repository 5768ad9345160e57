package routes

import (
	"garment-app/config"
	"garment-app/controllers"
	"garment-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupReceiptRoutes(app *fiber.App, db *gorm.DB) {
	receiptController := controllers.NewReceiptController(db)
	api := app.Group(config.MAIN_ROUTES+"/jobwork-receipt", middleware.AuthMiddleware)

	api.Post("/", receiptController.SubmitReceipt)
	api.Post("/upload", receiptController.UploadReceiptFromExcel)
	api.Post("/request", receiptController.RaiseRequest)
	api.Get("/:jobwork_no", receiptController.GetReceiptsByJobwork)
}
