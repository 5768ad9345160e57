package routes

import (
	"garment-app/config"
	"garment-app/controllers"
	"garment-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupWorkflowRoutes(app *fiber.App, db *gorm.DB) {
	workflowController := controllers.NewWorkflowController(db)
	api := app.Group(config.MAIN_ROUTES+"/workflow-request", middleware.AuthMiddleware)

	api.Get("/", workflowController.GetAllRequests)
	api.Get("/:request_no", workflowController.GetRequestByNo)
	api.Post("/resolve/:request_no", middleware.RequireRole("admin"), workflowController.ResolveRequest)
}
