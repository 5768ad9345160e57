package routes

import (
	"garment-app/config"
	"garment-app/controllers"
	"garment-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupJobworkRoutes(app *fiber.App, db *gorm.DB) {
	jobworkController := controllers.NewJobworkController(db)
	api := app.Group(config.MAIN_ROUTES+"/jobwork", middleware.AuthMiddleware)

	api.Post("/", jobworkController.CreateJobwork)
	api.Get("/", jobworkController.GetAllJobworks)
	api.Get("/:jobwork_no", jobworkController.GetJobworkByNo)
	api.Put("/reassign/:jobwork_no", jobworkController.ReassignJobwork)
	api.Post("/close/:jobwork_no", jobworkController.CloseJobwork)
	api.Post("/reopen/:jobwork_no", jobworkController.ReopenJobwork)
}
