package main

import (
	"garment-app/config"
	"garment-app/controllers/idgen"
	"garment-app/database"
	"garment-app/migration"
	"garment-app/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func main() {

	app := fiber.New()

	config.LoadConfig()

	database.EnsureDatabaseExists(config.DBName)

	db, err := config.ConnectDB()
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		logrus.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init()
	database.RunSeeders(db)

	config.SetupCORS(app)

	routes.SetupAuthRoutes(app, db)
	routes.SetupMasterRoutes(app, db)
	routes.SetupBatchRoutes(app, db)
	routes.SetupJobworkRoutes(app, db)
	routes.SetupReceiptRoutes(app, db)
	routes.SetupWorkflowRoutes(app, db)
	routes.SetupDashboardRoutes(app, db)

	port := config.APP_PORT
	logrus.Infof("Server listening on port %s", port)

	if err := app.Listen(":" + port); err != nil {
		logrus.Fatal(err)
	}
}
