package migration

import (
	"garment-app/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.LoginLog{},
		&models.Category{},
		&models.SubCategory{},
		&models.Item{},
		&models.Skill{},
		&models.Employee{},
		&models.Supplier{},
		&models.Transport{},
		&models.Batch{},
		&models.BatchItem{},
		&models.Jobwork{},
		&models.JobworkReassignment{},
		&models.JobworkReceipt{},
		&models.JobworkReceiptItem{},
		&models.WorkflowRequest{},
		&models.TransactionHistory{},
	)
}
