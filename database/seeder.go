// database/seeder.go
package database

import (
	"errors"
	"log"

	"garment-app/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func RunSeeders(db *gorm.DB) {
	SeedCategories(db)
	SeedSkills(db)
	SeedEmployees(db)
	SeedItems(db)
	SeedSuppliers(db)
	SeedTransports(db)
	SeedUserMaster(db)
}

func SeedCategories(db *gorm.DB) {
	categories := []models.Category{
		{CategoryCode: "SAR", CategoryName: "Saree"},
		{CategoryCode: "CHU", CategoryName: "Chudithar"},
		{CategoryCode: "NIG", CategoryName: "Nighty"},
		{CategoryCode: "SHT", CategoryName: "Shirt"},
	}

	for _, category := range categories {
		var existing models.Category
		err := db.Where("category_code = ?", category.CategoryCode).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&category).Error; err != nil {
				log.Println("Failed to insert category:", category.CategoryCode, err)
			}
		}
	}
}

func SeedSkills(db *gorm.DB) {
	skills := []models.Skill{
		{SkillCode: "CUT", SkillName: "Cutting"},
		{SkillCode: "STI", SkillName: "Stitching"},
		{SkillCode: "PAC", SkillName: "Packaging"},
	}

	for _, skill := range skills {
		var existing models.Skill
		err := db.Where("skill_code = ?", skill.SkillCode).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&skill).Error; err != nil {
				log.Println("Failed to insert skill:", skill.SkillCode, err)
			}
		}
	}
}

func SeedEmployees(db *gorm.DB) {
	employees := []models.Employee{
		{EmployeeCode: "EMP001", EmployeeName: "Murugan", Phone: "9876500001"},
		{EmployeeCode: "EMP002", EmployeeName: "Selvi", Phone: "9876500002"},
		{EmployeeCode: "EMP003", EmployeeName: "Kumar", Phone: "9876500003"},
	}

	for _, employee := range employees {
		var existing models.Employee
		err := db.Where("employee_code = ?", employee.EmployeeCode).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&employee).Error; err != nil {
				log.Println("Failed to insert employee:", employee.EmployeeCode, err)
			}
		}
	}
}

func SeedItems(db *gorm.DB) {
	items := []models.Item{
		{ItemCode: "SAR-COT-001", ItemName: "Cotton Saree", Uom: "PCS"},
		{ItemCode: "CHU-COT-001", ItemName: "Cotton Chudithar", Uom: "PCS"},
		{ItemCode: "NIG-COT-001", ItemName: "Cotton Nighty", Uom: "PCS"},
	}

	for _, item := range items {
		var existing models.Item
		err := db.Where("item_code = ?", item.ItemCode).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&item).Error; err != nil {
				log.Println("Failed to insert item:", item.ItemCode, err)
			}
		}
	}
}

func SeedSuppliers(db *gorm.DB) {
	suppliers := []models.Supplier{
		{SupplierCode: "SUP001", SupplierName: "Erode Textiles"},
		{SupplierCode: "SUP002", SupplierName: "Salem Fabrics"},
	}

	for _, supplier := range suppliers {
		var existing models.Supplier
		err := db.Where("supplier_code = ?", supplier.SupplierCode).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&supplier).Error; err != nil {
				log.Println("Failed to insert supplier:", supplier.SupplierCode, err)
			}
		}
	}
}

func SeedTransports(db *gorm.DB) {
	transports := []models.Transport{
		{TransportCode: "TRN001", TransportName: "KPN Lorry Service"},
	}

	for _, transport := range transports {
		var existing models.Transport
		err := db.Where("transport_code = ?", transport.TransportCode).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&transport).Error; err != nil {
				log.Println("Failed to insert transport:", transport.TransportCode, err)
			}
		}
	}
}

func SeedUserMaster(db *gorm.DB) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		log.Println("Failed to hash seed password:", err)
		return
	}

	users := []models.User{
		{
			Username: "admin",
			Password: string(hashed),
			Name:     "Admin",
			Email:    "admin@lakshmigarments.local",
			Role:     "admin",
		},
	}

	for _, user := range users {
		var existing models.User
		err := db.Where("email = ?", user.Email).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&user).Error; err != nil {
				log.Println("Failed to insert user:", user.Username, err)
			} else {
				log.Println("Insert user:", user.Username)
			}
		}
	}
}
