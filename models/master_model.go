package models

import "gorm.io/gorm"

// Master data. The reconciliation core only reads these to validate
// identities referenced by batches, jobworks and receipt rows; maintenance
// happens elsewhere.

type Category struct {
	gorm.Model
	CategoryCode string `json:"category_code" gorm:"unique"`
	CategoryName string `json:"category_name"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int

	SubCategories []SubCategory `gorm:"foreignKey:CategoryId;references:ID" json:"sub_categories"`
}

type SubCategory struct {
	gorm.Model
	CategoryId      uint   `json:"category_id"`
	SubCategoryCode string `json:"sub_category_code" gorm:"unique"`
	SubCategoryName string `json:"sub_category_name"`
	CreatedBy       int
	UpdatedBy       int
	DeletedBy       int
}

type Item struct {
	gorm.Model
	ItemCode      string  `json:"item_code" gorm:"unique"`
	ItemName      string  `json:"item_name"`
	CategoryId    int     `json:"category_id"`
	SubCategoryId int     `json:"sub_category_id"`
	Uom           string  `json:"uom"`
	Price         float64 `json:"price"`
	CreatedBy     int
	UpdatedBy     int
	DeletedBy     int
}

type Skill struct {
	gorm.Model
	SkillCode string `json:"skill_code" gorm:"unique"`
	SkillName string `json:"skill_name"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

type Employee struct {
	gorm.Model
	EmployeeCode string `json:"employee_code" gorm:"unique"`
	EmployeeName string `json:"employee_name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int

	Skills []Skill `gorm:"many2many:employee_skills;" json:"skills"`
}

type Supplier struct {
	gorm.Model
	SupplierCode string `json:"supplier_code" gorm:"unique"`
	SupplierName string `json:"supplier_name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int
}

type Transport struct {
	gorm.Model
	TransportCode string `json:"transport_code" gorm:"unique"`
	TransportName string `json:"transport_name"`
	Phone         string `json:"phone"`
	CreatedBy     int
	UpdatedBy     int
	DeletedBy     int
}
