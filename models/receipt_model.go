package models

import (
	"garment-app/controllers/idgen"

	"gorm.io/gorm"
)

// Receipt sources. Approved workflow requests replay their packaged rows
// through the same tables, tagged so the audit trail keeps them apart.
const (
	ReceiptSourceDirect   = "direct"
	ReceiptSourceApproved = "workflow_approved"
)

type JobworkReceipt struct {
	gorm.Model
	ID            int64  `json:"id" gorm:"primary_key"`
	JobworkId     int64  `json:"jobwork_id" gorm:"index"`
	JobworkNo     string `json:"jobwork_no"`
	TotalQuantity int    `json:"total_quantity"`
	Source        string `json:"source" gorm:"default:'direct'"`
	RequestNo     string `json:"request_no"`
	Remarks       string `json:"remarks"`
	CreatedBy     int
	UpdatedBy     int
	DeletedBy     int

	// Relations
	Items []JobworkReceiptItem `gorm:"foreignKey:ReceiptId;references:ID;constraint:OnDelete:CASCADE" json:"items"`
}

func (r *JobworkReceipt) BeforeCreate(tx *gorm.DB) (err error) {
	r.ID = idgen.GenerateID()
	return
}

// JobworkReceiptItem is one reconciliation row. PurchaseCost and Wage are
// informational only, they never enter the quantity conservation check.
type JobworkReceiptItem struct {
	gorm.Model
	ReceiptId          int64   `json:"receipt_id" gorm:"index"`
	JobworkNo          string  `json:"jobwork_no"`
	ItemId             int     `json:"item_id"`
	ItemCode           string  `json:"item_code"`
	ReturnedQuantity   int     `json:"returned_quantity"`
	PurchasedQuantity  int     `json:"purchased_quantity"`
	PurchaseCost       float64 `json:"purchase_cost"`
	Wage               float64 `json:"wage"`
	SupplierDamage     int     `json:"supplier_damage"`
	RepairableDamage   int     `json:"repairable_damage"`
	UnrepairableDamage int     `json:"unrepairable_damage"`
	CreatedBy          int
	UpdatedBy          int
	DeletedBy          int
}

// Total is the row's contribution to the conservation check.
func (i *JobworkReceiptItem) Total() int {
	return i.ReturnedQuantity + i.PurchasedQuantity + i.SupplierDamage + i.RepairableDamage + i.UnrepairableDamage
}
