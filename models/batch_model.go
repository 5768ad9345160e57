package models

import (
	"garment-app/controllers/idgen"

	"gorm.io/gorm"
)

// Batch statuses. DISCARDED and CLOSED are terminal flags, a batch is
// never deleted once created.
const (
	BatchStatusCreated   = "created"
	BatchStatusWip       = "wip"
	BatchStatusPackaged  = "packaged"
	BatchStatusDiscarded = "discarded"
	BatchStatusClosed    = "closed"
)

type Batch struct {
	gorm.Model
	ID              int64  `json:"id" gorm:"primary_key"`
	SerialCode      string `json:"serial_code" gorm:"unique"`
	CategoryID      int    `json:"category_id"`
	CategoryCode    string `json:"category_code"`
	InitialQuantity int    `json:"initial_quantity"`
	Status          string `json:"status" gorm:"default:'created'"`
	Remarks         string `json:"remarks"`
	CreatedBy       int
	UpdatedBy       int
	DeletedBy       int

	// Relations
	Items    []BatchItem `gorm:"foreignKey:BatchId;references:ID;constraint:OnDelete:CASCADE" json:"items"`
	Jobworks []Jobwork   `gorm:"foreignKey:BatchId;references:ID" json:"jobworks"`
}

func (b *Batch) BeforeCreate(tx *gorm.DB) (err error) {
	b.ID = idgen.GenerateID()
	return
}

// IsTerminal reports whether the batch is finished and takes no new jobwork.
func (b *Batch) IsTerminal() bool {
	return b.Status == BatchStatusDiscarded || b.Status == BatchStatusClosed
}

type BatchItem struct {
	gorm.Model
	BatchId    int64  `json:"batch_id" gorm:"index"`
	SerialCode string `json:"serial_code"`
	ItemId     int    `json:"item_id"`
	ItemCode   string `json:"item_code"`
	Quantity   int    `json:"quantity"`
	Remarks    string `json:"remarks"`
	CreatedBy  int
	UpdatedBy  int
	DeletedBy  int
}
