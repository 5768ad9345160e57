package models

import (
	"garment-app/controllers/idgen"
	"time"

	"gorm.io/gorm"
)

// TransactionHistory records every batch / jobwork / workflow-request
// status transition. RefNo is the serial code, jobwork number or request
// number the row belongs to.
type TransactionHistory struct {
	ID        int64  `json:"ID" gorm:"primaryKey"`
	RefNo     string `json:"ref_no" gorm:"index"`
	Status    string `json:"status"`
	Type      string `json:"type"`
	Detail    string `json:"detail"`
	CreatedAt time.Time
	CreatedBy int
	UpdatedAt time.Time
	UpdatedBy int
	DeletedAt gorm.DeletedAt
	DeletedBy int
}

func (u *TransactionHistory) BeforeCreate(tx *gorm.DB) (err error) {
	u.ID = idgen.GenerateID()
	return
}
