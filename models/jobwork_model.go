package models

import (
	"garment-app/controllers/idgen"

	"gorm.io/gorm"
)

const (
	JobworkTypeCutting   = "cutting"
	JobworkTypeStitching = "stitching"
	JobworkTypePackaging = "packaging"
)

// Jobwork statuses. A jobwork rests at in_progress immediately after
// assignment; pending_return is kept only as a display label for old
// clients. reassigned is a transient audit marker, never a resting state.
const (
	JobworkStatusPendingReturn = "pending_return"
	JobworkStatusInProgress    = "in_progress"
	JobworkStatusAwaitingClose = "awaiting_close"
	JobworkStatusReassigned    = "reassigned"
	JobworkStatusClosed        = "closed"
)

// JobworkTypes in creation order of the production flow.
var JobworkTypes = []string{JobworkTypeCutting, JobworkTypeStitching, JobworkTypePackaging}

func IsValidJobworkType(t string) bool {
	for _, jt := range JobworkTypes {
		if jt == t {
			return true
		}
	}
	return false
}

type Jobwork struct {
	gorm.Model
	ID               int64  `json:"id" gorm:"primary_key"`
	JobworkNo        string `json:"jobwork_no" gorm:"unique"`
	BatchId          int64  `json:"batch_id" gorm:"index"`
	BatchSerialCode  string `json:"batch_serial_code"`
	JobworkType      string `json:"jobwork_type"`
	AssignedQuantity int    `json:"assigned_quantity"`
	Status           string `json:"status" gorm:"default:'in_progress'"`
	EmployeeId       int    `json:"employee_id"`
	EmployeeName     string `json:"employee_name"`
	Remarks          string `json:"remarks"`
	CreatedBy        int
	UpdatedBy        int
	DeletedBy        int

	// Relations
	Receipts []JobworkReceipt `gorm:"foreignKey:JobworkId;references:ID" json:"receipts"`
}

func (j *Jobwork) BeforeCreate(tx *gorm.DB) (err error) {
	j.ID = idgen.GenerateID()
	return
}

// JobworkReassignment is the audit trail row written when a jobwork is
// handed to a different worker.
type JobworkReassignment struct {
	gorm.Model
	JobworkId        int64  `json:"jobwork_id" gorm:"index"`
	JobworkNo        string `json:"jobwork_no"`
	FromEmployeeId   int    `json:"from_employee_id"`
	FromEmployeeName string `json:"from_employee_name"`
	ToEmployeeId     int    `json:"to_employee_id"`
	ToEmployeeName   string `json:"to_employee_name"`
	Remarks          string `json:"remarks"`
	CreatedBy        int
}
