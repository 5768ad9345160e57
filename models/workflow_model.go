package models

import (
	"garment-app/controllers/idgen"
	"time"

	"gorm.io/gorm"
)

const (
	RequestTypeJobworkReceipt = "jobwork_receipt"

	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)

// WorkflowRequest is a manually escalated reconciliation mismatch. The
// payload is the packaged receipt submission, opaque to the gate itself.
type WorkflowRequest struct {
	gorm.Model
	ID             int64      `json:"id" gorm:"primary_key"`
	RequestNo      string     `json:"request_no" gorm:"unique"`
	RequestType    string     `json:"request_type"`
	JobworkNo      string     `json:"jobwork_no" gorm:"index"`
	Payload        string     `json:"payload" gorm:"type:text"`
	RequestStatus  string     `json:"request_status" gorm:"default:'pending'"`
	SystemComments string     `json:"system_comments"`
	ResolveRemarks string     `json:"resolve_remarks"`
	ResolvedBy     int        `json:"resolved_by"`
	ResolvedAt     *time.Time `json:"resolved_at"`
	CreatedBy      int
	UpdatedBy      int
	DeletedBy      int
}

func (w *WorkflowRequest) BeforeCreate(tx *gorm.DB) (err error) {
	w.ID = idgen.GenerateID()
	return
}
