package services

import (
	"time"

	"garment-app/controllers/helpers"
	"garment-app/models"
	"garment-app/repositories"

	"gorm.io/gorm"
)

// WorkflowService is the gate over manually escalated reconciliation
// mismatches. Requests are raised by the reconciler and resolved here
// exactly once.
type WorkflowService struct {
	db         *gorm.DB
	reconciler *ReconcileService
	notifier   *NotifyService
}

func NewWorkflowService(db *gorm.DB, reconciler *ReconcileService, notifier *NotifyService) *WorkflowService {
	return &WorkflowService{db: db, reconciler: reconciler, notifier: notifier}
}

// ensurePending rejects a second resolution of the same request; a
// request is resolved exactly once.
func ensurePending(request *models.WorkflowRequest) error {
	if request.RequestStatus != models.RequestStatusPending {
		return ErrAlreadyResolved
	}
	return nil
}

// Resolve applies an approve/reject decision. Approval hands the payload
// back to the reconciler as an authoritative correction; rejection leaves
// the originating jobwork untouched. Either way the request is terminal.
func (s *WorkflowService) Resolve(requestNo, decision, remarks string, userID int) (*models.WorkflowRequest, error) {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	workflowRepo := repositories.NewWorkflowRepository(tx)
	request, err := workflowRepo.GetByRequestNoForUpdate(requestNo)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := ensurePending(request); err != nil {
		tx.Rollback()
		return nil, err
	}

	now := time.Now()
	request.RequestStatus = decision
	request.ResolveRemarks = remarks
	request.ResolvedBy = userID
	request.ResolvedAt = &now
	request.UpdatedBy = userID

	if err := tx.Model(&models.WorkflowRequest{}).Where("id = ?", request.ID).
		Updates(map[string]interface{}{
			"request_status":  decision,
			"resolve_remarks": remarks,
			"resolved_by":     userID,
			"resolved_at":     &now,
			"updated_by":      userID,
		}).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := helpers.InsertTransactionHistory(tx, request.RequestNo, decision,
		"workflow_request", "resolved for jobwork "+request.JobworkNo, userID); err != nil {
		tx.Rollback()
		return nil, err
	}

	if decision == models.RequestStatusApproved {
		if err := s.reconciler.ApplyApproved(tx, request, userID); err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	s.notifier.Notify("Workflow request "+decision,
		"Request "+request.RequestNo+" for jobwork "+request.JobworkNo+" was "+decision+".")

	return request, nil
}
