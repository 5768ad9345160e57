package services

import (
	"fmt"

	"garment-app/controllers/helpers"
	"garment-app/models"

	"gorm.io/gorm"
)

// allowedTransitions is the whole jobwork state machine. A jobwork rests
// at in_progress from creation; reassigned is passed through and never
// rested at; closed can only be re-entered from awaiting_close via reopen.
var allowedTransitions = map[string][]string{
	// pending_return only exists on rows written by old clients; it
	// behaves exactly like in_progress.
	models.JobworkStatusPendingReturn: {models.JobworkStatusInProgress, models.JobworkStatusReassigned, models.JobworkStatusAwaitingClose},
	models.JobworkStatusInProgress:    {models.JobworkStatusReassigned, models.JobworkStatusAwaitingClose},
	models.JobworkStatusReassigned:    {models.JobworkStatusInProgress},
	models.JobworkStatusAwaitingClose: {models.JobworkStatusClosed},
	models.JobworkStatusClosed:        {models.JobworkStatusAwaitingClose},
}

// CanTransition reports whether the state machine permits from → to.
// States are never skipped.
func CanTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// LifecycleService is the single writer of Jobwork.Status. Every
// transition appends a TransactionHistory row.
type LifecycleService struct {
	db *gorm.DB
}

func NewLifecycleService(db *gorm.DB) *LifecycleService {
	return &LifecycleService{db: db}
}

// Transition moves a jobwork to the new status after checking the state
// machine, using the supplied (possibly transactional) handle.
func (s *LifecycleService) Transition(db *gorm.DB, jobwork *models.Jobwork, to, detail string, userID int) error {
	if !CanTransition(jobwork.Status, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, jobwork.Status, to)
	}

	if err := db.Model(&models.Jobwork{}).Where("id = ?", jobwork.ID).
		Updates(map[string]interface{}{"status": to, "updated_by": userID}).Error; err != nil {
		return err
	}
	jobwork.Status = to

	return helpers.InsertTransactionHistory(db, jobwork.JobworkNo, to, "jobwork", detail, userID)
}

// Reassign hands the jobwork to a different worker. Allowed only while
// in_progress; the reassigned status is written as a transient audit
// marker and the jobwork immediately rests back at in_progress.
func (s *LifecycleService) Reassign(jobwork *models.Jobwork, employee *models.Employee, remarks string, userID int) error {
	if jobwork.Status != models.JobworkStatusInProgress {
		return fmt.Errorf("%w: reassign from %s", ErrInvalidTransition, jobwork.Status)
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	reassignment := models.JobworkReassignment{
		JobworkId:        jobwork.ID,
		JobworkNo:        jobwork.JobworkNo,
		FromEmployeeId:   jobwork.EmployeeId,
		FromEmployeeName: jobwork.EmployeeName,
		ToEmployeeId:     int(employee.ID),
		ToEmployeeName:   employee.EmployeeName,
		Remarks:          remarks,
		CreatedBy:        userID,
	}
	if err := tx.Create(&reassignment).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := s.Transition(tx, jobwork, models.JobworkStatusReassigned,
		"reassigned to "+employee.EmployeeName, userID); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Model(&models.Jobwork{}).Where("id = ?", jobwork.ID).
		Updates(map[string]interface{}{
			"employee_id":   employee.ID,
			"employee_name": employee.EmployeeName,
			"updated_by":    userID,
		}).Error; err != nil {
		tx.Rollback()
		return err
	}
	jobwork.EmployeeId = int(employee.ID)
	jobwork.EmployeeName = employee.EmployeeName

	if err := s.Transition(tx, jobwork, models.JobworkStatusInProgress,
		"resumed under new worker", userID); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// Close finishes a fully reconciled jobwork.
func (s *LifecycleService) Close(jobwork *models.Jobwork, userID int) error {
	if jobwork.Status != models.JobworkStatusAwaitingClose {
		return fmt.Errorf("%w: close from %s", ErrNotReadyToClose, jobwork.Status)
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := s.Transition(tx, jobwork, models.JobworkStatusClosed, "jobwork closed", userID); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// Reopen reverses a close so the reconciliation can be corrected.
func (s *LifecycleService) Reopen(jobwork *models.Jobwork, userID int) error {
	if jobwork.Status != models.JobworkStatusClosed {
		return fmt.Errorf("%w: reopen from %s", ErrInvalidTransition, jobwork.Status)
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := s.Transition(tx, jobwork, models.JobworkStatusAwaitingClose, "jobwork reopened", userID); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
