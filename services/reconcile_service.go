package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"garment-app/controllers/helpers"
	"garment-app/models"
	"garment-app/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReceiptRow is one reconciliation row of a receipt submission.
// PurchaseCost and Wage ride along for payday reporting and never enter
// the conservation check.
type ReceiptRow struct {
	ItemID             int     `json:"item_id" validate:"required"`
	ItemCode           string  `json:"item_code"`
	ReturnedQuantity   int     `json:"returned_quantity" validate:"min=0"`
	PurchasedQuantity  int     `json:"purchased_quantity" validate:"min=0"`
	PurchaseCost       float64 `json:"purchase_cost" validate:"min=0"`
	Wage               float64 `json:"wage" validate:"min=0"`
	SupplierDamage     int     `json:"supplier_damage" validate:"min=0"`
	RepairableDamage   int     `json:"repairable_damage" validate:"min=0"`
	UnrepairableDamage int     `json:"unrepairable_damage" validate:"min=0"`
}

// Total is the row's contribution to the conservation check.
func (r *ReceiptRow) Total() int {
	return r.ReturnedQuantity + r.PurchasedQuantity + r.SupplierDamage + r.RepairableDamage + r.UnrepairableDamage
}

// ValidateRows rejects malformed rows: a missing item identity, a
// negative quantity, or an all-zero row (which signals an incomplete
// entry, not a legitimate zero movement).
func ValidateRows(rows []ReceiptRow) error {
	if len(rows) == 0 {
		return &RowError{Row: 0, Field: "items", Reason: "receipt has no rows"}
	}

	for i, row := range rows {
		if row.ItemID == 0 {
			return &RowError{Row: i + 1, Field: "item_id", Reason: "no item selected"}
		}
		if row.ReturnedQuantity < 0 || row.PurchasedQuantity < 0 ||
			row.SupplierDamage < 0 || row.RepairableDamage < 0 || row.UnrepairableDamage < 0 {
			return &RowError{Row: i + 1, Field: "quantity", Reason: "negative quantity"}
		}
		if row.Total() == 0 {
			return &RowError{Row: i + 1, Field: "quantity", Reason: "all quantities are zero"}
		}
	}

	return nil
}

// TotalEntered sums every quantity across all rows.
func TotalEntered(rows []ReceiptRow) int {
	total := 0
	for i := range rows {
		total += rows[i].Total()
	}
	return total
}

// CheckConservation classifies an entered total against the jobwork's
// pending quantity. Exact equality is the only committable outcome:
// over-delivery and under-delivery are distinct errors.
func CheckConservation(entered, pending int) error {
	if entered > pending {
		return fmt.Errorf("%w: entered %d, pending %d", ErrQuantityExceeded, entered, pending)
	}
	if entered < pending {
		return fmt.Errorf("%w: entered %d, pending %d", ErrShortDelivery, entered, pending)
	}
	return nil
}

// requestPayload is what RaiseRequest packages into a workflow request.
type requestPayload struct {
	JobworkNo string       `json:"jobwork_no"`
	Rows      []ReceiptRow `json:"rows"`
	Total     int          `json:"total"`
	Pending   int          `json:"pending"`
}

// ReconcileService validates receipt submissions against a jobwork's
// pending quantity and commits them atomically. Under-delivery is never
// committed directly; it can only be escalated through the workflow gate.
type ReconcileService struct {
	db        *gorm.DB
	lifecycle *LifecycleService
	notifier  *NotifyService
}

func NewReconcileService(db *gorm.DB, lifecycle *LifecycleService, notifier *NotifyService) *ReconcileService {
	return &ReconcileService{db: db, lifecycle: lifecycle, notifier: notifier}
}

// Submit applies a receipt against a jobwork. The whole check runs inside
// one transaction holding a row lock on the jobwork, so two concurrent
// submissions can never both spend the same pending quantity.
func (s *ReconcileService) Submit(jobworkNo string, rows []ReceiptRow, remarks string, userID int) (*models.JobworkReceipt, error) {
	if err := ValidateRows(rows); err != nil {
		return nil, err
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	jobworkRepo := repositories.NewJobworkRepository(tx)
	jobwork, err := jobworkRepo.GetByNoForUpdate(jobworkNo)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if jobwork.Status == models.JobworkStatusClosed {
		tx.Rollback()
		return nil, ErrJobworkAlreadyClosed
	}

	// Re-validate against the authoritative state under the lock; an
	// earlier read must not be trusted.
	received, err := repositories.NewLedgerRepository(tx).TotalReceived(jobwork.ID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	pending := jobwork.AssignedQuantity - received

	total := TotalEntered(rows)
	if err := CheckConservation(total, pending); err != nil {
		tx.Rollback()
		return nil, err
	}

	receipt, err := s.commit(tx, jobwork, rows, models.ReceiptSourceDirect, "", remarks, userID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	s.notifier.Notify("Jobwork "+jobwork.JobworkNo+" fully received",
		fmt.Sprintf("Jobwork %s received %d of %d units and is awaiting close.",
			jobwork.JobworkNo, total, jobwork.AssignedQuantity))

	return receipt, nil
}

// commit writes the receipt header and rows and moves the jobwork to
// awaiting_close. Runs entirely on the caller's transaction: header,
// rows, status and history land together or not at all.
func (s *ReconcileService) commit(tx *gorm.DB, jobwork *models.Jobwork, rows []ReceiptRow, source, requestNo, remarks string, userID int) (*models.JobworkReceipt, error) {
	receipt := models.JobworkReceipt{
		JobworkId:     jobwork.ID,
		JobworkNo:     jobwork.JobworkNo,
		TotalQuantity: TotalEntered(rows),
		Source:        source,
		RequestNo:     requestNo,
		Remarks:       remarks,
		CreatedBy:     userID,
	}
	if err := tx.Create(&receipt).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		item := models.JobworkReceiptItem{
			ReceiptId:          receipt.ID,
			JobworkNo:          jobwork.JobworkNo,
			ItemId:             row.ItemID,
			ItemCode:           row.ItemCode,
			ReturnedQuantity:   row.ReturnedQuantity,
			PurchasedQuantity:  row.PurchasedQuantity,
			PurchaseCost:       row.PurchaseCost,
			Wage:               row.Wage,
			SupplierDamage:     row.SupplierDamage,
			RepairableDamage:   row.RepairableDamage,
			UnrepairableDamage: row.UnrepairableDamage,
			CreatedBy:          userID,
		}
		if err := tx.Create(&item).Error; err != nil {
			return nil, err
		}
	}

	if err := s.lifecycle.Transition(tx, jobwork, models.JobworkStatusAwaitingClose,
		"receipt reconciled", userID); err != nil {
		return nil, err
	}

	return &receipt, nil
}

// RaiseRequest escalates a strict under-delivery into a pending workflow
// request. The jobwork itself is left untouched.
func (s *ReconcileService) RaiseRequest(jobworkNo string, rows []ReceiptRow, comments string, userID int) (*models.WorkflowRequest, error) {
	if err := ValidateRows(rows); err != nil {
		return nil, err
	}

	jobwork, err := repositories.NewJobworkRepository(s.db).GetByNo(jobworkNo)
	if err != nil {
		return nil, err
	}
	if jobwork.Status == models.JobworkStatusClosed {
		return nil, ErrJobworkAlreadyClosed
	}

	received, err := repositories.NewLedgerRepository(s.db).TotalReceived(jobwork.ID)
	if err != nil {
		return nil, err
	}
	pending := jobwork.AssignedQuantity - received

	total := TotalEntered(rows)
	switch err := CheckConservation(total, pending); {
	case err == nil:
		return nil, fmt.Errorf("entered quantity reconciles exactly; submit the receipt instead of raising a request")
	case !errors.Is(err, ErrShortDelivery):
		return nil, err
	}

	payload, err := json.Marshal(requestPayload{
		JobworkNo: jobwork.JobworkNo,
		Rows:      rows,
		Total:     total,
		Pending:   pending,
	})
	if err != nil {
		return nil, err
	}

	request := models.WorkflowRequest{
		RequestNo:      uuid.New().String(),
		RequestType:    models.RequestTypeJobworkReceipt,
		JobworkNo:      jobwork.JobworkNo,
		Payload:        string(payload),
		RequestStatus:  models.RequestStatusPending,
		SystemComments: comments,
		CreatedBy:      userID,
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := repositories.NewWorkflowRepository(tx).Create(&request); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := helpers.InsertTransactionHistory(tx, request.RequestNo, models.RequestStatusPending,
		"workflow_request", "raised for jobwork "+jobwork.JobworkNo, userID); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	s.notifier.Notify("Workflow request pending approval",
		fmt.Sprintf("Jobwork %s: entered %d of %d pending units. Reason: %s",
			jobwork.JobworkNo, total, pending, comments))

	return &request, nil
}

// ApplyApproved replays the packaged rows of an approved request as an
// authoritative commit: the approver's decision overrides the equality
// check. Runs on the resolver's transaction.
func (s *ReconcileService) ApplyApproved(tx *gorm.DB, request *models.WorkflowRequest, userID int) error {
	var payload requestPayload
	if err := json.Unmarshal([]byte(request.Payload), &payload); err != nil {
		return fmt.Errorf("corrupt request payload: %w", err)
	}

	jobwork, err := repositories.NewJobworkRepository(tx).GetByNoForUpdate(payload.JobworkNo)
	if err != nil {
		return err
	}
	if jobwork.Status == models.JobworkStatusClosed {
		return ErrJobworkAlreadyClosed
	}

	_, err = s.commit(tx, jobwork, payload.Rows, models.ReceiptSourceApproved,
		request.RequestNo, "approved workflow request", userID)
	return err
}
