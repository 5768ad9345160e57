package repositories

import (
	"garment-app/models"

	"gorm.io/gorm"
)

// LedgerRepository is the quantity ledger: a pure read model over the
// committed jobworks and receipts of a batch. Every query is a fold over
// stored rows; all mutation happens in the reconciler's commit step.
type LedgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// TotalAssigned sums assigned_quantity over all jobworks of the given
// type for the batch.
func (r *LedgerRepository) TotalAssigned(batchID int64, jobworkType string) (int, error) {
	sql := `SELECT COALESCE(SUM(assigned_quantity), 0)
	FROM jobworks
	WHERE batch_id = ? AND jobwork_type = ? AND deleted_at IS NULL`

	var total int
	if err := r.db.Raw(sql, batchID, jobworkType).Scan(&total).Error; err != nil {
		return 0, err
	}

	return total, nil
}

// TotalReceived sums every committed receipt quantity against a jobwork:
// returned + purchased + all three damage kinds.
func (r *LedgerRepository) TotalReceived(jobworkID int64) (int, error) {
	sql := `SELECT COALESCE(SUM(i.returned_quantity + i.purchased_quantity
	+ i.supplier_damage + i.repairable_damage + i.unrepairable_damage), 0)
	FROM jobwork_receipt_items i
	INNER JOIN jobwork_receipts r ON i.receipt_id = r.id
	WHERE r.jobwork_id = ? AND i.deleted_at IS NULL AND r.deleted_at IS NULL`

	var total int
	if err := r.db.Raw(sql, jobworkID).Scan(&total).Error; err != nil {
		return 0, err
	}

	return total, nil
}

// RepairableDamageCredit sums repairable damage recorded anywhere in the
// batch's receipt history.
func (r *LedgerRepository) RepairableDamageCredit(batchID int64) (int, error) {
	sql := `SELECT COALESCE(SUM(i.repairable_damage), 0)
	FROM jobwork_receipt_items i
	INNER JOIN jobwork_receipts r ON i.receipt_id = r.id
	INNER JOIN jobworks j ON r.jobwork_id = j.id
	WHERE j.batch_id = ? AND i.deleted_at IS NULL AND r.deleted_at IS NULL
	AND j.deleted_at IS NULL`

	var total int
	if err := r.db.Raw(sql, batchID).Scan(&total).Error; err != nil {
		return 0, err
	}

	return total, nil
}

type typeFold struct {
	JobworkType        string `json:"jobwork_type"`
	Assigned           int    `json:"assigned"`
	Returned           int    `json:"returned"`
	Purchased          int    `json:"purchased"`
	SupplierDamage     int    `json:"supplier_damage"`
	RepairableDamage   int    `json:"repairable_damage"`
	UnrepairableDamage int    `json:"unrepairable_damage"`
}

// Snapshot folds the whole batch history into a BatchLedger. Assigned
// quantities come from the jobworks table, receipt outcomes from the
// committed receipt rows.
func (r *LedgerRepository) Snapshot(batch *models.Batch) (*models.BatchLedger, error) {
	ledger := &models.BatchLedger{
		SerialCode:      batch.SerialCode,
		BatchStatus:     batch.Status,
		InitialQuantity: batch.InitialQuantity,
		Totals:          map[string]models.LedgerTotals{},
	}

	sqlAssigned := `SELECT jobwork_type, COALESCE(SUM(assigned_quantity), 0) AS assigned
	FROM jobworks
	WHERE batch_id = ? AND deleted_at IS NULL
	GROUP BY jobwork_type`

	var assignedFolds []typeFold
	if err := r.db.Raw(sqlAssigned, batch.ID).Scan(&assignedFolds).Error; err != nil {
		return nil, err
	}

	for _, fold := range assignedFolds {
		totals := ledger.Totals[fold.JobworkType]
		totals.Assigned = fold.Assigned
		ledger.Totals[fold.JobworkType] = totals
	}

	sqlReceived := `SELECT j.jobwork_type,
	COALESCE(SUM(i.returned_quantity), 0) AS returned,
	COALESCE(SUM(i.purchased_quantity), 0) AS purchased,
	COALESCE(SUM(i.supplier_damage), 0) AS supplier_damage,
	COALESCE(SUM(i.repairable_damage), 0) AS repairable_damage,
	COALESCE(SUM(i.unrepairable_damage), 0) AS unrepairable_damage
	FROM jobwork_receipt_items i
	INNER JOIN jobwork_receipts r ON i.receipt_id = r.id
	INNER JOIN jobworks j ON r.jobwork_id = j.id
	WHERE j.batch_id = ? AND i.deleted_at IS NULL AND r.deleted_at IS NULL
	AND j.deleted_at IS NULL
	GROUP BY j.jobwork_type`

	var receivedFolds []typeFold
	if err := r.db.Raw(sqlReceived, batch.ID).Scan(&receivedFolds).Error; err != nil {
		return nil, err
	}

	for _, fold := range receivedFolds {
		totals := ledger.Totals[fold.JobworkType]
		totals.Returned = fold.Returned
		totals.Purchased = fold.Purchased
		totals.SupplierDamage = fold.SupplierDamage
		totals.RepairableDamage = fold.RepairableDamage
		totals.UnrepairableDamage = fold.UnrepairableDamage
		ledger.Totals[fold.JobworkType] = totals
	}

	return ledger, nil
}
