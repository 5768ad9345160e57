package repositories

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"garment-app/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BatchRepository struct {
	db *gorm.DB
}

func NewBatchRepository(db *gorm.DB) *BatchRepository {
	return &BatchRepository{db: db}
}

// nextSerialCode derives the next category-prefixed serial code from the
// previous one. Format: <CAT>-YYMMDD-NNNN, sequence resets per day.
func nextSerialCode(categoryCode, lastCode string, now time.Time) string {
	currentDate := now.Format("060102")

	if lastCode != "" && len(lastCode) >= len(categoryCode)+12 {
		datePart := lastCode[len(categoryCode)+1 : len(categoryCode)+7]
		sequencePart := lastCode[len(lastCode)-4:]

		if currentDate == datePart {
			lastSequence, _ := strconv.Atoi(sequencePart)
			return fmt.Sprintf("%s-%s-%04d", categoryCode, currentDate, lastSequence+1)
		}
	}

	return fmt.Sprintf("%s-%s-%04d", categoryCode, currentDate, 1)
}

func (r *BatchRepository) GenerateSerialCode(categoryCode string) (string, error) {
	var lastBatch models.Batch

	if err := r.db.Where("category_code = ?", categoryCode).Last(&lastBatch).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	return nextSerialCode(categoryCode, lastBatch.SerialCode, time.Now()), nil
}

func (r *BatchRepository) GetBySerialCode(serialCode string) (*models.Batch, error) {
	var batch models.Batch
	if err := r.db.First(&batch, "serial_code = ?", serialCode).Error; err != nil {
		return nil, err
	}
	return &batch, nil
}

// GetBySerialCodeForUpdate locks the batch row for the duration of the
// caller's transaction. Jobwork creation reads the ledger under this lock
// so two concurrent creations cannot both spend the same availability.
func (r *BatchRepository) GetBySerialCodeForUpdate(serialCode string) (*models.Batch, error) {
	var batch models.Batch
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&batch, "serial_code = ?", serialCode).Error; err != nil {
		return nil, err
	}
	return &batch, nil
}

func (r *BatchRepository) GetItems(batchID int64) ([]models.BatchItem, error) {
	var items []models.BatchItem
	if err := r.db.Where("batch_id = ?", batchID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

type BatchListRow struct {
	SerialCode      string `json:"serial_code"`
	CategoryCode    string `json:"category_code"`
	InitialQuantity int    `json:"initial_quantity"`
	Status          string `json:"status"`
	JobworkCount    int    `json:"jobwork_count"`
	CreatedAt       string `json:"created_at"`
}

func (r *BatchRepository) GetAllBatches() ([]BatchListRow, error) {
	sql := `SELECT b.serial_code, b.category_code, b.initial_quantity, b.status,
	COUNT(j.id) AS jobwork_count, b.created_at
	FROM batches b
	LEFT JOIN jobworks j ON j.batch_id = b.id AND j.deleted_at IS NULL
	WHERE b.deleted_at IS NULL
	GROUP BY b.id, b.serial_code, b.category_code, b.initial_quantity, b.status, b.created_at
	ORDER BY b.created_at DESC`

	var rows []BatchListRow
	if err := r.db.Raw(sql).Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

// UpdateStatus is the single write path for batch status.
func (r *BatchRepository) UpdateStatus(batchID int64, status string, userID int) error {
	return r.db.Model(&models.Batch{}).Where("id = ?", batchID).
		Updates(map[string]interface{}{"status": status, "updated_by": userID}).Error
}
