package repositories

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"garment-app/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type JobworkRepository struct {
	db *gorm.DB
}

func NewJobworkRepository(db *gorm.DB) *JobworkRepository {
	return &JobworkRepository{db: db}
}

var jobworkNoPattern = regexp.MustCompile(`^JW-\d{8}-\d{3}$`)

// ValidateJobworkNo checks well-formedness of a jobwork number:
// JW-YYYYMMDD-NNN.
func ValidateJobworkNo(jobworkNo string) bool {
	return jobworkNoPattern.MatchString(jobworkNo)
}

// nextJobworkNo derives the next number from the previous one. The three
// digit sequence resets every day.
func nextJobworkNo(lastNo string, now time.Time) string {
	currentDate := now.Format("20060102")

	if ValidateJobworkNo(lastNo) {
		datePart := lastNo[3:11]
		sequencePart := lastNo[len(lastNo)-3:]

		if currentDate == datePart {
			lastSequence, _ := strconv.Atoi(sequencePart)
			return fmt.Sprintf("JW-%s-%03d", currentDate, lastSequence+1)
		}
	}

	return fmt.Sprintf("JW-%s-%03d", currentDate, 1)
}

func (r *JobworkRepository) GenerateJobworkNo() (string, error) {
	var lastJobwork models.Jobwork

	if err := r.db.Last(&lastJobwork).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}

	return nextJobworkNo(lastJobwork.JobworkNo, time.Now()), nil
}

func (r *JobworkRepository) GetByNo(jobworkNo string) (*models.Jobwork, error) {
	var jobwork models.Jobwork
	if err := r.db.First(&jobwork, "jobwork_no = ?", jobworkNo).Error; err != nil {
		return nil, err
	}
	return &jobwork, nil
}

// GetByNoForUpdate takes a row lock on the jobwork so concurrent receipt
// submissions against the same jobwork serialize. Must run inside a
// transaction.
func (r *JobworkRepository) GetByNoForUpdate(jobworkNo string) (*models.Jobwork, error) {
	var jobwork models.Jobwork
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&jobwork, "jobwork_no = ?", jobworkNo).Error; err != nil {
		return nil, err
	}
	return &jobwork, nil
}

func (r *JobworkRepository) ListByBatch(batchID int64) ([]models.Jobwork, error) {
	var jobworks []models.Jobwork
	if err := r.db.Where("batch_id = ?", batchID).Order("created_at ASC").Find(&jobworks).Error; err != nil {
		return nil, err
	}
	return jobworks, nil
}

type JobworkListRow struct {
	JobworkNo        string `json:"jobwork_no"`
	BatchSerialCode  string `json:"batch_serial_code"`
	JobworkType      string `json:"jobwork_type"`
	AssignedQuantity int    `json:"assigned_quantity"`
	ReceivedQuantity int    `json:"received_quantity"`
	Status           string `json:"status"`
	EmployeeName     string `json:"employee_name"`
	CreatedAt        string `json:"created_at"`
}

func (r *JobworkRepository) GetAllJobworks() ([]JobworkListRow, error) {
	sql := `SELECT j.jobwork_no, j.batch_serial_code, j.jobwork_type,
	j.assigned_quantity, j.status, j.employee_name, j.created_at,
	COALESCE(SUM(i.returned_quantity + i.purchased_quantity
	+ i.supplier_damage + i.repairable_damage + i.unrepairable_damage), 0) AS received_quantity
	FROM jobworks j
	LEFT JOIN jobwork_receipts r ON r.jobwork_id = j.id AND r.deleted_at IS NULL
	LEFT JOIN jobwork_receipt_items i ON i.receipt_id = r.id AND i.deleted_at IS NULL
	WHERE j.deleted_at IS NULL
	GROUP BY j.id, j.jobwork_no, j.batch_serial_code, j.jobwork_type,
	j.assigned_quantity, j.status, j.employee_name, j.created_at
	ORDER BY j.created_at DESC`

	var rows []JobworkListRow
	if err := r.db.Raw(sql).Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *JobworkRepository) GetReceipts(jobworkID int64) ([]models.JobworkReceipt, error) {
	var receipts []models.JobworkReceipt
	if err := r.db.Preload("Items").Where("jobwork_id = ?", jobworkID).
		Order("created_at ASC").Find(&receipts).Error; err != nil {
		return nil, err
	}
	return receipts, nil
}
