package repositories

import (
	"time"

	"garment-app/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WorkflowRepository struct {
	db *gorm.DB
}

func NewWorkflowRepository(db *gorm.DB) *WorkflowRepository {
	return &WorkflowRepository{db: db}
}

func (r *WorkflowRepository) Create(request *models.WorkflowRequest) error {
	return r.db.Create(request).Error
}

func (r *WorkflowRepository) GetByRequestNo(requestNo string) (*models.WorkflowRequest, error) {
	var request models.WorkflowRequest
	if err := r.db.First(&request, "request_no = ?", requestNo).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

// GetByRequestNoForUpdate row-locks the request so it can be resolved
// exactly once. Must run inside a transaction.
func (r *WorkflowRepository) GetByRequestNoForUpdate(requestNo string) (*models.WorkflowRequest, error) {
	var request models.WorkflowRequest
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&request, "request_no = ?", requestNo).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *WorkflowRepository) ListByStatus(status string) ([]models.WorkflowRequest, error) {
	query := r.db.Order("created_at DESC")
	if status != "" {
		query = query.Where("request_status = ?", status)
	}

	var requests []models.WorkflowRequest
	if err := query.Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// PendingOlderThan feeds the reminder mailer.
func (r *WorkflowRepository) PendingOlderThan(cutoff time.Time) ([]models.WorkflowRequest, error) {
	var requests []models.WorkflowRequest
	if err := r.db.Where("request_status = ? AND created_at < ?", models.RequestStatusPending, cutoff).
		Order("created_at ASC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}
