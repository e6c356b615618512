package repository

import (
	"agent-distribution-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UploadBatchRepository handles database operations for upload batches
type UploadBatchRepository struct {
	db *gorm.DB
}

// Ensure UploadBatchRepository implements UploadBatchRepositoryInterface
var _ UploadBatchRepositoryInterface = (*UploadBatchRepository)(nil)

// NewUploadBatchRepository creates a new upload batch repository
func NewUploadBatchRepository(db *gorm.DB) *UploadBatchRepository {
	return &UploadBatchRepository{db: db}
}

// Create inserts a new upload batch
func (r *UploadBatchRepository) Create(batch *models.UploadBatch) error {
	return r.db.Create(batch).Error
}

// GetByID retrieves an upload batch by its UUID
func (r *UploadBatchRepository) GetByID(id uuid.UUID) (*models.UploadBatch, error) {
	var batch models.UploadBatch
	if err := r.db.First(&batch, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &batch, nil
}

// GetAll retrieves all upload batches, newest first
func (r *UploadBatchRepository) GetAll() ([]models.UploadBatch, error) {
	var batches []models.UploadBatch
	if err := r.db.Order("created_at DESC").Find(&batches).Error; err != nil {
		return nil, err
	}
	return batches, nil
}

// Update applies the given column updates to an upload batch
func (r *UploadBatchRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.UploadBatch{}).Where("id = ?", id).Updates(updates).Error
}

// Count returns the total number of upload batches
func (r *UploadBatchRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.UploadBatch{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
