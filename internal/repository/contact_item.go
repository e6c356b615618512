package repository

import (
	"agent-distribution-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactItemRepository handles database operations for contact items
type ContactItemRepository struct {
	db *gorm.DB
}

// Ensure ContactItemRepository implements ContactItemRepositoryInterface
var _ ContactItemRepositoryInterface = (*ContactItemRepository)(nil)

// NewContactItemRepository creates a new contact item repository
func NewContactItemRepository(db *gorm.DB) *ContactItemRepository {
	return &ContactItemRepository{db: db}
}

// CreateBatch inserts a chunk of items inside one transaction. The
// chunk is all-or-nothing; no transaction spans multiple chunks, so a
// distribution run that fails partway leaves earlier chunks in place.
// That partial-failure contract is owned by the upload service.
func (r *ContactItemRepository) CreateBatch(items []models.ContactItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(items, 100).Error
	})
}

// GetByUploadID retrieves all items of an upload batch with the owning
// agent preloaded, ordered by creation time with id as tiebreak. Rows
// bulk-inserted in one chunk share a timestamp, so ties fall back to id
// rather than true insertion order.
func (r *ContactItemRepository) GetByUploadID(uploadID uuid.UUID) ([]models.ContactItem, error) {
	var items []models.ContactItem
	err := r.db.
		Preload("Agent").
		Where("upload_id = ?", uploadID).
		Order("created_at ASC, id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetByAgentID retrieves all items assigned to an agent, newest first
func (r *ContactItemRepository) GetByAgentID(agentID uuid.UUID) ([]models.ContactItem, error) {
	var items []models.ContactItem
	err := r.db.
		Where("assigned_to = ?", agentID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// ClearAssignments removes the agent reference from all items assigned
// to the given agent. Items are not reassigned.
func (r *ContactItemRepository) ClearAssignments(agentID uuid.UUID) error {
	return r.db.Model(&models.ContactItem{}).
		Where("assigned_to = ?", agentID).
		Update("assigned_to", nil).Error
}

// CountByUploadID returns the number of persisted items for a batch
func (r *ContactItemRepository) CountByUploadID(uploadID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.Model(&models.ContactItem{}).
		Where("upload_id = ?", uploadID).
		Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// Count returns the total number of contact items
func (r *ContactItemRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.ContactItem{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
