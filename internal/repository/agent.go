package repository

import (
	"agent-distribution-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AgentRepository handles database operations for agents
type AgentRepository struct {
	db *gorm.DB
}

// Ensure AgentRepository implements AgentRepositoryInterface
var _ AgentRepositoryInterface = (*AgentRepository)(nil)

// NewAgentRepository creates a new agent repository
func NewAgentRepository(db *gorm.DB) *AgentRepository {
	return &AgentRepository{db: db}
}

// Create inserts a new agent
func (r *AgentRepository) Create(agent *models.Agent) error {
	return r.db.Create(agent).Error
}

// GetByID retrieves an agent by its UUID, including assigned items
func (r *AgentRepository) GetByID(id uuid.UUID) (*models.Agent, error) {
	var agent models.Agent
	if err := r.db.Preload("AssignedItems").First(&agent, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &agent, nil
}

// GetByEmail retrieves an agent by email
func (r *AgentRepository) GetByEmail(email string) (*models.Agent, error) {
	var agent models.Agent
	if err := r.db.First(&agent, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &agent, nil
}

// GetAll retrieves all agents, newest first
func (r *AgentRepository) GetAll() ([]models.Agent, error) {
	var agents []models.Agent
	if err := r.db.Order("created_at DESC").Find(&agents).Error; err != nil {
		return nil, err
	}
	return agents, nil
}

// GetActive retrieves up to limit active agents. The ordering here is
// the distribution pool order: created_at with id as tiebreak, so the
// partition formula sees a stable, total order.
func (r *AgentRepository) GetActive(limit int) ([]models.Agent, error) {
	var agents []models.Agent
	err := r.db.
		Where("status = ?", models.AgentStatusActive).
		Order("created_at ASC, id ASC").
		Limit(limit).
		Find(&agents).Error
	if err != nil {
		return nil, err
	}
	return agents, nil
}

// Update applies the given column updates to an agent
func (r *AgentRepository) Update(id uuid.UUID, updates map[string]interface{}) error {
	return r.db.Model(&models.Agent{}).Where("id = ?", id).Updates(updates).Error
}

// Delete removes an agent
func (r *AgentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Agent{}, "id = ?", id).Error
}

// Count returns the total number of agents
func (r *AgentRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.Agent{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
