package repository

import (
	"agent-distribution-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for operator account repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Count() (int64, error)
}

// AgentRepositoryInterface defines the interface for agent repository operations
type AgentRepositoryInterface interface {
	Create(agent *models.Agent) error
	GetByID(id uuid.UUID) (*models.Agent, error)
	GetByEmail(email string) (*models.Agent, error)
	GetAll() ([]models.Agent, error)
	GetActive(limit int) ([]models.Agent, error)
	Update(id uuid.UUID, updates map[string]interface{}) error
	Delete(id uuid.UUID) error
	Count() (int64, error)
}

// UploadBatchRepositoryInterface defines the interface for upload batch repository operations
type UploadBatchRepositoryInterface interface {
	Create(batch *models.UploadBatch) error
	GetByID(id uuid.UUID) (*models.UploadBatch, error)
	GetAll() ([]models.UploadBatch, error)
	Update(id uuid.UUID, updates map[string]interface{}) error
	Count() (int64, error)
}

// ContactItemRepositoryInterface defines the interface for contact item repository operations
type ContactItemRepositoryInterface interface {
	CreateBatch(items []models.ContactItem) error
	GetByUploadID(uploadID uuid.UUID) ([]models.ContactItem, error)
	GetByAgentID(agentID uuid.UUID) ([]models.ContactItem, error)
	ClearAssignments(agentID uuid.UUID) error
	CountByUploadID(uploadID uuid.UUID) (int64, error)
	Count() (int64, error)
}
