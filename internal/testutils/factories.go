package testutils

import (
	"fmt"
	"time"

	"agent-distribution-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test operator account data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "Admin User",
		// Unique email per instance to avoid unique-index conflicts
		Email: fmt.Sprintf("admin-%s@test.com", id.String()[:8]),
		// bcrypt hash of "password123"
		Password: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Mobile:   "+911234567890",
		Role:     models.UserRoleAdmin,
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// AgentFactory provides methods to create test Agent data
type AgentFactory struct{}

// NewAgentFactory creates a new AgentFactory
func NewAgentFactory() *AgentFactory {
	return &AgentFactory{}
}

// Create creates a test Agent with default values
func (f *AgentFactory) Create() *models.Agent {
	id := uuid.New()
	return &models.Agent{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:      "Test Agent",
		Email:     fmt.Sprintf("agent-%s@test.com", id.String()[:8]),
		Mobile:    "+919876543210",
		Password:  "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Status:    models.AgentStatusActive,
		CreatedBy: uuid.New(),
	}
}

// WithName sets a custom name for the agent
func (f *AgentFactory) WithName(name string) *models.Agent {
	agent := f.Create()
	agent.Name = name
	return agent
}

// WithStatus sets a custom status for the agent
func (f *AgentFactory) WithStatus(status models.AgentStatus) *models.Agent {
	agent := f.Create()
	agent.Status = status
	return agent
}

// WithCreatedBy sets the creating operator for the agent
func (f *AgentFactory) WithCreatedBy(userID uuid.UUID) *models.Agent {
	agent := f.Create()
	agent.CreatedBy = userID
	return agent
}

// UploadBatchFactory provides methods to create test UploadBatch data
type UploadBatchFactory struct{}

// NewUploadBatchFactory creates a new UploadBatchFactory
func NewUploadBatchFactory() *UploadBatchFactory {
	return &UploadBatchFactory{}
}

// Create creates a test UploadBatch with default values
func (f *UploadBatchFactory) Create() *models.UploadBatch {
	id := uuid.New()
	return &models.UploadBatch{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FileName:     fmt.Sprintf("file-%s.csv", id.String()[:8]),
		OriginalName: "contacts.csv",
		ItemCount:    0,
		Status:       models.UploadStatusProcessed,
		UploadedBy:   uuid.New(),
	}
}

// WithStatus sets a custom status for the batch
func (f *UploadBatchFactory) WithStatus(status models.UploadStatus) *models.UploadBatch {
	batch := f.Create()
	batch.Status = status
	return batch
}

// WithUploadedBy sets the uploading operator for the batch
func (f *UploadBatchFactory) WithUploadedBy(userID uuid.UUID) *models.UploadBatch {
	batch := f.Create()
	batch.UploadedBy = userID
	return batch
}

// ContactItemFactory provides methods to create test ContactItem data
type ContactItemFactory struct{}

// NewContactItemFactory creates a new ContactItemFactory
func NewContactItemFactory() *ContactItemFactory {
	return &ContactItemFactory{}
}

// Create creates a test ContactItem with default values
func (f *ContactItemFactory) Create() *models.ContactItem {
	return &models.ContactItem{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirstName: "John",
		Phone:     "+919876500000",
		Notes:     "test note",
		Status:    models.ItemStatusPending,
		UploadID:  uuid.New(),
	}
}

// WithUpload sets the owning batch for the item
func (f *ContactItemFactory) WithUpload(uploadID uuid.UUID) *models.ContactItem {
	item := f.Create()
	item.UploadID = uploadID
	return item
}

// WithAgent assigns the item to an agent
func (f *ContactItemFactory) WithAgent(agentID uuid.UUID) *models.ContactItem {
	item := f.Create()
	item.AssignedTo = &agentID
	return item
}

// FactorySet bundles all factories for convenience
type FactorySet struct {
	User        *UserFactory
	Agent       *AgentFactory
	UploadBatch *UploadBatchFactory
	ContactItem *ContactItemFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:        NewUserFactory(),
		Agent:       NewAgentFactory(),
		UploadBatch: NewUploadBatchFactory(),
		ContactItem: NewContactItemFactory(),
	}
}
