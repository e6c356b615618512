package service

import (
	"context"

	"agent-distribution-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AgentServiceInterface defines the interface for agent business logic
type AgentServiceInterface interface {
	Create(req *CreateAgentRequest, createdBy uuid.UUID) (*AgentResponse, error)
	GetAll() ([]AgentResponse, error)
	GetByID(id uuid.UUID) (*AgentDetailResponse, error)
	Update(id uuid.UUID, req *UpdateAgentRequest) (*AgentResponse, error)
	Delete(id uuid.UUID) error
	GetItems(id uuid.UUID) ([]ItemResponse, error)
}

// UploadServiceInterface defines the interface for the upload lifecycle
type UploadServiceInterface interface {
	ProcessUpload(fileName, originalName string, data []byte, ext string, uploadedBy uuid.UUID) (*UploadResult, error)
	GetRecords() ([]UploadRecordResponse, error)
	GetRecordByID(id uuid.UUID) (*UploadRecordResponse, error)
	GetItems(batchID uuid.UUID) ([]ItemResponse, error)
	GetSummary() ([]SummaryEntry, error)
	BuildDownload(batchID uuid.UUID) (*Download, error)
}

// DashboardServiceInterface defines the interface for dashboard statistics
type DashboardServiceInterface interface {
	Stats() (*StatsResponse, error)
}

// MessagingServiceInterface defines the interface for forwarding an
// agent's share over the messaging channel
type MessagingServiceInterface interface {
	SendListToAgent(ctx context.Context, agentID, batchID uuid.UUID) (*SendResult, error)
}

// ItemResponse represents a contact item in API responses
type ItemResponse struct {
	ID         uuid.UUID  `json:"id"`
	FirstName  string     `json:"first_name"`
	Phone      string     `json:"phone"`
	Notes      string     `json:"notes"`
	Status     string     `json:"status"`
	UploadID   uuid.UUID  `json:"upload_id"`
	AssignedTo *uuid.UUID `json:"assigned_to,omitempty"`
	AgentName  string     `json:"agent_name,omitempty"`
}

func toItemResponse(item *models.ContactItem) ItemResponse {
	resp := ItemResponse{
		ID:         item.ID,
		FirstName:  item.FirstName,
		Phone:      item.Phone,
		Notes:      item.Notes,
		Status:     string(item.Status),
		UploadID:   item.UploadID,
		AssignedTo: item.AssignedTo,
	}
	if item.Agent != nil {
		resp.AgentName = item.Agent.Name
	}
	return resp
}
