package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"agent-distribution-backend/internal/database/models"
	apperrors "agent-distribution-backend/internal/errors"
	"agent-distribution-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AgentService provides agent-related business logic
type AgentService struct {
	repo        repository.AgentRepositoryInterface
	itemRepo    repository.ContactItemRepositoryInterface
	validator   *validator.Validate
	countryCode string
}

// Ensure AgentService implements AgentServiceInterface
var _ AgentServiceInterface = (*AgentService)(nil)

// NewAgentService creates a new AgentService
func NewAgentService(repo repository.AgentRepositoryInterface, itemRepo repository.ContactItemRepositoryInterface, validator *validator.Validate, countryCode string) *AgentService {
	return &AgentService{
		repo:        repo,
		itemRepo:    itemRepo,
		validator:   validator,
		countryCode: countryCode,
	}
}

// CreateAgentRequest is the payload for creating an agent
type CreateAgentRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Mobile   string `json:"mobile" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// UpdateAgentRequest is the payload for updating an agent; zero-value
// fields are left untouched
type UpdateAgentRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"omitempty,email"`
	Mobile   string `json:"mobile"`
	Status   string `json:"status"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

// AgentResponse represents an agent in API responses
type AgentResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Mobile    string    `json:"mobile"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// AgentDetailResponse is an agent plus its assigned items
type AgentDetailResponse struct {
	AgentResponse
	AssignedItems []ItemResponse `json:"assigned_items"`
}

// Create registers a new agent owned by the given operator
func (s *AgentService) Create(req *CreateAgentRequest, createdBy uuid.UUID) (*AgentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if _, err := s.repo.GetByEmail(strings.ToLower(req.Email)); err == nil {
		return nil, apperrors.ErrAgentExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing agent: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	agent := &models.Agent{
		Name:      req.Name,
		Email:     strings.ToLower(req.Email),
		Mobile:    s.normalizeMobile(req.Mobile),
		Password:  string(hash),
		Status:    models.AgentStatusActive,
		CreatedBy: createdBy,
	}

	if err := s.repo.Create(agent); err != nil {
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	resp := s.toResponse(agent)
	return &resp, nil
}

// GetAll retrieves all agents
func (s *AgentService) GetAll() ([]AgentResponse, error) {
	agents, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get agents: %w", err)
	}

	responses := make([]AgentResponse, len(agents))
	for i, a := range agents {
		responses[i] = s.toResponse(&a)
	}
	return responses, nil
}

// GetByID retrieves an agent with its assigned items
func (s *AgentService) GetByID(id uuid.UUID) (*AgentDetailResponse, error) {
	agent, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAgentNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}

	items := make([]ItemResponse, len(agent.AssignedItems))
	for i, item := range agent.AssignedItems {
		items[i] = toItemResponse(&item)
	}

	return &AgentDetailResponse{
		AgentResponse: s.toResponse(agent),
		AssignedItems: items,
	}, nil
}

// Update applies partial updates to an agent
func (s *AgentService) Update(id uuid.UUID, req *UpdateAgentRequest) (*AgentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAgentNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Email != "" {
		updates["email"] = strings.ToLower(req.Email)
	}
	if req.Mobile != "" {
		updates["mobile"] = s.normalizeMobile(req.Mobile)
	}
	if req.Status != "" {
		if !models.AgentStatus(req.Status).IsValid() {
			return nil, apperrors.NewValidationError("status", "must be active or inactive")
		}
		updates["status"] = req.Status
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		updates["password"] = string(hash)
	}

	if len(updates) > 0 {
		if err := s.repo.Update(id, updates); err != nil {
			return nil, fmt.Errorf("failed to update agent: %w", err)
		}
	}

	agent, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload agent: %w", err)
	}
	resp := s.toResponse(agent)
	return &resp, nil
}

// Delete removes an agent. Items assigned to it keep their batch but
// lose the agent reference; they are not reassigned.
func (s *AgentService) Delete(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAgentNotFound
		}
		return fmt.Errorf("failed to get agent: %w", err)
	}

	if err := s.itemRepo.ClearAssignments(id); err != nil {
		return fmt.Errorf("failed to clear item assignments: %w", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete agent: %w", err)
	}
	return nil
}

// GetItems retrieves the items assigned to an agent
func (s *AgentService) GetItems(id uuid.UUID) ([]ItemResponse, error) {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAgentNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}

	items, err := s.itemRepo.GetByAgentID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get agent items: %w", err)
	}

	responses := make([]ItemResponse, len(items))
	for i, item := range items {
		responses[i] = toItemResponse(&item)
	}
	return responses, nil
}

// normalizeMobile prepends the configured country code when missing
func (s *AgentService) normalizeMobile(mobile string) string {
	mobile = strings.TrimSpace(mobile)
	if s.countryCode != "" && !strings.HasPrefix(mobile, s.countryCode) {
		return s.countryCode + mobile
	}
	return mobile
}

// toResponse converts an Agent model to API response
func (s *AgentService) toResponse(agent *models.Agent) AgentResponse {
	return AgentResponse{
		ID:        agent.ID,
		Name:      agent.Name,
		Email:     agent.Email,
		Mobile:    agent.Mobile,
		Status:    string(agent.Status),
		CreatedAt: agent.CreatedAt,
	}
}
