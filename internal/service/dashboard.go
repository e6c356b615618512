package service

import (
	"fmt"

	"agent-distribution-backend/internal/repository"
)

// DashboardService aggregates roster-wide counts for the admin landing page
type DashboardService struct {
	agentRepo repository.AgentRepositoryInterface
	batchRepo repository.UploadBatchRepositoryInterface
	itemRepo  repository.ContactItemRepositoryInterface
}

// Ensure DashboardService implements DashboardServiceInterface
var _ DashboardServiceInterface = (*DashboardService)(nil)

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	agentRepo repository.AgentRepositoryInterface,
	batchRepo repository.UploadBatchRepositoryInterface,
	itemRepo repository.ContactItemRepositoryInterface,
) *DashboardService {
	return &DashboardService{
		agentRepo: agentRepo,
		batchRepo: batchRepo,
		itemRepo:  itemRepo,
	}
}

// StatsResponse carries the dashboard counters
type StatsResponse struct {
	AgentCount    int64 `json:"agent_count"`
	UploadCount   int64 `json:"upload_count"`
	ListItemCount int64 `json:"list_item_count"`
}

// Stats returns current roster-wide counts
func (s *DashboardService) Stats() (*StatsResponse, error) {
	agents, err := s.agentRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count agents: %w", err)
	}
	uploads, err := s.batchRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count uploads: %w", err)
	}
	items, err := s.itemRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count items: %w", err)
	}

	return &StatsResponse{
		AgentCount:    agents,
		UploadCount:   uploads,
		ListItemCount: items,
	}, nil
}
