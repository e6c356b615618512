package service

import (
	"context"
	"errors"
	"fmt"

	apperrors "agent-distribution-backend/internal/errors"
	"agent-distribution-backend/internal/export"
	"agent-distribution-backend/internal/messaging"
	"agent-distribution-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessagingService forwards an agent's share of a list over the
// messaging channel: a text message followed by the items as a CSV
// attachment. Best effort; a failed send leaves no state behind.
type MessagingService struct {
	agentRepo  repository.AgentRepositoryInterface
	batchRepo  repository.UploadBatchRepositoryInterface
	itemRepo   repository.ContactItemRepositoryInterface
	dispatcher messaging.Dispatcher
}

// Ensure MessagingService implements MessagingServiceInterface
var _ MessagingServiceInterface = (*MessagingService)(nil)

// NewMessagingService creates a new MessagingService
func NewMessagingService(
	agentRepo repository.AgentRepositoryInterface,
	batchRepo repository.UploadBatchRepositoryInterface,
	itemRepo repository.ContactItemRepositoryInterface,
	dispatcher messaging.Dispatcher,
) *MessagingService {
	return &MessagingService{
		agentRepo:  agentRepo,
		batchRepo:  batchRepo,
		itemRepo:   itemRepo,
		dispatcher: dispatcher,
	}
}

// SendResult reports a completed forward
type SendResult struct {
	AgentPhone     string `json:"agent_phone"`
	FormattedPhone string `json:"formatted_phone"`
	ItemCount      int    `json:"item_count"`
}

// SendListToAgent sends the agent its items from the given batch
func (s *MessagingService) SendListToAgent(ctx context.Context, agentID, batchID uuid.UUID) (*SendResult, error) {
	if s.dispatcher.Status() != messaging.StatusConnected {
		return nil, apperrors.ErrDispatcherNotConnected
	}

	agent, err := s.agentRepo.GetByID(agentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAgentNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}

	batch, err := s.batchRepo.GetByID(batchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBatchNotFound
		}
		return nil, fmt.Errorf("failed to get upload record: %w", err)
	}

	items, err := s.itemRepo.GetByUploadID(batch.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}

	// Only this agent's share goes out.
	own := items[:0:0]
	for _, item := range items {
		if item.AssignedTo != nil && *item.AssignedTo == agent.ID {
			own = append(own, item)
		}
	}
	if len(own) == 0 {
		return nil, apperrors.ErrItemNotFound
	}

	phone, err := messaging.FormatPhone(agent.Mobile)
	if err != nil {
		return nil, err
	}

	text := fmt.Sprintf("Hello %s, you have %d contacts assigned from %s.", agent.Name, len(own), batch.OriginalName)
	if err := s.dispatcher.SendText(ctx, phone, text); err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	data, err := export.ItemsCSV(own)
	if err != nil {
		return nil, fmt.Errorf("failed to build csv: %w", err)
	}
	fileName := fmt.Sprintf("list_%s.csv", batch.ID)
	if err := s.dispatcher.SendFile(ctx, phone, fileName, data); err != nil {
		return nil, fmt.Errorf("failed to send file: %w", err)
	}

	return &SendResult{
		AgentPhone:     agent.Mobile,
		FormattedPhone: phone,
		ItemCount:      len(own),
	}, nil
}
