package service

import (
	"errors"
	"fmt"
	"time"

	"agent-distribution-backend/internal/database/models"
	"agent-distribution-backend/internal/distribution"
	apperrors "agent-distribution-backend/internal/errors"
	"agent-distribution-backend/internal/export"
	"agent-distribution-backend/internal/ingest"
	"agent-distribution-backend/internal/logger"
	"agent-distribution-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UploadService owns the upload batch status machine and orchestrates
// parse -> count -> partition -> persist. Statuses move
// processed -> distributing -> complete; any stage error flips the
// batch to failed with the error text captured as the note. Chunks
// written before a failure stay written; callers must treat a failed
// batch as possibly partially populated.
type UploadService struct {
	batchRepo repository.UploadBatchRepositoryInterface
	itemRepo  repository.ContactItemRepositoryInterface
	agentRepo repository.AgentRepositoryInterface
	poolSize  int
	log       *logger.Logger
}

// Ensure UploadService implements UploadServiceInterface
var _ UploadServiceInterface = (*UploadService)(nil)

// NewUploadService creates a new UploadService. poolSize is both the
// minimum active-agent count required for distribution and the cap on
// the pool query.
func NewUploadService(
	batchRepo repository.UploadBatchRepositoryInterface,
	itemRepo repository.ContactItemRepositoryInterface,
	agentRepo repository.AgentRepositoryInterface,
	poolSize int,
) *UploadService {
	return &UploadService{
		batchRepo: batchRepo,
		itemRepo:  itemRepo,
		agentRepo: agentRepo,
		poolSize:  poolSize,
		log:       logger.New(),
	}
}

// UploadResult is the success payload of a processed upload
type UploadResult struct {
	UploadID   uuid.UUID `json:"upload_id"`
	ItemCount  int       `json:"item_count"`
	AgentCount int       `json:"agent_count"`
}

// UploadRecordResponse represents an upload batch in API responses
type UploadRecordResponse struct {
	ID           uuid.UUID `json:"id"`
	FileName     string    `json:"file_name"`
	OriginalName string    `json:"original_name"`
	ItemCount    int       `json:"item_count"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes,omitempty"`
	UploadedBy   uuid.UUID `json:"uploaded_by"`
	CreatedAt    time.Time `json:"created_at"`
}

// SummaryEntry is one row of the distribution summary
type SummaryEntry struct {
	FileName  string    `json:"file_name"`
	ItemCount int       `json:"item_count"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Download is a regenerated spreadsheet ready to stream back
type Download struct {
	FileName    string
	ContentType string
	Data        []byte
}

// ProcessUpload runs the full pipeline for an accepted file. The batch
// record exists from the moment the file is accepted, so every failure
// after this point is recorded on it.
func (s *UploadService) ProcessUpload(fileName, originalName string, data []byte, ext string, uploadedBy uuid.UUID) (*UploadResult, error) {
	batch, err := s.BeginUpload(fileName, originalName, uploadedBy)
	if err != nil {
		return nil, err
	}

	rows, err := ingest.Parse(data, ext)
	if err != nil {
		s.failBatch(batch.ID, err)
		return nil, fmt.Errorf("error processing file: %w", err)
	}

	if err := s.RecordParsedCount(batch.ID, len(rows)); err != nil {
		s.failBatch(batch.ID, err)
		return nil, fmt.Errorf("error processing file: %w", err)
	}

	agents, err := s.activeAgents()
	if err != nil {
		s.failBatch(batch.ID, err)
		return nil, fmt.Errorf("error processing file: %w", err)
	}

	if err := s.AssignAndPersist(batch.ID, rows, agents); err != nil {
		s.failBatch(batch.ID, err)
		return nil, fmt.Errorf("error processing file: %w", err)
	}

	s.log.WithFields(map[string]interface{}{
		"upload_id": batch.ID,
		"items":     len(rows),
		"agents":    len(agents),
	}).Info("upload distributed")

	return &UploadResult{
		UploadID:   batch.ID,
		ItemCount:  len(rows),
		AgentCount: len(agents),
	}, nil
}

// BeginUpload creates the batch record in processed state with item
// count 0.
func (s *UploadService) BeginUpload(fileName, originalName string, uploadedBy uuid.UUID) (*models.UploadBatch, error) {
	batch := &models.UploadBatch{
		FileName:     fileName,
		OriginalName: originalName,
		ItemCount:    0,
		Status:       models.UploadStatusProcessed,
		UploadedBy:   uploadedBy,
	}
	if err := s.batchRepo.Create(batch); err != nil {
		return nil, fmt.Errorf("failed to create upload record: %w", err)
	}
	return batch, nil
}

// RecordParsedCount stores the parsed item count and moves the batch to
// distributing. Fails fast on a zero count without touching the batch.
func (s *UploadService) RecordParsedCount(batchID uuid.UUID, count int) error {
	if count == 0 {
		return apperrors.ErrNoValidItems
	}
	return s.transition(batchID, models.UploadStatusDistributing, map[string]interface{}{
		"item_count": count,
	})
}

// AssignAndPersist partitions the rows across the agent pool, persists
// each agent's chunk, and completes the batch. Each chunk insert is
// atomic, but a failure between chunks leaves the earlier ones in
// place and the batch in failed state.
func (s *UploadService) AssignAndPersist(batchID uuid.UUID, rows []ingest.ContactRow, agents []models.Agent) error {
	if len(agents) < s.poolSize {
		return apperrors.ErrInsufficientAgents
	}

	split := distribution.Split(len(rows), len(agents))
	for pos, indices := range split {
		if len(indices) == 0 {
			continue
		}
		agentID := agents[pos].ID
		chunk := make([]models.ContactItem, len(indices))
		for i, idx := range indices {
			chunk[i] = models.ContactItem{
				FirstName:  rows[idx].FirstName,
				Phone:      rows[idx].Phone,
				Notes:      rows[idx].Notes,
				Status:     models.ItemStatusPending,
				UploadID:   batchID,
				AssignedTo: &agentID,
			}
		}
		if err := s.itemRepo.CreateBatch(chunk); err != nil {
			return fmt.Errorf("failed to persist items for agent %s: %w", agentID, err)
		}
	}

	return s.transition(batchID, models.UploadStatusComplete, nil)
}

// GetRecords retrieves all upload batches, newest first
func (s *UploadService) GetRecords() ([]UploadRecordResponse, error) {
	batches, err := s.batchRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get upload records: %w", err)
	}

	responses := make([]UploadRecordResponse, len(batches))
	for i, b := range batches {
		responses[i] = toRecordResponse(&b)
	}
	return responses, nil
}

// GetRecordByID retrieves one upload batch
func (s *UploadService) GetRecordByID(id uuid.UUID) (*UploadRecordResponse, error) {
	batch, err := s.batchRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBatchNotFound
		}
		return nil, fmt.Errorf("failed to get upload record: %w", err)
	}
	resp := toRecordResponse(batch)
	return &resp, nil
}

// GetItems retrieves the items of an upload batch in creation order
func (s *UploadService) GetItems(batchID uuid.UUID) ([]ItemResponse, error) {
	if _, err := s.batchRepo.GetByID(batchID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBatchNotFound
		}
		return nil, fmt.Errorf("failed to get upload record: %w", err)
	}

	items, err := s.itemRepo.GetByUploadID(batchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}

	responses := make([]ItemResponse, len(items))
	for i, item := range items {
		responses[i] = toItemResponse(&item)
	}
	return responses, nil
}

// GetSummary returns the condensed upload history
func (s *UploadService) GetSummary() ([]SummaryEntry, error) {
	batches, err := s.batchRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get upload records: %w", err)
	}

	summary := make([]SummaryEntry, len(batches))
	for i, b := range batches {
		summary[i] = SummaryEntry{
			FileName:  b.FileName,
			ItemCount: b.ItemCount,
			Status:    string(b.Status),
			CreatedAt: b.CreatedAt,
		}
	}
	return summary, nil
}

// BuildDownload regenerates the batch as an xlsx workbook
func (s *UploadService) BuildDownload(batchID uuid.UUID) (*Download, error) {
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

	data, err := export.ItemsWorkbook(items)
	if err != nil {
		return nil, fmt.Errorf("failed to build workbook: %w", err)
	}

	return &Download{
		FileName:    fmt.Sprintf("list_%s.xlsx", batch.ID),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        data,
	}, nil
}

// activeAgents fetches the distribution pool: up to poolSize active
// agents in creation order.
func (s *UploadService) activeAgents() ([]models.Agent, error) {
	agents, err := s.agentRepo.GetActive(s.poolSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get active agents: %w", err)
	}
	return agents, nil
}

// failBatch marks the batch failed with the cause as its note. Failure
// here is only logged: the original error is what the caller reports. A
// batch already in a terminal state is left untouched.
func (s *UploadService) failBatch(batchID uuid.UUID, cause error) {
	err := s.transition(batchID, models.UploadStatusFailed, map[string]interface{}{
		"notes": cause.Error(),
	})
	if err != nil && !errors.Is(err, apperrors.ErrBatchTerminal) {
		s.log.WithField("upload_id", batchID).Errorf("failed to mark batch failed: %v", err)
	}
}

// transition moves the batch to next, rejecting moves the status machine
// does not allow. The current status is read back from the store so the
// guard holds no matter which caller drives the lifecycle.
func (s *UploadService) transition(batchID uuid.UUID, next models.UploadStatus, extra map[string]interface{}) error {
	batch, err := s.batchRepo.GetByID(batchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBatchNotFound
		}
		return fmt.Errorf("failed to get upload record: %w", err)
	}

	if !batch.Status.CanTransitionTo(next) {
		if batch.Status.IsTerminal() {
			return apperrors.ErrBatchTerminal
		}
		return fmt.Errorf("%w: cannot move %s to %s", apperrors.ErrInvalidStatus, batch.Status, next)
	}

	updates := map[string]interface{}{"status": next}
	for k, v := range extra {
		updates[k] = v
	}
	return s.batchRepo.Update(batchID, updates)
}

func toRecordResponse(batch *models.UploadBatch) UploadRecordResponse {
	return UploadRecordResponse{
		ID:           batch.ID,
		FileName:     batch.FileName,
		OriginalName: batch.OriginalName,
		ItemCount:    batch.ItemCount,
		Status:       string(batch.Status),
		Notes:        batch.Notes,
		UploadedBy:   batch.UploadedBy,
		CreatedAt:    batch.CreatedAt,
	}
}
