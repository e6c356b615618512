package service_test

import (
	"context"
	"testing"

	"agent-distribution-backend/internal/database/models"
	apperrors "agent-distribution-backend/internal/errors"
	"agent-distribution-backend/internal/messaging"
	"agent-distribution-backend/internal/mocks"
	"agent-distribution-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// MessagingServiceTestSuite defines the test suite for MessagingService
type MessagingServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockAgentRepo    *mocks.MockAgentRepositoryInterface
	mockBatchRepo    *mocks.MockUploadBatchRepositoryInterface
	mockItemRepo     *mocks.MockContactItemRepositoryInterface
	mockDispatcher   *mocks.MockDispatcher
	messagingService *service.MessagingService
}

// SetupTest sets up the test suite
func (suite *MessagingServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAgentRepo = mocks.NewMockAgentRepositoryInterface(suite.ctrl)
	suite.mockBatchRepo = mocks.NewMockUploadBatchRepositoryInterface(suite.ctrl)
	suite.mockItemRepo = mocks.NewMockContactItemRepositoryInterface(suite.ctrl)
	suite.mockDispatcher = mocks.NewMockDispatcher(suite.ctrl)

	suite.messagingService = service.NewMessagingService(
		suite.mockAgentRepo,
		suite.mockBatchRepo,
		suite.mockItemRepo,
		suite.mockDispatcher,
	)
}

// TearDownTest cleans up after each test
func (suite *MessagingServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestSendListToAgent tests the happy path: text then CSV attachment
func (suite *MessagingServiceTestSuite) TestSendListToAgent() {
	agentID := uuid.New()
	otherAgentID := uuid.New()
	batchID := uuid.New()

	agent := &models.Agent{
		BaseModel: models.BaseModel{ID: agentID},
		Name:      "Test Agent",
		Mobile:    "+91 98765-43210",
	}
	batch := &models.UploadBatch{
		BaseModel:    models.BaseModel{ID: batchID},
		OriginalName: "contacts.csv",
	}
	items := []models.ContactItem{
		{FirstName: "John", Phone: "111", AssignedTo: &agentID},
		{FirstName: "Jane", Phone: "222", AssignedTo: &otherAgentID},
		{FirstName: "Mary", Phone: "333", AssignedTo: &agentID},
	}

	suite.mockDispatcher.EXPECT().Status().Return(messaging.StatusConnected).Times(1)
	suite.mockAgentRepo.EXPECT().GetByID(agentID).Return(agent, nil).Times(1)
	suite.mockBatchRepo.EXPECT().GetByID(batchID).Return(batch, nil).Times(1)
	suite.mockItemRepo.EXPECT().GetByUploadID(batchID).Return(items, nil).Times(1)

	suite.mockDispatcher.EXPECT().
		SendText(gomock.Any(), "919876543210", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, text string) error {
			suite.Contains(text, "Test Agent")
			suite.Contains(text, "2 contacts")
			suite.Contains(text, "contacts.csv")
			return nil
		}).
		Times(1)

	suite.mockDispatcher.EXPECT().
		SendFile(gomock.Any(), "919876543210", "list_"+batchID.String()+".csv", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, data []byte) error {
			// Only the agent's own share is attached.
			suite.Contains(string(data), "John")
			suite.Contains(string(data), "Mary")
			suite.NotContains(string(data), "Jane")
			return nil
		}).
		Times(1)

	result, err := suite.messagingService.SendListToAgent(context.Background(), agentID, batchID)

	suite.NoError(err)
	suite.Require().NotNil(result)
	suite.Equal("+91 98765-43210", result.AgentPhone)
	suite.Equal("919876543210", result.FormattedPhone)
	suite.Equal(2, result.ItemCount)
}

// TestSendListToAgentNotConnected tests rejecting sends on a cold channel
func (suite *MessagingServiceTestSuite) TestSendListToAgentNotConnected() {
	suite.mockDispatcher.EXPECT().Status().Return(messaging.StatusDisconnected).Times(1)

	result, err := suite.messagingService.SendListToAgent(context.Background(), uuid.New(), uuid.New())

	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrDispatcherNotConnected)
}

// TestSendListToAgentNoAssignedItems tests an agent with no share in the batch
func (suite *MessagingServiceTestSuite) TestSendListToAgentNoAssignedItems() {
	agentID := uuid.New()
	batchID := uuid.New()
	otherAgentID := uuid.New()

	agent := &models.Agent{BaseModel: models.BaseModel{ID: agentID}, Mobile: "+919876543210"}
	batch := &models.UploadBatch{BaseModel: models.BaseModel{ID: batchID}}

	suite.mockDispatcher.EXPECT().Status().Return(messaging.StatusConnected).Times(1)
	suite.mockAgentRepo.EXPECT().GetByID(agentID).Return(agent, nil).Times(1)
	suite.mockBatchRepo.EXPECT().GetByID(batchID).Return(batch, nil).Times(1)
	suite.mockItemRepo.EXPECT().
		GetByUploadID(batchID).
		Return([]models.ContactItem{{FirstName: "Jane", AssignedTo: &otherAgentID}}, nil).
		Times(1)

	result, err := suite.messagingService.SendListToAgent(context.Background(), agentID, batchID)

	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrItemNotFound)
}

// TestSendListToAgentInvalidPhone tests rejecting a malformed mobile number
func (suite *MessagingServiceTestSuite) TestSendListToAgentInvalidPhone() {
	agentID := uuid.New()
	batchID := uuid.New()

	agent := &models.Agent{BaseModel: models.BaseModel{ID: agentID}, Mobile: "12345"}
	batch := &models.UploadBatch{BaseModel: models.BaseModel{ID: batchID}}

	suite.mockDispatcher.EXPECT().Status().Return(messaging.StatusConnected).Times(1)
	suite.mockAgentRepo.EXPECT().GetByID(agentID).Return(agent, nil).Times(1)
	suite.mockBatchRepo.EXPECT().GetByID(batchID).Return(batch, nil).Times(1)
	suite.mockItemRepo.EXPECT().
		GetByUploadID(batchID).
		Return([]models.ContactItem{{FirstName: "John", AssignedTo: &agentID}}, nil).
		Times(1)

	result, err := suite.messagingService.SendListToAgent(context.Background(), agentID, batchID)

	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrInvalidPhoneNumber)
}

// TestSendListToAgentUnknownAgent tests the not-found mapping
func (suite *MessagingServiceTestSuite) TestSendListToAgentUnknownAgent() {
	agentID := uuid.New()

	suite.mockDispatcher.EXPECT().Status().Return(messaging.StatusConnected).Times(1)
	suite.mockAgentRepo.EXPECT().GetByID(agentID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	result, err := suite.messagingService.SendListToAgent(context.Background(), agentID, uuid.New())

	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrAgentNotFound)
}

// TestMessagingServiceTestSuite runs the test suite
func TestMessagingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}
