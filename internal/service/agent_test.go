package service_test

import (
	"testing"

	"agent-distribution-backend/internal/database/models"
	apperrors "agent-distribution-backend/internal/errors"
	"agent-distribution-backend/internal/mocks"
	"agent-distribution-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AgentServiceTestSuite defines the test suite for AgentService
type AgentServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockAgentRepo *mocks.MockAgentRepositoryInterface
	mockItemRepo  *mocks.MockContactItemRepositoryInterface
	agentService  *service.AgentService
	validator     *validator.Validate
}

// SetupTest sets up the test suite
func (suite *AgentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAgentRepo = mocks.NewMockAgentRepositoryInterface(suite.ctrl)
	suite.mockItemRepo = mocks.NewMockContactItemRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.agentService = service.NewAgentService(suite.mockAgentRepo, suite.mockItemRepo, suite.validator, "+91")
}

// TearDownTest cleans up after each test
func (suite *AgentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateAgent tests creating an agent
func (suite *AgentServiceTestSuite) TestCreateAgent() {
	operatorID := uuid.New()
	req := &service.CreateAgentRequest{
		Name:     "Test Agent",
		Email:    "Agent@Test.com",
		Mobile:   "9876543210",
		Password: "secret123",
	}

	suite.mockAgentRepo.EXPECT().
		GetByEmail("agent@test.com").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockAgentRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(agent *models.Agent) error {
			agent.ID = uuid.New()
			suite.Equal("agent@test.com", agent.Email)
			suite.Equal("+919876543210", agent.Mobile)
			suite.Equal(models.AgentStatusActive, agent.Status)
			suite.Equal(operatorID, agent.CreatedBy)
			// Stored password must be a bcrypt hash of the request password
			suite.NoError(bcrypt.CompareHashAndPassword([]byte(agent.Password), []byte("secret123")))
			return nil
		}).
		Times(1)

	response, err := suite.agentService.Create(req, operatorID)

	suite.NoError(err)
	suite.Require().NotNil(response)
	suite.Equal("Test Agent", response.Name)
	suite.Equal("agent@test.com", response.Email)
	suite.Equal("+919876543210", response.Mobile)
	suite.Equal("active", response.Status)
}

// TestCreateAgentKeepsExistingCountryCode tests that a prefixed mobile is untouched
func (suite *AgentServiceTestSuite) TestCreateAgentKeepsExistingCountryCode() {
	req := &service.CreateAgentRequest{
		Name:     "Test Agent",
		Email:    "agent2@test.com",
		Mobile:   "+919876543210",
		Password: "secret123",
	}

	suite.mockAgentRepo.EXPECT().
		GetByEmail(req.Email).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)
	suite.mockAgentRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.agentService.Create(req, uuid.New())

	suite.NoError(err)
	suite.Equal("+919876543210", response.Mobile)
}

// TestCreateAgentValidationError tests a bad payload
func (suite *AgentServiceTestSuite) TestCreateAgentValidationError() {
	req := &service.CreateAgentRequest{
		Name:     "Test Agent",
		Email:    "not-an-email",
		Mobile:   "9876543210",
		Password: "secret123",
	}

	response, err := suite.agentService.Create(req, uuid.New())

	suite.Error(err)
	suite.Nil(response)
	suite.True(apperrors.IsValidation(err))
}

// TestCreateAgentDuplicateEmail tests the duplicate check
func (suite *AgentServiceTestSuite) TestCreateAgentDuplicateEmail() {
	req := &service.CreateAgentRequest{
		Name:     "Test Agent",
		Email:    "agent@test.com",
		Mobile:   "9876543210",
		Password: "secret123",
	}

	existing := &models.Agent{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     req.Email,
	}

	suite.mockAgentRepo.EXPECT().
		GetByEmail(req.Email).
		Return(existing, nil).
		Times(1)

	response, err := suite.agentService.Create(req, uuid.New())

	suite.Error(err)
	suite.Nil(response)
	suite.ErrorIs(err, apperrors.ErrAgentExists)
}

// TestGetByIDNotFound tests the not-found mapping
func (suite *AgentServiceTestSuite) TestGetByIDNotFound() {
	id := uuid.New()

	suite.mockAgentRepo.EXPECT().
		GetByID(id).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.agentService.GetByID(id)

	suite.Nil(response)
	suite.ErrorIs(err, apperrors.ErrAgentNotFound)
}

// TestUpdateAgentStatus tests a partial status update
func (suite *AgentServiceTestSuite) TestUpdateAgentStatus() {
	id := uuid.New()
	agent := &models.Agent{
		BaseModel: models.BaseModel{ID: id},
		Name:      "Test Agent",
		Status:    models.AgentStatusActive,
	}
	updated := &models.Agent{
		BaseModel: models.BaseModel{ID: id},
		Name:      "Test Agent",
		Status:    models.AgentStatusInactive,
	}

	suite.mockAgentRepo.EXPECT().GetByID(id).Return(agent, nil).Times(1)
	suite.mockAgentRepo.EXPECT().
		Update(id, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, updates map[string]interface{}) error {
			suite.Equal(map[string]interface{}{"status": "inactive"}, updates)
			return nil
		}).
		Times(1)
	suite.mockAgentRepo.EXPECT().GetByID(id).Return(updated, nil).Times(1)

	response, err := suite.agentService.Update(id, &service.UpdateAgentRequest{Status: "inactive"})

	suite.NoError(err)
	suite.Equal("inactive", response.Status)
}

// TestUpdateAgentInvalidStatus tests rejecting an unknown status value
func (suite *AgentServiceTestSuite) TestUpdateAgentInvalidStatus() {
	id := uuid.New()
	agent := &models.Agent{BaseModel: models.BaseModel{ID: id}}

	suite.mockAgentRepo.EXPECT().GetByID(id).Return(agent, nil).Times(1)

	response, err := suite.agentService.Update(id, &service.UpdateAgentRequest{Status: "sleeping"})

	suite.Nil(response)
	suite.True(apperrors.IsValidation(err))
}

// TestDeleteAgentClearsAssignments tests that delete unassigns items first
func (suite *AgentServiceTestSuite) TestDeleteAgentClearsAssignments() {
	id := uuid.New()
	agent := &models.Agent{BaseModel: models.BaseModel{ID: id}}

	gomock.InOrder(
		suite.mockAgentRepo.EXPECT().GetByID(id).Return(agent, nil),
		suite.mockItemRepo.EXPECT().ClearAssignments(id).Return(nil),
		suite.mockAgentRepo.EXPECT().Delete(id).Return(nil),
	)

	err := suite.agentService.Delete(id)

	suite.NoError(err)
}

// TestDeleteAgentNotFound tests deleting an unknown agent
func (suite *AgentServiceTestSuite) TestDeleteAgentNotFound() {
	id := uuid.New()

	suite.mockAgentRepo.EXPECT().
		GetByID(id).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	err := suite.agentService.Delete(id)

	suite.ErrorIs(err, apperrors.ErrAgentNotFound)
}

// TestAgentServiceTestSuite runs the test suite
func TestAgentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AgentServiceTestSuite))
}
