package handlers

import (
	"net/http"
	"testing"

	apperrors "agent-distribution-backend/internal/errors"
	"agent-distribution-backend/internal/mocks"
	"agent-distribution-backend/internal/service"
	"agent-distribution-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AgentHandlerTestSuite defines the test suite for AgentHandler
type AgentHandlerTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockAgentService *mocks.MockAgentServiceInterface
	handler          *AgentHandler
	httpSuite        *testutils.HTTPTestSuite
	operatorID       uuid.UUID
}

// SetupTest sets up the test suite
func (suite *AgentHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAgentService = mocks.NewMockAgentServiceInterface(suite.ctrl)
	suite.operatorID = uuid.New()

	suite.handler = NewAgentHandler(suite.mockAgentService)

	suite.httpSuite = testutils.SetupHTTPTest()
	agents := suite.httpSuite.Router.Group("/api/agents")
	agents.Use(func(c *gin.Context) {
		c.Set("user_id", suite.operatorID.String())
		c.Next()
	})
	{
		agents.GET("", suite.handler.ListAgents)
		agents.POST("", suite.handler.CreateAgent)
		agents.GET("/:id", suite.handler.GetAgent)
		agents.PUT("/:id", suite.handler.UpdateAgent)
		agents.DELETE("/:id", suite.handler.DeleteAgent)
		agents.GET("/:id/items", suite.handler.GetAgentItems)
	}
}

// TearDownTest cleans up after each test
func (suite *AgentHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateAgent tests creating an agent
func (suite *AgentHandlerTestSuite) TestCreateAgent() {
	requestBody := map[string]interface{}{
		"name":     "Test Agent",
		"email":    "agent@test.com",
		"mobile":   "9876543210",
		"password": "secret123",
	}

	expected := &service.AgentResponse{
		ID:     uuid.New(),
		Name:   "Test Agent",
		Email:  "agent@test.com",
		Mobile: "+919876543210",
		Status: "active",
	}

	suite.mockAgentService.EXPECT().
		Create(gomock.Any(), suite.operatorID).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/agents", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response struct {
		Data service.AgentResponse `json:"data"`
	}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), expected.Email, response.Data.Email)
	assert.Equal(suite.T(), "+919876543210", response.Data.Mobile)
}

// TestCreateAgentDuplicateEmail tests the duplicate mapping
func (suite *AgentHandlerTestSuite) TestCreateAgentDuplicateEmail() {
	requestBody := map[string]interface{}{
		"name":     "Test Agent",
		"email":    "agent@test.com",
		"mobile":   "9876543210",
		"password": "secret123",
	}

	suite.mockAgentService.EXPECT().
		Create(gomock.Any(), suite.operatorID).
		Return(nil, apperrors.ErrAgentExists).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/agents", requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "agent already exists with this email")
}

// TestListAgents tests listing agents
func (suite *AgentHandlerTestSuite) TestListAgents() {
	agents := []service.AgentResponse{
		{ID: uuid.New(), Name: "Agent A"},
		{ID: uuid.New(), Name: "Agent B"},
	}

	suite.mockAgentService.EXPECT().
		GetAll().
		Return(agents, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/agents", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response struct {
		Count int                     `json:"count"`
		Data  []service.AgentResponse `json:"data"`
	}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), 2, response.Count)
}

// TestGetAgentNotFound tests the not-found mapping
func (suite *AgentHandlerTestSuite) TestGetAgentNotFound() {
	id := uuid.New()

	suite.mockAgentService.EXPECT().
		GetByID(id).
		Return(nil, apperrors.ErrAgentNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/agents/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "agent not found")
}

// TestGetAgentInvalidID tests rejecting a malformed id
func (suite *AgentHandlerTestSuite) TestGetAgentInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/agents/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid agent ID")
}

// TestUpdateAgent tests updating an agent
func (suite *AgentHandlerTestSuite) TestUpdateAgent() {
	id := uuid.New()
	expected := &service.AgentResponse{ID: id, Name: "Renamed", Status: "inactive"}

	suite.mockAgentService.EXPECT().
		Update(id, gomock.Any()).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", "/api/agents/"+id.String(), map[string]interface{}{
		"name":   "Renamed",
		"status": "inactive",
	})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestDeleteAgent tests deleting an agent
func (suite *AgentHandlerTestSuite) TestDeleteAgent() {
	id := uuid.New()

	suite.mockAgentService.EXPECT().
		Delete(id).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/agents/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestDeleteAgentNotFound tests deleting an unknown agent
func (suite *AgentHandlerTestSuite) TestDeleteAgentNotFound() {
	id := uuid.New()

	suite.mockAgentService.EXPECT().
		Delete(id).
		Return(apperrors.ErrAgentNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/agents/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "agent not found")
}

// TestGetAgentItems tests listing an agent's assigned items
func (suite *AgentHandlerTestSuite) TestGetAgentItems() {
	id := uuid.New()
	items := []service.ItemResponse{
		{ID: uuid.New(), FirstName: "John", Phone: "5551234567"},
	}

	suite.mockAgentService.EXPECT().
		GetItems(id).
		Return(items, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/agents/"+id.String()+"/items", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response struct {
		Count int                    `json:"count"`
		Data  []service.ItemResponse `json:"data"`
	}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), 1, response.Count)
	assert.Equal(suite.T(), "John", response.Data[0].FirstName)
}

// TestAgentHandlerTestSuite runs the test suite
func TestAgentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AgentHandlerTestSuite))
}
