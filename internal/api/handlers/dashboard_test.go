package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"agent-distribution-backend/internal/mocks"
	"agent-distribution-backend/internal/service"
	"agent-distribution-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// DashboardHandlerTestSuite defines the test suite for DashboardHandler
type DashboardHandlerTestSuite struct {
	suite.Suite
	ctrl                 *gomock.Controller
	mockDashboardService *mocks.MockDashboardServiceInterface
	handler              *DashboardHandler
	httpSuite            *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *DashboardHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockDashboardService = mocks.NewMockDashboardServiceInterface(suite.ctrl)

	suite.handler = NewDashboardHandler(suite.mockDashboardService)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.GET("/api/dashboard/stats", suite.handler.GetStats)
}

// TearDownTest cleans up after each test
func (suite *DashboardHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetStats tests the stats endpoint
func (suite *DashboardHandlerTestSuite) TestGetStats() {
	suite.mockDashboardService.EXPECT().
		Stats().
		Return(&service.StatsResponse{AgentCount: 5, UploadCount: 3, ListItemCount: 42}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/dashboard/stats", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response struct {
		Data service.StatsResponse `json:"data"`
	}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), int64(5), response.Data.AgentCount)
	assert.Equal(suite.T(), int64(42), response.Data.ListItemCount)
}

// TestGetStatsServiceError tests the error mapping
func (suite *DashboardHandlerTestSuite) TestGetStatsServiceError() {
	suite.mockDashboardService.EXPECT().
		Stats().
		Return(nil, fmt.Errorf("database is down")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/dashboard/stats", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Failed to get stats")
}

// TestDashboardHandlerTestSuite runs the test suite
func TestDashboardHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}
