//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"agent-distribution-backend/internal/database/models"
	"agent-distribution-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// AgentRepositoryTestSuite tests the AgentRepository
type AgentRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AgentRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *AgentRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewAgentRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *AgentRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AgentRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *AgentRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new agent
func (suite *AgentRepositoryTestSuite) TestCreate() {
	agent := suite.factories.Agent.Create()

	err := suite.repo.Create(agent)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, agent.ID)
	suite.NotZero(agent.CreatedAt)
	suite.NotZero(agent.UpdatedAt)
}

// TestCreateDuplicateEmail tests creating an agent with a duplicate email
func (suite *AgentRepositoryTestSuite) TestCreateDuplicateEmail() {
	agent1 := suite.factories.Agent.Create()
	agent1.Email = "dup@example.com"
	err := suite.repo.Create(agent1)
	suite.NoError(err)

	agent2 := suite.factories.Agent.Create()
	agent2.Email = "dup@example.com"

	err = suite.repo.Create(agent2)
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetByID tests retrieving an agent by ID
func (suite *AgentRepositoryTestSuite) TestGetByID() {
	agent := suite.factories.Agent.Create()
	err := suite.repo.Create(agent)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(agent.ID)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(agent.ID, retrieved.ID)
	suite.Equal(agent.Email, retrieved.Email)
	suite.Equal(agent.Mobile, retrieved.Mobile)
	suite.Equal(models.AgentStatusActive, retrieved.Status)
}

// TestGetByIDPreloadsAssignedItems tests that assigned items come back with the agent
func (suite *AgentRepositoryTestSuite) TestGetByIDPreloadsAssignedItems() {
	agent := suite.factories.Agent.Create()
	err := suite.repo.Create(agent)
	suite.NoError(err)

	batch := suite.factories.UploadBatch.Create()
	batchRepo := NewUploadBatchRepository(suite.baseTestSuite.DB)
	err = batchRepo.Create(batch)
	suite.NoError(err)

	item := suite.factories.ContactItem.WithUpload(batch.ID)
	item.AssignedTo = &agent.ID
	itemRepo := NewContactItemRepository(suite.baseTestSuite.DB)
	err = itemRepo.CreateBatch([]models.ContactItem{*item})
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(agent.ID)

	suite.NoError(err)
	suite.Len(retrieved.AssignedItems, 1)
	suite.Equal(item.Phone, retrieved.AssignedItems[0].Phone)
}

// TestGetByIDNotFound tests retrieving a non-existent agent
func (suite *AgentRepositoryTestSuite) TestGetByIDNotFound() {
	agent, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(agent)
}

// TestGetByEmail tests retrieving an agent by email
func (suite *AgentRepositoryTestSuite) TestGetByEmail() {
	agent := suite.factories.Agent.Create()
	agent.Email = "lookup@example.com"
	err := suite.repo.Create(agent)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByEmail("lookup@example.com")

	suite.NoError(err)
	suite.Equal(agent.ID, retrieved.ID)
}

// TestGetByEmailNotFound tests retrieving a non-existent email
func (suite *AgentRepositoryTestSuite) TestGetByEmailNotFound() {
	agent, err := suite.repo.GetByEmail("nobody@example.com")

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(agent)
}

// TestGetAll tests listing all agents newest first
func (suite *AgentRepositoryTestSuite) TestGetAll() {
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		agent := suite.factories.Agent.Create()
		agent.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		err := suite.repo.Create(agent)
		suite.NoError(err)
	}

	agents, err := suite.repo.GetAll()

	suite.NoError(err)
	suite.Len(agents, 3)
	suite.True(agents[0].CreatedAt.After(agents[1].CreatedAt))
	suite.True(agents[1].CreatedAt.After(agents[2].CreatedAt))
}

// TestGetActive tests that only active agents are returned, oldest first
func (suite *AgentRepositoryTestSuite) TestGetActive() {
	base := time.Now().Add(-time.Hour)

	oldest := suite.factories.Agent.Create()
	oldest.CreatedAt = base
	suite.NoError(suite.repo.Create(oldest))

	newer := suite.factories.Agent.Create()
	newer.CreatedAt = base.Add(time.Minute)
	suite.NoError(suite.repo.Create(newer))

	inactive := suite.factories.Agent.WithStatus(models.AgentStatusInactive)
	inactive.CreatedAt = base.Add(2 * time.Minute)
	suite.NoError(suite.repo.Create(inactive))

	agents, err := suite.repo.GetActive(5)

	suite.NoError(err)
	suite.Len(agents, 2)
	suite.Equal(oldest.ID, agents[0].ID)
	suite.Equal(newer.ID, agents[1].ID)
	for _, a := range agents {
		suite.Equal(models.AgentStatusActive, a.Status)
	}
}

// TestGetActiveLimit tests that the pool size caps the result
func (suite *AgentRepositoryTestSuite) TestGetActiveLimit() {
	base := time.Now().Add(-time.Hour)
	created := make([]uuid.UUID, 0, 7)
	for i := 0; i < 7; i++ {
		agent := suite.factories.Agent.Create()
		agent.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		suite.NoError(suite.repo.Create(agent))
		created = append(created, agent.ID)
	}

	agents, err := suite.repo.GetActive(5)

	suite.NoError(err)
	suite.Len(agents, 5)
	// The oldest five win the pool
	for i, a := range agents {
		suite.Equal(created[i], a.ID)
	}
}

// TestUpdate tests applying column updates to an agent
func (suite *AgentRepositoryTestSuite) TestUpdate() {
	agent := suite.factories.Agent.Create()
	err := suite.repo.Create(agent)
	suite.NoError(err)

	err = suite.repo.Update(agent.ID, map[string]interface{}{
		"name":   "Renamed Agent",
		"status": models.AgentStatusInactive,
	})
	suite.NoError(err)

	updated, err := suite.repo.GetByID(agent.ID)
	suite.NoError(err)
	suite.Equal("Renamed Agent", updated.Name)
	suite.Equal(models.AgentStatusInactive, updated.Status)
}

// TestDelete tests deleting an agent
func (suite *AgentRepositoryTestSuite) TestDelete() {
	agent := suite.factories.Agent.Create()
	err := suite.repo.Create(agent)
	suite.NoError(err)

	err = suite.repo.Delete(agent.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(agent.ID)
	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// TestDeleteNotFound tests deleting a non-existent agent
func (suite *AgentRepositoryTestSuite) TestDeleteNotFound() {
	err := suite.repo.Delete(uuid.New())

	// Deleting a missing record is not an error
	suite.NoError(err)
}

// TestCount tests counting agents
func (suite *AgentRepositoryTestSuite) TestCount() {
	total, err := suite.repo.Count()
	suite.NoError(err)
	suite.Equal(int64(0), total)

	suite.NoError(suite.repo.Create(suite.factories.Agent.Create()))
	suite.NoError(suite.repo.Create(suite.factories.Agent.Create()))

	total, err = suite.repo.Count()
	suite.NoError(err)
	suite.Equal(int64(2), total)
}

// Run the test suite
func TestAgentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AgentRepositoryTestSuite))
}
