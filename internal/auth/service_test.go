package auth_test

import (
	"fmt"
	"testing"

	"agent-distribution-backend/internal/auth"
	"agent-distribution-backend/internal/config"
	"agent-distribution-backend/internal/database/models"
	apperrors "agent-distribution-backend/internal/errors"
	"agent-distribution-backend/internal/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthServiceTestSuite defines the test suite for AuthService
type AuthServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUserRepo *mocks.MockUserRepositoryInterface
	service      *auth.AuthService
}

// SetupTest sets up the test suite
func (suite *AuthServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)

	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTExpiresHours:    1,
		DefaultCountryCode: "+91",
	}
	suite.service = auth.NewAuthService(suite.mockUserRepo, cfg)
}

// TearDownTest cleans up after each test
func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// testUser builds an operator with a known bcrypt password
func (suite *AuthServiceTestSuite) testUser(password string) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	suite.Require().NoError(err)
	return &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Admin User",
		Email:     "admin@test.com",
		Password:  string(hash),
		Role:      models.UserRoleAdmin,
	}
}

// TestLogin tests a successful login
func (suite *AuthServiceTestSuite) TestLogin() {
	user := suite.testUser("password123")

	suite.mockUserRepo.EXPECT().
		GetByEmail("admin@test.com").
		Return(user, nil).
		Times(1)

	result, err := suite.service.Login("Admin@Test.com", "password123")

	suite.NoError(err)
	suite.NotNil(result)
	suite.Equal(user.ID, result.User.ID)
	suite.Equal("admin", result.User.Role)
	suite.NotEmpty(result.Token)

	// The issued token round-trips through validation
	claims, err := suite.service.ValidateJWT(result.Token)
	suite.NoError(err)
	suite.Equal(user.ID.String(), claims.UserID)
	suite.Equal(user.Email, claims.Email)
}

// TestLoginWrongPassword tests that a bad password is rejected
func (suite *AuthServiceTestSuite) TestLoginWrongPassword() {
	user := suite.testUser("password123")

	suite.mockUserRepo.EXPECT().
		GetByEmail("admin@test.com").
		Return(user, nil).
		Times(1)

	result, err := suite.service.Login("admin@test.com", "not-the-password")

	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	suite.Nil(result)
}

// TestLoginUnknownEmail tests that an unknown email maps to the same error
func (suite *AuthServiceTestSuite) TestLoginUnknownEmail() {
	suite.mockUserRepo.EXPECT().
		GetByEmail("nobody@test.com").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	result, err := suite.service.Login("nobody@test.com", "password123")

	suite.ErrorIs(err, apperrors.ErrInvalidCredentials)
	suite.Nil(result)
}

// TestRegister tests registering a new operator
func (suite *AuthServiceTestSuite) TestRegister() {
	req := &auth.RegisterRequest{
		Name:     "Admin User",
		Email:    "Admin@Test.com",
		Password: "password123",
		Mobile:   "1234567890",
	}

	suite.mockUserRepo.EXPECT().
		GetByEmail("admin@test.com").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockUserRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(user *models.User) error {
			suite.Equal("admin@test.com", user.Email)
			suite.Equal("+911234567890", user.Mobile)
			suite.Equal(models.UserRoleAdmin, user.Role)
			suite.NoError(bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))
			user.ID = uuid.New()
			return nil
		}).
		Times(1)

	result, err := suite.service.Register(req)

	suite.NoError(err)
	suite.NotNil(result)
	suite.NotEmpty(result.Token)
	suite.Equal("admin@test.com", result.User.Email)
}

// TestRegisterExistingEmail tests that a taken email is rejected
func (suite *AuthServiceTestSuite) TestRegisterExistingEmail() {
	suite.mockUserRepo.EXPECT().
		GetByEmail("admin@test.com").
		Return(suite.testUser("password123"), nil).
		Times(1)

	result, err := suite.service.Register(&auth.RegisterRequest{
		Name:     "Admin User",
		Email:    "admin@test.com",
		Password: "password123",
		Mobile:   "1234567890",
	})

	suite.ErrorIs(err, apperrors.ErrUserExists)
	suite.Nil(result)
}

// TestRegisterKeepsExistingCountryCode tests that a prefixed mobile is untouched
func (suite *AuthServiceTestSuite) TestRegisterKeepsExistingCountryCode() {
	suite.mockUserRepo.EXPECT().
		GetByEmail("admin@test.com").
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockUserRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(user *models.User) error {
			suite.Equal("+911234567890", user.Mobile)
			return nil
		}).
		Times(1)

	_, err := suite.service.Register(&auth.RegisterRequest{
		Name:     "Admin User",
		Email:    "admin@test.com",
		Password: "password123",
		Mobile:   "+911234567890",
	})

	suite.NoError(err)
}

// TestMe tests resolving the current operator
func (suite *AuthServiceTestSuite) TestMe() {
	user := suite.testUser("password123")

	suite.mockUserRepo.EXPECT().
		GetByID(user.ID).
		Return(user, nil).
		Times(1)

	result, err := suite.service.Me(user.ID)

	suite.NoError(err)
	suite.Equal(user.Email, result.Email)
}

// TestMeNotFound tests resolving a missing operator
func (suite *AuthServiceTestSuite) TestMeNotFound() {
	id := uuid.New()

	suite.mockUserRepo.EXPECT().
		GetByID(id).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	result, err := suite.service.Me(id)

	suite.ErrorIs(err, apperrors.ErrUserNotFound)
	suite.Nil(result)
}

// TestMeRepositoryError tests that other lookup failures are wrapped
func (suite *AuthServiceTestSuite) TestMeRepositoryError() {
	id := uuid.New()

	suite.mockUserRepo.EXPECT().
		GetByID(id).
		Return(nil, fmt.Errorf("database is down")).
		Times(1)

	result, err := suite.service.Me(id)

	suite.Error(err)
	suite.Contains(err.Error(), "failed to get user")
	suite.Nil(result)
}

// TestValidateJWTGarbage tests rejecting a malformed token
func (suite *AuthServiceTestSuite) TestValidateJWTGarbage() {
	claims, err := suite.service.ValidateJWT("not.a.token")

	suite.Error(err)
	suite.Nil(claims)
}

// TestValidateJWTWrongSecret tests rejecting a token signed with another key
func (suite *AuthServiceTestSuite) TestValidateJWTWrongSecret() {
	other := auth.NewAuthService(suite.mockUserRepo, &config.Config{
		JWTSecret:       "different-secret",
		JWTExpiresHours: 1,
	})

	user := suite.testUser("password123")
	suite.mockUserRepo.EXPECT().
		GetByEmail("admin@test.com").
		Return(user, nil).
		Times(1)

	result, err := suite.service.Login("admin@test.com", "password123")
	suite.Require().NoError(err)

	claims, err := other.ValidateJWT(result.Token)

	suite.Error(err)
	suite.Nil(claims)
}

// TestAuthServiceTestSuite runs the test suite
func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
