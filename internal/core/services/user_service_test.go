package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/oficinasys/service_order_app/internal/apperrors"
	"github.com/oficinasys/service_order_app/internal/core/domain"
	portssvc "github.com/oficinasys/service_order_app/internal/core/ports/services"
	"github.com/oficinasys/service_order_app/internal/core/services"
	"github.com/oficinasys/service_order_app/internal/dto"
	"github.com/oficinasys/service_order_app/internal/utils"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

func (suite *UserServiceTestSuite) TestCreateUser_HashesPassword() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{Username: "operator", Password: "correct horse", IsAdmin: false}

	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal("operator", user.Username)
	suite.NotEqual("correct horse", user.PasswordHash)
	suite.True(utils.CheckPasswordHash("correct horse", user.PasswordHash))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct horse")
	suite.Require().NoError(err)
	stored := &domain.User{UserID: uuid.NewString(), Username: "operator", PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "operator").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "operator", "correct horse")

	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct horse")
	suite.Require().NoError(err)
	stored := &domain.User{UserID: uuid.NewString(), Username: "operator", PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "operator").Return(stored, nil).Once()

	_, err = suite.service.AuthenticateUser(ctx, "operator", "wrong horse")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrInvalidCredentials)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownUsername() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.AuthenticateUser(ctx, "ghost", "whatever")

	// Unknown usernames are indistinguishable from bad passwords
	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrInvalidCredentials)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
