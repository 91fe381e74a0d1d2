package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/oficinasys/service_order_app/internal/core/domain"
	portssvc "github.com/oficinasys/service_order_app/internal/core/ports/services"
	"github.com/oficinasys/service_order_app/internal/core/services"
	"github.com/oficinasys/service_order_app/internal/dto"
)

type ClientServiceTestSuite struct {
	suite.Suite
	mockClientRepo *MockClientRepository
	service        portssvc.ClientSvcFacade
	userID         string
}

func (suite *ClientServiceTestSuite) SetupTest() {
	suite.mockClientRepo = new(MockClientRepository)
	suite.service = services.NewClientService(suite.mockClientRepo)
	suite.userID = uuid.NewString()
}

func (suite *ClientServiceTestSuite) TestCreateClient_Individual() {
	ctx := context.Background()
	req := dto.CreateClientRequest{
		Kind:  domain.Individual,
		Name:  "Maria Silva",
		CPF:   "529.982.247-25",
		Phone: "(11) 91234-5678",
	}

	suite.mockClientRepo.On("SaveClient", ctx, mock.AnythingOfType("domain.Client")).Return(nil).Once()

	client, err := suite.service.CreateClient(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("Maria Silva", client.Name)
	// Documents and phone are stored digits-only
	suite.Equal("52998224725", client.CPF)
	suite.Equal("11912345678", client.Phone)
	suite.NotEmpty(client.ClientID)
	suite.mockClientRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestCreateClient_Organization() {
	ctx := context.Background()
	req := dto.CreateClientRequest{
		Kind:      domain.Organization,
		LegalName: "Auto Pecas Silva LTDA",
		CNPJ:      "11.222.333/0001-81",
	}

	suite.mockClientRepo.On("SaveClient", ctx, mock.AnythingOfType("domain.Client")).Return(nil).Once()

	client, err := suite.service.CreateClient(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("Auto Pecas Silva LTDA", client.LegalName)
	suite.Equal("11222333000181", client.CNPJ)
}

func (suite *ClientServiceTestSuite) TestCreateClient_BadCPF() {
	ctx := context.Background()
	req := dto.CreateClientRequest{
		Kind: domain.Individual,
		Name: "Maria Silva",
		CPF:  "52998224724", // wrong check digit
	}

	_, err := suite.service.CreateClient(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrInvalidCPF)
	suite.mockClientRepo.AssertNotCalled(suite.T(), "SaveClient", mock.Anything, mock.Anything)
}

func (suite *ClientServiceTestSuite) TestCreateClient_BadCNPJ() {
	ctx := context.Background()
	req := dto.CreateClientRequest{
		Kind:      domain.Organization,
		LegalName: "Auto Pecas Silva LTDA",
		CNPJ:      "11222333000180",
	}

	_, err := suite.service.CreateClient(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrInvalidCNPJ)
}

func (suite *ClientServiceTestSuite) TestUpdateClient_PartialMerge() {
	ctx := context.Background()
	clientID := uuid.NewString()
	existing := &domain.Client{
		ClientID: clientID,
		Kind:     domain.Individual,
		Name:     "Maria Silva",
		CPF:      "52998224725",
		City:     "Campinas",
	}
	newPhone := "(19) 99876-5432"

	suite.mockClientRepo.On("FindClientByID", ctx, clientID).Return(existing, nil).Once()
	suite.mockClientRepo.On("UpdateClient", ctx, mock.AnythingOfType("domain.Client")).Return(nil).Once()

	updated, err := suite.service.UpdateClient(ctx, clientID, dto.UpdateClientRequest{Phone: &newPhone}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("19998765432", updated.Phone)
	suite.Equal("Maria Silva", updated.Name)
	suite.Equal("Campinas", updated.City)
}

func (suite *ClientServiceTestSuite) TestDeleteClient_BlockedByOrders() {
	ctx := context.Background()
	clientID := uuid.NewString()
	existing := &domain.Client{ClientID: clientID}

	suite.mockClientRepo.On("FindClientByID", ctx, clientID).Return(existing, nil).Once()
	suite.mockClientRepo.On("HasServiceOrders", ctx, clientID).Return(true, nil).Once()

	err := suite.service.DeleteClient(ctx, clientID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrClientHasOrders)
	suite.mockClientRepo.AssertNotCalled(suite.T(), "DeleteClient", mock.Anything, mock.Anything)
}

func (suite *ClientServiceTestSuite) TestDeleteClient_Success() {
	ctx := context.Background()
	clientID := uuid.NewString()
	existing := &domain.Client{ClientID: clientID}

	suite.mockClientRepo.On("FindClientByID", ctx, clientID).Return(existing, nil).Once()
	suite.mockClientRepo.On("HasServiceOrders", ctx, clientID).Return(false, nil).Once()
	suite.mockClientRepo.On("DeleteClient", ctx, clientID).Return(nil).Once()

	err := suite.service.DeleteClient(ctx, clientID, suite.userID)

	suite.Require().NoError(err)
	suite.mockClientRepo.AssertExpectations(suite.T())
}

func TestClientServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClientServiceTestSuite))
}
