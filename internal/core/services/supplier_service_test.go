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
)

type SupplierServiceTestSuite struct {
	suite.Suite
	mockSupplierRepo *MockSupplierRepository
	service          portssvc.SupplierSvcFacade
	userID           string
}

func (suite *SupplierServiceTestSuite) SetupTest() {
	suite.mockSupplierRepo = new(MockSupplierRepository)
	suite.service = services.NewSupplierService(suite.mockSupplierRepo)
	suite.userID = uuid.NewString()
}

func (suite *SupplierServiceTestSuite) TestCreateSupplier() {
	ctx := context.Background()
	req := dto.CreateSupplierRequest{
		LegalName: "Distribuidora de Pecas Oeste LTDA",
		TradeName: "Pecas Oeste",
		CNPJ:      "11.222.333/0001-81",
		Phone:     "(11) 3322-1100",
		CEP:       "01310-100",
	}

	suite.mockSupplierRepo.On("SaveSupplier", ctx, mock.AnythingOfType("domain.Supplier")).Return(nil).Once()

	supplier, err := suite.service.CreateSupplier(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("Distribuidora de Pecas Oeste LTDA", supplier.LegalName)
	// CNPJ, phone and CEP are stored digits-only
	suite.Equal("11222333000181", supplier.CNPJ)
	suite.Equal("1133221100", supplier.Phone)
	suite.Equal("01310100", supplier.CEP)
	suite.NotEmpty(supplier.SupplierID)
	suite.mockSupplierRepo.AssertExpectations(suite.T())
}

func (suite *SupplierServiceTestSuite) TestCreateSupplier_BadCNPJ() {
	ctx := context.Background()
	req := dto.CreateSupplierRequest{
		LegalName: "Distribuidora de Pecas Oeste LTDA",
		CNPJ:      "11222333000180", // wrong check digit
	}

	_, err := suite.service.CreateSupplier(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrInvalidCNPJ)
	suite.mockSupplierRepo.AssertNotCalled(suite.T(), "SaveSupplier", mock.Anything, mock.Anything)
}

func (suite *SupplierServiceTestSuite) TestUpdateSupplier_PartialFields() {
	ctx := context.Background()
	supplierID := uuid.NewString()
	existing := &domain.Supplier{
		SupplierID: supplierID,
		LegalName:  "Distribuidora de Pecas Oeste LTDA",
		TradeName:  "Pecas Oeste",
		CNPJ:       "11222333000181",
		Phone:      "1133221100",
	}
	newPhone := "(11) 98877-6655"

	suite.mockSupplierRepo.On("FindSupplierByID", ctx, supplierID).Return(existing, nil).Once()
	suite.mockSupplierRepo.On("UpdateSupplier", ctx, mock.AnythingOfType("domain.Supplier")).Return(nil).Once()

	updated, err := suite.service.UpdateSupplier(ctx, supplierID, dto.UpdateSupplierRequest{Phone: &newPhone}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("11988776655", updated.Phone)
	// Untouched fields survive a partial update
	suite.Equal("Pecas Oeste", updated.TradeName)
	suite.Equal("11222333000181", updated.CNPJ)
	suite.mockSupplierRepo.AssertExpectations(suite.T())
}

func (suite *SupplierServiceTestSuite) TestDeleteSupplier_NotFound() {
	ctx := context.Background()
	supplierID := uuid.NewString()

	suite.mockSupplierRepo.On("FindSupplierByID", ctx, supplierID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.DeleteSupplier(ctx, supplierID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockSupplierRepo.AssertNotCalled(suite.T(), "DeleteSupplier", mock.Anything, mock.Anything)
}

func (suite *SupplierServiceTestSuite) TestListSuppliers_DefaultLimit() {
	ctx := context.Background()

	suite.mockSupplierRepo.On("ListSuppliers", ctx, 20, 0).Return([]domain.Supplier{}, nil).Once()

	suppliers, err := suite.service.ListSuppliers(ctx, 0, -5)

	suite.Require().NoError(err)
	suite.Empty(suppliers)
	suite.mockSupplierRepo.AssertExpectations(suite.T())
}

func TestSupplierServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SupplierServiceTestSuite))
}
