package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/oficinasys/service_order_app/internal/apperrors"
	"github.com/oficinasys/service_order_app/internal/core/domain"
	portssvc "github.com/oficinasys/service_order_app/internal/core/ports/services"
	"github.com/oficinasys/service_order_app/internal/core/services"
	"github.com/oficinasys/service_order_app/internal/dto"
)

type StockEntryServiceTestSuite struct {
	suite.Suite
	mockStockEntryRepo *MockStockEntryRepository
	mockProductRepo    *MockProductRepository
	mockSupplierRepo   *MockSupplierRepository
	service            portssvc.StockEntrySvcFacade
	userID             string
	product            domain.Product
}

func (suite *StockEntryServiceTestSuite) SetupTest() {
	suite.mockStockEntryRepo = new(MockStockEntryRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.mockSupplierRepo = new(MockSupplierRepository)
	suite.service = services.NewStockEntryService(suite.mockStockEntryRepo, suite.mockProductRepo, suite.mockSupplierRepo)
	suite.userID = uuid.NewString()
	suite.product = domain.Product{
		ProductID:     uuid.NewString(),
		Description:   "Spark plug",
		SKU:           "P000007",
		CostPrice:     decimal.NewFromInt(10),
		StockQuantity: 4,
	}
}

func (suite *StockEntryServiceTestSuite) TestCreateStockEntry_Success() {
	ctx := context.Background()
	supplierID := uuid.NewString()
	req := dto.CreateStockEntryRequest{
		SupplierID: supplierID,
		Notes:      "Weekly restock",
		Lines: []dto.CreateStockEntryLineRequest{
			{ProductID: suite.product.ProductID, Quantity: 6, UnitCost: decimal.NewFromFloat(9.50)},
		},
	}

	suite.mockSupplierRepo.On("FindSupplierByID", ctx, supplierID).Return(&domain.Supplier{SupplierID: supplierID}, nil).Once()
	suite.mockProductRepo.On("FindProductsByIDs", ctx, []string{suite.product.ProductID}).
		Return(map[string]domain.Product{suite.product.ProductID: suite.product}, nil).Once()
	suite.mockStockEntryRepo.On("SaveStockEntry", ctx, mock.AnythingOfType("domain.StockEntry")).Return(nil).Once()

	entry, err := suite.service.CreateStockEntry(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(supplierID, entry.SupplierID)
	suite.Require().Len(entry.Lines, 1)
	suite.Equal(entry.EntryID, entry.Lines[0].EntryID)
	suite.Equal(int64(6), entry.Lines[0].Quantity)
	suite.True(entry.Lines[0].UnitCost.Equal(decimal.NewFromFloat(9.50)))
	suite.mockStockEntryRepo.AssertExpectations(suite.T())
}

func (suite *StockEntryServiceTestSuite) TestCreateStockEntry_NoLines() {
	ctx := context.Background()

	_, err := suite.service.CreateStockEntry(ctx, dto.CreateStockEntryRequest{}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *StockEntryServiceTestSuite) TestCreateStockEntry_UnknownProduct() {
	ctx := context.Background()
	unknownID := uuid.NewString()
	req := dto.CreateStockEntryRequest{
		Lines: []dto.CreateStockEntryLineRequest{
			{ProductID: unknownID, Quantity: 2, UnitCost: decimal.NewFromInt(5)},
		},
	}

	suite.mockProductRepo.On("FindProductsByIDs", ctx, []string{unknownID}).
		Return(map[string]domain.Product{}, nil).Once()

	_, err := suite.service.CreateStockEntry(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockStockEntryRepo.AssertNotCalled(suite.T(), "SaveStockEntry", mock.Anything, mock.Anything)
}

func (suite *StockEntryServiceTestSuite) TestCreateStockEntry_NonPositiveQuantity() {
	ctx := context.Background()
	req := dto.CreateStockEntryRequest{
		Lines: []dto.CreateStockEntryLineRequest{
			{ProductID: suite.product.ProductID, Quantity: 0, UnitCost: decimal.NewFromInt(5)},
		},
	}

	_, err := suite.service.CreateStockEntry(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *StockEntryServiceTestSuite) TestCreateStockEntry_NegativeUnitCost() {
	ctx := context.Background()
	req := dto.CreateStockEntryRequest{
		Lines: []dto.CreateStockEntryLineRequest{
			{ProductID: suite.product.ProductID, Quantity: 1, UnitCost: decimal.NewFromInt(-1)},
		},
	}

	_, err := suite.service.CreateStockEntry(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestStockEntryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StockEntryServiceTestSuite))
}
