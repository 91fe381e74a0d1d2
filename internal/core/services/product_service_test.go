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

type ProductServiceTestSuite struct {
	suite.Suite
	mockProductRepo *MockProductRepository
	service         portssvc.ProductSvcFacade
	userID          string
}

func (suite *ProductServiceTestSuite) SetupTest() {
	suite.mockProductRepo = new(MockProductRepository)
	suite.service = services.NewProductService(suite.mockProductRepo)
	suite.userID = uuid.NewString()
}

func (suite *ProductServiceTestSuite) TestCreateProduct_DerivesSKUAndSalePrice() {
	ctx := context.Background()
	req := dto.CreateProductRequest{
		Description:   "Brake pad set",
		CostPrice:     decimal.NewFromInt(100),
		MarginPercent: decimal.NewFromInt(40),
		InitialStock:  5,
	}

	suite.mockProductRepo.On("NextSKUNumber", ctx).Return(int64(42), nil).Once()
	suite.mockProductRepo.On("SaveProduct", ctx, mock.AnythingOfType("domain.Product")).Return(nil).Once()

	product, err := suite.service.CreateProduct(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("PROD0042", product.SKU)
	suite.Equal("UN", product.Unit)
	suite.True(product.SalePrice.Equal(decimal.NewFromInt(140)), "got %s", product.SalePrice)
	suite.Equal(int64(5), product.StockQuantity)
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestCreateProduct_NegativeCost() {
	ctx := context.Background()
	req := dto.CreateProductRequest{
		Description: "Bad price",
		CostPrice:   decimal.NewFromInt(-10),
	}

	_, err := suite.service.CreateProduct(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrNegativePrice)
	suite.mockProductRepo.AssertNotCalled(suite.T(), "SaveProduct", mock.Anything, mock.Anything)
}

func (suite *ProductServiceTestSuite) TestUpdateProduct_RepricesOnCostChange() {
	ctx := context.Background()
	productID := uuid.NewString()
	existing := &domain.Product{
		ProductID:     productID,
		Description:   "Oil filter",
		CostPrice:     decimal.NewFromInt(20),
		MarginPercent: decimal.NewFromInt(50),
		SalePrice:     decimal.NewFromInt(30),
	}
	newCost := decimal.NewFromInt(40)

	suite.mockProductRepo.On("FindProductByID", ctx, productID).Return(existing, nil).Once()
	suite.mockProductRepo.On("UpdateProduct", ctx, mock.AnythingOfType("domain.Product")).Return(nil).Once()

	updated, err := suite.service.UpdateProduct(ctx, productID, dto.UpdateProductRequest{CostPrice: &newCost}, suite.userID)

	suite.Require().NoError(err)
	suite.True(updated.SalePrice.Equal(decimal.NewFromInt(60)), "got %s", updated.SalePrice)
}

func (suite *ProductServiceTestSuite) TestUpdateProduct_DescriptionOnlyKeepsPrice() {
	ctx := context.Background()
	productID := uuid.NewString()
	existing := &domain.Product{
		ProductID:     productID,
		Description:   "Oil filter",
		CostPrice:     decimal.NewFromInt(20),
		MarginPercent: decimal.NewFromInt(50),
		SalePrice:     decimal.NewFromInt(30),
	}
	newDesc := "Oil filter premium"

	suite.mockProductRepo.On("FindProductByID", ctx, productID).Return(existing, nil).Once()
	suite.mockProductRepo.On("UpdateProduct", ctx, mock.AnythingOfType("domain.Product")).Return(nil).Once()

	updated, err := suite.service.UpdateProduct(ctx, productID, dto.UpdateProductRequest{Description: &newDesc}, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("Oil filter premium", updated.Description)
	suite.True(updated.SalePrice.Equal(decimal.NewFromInt(30)))
}

func (suite *ProductServiceTestSuite) TestAdjustStock_Success() {
	ctx := context.Background()
	productID := uuid.NewString()
	existing := &domain.Product{ProductID: productID, StockQuantity: 3}

	suite.mockProductRepo.On("FindProductByID", ctx, productID).Return(existing, nil).Once()
	suite.mockProductRepo.On("SetStockQuantity", ctx, productID, int64(12), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	product, err := suite.service.AdjustStock(ctx, productID, 12, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(int64(12), product.StockQuantity)
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestAdjustStock_NegativeQuantity() {
	ctx := context.Background()

	_, err := suite.service.AdjustStock(ctx, uuid.NewString(), -1, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ProductServiceTestSuite) TestDeleteProduct_BlockedByMovements() {
	ctx := context.Background()
	productID := uuid.NewString()
	existing := &domain.Product{ProductID: productID}

	suite.mockProductRepo.On("FindProductByID", ctx, productID).Return(existing, nil).Once()
	suite.mockProductRepo.On("HasMovements", ctx, productID).Return(true, nil).Once()

	err := suite.service.DeleteProduct(ctx, productID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrProductHasMovements)
	suite.mockProductRepo.AssertNotCalled(suite.T(), "DeleteProduct", mock.Anything, mock.Anything)
}

func (suite *ProductServiceTestSuite) TestDeleteProduct_Success() {
	ctx := context.Background()
	productID := uuid.NewString()
	existing := &domain.Product{ProductID: productID}

	suite.mockProductRepo.On("FindProductByID", ctx, productID).Return(existing, nil).Once()
	suite.mockProductRepo.On("HasMovements", ctx, productID).Return(false, nil).Once()
	suite.mockProductRepo.On("DeleteProduct", ctx, productID).Return(nil).Once()

	err := suite.service.DeleteProduct(ctx, productID, suite.userID)

	suite.Require().NoError(err)
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func TestProductServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}
