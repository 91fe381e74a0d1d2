package services_test

import (
	"context"
	"testing"
	"time"

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

type OrderServiceTestSuite struct {
	suite.Suite
	mockOrderRepo   *MockOrderRepository
	mockProductRepo *MockProductRepository
	mockClientRepo  *MockClientRepository
	service         portssvc.OrderSvcFacade
	client          domain.Client
	product         domain.Product
	userID          string
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.mockOrderRepo = new(MockOrderRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.mockClientRepo = new(MockClientRepository)
	suite.service = services.NewOrderService(suite.mockOrderRepo, suite.mockProductRepo, suite.mockClientRepo)

	suite.userID = uuid.NewString()
	suite.client = domain.Client{
		ClientID: uuid.NewString(),
		Kind:     domain.Individual,
		Name:     "Maria Silva",
		CPF:      "52998224725",
	}
	suite.product = domain.Product{
		ProductID:     uuid.NewString(),
		Description:   "Oil filter",
		SKU:           "P000001",
		SalePrice:     decimal.NewFromInt(25),
		StockQuantity: 10,
	}
}

func (suite *OrderServiceTestSuite) TestCreateOrder_Success() {
	ctx := context.Background()
	req := dto.CreateOrderRequest{
		ClientID:           suite.client.ClientID,
		ProblemDescription: "Engine noise",
		ServiceValue:       decimal.NewFromInt(100),
		PartLines: []dto.CreatePartLineRequest{
			{ProductID: suite.product.ProductID, Quantity: 2},
		},
	}

	suite.mockClientRepo.On("FindClientByID", ctx, suite.client.ClientID).Return(&suite.client, nil).Once()
	suite.mockProductRepo.On("FindProductsByIDs", ctx, []string{suite.product.ProductID}).
		Return(map[string]domain.Product{suite.product.ProductID: suite.product}, nil).Once()
	suite.mockOrderRepo.On("SaveOrder", ctx, mock.AnythingOfType("domain.ServiceOrder")).Return(nil).Once()

	order, err := suite.service.CreateOrder(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(order)
	suite.Equal(domain.OrderOpen, order.Status)
	suite.Require().Len(order.PartLines, 1)
	// The line snapshots the product's description and sale price
	suite.Equal("Oil filter", order.PartLines[0].Description)
	suite.True(decimal.NewFromInt(25).Equal(order.PartLines[0].UnitPrice))
	// Labor 100 + parts 2x25 = 150
	suite.True(decimal.NewFromInt(150).Equal(order.TotalValue()))

	suite.mockOrderRepo.AssertExpectations(suite.T())
	suite.mockProductRepo.AssertExpectations(suite.T())
	suite.mockClientRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestCreateOrder_UnknownProduct() {
	ctx := context.Background()
	unknownID := uuid.NewString()
	req := dto.CreateOrderRequest{
		ClientID:           suite.client.ClientID,
		ProblemDescription: "Engine noise",
		PartLines: []dto.CreatePartLineRequest{
			{ProductID: unknownID, Quantity: 1},
		},
	}

	suite.mockClientRepo.On("FindClientByID", ctx, suite.client.ClientID).Return(&suite.client, nil).Once()
	suite.mockProductRepo.On("FindProductsByIDs", ctx, []string{unknownID}).
		Return(map[string]domain.Product{}, nil).Once()

	_, err := suite.service.CreateOrder(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "SaveOrder", mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestUpdateOrder_LockedWhenClosed() {
	ctx := context.Background()
	orderID := uuid.NewString()
	closed := &domain.ServiceOrder{
		OrderID:  orderID,
		ClientID: suite.client.ClientID,
		Status:   domain.OrderClosed,
	}
	newDesc := "Updated description"

	suite.mockOrderRepo.On("FindOrderByID", ctx, orderID).Return(closed, nil).Once()

	_, err := suite.service.UpdateOrder(ctx, orderID, dto.UpdateOrderRequest{ProblemDescription: &newDesc}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrOrderLocked)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "UpdateOrder", mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestCloseOrder_Success() {
	ctx := context.Background()
	orderID := uuid.NewString()
	open := &domain.ServiceOrder{
		OrderID:  orderID,
		ClientID: suite.client.ClientID,
		Status:   domain.OrderOpen,
	}

	suite.mockOrderRepo.On("FindOrderByID", ctx, orderID).Return(open, nil).Once()
	suite.mockOrderRepo.On("UpdateOrderStatus", ctx, orderID, domain.OrderClosed, mock.AnythingOfType("*time.Time"), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	order, err := suite.service.CloseOrder(ctx, orderID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.OrderClosed, order.Status)
	suite.NotNil(order.ClosedAt)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestCloseOrder_AlreadyClosed() {
	ctx := context.Background()
	orderID := uuid.NewString()
	closed := &domain.ServiceOrder{OrderID: orderID, Status: domain.OrderClosed}

	suite.mockOrderRepo.On("FindOrderByID", ctx, orderID).Return(closed, nil).Once()

	_, err := suite.service.CloseOrder(ctx, orderID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
}

func (suite *OrderServiceTestSuite) TestReopenOrder_Success() {
	ctx := context.Background()
	orderID := uuid.NewString()
	closed := &domain.ServiceOrder{OrderID: orderID, Status: domain.OrderClosed}

	suite.mockOrderRepo.On("FindOrderByID", ctx, orderID).Return(closed, nil).Once()
	suite.mockOrderRepo.On("UpdateOrderStatus", ctx, orderID, domain.OrderOpen, (*time.Time)(nil), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	order, err := suite.service.ReopenOrder(ctx, orderID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.OrderOpen, order.Status)
	suite.Nil(order.ClosedAt)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestReopenOrder_InvoicedStaysLocked() {
	ctx := context.Background()
	orderID := uuid.NewString()
	invoiced := &domain.ServiceOrder{OrderID: orderID, Status: domain.OrderInvoiced}

	suite.mockOrderRepo.On("FindOrderByID", ctx, orderID).Return(invoiced, nil).Once()

	_, err := suite.service.ReopenOrder(ctx, orderID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestDeleteOrder_InvoicedBlocked() {
	ctx := context.Background()
	orderID := uuid.NewString()
	invoiced := &domain.ServiceOrder{OrderID: orderID, Status: domain.OrderInvoiced}

	suite.mockOrderRepo.On("FindOrderByID", ctx, orderID).Return(invoiced, nil).Once()

	err := suite.service.DeleteOrder(ctx, orderID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrOrderLocked)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "DeleteOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestAddPartLine_LockedWhenClosed() {
	ctx := context.Background()
	orderID := uuid.NewString()
	closed := &domain.ServiceOrder{OrderID: orderID, Status: domain.OrderClosed}

	suite.mockOrderRepo.On("FindOrderByID", ctx, orderID).Return(closed, nil).Once()

	_, err := suite.service.AddPartLine(ctx, orderID, dto.CreatePartLineRequest{ProductID: suite.product.ProductID, Quantity: 1}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrOrderLocked)
	suite.Contains(err.Error(), string(domain.OrderClosed))
}

func (suite *OrderServiceTestSuite) TestAddPartLine_LockedWhenInvoiced() {
	ctx := context.Background()
	orderID := uuid.NewString()
	invoiced := &domain.ServiceOrder{OrderID: orderID, Status: domain.OrderInvoiced}

	suite.mockOrderRepo.On("FindOrderByID", ctx, orderID).Return(invoiced, nil).Once()

	_, err := suite.service.AddPartLine(ctx, orderID, dto.CreatePartLineRequest{ProductID: suite.product.ProductID, Quantity: 1}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrOrderLocked)
	suite.Contains(err.Error(), string(domain.OrderInvoiced))
}

func (suite *OrderServiceTestSuite) TestRemovePartLine_WrongOrder() {
	ctx := context.Background()
	orderID := uuid.NewString()
	lineID := uuid.NewString()
	open := &domain.ServiceOrder{OrderID: orderID, Status: domain.OrderOpen}
	line := &domain.PartLine{PartLineID: lineID, OrderID: uuid.NewString()}

	suite.mockOrderRepo.On("FindOrderByID", ctx, orderID).Return(open, nil).Once()
	suite.mockOrderRepo.On("FindPartLineByID", ctx, lineID).Return(line, nil).Once()

	_, err := suite.service.RemovePartLine(ctx, orderID, lineID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "RemovePartLine", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
