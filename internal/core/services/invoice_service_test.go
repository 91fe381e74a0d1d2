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

type InvoiceServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo *MockInvoiceRepository
	mockOrderRepo   *MockOrderRepository
	service         portssvc.InvoiceSvcFacade
	clientID        string
	userID          string
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockOrderRepo = new(MockOrderRepository)
	suite.service = services.NewInvoiceService(suite.mockInvoiceRepo, suite.mockOrderRepo)

	suite.clientID = uuid.NewString()
	suite.userID = uuid.NewString()
}

// closedOrder builds a CLOSED order worth the given labor value.
func (suite *InvoiceServiceTestSuite) closedOrder(serviceValue int64) domain.ServiceOrder {
	return domain.ServiceOrder{
		OrderID:      uuid.NewString(),
		ClientID:     suite.clientID,
		Status:       domain.OrderClosed,
		ServiceValue: decimal.NewFromInt(serviceValue),
	}
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_Success() {
	ctx := context.Background()
	orderA := suite.closedOrder(100)
	orderB := suite.closedOrder(200)
	orderIDs := []string{orderA.OrderID, orderB.OrderID}

	req := dto.CreateInvoiceRequest{
		OrderIDs: orderIDs,
		Payments: []dto.CreatePaymentRequest{
			{Method: domain.MethodPix, Amount: decimal.NewFromInt(300)},
		},
	}

	suite.mockOrderRepo.On("FindOrdersByIDs", ctx, orderIDs).Return([]domain.ServiceOrder{orderA, orderB}, nil).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice")).Return(nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(invoice)
	suite.Equal(suite.clientID, invoice.ClientID)
	suite.Equal(orderIDs, invoice.OrderIDs)
	suite.Require().Len(invoice.Payments, 1)
	suite.Equal(domain.PaymentPending, invoice.Payments[0].Status)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_WithinTolerance() {
	ctx := context.Background()
	order := suite.closedOrder(300)
	orderIDs := []string{order.OrderID}

	// One cent over the order total is accepted
	req := dto.CreateInvoiceRequest{
		OrderIDs: orderIDs,
		Payments: []dto.CreatePaymentRequest{
			{Method: domain.MethodCash, Amount: decimal.NewFromFloat(300.01)},
		},
	}

	suite.mockOrderRepo.On("FindOrdersByIDs", ctx, orderIDs).Return([]domain.ServiceOrder{order}, nil).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice")).Return(nil).Once()

	_, err := suite.service.CreateInvoice(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_PaymentMismatch() {
	ctx := context.Background()
	order := suite.closedOrder(300)
	orderIDs := []string{order.OrderID}

	// Two cents over is beyond tolerance
	req := dto.CreateInvoiceRequest{
		OrderIDs: orderIDs,
		Payments: []dto.CreatePaymentRequest{
			{Method: domain.MethodCash, Amount: decimal.NewFromFloat(300.02)},
		},
	}

	suite.mockOrderRepo.On("FindOrdersByIDs", ctx, orderIDs).Return([]domain.ServiceOrder{order}, nil).Once()

	_, err := suite.service.CreateInvoice(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrPaymentMismatch)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_NoPaymentsAgainstNonzeroTotal() {
	ctx := context.Background()
	order := suite.closedOrder(300)
	orderIDs := []string{order.OrderID}
	req := dto.CreateInvoiceRequest{OrderIDs: orderIDs}

	suite.mockOrderRepo.On("FindOrdersByIDs", ctx, orderIDs).Return([]domain.ServiceOrder{order}, nil).Once()

	_, err := suite.service.CreateInvoice(ctx, req, suite.userID)

	// The sum check runs before the missing-method check, so an empty
	// payment list surfaces as a mismatch naming both values.
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrPaymentMismatch)
	suite.Contains(err.Error(), "0")
	suite.Contains(err.Error(), "300")
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_NoPaymentsZeroTotal() {
	ctx := context.Background()
	order := suite.closedOrder(0)
	orderIDs := []string{order.OrderID}
	req := dto.CreateInvoiceRequest{OrderIDs: orderIDs}

	suite.mockOrderRepo.On("FindOrdersByIDs", ctx, orderIDs).Return([]domain.ServiceOrder{order}, nil).Once()

	_, err := suite.service.CreateInvoice(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrMissingPaymentMethod)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_MixedClients() {
	ctx := context.Background()
	orderA := suite.closedOrder(100)
	orderB := suite.closedOrder(100)
	orderB.ClientID = uuid.NewString()
	orderIDs := []string{orderA.OrderID, orderB.OrderID}

	req := dto.CreateInvoiceRequest{
		OrderIDs: orderIDs,
		Payments: []dto.CreatePaymentRequest{
			{Method: domain.MethodPix, Amount: decimal.NewFromInt(200)},
		},
	}

	suite.mockOrderRepo.On("FindOrdersByIDs", ctx, orderIDs).Return([]domain.ServiceOrder{orderA, orderB}, nil).Once()

	_, err := suite.service.CreateInvoice(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidOrderSet)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_OrderNotClosed() {
	ctx := context.Background()
	order := suite.closedOrder(100)
	order.Status = domain.OrderOpen
	orderIDs := []string{order.OrderID}

	req := dto.CreateInvoiceRequest{
		OrderIDs: orderIDs,
		Payments: []dto.CreatePaymentRequest{
			{Method: domain.MethodPix, Amount: decimal.NewFromInt(100)},
		},
	}

	suite.mockOrderRepo.On("FindOrdersByIDs", ctx, orderIDs).Return([]domain.ServiceOrder{order}, nil).Once()

	_, err := suite.service.CreateInvoice(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidOrderSet)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_MissingOrder() {
	ctx := context.Background()
	order := suite.closedOrder(100)
	orderIDs := []string{order.OrderID, uuid.NewString()}

	req := dto.CreateInvoiceRequest{
		OrderIDs: orderIDs,
		Payments: []dto.CreatePaymentRequest{
			{Method: domain.MethodPix, Amount: decimal.NewFromInt(100)},
		},
	}

	suite.mockOrderRepo.On("FindOrdersByIDs", ctx, orderIDs).Return([]domain.ServiceOrder{order}, nil).Once()

	_, err := suite.service.CreateInvoice(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidOrderSet)
}

func (suite *InvoiceServiceTestSuite) TestCancelInvoice_Success() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	invoice := &domain.Invoice{
		InvoiceID: invoiceID,
		ClientID:  suite.clientID,
		Payments: []domain.Payment{
			{PaymentID: uuid.NewString(), Status: domain.PaymentPending},
		},
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(invoice, nil).Once()
	suite.mockInvoiceRepo.On("DeleteInvoice", ctx, invoiceID, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.CancelInvoice(ctx, invoiceID, suite.userID)

	suite.Require().NoError(err)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCancelInvoice_ReceivedPaymentBlocks() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	invoice := &domain.Invoice{
		InvoiceID: invoiceID,
		Payments: []domain.Payment{
			{PaymentID: uuid.NewString(), Status: domain.PaymentReceived},
			{PaymentID: uuid.NewString(), Status: domain.PaymentPending},
		},
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(invoice, nil).Once()

	err := suite.service.CancelInvoice(ctx, invoiceID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvoiceHasReceivedPayments)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "DeleteInvoice", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestReceiveAndReversePayment() {
	ctx := context.Background()
	paymentID := uuid.NewString()
	pending := &domain.Payment{PaymentID: paymentID, Status: domain.PaymentPending}

	suite.mockInvoiceRepo.On("FindPaymentByID", ctx, paymentID).Return(pending, nil).Once()
	suite.mockInvoiceRepo.On("UpdatePaymentStatus", ctx, paymentID, domain.PaymentReceived, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	received, err := suite.service.ReceivePayment(ctx, paymentID, suite.userID)
	suite.Require().NoError(err)
	suite.Equal(domain.PaymentReceived, received.Status)

	// Reversal flips it straight back to pending
	suite.mockInvoiceRepo.On("FindPaymentByID", ctx, paymentID).Return(received, nil).Once()
	suite.mockInvoiceRepo.On("UpdatePaymentStatus", ctx, paymentID, domain.PaymentPending, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	reversed, err := suite.service.ReversePayment(ctx, paymentID, suite.userID)
	suite.Require().NoError(err)
	suite.Equal(domain.PaymentPending, reversed.Status)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
