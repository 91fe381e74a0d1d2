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

type PayableServiceTestSuite struct {
	suite.Suite
	mockPayableRepo  *MockPayableRepository
	mockSupplierRepo *MockSupplierRepository
	service          portssvc.PayableSvcFacade
	userID           string
}

func (suite *PayableServiceTestSuite) SetupTest() {
	suite.mockPayableRepo = new(MockPayableRepository)
	suite.mockSupplierRepo = new(MockSupplierRepository)
	suite.service = services.NewPayableService(suite.mockPayableRepo, suite.mockSupplierRepo)
	suite.userID = uuid.NewString()
}

func (suite *PayableServiceTestSuite) TestCreatePayable_SingleInstallment() {
	ctx := context.Background()
	firstDue := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
	req := dto.CreatePayableRequest{
		Description:  "Tire restock",
		Amount:       decimal.NewFromFloat(450.00),
		FirstDueDate: firstDue,
	}

	suite.mockPayableRepo.On("SavePayables", ctx, mock.AnythingOfType("[]domain.PayableAccount")).Return(nil).Once()

	parcels, err := suite.service.CreatePayable(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(parcels, 1)
	suite.Equal("Tire restock", parcels[0].Description)
	suite.True(parcels[0].Amount.Equal(decimal.NewFromFloat(450.00)))
	suite.Equal(domain.PayablePending, parcels[0].Status)
	suite.Equal(firstDue, parcels[0].DueDate)
	suite.NotEmpty(parcels[0].PayableID)
	suite.mockPayableRepo.AssertExpectations(suite.T())
}

func (suite *PayableServiceTestSuite) TestCreatePayable_SplitWithRemainder() {
	ctx := context.Background()
	firstDue := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)
	req := dto.CreatePayableRequest{
		Description:  "Parts order",
		Amount:       decimal.NewFromInt(100),
		FirstDueDate: firstDue,
		Installments: 3,
	}

	suite.mockPayableRepo.On("SavePayables", ctx, mock.AnythingOfType("[]domain.PayableAccount")).Return(nil).Once()

	parcels, err := suite.service.CreatePayable(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(parcels, 3)

	// First parcel absorbs the rounding remainder so the sum holds
	suite.True(parcels[0].Amount.Equal(decimal.NewFromFloat(33.34)), "got %s", parcels[0].Amount)
	suite.True(parcels[1].Amount.Equal(decimal.NewFromFloat(33.33)))
	suite.True(parcels[2].Amount.Equal(decimal.NewFromFloat(33.33)))

	sum := decimal.Zero
	for _, p := range parcels {
		sum = sum.Add(p.Amount)
	}
	suite.True(sum.Equal(decimal.NewFromInt(100)))

	suite.Equal("Parts order 1/3", parcels[0].Description)
	suite.Equal("Parts order 2/3", parcels[1].Description)
	suite.Equal("Parts order 3/3", parcels[2].Description)

	suite.Equal(firstDue, parcels[0].DueDate)
	suite.Equal(firstDue.AddDate(0, 1, 0), parcels[1].DueDate)
	suite.Equal(firstDue.AddDate(0, 2, 0), parcels[2].DueDate)
}

func (suite *PayableServiceTestSuite) TestCreatePayable_UnknownSupplier() {
	ctx := context.Background()
	supplierID := uuid.NewString()
	req := dto.CreatePayableRequest{
		Description:  "Compressor maintenance",
		SupplierID:   supplierID,
		Amount:       decimal.NewFromInt(200),
		FirstDueDate: time.Now().UTC(),
	}

	suite.mockSupplierRepo.On("FindSupplierByID", ctx, supplierID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreatePayable(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockPayableRepo.AssertNotCalled(suite.T(), "SavePayables", mock.Anything, mock.Anything)
}

func (suite *PayableServiceTestSuite) TestCreatePayable_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreatePayableRequest{
		Description:  "Nothing",
		Amount:       decimal.Zero,
		FirstDueDate: time.Now().UTC(),
	}

	_, err := suite.service.CreatePayable(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PayableServiceTestSuite) TestPayPayable_Success() {
	ctx := context.Background()
	payableID := uuid.NewString()
	pending := &domain.PayableAccount{
		PayableID: payableID,
		Amount:    decimal.NewFromInt(80),
		Status:    domain.PayablePending,
	}

	suite.mockPayableRepo.On("FindPayableByID", ctx, payableID).Return(pending, nil).Once()
	suite.mockPayableRepo.On("UpdatePayableStatus", ctx, payableID, domain.PayablePaid, mock.AnythingOfType("*time.Time"), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	paid, err := suite.service.PayPayable(ctx, payableID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.PayablePaid, paid.Status)
	suite.mockPayableRepo.AssertExpectations(suite.T())
}

func (suite *PayableServiceTestSuite) TestPayPayable_AlreadyPaid() {
	ctx := context.Background()
	payableID := uuid.NewString()
	paid := &domain.PayableAccount{PayableID: payableID, Status: domain.PayablePaid}

	suite.mockPayableRepo.On("FindPayableByID", ctx, payableID).Return(paid, nil).Once()

	_, err := suite.service.PayPayable(ctx, payableID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrPayableNotPending)
}

func (suite *PayableServiceTestSuite) TestReversePayablePayment_OnlyFromPaid() {
	ctx := context.Background()
	payableID := uuid.NewString()
	pending := &domain.PayableAccount{PayableID: payableID, Status: domain.PayablePending}

	suite.mockPayableRepo.On("FindPayableByID", ctx, payableID).Return(pending, nil).Once()

	_, err := suite.service.ReversePayablePayment(ctx, payableID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
}

func (suite *PayableServiceTestSuite) TestUpdatePayable_PaidIsLocked() {
	ctx := context.Background()
	payableID := uuid.NewString()
	paid := &domain.PayableAccount{PayableID: payableID, Status: domain.PayablePaid}
	newDesc := "Adjusted"

	suite.mockPayableRepo.On("FindPayableByID", ctx, payableID).Return(paid, nil).Once()

	_, err := suite.service.UpdatePayable(ctx, payableID, dto.UpdatePayableRequest{Description: &newDesc}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrPayableNotPending)
	suite.mockPayableRepo.AssertNotCalled(suite.T(), "UpdatePayable", mock.Anything, mock.Anything)
}

func (suite *PayableServiceTestSuite) TestDeletePayable_PaidIsLocked() {
	ctx := context.Background()
	payableID := uuid.NewString()
	paid := &domain.PayableAccount{PayableID: payableID, Status: domain.PayablePaid}

	suite.mockPayableRepo.On("FindPayableByID", ctx, payableID).Return(paid, nil).Once()

	err := suite.service.DeletePayable(ctx, payableID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrPayableNotPending)
	suite.mockPayableRepo.AssertNotCalled(suite.T(), "DeletePayable", mock.Anything, mock.Anything)
}

func TestPayableServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PayableServiceTestSuite))
}
