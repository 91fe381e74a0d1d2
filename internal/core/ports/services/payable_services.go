package services

import (
	"context"

	"github.com/oficinasys/service_order_app/internal/core/domain"
	"github.com/oficinasys/service_order_app/internal/core/ports/repositories"
	"github.com/oficinasys/service_order_app/internal/dto"
)

// PayableReaderSvc defines read operations for accounts payable.
type PayableReaderSvc interface {
	// GetPayableByID retrieves a payable by its unique identifier.
	GetPayableByID(ctx context.Context, payableID string) (*domain.PayableAccount, error)

	// ListPayables retrieves payables matching the filter, ordered by due date.
	ListPayables(ctx context.Context, filter repositories.ListPayablesFilter, limit int, offset int) ([]domain.PayableAccount, error)
}

// PayableWriterSvc defines write operations for accounts payable.
type PayableWriterSvc interface {
	// CreatePayable registers an obligation, splitting it into monthly
	// installments when requested. Returns every parcel created.
	CreatePayable(ctx context.Context, req dto.CreatePayableRequest, userID string) ([]domain.PayableAccount, error)

	// UpdatePayable updates a pending payable's details.
	UpdatePayable(ctx context.Context, payableID string, req dto.UpdatePayableRequest, userID string) (*domain.PayableAccount, error)

	// PayPayable marks a pending payable as PAID.
	PayPayable(ctx context.Context, payableID string, userID string) (*domain.PayableAccount, error)

	// ReversePayablePayment returns a paid payable to PENDING.
	ReversePayablePayment(ctx context.Context, payableID string, userID string) (*domain.PayableAccount, error)

	// DeletePayable removes a pending payable.
	DeletePayable(ctx context.Context, payableID string, userID string) error
}

// PayableSvcFacade combines all payable-related service interfaces.
type PayableSvcFacade interface {
	PayableReaderSvc
	PayableWriterSvc
}
