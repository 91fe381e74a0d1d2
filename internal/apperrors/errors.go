package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInsufficientStock indicates a stock reservation larger than the quantity on hand.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrInvalidTransition indicates a service-order status change that the state machine forbids.
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrOrderLocked indicates a mutation attempted on a service order that is not open.
var ErrOrderLocked = errors.New("service order is locked")

// ErrInvalidOrderSet indicates that the orders selected for invoicing are missing,
// belong to different clients, or are not closed.
var ErrInvalidOrderSet = errors.New("invalid order set for invoicing")

// ErrPaymentMismatch indicates that the payment lines of an invoice do not add up
// to the total of its orders.
var ErrPaymentMismatch = errors.New("payments do not match invoice total")

// ErrMissingPaymentMethod indicates an invoice created without any payment line.
var ErrMissingPaymentMethod = errors.New("at least one payment method is required")

// ErrInvoiceHasReceivedPayments indicates a cancellation attempt on an invoice
// with at least one received payment.
var ErrInvoiceHasReceivedPayments = errors.New("invoice has received payments")

// ErrLookupUnavailable indicates that an external document lookup service could
// not be reached.
var ErrLookupUnavailable = errors.New("lookup service unavailable")
