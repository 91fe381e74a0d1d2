package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oficinasys/service_order_app/internal/apperrors"
	"github.com/oficinasys/service_order_app/internal/core/domain"
	portssvc "github.com/oficinasys/service_order_app/internal/core/ports/services"
	"github.com/oficinasys/service_order_app/internal/dto"
	"github.com/oficinasys/service_order_app/internal/middleware"
	"github.com/oficinasys/service_order_app/internal/printing"
)

// invoiceHandler handles HTTP requests related to invoices and payments.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
	orderService   portssvc.OrderSvcFacade
	clientService  portssvc.ClientSvcFacade
	printer        *printing.Printer
}

func newInvoiceHandler(is portssvc.InvoiceSvcFacade, os portssvc.OrderSvcFacade, cs portssvc.ClientSvcFacade, printer *printing.Printer) *invoiceHandler {
	return &invoiceHandler{
		invoiceService: is,
		orderService:   os,
		clientService:  cs,
		printer:        printer,
	}
}

// registerInvoiceRoutes registers routes related to invoices and payments.
func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade, orderService portssvc.OrderSvcFacade, clientService portssvc.ClientSvcFacade, printer *printing.Printer) {
	h := newInvoiceHandler(invoiceService, orderService, clientService, printer)

	invoices := rg.Group("/invoices")
	{
		invoices.POST("", h.createInvoice)
		invoices.GET("", h.listInvoices)
		invoices.GET("/:id", h.getInvoiceByID)
		invoices.DELETE("/:id", h.cancelInvoice)
		invoices.GET("/:id/pdf", h.invoicePDF)
	}

	payments := rg.Group("/payments")
	{
		payments.POST("/:id/receive", h.receivePayment)
		payments.POST("/:id/reverse", h.reversePayment)
	}
}

// createInvoice godoc
// @Summary Issue an invoice
// @Description Issues an invoice over one or more CLOSED orders of a single
// @Description client. The payment lines must cover the order total within
// @Description the accepted rounding tolerance.
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.InvoiceResponse
// @Failure 400 {object} ErrorResponse "Missing payments or invalid input"
// @Failure 404 {object} ErrorResponse "Order not found"
// @Failure 409 {object} ErrorResponse "Orders not closed or mixed clients"
// @Failure 422 {object} ErrorResponse "Payments do not match the order total"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrInvalidOrderSet):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrPaymentMismatch):
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrMissingPaymentMethod), errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to create invoice", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create invoice"})
		}
		return
	}

	logger.Info("Invoice issued", slog.String("invoice_id", invoice.InvoiceID), slog.Int("orders", len(invoice.OrderIDs)))
	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(invoice))
}

// getInvoiceByID godoc
// @Summary Get an invoice by ID
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/{id} [get]
func (h *invoiceHandler) getInvoiceByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("id")

	invoice, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), invoiceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Invoice not found"})
		} else {
			logger.Error("Failed to get invoice", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve invoice"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// listInvoices godoc
// @Summary List invoices
// @Description Retrieves invoices, most recent first, optionally for one client
// @Tags invoices
// @Produce json
// @Param clientID query string false "Filter by client"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListInvoicesResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListInvoicesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context(), params.ClientID, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list invoices", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list invoices"})
		return
	}

	c.JSON(http.StatusOK, dto.ListInvoicesResponse{Invoices: dto.ToListInvoiceResponse(invoices)})
}

// cancelInvoice godoc
// @Summary Cancel an invoice
// @Description Removes an invoice with no received payments, returning its
// @Description orders to CLOSED.
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Failure 409 {object} ErrorResponse "Invoice has received payments"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/{id} [delete]
func (h *invoiceHandler) cancelInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.invoiceService.CancelInvoice(c.Request.Context(), invoiceID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Invoice not found"})
		} else if errors.Is(err, apperrors.ErrInvoiceHasReceivedPayments) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to cancel invoice", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to cancel invoice"})
		}
		return
	}

	logger.Info("Invoice cancelled", slog.String("invoice_id", invoiceID))
	c.Status(http.StatusNoContent)
}

// invoicePDF godoc
// @Summary Download an invoice as PDF
// @Description Renders the printable invoice with its orders and payments.
// @Tags invoices
// @Produce application/pdf
// @Param id path string true "Invoice ID"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse "Invoice not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/{id}/pdf [get]
func (h *invoiceHandler) invoicePDF(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	invoiceID := c.Param("id")

	invoice, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), invoiceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Invoice not found"})
		} else {
			logger.Error("Failed to get invoice for PDF", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve invoice"})
		}
		return
	}

	client, err := h.clientService.GetClientByID(c.Request.Context(), invoice.ClientID)
	if err != nil {
		logger.Error("Failed to get client for invoice PDF", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve client"})
		return
	}

	orders := make([]domain.ServiceOrder, 0, len(invoice.OrderIDs))
	for _, orderID := range invoice.OrderIDs {
		order, err := h.orderService.GetOrderByID(c.Request.Context(), orderID)
		if err != nil {
			logger.Error("Failed to load order for invoice PDF", slog.String("order_id", orderID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve orders"})
			return
		}
		orders = append(orders, *order)
	}

	pdf, err := h.printer.InvoicePDF(c.Request.Context(), invoice, client, orders)
	if err != nil {
		logger.Error("Failed to render invoice PDF", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to render PDF"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice-%s.pdf", invoiceID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// receivePayment godoc
// @Summary Settle a payment
// @Description Marks a pending payment as RECEIVED.
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 404 {object} ErrorResponse "Payment not found"
// @Failure 409 {object} ErrorResponse "Payment is not pending"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments/{id}/receive [post]
func (h *invoiceHandler) receivePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	payment, err := h.invoiceService.ReceivePayment(c.Request.Context(), paymentID, userID)
	if err != nil {
		h.respondPaymentError(c, logger, err, "Failed to receive payment")
		return
	}

	logger.Info("Payment received", slog.String("payment_id", paymentID))
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// reversePayment godoc
// @Summary Reverse a received payment
// @Description Returns a RECEIVED payment to PENDING.
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 404 {object} ErrorResponse "Payment not found"
// @Failure 409 {object} ErrorResponse "Payment is not received"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payments/{id}/reverse [post]
func (h *invoiceHandler) reversePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	payment, err := h.invoiceService.ReversePayment(c.Request.Context(), paymentID, userID)
	if err != nil {
		h.respondPaymentError(c, logger, err, "Failed to reverse payment")
		return
	}

	logger.Info("Payment reversed", slog.String("payment_id", paymentID))
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

func (h *invoiceHandler) respondPaymentError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Payment not found"})
	case errors.Is(err, apperrors.ErrInvalidTransition):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}
