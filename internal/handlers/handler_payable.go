package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oficinasys/service_order_app/internal/apperrors"
	"github.com/oficinasys/service_order_app/internal/core/domain"
	portsrepo "github.com/oficinasys/service_order_app/internal/core/ports/repositories"
	portssvc "github.com/oficinasys/service_order_app/internal/core/ports/services"
	"github.com/oficinasys/service_order_app/internal/core/services"
	"github.com/oficinasys/service_order_app/internal/dto"
	"github.com/oficinasys/service_order_app/internal/middleware"
)

// payableHandler handles HTTP requests related to accounts payable.
type payableHandler struct {
	payableService portssvc.PayableSvcFacade
}

func newPayableHandler(ps portssvc.PayableSvcFacade) *payableHandler {
	return &payableHandler{payableService: ps}
}

// registerPayableRoutes registers routes related to accounts payable.
func registerPayableRoutes(rg *gin.RouterGroup, payableService portssvc.PayableSvcFacade) {
	h := newPayableHandler(payableService)

	payables := rg.Group("/payables")
	{
		payables.POST("", h.createPayable)
		payables.GET("", h.listPayables)
		payables.GET("/:id", h.getPayableByID)
		payables.PUT("/:id", h.updatePayable)
		payables.DELETE("/:id", h.deletePayable)
		payables.POST("/:id/pay", h.payPayable)
		payables.POST("/:id/reverse", h.reversePayablePayment)
	}
}

// createPayable godoc
// @Summary Register a payable obligation
// @Description Registers an obligation, optionally split into monthly
// @Description installments. The response carries every parcel created.
// @Tags payables
// @Accept json
// @Produce json
// @Param payable body dto.CreatePayableRequest true "Payable details"
// @Success 201 {array} dto.PayableResponse
// @Failure 400 {object} ErrorResponse "Non-positive amount or invalid input"
// @Failure 404 {object} ErrorResponse "Supplier not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payables [post]
func (h *payableHandler) createPayable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePayableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	payables, err := h.payableService.CreatePayable(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Supplier not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create payable", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create payable"})
		}
		return
	}

	logger.Info("Payable registered", slog.Int("installments", len(payables)))
	c.JSON(http.StatusCreated, dto.ToListPayableResponse(payables))
}

// getPayableByID godoc
// @Summary Get a payable by ID
// @Tags payables
// @Produce json
// @Param id path string true "Payable ID"
// @Success 200 {object} dto.PayableResponse
// @Failure 404 {object} ErrorResponse "Payable not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payables/{id} [get]
func (h *payableHandler) getPayableByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	payableID := c.Param("id")

	payable, err := h.payableService.GetPayableByID(c.Request.Context(), payableID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Payable not found"})
		} else {
			logger.Error("Failed to get payable", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve payable"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPayableResponse(payable))
}

// listPayables godoc
// @Summary List payables
// @Description Retrieves payables ordered by due date, with optional
// @Description supplier, status and due-date filters
// @Tags payables
// @Produce json
// @Param supplierID query string false "Filter by supplier"
// @Param status query string false "Filter by status" Enums(PENDING, PAID)
// @Param from query string false "Due from (YYYY-MM-DD)"
// @Param to query string false "Due until (YYYY-MM-DD, inclusive)"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListPayablesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payables [get]
func (h *payableHandler) listPayables(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListPayablesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	from, err := parseDateFilter(params.From, false)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid from date"})
		return
	}
	to, err := parseDateFilter(params.To, true)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid to date"})
		return
	}

	filter := portsrepo.ListPayablesFilter{
		SupplierID: params.SupplierID,
		Status:     domain.PayableStatus(params.Status),
		From:       from,
		To:         to,
	}

	payables, err := h.payableService.ListPayables(c.Request.Context(), filter, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list payables", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list payables"})
		return
	}

	c.JSON(http.StatusOK, dto.ListPayablesResponse{Payables: dto.ToListPayableResponse(payables)})
}

// updatePayable godoc
// @Summary Update a pending payable
// @Description Updates a payable's details. Paid payables are locked.
// @Tags payables
// @Accept json
// @Produce json
// @Param id path string true "Payable ID"
// @Param payable body dto.UpdatePayableRequest true "Fields to update"
// @Success 200 {object} dto.PayableResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Payable not found"
// @Failure 409 {object} ErrorResponse "Payable is paid"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payables/{id} [put]
func (h *payableHandler) updatePayable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	payableID := c.Param("id")

	var req dto.UpdatePayableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	payable, err := h.payableService.UpdatePayable(c.Request.Context(), payableID, req, userID)
	if err != nil {
		h.respondPayableError(c, logger, err, "Failed to update payable")
		return
	}

	logger.Info("Payable updated", slog.String("payable_id", payableID))
	c.JSON(http.StatusOK, dto.ToPayableResponse(payable))
}

// payPayable godoc
// @Summary Settle a payable
// @Description Marks a pending payable as PAID.
// @Tags payables
// @Produce json
// @Param id path string true "Payable ID"
// @Success 200 {object} dto.PayableResponse
// @Failure 404 {object} ErrorResponse "Payable not found"
// @Failure 409 {object} ErrorResponse "Payable is not pending"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payables/{id}/pay [post]
func (h *payableHandler) payPayable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	payableID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	payable, err := h.payableService.PayPayable(c.Request.Context(), payableID, userID)
	if err != nil {
		h.respondPayableError(c, logger, err, "Failed to pay payable")
		return
	}

	logger.Info("Payable paid", slog.String("payable_id", payableID))
	c.JSON(http.StatusOK, dto.ToPayableResponse(payable))
}

// reversePayablePayment godoc
// @Summary Reverse a payable settlement
// @Description Returns a PAID payable to PENDING.
// @Tags payables
// @Produce json
// @Param id path string true "Payable ID"
// @Success 200 {object} dto.PayableResponse
// @Failure 404 {object} ErrorResponse "Payable not found"
// @Failure 409 {object} ErrorResponse "Payable is not paid"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payables/{id}/reverse [post]
func (h *payableHandler) reversePayablePayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	payableID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	payable, err := h.payableService.ReversePayablePayment(c.Request.Context(), payableID, userID)
	if err != nil {
		h.respondPayableError(c, logger, err, "Failed to reverse payable payment")
		return
	}

	logger.Info("Payable payment reversed", slog.String("payable_id", payableID))
	c.JSON(http.StatusOK, dto.ToPayableResponse(payable))
}

// deletePayable godoc
// @Summary Delete a pending payable
// @Tags payables
// @Produce json
// @Param id path string true "Payable ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Payable not found"
// @Failure 409 {object} ErrorResponse "Payable is paid"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /payables/{id} [delete]
func (h *payableHandler) deletePayable(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	payableID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.payableService.DeletePayable(c.Request.Context(), payableID, userID); err != nil {
		h.respondPayableError(c, logger, err, "Failed to delete payable")
		return
	}

	logger.Info("Payable deleted", slog.String("payable_id", payableID))
	c.Status(http.StatusNoContent)
}

func (h *payableHandler) respondPayableError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Payable not found"})
	case errors.Is(err, services.ErrPayableNotPending), errors.Is(err, apperrors.ErrInvalidTransition):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}
