package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oficinasys/service_order_app/internal/apperrors"
	"github.com/oficinasys/service_order_app/internal/core/domain"
	portsrepo "github.com/oficinasys/service_order_app/internal/core/ports/repositories"
	portssvc "github.com/oficinasys/service_order_app/internal/core/ports/services"
	"github.com/oficinasys/service_order_app/internal/dto"
	"github.com/oficinasys/service_order_app/internal/middleware"
	"github.com/oficinasys/service_order_app/internal/printing"
)

// orderHandler handles HTTP requests related to service orders.
type orderHandler struct {
	orderService  portssvc.OrderSvcFacade
	clientService portssvc.ClientSvcFacade
	printer       *printing.Printer
}

func newOrderHandler(os portssvc.OrderSvcFacade, cs portssvc.ClientSvcFacade, printer *printing.Printer) *orderHandler {
	return &orderHandler{
		orderService:  os,
		clientService: cs,
		printer:       printer,
	}
}

// registerOrderRoutes registers routes related to service orders.
func registerOrderRoutes(rg *gin.RouterGroup, orderService portssvc.OrderSvcFacade, clientService portssvc.ClientSvcFacade, printer *printing.Printer) {
	h := newOrderHandler(orderService, clientService, printer)

	orders := rg.Group("/orders")
	{
		orders.POST("", h.createOrder)
		orders.GET("", h.listOrders)
		orders.GET("/:id", h.getOrderByID)
		orders.PUT("/:id", h.updateOrder)
		orders.DELETE("/:id", h.deleteOrder)
		orders.POST("/:id/close", h.closeOrder)
		orders.POST("/:id/reopen", h.reopenOrder)
		orders.POST("/:id/parts", h.addPartLine)
		orders.DELETE("/:id/parts/:partID", h.removePartLine)
		orders.GET("/:id/pdf", h.orderPDF)
	}
}

// parseDateFilter interprets a YYYY-MM-DD query value as a UTC day boundary.
// endOfDay makes the bound exclusive of everything past that date.
func parseDateFilter(value string, endOfDay bool) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	if endOfDay {
		t = t.AddDate(0, 0, 1)
	}
	return &t, nil
}

// createOrder godoc
// @Summary Open a service order
// @Description Opens an order for a client, snapshotting part prices and
// @Description reserving stock for any initial part lines.
// @Tags orders
// @Accept json
// @Produce json
// @Param order body dto.CreateOrderRequest true "Order details"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Client or product not found"
// @Failure 422 {object} ErrorResponse "Insufficient stock"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders [post]
func (h *orderHandler) createOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), req, userID)
	if err != nil {
		h.respondOrderError(c, logger, err, "Failed to create order")
		return
	}

	logger.Info("Order created", slog.String("order_id", order.OrderID), slog.String("client_id", order.ClientID))
	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

// getOrderByID godoc
// @Summary Get an order by ID
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} ErrorResponse "Order not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/{id} [get]
func (h *orderHandler) getOrderByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("id")

	order, err := h.orderService.GetOrderByID(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Order not found"})
		} else {
			logger.Error("Failed to get order", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve order"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// listOrders godoc
// @Summary List service orders
// @Description Retrieves orders most recent first, with optional client,
// @Description status and opened-at date filters. Uses token pagination.
// @Tags orders
// @Produce json
// @Param clientID query string false "Filter by client"
// @Param status query string false "Filter by status" Enums(OPEN, CLOSED, INVOICED)
// @Param from query string false "Opened from (YYYY-MM-DD)"
// @Param to query string false "Opened until (YYYY-MM-DD, inclusive)"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination token from the previous page"
// @Success 200 {object} dto.ListOrdersResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders [get]
func (h *orderHandler) listOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListOrdersParams
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

	filter := portsrepo.ListOrdersFilter{
		ClientID: params.ClientID,
		Status:   domain.OrderStatus(params.Status),
		From:     from,
		To:       to,
	}

	orders, nextToken, err := h.orderService.ListOrders(c.Request.Context(), filter, params.Limit, params.NextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to list orders", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list orders"})
		return
	}

	c.JSON(http.StatusOK, dto.ListOrdersResponse{
		Orders:    dto.ToListOrderResponse(orders),
		NextToken: nextToken,
	})
}

// updateOrder godoc
// @Summary Update an open order
// @Description Updates the order header. Closed and invoiced orders are locked.
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param order body dto.UpdateOrderRequest true "Fields to update"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Order not found"
// @Failure 409 {object} ErrorResponse "Order is not open"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/{id} [put]
func (h *orderHandler) updateOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("id")

	var req dto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	order, err := h.orderService.UpdateOrder(c.Request.Context(), orderID, req, userID)
	if err != nil {
		h.respondOrderError(c, logger, err, "Failed to update order")
		return
	}

	logger.Info("Order updated", slog.String("order_id", orderID))
	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// deleteOrder godoc
// @Summary Delete an order
// @Description Removes a non-invoiced order, releasing reserved stock.
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Order not found"
// @Failure 409 {object} ErrorResponse "Order is invoiced"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/{id} [delete]
func (h *orderHandler) deleteOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), orderID, userID); err != nil {
		h.respondOrderError(c, logger, err, "Failed to delete order")
		return
	}

	logger.Info("Order deleted", slog.String("order_id", orderID))
	c.Status(http.StatusNoContent)
}

// closeOrder godoc
// @Summary Close an order
// @Description Moves an open order to CLOSED, stamping the close time.
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} ErrorResponse "Order not found"
// @Failure 409 {object} ErrorResponse "Order is not open"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/{id}/close [post]
func (h *orderHandler) closeOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	order, err := h.orderService.CloseOrder(c.Request.Context(), orderID, userID)
	if err != nil {
		h.respondOrderError(c, logger, err, "Failed to close order")
		return
	}

	logger.Info("Order closed", slog.String("order_id", orderID))
	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// reopenOrder godoc
// @Summary Reopen a closed order
// @Description Moves a closed order back to OPEN. Invoiced orders cannot be
// @Description reopened until their invoice is cancelled.
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} ErrorResponse "Order not found"
// @Failure 409 {object} ErrorResponse "Order is not closed or is invoiced"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/{id}/reopen [post]
func (h *orderHandler) reopenOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	order, err := h.orderService.ReopenOrder(c.Request.Context(), orderID, userID)
	if err != nil {
		h.respondOrderError(c, logger, err, "Failed to reopen order")
		return
	}

	logger.Info("Order reopened", slog.String("order_id", orderID))
	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// addPartLine godoc
// @Summary Add a part to an open order
// @Description Appends a part line, snapshotting the product's description
// @Description and sale price and reserving stock.
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param part body dto.CreatePartLineRequest true "Part details"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Order or product not found"
// @Failure 409 {object} ErrorResponse "Order is not open"
// @Failure 422 {object} ErrorResponse "Insufficient stock"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/{id}/parts [post]
func (h *orderHandler) addPartLine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("id")

	var req dto.CreatePartLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	order, err := h.orderService.AddPartLine(c.Request.Context(), orderID, req, userID)
	if err != nil {
		h.respondOrderError(c, logger, err, "Failed to add part")
		return
	}

	logger.Info("Part added to order", slog.String("order_id", orderID), slog.String("product_id", req.ProductID))
	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// removePartLine godoc
// @Summary Remove a part from an open order
// @Description Removes a part line, releasing its reserved stock.
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Param partID path string true "Part line ID"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} ErrorResponse "Order or part line not found"
// @Failure 409 {object} ErrorResponse "Order is not open"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/{id}/parts/{partID} [delete]
func (h *orderHandler) removePartLine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("id")
	partID := c.Param("partID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	order, err := h.orderService.RemovePartLine(c.Request.Context(), orderID, partID, userID)
	if err != nil {
		h.respondOrderError(c, logger, err, "Failed to remove part")
		return
	}

	logger.Info("Part removed from order", slog.String("order_id", orderID), slog.String("part_line_id", partID))
	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// orderPDF godoc
// @Summary Download an order as PDF
// @Description Renders the printable service order document.
// @Tags orders
// @Produce application/pdf
// @Param id path string true "Order ID"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse "Order not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/{id}/pdf [get]
func (h *orderHandler) orderPDF(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("id")

	order, err := h.orderService.GetOrderByID(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Order not found"})
		} else {
			logger.Error("Failed to get order for PDF", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve order"})
		}
		return
	}

	client, err := h.clientService.GetClientByID(c.Request.Context(), order.ClientID)
	if err != nil {
		logger.Error("Failed to get client for order PDF", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve client"})
		return
	}

	pdf, err := h.printer.OrderPDF(c.Request.Context(), order, client)
	if err != nil {
		logger.Error("Failed to render order PDF", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to render PDF"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=order-%s.pdf", orderID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// respondOrderError maps order service errors onto HTTP statuses.
func (h *orderHandler) respondOrderError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrInsufficientStock):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrOrderLocked), errors.Is(err, apperrors.ErrInvalidTransition):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}
