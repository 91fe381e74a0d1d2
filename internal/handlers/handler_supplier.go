package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oficinasys/service_order_app/internal/apperrors"
	portssvc "github.com/oficinasys/service_order_app/internal/core/ports/services"
	"github.com/oficinasys/service_order_app/internal/dto"
	"github.com/oficinasys/service_order_app/internal/middleware"
)

// supplierHandler handles HTTP requests related to suppliers.
type supplierHandler struct {
	supplierService portssvc.SupplierSvcFacade
}

func newSupplierHandler(ss portssvc.SupplierSvcFacade) *supplierHandler {
	return &supplierHandler{supplierService: ss}
}

// registerSupplierRoutes registers routes related to suppliers.
func registerSupplierRoutes(rg *gin.RouterGroup, supplierService portssvc.SupplierSvcFacade) {
	h := newSupplierHandler(supplierService)

	suppliers := rg.Group("/suppliers")
	{
		suppliers.POST("", h.createSupplier)
		suppliers.GET("", h.listSuppliers)
		suppliers.GET("/:id", h.getSupplierByID)
		suppliers.PUT("/:id", h.updateSupplier)
		suppliers.DELETE("/:id", h.deleteSupplier)
	}
}

// createSupplier godoc
// @Summary Register a new supplier
// @Tags suppliers
// @Accept json
// @Produce json
// @Param supplier body dto.CreateSupplierRequest true "Supplier details"
// @Success 201 {object} dto.SupplierResponse
// @Failure 400 {object} ErrorResponse "Invalid input or CNPJ check digits"
// @Failure 409 {object} ErrorResponse "CNPJ already registered"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /suppliers [post]
func (h *supplierHandler) createSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	supplier, err := h.supplierService.CreateSupplier(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create supplier", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create supplier"})
		}
		return
	}

	logger.Info("Supplier created", slog.String("supplier_id", supplier.SupplierID))
	c.JSON(http.StatusCreated, dto.ToSupplierResponse(supplier))
}

// getSupplierByID godoc
// @Summary Get a supplier by ID
// @Tags suppliers
// @Produce json
// @Param id path string true "Supplier ID"
// @Success 200 {object} dto.SupplierResponse
// @Failure 404 {object} ErrorResponse "Supplier not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /suppliers/{id} [get]
func (h *supplierHandler) getSupplierByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	supplierID := c.Param("id")

	supplier, err := h.supplierService.GetSupplierByID(c.Request.Context(), supplierID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Supplier not found"})
		} else {
			logger.Error("Failed to get supplier", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve supplier"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToSupplierResponse(supplier))
}

// listSuppliers godoc
// @Summary List suppliers
// @Description Retrieves suppliers ordered by legal name
// @Tags suppliers
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListSuppliersResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /suppliers [get]
func (h *supplierHandler) listSuppliers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListSuppliersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	suppliers, err := h.supplierService.ListSuppliers(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list suppliers", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list suppliers"})
		return
	}

	c.JSON(http.StatusOK, dto.ListSuppliersResponse{Suppliers: dto.ToListSupplierResponse(suppliers)})
}

// updateSupplier godoc
// @Summary Update a supplier
// @Description Updates supplier details. The CNPJ is immutable.
// @Tags suppliers
// @Accept json
// @Produce json
// @Param id path string true "Supplier ID"
// @Param supplier body dto.UpdateSupplierRequest true "Fields to update"
// @Success 200 {object} dto.SupplierResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Supplier not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /suppliers/{id} [put]
func (h *supplierHandler) updateSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	supplierID := c.Param("id")

	var req dto.UpdateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	supplier, err := h.supplierService.UpdateSupplier(c.Request.Context(), supplierID, req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Supplier not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to update supplier", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update supplier"})
		}
		return
	}

	logger.Info("Supplier updated", slog.String("supplier_id", supplierID))
	c.JSON(http.StatusOK, dto.ToSupplierResponse(supplier))
}

// deleteSupplier godoc
// @Summary Delete a supplier
// @Tags suppliers
// @Produce json
// @Param id path string true "Supplier ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Supplier not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /suppliers/{id} [delete]
func (h *supplierHandler) deleteSupplier(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	supplierID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.supplierService.DeleteSupplier(c.Request.Context(), supplierID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Supplier not found"})
		} else {
			logger.Error("Failed to delete supplier", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete supplier"})
		}
		return
	}

	logger.Info("Supplier deleted", slog.String("supplier_id", supplierID))
	c.Status(http.StatusNoContent)
}
