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

// stockEntryHandler handles HTTP requests related to goods receipts.
type stockEntryHandler struct {
	stockEntryService portssvc.StockEntrySvcFacade
}

func newStockEntryHandler(ses portssvc.StockEntrySvcFacade) *stockEntryHandler {
	return &stockEntryHandler{stockEntryService: ses}
}

// registerStockEntryRoutes registers routes related to goods receipts.
func registerStockEntryRoutes(rg *gin.RouterGroup, stockEntryService portssvc.StockEntrySvcFacade) {
	h := newStockEntryHandler(stockEntryService)

	entries := rg.Group("/stock-entries")
	{
		entries.POST("", h.createStockEntry)
		entries.GET("", h.listStockEntries)
		entries.GET("/:id", h.getStockEntryByID)
	}
}

// createStockEntry godoc
// @Summary Record a goods receipt
// @Description Records received merchandise. Stock quantities are incremented
// @Description and product cost prices updated in one transaction.
// @Tags stock-entries
// @Accept json
// @Produce json
// @Param entry body dto.CreateStockEntryRequest true "Receipt details"
// @Success 201 {object} dto.StockEntryResponse
// @Failure 400 {object} ErrorResponse "Invalid lines"
// @Failure 404 {object} ErrorResponse "Supplier or product not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /stock-entries [post]
func (h *stockEntryHandler) createStockEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateStockEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entry, err := h.stockEntryService.CreateStockEntry(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create stock entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create stock entry"})
		}
		return
	}

	logger.Info("Stock entry recorded", slog.String("entry_id", entry.EntryID), slog.Int("lines", len(entry.Lines)))
	c.JSON(http.StatusCreated, dto.ToStockEntryResponse(entry))
}

// getStockEntryByID godoc
// @Summary Get a goods receipt by ID
// @Tags stock-entries
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} dto.StockEntryResponse
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /stock-entries/{id} [get]
func (h *stockEntryHandler) getStockEntryByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID := c.Param("id")

	entry, err := h.stockEntryService.GetStockEntryByID(c.Request.Context(), entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Stock entry not found"})
		} else {
			logger.Error("Failed to get stock entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve stock entry"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToStockEntryResponse(entry))
}

// listStockEntries godoc
// @Summary List goods receipts
// @Description Retrieves receipts, most recent first
// @Tags stock-entries
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListStockEntriesResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /stock-entries [get]
func (h *stockEntryHandler) listStockEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListStockEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	entries, err := h.stockEntryService.ListStockEntries(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list stock entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list stock entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ListStockEntriesResponse{Entries: dto.ToListStockEntryResponse(entries)})
}
