package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oficinasys/service_order_app/internal/apperrors"
	portssvc "github.com/oficinasys/service_order_app/internal/core/ports/services"
	"github.com/oficinasys/service_order_app/internal/middleware"
)

// lookupHandler fronts the public registry lookups used for form pre-fill.
type lookupHandler struct {
	lookupService portssvc.LookupService
}

func newLookupHandler(ls portssvc.LookupService) *lookupHandler {
	return &lookupHandler{lookupService: ls}
}

// registerLookupRoutes registers the registry lookup routes.
func registerLookupRoutes(rg *gin.RouterGroup, lookupService portssvc.LookupService) {
	h := newLookupHandler(lookupService)

	lookup := rg.Group("/lookup")
	{
		lookup.GET("/cnpj/:cnpj", h.lookupCNPJ)
		lookup.GET("/cep/:cep", h.lookupCEP)
	}
}

// lookupCNPJ godoc
// @Summary Look up company data by CNPJ
// @Description Fetches registration data from the public registry. Registry
// @Description downtime returns 503 and never blocks manual entry.
// @Tags lookup
// @Produce json
// @Param cnpj path string true "CNPJ (digits only or formatted)"
// @Success 200 {object} dto.CNPJLookupResponse
// @Failure 400 {object} ErrorResponse "Invalid CNPJ"
// @Failure 404 {object} ErrorResponse "CNPJ not found"
// @Failure 503 {object} ErrorResponse "Registry unavailable"
// @Security BearerAuth
// @Router /lookup/cnpj/{cnpj} [get]
func (h *lookupHandler) lookupCNPJ(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cnpj := c.Param("cnpj")

	result, err := h.lookupService.LookupCNPJ(c.Request.Context(), cnpj)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "CNPJ not found"})
		case errors.Is(err, apperrors.ErrLookupUnavailable):
			logger.Warn("CNPJ registry unavailable", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Registry lookup unavailable, fill the form manually"})
		default:
			logger.Error("Failed CNPJ lookup", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to look up CNPJ"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// lookupCEP godoc
// @Summary Look up address data by CEP
// @Description Fetches address data from the postal registry. Registry
// @Description downtime returns 503 and never blocks manual entry.
// @Tags lookup
// @Produce json
// @Param cep path string true "CEP (digits only or formatted)"
// @Success 200 {object} dto.CEPLookupResponse
// @Failure 400 {object} ErrorResponse "Invalid CEP"
// @Failure 404 {object} ErrorResponse "CEP not found"
// @Failure 503 {object} ErrorResponse "Registry unavailable"
// @Security BearerAuth
// @Router /lookup/cep/{cep} [get]
func (h *lookupHandler) lookupCEP(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	cep := c.Param("cep")

	result, err := h.lookupService.LookupCEP(c.Request.Context(), cep)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "CEP not found"})
		case errors.Is(err, apperrors.ErrLookupUnavailable):
			logger.Warn("CEP registry unavailable", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Registry lookup unavailable, fill the form manually"})
		default:
			logger.Error("Failed CEP lookup", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to look up CEP"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
