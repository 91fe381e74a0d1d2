package handlers

import (
	"encoding/csv"
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

// exportPageSize bounds each repository page while draining an export.
const exportPageSize = 200

// reportingHandler handles the dashboard, billing and cash flow reports.
type reportingHandler struct {
	reportingService portssvc.ReportingService
	orderService     portssvc.OrderSvcFacade
	printer          *printing.Printer
}

func newReportingHandler(rs portssvc.ReportingService, os portssvc.OrderSvcFacade, printer *printing.Printer) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		orderService:     os,
		printer:          printer,
	}
}

// registerReportingRoutes registers the report routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService, orderService portssvc.OrderSvcFacade, printer *printing.Printer) {
	h := newReportingHandler(reportingService, orderService, printer)

	reports := rg.Group("/reports")
	{
		reports.GET("/dashboard", h.getDashboard)
		reports.GET("/billing", h.getBilling)
		reports.GET("/billing-by-client", h.getBillingByClient)
		reports.GET("/cash-flow", h.getCashFlow)
		reports.GET("/orders", h.getOrdersReport)
		reports.GET("/orders/export", h.exportOrdersCSV)
		reports.GET("/orders/pdf", h.ordersReportPDF)
	}
}

// bindPeriod parses the required from/to query dates into a [from, to)
// window; to is widened to include its whole day.
func bindPeriod(c *gin.Context) (time.Time, time.Time, bool) {
	var params dto.ReportPeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return time.Time{}, time.Time{}, false
	}

	from, _ := time.Parse("2006-01-02", params.From)
	to, _ := time.Parse("2006-01-02", params.To)
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "to must not be before from"})
		return time.Time{}, time.Time{}, false
	}
	return from, to.AddDate(0, 0, 1), true
}

// getDashboard godoc
// @Summary Dashboard summary
// @Description Current-month revenue and ticket, open order count, and the
// @Description trailing six-month revenue series.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reportingService.GetDashboard(c.Request.Context(), time.Now())
	if err != nil {
		logger.Error("Failed to build dashboard", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build dashboard"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(summary))
}

// getBilling godoc
// @Summary Billing summary for a period
// @Description Totals over completed orders opened within the period.
// @Tags reports
// @Produce json
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD, inclusive)"
// @Success 200 {object} dto.BillingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/billing [get]
func (h *reportingHandler) getBilling(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from, to, ok := bindPeriod(c)
	if !ok {
		return
	}

	summary, err := h.reportingService.GetBillingSummary(c.Request.Context(), from, to)
	if err != nil {
		logger.Error("Failed to build billing report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build billing report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBillingResponse(summary, from, to.AddDate(0, 0, -1)))
}

// getBillingByClient godoc
// @Summary Billing ranked by client
// @Description Completed order totals per client within the period, largest first.
// @Tags reports
// @Produce json
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD, inclusive)"
// @Success 200 {object} dto.BillingByClientResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/billing-by-client [get]
func (h *reportingHandler) getBillingByClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from, to, ok := bindPeriod(c)
	if !ok {
		return
	}

	rows, err := h.reportingService.GetBillingByClient(c.Request.Context(), from, to)
	if err != nil {
		logger.Error("Failed to build billing-by-client report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build billing-by-client report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBillingByClientResponse(rows, from, to.AddDate(0, 0, -1)))
}

// getCashFlow godoc
// @Summary Projected cash flow
// @Description Pending invoice payments (inflows) merged with pending
// @Description payables (outflows) due in the period, with a running balance.
// @Tags reports
// @Produce json
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD, inclusive)"
// @Success 200 {object} dto.CashFlowResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/cash-flow [get]
func (h *reportingHandler) getCashFlow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from, to, ok := bindPeriod(c)
	if !ok {
		return
	}

	items, err := h.reportingService.GetCashFlow(c.Request.Context(), from, to)
	if err != nil {
		logger.Error("Failed to build cash flow report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build cash flow report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCashFlowResponse(items, from, to.AddDate(0, 0, -1)))
}

// collectOrders drains every page of orders opened within the window.
func (h *reportingHandler) collectOrders(c *gin.Context, from, to time.Time) ([]domain.ServiceOrder, error) {
	filter := portsrepo.ListOrdersFilter{From: &from, To: &to}

	var all []domain.ServiceOrder
	token := ""
	for {
		page, next, err := h.orderService.ListOrders(c.Request.Context(), filter, exportPageSize, token)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if next == "" {
			return all, nil
		}
		token = next
	}
}

// getOrdersReport godoc
// @Summary Orders opened in a period
// @Description Every order opened within the period, most recent first.
// @Tags reports
// @Produce json
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD, inclusive)"
// @Success 200 {object} dto.ListOrdersResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/orders [get]
func (h *reportingHandler) getOrdersReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from, to, ok := bindPeriod(c)
	if !ok {
		return
	}

	orders, err := h.collectOrders(c, from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to build orders report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build orders report"})
		return
	}

	c.JSON(http.StatusOK, dto.ListOrdersResponse{Orders: dto.ToListOrderResponse(orders)})
}

// exportOrdersCSV godoc
// @Summary Export the orders report as CSV
// @Tags reports
// @Produce text/csv
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD, inclusive)"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/orders/export [get]
func (h *reportingHandler) exportOrdersCSV(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from, to, ok := bindPeriod(c)
	if !ok {
		return
	}

	orders, err := h.collectOrders(c, from, to)
	if err != nil {
		logger.Error("Failed to collect orders for CSV export", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to export orders"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=orders-%s-%s.csv",
		from.Format("2006-01-02"), to.AddDate(0, 0, -1).Format("2006-01-02")))
	c.Header("Content-Type", "text/csv")

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"order_id", "client_id", "status", "opened_at", "closed_at", "service_value", "parts_total", "total_value"})
	for _, o := range orders {
		closedAt := ""
		if o.ClosedAt != nil {
			closedAt = o.ClosedAt.Format("2006-01-02")
		}
		_ = w.Write([]string{
			o.OrderID,
			o.ClientID,
			string(o.Status),
			o.OpenedAt.Format("2006-01-02"),
			closedAt,
			o.ServiceValue.StringFixed(2),
			o.PartsTotal().StringFixed(2),
			o.TotalValue().StringFixed(2),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		logger.Error("Failed to write orders CSV", slog.String("error", err.Error()))
	}
}

// ordersReportPDF godoc
// @Summary Download the orders report as PDF
// @Tags reports
// @Produce application/pdf
// @Param from query string true "Start date (YYYY-MM-DD)"
// @Param to query string true "End date (YYYY-MM-DD, inclusive)"
// @Success 200 {file} binary
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/orders/pdf [get]
func (h *reportingHandler) ordersReportPDF(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from, to, ok := bindPeriod(c)
	if !ok {
		return
	}

	orders, err := h.collectOrders(c, from, to)
	if err != nil {
		logger.Error("Failed to collect orders for PDF report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build orders report"})
		return
	}

	pdf, err := h.printer.OrdersReportPDF(c.Request.Context(), orders, from, to.AddDate(0, 0, -1))
	if err != nil {
		logger.Error("Failed to render orders report PDF", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to render PDF"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=orders-%s-%s.pdf",
		from.Format("2006-01-02"), to.AddDate(0, 0, -1).Format("2006-01-02")))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
