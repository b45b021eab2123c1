package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/af360bank/financeiro_app/internal/core/ports/services"
	"github.com/af360bank/financeiro_app/internal/dto"
	"github.com/af360bank/financeiro_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles the read-only report endpoints.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/received", h.getReceived)
		reports.GET("/summary", h.getSummary)
	}
}

func (h *reportingHandler) getReceived(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ReceivedFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Invalid received report filter", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter: " + err.Error()})
		return
	}

	rows, totals, documents, err := h.reportingService.Received(c.Request.Context(), req.ToReceivedFilter())
	if err != nil {
		logger.Error("Failed to build received report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build received report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToReceivedReportResponse(rows, totals, documents))
}

func (h *reportingHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rows, err := h.reportingService.SummaryByType(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build type summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTypeSummaryResponse(rows))
}
