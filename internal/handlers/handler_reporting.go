package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Odongfelix/jweb/internal/core/domain"
	portssvc "github.com/Odongfelix/jweb/internal/core/ports/services"
	"github.com/Odongfelix/jweb/internal/dto"
	"github.com/Odongfelix/jweb/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests of the reporting screen
type reportingHandler struct {
	reportingService portssvc.ReportingService
	location         *time.Location
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService, loc *time.Location) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		location:         loc,
	}
}

// registerReportingRoutes registers routes related to the journal entry report
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService, loc *time.Location) {
	h := newReportingHandler(reportingService, loc)

	rg.GET("/offices", h.listOffices)

	reportGroup := rg.Group("/journal-entries/report")
	{
		reportGroup.GET("", h.getReport)
		reportGroup.GET("/export", h.exportReport)
	}
}

// listOffices godoc
// @Summary List offices
// @Description Lists the offices the report can be filtered by. The list may be empty.
// @Tags reports
// @Produce json
// @Success 200 {array} dto.OfficeResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Unable to load offices"
// @Security BearerAuth
// @Router /offices [get]
func (h *reportingHandler) listOffices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	offices, err := h.reportingService.ListOffices(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Unable to load offices")
		return
	}

	c.JSON(http.StatusOK, dto.ToOfficeListResponse(offices))
}

// getReport godoc
// @Summary Get the journal entry report
// @Description Returns one sorted page of journal entries matching the filter
// @Tags reports
// @Produce json
// @Param fromDate query string false "From date (YYYY-MM-DD or RFC 3339)"
// @Param toDate query string false "To date, inclusive (YYYY-MM-DD or RFC 3339)"
// @Param office query int false "Office ID"
// @Param offset query int false "Rows to skip" default(0)
// @Param limit query int false "Page size" default(10) maximum(100)
// @Param sortBy query string false "Sort column" Enums(date, office, debitAccount, creditAccount, debitUSD, creditUSD, conversionRate, debitUGX, creditUGX)
// @Param sortDir query string false "Sort direction" Enums(asc, desc)
// @Param pageToken query string false "Token from a previous page's nextPageToken"
// @Success 200 {object} dto.ReportPageResponse
// @Failure 400 {object} map[string]interface{} "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Unable to load journal entry report"
// @Security BearerAuth
// @Router /journal-entries/report [get]
func (h *reportingHandler) getReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var query dto.ReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for GetReport", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	filter, page, err := h.parseReportQuery(query)
	if err != nil {
		respondWithError(c, logger, err, "Unable to load journal entry report")
		return
	}

	reportPage, err := h.reportingService.GetReport(c.Request.Context(), filter, page)
	if err != nil {
		respondWithError(c, logger, err, "Unable to load journal entry report")
		return
	}

	c.JSON(http.StatusOK, dto.ToReportPageResponse(reportPage))
}

// exportReport godoc
// @Summary Export the journal entry report page
// @Description Exports the rows of the requested page only, as a spreadsheet (xlsx) or document (pdf)
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce application/pdf
// @Param format query string true "Export format" Enums(xlsx, pdf)
// @Param fromDate query string false "From date (YYYY-MM-DD or RFC 3339)"
// @Param toDate query string false "To date, inclusive (YYYY-MM-DD or RFC 3339)"
// @Param office query int false "Office ID"
// @Param offset query int false "Rows to skip" default(0)
// @Param limit query int false "Page size" default(10) maximum(100)
// @Param sortBy query string false "Sort column"
// @Param sortDir query string false "Sort direction" Enums(asc, desc)
// @Param pageToken query string false "Token from a previous page's nextPageToken"
// @Success 200 {file} file
// @Failure 400 {object} map[string]interface{} "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No data to export"
// @Failure 502 {object} map[string]string "Unable to load journal entry report"
// @Security BearerAuth
// @Router /journal-entries/report/export [get]
func (h *reportingHandler) exportReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var query dto.ExportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for ExportReport", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	filter, page, err := h.parseReportQuery(query.ReportQuery)
	if err != nil {
		respondWithError(c, logger, err, "Failed to export report")
		return
	}

	file, err := h.reportingService.Export(c.Request.Context(), domain.ExportFormat(query.Format), filter, page)
	if err != nil {
		respondWithError(c, logger, err, "Failed to export report")
		return
	}

	logger.Info("Report export sent", slog.String("file_name", file.FileName), slog.Int("bytes", len(file.Content)))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.FileName))
	c.Header("Content-Length", strconv.Itoa(len(file.Content)))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}

func (h *reportingHandler) parseReportQuery(query dto.ReportQuery) (domain.ReportFilter, domain.PageRequest, error) {
	filter, err := query.ToFilter(h.location)
	if err != nil {
		return filter, domain.PageRequest{}, err
	}
	page, err := query.ToPageRequest()
	if err != nil {
		return filter, page, err
	}
	return filter, page, nil
}
