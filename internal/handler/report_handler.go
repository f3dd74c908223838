package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"kunstbeheer/internal/repository"
	"kunstbeheer/internal/service"
)

// ReportHandler handles the report endpoint.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new report handler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

const dateLayout = "2006-01-02"

// Generate godoc
// @Summary Generate a report
// @Description Aggregates the artwork set by the given report type. All
// @Description filters combine with AND semantics.
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param type query string true "inventory, value, artist or location"
// @Param artistId query int false "Filter on artist"
// @Param locationId query int false "Filter on location"
// @Param typeId query int false "Filter on type"
// @Param dateFrom query string false "Purchase date from (YYYY-MM-DD)"
// @Param dateTo query string false "Purchase date to (YYYY-MM-DD)"
// @Param valueMin query number false "Market value from"
// @Param valueMax query number false "Market value to"
// @Success 200 {object} interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /reports [get]
func (h *ReportHandler) Generate(c echo.Context) error {
	filter := repository.ArtworkFilter{
		ArtistID:   queryID(c, "artistId"),
		LocationID: queryID(c, "locationId"),
		TypeID:     queryID(c, "typeId"),
	}

	if v := c.QueryParam("dateFrom"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "ongeldige datum: "+v)
		}
		filter.DateFrom = &t
	}
	if v := c.QueryParam("dateTo"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "ongeldige datum: "+v)
		}
		filter.DateTo = &t
	}
	if v := c.QueryParam("valueMin"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "ongeldige waarde: "+v)
		}
		filter.ValueMin = &d
	}
	if v := c.QueryParam("valueMax"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "ongeldige waarde: "+v)
		}
		filter.ValueMax = &d
	}

	report, err := h.reportService.Generate(c.Request().Context(), c.QueryParam("type"), filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}
