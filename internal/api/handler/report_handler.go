package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/swdsms/incident-api/internal/api/metrics"
	"github.com/swdsms/incident-api/internal/core/domain"
	"github.com/swdsms/incident-api/internal/core/ports"
)

// ReportHandler handles HTTP requests for the report lifecycle.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// List returns all reports ordered ascending by id.
//
// @Summary      List incident reports
// @Tags         reports
// @Produce      json
// @Success      200  {array}   domain.Report
// @Failure      500  {object}  errorResponse
// @Router       /api/reports [get]
func (h *ReportHandler) List(c echo.Context) error {
	reports, err := h.service.ListReports(c.Request().Context())
	if err != nil {
		return serverError(c, err)
	}
	return c.JSON(http.StatusOK, reports)
}

// Create submits a new incident report. Whatever status the client sends is
// discarded: new reports always start Pending.
//
// @Summary      Submit an incident report
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        body  body      createReportRequest  true  "Report fields (Name/name style dual-cased keys accepted)"
// @Success      201   {object}  domain.Report
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/reports [post]
func (h *ReportHandler) Create(c echo.Context) error {
	payload := map[string]any{}
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: msgMissingReportFields})
	}

	req := normalizeReport(payload)
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: msgMissingReportFields})
	}

	report, err := h.service.CreateReport(c.Request().Context(), req.toInput())
	if err != nil {
		if errors.Is(err, domain.ErrMissingFields) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: msgMissingReportFields})
		}
		return serverError(c, err)
	}

	metrics.ReportsCreatedTotal.WithLabelValues(report.Type).Inc()
	return c.JSON(http.StatusCreated, report)
}

// Solve marks a report as Solved. Solving an already-solved report succeeds
// and returns the unchanged record.
//
// @Summary      Mark a report solved
// @Tags         reports
// @Produce      json
// @Param        id   path      int  true  "Report id"
// @Success      200  {object}  domain.Report
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/reports/{id}/solve [put]
func (h *ReportHandler) Solve(c echo.Context) error {
	// Lenient on purpose: non-numeric input parses to 0, which matches no
	// row and falls through to not-found rather than a validation error.
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	report, err := h.service.SolveReport(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrReportNotFound) {
			return c.JSON(http.StatusNotFound, errorResponse{Error: msgReportNotFound})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: msgFailedToUpdateReport})
	}

	metrics.ReportsSolvedTotal.Inc()
	return c.JSON(http.StatusOK, report)
}
