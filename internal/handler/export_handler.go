package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/HITENDRAPAL3/Backend-ExpenseTracker/internal/domain"
	"github.com/HITENDRAPAL3/Backend-ExpenseTracker/internal/middleware"
	"github.com/HITENDRAPAL3/Backend-ExpenseTracker/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ExportHandler handles report download requests
type ExportHandler struct {
	reportService *service.ReportService
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(reportService *service.ReportService) *ExportHandler {
	return &ExportHandler{reportService: reportService}
}

// exportFormats maps URL format segments to report formats
var exportFormats = map[string]domain.ReportFormat{
	"csv":   domain.FormatCSV,
	"excel": domain.FormatXLSX,
	"pdf":   domain.FormatPDF,
}

// Download streams the user's expenses as a file in the requested format
func (h *ExportHandler) Download(c echo.Context) error {
	userID := middleware.GetUserID(c)

	format, ok := exportFormats[c.Param("format")]
	if !ok {
		return NewValidationError(c, "Unsupported export format", []ValidationError{
			{Field: "format", Message: "Must be one of: csv, excel, pdf"},
		})
	}

	filters, respErr := parseFilters(c)
	if respErr != nil {
		return respErr
	}

	export, err := h.reportService.GenerateExport(userID, filters, format)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return NewNotFoundError(c, "User not found")
		}
		log.Error().Err(err).Str("format", string(format)).Msg("Failed to generate export")
		return NewInternalError(c, "Failed to generate export")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, export.Filename))
	return c.Blob(http.StatusOK, export.ContentType, export.Data)
}
