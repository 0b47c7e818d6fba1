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

// EmailHandler handles HTML report mailing and download requests
type EmailHandler struct {
	emailService *service.EmailService
}

// NewEmailHandler creates a new EmailHandler
func NewEmailHandler(emailService *service.EmailService) *EmailHandler {
	return &EmailHandler{emailService: emailService}
}

// SendReportResponse acknowledges a queued report email
type SendReportResponse struct {
	Message string `json:"message"`
}

// SendReport mails the HTML expense report to the user's registered address
func (h *EmailHandler) SendReport(c echo.Context) error {
	userID := middleware.GetUserID(c)

	filters, respErr := parseFilters(c)
	if respErr != nil {
		return respErr
	}

	if err := h.emailService.SendReport(userID, filters); err != nil {
		if errors.Is(err, domain.ErrMailNotConfigured) {
			return NewUnavailableError(c, "Email delivery is not configured")
		}
		if errors.Is(err, domain.ErrUserNotFound) {
			return NewNotFoundError(c, "User not found")
		}
		log.Error().Err(err).Msg("Failed to send report email")
		return NewInternalError(c, "Failed to send report email")
	}

	return c.JSON(http.StatusOK, SendReportResponse{Message: "Report sent"})
}

// DownloadReport returns the same HTML report as a browser-viewable page
func (h *EmailHandler) DownloadReport(c echo.Context) error {
	userID := middleware.GetUserID(c)

	filters, respErr := parseFilters(c)
	if respErr != nil {
		return respErr
	}

	export, err := h.emailService.DownloadReport(userID, filters)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return NewNotFoundError(c, "User not found")
		}
		log.Error().Err(err).Msg("Failed to render report")
		return NewInternalError(c, "Failed to render report")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, export.Filename))
	return c.Blob(http.StatusOK, export.ContentType, export.Data)
}
