package handler

import (
	"net/http"

	"github.com/HITENDRAPAL3/Backend-ExpenseTracker/internal/middleware"
	"github.com/HITENDRAPAL3/Backend-ExpenseTracker/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// SummaryHandler handles aggregation requests
type SummaryHandler struct {
	summaryService *service.SummaryService
}

// NewSummaryHandler creates a new SummaryHandler
func NewSummaryHandler(summaryService *service.SummaryService) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// TotalResponse represents the total-spend summary
type TotalResponse struct {
	Total string `json:"total"`
}

// CategorySummaryResponse represents one category's share of spending
type CategorySummaryResponse struct {
	CategoryID   int64  `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	TotalAmount  string `json:"totalAmount"`
	ExpenseCount int64  `json:"expenseCount"`
	Percentage   string `json:"percentage"`
}

// MonthlySummaryResponse represents one calendar month's spending
type MonthlySummaryResponse struct {
	Year         int    `json:"year"`
	Month        int    `json:"month"`
	MonthName    string `json:"monthName"`
	TotalAmount  string `json:"totalAmount"`
	ExpenseCount int64  `json:"expenseCount"`
}

// GetTotal returns the user's total spending for the filter window
func (h *SummaryHandler) GetTotal(c echo.Context) error {
	userID := middleware.GetUserID(c)

	filters, respErr := parseFilters(c)
	if respErr != nil {
		return respErr
	}

	total, err := h.summaryService.TotalAmount(userID, filters)
	if err != nil {
		log.Error().Err(err).Msg("Failed to compute total")
		return NewInternalError(c, "Failed to compute total")
	}

	return c.JSON(http.StatusOK, TotalResponse{Total: total.StringFixed(2)})
}

// GetCategoryBreakdown returns per-category totals and percentages,
// largest first.
func (h *SummaryHandler) GetCategoryBreakdown(c echo.Context) error {
	userID := middleware.GetUserID(c)

	filters, respErr := parseFilters(c)
	if respErr != nil {
		return respErr
	}

	summaries, err := h.summaryService.CategoryBreakdown(userID, filters)
	if err != nil {
		log.Error().Err(err).Msg("Failed to compute category breakdown")
		return NewInternalError(c, "Failed to compute category breakdown")
	}

	responses := make([]CategorySummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		responses = append(responses, CategorySummaryResponse{
			CategoryID:   s.CategoryID,
			CategoryName: s.CategoryName,
			TotalAmount:  s.TotalAmount.StringFixed(2),
			ExpenseCount: s.ExpenseCount,
			Percentage:   s.Percentage.StringFixed(2),
		})
	}
	return c.JSON(http.StatusOK, responses)
}

// GetMonthlyBreakdown returns per-month totals, most recent first
func (h *SummaryHandler) GetMonthlyBreakdown(c echo.Context) error {
	userID := middleware.GetUserID(c)

	filters, respErr := parseFilters(c)
	if respErr != nil {
		return respErr
	}

	summaries, err := h.summaryService.MonthlyBreakdown(userID, filters)
	if err != nil {
		log.Error().Err(err).Msg("Failed to compute monthly breakdown")
		return NewInternalError(c, "Failed to compute monthly breakdown")
	}

	responses := make([]MonthlySummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		responses = append(responses, MonthlySummaryResponse{
			Year:         s.Year,
			Month:        s.Month,
			MonthName:    s.MonthName,
			TotalAmount:  s.TotalAmount.StringFixed(2),
			ExpenseCount: s.ExpenseCount,
		})
	}
	return c.JSON(http.StatusOK, responses)
}
