package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/HITENDRAPAL3/Backend-ExpenseTracker/internal/domain"
	"github.com/HITENDRAPAL3/Backend-ExpenseTracker/internal/middleware"
	"github.com/HITENDRAPAL3/Backend-ExpenseTracker/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// ExpenseHandler handles expense CRUD requests
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// ExpenseRequest represents the create/update expense request body
type ExpenseRequest struct {
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Date        string `json:"date"`
	CategoryID  int64  `json:"categoryId"`
}

// ExpenseResponse represents an expense in API responses
type ExpenseResponse struct {
	ID           int64  `json:"id"`
	Description  string `json:"description"`
	Amount       string `json:"amount"`
	Date         string `json:"date"`
	CategoryID   int64  `json:"categoryId"`
	CategoryName string `json:"categoryName"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

func toExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:           e.ID,
		Description:  e.Description,
		Amount:       e.Amount.String(),
		Date:         e.Date.Format(dateLayout),
		CategoryID:   e.CategoryID,
		CategoryName: e.CategoryName,
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    e.UpdatedAt.Format(time.RFC3339),
	}
}

// parseExpenseInput validates the request body into a service input.
// A non-nil error response has already been written when err is non-nil.
func parseExpenseInput(c echo.Context, req ExpenseRequest) (service.ExpenseInput, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return service.ExpenseInput{}, NewValidationError(c, "Invalid amount", []ValidationError{
			{Field: "amount", Message: "Must be a valid decimal number"},
		})
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return service.ExpenseInput{}, NewValidationError(c, "Invalid date", []ValidationError{
			{Field: "date", Message: "Must be in YYYY-MM-DD format"},
		})
	}

	return service.ExpenseInput{
		Description: req.Description,
		Amount:      amount,
		Date:        date,
		CategoryID:  req.CategoryID,
	}, nil
}

func expenseServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidDescription):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "description", Message: "Description must be between 2 and 255 characters"},
		})
	case errors.Is(err, domain.ErrInvalidAmount):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "amount", Message: "Amount must be positive with at most two decimal places"},
		})
	case errors.Is(err, domain.ErrCategoryRequired), errors.Is(err, domain.ErrCategoryNotFound):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "categoryId", Message: "Category not found"},
		})
	case errors.Is(err, domain.ErrDateRequired):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "date", Message: "Date is required"},
		})
	case errors.Is(err, domain.ErrExpenseNotFound):
		return NewNotFoundError(c, "Expense not found")
	default:
		log.Error().Err(err).Msg("Expense operation failed")
		return NewInternalError(c, "Expense operation failed")
	}
}

// CreateExpense creates a new expense for the authenticated user
func (h *ExpenseHandler) CreateExpense(c echo.Context) error {
	userID := middleware.GetUserID(c)

	var req ExpenseRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input, respErr := parseExpenseInput(c, req)
	if respErr != nil {
		return respErr
	}

	expense, err := h.expenseService.CreateExpense(userID, input)
	if err != nil {
		return expenseServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, toExpenseResponse(expense))
}

// GetExpenses lists the authenticated user's expenses with optional filters
func (h *ExpenseHandler) GetExpenses(c echo.Context) error {
	userID := middleware.GetUserID(c)

	filters, respErr := parseFilters(c)
	if respErr != nil {
		return respErr
	}

	expenses, err := h.expenseService.GetExpenses(userID, filters)
	if err != nil {
		return expenseServiceError(c, err)
	}

	responses := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		responses = append(responses, toExpenseResponse(e))
	}
	return c.JSON(http.StatusOK, responses)
}

// GetExpense returns a single expense by ID
func (h *ExpenseHandler) GetExpense(c echo.Context) error {
	userID := middleware.GetUserID(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return NewValidationError(c, "Invalid expense ID", nil)
	}

	expense, err := h.expenseService.GetExpense(userID, id)
	if err != nil {
		return expenseServiceError(c, err)
	}

	return c.JSON(http.StatusOK, toExpenseResponse(expense))
}

// UpdateExpense updates an existing expense
func (h *ExpenseHandler) UpdateExpense(c echo.Context) error {
	userID := middleware.GetUserID(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return NewValidationError(c, "Invalid expense ID", nil)
	}

	var req ExpenseRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input, respErr := parseExpenseInput(c, req)
	if respErr != nil {
		return respErr
	}

	expense, err := h.expenseService.UpdateExpense(userID, id, input)
	if err != nil {
		return expenseServiceError(c, err)
	}

	return c.JSON(http.StatusOK, toExpenseResponse(expense))
}

// DeleteExpense removes an expense
func (h *ExpenseHandler) DeleteExpense(c echo.Context) error {
	userID := middleware.GetUserID(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return NewValidationError(c, "Invalid expense ID", nil)
	}

	if err := h.expenseService.DeleteExpense(userID, id); err != nil {
		return expenseServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// parseFilters reads the optional category and date-window query parameters
// shared by the listing, summary, and export endpoints.
func parseFilters(c echo.Context) (*domain.ExpenseFilters, error) {
	filters := &domain.ExpenseFilters{}

	if raw := c.QueryParam("categoryId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return nil, NewValidationError(c, "Invalid categoryId", []ValidationError{
				{Field: "categoryId", Message: "Must be a positive integer"},
			})
		}
		filters.CategoryID = &id
	}

	if raw := c.QueryParam("startDate"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, NewValidationError(c, "Invalid startDate", []ValidationError{
				{Field: "startDate", Message: "Must be in YYYY-MM-DD format"},
			})
		}
		filters.StartDate = &parsed
	}

	if raw := c.QueryParam("endDate"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			return nil, NewValidationError(c, "Invalid endDate", []ValidationError{
				{Field: "endDate", Message: "Must be in YYYY-MM-DD format"},
			})
		}
		filters.EndDate = &parsed
	}

	if filters.StartDate != nil && filters.EndDate != nil && filters.EndDate.Before(*filters.StartDate) {
		return nil, NewValidationError(c, "Invalid date range", []ValidationError{
			{Field: "endDate", Message: "Must not be before startDate"},
		})
	}

	return filters, nil
}
