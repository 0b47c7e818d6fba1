package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/HITENDRAPAL3/Backend-ExpenseTracker/internal/domain"
	"github.com/HITENDRAPAL3/Backend-ExpenseTracker/internal/middleware"
	"github.com/HITENDRAPAL3/Backend-ExpenseTracker/internal/service"
	"github.com/HITENDRAPAL3/Backend-ExpenseTracker/internal/testutil"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// setupAuthContext injects an authenticated user into the request context
func setupAuthContext(c echo.Context, userID uuid.UUID, username string) {
	ctx := context.WithValue(c.Request().Context(), middleware.UserIDKey, userID)
	ctx = context.WithValue(ctx, middleware.UsernameKey, username)
	c.SetRequest(c.Request().WithContext(ctx))
}

func newExpenseHandlerFixture() (*ExpenseHandler, *testutil.MockExpenseRepository, *testutil.MockCategoryRepository) {
	expenseRepo := testutil.NewMockExpenseRepository()
	categoryRepo := testutil.NewMockCategoryRepository()
	expenseService := service.NewExpenseService(expenseRepo, categoryRepo)
	return NewExpenseHandler(expenseService), expenseRepo, categoryRepo
}

func TestCreateExpenseHandler_Success(t *testing.T) {
	e := echo.New()
	handler, _, categoryRepo := newExpenseHandlerFixture()
	categoryRepo.AddCategory(&domain.Category{ID: 1, Name: "Food & Dining"})

	userID := uuid.New()
	body := `{"description":"Lunch","amount":"12.50","date":"2026-08-15","categoryId":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/expenses", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, userID, "alice")

	if err := handler.CreateExpense(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp ExpenseResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if resp.Description != "Lunch" {
		t.Errorf("Expected description 'Lunch', got %q", resp.Description)
	}
	if resp.Amount != "12.5" {
		t.Errorf("Expected amount '12.5', got %q", resp.Amount)
	}
	if resp.CategoryName != "Food & Dining" {
		t.Errorf("Expected category name 'Food & Dining', got %q", resp.CategoryName)
	}
}

func TestCreateExpenseHandler_InvalidAmount(t *testing.T) {
	e := echo.New()
	handler, _, categoryRepo := newExpenseHandlerFixture()
	categoryRepo.AddCategory(&domain.Category{ID: 1, Name: "Food & Dining"})

	body := `{"description":"Lunch","amount":"abc","date":"2026-08-15","categoryId":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/expenses", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, uuid.New(), "alice")

	if err := handler.CreateExpense(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}

	var problem ProblemDetails
	if err := json.Unmarshal(rec.Body.Bytes(), &problem); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if problem.Type != ErrorTypeValidation {
		t.Errorf("Expected validation problem type, got %q", problem.Type)
	}
}

func TestGetExpensesHandler_FilterValidation(t *testing.T) {
	e := echo.New()
	handler, _, _ := newExpenseHandlerFixture()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/expenses?startDate=2026-08-31&endDate=2026-08-01", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, uuid.New(), "alice")

	if err := handler.GetExpenses(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for inverted range, got %d", rec.Code)
	}
}

func TestGetExpensesHandler_ScopedToUser(t *testing.T) {
	e := echo.New()
	handler, expenseRepo, categoryRepo := newExpenseHandlerFixture()
	categoryRepo.AddCategory(&domain.Category{ID: 1, Name: "Travel"})

	owner := uuid.New()
	other := uuid.New()
	expenseRepo.AddExpense(&domain.Expense{
		UserID:       owner,
		Description:  "Train ticket",
		Amount:       decimal.NewFromFloat(45.00),
		Date:         time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
		CategoryID:   1,
		CategoryName: "Travel",
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/expenses", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	setupAuthContext(c, other, "bob")

	if err := handler.GetExpenses(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var resp []ExpenseResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if len(resp) != 0 {
		t.Errorf("Expected no expenses for other user, got %d", len(resp))
	}
}

func TestDeleteExpenseHandler_NotFound(t *testing.T) {
	e := echo.New()
	handler, _, _ := newExpenseHandlerFixture()

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/expenses/99", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99")
	setupAuthContext(c, uuid.New(), "alice")

	if err := handler.DeleteExpense(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}
