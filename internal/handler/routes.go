package handler

import (
	"github.com/HITENDRAPAL3/Backend-ExpenseTracker/internal/middleware"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimiter *middleware.RateLimiter, authHandler *AuthHandler, expenseHandler *ExpenseHandler, categoryHandler *CategoryHandler, summaryHandler *SummaryHandler, exportHandler *ExportHandler, emailHandler *EmailHandler) {
	// API version 1
	api := e.Group("/api/v1")

	// Auth routes (public)
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Everything below requires a session token
	protected := api.Group("", authMiddleware.Authenticate(), middleware.RateLimitMiddleware(rateLimiter))

	protected.GET("/auth/me", authHandler.Me)

	// Expense routes
	protected.POST("/expenses", expenseHandler.CreateExpense)
	protected.GET("/expenses", expenseHandler.GetExpenses)
	protected.GET("/expenses/:id", expenseHandler.GetExpense)
	protected.PUT("/expenses/:id", expenseHandler.UpdateExpense)
	protected.DELETE("/expenses/:id", expenseHandler.DeleteExpense)

	// Category routes
	protected.GET("/categories", categoryHandler.GetCategories)
	protected.GET("/categories/:id", categoryHandler.GetCategory)
	protected.POST("/categories", categoryHandler.CreateCategory)
	protected.PUT("/categories/:id", categoryHandler.UpdateCategory)
	protected.DELETE("/categories/:id", categoryHandler.DeleteCategory)

	// Summary routes
	protected.GET("/summary/total", summaryHandler.GetTotal)
	protected.GET("/summary/by-category", summaryHandler.GetCategoryBreakdown)
	protected.GET("/summary/monthly", summaryHandler.GetMonthlyBreakdown)

	// Export routes
	protected.GET("/export/:format", exportHandler.Download)

	// Email report routes
	protected.POST("/email/send-report", emailHandler.SendReport)
	protected.GET("/email/download-report", emailHandler.DownloadReport)
}
