package domain

import "errors"

// Domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrExpenseNotFound    = errors.New("expense not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrCategoryInUse      = errors.New("category has expenses and cannot be deleted")
	ErrUsernameTaken      = errors.New("username already registered")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")

	ErrInvalidDescription = errors.New("description must be between 2 and 255 characters")
	ErrInvalidAmount      = errors.New("amount must be greater than 0 with at most 2 decimal places")
	ErrCategoryRequired   = errors.New("category is required")
	ErrDateRequired       = errors.New("date is required")

	ErrUnsupportedFormat = errors.New("unsupported report format")
	ErrMailNotConfigured = errors.New("email service not configured, use report download instead")
)

// Validation constants
const (
	MinDescriptionLength = 2
	MaxDescriptionLength = 255
	MinPasswordLength    = 8
)
