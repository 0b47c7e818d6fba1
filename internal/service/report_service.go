package service

import (
	"github.com/HITENDRAPAL3/Backend-ExpenseTracker/internal/domain"
	"github.com/HITENDRAPAL3/Backend-ExpenseTracker/internal/report"
	"github.com/google/uuid"
)

// Export is a fully rendered report document ready to hand to the transport
// layer.
type Export struct {
	Data        []byte
	ContentType string
	Filename    string
}

// ReportService fetches a user's filtered expenses and hands them to the
// reporting engine.
type ReportService struct {
	expenseRepo domain.ExpenseRepository
	userRepo    domain.UserRepository
	engine      *report.Engine
}

// NewReportService creates a new ReportService
func NewReportService(expenseRepo domain.ExpenseRepository, userRepo domain.UserRepository, engine *report.Engine) *ReportService {
	return &ReportService{
		expenseRepo: expenseRepo,
		userRepo:    userRepo,
		engine:      engine,
	}
}

// GenerateExport renders the user's expenses in the requested format
func (s *ReportService) GenerateExport(userID uuid.UUID, filters *domain.ExpenseFilters, format domain.ReportFormat) (*Export, error) {
	contentType, err := report.ContentType(format)
	if err != nil {
		return nil, err
	}
	filename, err := report.Filename(format)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	expenses, err := s.expenseRepo.GetByUser(userID, filters)
	if err != nil {
		return nil, err
	}

	data, err := s.engine.Generate(user.Username, expenses, filters, format)
	if err != nil {
		return nil, err
	}

	return &Export{
		Data:        data,
		ContentType: contentType,
		Filename:    filename,
	}, nil
}
