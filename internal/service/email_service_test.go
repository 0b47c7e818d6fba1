package service

import (
	"strings"
	"testing"
	"time"

	"github.com/HITENDRAPAL3/Backend-ExpenseTracker/internal/domain"
	"github.com/HITENDRAPAL3/Backend-ExpenseTracker/internal/report"
	"github.com/HITENDRAPAL3/Backend-ExpenseTracker/internal/testutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type fakeSender struct {
	to      string
	subject string
	body    []byte
	err     error
}

func (f *fakeSender) Send(to, subject string, htmlBody []byte) error {
	f.to = to
	f.subject = subject
	f.body = htmlBody
	return f.err
}

func newEmailFixture(sender Sender) (*EmailService, *testutil.MockExpenseRepository, uuid.UUID) {
	userRepo := testutil.NewMockUserRepository()
	expenseRepo := testutil.NewMockExpenseRepository()
	user := &domain.User{ID: uuid.New(), Username: "hitendra", Email: "hitendra@example.com"}
	userRepo.AddUser(user)

	reportService := NewReportService(expenseRepo, userRepo, report.NewEngine())
	return NewEmailService(reportService, userRepo, sender), expenseRepo, user.ID
}

func TestSendReport_Success(t *testing.T) {
	sender := &fakeSender{}
	svc, expenseRepo, userID := newEmailFixture(sender)

	expenseRepo.AddExpense(&domain.Expense{
		UserID:       userID,
		Description:  "Lunch",
		Amount:       decimal.RequireFromString("50.00"),
		Date:         time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		CategoryID:   1,
		CategoryName: "Food & Dining",
	})

	if err := svc.SendReport(userID, nil); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if sender.to != "hitendra@example.com" {
		t.Errorf("Expected delivery to registered address, got %q", sender.to)
	}
	if sender.subject != "Expense Report: All Time Summary" {
		t.Errorf("Unexpected subject %q", sender.subject)
	}
	if !strings.Contains(string(sender.body), "Food & Dining") {
		t.Error("Report body missing expense data")
	}
}

func TestSendReport_SubjectWithWindow(t *testing.T) {
	sender := &fakeSender{}
	svc, _, userID := newEmailFixture(sender)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	if err := svc.SendReport(userID, &domain.ExpenseFilters{StartDate: &start, EndDate: &end}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if sender.subject != "Expense Report: 2024-01-01 to 2024-01-31" {
		t.Errorf("Unexpected subject %q", sender.subject)
	}
}

func TestSendReport_NotConfigured(t *testing.T) {
	svc, _, userID := newEmailFixture(nil)

	if err := svc.SendReport(userID, nil); err != domain.ErrMailNotConfigured {
		t.Errorf("Expected ErrMailNotConfigured, got %v", err)
	}
}

func TestDownloadReport_WorksWithoutSender(t *testing.T) {
	svc, _, userID := newEmailFixture(nil)

	export, err := svc.DownloadReport(userID, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if export.ContentType != "text/html" || export.Filename != "expense-report.html" {
		t.Errorf("Unexpected export metadata %+v", export)
	}
	if !strings.Contains(string(export.Data), "Expense Report") {
		t.Error("Download missing report content")
	}
}
