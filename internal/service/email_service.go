package service

import (
	"github.com/HITENDRAPAL3/Backend-ExpenseTracker/internal/domain"
	"github.com/HITENDRAPAL3/Backend-ExpenseTracker/internal/report"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

// Sender delivers a rendered HTML report to a recipient. Implementations own
// the transport; the service only produces bytes and a subject.
type Sender interface {
	Send(to, subject string, htmlBody []byte) error
}

// EmailService renders the HTML expense report and hands it to a Sender, or
// returns it directly for download. Both paths share one render.
type EmailService struct {
	reportService *ReportService
	userRepo      domain.UserRepository
	sender        Sender
}

// NewEmailService creates a new EmailService. sender may be nil when SMTP is
// not configured; SendReport then fails with ErrMailNotConfigured while
// DownloadReport keeps working.
func NewEmailService(reportService *ReportService, userRepo domain.UserRepository, sender Sender) *EmailService {
	return &EmailService{
		reportService: reportService,
		userRepo:      userRepo,
		sender:        sender,
	}
}

// SendReport emails the HTML report for the window to the user's registered
// address.
func (s *EmailService) SendReport(userID uuid.UUID, filters *domain.ExpenseFilters) error {
	if s.sender == nil {
		return domain.ErrMailNotConfigured
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return err
	}

	export, err := s.reportService.GenerateExport(userID, filters, domain.FormatHTML)
	if err != nil {
		return err
	}

	subject := report.BuildSubject(filters)
	if err := s.sender.Send(user.Email, subject, export.Data); err != nil {
		return err
	}

	log.Info().
		Str("email", user.Email).
		Str("subject", subject).
		Msg("Expense report sent")
	return nil
}

// DownloadReport returns the HTML report for direct download
func (s *EmailService) DownloadReport(userID uuid.UUID, filters *domain.ExpenseFilters) (*Export, error) {
	return s.reportService.GenerateExport(userID, filters, domain.FormatHTML)
}

// SMTPSender delivers reports over SMTP
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPSender creates a Sender backed by the given SMTP server
func NewSMTPSender(host string, port int, username, password, from string) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// Send implements Sender
func (s *SMTPSender) Send(to, subject string, htmlBody []byte) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", string(htmlBody))
	return s.dialer.DialAndSend(m)
}
