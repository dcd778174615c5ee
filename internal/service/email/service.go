package email

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/resend/resend-go/v3"
	"go.uber.org/zap"

	"legacy-booth/internal/config"
	"legacy-booth/internal/domain"
)

var (
	ErrNoFamilyContact = errors.New("resident has no family contact email")
	ErrEmptyMessage    = errors.New("message is empty")
)

//go:embed templates/*.html
var templateFS embed.FS

type Service interface {
	SendFamilyMessage(ctx context.Context, resident domain.Resident, subject, message string) error
	SendGreeting(ctx context.Context, resident domain.Resident, occasion, note string, video *domain.VideoRef) error
}

// sender is the part of the Resend client the service uses.
type sender interface {
	Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

type service struct {
	sender    sender
	fromEmail string
	logger    *zap.Logger
}

func NewService(cfg *config.Config, logger *zap.Logger) Service {
	var s sender
	if cfg.ResendAPIKey != "" {
		s = resend.NewClient(cfg.ResendAPIKey).Emails
	} else {
		s = &logSender{logger: logger}
	}
	return newService(s, cfg.FromEmail, logger)
}

func newService(s sender, fromEmail string, logger *zap.Logger) *service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{sender: s, fromEmail: fromEmail, logger: logger}
}

type letter struct {
	Title        string
	ResidentName string
	ContactName  string
	Message      string
	Occasion     string
	Note         string
	VideoURL     string
}

func (s *service) sendEmail(toEmail, subject, templateName string, data letter) error {
	tmpl, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+templateName)
	if err != nil {
		return fmt.Errorf("failed to parse email templates: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.ExecuteTemplate(&body, "layout", data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("The Legacy Booth <%s>", s.fromEmail),
		To:      []string{toEmail},
		Html:    body.String(),
		Subject: subject,
	}

	if _, err := s.sender.Send(params); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func contactName(r domain.Resident) string {
	if r.FamilyContactName != nil && *r.FamilyContactName != "" {
		return *r.FamilyContactName
	}
	return "family"
}

func (s *service) SendFamilyMessage(ctx context.Context, resident domain.Resident, subject, message string) error {
	if !resident.HasFamilyEmail() {
		return ErrNoFamilyContact
	}
	if strings.TrimSpace(message) == "" {
		return ErrEmptyMessage
	}
	if subject == "" {
		subject = fmt.Sprintf("A message from %s", resident.Name)
	}

	data := letter{
		Title:        subject,
		ResidentName: resident.Name,
		ContactName:  contactName(resident),
		Message:      message,
	}
	if err := s.sendEmail(*resident.FamilyContactEmail, subject, "family_message.html", data); err != nil {
		return err
	}

	s.logger.Info("family message sent", zap.String("resident_id", resident.ID))
	return nil
}

func (s *service) SendGreeting(ctx context.Context, resident domain.Resident, occasion, note string, video *domain.VideoRef) error {
	if !resident.HasFamilyEmail() {
		return ErrNoFamilyContact
	}
	if occasion == "" {
		occasion = "special"
	}

	data := letter{
		Title:        fmt.Sprintf("A %s greeting from %s", occasion, resident.Name),
		ResidentName: resident.Name,
		ContactName:  contactName(resident),
		Occasion:     occasion,
		Note:         note,
	}
	if video != nil {
		data.VideoURL = video.URL
	}
	if err := s.sendEmail(*resident.FamilyContactEmail, data.Title, "greeting.html", data); err != nil {
		return err
	}

	s.logger.Info("greeting sent", zap.String("resident_id", resident.ID), zap.String("occasion", occasion))
	return nil
}

// logSender stands in for Resend when no API key is configured.
type logSender struct {
	logger *zap.Logger
}

func (l *logSender) Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	l.logger.Info("email not sent, RESEND_API_KEY is empty",
		zap.Strings("to", params.To),
		zap.String("subject", params.Subject),
	)
	return &resend.SendEmailResponse{}, nil
}
