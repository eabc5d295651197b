package email

//go:generate mockgen -source=./service.go -destination=../mocks/mock_email_sender.go -package=mocks Sender

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"path"
	texttemplate "text/template"

	"github.com/dangerclosesec/trainhub"
	"github.com/dangerclosesec/trainhub/internal/config"
	"github.com/sendgrid/sendgrid-go"
)

var templateFS = trainhub.EmailFS

// Provider identifies supported email providers
type Provider string

const (
	ProviderSMTP     Provider = "smtp"
	ProviderSendgrid Provider = "sendgrid"
	// ProviderLog writes messages to the logger instead of delivering them.
	ProviderLog Provider = "log"

	DefaultTemplatePath = "templates/emails"
)

// Sender is what the services depend on.
type Sender interface {
	SendEmail(ctx context.Context, data EmailData) error
}

// EmailData contains all necessary information for sending an email
type EmailData struct {
	To           string
	From         string
	FromName     string
	Subject      string
	TemplateName string
	TemplateData interface{}
}

// Service handles email operations
type Service struct {
	config         *config.Config
	provider       Provider
	logger         *slog.Logger
	sendgridClient *sendgrid.Client
	Templates      map[string]*Template
}

type Template struct {
	HTML      *template.Template
	Plaintext *texttemplate.Template
}

// NewEmailService creates a new email service instance. Sendgrid without an
// API key falls back to the log provider.
func NewEmailService(cfg *config.Config, provider Provider, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch provider {
	case ProviderSendgrid:
		if cfg.Sendgrid.APIKey == "" {
			logger.Warn("SENDGRID_API_KEY not set, emails will only be logged")
			provider = ProviderLog
		}
	case ProviderSMTP, ProviderLog:
	default:
		return nil, fmt.Errorf("unsupported email provider: %s", provider)
	}

	s := &Service{
		config:    cfg,
		provider:  provider,
		logger:    logger,
		Templates: make(map[string]*Template),
	}

	if provider == ProviderSendgrid {
		s.sendgridClient = sendgrid.NewSendClient(cfg.Sendgrid.APIKey)
	}

	if err := s.loadTemplates(); err != nil {
		return nil, fmt.Errorf("loading email templates: %w", err)
	}

	return s, nil
}

// Provider reports the provider actually in use.
func (s *Service) Provider() Provider {
	return s.provider
}

// loadTemplates parses every directory under DefaultTemplatePath as one
// named template holding html.tmpl and plaintext.tmpl.
func (s *Service) loadTemplates() error {
	root, err := fs.Sub(templateFS, DefaultTemplatePath)
	if err != nil {
		return err
	}
	groups, err := fs.ReadDir(root, ".")
	if err != nil {
		return fmt.Errorf("reading %s: %w", DefaultTemplatePath, err)
	}

	for _, group := range groups {
		if !group.IsDir() {
			continue
		}
		tmpl, err := parseTemplateGroup(root, group.Name())
		if err != nil {
			return fmt.Errorf("template %s: %w", group.Name(), err)
		}
		s.Templates[group.Name()] = tmpl
	}

	if len(s.Templates) == 0 {
		return fmt.Errorf("no email templates under %s", DefaultTemplatePath)
	}
	return nil
}

func parseTemplateGroup(root fs.FS, name string) (*Template, error) {
	html, err := template.ParseFS(root, path.Join(name, "html.tmpl"))
	if err != nil {
		return nil, err
	}
	text, err := texttemplate.ParseFS(root, path.Join(name, "plaintext.tmpl"))
	if err != nil {
		return nil, err
	}
	return &Template{HTML: html, Plaintext: text}, nil
}

// SendEmail sends an email using the configured provider
func (s *Service) SendEmail(ctx context.Context, data EmailData) error {
	htmlContent, textContent, err := s.renderTemplate(data.TemplateName, data.TemplateData)
	if err != nil {
		return fmt.Errorf("rendering template: %w", err)
	}

	if data.FromName == "" {
		data.FromName = s.config.Email.FromName
	}

	switch s.provider {
	case ProviderSendgrid:
		if data.From == "" {
			data.From = s.config.Sendgrid.From
		}
		return s.sendWithSendgrid(ctx, data, htmlContent, textContent)
	case ProviderSMTP:
		if data.From == "" {
			data.From = s.config.SMTP.From
		}
		if data.From == "" {
			return fmt.Errorf("missing sender email address (From)")
		}
		return s.sendWithSMTP(data, htmlContent, textContent)
	case ProviderLog:
		s.logger.InfoContext(ctx, "email not delivered (log provider)",
			"to", data.To,
			"subject", data.Subject,
			"template", data.TemplateName,
			"body", textContent,
		)
		return nil
	default:
		return fmt.Errorf("unsupported email provider: %s", s.provider)
	}
}

func (s *Service) renderTemplate(name string, data interface{}) (html, text string, err error) {
	tmpl, ok := s.Templates[name]
	if !ok {
		return "", "", fmt.Errorf("template %s not found", name)
	}

	var buf bytes.Buffer
	if err := tmpl.HTML.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("executing %s html: %w", name, err)
	}
	html = buf.String()

	buf.Reset()
	if err := tmpl.Plaintext.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("executing %s plaintext: %w", name, err)
	}
	return html, buf.String(), nil
}
