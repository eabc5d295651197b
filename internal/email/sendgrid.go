package email

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// sendWithSendgrid delivers one message through the v3 mail API. The
// template name is sent as a category so delivery stats split per message
// kind.
func (s *Service) sendWithSendgrid(ctx context.Context, data EmailData, htmlContent, textContent string) error {
	message := mail.NewSingleEmail(
		mail.NewEmail(data.FromName, data.From),
		data.Subject,
		mail.NewEmail("", data.To),
		textContent,
		htmlContent,
	)
	if data.TemplateName != "" {
		message.AddCategories(data.TemplateName)
	}

	resp, err := s.sendgridClient.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sending %s via sendgrid: %w", data.TemplateName, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("sendgrid rejected %s: status %d: %s", data.TemplateName, resp.StatusCode, resp.Body)
	}
	return nil
}
