// internal/email/mailer/organization.go
package mailer

import (
	"context"

	"github.com/dangerclosesec/trainhub/internal/email"
)

// OrganizationTemplateData is shared by the organization templates.
type OrganizationTemplateData struct {
	OrganizationName string
	Email            string
	DashboardLink    string
}

// SendOrganizationWelcome tells a newly registered organization that its
// account exists and is awaiting review.
func SendOrganizationWelcome(ctx context.Context, s email.Sender, to string, data OrganizationTemplateData) error {
	return s.SendEmail(ctx, email.EmailData{
		To:           to,
		Subject:      "Welcome to TrainHub",
		TemplateName: "organization_welcome",
		TemplateData: data,
	})
}

// SendOrganizationVerified announces a successful review.
func SendOrganizationVerified(ctx context.Context, s email.Sender, to string, data OrganizationTemplateData) error {
	return s.SendEmail(ctx, email.EmailData{
		To:           to,
		Subject:      "Your organization has been verified",
		TemplateName: "organization_verified",
		TemplateData: data,
	})
}

// SendOrganizationRejected announces a rejected review.
func SendOrganizationRejected(ctx context.Context, s email.Sender, to string, data OrganizationTemplateData) error {
	return s.SendEmail(ctx, email.EmailData{
		To:           to,
		Subject:      "Your organization verification was not approved",
		TemplateName: "organization_rejected",
		TemplateData: data,
	})
}
