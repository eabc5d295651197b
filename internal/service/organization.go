// internal/service/organization.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dangerclosesec/trainhub/internal/audit"
	"github.com/dangerclosesec/trainhub/internal/auth"
	"github.com/dangerclosesec/trainhub/internal/config"
	"github.com/dangerclosesec/trainhub/internal/domain"
	"github.com/dangerclosesec/trainhub/internal/email"
	"github.com/dangerclosesec/trainhub/internal/email/mailer"
	"github.com/dangerclosesec/trainhub/internal/lifecycle"
	"github.com/dangerclosesec/trainhub/internal/model"
	"github.com/dangerclosesec/trainhub/internal/repository"
	"github.com/dangerclosesec/trainhub/internal/validation"
	"github.com/go-playground/validator/v10"
)

type OrganizationService struct {
	users    repository.UserRepositoryIface
	orgs     repository.OrganizationRepositoryIface
	hasher   *auth.PasswordHasher
	mailer   email.Sender
	audit    audit.Logger
	logger   *slog.Logger
	validate *validator.Validate
	baseURL  string
}

func NewOrganizationService(
	users repository.UserRepositoryIface,
	orgs repository.OrganizationRepositoryIface,
	hasher *auth.PasswordHasher,
	mailer email.Sender,
	auditLogger audit.Logger,
	cfg *config.Config,
	logger *slog.Logger,
) *OrganizationService {
	return &OrganizationService{
		users:    users,
		orgs:     orgs,
		hasher:   hasher,
		mailer:   mailer,
		audit:    auditLogger,
		logger:   logger,
		validate: validation.New(),
		baseURL:  cfg.BaseURL,
	}
}

// CreateOrganizationInput registers an organization login and its profile.
// The login email must be a business address; the contact email only needs
// to be well formed.
type CreateOrganizationInput struct {
	Email            string  `json:"email" validate:"required,email_format,business_email"`
	Password         string  `json:"password" validate:"omitempty,min=8"`
	Name             *string `json:"name"`
	Phone            *string `json:"phone"`
	OrganizationName string  `json:"organizationName" validate:"required"`
	Website          *string `json:"website"`
	ContactMail      string  `json:"contactMail" validate:"required,email_format"`
	CompanyLocation  string  `json:"companyLocation" validate:"required"`
	Logo             *string `json:"logo"`
}

func (in *CreateOrganizationInput) normalize() {
	in.Email = validation.NormalizeEmail(in.Email)
	in.OrganizationName = strings.TrimSpace(in.OrganizationName)
	in.ContactMail = strings.TrimSpace(in.ContactMail)
	in.CompanyLocation = strings.TrimSpace(in.CompanyLocation)
}

// Create inserts the user and profile in one transaction and sends the
// welcome email. The profile starts PENDING and ACTIVE.
func (s *OrganizationService) Create(ctx context.Context, in CreateOrganizationInput) (*model.OrganizationProfile, error) {
	in.normalize()
	if err := validation.Struct(s.validate, in); err != nil {
		return nil, err
	}

	user := &model.User{
		Email: in.Email,
		Role:  model.RoleOrganization,
		Name:  trimmedPtr(in.Name),
		Phone: trimmedPtr(in.Phone),
	}
	if in.Password != "" {
		hash, err := s.hasher.Hash(in.Password)
		if err != nil {
			return nil, fmt.Errorf("hashing password: %w", err)
		}
		user.PasswordHash = hash
	}

	profile := &model.OrganizationProfile{
		OrganizationName: in.OrganizationName,
		Website:          trimmedPtr(in.Website),
		ContactMail:      in.ContactMail,
		Phone:            trimmedPtr(in.Phone),
		CompanyLocation:  in.CompanyLocation,
		Logo:             trimmedPtr(in.Logo),
		VerifiedStatus:   model.VerifiedPending,
		ActiveStatus:     model.StatusActive,
	}

	if err := s.users.CreateWithProfile(ctx, user, profile); err != nil {
		return nil, err
	}

	created, err := s.orgs.FindByID(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, mailer.SendOrganizationWelcome, created)
	record(ctx, s.audit, s.logger, audit.Entry{
		EntityType: model.EntityOrganization,
		Action:     "create",
		EntityIDs:  []string{created.ID.String()},
		Details:    map[string]interface{}{"email": user.Email},
	})

	return created, nil
}

// Get returns one organization. An organization caller may only read its
// own profile.
func (s *OrganizationService) Get(ctx context.Context, actor *auth.Principal, rawID string) (*model.OrganizationProfile, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	org, err := s.orgs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(actor, org); err != nil {
		return nil, err
	}
	return org, nil
}

// Me returns the caller's own organization profile.
func (s *OrganizationService) Me(ctx context.Context, actor *auth.Principal) (*model.OrganizationProfile, error) {
	return s.orgs.FindByUserID(ctx, actor.UserID)
}

type OrganizationFilter struct {
	Search             string
	VerificationStatus string
	ActiveStatus       string
}

func (s *OrganizationService) List(ctx context.Context, filter OrganizationFilter, page repository.Page) ([]*model.OrganizationProfile, Pagination, error) {
	f := repository.OrganizationFilter{Search: filter.Search}
	if filter.VerificationStatus != "" {
		v := model.VerifiedStatus(strings.ToUpper(filter.VerificationStatus))
		if !v.Valid() {
			return nil, Pagination{}, domain.ErrInvalidStatus.WithDetails("verificationStatus")
		}
		f.VerificationStatus = v
	}
	if filter.ActiveStatus != "" {
		a := model.ActiveStatus(strings.ToUpper(filter.ActiveStatus))
		if !a.Valid() {
			return nil, Pagination{}, domain.ErrInvalidStatus.WithDetails("activeStatus")
		}
		f.ActiveStatus = a
	}

	orgs, total, err := s.orgs.FindAllPaginated(ctx, f, page)
	if err != nil {
		return nil, Pagination{}, err
	}
	return orgs, NewPagination(page, total), nil
}

// UpdateOrganizationInput is a partial update; absent fields keep their
// current value. Status fields are honored for administrators only.
type UpdateOrganizationInput struct {
	OrganizationName *string               `json:"organizationName" validate:"omitempty,min=1"`
	Website          *string               `json:"website"`
	ContactMail      *string               `json:"contactMail" validate:"omitempty,email_format"`
	Phone            *string               `json:"phone"`
	CompanyLocation  *string               `json:"companyLocation" validate:"omitempty,min=1"`
	Logo             *string               `json:"logo"`
	VerifiedStatus   *model.VerifiedStatus `json:"verifiedStatus"`
	ActiveStatus     *model.ActiveStatus   `json:"activeStatus"`
}

func (s *OrganizationService) Update(ctx context.Context, actor *auth.Principal, rawID string, in UpdateOrganizationInput) (*model.OrganizationProfile, error) {
	trimFields(in.OrganizationName, in.ContactMail, in.CompanyLocation)
	if err := validation.Struct(s.validate, in); err != nil {
		return nil, err
	}

	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	org, err := s.orgs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(actor, org); err != nil {
		return nil, err
	}

	if (in.VerifiedStatus != nil || in.ActiveStatus != nil) && !actor.HasRole(model.RoleAdmin) {
		return nil, domain.ErrAdminOnly
	}
	if in.VerifiedStatus != nil && !in.VerifiedStatus.Valid() {
		return nil, domain.ErrInvalidStatus.WithDetails("verifiedStatus")
	}
	if in.ActiveStatus != nil && !in.ActiveStatus.Valid() {
		return nil, domain.ErrInvalidStatus.WithDetails("activeStatus")
	}

	previous := org.VerifiedStatus

	org.OrganizationName = derefOr(in.OrganizationName, org.OrganizationName)
	org.ContactMail = derefOr(in.ContactMail, org.ContactMail)
	org.CompanyLocation = derefOr(in.CompanyLocation, org.CompanyLocation)
	if in.Website != nil {
		org.Website = trimmedPtr(in.Website)
	}
	if in.Phone != nil {
		org.Phone = trimmedPtr(in.Phone)
	}
	if in.Logo != nil {
		org.Logo = trimmedPtr(in.Logo)
	}
	org.VerifiedStatus = derefOr(in.VerifiedStatus, org.VerifiedStatus)
	org.ActiveStatus = derefOr(in.ActiveStatus, org.ActiveStatus)

	if err := s.orgs.Update(ctx, org); err != nil {
		return nil, err
	}

	if org.VerifiedStatus != previous {
		s.notifyDecision(ctx, org)
	}
	record(ctx, s.audit, s.logger, audit.Entry{
		EntityType: model.EntityOrganization,
		Action:     "update",
		EntityIDs:  []string{org.ID.String()},
	})

	return org, nil
}

// Bulk applies one action to many organizations. Deleting is reserved for
// administrators; verify and reject notify each organization.
func (s *OrganizationService) Bulk(ctx context.Context, actor *auth.Principal, ids []string, action string) (*lifecycle.BulkResult, error) {
	req, err := lifecycle.ParseBulk(lifecycle.Organizations, ids, action)
	if err != nil {
		return nil, err
	}
	if req.Action == lifecycle.Delete && !actor.HasRole(model.RoleAdmin) {
		return nil, domain.ErrAdminOnly
	}

	result, err := runBulk(ctx, lifecycle.Organizations, req, s.orgs.ApplyTransition, s.orgs.DeleteCascade)
	if err != nil {
		return nil, err
	}

	if req.Action == lifecycle.Verify || req.Action == lifecycle.Reject {
		orgs, err := s.orgs.FindByIDs(ctx, req.IDs)
		if err != nil {
			s.logger.WarnContext(ctx, "could not load organizations for notification", "error", err)
		}
		for _, org := range orgs {
			s.notifyDecision(ctx, org)
		}
	}

	record(ctx, s.audit, s.logger, audit.Entry{
		EntityType: model.EntityOrganization,
		Action:     string(req.Action),
		EntityIDs:  idStrings(req.IDs),
		Details:    map[string]interface{}{"affected": result.Affected},
	})
	return result, nil
}

// Delete removes one organization with its trainings, feedback and user.
func (s *OrganizationService) Delete(ctx context.Context, actor *auth.Principal, rawID string) (*lifecycle.BulkResult, error) {
	return s.Bulk(ctx, actor, []string{rawID}, string(lifecycle.Delete))
}

func (s *OrganizationService) authorize(actor *auth.Principal, org *model.OrganizationProfile) error {
	if actor.HasRole(model.RoleOrganization) && org.UserID != actor.UserID {
		return domain.ErrNotOwner
	}
	return nil
}

type organizationMail func(ctx context.Context, s email.Sender, to string, data mailer.OrganizationTemplateData) error

func (s *OrganizationService) notifyDecision(ctx context.Context, org *model.OrganizationProfile) {
	switch org.VerifiedStatus {
	case model.VerifiedVerified:
		s.notify(ctx, mailer.SendOrganizationVerified, org)
	case model.VerifiedRejected:
		s.notify(ctx, mailer.SendOrganizationRejected, org)
	}
}

// notify sends to the login email. Failures are logged only.
func (s *OrganizationService) notify(ctx context.Context, send organizationMail, org *model.OrganizationProfile) {
	if s.mailer == nil || org.User == nil {
		return
	}
	data := mailer.OrganizationTemplateData{
		OrganizationName: org.OrganizationName,
		Email:            org.User.Email,
		DashboardLink:    s.baseURL + "/organization/dashboard",
	}
	if err := send(ctx, s.mailer, org.User.Email, data); err != nil {
		s.logger.ErrorContext(ctx, "failed to send organization email",
			"organizationID", org.ID,
			"error", err,
		)
	}
}
