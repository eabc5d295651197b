// internal/service/training.go
package service

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/dangerclosesec/trainhub/internal/audit"
	"github.com/dangerclosesec/trainhub/internal/auth"
	"github.com/dangerclosesec/trainhub/internal/domain"
	"github.com/dangerclosesec/trainhub/internal/lifecycle"
	"github.com/dangerclosesec/trainhub/internal/model"
	"github.com/dangerclosesec/trainhub/internal/repository"
	"github.com/dangerclosesec/trainhub/internal/validation"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TrainingStores are the repositories the training use-cases touch.
type TrainingStores struct {
	Trainings    repository.TrainingRepositoryIface
	Orgs         repository.OrganizationRepositoryIface
	Freelancers  repository.FreelancerRepositoryIface
	Applications repository.ApplicationRepositoryIface
	Feedback     repository.FeedbackRepositoryIface
	Categories   repository.ReferenceRepositoryIface[model.TrainingCategory]
	Locations    repository.ReferenceRepositoryIface[model.TrainingLocation]
	Stacks       repository.ReferenceRepositoryIface[model.Stack]
}

type TrainingService struct {
	stores   TrainingStores
	audit    audit.Logger
	logger   *slog.Logger
	validate *validator.Validate
}

func NewTrainingService(stores TrainingStores, auditLogger audit.Logger, logger *slog.Logger) *TrainingService {
	return &TrainingService{
		stores:   stores,
		audit:    auditLogger,
		logger:   logger,
		validate: validation.New(),
	}
}

type CreateTrainingInput struct {
	Title          string             `json:"title" validate:"required"`
	Description    string             `json:"description" validate:"required"`
	Skills         []string           `json:"skills"`
	CategoryID     string             `json:"categoryId" validate:"required,uuid"`
	LocationID     string             `json:"locationId" validate:"required,uuid"`
	StackID        string             `json:"stackId" validate:"required,uuid"`
	OrganizationID string             `json:"organizationId" validate:"omitempty,uuid"`
	Type           model.TrainingType `json:"type" validate:"required,oneof=CORPORATE UNIVERSITY"`
	Mode           model.TrainingMode `json:"mode" validate:"required,oneof=ONLINE OFFLINE"`
	StartDate      time.Time          `json:"startDate" validate:"required"`
	EndDate        time.Time          `json:"endDate" validate:"required"`
	PaymentAmount  *float64           `json:"paymentAmount" validate:"omitempty,gte=0"`
	PaymentTerm    *string            `json:"paymentTerm"`
}

func (in *CreateTrainingInput) normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.Type = model.TrainingType(strings.ToUpper(strings.TrimSpace(string(in.Type))))
	in.Mode = model.TrainingMode(strings.ToUpper(strings.TrimSpace(string(in.Mode))))
}

// Create posts a training for the caller's organization, or for
// organizationId when an administrator creates it. New trainings are
// unpublished and active.
func (s *TrainingService) Create(ctx context.Context, actor *auth.Principal, in CreateTrainingInput) (*model.Training, error) {
	in.normalize()
	if err := validation.Struct(s.validate, in); err != nil {
		return nil, err
	}
	if in.EndDate.Before(in.StartDate) {
		return nil, domain.ErrInvalidDateRange
	}

	orgID, err := s.resolveOrganization(ctx, actor, in.OrganizationID)
	if err != nil {
		return nil, err
	}

	t := &model.Training{
		Title:          in.Title,
		Description:    in.Description,
		Skills:         cleanSkills(in.Skills),
		CategoryID:     uuid.MustParse(in.CategoryID),
		LocationID:     uuid.MustParse(in.LocationID),
		StackID:        uuid.MustParse(in.StackID),
		OrganizationID: orgID,
		Type:           in.Type,
		Mode:           in.Mode,
		IsPublished:    false,
		IsActive:       true,
		StartDate:      in.StartDate,
		EndDate:        in.EndDate,
		PaymentAmount:  in.PaymentAmount,
		PaymentTerm:    trimmedPtr(in.PaymentTerm),
	}
	if err := s.checkReferences(ctx, t); err != nil {
		return nil, err
	}

	if err := s.stores.Trainings.Create(ctx, t); err != nil {
		return nil, err
	}

	record(ctx, s.audit, s.logger, audit.Entry{
		EntityType: model.EntityTraining,
		Action:     "create",
		EntityIDs:  []string{t.ID.String()},
		Details:    map[string]interface{}{"organizationId": orgID.String()},
	})
	return s.stores.Trainings.FindByID(ctx, t.ID)
}

// Get returns one training. Freelancers see published trainings only and
// organizations see their own only; anything else reads as not found.
func (s *TrainingService) Get(ctx context.Context, actor *auth.Principal, rawID string) (*model.Training, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	t, err := s.stores.Trainings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.visible(ctx, actor, t); err != nil {
		return nil, err
	}
	return t, nil
}

type TrainingFilter struct {
	Search         string
	CategoryID     string
	LocationID     string
	StackID        string
	OrganizationID string
	Type           string
	Mode           string
	IsPublished    string
	IsActive       string
}

func (s *TrainingService) List(ctx context.Context, actor *auth.Principal, filter TrainingFilter, page repository.Page) ([]*model.Training, Pagination, error) {
	f, err := filter.parse()
	if err != nil {
		return nil, Pagination{}, err
	}

	switch {
	case actor.HasRole(model.RoleFreelancer):
		published := true
		f.IsPublished = &published
	case actor.HasRole(model.RoleOrganization):
		org, err := s.stores.Orgs.FindByUserID(ctx, actor.UserID)
		if err != nil {
			return nil, Pagination{}, err
		}
		f.OrganizationID = &org.ID
	}

	items, total, err := s.stores.Trainings.FindAllPaginated(ctx, f, page)
	if err != nil {
		return nil, Pagination{}, err
	}
	return items, NewPagination(page, total), nil
}

func (f TrainingFilter) parse() (repository.TrainingFilter, error) {
	out := repository.TrainingFilter{Search: f.Search}

	ids := []struct {
		name string
		raw  string
		dst  **uuid.UUID
	}{
		{"categoryId", f.CategoryID, &out.CategoryID},
		{"locationId", f.LocationID, &out.LocationID},
		{"stackId", f.StackID, &out.StackID},
		{"organizationId", f.OrganizationID, &out.OrganizationID},
	}
	for _, p := range ids {
		if p.raw == "" {
			continue
		}
		id, err := uuid.Parse(p.raw)
		if err != nil {
			return out, invalidID(p.name, p.raw)
		}
		*p.dst = &id
	}

	if f.Type != "" {
		out.Type = model.TrainingType(strings.ToUpper(f.Type))
		if !out.Type.Valid() {
			return out, domain.Invalid("type must be one of: CORPORATE UNIVERSITY")
		}
	}
	if f.Mode != "" {
		out.Mode = model.TrainingMode(strings.ToUpper(f.Mode))
		if !out.Mode.Valid() {
			return out, domain.Invalid("mode must be one of: ONLINE OFFLINE")
		}
	}

	var err error
	if out.IsPublished, err = parseOptionalBool("isPublished", f.IsPublished); err != nil {
		return out, err
	}
	if out.IsActive, err = parseOptionalBool("isActive", f.IsActive); err != nil {
		return out, err
	}
	return out, nil
}

func parseOptionalBool(name, raw string) (*bool, error) {
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, domain.Invalid("%s must be true or false", name)
	}
	return &b, nil
}

// UpdateTrainingInput is a partial update; absent fields keep their current
// value. IsPublished and IsActive act as single transitions.
type UpdateTrainingInput struct {
	Title         *string             `json:"title" validate:"omitempty,min=1"`
	Description   *string             `json:"description" validate:"omitempty,min=1"`
	Skills        []string            `json:"skills"`
	CategoryID    *string             `json:"categoryId" validate:"omitempty,uuid"`
	LocationID    *string             `json:"locationId" validate:"omitempty,uuid"`
	StackID       *string             `json:"stackId" validate:"omitempty,uuid"`
	Type          *model.TrainingType `json:"type" validate:"omitempty,oneof=CORPORATE UNIVERSITY"`
	Mode          *model.TrainingMode `json:"mode" validate:"omitempty,oneof=ONLINE OFFLINE"`
	StartDate     *time.Time          `json:"startDate"`
	EndDate       *time.Time          `json:"endDate"`
	PaymentAmount *float64            `json:"paymentAmount" validate:"omitempty,gte=0"`
	PaymentTerm   *string             `json:"paymentTerm"`
	IsPublished   *bool               `json:"isPublished"`
	IsActive      *bool               `json:"isActive"`
}

func (s *TrainingService) Update(ctx context.Context, actor *auth.Principal, rawID string, in UpdateTrainingInput) (*model.Training, error) {
	trimFields(in.Title, in.Description)
	if err := validation.Struct(s.validate, in); err != nil {
		return nil, err
	}

	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	t, err := s.stores.Trainings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.canManage(ctx, actor, t); err != nil {
		return nil, err
	}

	t.Title = derefOr(in.Title, t.Title)
	t.Description = derefOr(in.Description, t.Description)
	if in.Skills != nil {
		t.Skills = cleanSkills(in.Skills)
	}

	refsChanged := false
	for _, p := range []struct {
		raw *string
		dst *uuid.UUID
	}{
		{in.CategoryID, &t.CategoryID},
		{in.LocationID, &t.LocationID},
		{in.StackID, &t.StackID},
	} {
		if p.raw == nil {
			continue
		}
		if next := uuid.MustParse(*p.raw); next != *p.dst {
			*p.dst = next
			refsChanged = true
		}
	}

	t.Type = derefOr(in.Type, t.Type)
	t.Mode = derefOr(in.Mode, t.Mode)
	t.StartDate = derefOr(in.StartDate, t.StartDate)
	t.EndDate = derefOr(in.EndDate, t.EndDate)
	if t.EndDate.Before(t.StartDate) {
		return nil, domain.ErrInvalidDateRange
	}
	if in.PaymentAmount != nil {
		t.PaymentAmount = in.PaymentAmount
	}
	if in.PaymentTerm != nil {
		t.PaymentTerm = trimmedPtr(in.PaymentTerm)
	}
	t.IsPublished = derefOr(in.IsPublished, t.IsPublished)
	t.IsActive = derefOr(in.IsActive, t.IsActive)

	if refsChanged {
		if err := s.checkReferences(ctx, t); err != nil {
			return nil, err
		}
	}

	if err := s.stores.Trainings.Update(ctx, t); err != nil {
		return nil, err
	}

	record(ctx, s.audit, s.logger, audit.Entry{
		EntityType: model.EntityTraining,
		Action:     "update",
		EntityIDs:  []string{t.ID.String()},
	})
	return s.stores.Trainings.FindByID(ctx, t.ID)
}

// Bulk applies one action to many trainings. Organizations may only target
// their own trainings, and maintainers may not delete.
func (s *TrainingService) Bulk(ctx context.Context, actor *auth.Principal, ids []string, action string) (*lifecycle.BulkResult, error) {
	req, err := lifecycle.ParseBulk(lifecycle.Trainings, ids, action)
	if err != nil {
		return nil, err
	}

	switch {
	case actor.HasRole(model.RoleOrganization):
		org, err := s.stores.Orgs.FindByUserID(ctx, actor.UserID)
		if err != nil {
			return nil, err
		}
		owned, err := s.stores.Trainings.FindOwnedIDs(ctx, org.ID, req.IDs)
		if err != nil {
			return nil, err
		}
		if missing := lifecycle.MissingIDs(req.IDs, owned); len(missing) > 0 {
			return nil, domain.ErrTrainingNotFound.WithDetails(missing...)
		}
	case req.Action == lifecycle.Delete && !actor.HasRole(model.RoleAdmin):
		return nil, domain.ErrAdminOnly
	}

	result, err := runBulk(ctx, lifecycle.Trainings, req, s.stores.Trainings.ApplyTransition, s.stores.Trainings.DeleteCascade)
	if err != nil {
		return nil, err
	}

	record(ctx, s.audit, s.logger, audit.Entry{
		EntityType: model.EntityTraining,
		Action:     string(req.Action),
		EntityIDs:  idStrings(req.IDs),
		Details:    map[string]interface{}{"affected": result.Affected},
	})
	return result, nil
}

// Delete removes one training with its applications and feedback.
func (s *TrainingService) Delete(ctx context.Context, actor *auth.Principal, rawID string) (*lifecycle.BulkResult, error) {
	return s.Bulk(ctx, actor, []string{rawID}, string(lifecycle.Delete))
}

func (s *TrainingService) resolveOrganization(ctx context.Context, actor *auth.Principal, raw string) (uuid.UUID, error) {
	switch {
	case actor.HasRole(model.RoleOrganization):
		org, err := s.stores.Orgs.FindByUserID(ctx, actor.UserID)
		if err != nil {
			return uuid.Nil, err
		}
		if raw != "" && raw != org.ID.String() {
			return uuid.Nil, domain.ErrNotOwner
		}
		return org.ID, nil
	case actor.HasRole(model.RoleAdmin):
		if raw == "" {
			return uuid.Nil, domain.Invalid("organizationId is required")
		}
		org, err := s.stores.Orgs.FindByID(ctx, uuid.MustParse(raw))
		if err != nil {
			return uuid.Nil, err
		}
		return org.ID, nil
	default:
		return uuid.Nil, domain.ErrNotOwner
	}
}

func (s *TrainingService) checkReferences(ctx context.Context, t *model.Training) error {
	if _, err := s.stores.Categories.FindByID(ctx, t.CategoryID); err != nil {
		return err
	}
	if _, err := s.stores.Locations.FindByID(ctx, t.LocationID); err != nil {
		return err
	}
	if _, err := s.stores.Stacks.FindByID(ctx, t.StackID); err != nil {
		return err
	}
	return nil
}

// visible hides unpublished trainings from freelancers and foreign trainings
// from organizations.
func (s *TrainingService) visible(ctx context.Context, actor *auth.Principal, t *model.Training) error {
	switch {
	case actor.HasRole(model.RoleFreelancer):
		if !t.IsPublished {
			return domain.ErrTrainingNotFound
		}
	case actor.HasRole(model.RoleOrganization):
		org, err := s.stores.Orgs.FindByUserID(ctx, actor.UserID)
		if err != nil {
			return err
		}
		if org.ID != t.OrganizationID {
			return domain.ErrTrainingNotFound
		}
	}
	return nil
}

// canManage allows administrators and the owning organization.
func (s *TrainingService) canManage(ctx context.Context, actor *auth.Principal, t *model.Training) error {
	switch {
	case actor.HasRole(model.RoleAdmin):
		return nil
	case actor.HasRole(model.RoleOrganization):
		org, err := s.stores.Orgs.FindByUserID(ctx, actor.UserID)
		if err != nil {
			return err
		}
		if org.ID == t.OrganizationID {
			return nil
		}
	}
	return domain.ErrNotOwner
}
