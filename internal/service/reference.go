package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dangerclosesec/trainhub/internal/audit"
	"github.com/dangerclosesec/trainhub/internal/lifecycle"
	"github.com/dangerclosesec/trainhub/internal/model"
	"github.com/dangerclosesec/trainhub/internal/repository"
	"github.com/dangerclosesec/trainhub/internal/validation"
	"github.com/go-playground/validator/v10"
)

// ReferenceService covers the operations categories, locations and stacks
// share. Create and update are typed per entity below.
type ReferenceService[T model.Reference] struct {
	repo     repository.ReferenceRepositoryIface[T]
	policy   lifecycle.Policy
	audit    audit.Logger
	logger   *slog.Logger
	validate *validator.Validate
}

func newReferenceService[T model.Reference](repo repository.ReferenceRepositoryIface[T], policy lifecycle.Policy, auditLogger audit.Logger, logger *slog.Logger) *ReferenceService[T] {
	return &ReferenceService[T]{
		repo:     repo,
		policy:   policy,
		audit:    auditLogger,
		logger:   logger,
		validate: validation.New(),
	}
}

type ReferenceFilter struct {
	Search   string
	IsActive string
}

func (s *ReferenceService[T]) List(ctx context.Context, filter ReferenceFilter, page repository.Page) ([]*T, Pagination, error) {
	active, err := parseOptionalBool("isActive", filter.IsActive)
	if err != nil {
		return nil, Pagination{}, err
	}
	items, total, err := s.repo.FindAllPaginated(ctx, repository.ReferenceFilter{Search: filter.Search, IsActive: active}, page)
	if err != nil {
		return nil, Pagination{}, err
	}
	return items, NewPagination(page, total), nil
}

func (s *ReferenceService[T]) Get(ctx context.Context, rawID string) (*T, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// Bulk applies activate, deactivate or delete. Delete is refused for the
// whole batch when any target is still referenced by a training.
func (s *ReferenceService[T]) Bulk(ctx context.Context, ids []string, action string) (*lifecycle.BulkResult, error) {
	req, err := lifecycle.ParseBulk(s.policy, ids, action)
	if err != nil {
		return nil, err
	}
	result, err := runBulk(ctx, s.policy, req, s.repo.ApplyTransition, s.repo.Delete)
	if err != nil {
		return nil, err
	}

	record(ctx, s.audit, s.logger, audit.Entry{
		EntityType: s.policy.Entity,
		Action:     string(req.Action),
		EntityIDs:  idStrings(req.IDs),
		Details:    map[string]interface{}{"affected": result.Affected},
	})
	return result, nil
}

func (s *ReferenceService[T]) Delete(ctx context.Context, rawID string) (*lifecycle.BulkResult, error) {
	return s.Bulk(ctx, []string{rawID}, string(lifecycle.Delete))
}

func (s *ReferenceService[T]) create(ctx context.Context, item *T, id func(*T) string) (*T, error) {
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	record(ctx, s.audit, s.logger, audit.Entry{
		EntityType: s.policy.Entity,
		Action:     "create",
		EntityIDs:  []string{id(item)},
	})
	return item, nil
}

// update loads the row, lets apply change it and saves it back.
func (s *ReferenceService[T]) update(ctx context.Context, rawID string, apply func(*T)) (*T, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	apply(item)
	if err := s.repo.Update(ctx, id, item); err != nil {
		return nil, err
	}
	record(ctx, s.audit, s.logger, audit.Entry{
		EntityType: s.policy.Entity,
		Action:     "update",
		EntityIDs:  []string{id.String()},
	})
	return s.repo.FindByID(ctx, id)
}

// NamedReferenceInput creates a category or a stack. IsActive defaults to
// true.
type NamedReferenceInput struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

type UpdateNamedReferenceInput struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

type CategoryService struct {
	*ReferenceService[model.TrainingCategory]
}

func NewCategoryService(repo repository.ReferenceRepositoryIface[model.TrainingCategory], auditLogger audit.Logger, logger *slog.Logger) *CategoryService {
	return &CategoryService{newReferenceService(repo, lifecycle.Categories, auditLogger, logger)}
}

func (s *CategoryService) Create(ctx context.Context, in NamedReferenceInput) (*model.TrainingCategory, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validation.Struct(s.validate, in); err != nil {
		return nil, err
	}
	c := &model.TrainingCategory{
		Name:        in.Name,
		Description: trimmedPtr(in.Description),
		IsActive:    derefOr(in.IsActive, true),
	}
	return s.create(ctx, c, func(c *model.TrainingCategory) string { return c.ID.String() })
}

func (s *CategoryService) Update(ctx context.Context, rawID string, in UpdateNamedReferenceInput) (*model.TrainingCategory, error) {
	trimFields(in.Name)
	if err := validation.Struct(s.validate, in); err != nil {
		return nil, err
	}
	return s.update(ctx, rawID, func(c *model.TrainingCategory) {
		if in.Name != nil {
			c.Name = *in.Name
		}
		if in.Description != nil {
			c.Description = trimmedPtr(in.Description)
		}
		c.IsActive = derefOr(in.IsActive, c.IsActive)
	})
}

type StackService struct {
	*ReferenceService[model.Stack]
}

func NewStackService(repo repository.ReferenceRepositoryIface[model.Stack], auditLogger audit.Logger, logger *slog.Logger) *StackService {
	return &StackService{newReferenceService(repo, lifecycle.Stacks, auditLogger, logger)}
}

func (s *StackService) Create(ctx context.Context, in NamedReferenceInput) (*model.Stack, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validation.Struct(s.validate, in); err != nil {
		return nil, err
	}
	st := &model.Stack{
		Name:        in.Name,
		Description: trimmedPtr(in.Description),
		IsActive:    derefOr(in.IsActive, true),
	}
	return s.create(ctx, st, func(st *model.Stack) string { return st.ID.String() })
}

func (s *StackService) Update(ctx context.Context, rawID string, in UpdateNamedReferenceInput) (*model.Stack, error) {
	trimFields(in.Name)
	if err := validation.Struct(s.validate, in); err != nil {
		return nil, err
	}
	return s.update(ctx, rawID, func(st *model.Stack) {
		if in.Name != nil {
			st.Name = *in.Name
		}
		if in.Description != nil {
			st.Description = trimmedPtr(in.Description)
		}
		st.IsActive = derefOr(in.IsActive, st.IsActive)
	})
}

type LocationInput struct {
	State    string `json:"state" validate:"required"`
	District string `json:"district" validate:"required"`
	IsActive *bool  `json:"isActive"`
}

type UpdateLocationInput struct {
	State    *string `json:"state" validate:"omitempty,min=1"`
	District *string `json:"district" validate:"omitempty,min=1"`
	IsActive *bool   `json:"isActive"`
}

type LocationService struct {
	*ReferenceService[model.TrainingLocation]
}

func NewLocationService(repo repository.ReferenceRepositoryIface[model.TrainingLocation], auditLogger audit.Logger, logger *slog.Logger) *LocationService {
	return &LocationService{newReferenceService(repo, lifecycle.Locations, auditLogger, logger)}
}

// Create adds a location. State and district together must be unique,
// compared case-insensitively.
func (s *LocationService) Create(ctx context.Context, in LocationInput) (*model.TrainingLocation, error) {
	in.State = strings.TrimSpace(in.State)
	in.District = strings.TrimSpace(in.District)
	if err := validation.Struct(s.validate, in); err != nil {
		return nil, err
	}
	l := &model.TrainingLocation{
		State:    in.State,
		District: in.District,
		IsActive: derefOr(in.IsActive, true),
	}
	return s.create(ctx, l, func(l *model.TrainingLocation) string { return l.ID.String() })
}

func (s *LocationService) Update(ctx context.Context, rawID string, in UpdateLocationInput) (*model.TrainingLocation, error) {
	trimFields(in.State, in.District)
	if err := validation.Struct(s.validate, in); err != nil {
		return nil, err
	}
	return s.update(ctx, rawID, func(l *model.TrainingLocation) {
		if in.State != nil {
			l.State = *in.State
		}
		if in.District != nil {
			l.District = *in.District
		}
		l.IsActive = derefOr(in.IsActive, l.IsActive)
	})
}
