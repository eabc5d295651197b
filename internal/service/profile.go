package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dangerclosesec/trainhub/internal/audit"
	"github.com/dangerclosesec/trainhub/internal/auth"
	"github.com/dangerclosesec/trainhub/internal/domain"
	"github.com/dangerclosesec/trainhub/internal/lifecycle"
	"github.com/dangerclosesec/trainhub/internal/model"
	"github.com/dangerclosesec/trainhub/internal/repository"
	"github.com/dangerclosesec/trainhub/internal/validation"
	"github.com/go-playground/validator/v10"
)

type MaintainerService struct {
	repo   repository.MaintainerRepositoryIface
	audit  audit.Logger
	logger *slog.Logger
}

func NewMaintainerService(repo repository.MaintainerRepositoryIface, auditLogger audit.Logger, logger *slog.Logger) *MaintainerService {
	return &MaintainerService{repo: repo, audit: auditLogger, logger: logger}
}

type MaintainerFilter struct {
	Status string
	Search string
}

func (s *MaintainerService) List(ctx context.Context, filter MaintainerFilter, page repository.Page) ([]*model.MaintainerProfile, Pagination, error) {
	f := repository.MaintainerFilter{Search: filter.Search}
	if filter.Status != "" {
		st := model.ActiveStatus(strings.ToUpper(filter.Status))
		if !st.Valid() {
			return nil, Pagination{}, domain.ErrInvalidStatus.WithDetails("status")
		}
		f.Status = st
	}

	items, total, err := s.repo.FindAllPaginated(ctx, f, page)
	if err != nil {
		return nil, Pagination{}, err
	}
	return items, NewPagination(page, total), nil
}

type UpdateMaintainerInput struct {
	Status model.ActiveStatus `json:"status"`
}

// Update applies a single status transition.
func (s *MaintainerService) Update(ctx context.Context, rawID string, in UpdateMaintainerInput) (*model.MaintainerProfile, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	status := model.ActiveStatus(strings.ToUpper(string(in.Status)))
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus.WithDetails("status")
	}

	action := lifecycle.Activate
	if status == model.StatusInactive {
		action = lifecycle.Deactivate
	}
	t, _ := lifecycle.Maintainers.Transition(action)
	if _, err := s.repo.ApplyTransition(ctx, toIDs(id), t); err != nil {
		return nil, err
	}

	record(ctx, s.audit, s.logger, audit.Entry{
		EntityType: model.EntityMaintainer,
		Action:     string(action),
		EntityIDs:  []string{id.String()},
	})
	return s.repo.FindByID(ctx, id)
}

func (s *MaintainerService) Bulk(ctx context.Context, ids []string, action string) (*lifecycle.BulkResult, error) {
	req, err := lifecycle.ParseBulk(lifecycle.Maintainers, ids, action)
	if err != nil {
		return nil, err
	}
	result, err := runBulk(ctx, lifecycle.Maintainers, req, s.repo.ApplyTransition, s.repo.DeleteCascade)
	if err != nil {
		return nil, err
	}

	record(ctx, s.audit, s.logger, audit.Entry{
		EntityType: model.EntityMaintainer,
		Action:     string(req.Action),
		EntityIDs:  idStrings(req.IDs),
		Details:    map[string]interface{}{"affected": result.Affected},
	})
	return result, nil
}

type FreelancerService struct {
	repo     repository.FreelancerRepositoryIface
	audit    audit.Logger
	logger   *slog.Logger
	validate *validator.Validate
}

func NewFreelancerService(repo repository.FreelancerRepositoryIface, auditLogger audit.Logger, logger *slog.Logger) *FreelancerService {
	return &FreelancerService{repo: repo, audit: auditLogger, logger: logger, validate: validation.New()}
}

type FreelancerFilter struct {
	VerificationStatus string
	Search             string
}

func (s *FreelancerService) List(ctx context.Context, filter FreelancerFilter, page repository.Page) ([]*model.FreelancerProfile, Pagination, error) {
	f := repository.FreelancerFilter{Search: filter.Search}
	if filter.VerificationStatus != "" {
		v := model.VerifiedStatus(strings.ToUpper(filter.VerificationStatus))
		if !v.Valid() {
			return nil, Pagination{}, domain.ErrInvalidStatus.WithDetails("verificationStatus")
		}
		f.VerificationStatus = v
	}

	items, total, err := s.repo.FindAllPaginated(ctx, f, page)
	if err != nil {
		return nil, Pagination{}, err
	}
	return items, NewPagination(page, total), nil
}

func (s *FreelancerService) Get(ctx context.Context, rawID string) (*model.FreelancerProfile, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *FreelancerService) Me(ctx context.Context, actor *auth.Principal) (*model.FreelancerProfile, error) {
	return s.repo.FindByUserID(ctx, actor.UserID)
}

// UpdateFreelancerInput is a partial self-service update. A nil Skills keeps
// the current list; an empty one clears it.
type UpdateFreelancerInput struct {
	Bio             *string  `json:"bio"`
	Skills          []string `json:"skills"`
	ExperienceYears *int     `json:"experienceYears" validate:"omitempty,min=0"`
}

func (s *FreelancerService) UpdateMe(ctx context.Context, actor *auth.Principal, in UpdateFreelancerInput) (*model.FreelancerProfile, error) {
	if err := validation.Struct(s.validate, in); err != nil {
		return nil, err
	}

	f, err := s.repo.FindByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	if in.Bio != nil {
		f.Bio = trimmedPtr(in.Bio)
	}
	if in.Skills != nil {
		f.Skills = cleanSkills(in.Skills)
	}
	f.ExperienceYears = derefOr(in.ExperienceYears, f.ExperienceYears)

	if err := s.repo.Update(ctx, f); err != nil {
		return nil, err
	}

	record(ctx, s.audit, s.logger, audit.Entry{
		EntityType: model.EntityFreelancer,
		Action:     "update",
		EntityIDs:  []string{f.ID.String()},
	})
	return f, nil
}

func (s *FreelancerService) Bulk(ctx context.Context, ids []string, action string) (*lifecycle.BulkResult, error) {
	req, err := lifecycle.ParseBulk(lifecycle.Freelancers, ids, action)
	if err != nil {
		return nil, err
	}
	result, err := runBulk(ctx, lifecycle.Freelancers, req, s.repo.ApplyTransition, s.repo.DeleteCascade)
	if err != nil {
		return nil, err
	}

	record(ctx, s.audit, s.logger, audit.Entry{
		EntityType: model.EntityFreelancer,
		Action:     string(req.Action),
		EntityIDs:  idStrings(req.IDs),
		Details:    map[string]interface{}{"affected": result.Affected},
	})
	return result, nil
}
