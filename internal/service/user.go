// internal/service/user.go
package service

import (
	"context"
	"fmt"
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

type UserService struct {
	repo           repository.UserRepositoryIface
	orgService     *OrganizationService
	passwordHasher *auth.PasswordHasher
	audit          audit.Logger
	logger         *slog.Logger
	validate       *validator.Validate
}

func NewUserService(
	repo repository.UserRepositoryIface,
	orgService *OrganizationService,
	passwordHasher *auth.PasswordHasher,
	auditLogger audit.Logger,
	logger *slog.Logger,
) *UserService {
	return &UserService{
		repo:           repo,
		orgService:     orgService,
		passwordHasher: passwordHasher,
		audit:          auditLogger,
		logger:         logger,
		validate:       validation.New(),
	}
}

// CreateUserInput creates a user of any role. The profile fields that apply
// depend on Role.
type CreateUserInput struct {
	Email    string     `json:"email" validate:"required,email_format"`
	Password string     `json:"password" validate:"required,min=8"`
	Name     *string    `json:"name"`
	Phone    *string    `json:"phone"`
	Role     model.Role `json:"role" validate:"required,oneof=FREELANCER ORGANIZATION ADMIN MAINTAINER"`

	// ORGANIZATION
	OrganizationName string  `json:"organizationName"`
	Website          *string `json:"website"`
	ContactMail      string  `json:"contactMail"`
	CompanyLocation  string  `json:"companyLocation"`
	Logo             *string `json:"logo"`

	// FREELANCER
	Bio             *string  `json:"bio"`
	Skills          []string `json:"skills"`
	ExperienceYears *int     `json:"experienceYears" validate:"omitempty,min=0"`
}

// userProfiles builds the profile row for every role except ORGANIZATION,
// which goes through OrganizationService for its email rules.
var userProfiles = map[model.Role]func(CreateUserInput) any{
	model.RoleAdmin: func(CreateUserInput) any {
		return nil
	},
	model.RoleMaintainer: func(CreateUserInput) any {
		return &model.MaintainerProfile{Status: model.StatusActive}
	},
	model.RoleFreelancer: func(in CreateUserInput) any {
		return &model.FreelancerProfile{
			Bio:             trimmedPtr(in.Bio),
			Skills:          cleanSkills(in.Skills),
			ExperienceYears: derefOr(in.ExperienceYears, 0),
			VerifiedStatus:  model.VerifiedPending,
		}
	},
}

func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*model.User, error) {
	in.Email = validation.NormalizeEmail(in.Email)
	in.Role = model.Role(strings.ToUpper(strings.TrimSpace(string(in.Role))))
	if err := validation.Struct(s.validate, in); err != nil {
		return nil, err
	}

	if in.Role == model.RoleOrganization {
		org, err := s.orgService.Create(ctx, CreateOrganizationInput{
			Email:            in.Email,
			Password:         in.Password,
			Name:             in.Name,
			Phone:            in.Phone,
			OrganizationName: in.OrganizationName,
			Website:          in.Website,
			ContactMail:      in.ContactMail,
			CompanyLocation:  in.CompanyLocation,
			Logo:             in.Logo,
		})
		if err != nil {
			return nil, err
		}
		return s.repo.FindByID(ctx, org.UserID)
	}

	build, ok := userProfiles[in.Role]
	if !ok {
		return nil, domain.ErrInvalidRole
	}

	hash, err := s.passwordHasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &model.User{
		Email:        in.Email,
		Role:         in.Role,
		Name:         trimmedPtr(in.Name),
		Phone:        trimmedPtr(in.Phone),
		PasswordHash: hash,
	}
	if err := s.repo.CreateWithProfile(ctx, user, build(in)); err != nil {
		return nil, err
	}

	record(ctx, s.audit, s.logger, audit.Entry{
		EntityType: model.EntityUser,
		Action:     "create",
		EntityIDs:  []string{user.ID.String()},
		Details:    map[string]interface{}{"role": string(user.Role)},
	})
	return user, nil
}

func (s *UserService) Get(ctx context.Context, rawID string) (*model.User, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

type UserFilter struct {
	Role   string
	Search string
}

func (s *UserService) List(ctx context.Context, filter UserFilter, page repository.Page) ([]*model.User, Pagination, error) {
	f := repository.UserFilter{Search: filter.Search}
	if filter.Role != "" {
		role := model.Role(strings.ToUpper(filter.Role))
		if !role.Valid() {
			return nil, Pagination{}, domain.ErrInvalidRole
		}
		f.Role = role
	}

	users, total, err := s.repo.FindAllPaginated(ctx, f, page)
	if err != nil {
		return nil, Pagination{}, err
	}
	return users, NewPagination(page, total), nil
}

// UpdateUserInput changes contact details only; absent fields are kept.
type UpdateUserInput struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

func (s *UserService) Update(ctx context.Context, rawID string, in UpdateUserInput) (*model.User, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		user.Name = trimmedPtr(in.Name)
	}
	if in.Phone != nil {
		user.Phone = trimmedPtr(in.Phone)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	record(ctx, s.audit, s.logger, audit.Entry{
		EntityType: model.EntityUser,
		Action:     "update",
		EntityIDs:  []string{user.ID.String()},
	})
	return user, nil
}

// Bulk deletes users together with their role profiles and everything those
// own. The caller can never delete their own account.
func (s *UserService) Bulk(ctx context.Context, actor *auth.Principal, ids []string, action string) (*lifecycle.BulkResult, error) {
	req, err := lifecycle.ParseBulk(lifecycle.Users, ids, action)
	if err != nil {
		return nil, err
	}
	for _, id := range req.IDs {
		if actor != nil && id == actor.UserID {
			return nil, domain.ErrSelfDelete
		}
	}

	result, err := runBulk(ctx, lifecycle.Users, req, nil, s.repo.DeleteCascade)
	if err != nil {
		return nil, err
	}

	record(ctx, s.audit, s.logger, audit.Entry{
		EntityType: model.EntityUser,
		Action:     string(req.Action),
		EntityIDs:  idStrings(req.IDs),
		Details:    map[string]interface{}{"affected": result.Affected},
	})
	return result, nil
}

func (s *UserService) Delete(ctx context.Context, actor *auth.Principal, rawID string) (*lifecycle.BulkResult, error) {
	return s.Bulk(ctx, actor, []string{rawID}, string(lifecycle.Delete))
}

// cleanSkills trims entries and drops empty ones.
func cleanSkills(skills []string) model.Skills {
	out := make(model.Skills, 0, len(skills))
	for _, sk := range skills {
		if sk = strings.TrimSpace(sk); sk != "" {
			out = append(out, sk)
		}
	}
	return out
}
