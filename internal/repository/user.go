// internal/repository/user.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/trainhub/internal/domain"
	"github.com/dangerclosesec/trainhub/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepositoryIface interface {
	Create(ctx context.Context, user *model.User) error
	CreateWithProfile(ctx context.Context, user *model.User, profile any) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindAllPaginated(ctx context.Context, filter UserFilter, page Page) ([]*model.User, int64, error)
	Update(ctx context.Context, user *model.User) error
	DeleteCascade(ctx context.Context, ids []uuid.UUID) (int64, error)
}

type UserFilter struct {
	Role   model.Role
	Search string
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	result := r.db.WithContext(ctx).Create(user)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("failed to create user: %w", result.Error)
	}
	return nil
}

// CreateWithProfile inserts the user and its role profile atomically. The
// profile's UserID is set from the new user. A duplicate email rolls back
// both rows.
func (r *UserRepository) CreateWithProfile(ctx context.Context, user *model.User, profile any) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
			return fmt.Errorf("checking existing email: %w", err)
		}
		if count > 0 {
			return domain.ErrEmailAlreadyExists
		}

		if err := tx.Create(user).Error; err != nil {
			if isUniqueViolation(err) {
				return domain.ErrEmailAlreadyExists
			}
			return fmt.Errorf("creating user: %w", err)
		}

		switch p := profile.(type) {
		case nil:
			return nil
		case *model.OrganizationProfile:
			p.UserID = user.ID
			user.Organization = p
		case *model.MaintainerProfile:
			p.UserID = user.ID
			user.Maintainer = p
		case *model.FreelancerProfile:
			p.UserID = user.ID
			user.Freelancer = p
		default:
			return fmt.Errorf("unsupported profile type %T", profile)
		}

		if err := tx.Omit("User").Create(profile).Error; err != nil {
			return fmt.Errorf("creating profile: %w", err)
		}
		return nil
	})

	if err != nil {
		return passDomain(err, "transaction failed")
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", result.Error)
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	result := r.db.WithContext(ctx).
		Preload("Organization").
		Preload("Maintainer").
		Preload("Freelancer").
		First(&user, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", result.Error)
	}
	return &user, nil
}

// FindAllPaginated returns a filtered page of users and the total match count
func (r *UserRepository) FindAllPaginated(ctx context.Context, filter UserFilter, page Page) ([]*model.User, int64, error) {
	var users []*model.User
	var count int64

	query := r.db.WithContext(ctx).Model(&model.User{})
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	query = searchAny(query, filter.Search, "email", "name", "phone")

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	result := page.apply(query.Session(&gorm.Session{})).
		Preload("Organization").
		Preload("Maintainer").
		Preload("Freelancer").
		Order("created_at DESC").
		Find(&users)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find paginated users: %w", result.Error)
	}

	return users, count, nil
}

func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	result := r.db.WithContext(ctx).Omit("Organization", "Maintainer", "Freelancer").Save(user)
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	return nil
}

// DeleteCascade removes users and everything they own in one transaction.
// Unknown ids abort the call before anything is deleted.
func (r *UserRepository) DeleteCascade(ctx context.Context, ids []uuid.UUID) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireAll(tx, &model.User{}, ids, domain.ErrUserNotFound); err != nil {
			return err
		}
		n, err := deleteUsersTx(tx, ids)
		affected = n
		return err
	})
	if err != nil {
		return 0, passDomain(err, "transaction failed")
	}
	return affected, nil
}
