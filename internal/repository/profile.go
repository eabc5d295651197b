package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/trainhub/internal/domain"
	"github.com/dangerclosesec/trainhub/internal/lifecycle"
	"github.com/dangerclosesec/trainhub/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MaintainerRepositoryIface interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.MaintainerProfile, error)
	FindAllPaginated(ctx context.Context, filter MaintainerFilter, page Page) ([]*model.MaintainerProfile, int64, error)
	ApplyTransition(ctx context.Context, ids []uuid.UUID, t lifecycle.Transition) (int64, error)
	DeleteCascade(ctx context.Context, ids []uuid.UUID) (int64, error)
}

type MaintainerFilter struct {
	Status model.ActiveStatus
	Search string
}

type MaintainerRepository struct {
	db *gorm.DB
}

func NewMaintainerRepository(db *gorm.DB) *MaintainerRepository {
	return &MaintainerRepository{db: db}
}

func (r *MaintainerRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.MaintainerProfile, error) {
	var m model.MaintainerProfile
	if err := r.db.WithContext(ctx).Preload("User").First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMaintainerNotFound
		}
		return nil, fmt.Errorf("finding maintainer: %w", err)
	}
	return &m, nil
}

func (r *MaintainerRepository) FindAllPaginated(ctx context.Context, filter MaintainerFilter, page Page) ([]*model.MaintainerProfile, int64, error) {
	var items []*model.MaintainerProfile
	var count int64

	query := r.db.WithContext(ctx).Model(&model.MaintainerProfile{}).
		Joins("JOIN users ON users.id = maintainer_profiles.user_id")
	if filter.Status != "" {
		query = query.Where("maintainer_profiles.status = ?", filter.Status)
	}
	query = searchAny(query, filter.Search, "users.email", "users.name")

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count maintainers: %w", err)
	}

	result := page.apply(query).Preload("User").Order("maintainer_profiles.created_at DESC").Find(&items)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find paginated maintainers: %w", result.Error)
	}
	return items, count, nil
}

func (r *MaintainerRepository) ApplyTransition(ctx context.Context, ids []uuid.UUID, t lifecycle.Transition) (int64, error) {
	return applyTransition(ctx, r.db, &model.MaintainerProfile{}, ids, t, domain.ErrMaintainerNotFound)
}

func (r *MaintainerRepository) DeleteCascade(ctx context.Context, ids []uuid.UUID) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireAll(tx, &model.MaintainerProfile{}, ids, domain.ErrMaintainerNotFound); err != nil {
			return err
		}
		n, err := deleteMaintainersTx(tx, ids)
		affected = n
		return err
	})
	if err != nil {
		return 0, passDomain(err, "transaction failed")
	}
	return affected, nil
}

type FreelancerRepositoryIface interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.FreelancerProfile, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.FreelancerProfile, error)
	FindAllPaginated(ctx context.Context, filter FreelancerFilter, page Page) ([]*model.FreelancerProfile, int64, error)
	Update(ctx context.Context, f *model.FreelancerProfile) error
	ApplyTransition(ctx context.Context, ids []uuid.UUID, t lifecycle.Transition) (int64, error)
	DeleteCascade(ctx context.Context, ids []uuid.UUID) (int64, error)
}

type FreelancerFilter struct {
	VerificationStatus model.VerifiedStatus
	Search             string
}

type FreelancerRepository struct {
	db *gorm.DB
}

func NewFreelancerRepository(db *gorm.DB) *FreelancerRepository {
	return &FreelancerRepository{db: db}
}

func (r *FreelancerRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.FreelancerProfile, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *FreelancerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.FreelancerProfile, error) {
	return r.findOne(ctx, "user_id = ?", userID)
}

func (r *FreelancerRepository) findOne(ctx context.Context, cond string, arg any) (*model.FreelancerProfile, error) {
	var f model.FreelancerProfile
	if err := r.db.WithContext(ctx).Preload("User").First(&f, cond, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFreelancerNotFound
		}
		return nil, fmt.Errorf("finding freelancer: %w", err)
	}
	return &f, nil
}

func (r *FreelancerRepository) FindAllPaginated(ctx context.Context, filter FreelancerFilter, page Page) ([]*model.FreelancerProfile, int64, error) {
	var items []*model.FreelancerProfile
	var count int64

	query := r.db.WithContext(ctx).Model(&model.FreelancerProfile{}).
		Joins("JOIN users ON users.id = freelancer_profiles.user_id")
	if filter.VerificationStatus != "" {
		query = query.Where("freelancer_profiles.verified_status = ?", filter.VerificationStatus)
	}
	query = searchAny(query, filter.Search, "users.email", "users.name", "freelancer_profiles.skills")

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count freelancers: %w", err)
	}

	result := page.apply(query).Preload("User").Order("freelancer_profiles.created_at DESC").Find(&items)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find paginated freelancers: %w", result.Error)
	}
	return items, count, nil
}

func (r *FreelancerRepository) Update(ctx context.Context, f *model.FreelancerProfile) error {
	if err := r.db.WithContext(ctx).Omit("User").Save(f).Error; err != nil {
		return fmt.Errorf("updating freelancer: %w", err)
	}
	return nil
}

func (r *FreelancerRepository) ApplyTransition(ctx context.Context, ids []uuid.UUID, t lifecycle.Transition) (int64, error) {
	return applyTransition(ctx, r.db, &model.FreelancerProfile{}, ids, t, domain.ErrFreelancerNotFound)
}

func (r *FreelancerRepository) DeleteCascade(ctx context.Context, ids []uuid.UUID) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireAll(tx, &model.FreelancerProfile{}, ids, domain.ErrFreelancerNotFound); err != nil {
			return err
		}
		n, err := deleteFreelancersTx(tx, ids)
		affected = n
		return err
	})
	if err != nil {
		return 0, passDomain(err, "transaction failed")
	}
	return affected, nil
}
