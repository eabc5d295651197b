// internal/repository/organization.go
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dangerclosesec/trainhub/internal/domain"
	"github.com/dangerclosesec/trainhub/internal/lifecycle"
	"github.com/dangerclosesec/trainhub/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrganizationRepositoryIface interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.OrganizationProfile, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.OrganizationProfile, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.OrganizationProfile, error)
	FindAllPaginated(ctx context.Context, filter OrganizationFilter, page Page) ([]*model.OrganizationProfile, int64, error)
	Update(ctx context.Context, org *model.OrganizationProfile) error
	ApplyTransition(ctx context.Context, ids []uuid.UUID, t lifecycle.Transition) (int64, error)
	DeleteCascade(ctx context.Context, ids []uuid.UUID) (int64, error)
}

type OrganizationFilter struct {
	Search             string
	VerificationStatus model.VerifiedStatus
	ActiveStatus       model.ActiveStatus
}

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

const organizationTrainingsCount = "(SELECT COUNT(*) FROM trainings WHERE trainings.organization_id = organization_profiles.id) AS trainings_count"

func (r *OrganizationRepository) withCounts(q *gorm.DB) *gorm.DB {
	return q.Select("organization_profiles.*, " + organizationTrainingsCount).Preload("User")
}

func (r *OrganizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.OrganizationProfile, error) {
	var org model.OrganizationProfile
	if err := r.withCounts(r.db.WithContext(ctx)).First(&org, "organization_profiles.id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("finding organization: %w", err)
	}
	return &org, nil
}

func (r *OrganizationRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.OrganizationProfile, error) {
	var org model.OrganizationProfile
	if err := r.withCounts(r.db.WithContext(ctx)).First(&org, "organization_profiles.user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("finding organization: %w", err)
	}
	return &org, nil
}

func (r *OrganizationRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.OrganizationProfile, error) {
	var orgs []*model.OrganizationProfile
	if err := r.db.WithContext(ctx).Preload("User").Where("id IN ?", ids).Find(&orgs).Error; err != nil {
		return nil, fmt.Errorf("finding organizations: %w", err)
	}
	return orgs, nil
}

// FindAllPaginated returns a filtered page of organizations
func (r *OrganizationRepository) FindAllPaginated(ctx context.Context, filter OrganizationFilter, page Page) ([]*model.OrganizationProfile, int64, error) {
	var orgs []*model.OrganizationProfile
	var count int64

	query := r.db.WithContext(ctx).Model(&model.OrganizationProfile{})
	if filter.VerificationStatus != "" {
		query = query.Where("organization_profiles.verified_status = ?", filter.VerificationStatus)
	}
	if filter.ActiveStatus != "" {
		query = query.Where("organization_profiles.active_status = ?", filter.ActiveStatus)
	}
	query = searchAny(query, filter.Search,
		"organization_profiles.organization_name",
		"organization_profiles.contact_mail",
		"organization_profiles.company_location",
	)

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count organizations: %w", err)
	}

	result := r.withCounts(page.apply(query)).Order("organization_profiles.created_at DESC").Find(&orgs)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find paginated organizations: %w", result.Error)
	}

	return orgs, count, nil
}

func (r *OrganizationRepository) Update(ctx context.Context, org *model.OrganizationProfile) error {
	if err := r.db.WithContext(ctx).Omit("User").Save(org).Error; err != nil {
		return fmt.Errorf("updating organization: %w", err)
	}
	return nil
}

func (r *OrganizationRepository) ApplyTransition(ctx context.Context, ids []uuid.UUID, t lifecycle.Transition) (int64, error) {
	return applyTransition(ctx, r.db, &model.OrganizationProfile{}, ids, t, domain.ErrOrganizationNotFound)
}

// DeleteCascade removes organizations with their feedback, trainings and
// owning users in a single transaction.
func (r *OrganizationRepository) DeleteCascade(ctx context.Context, ids []uuid.UUID) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireAll(tx, &model.OrganizationProfile{}, ids, domain.ErrOrganizationNotFound); err != nil {
			return err
		}
		n, err := deleteOrganizationsTx(tx, ids)
		affected = n
		return err
	})
	if err != nil {
		return 0, passDomain(err, "transaction failed")
	}
	return affected, nil
}

// refreshRatingsTx sets each organization's ratings to the average of its
// feedback, or zero when none is left.
func refreshRatingsTx(tx *gorm.DB, orgIDs ...uuid.UUID) error {
	for _, id := range orgIDs {
		var avg sql.NullFloat64
		if err := tx.Model(&model.TrainingFeedback{}).
			Where("organization_id = ?", id).
			Select("AVG(rating)").
			Row().Scan(&avg); err != nil {
			return fmt.Errorf("averaging feedback: %w", err)
		}
		if err := tx.Model(&model.OrganizationProfile{}).
			Where("id = ?", id).
			Update("ratings", avg.Float64).Error; err != nil {
			return fmt.Errorf("updating ratings: %w", err)
		}
	}
	return nil
}
