// internal/repository/training.go
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

type TrainingRepositoryIface interface {
	Create(ctx context.Context, t *model.Training) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Training, error)
	FindAllPaginated(ctx context.Context, filter TrainingFilter, page Page) ([]*model.Training, int64, error)
	FindOwnedIDs(ctx context.Context, organizationID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error)
	Update(ctx context.Context, t *model.Training) error
	ApplyTransition(ctx context.Context, ids []uuid.UUID, t lifecycle.Transition) (int64, error)
	DeleteCascade(ctx context.Context, ids []uuid.UUID) (int64, error)
}

// TrainingFilter narrows a training listing. Nil pointers and empty values
// are not applied.
type TrainingFilter struct {
	Search         string
	CategoryID     *uuid.UUID
	LocationID     *uuid.UUID
	StackID        *uuid.UUID
	OrganizationID *uuid.UUID
	Type           model.TrainingType
	Mode           model.TrainingMode
	IsPublished    *bool
	IsActive       *bool
}

type TrainingRepository struct {
	db *gorm.DB
}

func NewTrainingRepository(db *gorm.DB) *TrainingRepository {
	return &TrainingRepository{db: db}
}

func (r *TrainingRepository) Create(ctx context.Context, t *model.Training) error {
	if err := r.db.WithContext(ctx).Omit("Category", "Location", "Stack", "Organization").Create(t).Error; err != nil {
		return fmt.Errorf("creating training: %w", err)
	}
	return nil
}

func (r *TrainingRepository) preloaded(q *gorm.DB) *gorm.DB {
	return q.Preload("Category").Preload("Location").Preload("Stack").Preload("Organization")
}

func (r *TrainingRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Training, error) {
	var t model.Training
	if err := r.preloaded(r.db.WithContext(ctx)).First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTrainingNotFound
		}
		return nil, fmt.Errorf("finding training: %w", err)
	}
	return &t, nil
}

func (r *TrainingRepository) FindAllPaginated(ctx context.Context, filter TrainingFilter, page Page) ([]*model.Training, int64, error) {
	var trainings []*model.Training
	var count int64

	query := r.db.WithContext(ctx).Model(&model.Training{})
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.LocationID != nil {
		query = query.Where("location_id = ?", *filter.LocationID)
	}
	if filter.StackID != nil {
		query = query.Where("stack_id = ?", *filter.StackID)
	}
	if filter.OrganizationID != nil {
		query = query.Where("organization_id = ?", *filter.OrganizationID)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Mode != "" {
		query = query.Where("mode = ?", filter.Mode)
	}
	if filter.IsPublished != nil {
		query = query.Where("is_published = ?", *filter.IsPublished)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	query = searchAny(query, filter.Search, "title", "description", "skills")

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count trainings: %w", err)
	}

	result := r.preloaded(page.apply(query)).Order("created_at DESC").Find(&trainings)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find paginated trainings: %w", result.Error)
	}
	return trainings, count, nil
}

// FindOwnedIDs returns the subset of ids that belong to the organization.
func (r *TrainingRepository) FindOwnedIDs(ctx context.Context, organizationID uuid.UUID, ids []uuid.UUID) ([]uuid.UUID, error) {
	var owned []uuid.UUID
	err := r.db.WithContext(ctx).Model(&model.Training{}).
		Where("organization_id = ? AND id IN ?", organizationID, ids).
		Pluck("id", &owned).Error
	if err != nil {
		return nil, fmt.Errorf("finding owned trainings: %w", err)
	}
	return owned, nil
}

func (r *TrainingRepository) Update(ctx context.Context, t *model.Training) error {
	if err := r.db.WithContext(ctx).Omit("Category", "Location", "Stack", "Organization").Save(t).Error; err != nil {
		return fmt.Errorf("updating training: %w", err)
	}
	return nil
}

func (r *TrainingRepository) ApplyTransition(ctx context.Context, ids []uuid.UUID, t lifecycle.Transition) (int64, error) {
	return applyTransition(ctx, r.db, &model.Training{}, ids, t, domain.ErrTrainingNotFound)
}

// DeleteCascade removes trainings with their feedback and applications.
func (r *TrainingRepository) DeleteCascade(ctx context.Context, ids []uuid.UUID) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireAll(tx, &model.Training{}, ids, domain.ErrTrainingNotFound); err != nil {
			return err
		}
		n, err := deleteTrainingsTx(tx, ids)
		affected = n
		return err
	})
	if err != nil {
		return 0, passDomain(err, "transaction failed")
	}
	return affected, nil
}

type ApplicationRepositoryIface interface {
	Create(ctx context.Context, a *model.TrainingApplication) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.TrainingApplication, error)
	ListByTraining(ctx context.Context, trainingID uuid.UUID, page Page) ([]*model.TrainingApplication, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.ApplicationStatus) error
}

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create inserts the application unless the freelancer already applied to
// the training.
func (r *ApplicationRepository) Create(ctx context.Context, a *model.TrainingApplication) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.TrainingApplication{}).
			Where("training_id = ? AND freelancer_id = ?", a.TrainingID, a.FreelancerID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("checking existing application: %w", err)
		}
		if count > 0 {
			return domain.ErrAlreadyApplied
		}
		if err := tx.Omit("Training", "Freelancer").Create(a).Error; err != nil {
			if isUniqueViolation(err) {
				return domain.ErrAlreadyApplied
			}
			return fmt.Errorf("creating application: %w", err)
		}
		return nil
	})
	if err != nil {
		return passDomain(err, "transaction failed")
	}
	return nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.TrainingApplication, error) {
	var a model.TrainingApplication
	if err := r.db.WithContext(ctx).Preload("Freelancer.User").First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("finding application: %w", err)
	}
	return &a, nil
}

func (r *ApplicationRepository) ListByTraining(ctx context.Context, trainingID uuid.UUID, page Page) ([]*model.TrainingApplication, int64, error) {
	var apps []*model.TrainingApplication
	var count int64

	query := r.db.WithContext(ctx).Model(&model.TrainingApplication{}).Where("training_id = ?", trainingID)
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count applications: %w", err)
	}

	result := page.apply(query).Preload("Freelancer.User").Order("created_at ASC").Find(&apps)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to list applications: %w", result.Error)
	}
	return apps, count, nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.ApplicationStatus) error {
	res := r.db.WithContext(ctx).Model(&model.TrainingApplication{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("updating application status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrApplicationNotFound
	}
	return nil
}

type FeedbackRepositoryIface interface {
	Create(ctx context.Context, f *model.TrainingFeedback) error
	ListByTraining(ctx context.Context, trainingID uuid.UUID, page Page) ([]*model.TrainingFeedback, int64, error)
}

type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// Create stores the feedback and recomputes the organization's rating in the
// same transaction.
func (r *FeedbackRepository) Create(ctx context.Context, f *model.TrainingFeedback) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Organization", "Training").Create(f).Error; err != nil {
			return fmt.Errorf("creating feedback: %w", err)
		}
		return refreshRatingsTx(tx, f.OrganizationID)
	})
}

func (r *FeedbackRepository) ListByTraining(ctx context.Context, trainingID uuid.UUID, page Page) ([]*model.TrainingFeedback, int64, error) {
	var items []*model.TrainingFeedback
	var count int64

	query := r.db.WithContext(ctx).Model(&model.TrainingFeedback{}).Where("training_id = ?", trainingID)
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count feedback: %w", err)
	}

	result := page.apply(query).Order("created_at DESC").Find(&items)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to list feedback: %w", result.Error)
	}
	return items, count, nil
}
