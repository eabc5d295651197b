// internal/repository/reference.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dangerclosesec/trainhub/internal/domain"
	"github.com/dangerclosesec/trainhub/internal/lifecycle"
	"github.com/dangerclosesec/trainhub/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReferenceRepositoryIface is shared by categories, locations and stacks.
type ReferenceRepositoryIface[T model.Reference] interface {
	Create(ctx context.Context, item *T) error
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	FindAllPaginated(ctx context.Context, filter ReferenceFilter, page Page) ([]*T, int64, error)
	Update(ctx context.Context, id uuid.UUID, item *T) error
	ApplyTransition(ctx context.Context, ids []uuid.UUID, t lifecycle.Transition) (int64, error)
	Delete(ctx context.Context, ids []uuid.UUID) (int64, error)
}

type ReferenceFilter struct {
	Search   string
	IsActive *bool
}

// referenceRules holds what differs between reference tables.
type referenceRules[T model.Reference] struct {
	notFound  *domain.Error
	duplicate *domain.Error
	inUse     *domain.Error
	// natural key columns mapped to their values, compared case-insensitively
	naturalKey func(*T) map[string]string
	search     []string
	order      string
}

type ReferenceRepository[T model.Reference] struct {
	db    *gorm.DB
	rules referenceRules[T]
}

func NewCategoryRepository(db *gorm.DB) *ReferenceRepository[model.TrainingCategory] {
	return &ReferenceRepository[model.TrainingCategory]{db: db, rules: referenceRules[model.TrainingCategory]{
		notFound:  domain.ErrCategoryNotFound,
		duplicate: domain.ErrDuplicateCategory,
		inUse:     domain.ErrCategoryInUse,
		naturalKey: func(c *model.TrainingCategory) map[string]string {
			return map[string]string{"name": c.Name}
		},
		search: []string{"name", "description"},
		order:  "name ASC",
	}}
}

func NewLocationRepository(db *gorm.DB) *ReferenceRepository[model.TrainingLocation] {
	return &ReferenceRepository[model.TrainingLocation]{db: db, rules: referenceRules[model.TrainingLocation]{
		notFound:  domain.ErrLocationNotFound,
		duplicate: domain.ErrDuplicateLocation,
		inUse:     domain.ErrLocationInUse,
		naturalKey: func(l *model.TrainingLocation) map[string]string {
			return map[string]string{"state": l.State, "district": l.District}
		},
		search: []string{"state", "district"},
		order:  "state ASC, district ASC",
	}}
}

func NewStackRepository(db *gorm.DB) *ReferenceRepository[model.Stack] {
	return &ReferenceRepository[model.Stack]{db: db, rules: referenceRules[model.Stack]{
		notFound:  domain.ErrStackNotFound,
		duplicate: domain.ErrDuplicateStack,
		inUse:     domain.ErrStackInUse,
		naturalKey: func(s *model.Stack) map[string]string {
			return map[string]string{"name": s.Name}
		},
		search: []string{"name", "description"},
		order:  "name ASC",
	}}
}

func (r *ReferenceRepository[T]) table() (string, string) {
	var zero T
	return zero.TableName(), zero.TrainingForeignKey()
}

// withCounts adds the derived trainingsCount and activeTrainingsCount.
func (r *ReferenceRepository[T]) withCounts(q *gorm.DB) *gorm.DB {
	table, fk := r.table()
	return q.Select(
		fmt.Sprintf(
			"%[1]s.*, "+
				"(SELECT COUNT(*) FROM trainings WHERE trainings.%[2]s = %[1]s.id) AS trainings_count, "+
				"(SELECT COUNT(*) FROM trainings WHERE trainings.%[2]s = %[1]s.id AND trainings.is_active = ?) AS active_trainings_count",
			table, fk,
		),
		true,
	)
}

// duplicateExists checks the natural key, ignoring the row identified by
// exclude when it is not uuid.Nil.
func (r *ReferenceRepository[T]) duplicateExists(tx *gorm.DB, item *T, exclude uuid.UUID) (bool, error) {
	query := tx.Model(new(T))
	for col, val := range r.rules.naturalKey(item) {
		query = query.Where("LOWER("+col+") = ?", strings.ToLower(strings.TrimSpace(val)))
	}
	if exclude != uuid.Nil {
		query = query.Where("id <> ?", exclude)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("checking duplicates: %w", err)
	}
	return count > 0, nil
}

// Create inserts item unless another row shares its natural key.
func (r *ReferenceRepository[T]) Create(ctx context.Context, item *T) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dup, err := r.duplicateExists(tx, item, uuid.Nil)
		if err != nil {
			return err
		}
		if dup {
			return r.rules.duplicate
		}
		if err := tx.Create(item).Error; err != nil {
			if isUniqueViolation(err) {
				return r.rules.duplicate
			}
			return fmt.Errorf("creating reference: %w", err)
		}
		return nil
	})
	if err != nil {
		return passDomain(err, "transaction failed")
	}
	return nil
}

func (r *ReferenceRepository[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	table, _ := r.table()
	item := new(T)
	if err := r.withCounts(r.db.WithContext(ctx).Model(new(T))).First(item, table+".id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, r.rules.notFound
		}
		return nil, fmt.Errorf("finding reference: %w", err)
	}
	return item, nil
}

func (r *ReferenceRepository[T]) FindAllPaginated(ctx context.Context, filter ReferenceFilter, page Page) ([]*T, int64, error) {
	var items []*T
	var count int64

	query := r.db.WithContext(ctx).Model(new(T))
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	query = searchAny(query, filter.Search, r.rules.search...)

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count references: %w", err)
	}

	result := r.withCounts(page.apply(query)).Order(r.rules.order).Find(&items)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find paginated references: %w", result.Error)
	}
	return items, count, nil
}

// Update saves item, which must carry id, unless the new natural key
// collides with another row.
func (r *ReferenceRepository[T]) Update(ctx context.Context, id uuid.UUID, item *T) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dup, err := r.duplicateExists(tx, item, id)
		if err != nil {
			return err
		}
		if dup {
			return r.rules.duplicate
		}
		if err := tx.Save(item).Error; err != nil {
			if isUniqueViolation(err) {
				return r.rules.duplicate
			}
			return fmt.Errorf("updating reference: %w", err)
		}
		return nil
	})
	if err != nil {
		return passDomain(err, "transaction failed")
	}
	return nil
}

func (r *ReferenceRepository[T]) ApplyTransition(ctx context.Context, ids []uuid.UUID, t lifecycle.Transition) (int64, error) {
	return applyTransition(ctx, r.db, new(T), ids, t, r.rules.notFound)
}

// Delete removes the rows only when no training references any of them.
// A referenced id fails the whole call with nothing deleted.
func (r *ReferenceRepository[T]) Delete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	_, fk := r.table()
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireAll(tx, new(T), ids, r.rules.notFound); err != nil {
			return err
		}

		var inUse []uuid.UUID
		if err := tx.Model(&model.Training{}).Distinct(fk).Where(fk+" IN ?", ids).Pluck(fk, &inUse).Error; err != nil {
			return fmt.Errorf("checking referencing trainings: %w", err)
		}
		if len(inUse) > 0 {
			details := make([]string, len(inUse))
			for i, id := range inUse {
				details[i] = id.String()
			}
			return r.rules.inUse.WithDetails(details...)
		}

		res := tx.Where("id IN ?", ids).Delete(new(T))
		if res.Error != nil {
			return fmt.Errorf("deleting references: %w", res.Error)
		}
		affected = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, passDomain(err, "transaction failed")
	}
	return affected, nil
}
