package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/dangerclosesec/trainhub/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActionLogRepositoryIface interface {
	Create(ctx context.Context, log *model.ActionLog) error
	Query(ctx context.Context, params ActionLogQuery) ([]model.ActionLog, int64, error)
}

// ActionLogRepository handles database operations for action logs
type ActionLogRepository struct {
	db *gorm.DB
}

// NewActionLogRepository creates a new ActionLogRepository
func NewActionLogRepository(db *gorm.DB) *ActionLogRepository {
	return &ActionLogRepository{
		db: db,
	}
}

// Create inserts a new action log entry
func (r *ActionLogRepository) Create(ctx context.Context, log *model.ActionLog) error {
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now().UTC()
	}

	result := r.db.WithContext(ctx).Create(log)
	if result.Error != nil {
		return fmt.Errorf("failed to create action log: %w", result.Error)
	}

	return nil
}

// ActionLogQuery holds parameters for querying action logs
type ActionLogQuery struct {
	EntityType string
	Action     string
	ActorID    *uuid.UUID
	StartTime  time.Time
	EndTime    time.Time
	Page       Page
}

// Query retrieves action logs matching params, newest first
func (r *ActionLogRepository) Query(ctx context.Context, params ActionLogQuery) ([]model.ActionLog, int64, error) {
	var logs []model.ActionLog
	var count int64

	query := r.db.WithContext(ctx).Model(&model.ActionLog{})

	if params.EntityType != "" {
		query = query.Where("entity_type = ?", params.EntityType)
	}
	if params.Action != "" {
		query = query.Where("action = ?", params.Action)
	}
	if params.ActorID != nil {
		query = query.Where("actor_id = ?", *params.ActorID)
	}
	if !params.StartTime.IsZero() {
		query = query.Where("created_at >= ?", params.StartTime)
	}
	if !params.EndTime.IsZero() {
		query = query.Where("created_at <= ?", params.EndTime)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count action logs: %w", err)
	}

	result := params.Page.apply(query).Order("created_at DESC").Find(&logs)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to query action logs: %w", result.Error)
	}

	return logs, count, nil
}
