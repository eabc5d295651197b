package service

import (
	"context"
	"time"

	"github.com/dangerclosesec/trainhub/internal/audit"
	"github.com/dangerclosesec/trainhub/internal/auth"
	"github.com/dangerclosesec/trainhub/internal/domain"
	"github.com/dangerclosesec/trainhub/internal/model"
	"github.com/dangerclosesec/trainhub/internal/repository"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// Ensure ActionLogService implements the audit.Logger interface
var _ audit.Logger = (*ActionLogService)(nil)

// ActionLogService records and queries action logs
type ActionLogService struct {
	repo repository.ActionLogRepositoryIface
}

// NewActionLogService creates a new ActionLogService
func NewActionLogService(repo repository.ActionLogRepositoryIface) *ActionLogService {
	return &ActionLogService{
		repo: repo,
	}
}

// Record stores entry with the actor, request id and client address taken
// from ctx.
func (s *ActionLogService) Record(ctx context.Context, entry audit.Entry) error {
	log := &model.ActionLog{
		EntityType: entry.EntityType,
		Action:     entry.Action,
		EntityIDs:  entry.EntityIDs,
		Details:    entry.Details,
		RequestID:  middleware.GetReqID(ctx),
		ClientIP:   audit.ClientIP(ctx),
		CreatedAt:  time.Now().UTC(),
	}

	if p := auth.FromContext(ctx); p != nil {
		actorID := p.UserID
		log.ActorID = &actorID
		log.ActorRole = p.Role
	}

	return s.repo.Create(ctx, log)
}

type ActionLogFilter struct {
	EntityType string
	Action     string
	ActorID    string
	StartTime  string
	EndTime    string
}

// List returns a page of action logs, newest first.
func (s *ActionLogService) List(ctx context.Context, filter ActionLogFilter, page repository.Page) ([]model.ActionLog, Pagination, error) {
	q := repository.ActionLogQuery{
		EntityType: filter.EntityType,
		Action:     filter.Action,
		Page:       page,
	}
	if filter.ActorID != "" {
		id, err := uuid.Parse(filter.ActorID)
		if err != nil {
			return nil, Pagination{}, invalidID("actorId", filter.ActorID)
		}
		q.ActorID = &id
	}
	var err error
	if q.StartTime, err = parseTime("startTime", filter.StartTime); err != nil {
		return nil, Pagination{}, err
	}
	if q.EndTime, err = parseTime("endTime", filter.EndTime); err != nil {
		return nil, Pagination{}, err
	}

	logs, total, err := s.repo.Query(ctx, q)
	if err != nil {
		return nil, Pagination{}, err
	}
	return logs, NewPagination(page, total), nil
}

// parseTime reads an optional RFC3339 timestamp. Empty yields the zero time.
func parseTime(name, raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, domain.Invalid("%s must be an RFC3339 timestamp", name)
	}
	return t, nil
}
