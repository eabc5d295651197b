// Package service holds the use-cases behind the HTTP handlers.
package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dangerclosesec/trainhub/internal/audit"
	"github.com/dangerclosesec/trainhub/internal/domain"
	"github.com/dangerclosesec/trainhub/internal/lifecycle"
	"github.com/dangerclosesec/trainhub/internal/repository"
	"github.com/google/uuid"
)

// Pagination is returned alongside every list.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func NewPagination(page repository.Page, total int64) Pagination {
	p := Pagination{Page: page.Page, Limit: page.Limit, Total: total}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit > 0 {
		p.TotalPages = int((total + int64(p.Limit) - 1) / int64(p.Limit))
	}
	return p
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, domain.ErrInvalidID.WithDetails(raw)
	}
	return id, nil
}

func invalidID(field, raw string) error {
	return domain.Invalid("%s must be a valid ID", field).WithDetails(raw)
}

func toIDs(ids ...uuid.UUID) []uuid.UUID {
	return ids
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

type transitionFunc func(ctx context.Context, ids []uuid.UUID, t lifecycle.Transition) (int64, error)

type deleteFunc func(ctx context.Context, ids []uuid.UUID) (int64, error)

// runBulk applies a validated bulk request through the repository's
// transition or delete path.
func runBulk(ctx context.Context, p lifecycle.Policy, req *lifecycle.BulkRequest, transition transitionFunc, del deleteFunc) (*lifecycle.BulkResult, error) {
	var (
		affected int64
		err      error
	)
	if req.Action == lifecycle.Delete {
		affected, err = del(ctx, req.IDs)
	} else {
		t, ok := p.Transition(req.Action)
		if !ok {
			return nil, domain.ErrInvalidAction
		}
		affected, err = transition(ctx, req.IDs, t)
	}
	if err != nil {
		return nil, err
	}
	return &lifecycle.BulkResult{Action: req.Action, Affected: affected, IDs: req.IDs}, nil
}

// record writes an audit entry. A failed write is logged and never fails
// the mutation that already happened.
func record(ctx context.Context, logger audit.Logger, log *slog.Logger, entry audit.Entry) {
	if logger == nil {
		return
	}
	if err := logger.Record(ctx, entry); err != nil {
		log.WarnContext(ctx, "failed to record action log",
			"entityType", entry.EntityType,
			"action", entry.Action,
			"error", err,
		)
	}
}

func derefOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

// trimFields trims every non-nil string in place.
func trimFields(fields ...*string) {
	for _, f := range fields {
		if f != nil {
			*f = strings.TrimSpace(*f)
		}
	}
}

// trimmedPtr trims s and turns an empty result into nil.
func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
