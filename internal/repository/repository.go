// internal/repository/repository.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dangerclosesec/trainhub/internal/domain"
	"github.com/dangerclosesec/trainhub/internal/lifecycle"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgUniqueViolation is the postgres SQLSTATE for unique_violation.
const pgUniqueViolation = "23505"

// Page is a 1-based page request.
type Page struct {
	Page  int
	Limit int
}

func (p Page) offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

func (p Page) apply(q *gorm.DB) *gorm.DB {
	if p.Limit <= 0 {
		return q
	}
	return q.Offset(p.offset()).Limit(p.Limit)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern builds a case-insensitive contains pattern for
// LOWER(col) LIKE ? ESCAPE '\'. Wildcards in search match literally.
func likePattern(search string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(search))) + "%"
}

// searchAny adds an OR group matching search against every column.
func searchAny(q *gorm.DB, search string, columns ...string) *gorm.DB {
	if strings.TrimSpace(search) == "" || len(columns) == 0 {
		return q
	}
	pattern := likePattern(search)
	clauses := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, c := range columns {
		clauses[i] = "LOWER(" + c + ") LIKE ? ESCAPE '\\'"
		args[i] = pattern
	}
	return q.Where("("+strings.Join(clauses, " OR ")+")", args...)
}

// isUniqueViolation recognizes duplicate-key errors from either driver.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// requireAll fails with notFound, listing the missing ids, unless every id
// exists in m's table.
func requireAll(tx *gorm.DB, m any, ids []uuid.UUID, notFound *domain.Error) error {
	var found []uuid.UUID
	if err := tx.Model(m).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return fmt.Errorf("checking ids: %w", err)
	}
	if missing := lifecycle.MissingIDs(ids, found); len(missing) > 0 {
		return notFound.WithDetails(missing...)
	}
	return nil
}

// applyTransition writes one status column on every row in ids. Unknown ids
// abort the whole batch before anything is written.
func applyTransition(ctx context.Context, db *gorm.DB, m any, ids []uuid.UUID, t lifecycle.Transition, notFound *domain.Error) (int64, error) {
	var affected int64
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := requireAll(tx, m, ids, notFound); err != nil {
			return err
		}
		res := tx.Model(m).Where("id IN ?", ids).Updates(map[string]any{t.Column: t.Value})
		if res.Error != nil {
			return fmt.Errorf("updating %s: %w", t.Column, res.Error)
		}
		affected = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, passDomain(err, "transaction failed")
	}
	return affected, nil
}

// passDomain returns domain errors untouched and wraps everything else.
func passDomain(err error, msg string) error {
	var de *domain.Error
	if errors.As(err, &de) {
		return err
	}
	return fmt.Errorf("%s: %w", msg, err)
}
