package auth

import (
	"context"

	"github.com/dangerclosesec/trainhub/internal/model"
	"github.com/google/uuid"
)

// Principal is the authenticated caller attached to a request context.
type Principal struct {
	UserID uuid.UUID
	Email  string
	Role   model.Role
}

// HasRole reports whether the principal holds any of roles.
func (p *Principal) HasRole(roles ...model.Role) bool {
	if p == nil {
		return false
	}
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}

type contextKey string

const principalKey = contextKey("trainhub_principal")

func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// FromContext returns the principal stored by the auth middleware, or nil.
func FromContext(ctx context.Context) *Principal {
	p, _ := ctx.Value(principalKey).(*Principal)
	return p
}
