package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/dangerclosesec/trainhub/internal/auth"
	"github.com/dangerclosesec/trainhub/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := auth.NewTokenManager("test_secret", time.Hour)
	user := &model.User{ID: uuid.New(), Email: "ops@acme.io", Role: model.RoleMaintainer}

	token, err := tm.Generate(user)
	require.NoError(t, err)

	p, err := tm.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, p.UserID)
	assert.Equal(t, model.RoleMaintainer, p.Role)
	assert.True(t, p.HasRole(model.RoleAdmin, model.RoleMaintainer))
	assert.False(t, p.HasRole(model.RoleAdmin))
}

func TestTokenRejected(t *testing.T) {
	user := &model.User{ID: uuid.New(), Email: "ops@acme.io", Role: model.RoleAdmin}

	t.Run("wrong secret", func(t *testing.T) {
		token, err := auth.NewTokenManager("a", time.Hour).Generate(user)
		require.NoError(t, err)
		_, err = auth.NewTokenManager("b", time.Hour).Validate(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := auth.NewTokenManager("a", -time.Minute).Generate(user)
		require.NoError(t, err)
		_, err = auth.NewTokenManager("a", time.Hour).Validate(token)
		assert.Error(t, err)
	})

	t.Run("unknown role", func(t *testing.T) {
		bad := *user
		bad.Role = "ROOT"
		token, err := auth.NewTokenManager("a", time.Hour).Generate(&bad)
		require.NoError(t, err)
		_, err = auth.NewTokenManager("a", time.Hour).Validate(token)
		assert.Error(t, err)
	})
}

func TestPasswordHasher(t *testing.T) {
	h := auth.NewPasswordHasher()
	encoded, err := h.Hash("correct horse")
	require.NoError(t, err)

	ok, err := h.Verify("correct horse", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Verify("wrong", encoded)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = h.Verify("anything", "")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = h.Verify("anything", "$bcrypt$x")
	assert.ErrorIs(t, err, auth.ErrInvalidHash)
}

func TestPrincipalContext(t *testing.T) {
	assert.Nil(t, auth.FromContext(context.Background()))

	p := &auth.Principal{UserID: uuid.New(), Role: model.RoleOrganization}
	ctx := auth.WithPrincipal(context.Background(), p)
	assert.Same(t, p, auth.FromContext(ctx))

	var nilPrincipal *auth.Principal
	assert.False(t, nilPrincipal.HasRole(model.RoleAdmin))
}
