package lifecycle_test

import (
	"errors"
	"testing"

	"github.com/dangerclosesec/trainhub/internal/domain"
	"github.com/dangerclosesec/trainhub/internal/lifecycle"
	"github.com/dangerclosesec/trainhub/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		policy lifecycle.Policy
		input  string
		want   lifecycle.Action
		err    error
	}{
		{"organization verify", lifecycle.Organizations, "verify", lifecycle.Verify, nil},
		{"approve is an alias for verify", lifecycle.Organizations, "approve", lifecycle.Verify, nil},
		{"case and whitespace are ignored", lifecycle.Organizations, "  DeActivate ", lifecycle.Deactivate, nil},
		{"organization delete", lifecycle.Organizations, "delete", lifecycle.Delete, nil},
		{"organizations cannot be published", lifecycle.Organizations, "publish", "", domain.ErrInvalidAction},
		{"trainings publish", lifecycle.Trainings, "publish", lifecycle.Publish, nil},
		{"trainings cannot be verified", lifecycle.Trainings, "verify", "", domain.ErrInvalidAction},
		{"maintainers reject unknown", lifecycle.Maintainers, "reject", "", domain.ErrInvalidAction},
		{"users only delete", lifecycle.Users, "activate", "", domain.ErrInvalidAction},
		{"empty action", lifecycle.Locations, "", "", domain.ErrInvalidAction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.policy.Resolve(tt.input)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransitions(t *testing.T) {
	tr, ok := lifecycle.Organizations.Transition(lifecycle.Reject)
	require.True(t, ok)
	assert.Equal(t, "verified_status", tr.Column)
	assert.Equal(t, model.VerifiedRejected, tr.Value)

	tr, ok = lifecycle.Organizations.Transition(lifecycle.Unverify)
	require.True(t, ok)
	assert.Equal(t, model.VerifiedPending, tr.Value)

	tr, ok = lifecycle.Trainings.Transition(lifecycle.Deactivate)
	require.True(t, ok)
	assert.Equal(t, "is_active", tr.Column)
	assert.Equal(t, false, tr.Value)

	_, ok = lifecycle.Trainings.Transition(lifecycle.Delete)
	assert.False(t, ok, "delete is not a column write")
}

func TestAllowed(t *testing.T) {
	assert.Equal(t, []lifecycle.Action{
		lifecycle.Activate, lifecycle.Deactivate, lifecycle.Verify, lifecycle.Unverify, lifecycle.Reject, lifecycle.Delete,
	}, lifecycle.Organizations.Allowed())
	assert.Equal(t, []lifecycle.Action{lifecycle.Delete}, lifecycle.Users.Allowed())
}

func TestParseBulk(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	t.Run("empty ids are rejected before the action is checked", func(t *testing.T) {
		_, err := lifecycle.ParseBulk(lifecycle.Organizations, nil, "bogus")
		assert.ErrorIs(t, err, domain.ErrEmptyIDs)
	})

	t.Run("unknown action", func(t *testing.T) {
		_, err := lifecycle.ParseBulk(lifecycle.Organizations, []string{a.String()}, "bogus")
		assert.ErrorIs(t, err, domain.ErrInvalidAction)

		var de *domain.Error
		require.True(t, errors.As(err, &de))
		assert.Equal(t, []string{"allowed actions: activate, deactivate, verify, unverify, reject, delete"}, de.Details)
	})

	t.Run("malformed ids are reported", func(t *testing.T) {
		_, err := lifecycle.ParseBulk(lifecycle.Trainings, []string{a.String(), "nope"}, "publish")
		assert.ErrorIs(t, err, domain.ErrInvalidID)

		var de *domain.Error
		require.True(t, errors.As(err, &de))
		assert.Equal(t, []string{"nope"}, de.Details)
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		req, err := lifecycle.ParseBulk(lifecycle.Trainings, []string{a.String(), b.String(), a.String()}, "Publish")
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{a, b}, req.IDs)
		assert.Equal(t, lifecycle.Publish, req.Action)
	})
}

func TestMissingIDs(t *testing.T) {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	assert.Equal(t, []string{c.String()}, lifecycle.MissingIDs([]uuid.UUID{a, b, c}, []uuid.UUID{b, a}))
	assert.Empty(t, lifecycle.MissingIDs([]uuid.UUID{a}, []uuid.UUID{a}))
}
