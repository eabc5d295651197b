package repository

import (
	"context"
	"testing"

	"github.com/dangerclosesec/trainhub/internal/domain"
	"github.com/dangerclosesec/trainhub/internal/lifecycle"
	"github.com/dangerclosesec/trainhub/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrganizationRepository_FindIncludesTrainingCount(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	f := fixture{t, db}
	repo := NewOrganizationRepository(db)

	org := f.organization("acme")
	r := f.refs()
	f.training(org, r, true)
	f.training(org, r, false)

	got, err := repo.FindByID(ctx, org.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.TrainingsCount)
	require.NotNil(t, got.User)
	assert.Equal(t, org.UserID, got.User.ID)

	byUser, err := repo.FindByUserID(ctx, org.UserID)
	require.NoError(t, err)
	assert.Equal(t, org.ID, byUser.ID)

	_, err = repo.FindByUserID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrOrganizationNotFound)
}

func TestOrganizationRepository_FindAllPaginated(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	f := fixture{t, db}
	repo := NewOrganizationRepository(db)

	acme := f.organization("acme")
	f.organization("globex")
	f.organization("initech")

	verify, ok := lifecycle.Organizations.Transition(lifecycle.Verify)
	require.True(t, ok)
	_, err := repo.ApplyTransition(ctx, []uuid.UUID{acme.ID}, verify)
	require.NoError(t, err)

	orgs, total, err := repo.FindAllPaginated(ctx, OrganizationFilter{VerificationStatus: model.VerifiedVerified}, Page{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, orgs, 1)
	assert.Equal(t, acme.ID, orgs[0].ID)

	orgs, total, err = repo.FindAllPaginated(ctx, OrganizationFilter{Search: "GLOB"}, Page{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "globex", orgs[0].OrganizationName)

	orgs, total, err = repo.FindAllPaginated(ctx, OrganizationFilter{}, Page{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, orgs, 1)
}

func TestOrganizationRepository_ApplyTransitionIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	f := fixture{t, db}
	repo := NewOrganizationRepository(db)

	org := f.organization("acme")
	deactivate, _ := lifecycle.Organizations.Transition(lifecycle.Deactivate)

	_, err := repo.ApplyTransition(ctx, []uuid.UUID{org.ID, uuid.New()}, deactivate)
	require.ErrorIs(t, err, domain.ErrOrganizationNotFound)

	got, err := repo.FindByID(ctx, org.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusActive, got.ActiveStatus)

	n, err := repo.ApplyTransition(ctx, []uuid.UUID{org.ID}, deactivate)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err = repo.FindByID(ctx, org.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusInactive, got.ActiveStatus)
}

func TestOrganizationRepository_DeleteCascade(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	f := fixture{t, db}
	repo := NewOrganizationRepository(db)

	org := f.organization("acme")
	other := f.organization("globex")
	r := f.refs()
	tr := f.training(org, r, true)
	kept := f.training(other, r, true)
	fl := f.freelancer()
	f.application(tr, fl)
	f.application(kept, fl)
	f.feedback(tr, 2)

	n, err := repo.DeleteCascade(ctx, []uuid.UUID{org.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	assert.Equal(t, int64(1), f.count(&model.OrganizationProfile{}))
	assert.Equal(t, int64(1), f.count(&model.Training{}))
	assert.Equal(t, int64(1), f.count(&model.TrainingApplication{}))
	assert.Equal(t, int64(0), f.count(&model.TrainingFeedback{}))

	var owner int64
	require.NoError(t, db.Model(&model.User{}).Where("id = ?", org.UserID).Count(&owner).Error)
	assert.Zero(t, owner)

	// Freelancers who applied are not owned by the organization.
	assert.Equal(t, int64(1), f.count(&model.FreelancerProfile{}))
}
