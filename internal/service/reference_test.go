package service_test

import (
	"context"
	"testing"

	"github.com/dangerclosesec/trainhub/internal/domain"
	"github.com/dangerclosesec/trainhub/internal/mocks"
	"github.com/dangerclosesec/trainhub/internal/model"
	"github.com/dangerclosesec/trainhub/internal/repository"
	"github.com/dangerclosesec/trainhub/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLocationCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("trims and defaults to active", func(t *testing.T) {
		repo := mocks.NewMockReferenceRepositoryIface[model.TrainingLocation](ctrl)
		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, l *model.TrainingLocation) error {
				assert.Equal(t, "Karnataka", l.State)
				assert.Equal(t, "Mysuru", l.District)
				assert.True(t, l.IsActive)
				return nil
			})

		svc := service.NewLocationService(repo, nil, discardLogger())
		_, err := svc.Create(context.Background(), service.LocationInput{State: " Karnataka ", District: "Mysuru  "})
		assert.NoError(t, err)
	})

	t.Run("blank district", func(t *testing.T) {
		repo := mocks.NewMockReferenceRepositoryIface[model.TrainingLocation](ctrl)
		svc := service.NewLocationService(repo, nil, discardLogger())

		_, err := svc.Create(context.Background(), service.LocationInput{State: "Kerala", District: "   "})
		require.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Equal(t, "district is required", err.Error())
	})

	t.Run("duplicate passes through", func(t *testing.T) {
		repo := mocks.NewMockReferenceRepositoryIface[model.TrainingLocation](ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.ErrDuplicateLocation)

		svc := service.NewLocationService(repo, nil, discardLogger())
		_, err := svc.Create(context.Background(), service.LocationInput{State: "kerala", District: "KOCHI"})
		require.ErrorIs(t, err, domain.ErrDuplicateLocation)
		assert.Equal(t, "Location with this state and district already exists", err.Error())
	})
}

func TestCategoryUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockReferenceRepositoryIface[model.TrainingCategory](ctrl)
	logger := mocks.NewMockLogger(ctrl)
	svc := service.NewCategoryService(repo, logger, discardLogger())

	id := uuid.New()
	desc := "Old"
	current := &model.TrainingCategory{ID: id, Name: "DevOps", Description: &desc, IsActive: true}

	gomock.InOrder(
		repo.EXPECT().FindByID(gomock.Any(), id).Return(current, nil),
		repo.EXPECT().Update(gomock.Any(), id, current).Return(nil),
		logger.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil),
		repo.EXPECT().FindByID(gomock.Any(), id).Return(current, nil),
	)

	name := " Platform "
	inactive := false
	empty := "  "
	got, err := svc.Update(context.Background(), id.String(), service.UpdateNamedReferenceInput{
		Name:        &name,
		Description: &empty,
		IsActive:    &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "Platform", got.Name)
	assert.Nil(t, got.Description)
	assert.False(t, got.IsActive)
}

func TestReferenceBulk(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("validation order", func(t *testing.T) {
		repo := mocks.NewMockReferenceRepositoryIface[model.Stack](ctrl)
		svc := service.NewStackService(repo, nil, discardLogger())

		_, err := svc.Bulk(context.Background(), []string{}, "explode")
		assert.ErrorIs(t, err, domain.ErrEmptyIDs)

		_, err = svc.Bulk(context.Background(), []string{"bad"}, "explode")
		assert.ErrorIs(t, err, domain.ErrInvalidAction)

		_, err = svc.Bulk(context.Background(), []string{"bad"}, "activate")
		assert.ErrorIs(t, err, domain.ErrInvalidID)
	})

	t.Run("in use blocks the batch", func(t *testing.T) {
		repo := mocks.NewMockReferenceRepositoryIface[model.Stack](ctrl)
		a, b := uuid.New(), uuid.New()
		repo.EXPECT().
			Delete(gomock.Any(), []uuid.UUID{a, b}).
			Return(int64(0), domain.ErrStackInUse.WithDetails(b.String()))

		svc := service.NewStackService(repo, nil, discardLogger())
		_, err := svc.Bulk(context.Background(), []string{a.String(), b.String()}, "delete")
		require.ErrorIs(t, err, domain.ErrStackInUse)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("deactivate", func(t *testing.T) {
		repo := mocks.NewMockReferenceRepositoryIface[model.Stack](ctrl)
		id := uuid.New()
		repo.EXPECT().
			ApplyTransition(gomock.Any(), []uuid.UUID{id}, gomock.Any()).
			Return(int64(1), nil)

		svc := service.NewStackService(repo, nil, discardLogger())
		res, err := svc.Bulk(context.Background(), []string{id.String()}, "deactivate")
		require.NoError(t, err)
		assert.EqualValues(t, 1, res.Affected)
	})
}

func TestReferenceList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockReferenceRepositoryIface[model.TrainingCategory](ctrl)
	svc := service.NewCategoryService(repo, nil, discardLogger())

	_, _, err := svc.List(context.Background(), service.ReferenceFilter{IsActive: "yes"}, defaultPage)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	repo.EXPECT().
		FindAllPaginated(gomock.Any(), gomock.Any(), defaultPage).
		DoAndReturn(func(_ context.Context, f repository.ReferenceFilter, _ repository.Page) ([]*model.TrainingCategory, int64, error) {
			require.NotNil(t, f.IsActive)
			assert.True(t, *f.IsActive)
			assert.Equal(t, "ops", f.Search)
			return []*model.TrainingCategory{{Name: "DevOps"}}, 1, nil
		})

	items, page, err := svc.List(context.Background(), service.ReferenceFilter{Search: "ops", IsActive: "true"}, defaultPage)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 1, page.TotalPages)
}
