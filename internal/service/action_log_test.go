package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/dangerclosesec/trainhub/internal/audit"
	"github.com/dangerclosesec/trainhub/internal/auth"
	"github.com/dangerclosesec/trainhub/internal/domain"
	"github.com/dangerclosesec/trainhub/internal/mocks"
	"github.com/dangerclosesec/trainhub/internal/model"
	"github.com/dangerclosesec/trainhub/internal/repository"
	"github.com/dangerclosesec/trainhub/internal/service"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestActionLogRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockActionLogRepositoryIface(ctrl)
	svc := service.NewActionLogService(repo)

	actor := &auth.Principal{UserID: uuid.New(), Role: model.RoleAdmin}
	ctx := auth.WithPrincipal(context.Background(), actor)
	ctx = context.WithValue(ctx, middleware.RequestIDKey, "req-42")
	ctx = audit.WithClientIP(ctx, "10.0.0.7")

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, log *model.ActionLog) error {
			require.NotNil(t, log.ActorID)
			assert.Equal(t, actor.UserID, *log.ActorID)
			assert.Equal(t, model.RoleAdmin, log.ActorRole)
			assert.Equal(t, "req-42", log.RequestID)
			assert.Equal(t, "10.0.0.7", log.ClientIP)
			assert.Equal(t, "verify", log.Action)
			assert.EqualValues(t, []string{"a", "b"}, log.EntityIDs)
			assert.False(t, log.CreatedAt.IsZero())
			return nil
		})

	err := svc.Record(ctx, audit.Entry{
		EntityType: model.EntityOrganization,
		Action:     "verify",
		EntityIDs:  []string{"a", "b"},
	})
	assert.NoError(t, err)
}

func TestActionLogRecordWithoutActor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockActionLogRepositoryIface(ctrl)
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, log *model.ActionLog) error {
			assert.Nil(t, log.ActorID)
			assert.Empty(t, log.RequestID)
			return nil
		})

	err := service.NewActionLogService(repo).Record(context.Background(), audit.Entry{EntityType: model.EntityUser, Action: "create"})
	assert.NoError(t, err)
}

func TestActionLogList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockActionLogRepositoryIface(ctrl)
	svc := service.NewActionLogService(repo)

	t.Run("bad timestamps", func(t *testing.T) {
		_, _, err := svc.List(context.Background(), service.ActionLogFilter{StartTime: "yesterday"}, defaultPage)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Equal(t, "startTime must be an RFC3339 timestamp", err.Error())
	})

	t.Run("bad actor", func(t *testing.T) {
		_, _, err := svc.List(context.Background(), service.ActionLogFilter{ActorID: "me"}, defaultPage)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("passes the parsed query", func(t *testing.T) {
		actorID := uuid.New()
		repo.EXPECT().
			Query(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, q repository.ActionLogQuery) ([]model.ActionLog, int64, error) {
				require.NotNil(t, q.ActorID)
				assert.Equal(t, actorID, *q.ActorID)
				assert.Equal(t, "training", q.EntityType)
				assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), q.StartTime.UTC())
				assert.True(t, q.EndTime.IsZero())
				assert.Equal(t, defaultPage, q.Page)
				return []model.ActionLog{{Action: "publish"}}, 11, nil
			})

		logs, page, err := svc.List(context.Background(), service.ActionLogFilter{
			EntityType: "training",
			ActorID:    actorID.String(),
			StartTime:  "2026-01-01T00:00:00Z",
		}, defaultPage)
		require.NoError(t, err)
		assert.Len(t, logs, 1)
		assert.Equal(t, 2, page.TotalPages)
	})
}
