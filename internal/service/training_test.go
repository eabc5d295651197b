package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dangerclosesec/trainhub/internal/auth"
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

type trainingFixture struct {
	trainings    *mocks.MockTrainingRepositoryIface
	orgs         *mocks.MockOrganizationRepositoryIface
	freelancers  *mocks.MockFreelancerRepositoryIface
	applications *mocks.MockApplicationRepositoryIface
	feedback     *mocks.MockFeedbackRepositoryIface
	categories   *mocks.MockReferenceRepositoryIface[model.TrainingCategory]
	locations    *mocks.MockReferenceRepositoryIface[model.TrainingLocation]
	stacks       *mocks.MockReferenceRepositoryIface[model.Stack]
	svc          *service.TrainingService

	org      *model.OrganizationProfile
	orgactor *auth.Principal
}

func newTrainingFixture(t *testing.T) *trainingFixture {
	ctrl := gomock.NewController(t)
	f := &trainingFixture{
		trainings:    mocks.NewMockTrainingRepositoryIface(ctrl),
		orgs:         mocks.NewMockOrganizationRepositoryIface(ctrl),
		freelancers:  mocks.NewMockFreelancerRepositoryIface(ctrl),
		applications: mocks.NewMockApplicationRepositoryIface(ctrl),
		feedback:     mocks.NewMockFeedbackRepositoryIface(ctrl),
		categories:   mocks.NewMockReferenceRepositoryIface[model.TrainingCategory](ctrl),
		locations:    mocks.NewMockReferenceRepositoryIface[model.TrainingLocation](ctrl),
		stacks:       mocks.NewMockReferenceRepositoryIface[model.Stack](ctrl),
	}
	f.svc = service.NewTrainingService(service.TrainingStores{
		Trainings:    f.trainings,
		Orgs:         f.orgs,
		Freelancers:  f.freelancers,
		Applications: f.applications,
		Feedback:     f.feedback,
		Categories:   f.categories,
		Locations:    f.locations,
		Stacks:       f.stacks,
	}, nil, discardLogger())

	userID := uuid.New()
	f.org = &model.OrganizationProfile{ID: uuid.New(), UserID: userID}
	f.orgactor = &auth.Principal{UserID: userID, Role: model.RoleOrganization}
	return f
}

// expectOrg lets the organization actor resolve its own profile.
func (f *trainingFixture) expectOrg() {
	f.orgs.EXPECT().FindByUserID(gomock.Any(), f.orgactor.UserID).Return(f.org, nil).AnyTimes()
}

func newTrainingInput() service.CreateTrainingInput {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return service.CreateTrainingInput{
		Title:       " Kubernetes in production ",
		Description: "Five days of cluster operations",
		Skills:      []string{"kubernetes", " helm "},
		CategoryID:  uuid.NewString(),
		LocationID:  uuid.NewString(),
		StackID:     uuid.NewString(),
		Type:        "corporate",
		Mode:        "offline",
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 5),
	}
}

func TestTrainingCreate(t *testing.T) {
	t.Run("end before start", func(t *testing.T) {
		f := newTrainingFixture(t)
		in := newTrainingInput()
		in.EndDate = in.StartDate.Add(-time.Hour)

		_, err := f.svc.Create(context.Background(), f.orgactor, in)
		assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
	})

	t.Run("same day is allowed", func(t *testing.T) {
		f := newTrainingFixture(t)
		f.expectOrg()
		in := newTrainingInput()
		in.EndDate = in.StartDate

		f.categories.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(&model.TrainingCategory{}, nil)
		f.locations.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(&model.TrainingLocation{}, nil)
		f.stacks.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(&model.Stack{}, nil)
		f.trainings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		f.trainings.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(&model.Training{}, nil)

		_, err := f.svc.Create(context.Background(), f.orgactor, in)
		assert.NoError(t, err)
	})

	t.Run("organization posts unpublished and active", func(t *testing.T) {
		f := newTrainingFixture(t)
		f.expectOrg()
		in := newTrainingInput()
		created := uuid.New()

		f.categories.EXPECT().FindByID(gomock.Any(), uuid.MustParse(in.CategoryID)).Return(&model.TrainingCategory{}, nil)
		f.locations.EXPECT().FindByID(gomock.Any(), uuid.MustParse(in.LocationID)).Return(&model.TrainingLocation{}, nil)
		f.stacks.EXPECT().FindByID(gomock.Any(), uuid.MustParse(in.StackID)).Return(&model.Stack{}, nil)
		f.trainings.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tr *model.Training) error {
				assert.False(t, tr.IsPublished)
				assert.True(t, tr.IsActive)
				assert.Equal(t, f.org.ID, tr.OrganizationID)
				assert.Equal(t, "Kubernetes in production", tr.Title)
				assert.Equal(t, model.Skills{"kubernetes", "helm"}, tr.Skills)
				assert.Equal(t, model.TrainingType("CORPORATE"), tr.Type)
				tr.ID = created
				return nil
			})
		f.trainings.EXPECT().FindByID(gomock.Any(), created).Return(&model.Training{ID: created}, nil)

		tr, err := f.svc.Create(context.Background(), f.orgactor, in)
		require.NoError(t, err)
		assert.Equal(t, created, tr.ID)
	})

	t.Run("unknown category", func(t *testing.T) {
		f := newTrainingFixture(t)
		f.expectOrg()
		f.categories.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, domain.ErrCategoryNotFound)

		_, err := f.svc.Create(context.Background(), f.orgactor, newTrainingInput())
		assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	})

	t.Run("organization cannot post for another", func(t *testing.T) {
		f := newTrainingFixture(t)
		f.expectOrg()
		in := newTrainingInput()
		in.OrganizationID = uuid.NewString()

		_, err := f.svc.Create(context.Background(), f.orgactor, in)
		assert.ErrorIs(t, err, domain.ErrNotOwner)
	})

	t.Run("admin must name the organization", func(t *testing.T) {
		f := newTrainingFixture(t)
		_, err := f.svc.Create(context.Background(), &auth.Principal{Role: model.RoleAdmin}, newTrainingInput())
		require.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Equal(t, "organizationId is required", err.Error())
	})

	t.Run("negative payment", func(t *testing.T) {
		f := newTrainingFixture(t)
		in := newTrainingInput()
		amount := -10.0
		in.PaymentAmount = &amount

		_, err := f.svc.Create(context.Background(), f.orgactor, in)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Equal(t, "paymentAmount must be at least 0", err.Error())
	})
}

func TestTrainingList(t *testing.T) {
	t.Run("freelancers only see published", func(t *testing.T) {
		f := newTrainingFixture(t)
		f.trainings.EXPECT().
			FindAllPaginated(gomock.Any(), gomock.Any(), defaultPage).
			DoAndReturn(func(_ context.Context, filter repository.TrainingFilter, _ repository.Page) ([]*model.Training, int64, error) {
				require.NotNil(t, filter.IsPublished)
				assert.True(t, *filter.IsPublished)
				return nil, 0, nil
			})

		_, _, err := f.svc.List(context.Background(), &auth.Principal{Role: model.RoleFreelancer},
			service.TrainingFilter{IsPublished: "false"}, defaultPage)
		assert.NoError(t, err)
	})

	t.Run("organizations only see their own", func(t *testing.T) {
		f := newTrainingFixture(t)
		f.expectOrg()
		f.trainings.EXPECT().
			FindAllPaginated(gomock.Any(), gomock.Any(), defaultPage).
			DoAndReturn(func(_ context.Context, filter repository.TrainingFilter, _ repository.Page) ([]*model.Training, int64, error) {
				require.NotNil(t, filter.OrganizationID)
				assert.Equal(t, f.org.ID, *filter.OrganizationID)
				return nil, 0, nil
			})

		_, _, err := f.svc.List(context.Background(), f.orgactor,
			service.TrainingFilter{OrganizationID: uuid.NewString()}, defaultPage)
		assert.NoError(t, err)
	})

	t.Run("bad filters", func(t *testing.T) {
		f := newTrainingFixture(t)
		admin := &auth.Principal{Role: model.RoleAdmin}

		for _, filter := range []service.TrainingFilter{
			{CategoryID: "abc"},
			{Type: "seminar"},
			{Mode: "hybrid"},
			{IsActive: "maybe"},
		} {
			_, _, err := f.svc.List(context.Background(), admin, filter, defaultPage)
			assert.ErrorIs(t, err, domain.ErrInvalidInput, "%+v", filter)
		}
	})
}

func TestTrainingGetVisibility(t *testing.T) {
	f := newTrainingFixture(t)
	f.expectOrg()
	draft := &model.Training{ID: uuid.New(), OrganizationID: uuid.New()}
	f.trainings.EXPECT().FindByID(gomock.Any(), draft.ID).Return(draft, nil).Times(3)

	_, err := f.svc.Get(context.Background(), &auth.Principal{Role: model.RoleFreelancer}, draft.ID.String())
	assert.ErrorIs(t, err, domain.ErrTrainingNotFound)

	_, err = f.svc.Get(context.Background(), f.orgactor, draft.ID.String())
	assert.ErrorIs(t, err, domain.ErrTrainingNotFound)

	_, err = f.svc.Get(context.Background(), &auth.Principal{Role: model.RoleMaintainer}, draft.ID.String())
	assert.NoError(t, err)
}

func TestTrainingBulk(t *testing.T) {
	t.Run("organization with a foreign id", func(t *testing.T) {
		f := newTrainingFixture(t)
		f.expectOrg()
		own, foreign := uuid.New(), uuid.New()
		f.trainings.EXPECT().
			FindOwnedIDs(gomock.Any(), f.org.ID, []uuid.UUID{own, foreign}).
			Return([]uuid.UUID{own}, nil)

		_, err := f.svc.Bulk(context.Background(), f.orgactor, []string{own.String(), foreign.String()}, "publish")
		require.ErrorIs(t, err, domain.ErrTrainingNotFound)

		var derr *domain.Error
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, []string{foreign.String()}, derr.Details)
	})

	t.Run("organization publishes its own", func(t *testing.T) {
		f := newTrainingFixture(t)
		f.expectOrg()
		own := uuid.New()
		f.trainings.EXPECT().FindOwnedIDs(gomock.Any(), f.org.ID, []uuid.UUID{own}).Return([]uuid.UUID{own}, nil)
		f.trainings.EXPECT().ApplyTransition(gomock.Any(), []uuid.UUID{own}, gomock.Any()).Return(int64(1), nil)

		res, err := f.svc.Bulk(context.Background(), f.orgactor, []string{own.String()}, "Publish")
		require.NoError(t, err)
		assert.EqualValues(t, 1, res.Affected)
	})

	t.Run("maintainer cannot delete", func(t *testing.T) {
		f := newTrainingFixture(t)
		_, err := f.svc.Bulk(context.Background(), &auth.Principal{Role: model.RoleMaintainer}, []string{uuid.NewString()}, "delete")
		assert.ErrorIs(t, err, domain.ErrAdminOnly)
	})

	t.Run("verify is not a training action", func(t *testing.T) {
		f := newTrainingFixture(t)
		_, err := f.svc.Bulk(context.Background(), &auth.Principal{Role: model.RoleAdmin}, []string{uuid.NewString()}, "verify")
		assert.ErrorIs(t, err, domain.ErrInvalidAction)
	})
}

func TestTrainingApply(t *testing.T) {
	freelancerActor := &auth.Principal{UserID: uuid.New(), Role: model.RoleFreelancer}
	freelancer := &model.FreelancerProfile{ID: uuid.New(), UserID: freelancerActor.UserID}

	cases := []struct {
		name     string
		training *model.Training
		want     error
	}{
		{"unpublished reads as missing", &model.Training{ID: uuid.New(), IsActive: true}, domain.ErrTrainingNotFound},
		{"inactive is closed", &model.Training{ID: uuid.New(), IsPublished: true}, domain.ErrTrainingClosed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newTrainingFixture(t)
			f.freelancers.EXPECT().FindByUserID(gomock.Any(), freelancerActor.UserID).Return(freelancer, nil)
			f.trainings.EXPECT().FindByID(gomock.Any(), tc.training.ID).Return(tc.training, nil)

			_, err := f.svc.Apply(context.Background(), freelancerActor, tc.training.ID.String(), service.ApplyInput{})
			assert.ErrorIs(t, err, tc.want)
		})
	}

	t.Run("open training", func(t *testing.T) {
		f := newTrainingFixture(t)
		open := &model.Training{ID: uuid.New(), IsPublished: true, IsActive: true}
		f.freelancers.EXPECT().FindByUserID(gomock.Any(), freelancerActor.UserID).Return(freelancer, nil)
		f.trainings.EXPECT().FindByID(gomock.Any(), open.ID).Return(open, nil)
		f.applications.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *model.TrainingApplication) error {
				assert.Equal(t, model.ApplicationPending, a.Status)
				assert.Equal(t, freelancer.ID, a.FreelancerID)
				return nil
			})

		letter := "  I run clusters for a living "
		app, err := f.svc.Apply(context.Background(), freelancerActor, open.ID.String(), service.ApplyInput{CoverLetter: &letter})
		require.NoError(t, err)
		require.NotNil(t, app.CoverLetter)
		assert.Equal(t, "I run clusters for a living", *app.CoverLetter)
	})

	t.Run("second application", func(t *testing.T) {
		f := newTrainingFixture(t)
		open := &model.Training{ID: uuid.New(), IsPublished: true, IsActive: true}
		f.freelancers.EXPECT().FindByUserID(gomock.Any(), gomock.Any()).Return(freelancer, nil)
		f.trainings.EXPECT().FindByID(gomock.Any(), open.ID).Return(open, nil)
		f.applications.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.ErrAlreadyApplied)

		_, err := f.svc.Apply(context.Background(), freelancerActor, open.ID.String(), service.ApplyInput{})
		assert.ErrorIs(t, err, domain.ErrAlreadyApplied)
	})
}

func TestTrainingDecideApplication(t *testing.T) {
	t.Run("status must be a decision", func(t *testing.T) {
		f := newTrainingFixture(t)
		_, err := f.svc.DecideApplication(context.Background(), f.orgactor, uuid.NewString(), uuid.NewString(),
			service.DecideApplicationInput{Status: model.ApplicationPending})
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	})

	t.Run("application of another training", func(t *testing.T) {
		f := newTrainingFixture(t)
		f.expectOrg()
		tr := &model.Training{ID: uuid.New(), OrganizationID: f.org.ID}
		app := &model.TrainingApplication{ID: uuid.New(), TrainingID: uuid.New()}
		f.trainings.EXPECT().FindByID(gomock.Any(), tr.ID).Return(tr, nil)
		f.applications.EXPECT().FindByID(gomock.Any(), app.ID).Return(app, nil)

		_, err := f.svc.DecideApplication(context.Background(), f.orgactor, tr.ID.String(), app.ID.String(),
			service.DecideApplicationInput{Status: "accepted"})
		assert.ErrorIs(t, err, domain.ErrApplicationNotFound)
	})

	t.Run("owner accepts", func(t *testing.T) {
		f := newTrainingFixture(t)
		f.expectOrg()
		tr := &model.Training{ID: uuid.New(), OrganizationID: f.org.ID}
		app := &model.TrainingApplication{ID: uuid.New(), TrainingID: tr.ID, Status: model.ApplicationPending}
		f.trainings.EXPECT().FindByID(gomock.Any(), tr.ID).Return(tr, nil)
		f.applications.EXPECT().FindByID(gomock.Any(), app.ID).Return(app, nil)
		f.applications.EXPECT().UpdateStatus(gomock.Any(), app.ID, model.ApplicationAccepted).Return(nil)

		got, err := f.svc.DecideApplication(context.Background(), f.orgactor, tr.ID.String(), app.ID.String(),
			service.DecideApplicationInput{Status: "accepted"})
		require.NoError(t, err)
		assert.Equal(t, model.ApplicationAccepted, got.Status)
	})
}

func TestTrainingAddFeedback(t *testing.T) {
	admin := &auth.Principal{UserID: uuid.New(), Role: model.RoleAdmin}

	t.Run("rating out of range", func(t *testing.T) {
		f := newTrainingFixture(t)
		_, err := f.svc.AddFeedback(context.Background(), admin, uuid.NewString(), service.FeedbackInput{Rating: 6})
		require.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Equal(t, "rating must be at most 5", err.Error())
	})

	t.Run("stores feedback against the owning organization", func(t *testing.T) {
		f := newTrainingFixture(t)
		tr := &model.Training{ID: uuid.New(), OrganizationID: uuid.New()}
		f.trainings.EXPECT().FindByID(gomock.Any(), tr.ID).Return(tr, nil)
		f.feedback.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fb *model.TrainingFeedback) error {
				assert.Equal(t, tr.OrganizationID, fb.OrganizationID)
				assert.Equal(t, 4, fb.Rating)
				return nil
			})

		_, err := f.svc.AddFeedback(context.Background(), admin, tr.ID.String(), service.FeedbackInput{Rating: 4})
		assert.NoError(t, err)
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		f := newTrainingFixture(t)
		tr := &model.Training{ID: uuid.New(), OrganizationID: uuid.New()}
		f.trainings.EXPECT().FindByID(gomock.Any(), tr.ID).Return(tr, nil)
		f.feedback.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("updating ratings: disk full"))

		_, err := f.svc.AddFeedback(context.Background(), admin, tr.ID.String(), service.FeedbackInput{Rating: 4})
		assert.Error(t, err)
	})

	t.Run("foreign organization", func(t *testing.T) {
		f := newTrainingFixture(t)
		f.expectOrg()
		tr := &model.Training{ID: uuid.New(), OrganizationID: uuid.New()}
		f.trainings.EXPECT().FindByID(gomock.Any(), tr.ID).Return(tr, nil)

		_, err := f.svc.AddFeedback(context.Background(), f.orgactor, tr.ID.String(), service.FeedbackInput{Rating: 3})
		assert.ErrorIs(t, err, domain.ErrNotOwner)
	})
}
