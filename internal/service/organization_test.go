package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/dangerclosesec/trainhub/internal/audit"
	"github.com/dangerclosesec/trainhub/internal/auth"
	"github.com/dangerclosesec/trainhub/internal/config"
	"github.com/dangerclosesec/trainhub/internal/domain"
	"github.com/dangerclosesec/trainhub/internal/email"
	"github.com/dangerclosesec/trainhub/internal/mocks"
	"github.com/dangerclosesec/trainhub/internal/model"
	"github.com/dangerclosesec/trainhub/internal/repository"
	"github.com/dangerclosesec/trainhub/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var defaultPage = repository.Page{Page: 1, Limit: 10}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type orgFixture struct {
	users  *mocks.MockUserRepositoryIface
	orgs   *mocks.MockOrganizationRepositoryIface
	mailer *mocks.MockSender
	audit  *mocks.MockLogger
	svc    *service.OrganizationService
}

func newOrgFixture(t *testing.T) *orgFixture {
	ctrl := gomock.NewController(t)
	f := &orgFixture{
		users:  mocks.NewMockUserRepositoryIface(ctrl),
		orgs:   mocks.NewMockOrganizationRepositoryIface(ctrl),
		mailer: mocks.NewMockSender(ctrl),
		audit:  mocks.NewMockLogger(ctrl),
	}
	f.svc = service.NewOrganizationService(
		f.users,
		f.orgs,
		auth.NewPasswordHasher(),
		f.mailer,
		f.audit,
		&config.Config{BaseURL: "https://trainhub.test"},
		discardLogger(),
	)
	return f
}

func validOrgInput() service.CreateOrganizationInput {
	return service.CreateOrganizationInput{
		Email:            "  Owner@Acme.IO ",
		Password:         "supersecret",
		OrganizationName: " Acme Training ",
		ContactMail:      "acme.owner@gmail.com",
		CompanyLocation:  "Bengaluru",
	}
}

func TestOrganizationCreate(t *testing.T) {
	t.Run("personal login domain is rejected before any write", func(t *testing.T) {
		f := newOrgFixture(t)
		in := validOrgInput()
		in.Email = "owner@gmail.com"

		_, err := f.svc.Create(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrRestrictedEmailDomain)
	})

	t.Run("malformed contact mail is rejected", func(t *testing.T) {
		f := newOrgFixture(t)
		in := validOrgInput()
		in.ContactMail = "not-an-email"

		_, err := f.svc.Create(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidEmailFormat)
	})

	t.Run("creates user and pending profile then welcomes", func(t *testing.T) {
		f := newOrgFixture(t)
		profileID := uuid.New()
		userID := uuid.New()

		var savedUser *model.User
		f.users.EXPECT().
			CreateWithProfile(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *model.User, p any) error {
				profile, ok := p.(*model.OrganizationProfile)
				require.True(t, ok)
				assert.Equal(t, model.VerifiedPending, profile.VerifiedStatus)
				assert.Equal(t, model.StatusActive, profile.ActiveStatus)
				assert.Equal(t, "Acme Training", profile.OrganizationName)
				u.ID = userID
				profile.ID = profileID
				savedUser = u
				return nil
			})
		f.orgs.EXPECT().FindByID(gomock.Any(), profileID).DoAndReturn(
			func(context.Context, uuid.UUID) (*model.OrganizationProfile, error) {
				return &model.OrganizationProfile{
					ID:               profileID,
					UserID:           userID,
					OrganizationName: "Acme Training",
					VerifiedStatus:   model.VerifiedPending,
					User:             savedUser,
				}, nil
			})
		f.mailer.EXPECT().
			SendEmail(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, data email.EmailData) error {
				assert.Equal(t, "owner@acme.io", data.To)
				assert.Equal(t, "organization_welcome", data.TemplateName)
				return nil
			})
		f.audit.EXPECT().
			Record(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e audit.Entry) error {
				assert.Equal(t, model.EntityOrganization, e.EntityType)
				assert.Equal(t, "create", e.Action)
				assert.Equal(t, []string{profileID.String()}, e.EntityIDs)
				return nil
			})

		org, err := f.svc.Create(context.Background(), validOrgInput())
		require.NoError(t, err)
		assert.Equal(t, profileID, org.ID)
		require.NotNil(t, savedUser)
		assert.Equal(t, "owner@acme.io", savedUser.Email)
		assert.Equal(t, model.RoleOrganization, savedUser.Role)
		assert.NotEmpty(t, savedUser.PasswordHash)
	})

	t.Run("mail failure does not fail the request", func(t *testing.T) {
		f := newOrgFixture(t)
		f.users.EXPECT().CreateWithProfile(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.orgs.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(&model.OrganizationProfile{
			ID:   uuid.New(),
			User: &model.User{Email: "owner@acme.io"},
		}, nil)
		f.mailer.EXPECT().SendEmail(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
		f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errors.New("audit down"))

		_, err := f.svc.Create(context.Background(), validOrgInput())
		assert.NoError(t, err)
	})

	t.Run("duplicate email surfaces the repository error", func(t *testing.T) {
		f := newOrgFixture(t)
		f.users.EXPECT().
			CreateWithProfile(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(domain.ErrEmailAlreadyExists)

		_, err := f.svc.Create(context.Background(), validOrgInput())
		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	})
}

func TestOrganizationGet(t *testing.T) {
	ownerID := uuid.New()
	org := &model.OrganizationProfile{ID: uuid.New(), UserID: ownerID}

	t.Run("owner can read", func(t *testing.T) {
		f := newOrgFixture(t)
		f.orgs.EXPECT().FindByID(gomock.Any(), org.ID).Return(org, nil)

		got, err := f.svc.Get(context.Background(), &auth.Principal{UserID: ownerID, Role: model.RoleOrganization}, org.ID.String())
		require.NoError(t, err)
		assert.Equal(t, org.ID, got.ID)
	})

	t.Run("other organization cannot", func(t *testing.T) {
		f := newOrgFixture(t)
		f.orgs.EXPECT().FindByID(gomock.Any(), org.ID).Return(org, nil)

		_, err := f.svc.Get(context.Background(), &auth.Principal{UserID: uuid.New(), Role: model.RoleOrganization}, org.ID.String())
		assert.ErrorIs(t, err, domain.ErrNotOwner)
	})

	t.Run("maintainer can read any", func(t *testing.T) {
		f := newOrgFixture(t)
		f.orgs.EXPECT().FindByID(gomock.Any(), org.ID).Return(org, nil)

		_, err := f.svc.Get(context.Background(), &auth.Principal{UserID: uuid.New(), Role: model.RoleMaintainer}, org.ID.String())
		assert.NoError(t, err)
	})

	t.Run("malformed id", func(t *testing.T) {
		f := newOrgFixture(t)
		_, err := f.svc.Get(context.Background(), &auth.Principal{Role: model.RoleAdmin}, "nope")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestOrganizationUpdate(t *testing.T) {
	ownerID := uuid.New()
	owner := &auth.Principal{UserID: ownerID, Role: model.RoleOrganization}
	admin := &auth.Principal{UserID: uuid.New(), Role: model.RoleAdmin}

	newOrg := func() *model.OrganizationProfile {
		return &model.OrganizationProfile{
			ID:               uuid.New(),
			UserID:           ownerID,
			OrganizationName: "Acme",
			VerifiedStatus:   model.VerifiedPending,
			ActiveStatus:     model.StatusActive,
			User:             &model.User{Email: "owner@acme.io"},
		}
	}

	t.Run("owner cannot change status", func(t *testing.T) {
		f := newOrgFixture(t)
		org := newOrg()
		f.orgs.EXPECT().FindByID(gomock.Any(), org.ID).Return(org, nil)

		verified := model.VerifiedVerified
		_, err := f.svc.Update(context.Background(), owner, org.ID.String(), service.UpdateOrganizationInput{VerifiedStatus: &verified})
		assert.ErrorIs(t, err, domain.ErrAdminOnly)
	})

	t.Run("owner updates contact fields", func(t *testing.T) {
		f := newOrgFixture(t)
		org := newOrg()
		f.orgs.EXPECT().FindByID(gomock.Any(), org.ID).Return(org, nil)
		f.orgs.EXPECT().Update(gomock.Any(), org).Return(nil)
		f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

		name := " Acme Labs "
		got, err := f.svc.Update(context.Background(), owner, org.ID.String(), service.UpdateOrganizationInput{OrganizationName: &name})
		require.NoError(t, err)
		assert.Equal(t, "Acme Labs", got.OrganizationName)
	})

	t.Run("admin verification sends the decision", func(t *testing.T) {
		f := newOrgFixture(t)
		org := newOrg()
		f.orgs.EXPECT().FindByID(gomock.Any(), org.ID).Return(org, nil)
		f.orgs.EXPECT().Update(gomock.Any(), org).Return(nil)
		f.mailer.EXPECT().
			SendEmail(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, data email.EmailData) error {
				assert.Equal(t, "organization_verified", data.TemplateName)
				return nil
			})
		f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

		verified := model.VerifiedVerified
		got, err := f.svc.Update(context.Background(), admin, org.ID.String(), service.UpdateOrganizationInput{VerifiedStatus: &verified})
		require.NoError(t, err)
		assert.Equal(t, model.VerifiedVerified, got.VerifiedStatus)
	})

	t.Run("unknown status", func(t *testing.T) {
		f := newOrgFixture(t)
		org := newOrg()
		f.orgs.EXPECT().FindByID(gomock.Any(), org.ID).Return(org, nil)

		bogus := model.VerifiedStatus("MAYBE")
		_, err := f.svc.Update(context.Background(), admin, org.ID.String(), service.UpdateOrganizationInput{VerifiedStatus: &bogus})
		assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	})
}

func TestOrganizationBulk(t *testing.T) {
	admin := &auth.Principal{UserID: uuid.New(), Role: model.RoleAdmin}
	maintainer := &auth.Principal{UserID: uuid.New(), Role: model.RoleMaintainer}

	t.Run("empty ids", func(t *testing.T) {
		f := newOrgFixture(t)
		_, err := f.svc.Bulk(context.Background(), admin, nil, "verify")
		assert.ErrorIs(t, err, domain.ErrEmptyIDs)
	})

	t.Run("unknown action", func(t *testing.T) {
		f := newOrgFixture(t)
		_, err := f.svc.Bulk(context.Background(), admin, []string{uuid.NewString()}, "publish")
		assert.ErrorIs(t, err, domain.ErrInvalidAction)
	})

	t.Run("maintainer cannot delete", func(t *testing.T) {
		f := newOrgFixture(t)
		_, err := f.svc.Bulk(context.Background(), maintainer, []string{uuid.NewString()}, "delete")
		assert.ErrorIs(t, err, domain.ErrAdminOnly)
	})

	t.Run("verify notifies every organization", func(t *testing.T) {
		f := newOrgFixture(t)
		a, b := uuid.New(), uuid.New()

		f.orgs.EXPECT().ApplyTransition(gomock.Any(), []uuid.UUID{a, b}, gomock.Any()).Return(int64(2), nil)
		f.orgs.EXPECT().FindByIDs(gomock.Any(), []uuid.UUID{a, b}).Return([]*model.OrganizationProfile{
			{ID: a, VerifiedStatus: model.VerifiedVerified, User: &model.User{Email: "a@acme.io"}},
			{ID: b, VerifiedStatus: model.VerifiedVerified, User: &model.User{Email: "b@acme.io"}},
		}, nil)
		f.mailer.EXPECT().SendEmail(gomock.Any(), gomock.Any()).Return(nil).Times(2)
		f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.Bulk(context.Background(), maintainer, []string{a.String(), b.String()}, "approve")
		require.NoError(t, err)
		assert.EqualValues(t, 2, res.Affected)
	})

	t.Run("missing ids abort the batch", func(t *testing.T) {
		f := newOrgFixture(t)
		missing := uuid.New()
		f.orgs.EXPECT().
			DeleteCascade(gomock.Any(), []uuid.UUID{missing}).
			Return(int64(0), domain.ErrOrganizationNotFound.WithDetails(missing.String()))

		_, err := f.svc.Delete(context.Background(), admin, missing.String())
		require.ErrorIs(t, err, domain.ErrOrganizationNotFound)

		var derr *domain.Error
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, []string{missing.String()}, derr.Details)
	})
}
