package repository

import (
	"testing"
	"time"

	"github.com/dangerclosesec/trainhub/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory sqlite database with foreign keys
// enforced and the full schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.OrganizationProfile{},
		&model.MaintainerProfile{},
		&model.FreelancerProfile{},
		&model.TrainingCategory{},
		&model.TrainingLocation{},
		&model.Stack{},
		&model.Training{},
		&model.TrainingApplication{},
		&model.TrainingFeedback{},
		&model.ActionLog{},
	))
	return db
}

type fixture struct {
	t  *testing.T
	db *gorm.DB
}

func (f fixture) user(role model.Role) *model.User {
	f.t.Helper()
	u := &model.User{Email: uuid.NewString() + "@acme.test", Role: role, PasswordHash: "x"}
	require.NoError(f.t, f.db.Create(u).Error)
	return u
}

func (f fixture) organization(name string) *model.OrganizationProfile {
	f.t.Helper()
	u := f.user(model.RoleOrganization)
	org := &model.OrganizationProfile{
		UserID:           u.ID,
		OrganizationName: name,
		ContactMail:      "contact@" + name + ".test",
		CompanyLocation:  "Pune",
	}
	require.NoError(f.t, f.db.Omit("User").Create(org).Error)
	return org
}

func (f fixture) freelancer() *model.FreelancerProfile {
	f.t.Helper()
	u := f.user(model.RoleFreelancer)
	p := &model.FreelancerProfile{UserID: u.ID, Skills: model.Skills{"go"}}
	require.NoError(f.t, f.db.Omit("User").Create(p).Error)
	return p
}

func (f fixture) maintainer() *model.MaintainerProfile {
	f.t.Helper()
	u := f.user(model.RoleMaintainer)
	p := &model.MaintainerProfile{UserID: u.ID}
	require.NoError(f.t, f.db.Omit("User").Create(p).Error)
	return p
}

type refs struct {
	category *model.TrainingCategory
	location *model.TrainingLocation
	stack    *model.Stack
}

func (f fixture) refs() refs {
	f.t.Helper()
	r := refs{
		category: &model.TrainingCategory{Name: "Cloud " + uuid.NewString()[:8], IsActive: true},
		location: &model.TrainingLocation{State: "Karnataka", District: "District " + uuid.NewString()[:8], IsActive: true},
		stack:    &model.Stack{Name: "Go " + uuid.NewString()[:8], IsActive: true},
	}
	require.NoError(f.t, f.db.Create(r.category).Error)
	require.NoError(f.t, f.db.Create(r.location).Error)
	require.NoError(f.t, f.db.Create(r.stack).Error)
	return r
}

func (f fixture) training(org *model.OrganizationProfile, r refs, active bool) *model.Training {
	f.t.Helper()
	start := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	tr := &model.Training{
		Title:          "Kubernetes in practice",
		Description:    "Hands-on cluster operations",
		Skills:         model.Skills{"kubernetes", "helm"},
		CategoryID:     r.category.ID,
		LocationID:     r.location.ID,
		StackID:        r.stack.ID,
		OrganizationID: org.ID,
		Type:           model.TrainingCorporate,
		Mode:           model.ModeOnline,
		IsPublished:    true,
		IsActive:       active,
		StartDate:      start,
		EndDate:        start.AddDate(0, 0, 5),
	}
	require.NoError(f.t, f.db.Omit("Category", "Location", "Stack", "Organization").Create(tr).Error)
	return tr
}

func (f fixture) application(tr *model.Training, fl *model.FreelancerProfile) *model.TrainingApplication {
	f.t.Helper()
	a := &model.TrainingApplication{TrainingID: tr.ID, FreelancerID: fl.ID}
	require.NoError(f.t, f.db.Omit("Training", "Freelancer").Create(a).Error)
	return a
}

func (f fixture) feedback(tr *model.Training, rating int) *model.TrainingFeedback {
	f.t.Helper()
	fb := &model.TrainingFeedback{TrainingID: tr.ID, OrganizationID: tr.OrganizationID, Rating: rating}
	require.NoError(f.t, f.db.Omit("Organization", "Training").Create(fb).Error)
	return fb
}

func (f fixture) count(m any) int64 {
	f.t.Helper()
	var n int64
	require.NoError(f.t, f.db.Model(m).Count(&n).Error)
	return n
}
