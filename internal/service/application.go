package service

import (
	"context"
	"strings"

	"github.com/dangerclosesec/trainhub/internal/audit"
	"github.com/dangerclosesec/trainhub/internal/auth"
	"github.com/dangerclosesec/trainhub/internal/domain"
	"github.com/dangerclosesec/trainhub/internal/model"
	"github.com/dangerclosesec/trainhub/internal/repository"
	"github.com/dangerclosesec/trainhub/internal/validation"
)

type ApplyInput struct {
	CoverLetter *string `json:"coverLetter"`
}

// Apply registers the calling freelancer for a training that is both
// published and active. A freelancer applies at most once per training.
func (s *TrainingService) Apply(ctx context.Context, actor *auth.Principal, rawTrainingID string, in ApplyInput) (*model.TrainingApplication, error) {
	id, err := parseID(rawTrainingID)
	if err != nil {
		return nil, err
	}
	freelancer, err := s.stores.Freelancers.FindByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	t, err := s.stores.Trainings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !t.IsPublished {
		return nil, domain.ErrTrainingNotFound
	}
	if !t.AcceptsApplications() {
		return nil, domain.ErrTrainingClosed
	}

	app := &model.TrainingApplication{
		TrainingID:   t.ID,
		FreelancerID: freelancer.ID,
		CoverLetter:  trimmedPtr(in.CoverLetter),
		Status:       model.ApplicationPending,
	}
	if err := s.stores.Applications.Create(ctx, app); err != nil {
		return nil, err
	}

	record(ctx, s.audit, s.logger, audit.Entry{
		EntityType: model.EntityApplication,
		Action:     "create",
		EntityIDs:  []string{app.ID.String()},
		Details:    map[string]interface{}{"trainingId": t.ID.String()},
	})
	return app, nil
}

func (s *TrainingService) ListApplications(ctx context.Context, actor *auth.Principal, rawTrainingID string, page repository.Page) ([]*model.TrainingApplication, Pagination, error) {
	t, err := s.managedTraining(ctx, actor, rawTrainingID)
	if err != nil {
		return nil, Pagination{}, err
	}
	apps, total, err := s.stores.Applications.ListByTraining(ctx, t.ID, page)
	if err != nil {
		return nil, Pagination{}, err
	}
	return apps, NewPagination(page, total), nil
}

type DecideApplicationInput struct {
	Status model.ApplicationStatus `json:"status"`
}

// DecideApplication accepts or rejects an application to one of the
// caller's trainings.
func (s *TrainingService) DecideApplication(ctx context.Context, actor *auth.Principal, rawTrainingID, rawApplicationID string, in DecideApplicationInput) (*model.TrainingApplication, error) {
	status := model.ApplicationStatus(strings.ToUpper(strings.TrimSpace(string(in.Status))))
	if status != model.ApplicationAccepted && status != model.ApplicationRejected {
		return nil, domain.ErrInvalidStatus.WithDetails("status must be ACCEPTED or REJECTED")
	}

	t, err := s.managedTraining(ctx, actor, rawTrainingID)
	if err != nil {
		return nil, err
	}
	appID, err := parseID(rawApplicationID)
	if err != nil {
		return nil, err
	}
	app, err := s.stores.Applications.FindByID(ctx, appID)
	if err != nil {
		return nil, err
	}
	if app.TrainingID != t.ID {
		return nil, domain.ErrApplicationNotFound
	}

	if err := s.stores.Applications.UpdateStatus(ctx, app.ID, status); err != nil {
		return nil, err
	}
	app.Status = status

	record(ctx, s.audit, s.logger, audit.Entry{
		EntityType: model.EntityApplication,
		Action:     strings.ToLower(string(status)),
		EntityIDs:  []string{app.ID.String()},
	})
	return app, nil
}

type FeedbackInput struct {
	Rating  int     `json:"rating" validate:"required,min=1,max=5"`
	Comment *string `json:"comment"`
}

// AddFeedback stores a rating for a training and recomputes the owning
// organization's average rating.
func (s *TrainingService) AddFeedback(ctx context.Context, actor *auth.Principal, rawTrainingID string, in FeedbackInput) (*model.TrainingFeedback, error) {
	if err := validation.Struct(s.validate, in); err != nil {
		return nil, err
	}
	t, err := s.managedTraining(ctx, actor, rawTrainingID)
	if err != nil {
		return nil, err
	}

	fb := &model.TrainingFeedback{
		OrganizationID: t.OrganizationID,
		TrainingID:     t.ID,
		Rating:         in.Rating,
		Comment:        trimmedPtr(in.Comment),
	}
	if err := s.stores.Feedback.Create(ctx, fb); err != nil {
		return nil, err
	}

	record(ctx, s.audit, s.logger, audit.Entry{
		EntityType: model.EntityFeedback,
		Action:     "create",
		EntityIDs:  []string{fb.ID.String()},
		Details:    map[string]interface{}{"trainingId": t.ID.String(), "rating": in.Rating},
	})
	return fb, nil
}

func (s *TrainingService) ListFeedback(ctx context.Context, actor *auth.Principal, rawTrainingID string, page repository.Page) ([]*model.TrainingFeedback, Pagination, error) {
	t, err := s.Get(ctx, actor, rawTrainingID)
	if err != nil {
		return nil, Pagination{}, err
	}
	items, total, err := s.stores.Feedback.ListByTraining(ctx, t.ID, page)
	if err != nil {
		return nil, Pagination{}, err
	}
	return items, NewPagination(page, total), nil
}

func (s *TrainingService) managedTraining(ctx context.Context, actor *auth.Principal, rawID string) (*model.Training, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	t, err := s.stores.Trainings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.canManage(ctx, actor, t); err != nil {
		return nil, err
	}
	return t, nil
}
