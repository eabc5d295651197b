package handler

import (
	"net/http"

	"github.com/dangerclosesec/trainhub/internal/auth"
	"github.com/dangerclosesec/trainhub/internal/service"
	"github.com/go-chi/chi/v5"
)

type TrainingHandler struct {
	trainings *service.TrainingService
	pager     Pager
}

func NewTrainingHandler(trainings *service.TrainingService, pager Pager) *TrainingHandler {
	return &TrainingHandler{trainings: trainings, pager: pager}
}

func (h *TrainingHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, pagination, err := h.trainings.List(r.Context(), auth.FromContext(r.Context()), service.TrainingFilter{
		Search:         q.Get("search"),
		CategoryID:     q.Get("categoryId"),
		LocationID:     q.Get("locationId"),
		StackID:        q.Get("stackId"),
		OrganizationID: q.Get("organizationId"),
		Type:           q.Get("type"),
		Mode:           q.Get("mode"),
		IsPublished:    q.Get("isPublished"),
		IsActive:       q.Get("isActive"),
	}, h.pager.page(r))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, listResponse("trainings", items, pagination))
}

func (h *TrainingHandler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.trainings.Get(r.Context(), auth.FromContext(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, t)
}

func (h *TrainingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateTrainingInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(w, r, err)
		return
	}
	t, err := h.trainings.Create(r.Context(), auth.FromContext(r.Context()), input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, t)
}

func (h *TrainingHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input service.UpdateTrainingInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(w, r, err)
		return
	}
	t, err := h.trainings.Update(r.Context(), auth.FromContext(r.Context()), chi.URLParam(r, "id"), input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, t)
}

func (h *TrainingHandler) Bulk(w http.ResponseWriter, r *http.Request) {
	ids, action, err := decodeBulk(w, r, "trainingIds")
	if err != nil {
		handleError(w, r, err)
		return
	}
	result, err := h.trainings.Bulk(r.Context(), auth.FromContext(r.Context()), ids, action)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

func (h *TrainingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	result, err := h.trainings.Delete(r.Context(), auth.FromContext(r.Context()), r.URL.Query().Get("id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

func (h *TrainingHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var input service.ApplyInput
	// The cover letter is optional, so an empty body is fine.
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &input); err != nil {
			handleError(w, r, err)
			return
		}
	}
	app, err := h.trainings.Apply(r.Context(), auth.FromContext(r.Context()), chi.URLParam(r, "id"), input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, app)
}

func (h *TrainingHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	items, pagination, err := h.trainings.ListApplications(r.Context(), auth.FromContext(r.Context()), chi.URLParam(r, "id"), h.pager.page(r))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, listResponse("applications", items, pagination))
}

func (h *TrainingHandler) DecideApplication(w http.ResponseWriter, r *http.Request) {
	var input service.DecideApplicationInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(w, r, err)
		return
	}
	app, err := h.trainings.DecideApplication(r.Context(), auth.FromContext(r.Context()),
		chi.URLParam(r, "id"), chi.URLParam(r, "applicationId"), input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, app)
}

func (h *TrainingHandler) AddFeedback(w http.ResponseWriter, r *http.Request) {
	var input service.FeedbackInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(w, r, err)
		return
	}
	fb, err := h.trainings.AddFeedback(r.Context(), auth.FromContext(r.Context()), chi.URLParam(r, "id"), input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, fb)
}

func (h *TrainingHandler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	items, pagination, err := h.trainings.ListFeedback(r.Context(), auth.FromContext(r.Context()), chi.URLParam(r, "id"), h.pager.page(r))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, listResponse("feedback", items, pagination))
}
