package handler

import (
	"context"
	"net/http"

	"github.com/dangerclosesec/trainhub/internal/model"
	"github.com/dangerclosesec/trainhub/internal/service"
	"github.com/go-chi/chi/v5"
)

// ReferenceHandler serves categories, locations and stacks. C and U are the
// create and update payloads.
type ReferenceHandler[T model.Reference, C any, U any] struct {
	svc    *service.ReferenceService[T]
	create func(context.Context, C) (*T, error)
	update func(context.Context, string, U) (*T, error)
	plural string
	bulkID string
	pager  Pager
}

func NewCategoryHandler(svc *service.CategoryService, pager Pager) *ReferenceHandler[model.TrainingCategory, service.NamedReferenceInput, service.UpdateNamedReferenceInput] {
	return &ReferenceHandler[model.TrainingCategory, service.NamedReferenceInput, service.UpdateNamedReferenceInput]{
		svc:    svc.ReferenceService,
		create: svc.Create,
		update: svc.Update,
		plural: "categories",
		bulkID: "categoryIds",
		pager:  pager,
	}
}

func NewStackHandler(svc *service.StackService, pager Pager) *ReferenceHandler[model.Stack, service.NamedReferenceInput, service.UpdateNamedReferenceInput] {
	return &ReferenceHandler[model.Stack, service.NamedReferenceInput, service.UpdateNamedReferenceInput]{
		svc:    svc.ReferenceService,
		create: svc.Create,
		update: svc.Update,
		plural: "stacks",
		bulkID: "stackIds",
		pager:  pager,
	}
}

func NewLocationHandler(svc *service.LocationService, pager Pager) *ReferenceHandler[model.TrainingLocation, service.LocationInput, service.UpdateLocationInput] {
	return &ReferenceHandler[model.TrainingLocation, service.LocationInput, service.UpdateLocationInput]{
		svc:    svc.ReferenceService,
		create: svc.Create,
		update: svc.Update,
		plural: "locations",
		bulkID: "locationIds",
		pager:  pager,
	}
}

func (h *ReferenceHandler[T, C, U]) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, pagination, err := h.svc.List(r.Context(), service.ReferenceFilter{
		Search:   q.Get("search"),
		IsActive: q.Get("isActive"),
	}, h.pager.page(r))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, listResponse(h.plural, items, pagination))
}

func (h *ReferenceHandler[T, C, U]) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, item)
}

func (h *ReferenceHandler[T, C, U]) Create(w http.ResponseWriter, r *http.Request) {
	var input C
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(w, r, err)
		return
	}
	item, err := h.create(r.Context(), input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, item)
}

func (h *ReferenceHandler[T, C, U]) Update(w http.ResponseWriter, r *http.Request) {
	var input U
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(w, r, err)
		return
	}
	item, err := h.update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, item)
}

func (h *ReferenceHandler[T, C, U]) Bulk(w http.ResponseWriter, r *http.Request) {
	ids, action, err := decodeBulk(w, r, h.bulkID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	result, err := h.svc.Bulk(r.Context(), ids, action)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

func (h *ReferenceHandler[T, C, U]) Delete(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Delete(r.Context(), r.URL.Query().Get("id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}
