package handler

import (
	"net/http"

	"github.com/dangerclosesec/trainhub/internal/auth"
	"github.com/dangerclosesec/trainhub/internal/service"
	"github.com/go-chi/chi/v5"
)

type OrganizationHandler struct {
	orgs  *service.OrganizationService
	pager Pager
}

func NewOrganizationHandler(orgs *service.OrganizationService, pager Pager) *OrganizationHandler {
	return &OrganizationHandler{orgs: orgs, pager: pager}
}

func (h *OrganizationHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	orgs, pagination, err := h.orgs.List(r.Context(), service.OrganizationFilter{
		Search:             q.Get("search"),
		VerificationStatus: q.Get("verificationStatus"),
		ActiveStatus:       q.Get("activeStatus"),
	}, h.pager.page(r))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, listResponse("organizations", orgs, pagination))
}

func (h *OrganizationHandler) Get(w http.ResponseWriter, r *http.Request) {
	org, err := h.orgs.Get(r.Context(), auth.FromContext(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, org)
}

func (h *OrganizationHandler) Me(w http.ResponseWriter, r *http.Request) {
	org, err := h.orgs.Me(r.Context(), auth.FromContext(r.Context()))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, org)
}

func (h *OrganizationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateOrganizationInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(w, r, err)
		return
	}
	org, err := h.orgs.Create(r.Context(), input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, org)
}

func (h *OrganizationHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input service.UpdateOrganizationInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(w, r, err)
		return
	}
	org, err := h.orgs.Update(r.Context(), auth.FromContext(r.Context()), chi.URLParam(r, "id"), input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, org)
}

func (h *OrganizationHandler) Bulk(w http.ResponseWriter, r *http.Request) {
	ids, action, err := decodeBulk(w, r, "organizationIds")
	if err != nil {
		handleError(w, r, err)
		return
	}
	result, err := h.orgs.Bulk(r.Context(), auth.FromContext(r.Context()), ids, action)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

func (h *OrganizationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	result, err := h.orgs.Delete(r.Context(), auth.FromContext(r.Context()), r.URL.Query().Get("id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}
