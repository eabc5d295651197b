package handler

import (
	"net/http"

	"github.com/dangerclosesec/trainhub/internal/auth"
	"github.com/dangerclosesec/trainhub/internal/service"
	"github.com/go-chi/chi/v5"
)

type MaintainerHandler struct {
	maintainers *service.MaintainerService
	pager       Pager
}

func NewMaintainerHandler(maintainers *service.MaintainerService, pager Pager) *MaintainerHandler {
	return &MaintainerHandler{maintainers: maintainers, pager: pager}
}

func (h *MaintainerHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, pagination, err := h.maintainers.List(r.Context(), service.MaintainerFilter{
		Status: q.Get("status"),
		Search: q.Get("search"),
	}, h.pager.page(r))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, listResponse("maintainers", items, pagination))
}

func (h *MaintainerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input service.UpdateMaintainerInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(w, r, err)
		return
	}
	m, err := h.maintainers.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, m)
}

func (h *MaintainerHandler) Bulk(w http.ResponseWriter, r *http.Request) {
	ids, action, err := decodeBulk(w, r, "maintainerIds")
	if err != nil {
		handleError(w, r, err)
		return
	}
	result, err := h.maintainers.Bulk(r.Context(), ids, action)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

type FreelancerHandler struct {
	freelancers *service.FreelancerService
	pager       Pager
}

func NewFreelancerHandler(freelancers *service.FreelancerService, pager Pager) *FreelancerHandler {
	return &FreelancerHandler{freelancers: freelancers, pager: pager}
}

func (h *FreelancerHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, pagination, err := h.freelancers.List(r.Context(), service.FreelancerFilter{
		VerificationStatus: q.Get("verificationStatus"),
		Search:             q.Get("search"),
	}, h.pager.page(r))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, listResponse("freelancers", items, pagination))
}

func (h *FreelancerHandler) Get(w http.ResponseWriter, r *http.Request) {
	f, err := h.freelancers.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, f)
}

func (h *FreelancerHandler) Me(w http.ResponseWriter, r *http.Request) {
	f, err := h.freelancers.Me(r.Context(), auth.FromContext(r.Context()))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, f)
}

func (h *FreelancerHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var input service.UpdateFreelancerInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(w, r, err)
		return
	}
	f, err := h.freelancers.UpdateMe(r.Context(), auth.FromContext(r.Context()), input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, f)
}

func (h *FreelancerHandler) Bulk(w http.ResponseWriter, r *http.Request) {
	ids, action, err := decodeBulk(w, r, "freelancerIds")
	if err != nil {
		handleError(w, r, err)
		return
	}
	result, err := h.freelancers.Bulk(r.Context(), ids, action)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}
