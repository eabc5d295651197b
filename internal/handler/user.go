package handler

import (
	"net/http"

	"github.com/dangerclosesec/trainhub/internal/auth"
	"github.com/dangerclosesec/trainhub/internal/service"
	"github.com/go-chi/chi/v5"
)

type UserHandler struct {
	users *service.UserService
	pager Pager
}

func NewUserHandler(users *service.UserService, pager Pager) *UserHandler {
	return &UserHandler{users: users, pager: pager}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page := h.pager.page(r)
	users, pagination, err := h.users.List(r.Context(), service.UserFilter{
		Role:   q.Get("role"),
		Search: q.Get("search"),
	}, page)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, listResponse("users", users, pagination))
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateUserInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(w, r, err)
		return
	}
	user, err := h.users.Create(r.Context(), input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input service.UpdateUserInput
	if err := decodeJSON(w, r, &input); err != nil {
		handleError(w, r, err)
		return
	}
	user, err := h.users.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Bulk(w http.ResponseWriter, r *http.Request) {
	ids, action, err := decodeBulk(w, r, "userIds")
	if err != nil {
		handleError(w, r, err)
		return
	}
	result, err := h.users.Bulk(r.Context(), auth.FromContext(r.Context()), ids, action)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	result, err := h.users.Delete(r.Context(), auth.FromContext(r.Context()), r.URL.Query().Get("id"))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}
