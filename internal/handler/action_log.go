package handler

import (
	"net/http"

	"github.com/dangerclosesec/trainhub/internal/service"
)

// ActionLogHandler serves the administrative action log.
type ActionLogHandler struct {
	logs  *service.ActionLogService
	pager Pager
}

// NewActionLogHandler creates a new action log handler
func NewActionLogHandler(logs *service.ActionLogService, pager Pager) *ActionLogHandler {
	return &ActionLogHandler{logs: logs, pager: pager}
}

// List handles requests to retrieve action logs with filtering. Timestamps
// are RFC3339.
func (h *ActionLogHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	logs, pagination, err := h.logs.List(r.Context(), service.ActionLogFilter{
		EntityType: q.Get("entityType"),
		Action:     q.Get("action"),
		ActorID:    q.Get("actorId"),
		StartTime:  q.Get("startTime"),
		EndTime:    q.Get("endTime"),
	}, h.pager.page(r))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, listResponse("logs", logs, pagination))
}
