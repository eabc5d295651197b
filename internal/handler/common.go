package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/dangerclosesec/trainhub/internal/domain"
	"github.com/dangerclosesec/trainhub/internal/repository"
	chmw "github.com/go-chi/chi/v5/middleware"
)

const maxBodyBytes = 1 << 20

type ErrorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	// Sets content type header
	w.Header().Set("Content-Type", "application/json")

	// Sets the HTTP status code
	w.WriteHeader(code)

	// Encodes the response
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// statusFor maps an error kind to its HTTP status. Conflicts are reported
// as 400.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// handleError writes err as a JSON error. Unexpected errors are logged and
// answered with a generic message.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed", "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, code, "Internal server error")
		return
	}

	resp := ErrorResponse{Error: err.Error()}
	var de *domain.Error
	if errors.As(err, &de) {
		resp.Error = de.Message
		resp.Details = de.Details
	}
	respondWithJSON(w, code, resp)
}

// decodeJSON reads a JSON request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Invalid("Request body is required")
		}
		return domain.Invalid("Invalid request payload")
	}
	return nil
}

// decodeBulk reads {<key>: [...], action} and also accepts "ids" for the
// id list. A missing or non-array list is reported as empty.
func decodeBulk(w http.ResponseWriter, r *http.Request, key string) ([]string, string, error) {
	var body map[string]json.RawMessage
	if err := decodeJSON(w, r, &body); err != nil {
		return nil, "", err
	}

	var action string
	if raw, ok := body["action"]; ok {
		if err := json.Unmarshal(raw, &action); err != nil {
			// Left for ParseBulk to reject after the id checks.
			action = string(raw)
		}
	}

	raw, ok := body[key]
	if !ok {
		raw, ok = body["ids"]
	}
	if !ok {
		return nil, action, domain.ErrEmptyIDs
	}
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, action, domain.ErrEmptyIDs
	}
	return ids, action, nil
}

// Pager turns page and limit query parameters into a repository page.
type Pager struct {
	DefaultLimit int
	MaxLimit     int
}

func (p Pager) page(r *http.Request) repository.Page {
	q := r.URL.Query()

	page, err := strconv.Atoi(q.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(q.Get("limit"))
	if err != nil || limit < 1 {
		limit = p.DefaultLimit
	}
	if p.MaxLimit > 0 && limit > p.MaxLimit {
		limit = p.MaxLimit
	}
	// keep (page-1)*limit within an int32 offset
	if maxPage := math.MaxInt32 / limit; page > maxPage {
		page = maxPage
	}

	return repository.Page{Page: page, Limit: limit}
}

// listResponse renders {<key>: items, pagination: ...}.
func listResponse(key string, items interface{}, pagination interface{}) map[string]interface{} {
	return map[string]interface{}{
		key:          items,
		"pagination": pagination,
	}
}
