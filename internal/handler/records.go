package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/flowcrm/flowcrm-go/internal/middleware"
	"github.com/flowcrm/flowcrm-go/internal/repository"
)

// RecordsHandler serves the shared CRUD surface for one entity
// collection: list, create, patch-update and idempotent delete.
type RecordsHandler[T any, P any, PT interface {
	*T
	repository.Record[P]
}] struct {
	repo *repository.Records[T, P, PT]
	name string
}

// NewRecordsHandler creates a handler for one collection. name is the
// singular entity name used in error messages ("contact", "deal", ...).
func NewRecordsHandler[T any, P any, PT interface {
	*T
	repository.Record[P]
}](repo *repository.Records[T, P, PT], name string) *RecordsHandler[T, P, PT] {
	return &RecordsHandler[T, P, PT]{repo: repo, name: name}
}

// HandleList handles GET /api/{collection} requests.
func (h *RecordsHandler[T, P, PT]) HandleList(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// HandleCreate handles POST /api/{collection} requests.
func (h *RecordsHandler[T, P, PT]) HandleCreate(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var item T
	if !decodeJSON(w, r, &item) {
		return
	}

	created, err := h.repo.Create(r.Context(), claims, item)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}
	writeJSON(w, http.StatusOK, created)
}

// HandleUpdate handles PUT /api/{collection}/{id} requests. The patch
// type carries only client-editable fields, so id, createdBy and
// createdAt cannot be overwritten by the payload.
func (h *RecordsHandler[T, P, PT]) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid record id"))
		return
	}

	var patch P
	if !decodeJSON(w, r, &patch) {
		return
	}

	updated, err := h.repo.Update(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(h.name+" not found"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// HandleDelete handles DELETE /api/{collection}/{id} requests. Deleting
// an id that does not exist still reports success.
func (h *RecordsHandler[T, P, PT]) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid record id"))
		return
	}

	if err := h.repo.Delete(r.Context(), id); err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
