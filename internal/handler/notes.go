package handler

import (
	"net/http"

	"github.com/flowcrm/flowcrm-go/internal/model"
	"github.com/flowcrm/flowcrm-go/internal/repository"
)

// NotesHandler extends the shared CRUD surface with the entity-reference
// filter on list: GET /api/notes?entityType=deal&entityId=<id>.
type NotesHandler struct {
	*RecordsHandler[model.Note, model.NotePatch, *model.Note]
	repo *repository.NoteRecords
}

// NewNotesHandler creates a new NotesHandler.
func NewNotesHandler(repo *repository.NoteRecords) *NotesHandler {
	return &NotesHandler{
		RecordsHandler: NewRecordsHandler(repo, "note"),
		repo:           repo,
	}
}

// HandleList handles GET /api/notes requests. When both entityType and
// entityId are supplied only matching notes are returned; otherwise the
// full collection is.
func (h *NotesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	notes, err := h.repo.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	entityType := r.URL.Query().Get("entityType")
	entityID := r.URL.Query().Get("entityId")
	if entityType != "" && entityID != "" {
		filtered := make([]model.Note, 0, len(notes))
		for _, n := range notes {
			if n.EntityType == entityType && n.EntityID == entityID {
				filtered = append(filtered, n)
			}
		}
		notes = filtered
	}

	writeJSON(w, http.StatusOK, notes)
}
