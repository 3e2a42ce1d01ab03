package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/flowcrm/flowcrm-go/internal/model"
	"github.com/flowcrm/flowcrm-go/internal/repository"
	"github.com/flowcrm/flowcrm-go/internal/service"
)

// DealsHandler extends the shared CRUD surface with the pipeline stage
// transition endpoint used by the board's drag-and-drop.
type DealsHandler struct {
	*RecordsHandler[model.Deal, model.DealPatch, *model.Deal]
	pipeline *service.Pipeline
}

// NewDealsHandler creates a new DealsHandler.
func NewDealsHandler(repo *repository.DealRecords, pipeline *service.Pipeline) *DealsHandler {
	return &DealsHandler{
		RecordsHandler: NewRecordsHandler(repo, "deal"),
		pipeline:       pipeline,
	}
}

type moveStageRequest struct {
	Stage string `json:"stage"`
}

// HandleMoveStage handles PUT /api/deals/{id}/stage requests. The stage
// must be one of the fixed vocabulary; everything else about the deal is
// left untouched.
func (h *DealsHandler) HandleMoveStage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid record id"))
		return
	}

	var req moveStageRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	deal, err := h.pipeline.MoveStage(r.Context(), id, req.Stage)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStage):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, repository.ErrRecordNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse("deal not found"))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, deal)
}
