package service

import (
	"context"
	"errors"

	"github.com/flowcrm/flowcrm-go/internal/model"
	"github.com/flowcrm/flowcrm-go/internal/repository"
)

var ErrInvalidStage = errors.New("invalid deal stage")

// Pipeline owns the deal stage vocabulary and applies stage transitions.
// Transitions are unrestricted: any stage is reachable from any stage,
// including out of Won and Lost.
type Pipeline struct {
	deals *repository.DealRecords
}

// NewPipeline creates a new Pipeline over the deals collection.
func NewPipeline(deals *repository.DealRecords) *Pipeline {
	return &Pipeline{deals: deals}
}

// Stages returns the fixed stage vocabulary in board order.
func (p *Pipeline) Stages() []string {
	return model.Stages()
}

// MoveStage moves a deal to a new stage. Returns ErrInvalidStage for a
// value outside the vocabulary and repository.ErrRecordNotFound for an
// unknown deal. No other validation is performed on a stage change.
func (p *Pipeline) MoveStage(ctx context.Context, dealID, stage string) (model.Deal, error) {
	if !ValidStage(stage) {
		return model.Deal{}, ErrInvalidStage
	}
	return p.deals.Update(ctx, dealID, model.DealPatch{Stage: &stage})
}

// ValidStage reports whether stage is one of the six defined values.
func ValidStage(stage string) bool {
	for _, s := range model.Stages() {
		if s == stage {
			return true
		}
	}
	return false
}

// PipelineTotals sums deal values grouped by stage. Stages with no deals
// are absent from the result; callers render a zero default. Missing or
// non-numeric values contribute 0 through the Amount decoding.
func PipelineTotals(deals []model.Deal) map[string]float64 {
	totals := make(map[string]float64)
	for _, d := range deals {
		totals[d.Stage] += d.Value.Float()
	}
	return totals
}
