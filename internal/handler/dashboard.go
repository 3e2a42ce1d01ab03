package handler

import (
	"net/http"

	"github.com/flowcrm/flowcrm-go/internal/repository"
	"github.com/flowcrm/flowcrm-go/internal/service"
)

// DashboardHandler composes repository snapshots into summary views.
type DashboardHandler struct {
	contacts   *repository.ContactRecords
	companies  *repository.CompanyRecords
	deals      *repository.DealRecords
	tasks      *repository.TaskRecords
	activities *repository.ActivityRecords
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(
	contacts *repository.ContactRecords,
	companies *repository.CompanyRecords,
	deals *repository.DealRecords,
	tasks *repository.TaskRecords,
	activities *repository.ActivityRecords,
) *DashboardHandler {
	return &DashboardHandler{
		contacts:   contacts,
		companies:  companies,
		deals:      deals,
		tasks:      tasks,
		activities: activities,
	}
}

// HandleStats handles GET /api/dashboard/stats requests.
func (h *DashboardHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	contacts, err := h.contacts.List(ctx)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}
	companies, err := h.companies.List(ctx)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}
	deals, err := h.deals.List(ctx)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}
	tasks, err := h.tasks.List(ctx)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, service.Stats(contacts, companies, deals, tasks))
}

type reportsResponse struct {
	RevenueByMonth  map[string]float64 `json:"revenueByMonth"`
	ActivitySummary map[string]int     `json:"activitySummary"`
	PipelineTotals  map[string]float64 `json:"pipelineTotals"`
}

// HandleReports handles GET /api/dashboard/reports requests: the grouped
// aggregations behind the reports page.
func (h *DashboardHandler) HandleReports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	deals, err := h.deals.List(ctx)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}
	activities, err := h.activities.List(ctx)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, reportsResponse{
		RevenueByMonth:  service.RevenueByMonth(deals),
		ActivitySummary: service.ActivitySummary(activities),
		PipelineTotals:  service.PipelineTotals(deals),
	})
}
