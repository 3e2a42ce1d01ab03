package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/flowcrm/flowcrm-go/internal/crypto"
	"github.com/flowcrm/flowcrm-go/internal/middleware"
	"github.com/flowcrm/flowcrm-go/internal/model"
	"github.com/flowcrm/flowcrm-go/internal/repository"
	"github.com/flowcrm/flowcrm-go/internal/service"
	"github.com/flowcrm/flowcrm-go/internal/store"
)

const testSecret = "test-secret"

// newTestRouter wires the authenticated API surface against a temp data
// directory, mirroring the route table in cmd/api.
func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	st := store.New(t.TempDir())

	contacts := repository.NewRecords[model.Contact, model.ContactPatch](st, repository.CollectionContacts)
	companies := repository.NewRecords[model.Company, model.CompanyPatch](st, repository.CollectionCompanies)
	deals := repository.NewRecords[model.Deal, model.DealPatch](st, repository.CollectionDeals)
	tasks := repository.NewRecords[model.Task, model.TaskPatch](st, repository.CollectionTasks)
	activities := repository.NewLog[model.Activity, model.ActivityPatch](st, repository.CollectionActivities)
	notes := repository.NewRecords[model.Note, model.NotePatch](st, repository.CollectionNotes)

	contactHandler := NewRecordsHandler(contacts, "contact")
	dealHandler := NewDealsHandler(deals, service.NewPipeline(deals))
	activityHandler := NewRecordsHandler(activities, "activity")
	noteHandler := NewNotesHandler(notes)
	dashboardHandler := NewDashboardHandler(contacts, companies, deals, tasks, activities)

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(testSecret))

		r.Get("/api/contacts", contactHandler.HandleList)
		r.Post("/api/contacts", contactHandler.HandleCreate)
		r.Put("/api/contacts/{id}", contactHandler.HandleUpdate)
		r.Delete("/api/contacts/{id}", contactHandler.HandleDelete)

		r.Get("/api/deals", dealHandler.HandleList)
		r.Post("/api/deals", dealHandler.HandleCreate)
		r.Put("/api/deals/{id}/stage", dealHandler.HandleMoveStage)

		r.Get("/api/activities", activityHandler.HandleList)
		r.Post("/api/activities", activityHandler.HandleCreate)

		r.Get("/api/notes", noteHandler.HandleList)
		r.Post("/api/notes", noteHandler.HandleCreate)

		r.Get("/api/dashboard/stats", dashboardHandler.HandleStats)
		r.Get("/api/dashboard/reports", dashboardHandler.HandleReports)
	})
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		if strings.HasPrefix(req.URL.Path, "/api") {
			writeJSON(w, http.StatusNotFound, errorResponse("API endpoint not found"))
			return
		}
		http.NotFound(w, req)
	})
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))

	token, err := crypto.IssueToken("u-1", "alice", testSecret)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestContactCRUDOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/contacts", `{"firstName":"Jane","lastName":"Doe","email":"jane@acme.test"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var created model.Contact
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	require.Equal(t, "u-1", created.CreatedBy)

	// Patch one field; server fields in the payload are ignored.
	rec = doJSON(t, r, http.MethodPut, "/api/contacts/"+created.ID, `{"phone":"555-0101","id":"evil","createdBy":"evil"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated model.Contact
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, "u-1", updated.CreatedBy)
	require.Equal(t, "Jane", updated.FirstName)
	require.Equal(t, "555-0101", updated.Phone)

	rec = doJSON(t, r, http.MethodDelete, "/api/contacts/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"success":true}`, rec.Body.String())

	// Idempotent delete.
	rec = doJSON(t, r, http.MethodDelete, "/api/contacts/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/contacts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())
}

func TestUpdateUnknownContact(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPut, "/api/contacts/missing", `{"phone":"555-0101"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error":"contact not found"}`, rec.Body.String())
}

func TestMoveStageOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/deals", `{"name":"Acme renewal","value":100}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var deal model.Deal
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &deal))
	require.Equal(t, model.StageProspecting, deal.Stage)

	rec = doJSON(t, r, http.MethodPut, "/api/deals/"+deal.ID+"/stage", `{"stage":"Bogus"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, r, http.MethodPut, "/api/deals/"+deal.ID+"/stage", `{"stage":"Won"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/deals", "")
	var deals []model.Deal
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &deals))
	require.Len(t, deals, 1)
	require.Equal(t, model.StageWon, deals[0].Stage)
}

func TestActivitiesNewestFirstOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/activities", `{"type":"Call","subject":"first"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, r, http.MethodPost, "/api/activities", `{"type":"Email","subject":"second"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/activities", "")
	var activities []model.Activity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &activities))
	require.Len(t, activities, 2)
	require.Equal(t, "second", activities[0].Subject)
}

func TestNotesFilterOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/notes", `{"entityType":"deal","entityId":"d-1","content":"call back"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, r, http.MethodPost, "/api/notes", `{"entityType":"contact","entityId":"c-1","content":"met at expo"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/notes?entityType=deal&entityId=d-1", "")
	var notes []model.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notes))
	require.Len(t, notes, 1)
	require.Equal(t, "call back", notes[0].Content)

	rec = doJSON(t, r, http.MethodGet, "/api/notes", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notes))
	require.Len(t, notes, 2)
}

func TestDashboardStatsOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/deals", `{"name":"a","value":100,"stage":"Won"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, r, http.MethodPost, "/api/deals", `{"name":"b","value":50}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, r, http.MethodPost, "/api/deals", `{"name":"c","value":"bad","stage":"Won"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/dashboard/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var stats service.DashboardStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	require.Equal(t, 3, stats.TotalDeals)
	require.Equal(t, 150.0, stats.TotalRevenue)
	require.Equal(t, 2, stats.WonDeals)
	require.Equal(t, 66.7, stats.ConversionRate)
}

func TestDashboardReportsOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/deals", `{"name":"a","value":100,"stage":"Won"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, r, http.MethodPost, "/api/activities", `{"type":"Call","subject":"s"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/dashboard/reports", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var reports struct {
		RevenueByMonth  map[string]float64 `json:"revenueByMonth"`
		ActivitySummary map[string]int     `json:"activitySummary"`
		PipelineTotals  map[string]float64 `json:"pipelineTotals"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reports))
	require.Equal(t, 1, reports.ActivitySummary["Call"])
	require.Equal(t, 100.0, reports.PipelineTotals["Won"])
	require.Len(t, reports.RevenueByMonth, 1)
}

func TestUnmatchedAPIRoute(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/nope", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error":"API endpoint not found"}`, rec.Body.String())
}

func TestInvalidBodyRejected(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/contacts", `{not json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
