package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/flowcrm/flowcrm-go/internal/config"
	"github.com/flowcrm/flowcrm-go/internal/crypto"
	"github.com/flowcrm/flowcrm-go/internal/handler"
	"github.com/flowcrm/flowcrm-go/internal/middleware"
	"github.com/flowcrm/flowcrm-go/internal/model"
	"github.com/flowcrm/flowcrm-go/internal/repository"
	"github.com/flowcrm/flowcrm-go/internal/service"
	"github.com/flowcrm/flowcrm-go/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	st := store.New(cfg.DataDir)
	if err := st.Init(repository.Collections()...); err != nil {
		slog.Error("initializing data directory", "error", err)
		os.Exit(1)
	}

	users := repository.NewUsers(st)
	contacts := repository.NewRecords[model.Contact, model.ContactPatch](st, repository.CollectionContacts)
	companies := repository.NewRecords[model.Company, model.CompanyPatch](st, repository.CollectionCompanies)
	deals := repository.NewRecords[model.Deal, model.DealPatch](st, repository.CollectionDeals)
	tasks := repository.NewRecords[model.Task, model.TaskPatch](st, repository.CollectionTasks)
	activities := repository.NewLog[model.Activity, model.ActivityPatch](st, repository.CollectionActivities)
	notes := repository.NewRecords[model.Note, model.NotePatch](st, repository.CollectionNotes)

	seedHash, err := crypto.HashPassword(cfg.SeedAdminPass)
	if err != nil {
		slog.Error("hashing seed admin password", "error", err)
		os.Exit(1)
	}
	if err := users.EnsureAdmin(context.Background(), seedHash); err != nil {
		slog.Error("seeding admin user", "error", err)
		os.Exit(1)
	}

	authService := service.NewAuthService(users, cfg.JWTSecret)
	pipeline := service.NewPipeline(deals)

	authHandler := handler.NewAuthHandler(authService)
	contactHandler := handler.NewRecordsHandler(contacts, "contact")
	companyHandler := handler.NewRecordsHandler(companies, "company")
	dealHandler := handler.NewDealsHandler(deals, pipeline)
	taskHandler := handler.NewRecordsHandler(tasks, "task")
	activityHandler := handler.NewRecordsHandler(activities, "activity")
	noteHandler := handler.NewNotesHandler(notes)
	dashboardHandler := handler.NewDashboardHandler(contacts, companies, deals, tasks, activities)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","message":"CRM server is running","timestamp":"` +
			time.Now().UTC().Format(time.RFC3339) + `"}`))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/api/auth/register", authHandler.HandleRegister)
		r.Post("/api/auth/login", authHandler.HandleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWTSecret))

		r.Get("/api/contacts", contactHandler.HandleList)
		r.Post("/api/contacts", contactHandler.HandleCreate)
		r.Put("/api/contacts/{id}", contactHandler.HandleUpdate)
		r.Delete("/api/contacts/{id}", contactHandler.HandleDelete)

		r.Get("/api/companies", companyHandler.HandleList)
		r.Post("/api/companies", companyHandler.HandleCreate)
		r.Put("/api/companies/{id}", companyHandler.HandleUpdate)
		r.Delete("/api/companies/{id}", companyHandler.HandleDelete)

		r.Get("/api/deals", dealHandler.HandleList)
		r.Post("/api/deals", dealHandler.HandleCreate)
		r.Put("/api/deals/{id}", dealHandler.HandleUpdate)
		r.Put("/api/deals/{id}/stage", dealHandler.HandleMoveStage)
		r.Delete("/api/deals/{id}", dealHandler.HandleDelete)

		r.Get("/api/tasks", taskHandler.HandleList)
		r.Post("/api/tasks", taskHandler.HandleCreate)
		r.Put("/api/tasks/{id}", taskHandler.HandleUpdate)
		r.Delete("/api/tasks/{id}", taskHandler.HandleDelete)

		// Activities are an append-only feed: no update or delete routes.
		r.Get("/api/activities", activityHandler.HandleList)
		r.Post("/api/activities", activityHandler.HandleCreate)

		r.Get("/api/notes", noteHandler.HandleList)
		r.Post("/api/notes", noteHandler.HandleCreate)
		r.Put("/api/notes/{id}", noteHandler.HandleUpdate)
		r.Delete("/api/notes/{id}", noteHandler.HandleDelete)

		r.Get("/api/dashboard/stats", dashboardHandler.HandleStats)
		r.Get("/api/dashboard/reports", dashboardHandler.HandleReports)
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		if strings.HasPrefix(req.URL.Path, "/api") {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"API endpoint not found"}`))
			return
		}
		http.NotFound(w, req)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "data_dir", cfg.DataDir)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
