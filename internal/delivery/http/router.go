package http

import (
	"net/http"

	"clinical-trial-backend/internal/delivery/http/handler"
	"clinical-trial-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router         *mux.Router
	authHandler    *handler.AuthHandler
	intakeHandler  *handler.IntakeHandler
	trialHandler   *handler.TrialHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
	corsMiddleware *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	intakeHandler *handler.IntakeHandler,
	trialHandler *handler.TrialHandler,
	adminHandler *handler.AdminHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:         mux.NewRouter(),
		authHandler:    authHandler,
		intakeHandler:  intakeHandler,
		trialHandler:   trialHandler,
		adminHandler:   adminHandler,
		authMiddleware: authMiddleware,
		corsMiddleware: corsMiddleware,
	}
}

// Setup wires the route table. Paths stay at the top level because the
// portal front end consumes them exactly where the old API served them.
func (r *Router) Setup() *mux.Router {
	// Health check
	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	r.router.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	r.router.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	r.router.HandleFunc("/refresh_token", r.authHandler.RefreshToken).Methods(http.MethodPost)
	r.router.HandleFunc("/check_session", r.authHandler.CheckSession).Methods(http.MethodGet)

	// Auth routes (protected)
	logout := r.router.Path("/logout").Subrouter()
	logout.Use(r.authMiddleware.Authenticate)
	logout.Methods(http.MethodPost).HandlerFunc(r.authHandler.Logout)

	// Patient routes (protected - patient only)
	patient := r.router.NewRoute().Subrouter()
	patient.Use(r.authMiddleware.Authenticate)
	patient.Use(middleware.RequirePatient)

	patient.HandleFunc("/patient_form/draft", r.intakeHandler.GetDraft).Methods(http.MethodGet)
	patient.HandleFunc("/patient_form/draft/{field}", r.intakeHandler.SetDraftField).Methods(http.MethodPut)
	patient.HandleFunc("/patient_form", r.intakeHandler.Submit).Methods(http.MethodPost)
	patient.HandleFunc("/trials", r.trialHandler.ListTrials).Methods(http.MethodGet)
	patient.HandleFunc("/applications", r.trialHandler.ListApplications).Methods(http.MethodGet)
	patient.HandleFunc("/applications", r.trialHandler.AddApplication).Methods(http.MethodPost)
	patient.HandleFunc("/applications/{id}/status", r.trialHandler.UpdateApplicationStatus).Methods(http.MethodPatch)
	patient.HandleFunc("/activities", r.trialHandler.RecentActivities).Methods(http.MethodGet)
	patient.HandleFunc("/dashboard", r.trialHandler.Dashboard).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := r.router.NewRoute().Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/admin_dashboard", r.adminHandler.Dashboard).Methods(http.MethodGet)
	admin.HandleFunc("/check/{patientId}", r.adminHandler.CheckEligibility).Methods(http.MethodGet)
	admin.HandleFunc("/trials", r.trialHandler.CreateTrial).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
