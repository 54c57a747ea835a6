package handler

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"

	"clinical-trial-backend/internal/delivery/dto"
	"clinical-trial-backend/internal/delivery/http/middleware"
	"clinical-trial-backend/internal/trial"
	"clinical-trial-backend/internal/usecase"
	"clinical-trial-backend/pkg/response"
	"clinical-trial-backend/pkg/validator"

	"github.com/gorilla/mux"
)

type TrialHandler struct {
	trialUsecase usecase.TrialUsecase
	validator    *validator.CustomValidator
}

func NewTrialHandler(trialUsecase usecase.TrialUsecase, validator *validator.CustomValidator) *TrialHandler {
	return &TrialHandler{
		trialUsecase: trialUsecase,
		validator:    validator,
	}
}

// ListTrials returns the recruiting-trial catalog
// @Summary List clinical trials
// @Tags Trials
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} response.Response
// @Router /trials [get]
func (h *TrialHandler) ListTrials(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	trials, total, err := h.trialUsecase.ListTrials(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Failed to fetch trials")
		return
	}

	meta := &response.Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}

	response.SuccessWithMeta(w, http.StatusOK, "", trials, meta)
}

// CreateTrial adds a catalog entry (admin)
// @Summary Create clinical trial
// @Tags Trials
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTrialRequest true "Create Trial Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /trials [post]
func (h *TrialHandler) CreateTrial(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTrialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	created, err := h.trialUsecase.CreateTrial(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create trial")
		return
	}

	response.Success(w, http.StatusCreated, "Trial created successfully", created)
}

// ListApplications returns the caller's session applications
// @Summary List trial applications
// @Tags Applications
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /applications [get]
func (h *TrialHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	response.Success(w, http.StatusOK, "", h.trialUsecase.Applications(userID))
}

// AddApplication files a trial application in the caller's session
// @Summary Add trial application
// @Tags Applications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.AddApplicationRequest true "Add Application Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /applications [post]
func (h *TrialHandler) AddApplication(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.AddApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	app := h.trialUsecase.AddApplication(userID, &req)
	response.Success(w, http.StatusCreated, "Application filed", app)
}

// UpdateApplicationStatus changes an application's status
// @Summary Update application status
// @Tags Applications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param request body dto.UpdateApplicationStatusRequest true "New status"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /applications/{id}/status [patch]
func (h *TrialHandler) UpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	applicationID := mux.Vars(r)["id"]

	var req dto.UpdateApplicationStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.trialUsecase.UpdateApplicationStatus(userID, applicationID, trial.ApplicationStatus(req.Status)); err != nil {
		response.NotFound(w, "Application not found")
		return
	}

	response.Success(w, http.StatusOK, "Application status updated", nil)
}

// RecentActivities returns the newest feed entries
// @Summary Recent activities
// @Tags Activities
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Max entries" default(5)
// @Success 200 {object} response.Response
// @Router /activities [get]
func (h *TrialHandler) RecentActivities(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	response.Success(w, http.StatusOK, "", h.trialUsecase.RecentActivities(userID, limit))
}

// Dashboard returns the patient dashboard summary
// @Summary Patient dashboard
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /dashboard [get]
func (h *TrialHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	response.Success(w, http.StatusOK, "", h.trialUsecase.Dashboard(userID))
}
