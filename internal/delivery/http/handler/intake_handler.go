package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"clinical-trial-backend/internal/delivery/dto"
	"clinical-trial-backend/internal/delivery/http/middleware"
	"clinical-trial-backend/internal/intake"
	"clinical-trial-backend/internal/usecase"
	"clinical-trial-backend/pkg/response"
	"clinical-trial-backend/pkg/validator"

	"github.com/gorilla/mux"
)

type IntakeHandler struct {
	intakeUsecase usecase.IntakeUsecase
	validator     *validator.CustomValidator
}

func NewIntakeHandler(intakeUsecase usecase.IntakeUsecase, validator *validator.CustomValidator) *IntakeHandler {
	return &IntakeHandler{
		intakeUsecase: intakeUsecase,
		validator:     validator,
	}
}

// GetDraft returns the caller's in-progress intake form
// @Summary Get intake draft
// @Tags Intake
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /patient_form/draft [get]
func (h *IntakeHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	response.Success(w, http.StatusOK, "", h.intakeUsecase.Draft(userID))
}

// SetDraftField coerces one raw field value into the draft
// @Summary Set intake draft field
// @Description Set a single form field from raw text; recomputes BMI when weight or height change
// @Tags Intake
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param field path string true "Field name"
// @Param request body dto.SetDraftFieldRequest true "Raw field value"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /patient_form/draft/{field} [put]
func (h *IntakeHandler) SetDraftField(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	field := mux.Vars(r)["field"]

	var req dto.SetDraftFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	values, err := h.intakeUsecase.SetDraftField(userID, field, req.Value)
	if err != nil {
		var fieldErr *intake.ValidationError
		switch {
		case errors.As(err, &fieldErr):
			response.FieldValidationError(w, fieldErr.Field, fieldErr.Message)
		case errors.Is(err, intake.ErrFieldReadOnly):
			response.Error(w, http.StatusBadRequest, "BMI is calculated automatically", nil)
		case errors.Is(err, intake.ErrUnknownField):
			response.NotFound(w, "Unknown form field")
		default:
			response.InternalServerError(w, "Failed to update form")
		}
		return
	}

	response.Success(w, http.StatusOK, "", values)
}

// Submit stores the completed intake form
// @Summary Submit intake form
// @Tags Intake
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SubmitFormRequest true "Intake form"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} response.Response
// @Router /patient_form [post]
func (h *IntakeHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.SubmitFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if _, err := h.intakeUsecase.Submit(r.Context(), userID, &req); err != nil {
		switch err {
		case usecase.ErrAgeOutOfRange:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Submission failed. Please try again")
		}
		return
	}

	response.JSON(w, http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: "Form submitted successfully!",
	})
}
