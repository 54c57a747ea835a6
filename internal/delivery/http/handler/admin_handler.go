package handler

import (
	"net/http"

	"clinical-trial-backend/internal/delivery/dto"
	"clinical-trial-backend/internal/usecase"
	"clinical-trial-backend/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AdminHandler struct {
	adminUsecase usecase.AdminUsecase
}

func NewAdminHandler(adminUsecase usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{adminUsecase: adminUsecase}
}

// Dashboard lists every submitted patient record
// @Summary Admin dashboard
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.PatientListResponse
// @Failure 403 {object} response.Response
// @Router /admin_dashboard [get]
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	patients, err := h.adminUsecase.Patients(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to fetch patients. Please try again")
		return
	}

	response.JSON(w, http.StatusOK, dto.PatientListResponse{
		Success:  true,
		Patients: patients,
	})
}

// CheckEligibility screens one patient record
// @Summary Check patient eligibility
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param patientId path string true "Patient record ID"
// @Success 200 {object} dto.EligibilityCheckResponse
// @Failure 404 {object} response.Response
// @Router /check/{patientId} [get]
func (h *AdminHandler) CheckEligibility(w http.ResponseWriter, r *http.Request) {
	patientID, err := uuid.Parse(mux.Vars(r)["patientId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	result, err := h.adminUsecase.CheckEligibility(r.Context(), patientID)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Eligibility check failed. Please try again")
		}
		return
	}

	result.Success = true
	response.JSON(w, http.StatusOK, result)
}
