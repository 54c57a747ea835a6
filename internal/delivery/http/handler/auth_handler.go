package handler

import (
	"encoding/json"
	"net/http"

	"clinical-trial-backend/internal/delivery/dto"
	"clinical-trial-backend/internal/delivery/http/middleware"
	"clinical-trial-backend/internal/usecase"
	"clinical-trial-backend/pkg/jwt"
	"clinical-trial-backend/pkg/response"
	"clinical-trial-backend/pkg/validator"
)

type AuthHandler struct {
	authUsecase    usecase.AuthUsecase
	validator      *validator.CustomValidator
	jwtService     *jwt.JWTService
	authMiddleware *middleware.AuthMiddleware
}

func NewAuthHandler(
	authUsecase usecase.AuthUsecase,
	validator *validator.CustomValidator,
	jwtService *jwt.JWTService,
	authMiddleware *middleware.AuthMiddleware,
) *AuthHandler {
	return &AuthHandler{
		authUsecase:    authUsecase,
		validator:      validator,
		jwtService:     jwtService,
		authMiddleware: authMiddleware,
	}
}

// Register handles account registration
// @Summary Register a new account
// @Description Register with username, password and role (admin or patient)
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if _, err := h.authUsecase.Register(r.Context(), &req); err != nil {
		switch err {
		case usecase.ErrUsernameAlreadyExists:
			response.Error(w, http.StatusConflict, "Username already exists", nil)
		default:
			response.InternalServerError(w, "Registration failed. Please try again")
		}
		return
	}

	response.JSON(w, http.StatusCreated, dto.MessageResponse{
		Success: true,
		Message: "Registration successful",
	})
}

// Login handles sign-in
// @Summary Login
// @Description Login with username and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidCredentials:
			response.Error(w, http.StatusUnauthorized, "Invalid credentials", nil)
		default:
			response.InternalServerError(w, "Login failed. Please try again")
		}
		return
	}

	result.Success = true
	response.JSON(w, http.StatusOK, result)
}

// Logout revokes the caller's tokens
// @Summary Logout
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} response.Response
// @Router /logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	tokenID, ok := middleware.GetTokenIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	// Revoke the refresh token too if the client sent it along
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	json.NewDecoder(r.Body).Decode(&req)

	refreshTokenID := ""
	if req.RefreshToken != "" {
		if claims, err := h.jwtService.ValidateToken(req.RefreshToken); err == nil {
			refreshTokenID = claims.TokenID
		}
	}

	if err := h.authUsecase.Logout(r.Context(), userID, tokenID, refreshTokenID); err != nil {
		response.InternalServerError(w, "Failed to logout. Please try again")
		return
	}

	response.JSON(w, http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: "Logged out successfully",
	})
}

// RefreshToken exchanges a refresh token for a new pair
// @Summary Refresh access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh Token Request"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /refresh_token [post]
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req dto.RefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	tokens, err := h.authUsecase.RefreshToken(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidToken, usecase.ErrTokenRevoked:
			response.Unauthorized(w, "Invalid or expired refresh token")
		default:
			response.InternalServerError(w, "Failed to refresh token")
		}
		return
	}

	response.Success(w, http.StatusOK, "Token refreshed", tokens)
}

// CheckSession reports whether the caller holds a valid session. It always
// answers 200; a missing or bad token is just authenticated=false, matching
// how the portal polls this endpoint on every page load.
// @Summary Check session
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.SessionResponse
// @Router /check_session [get]
func (h *AuthHandler) CheckSession(w http.ResponseWriter, r *http.Request) {
	claims, err := h.authMiddleware.ResolveClaims(r)
	if err != nil {
		response.JSON(w, http.StatusOK, dto.SessionResponse{Authenticated: false})
		return
	}

	response.JSON(w, http.StatusOK, dto.SessionResponse{
		Authenticated: true,
		User: &dto.UserResponse{
			ID:       claims.UserID,
			Username: claims.Username,
			Role:     claims.Role,
		},
	})
}
