package converter

import (
	"clinical-trial-backend/internal/delivery/dto"
	"clinical-trial-backend/internal/domain/entity"
)

// UserToResponse converts a User entity to its response DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
	}
}
