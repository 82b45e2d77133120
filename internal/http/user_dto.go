package httpapi

import (
	"time"

	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/models"
)

type UserDTO struct {
	ID        string      `json:"id"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	FullName  string      `json:"full_name"`
	Phone     *string     `json:"phone"`
	Role      models.Role `json:"role"`
	IsActive  bool        `json:"is_active"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt *time.Time  `json:"updated_at"`
}

func toUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		FullName:  user.FullName,
		Phone:     user.Phone,
		Role:      user.Role,
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func toUserDTOs(users []models.User) []UserDTO {
	items := make([]UserDTO, 0, len(users))
	for _, user := range users {
		items = append(items, toUserDTO(user))
	}
	return items
}
