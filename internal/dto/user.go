package dto

import "github.com/classpoint/classroom-api/internal/models"

// UserDTO represents a user in API responses; the password hash never leaves
// the model layer.
type UserDTO struct {
	ID          uint64      `json:"id"`
	Username    string      `json:"username"`
	Role        models.Role `json:"role"`
	Name        string      `json:"name"`
	Surname     string      `json:"surname"`
	ClassroomID *uint64     `json:"classroom_id"`
}

// ToUserDTO converts a user to its API representation
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:          user.ID,
		Username:    user.Username,
		Role:        user.Role,
		Name:        user.Name,
		Surname:     user.Surname,
		ClassroomID: user.ClassroomID,
	}
}

// ToUserDTOs converts a slice of users
func ToUserDTOs(users []models.User) []UserDTO {
	dtos := make([]UserDTO, len(users))
	for i, user := range users {
		dtos[i] = ToUserDTO(user)
	}
	return dtos
}
