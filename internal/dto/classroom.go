package dto

import "github.com/classpoint/classroom-api/internal/models"

// ClassroomDTO represents a classroom in API responses. Membership is stored
// as one row per member; the id arrays clients expect are computed here.
type ClassroomDTO struct {
	ID         uint64   `json:"id"`
	Name       string   `json:"name"`
	AdminsID   []uint64 `json:"admins_id"`
	StudentsID []uint64 `json:"students_id"`
}

// ClassroomDetailDTO adds resolved member details to a classroom
type ClassroomDetailDTO struct {
	ClassroomDTO
	Admins   []UserDTO `json:"admins"`
	Students []UserDTO `json:"students"`
}

// ToClassroomDTO converts a classroom and its membership rows
func ToClassroomDTO(classroom models.Classroom, members []models.ClassroomMember) ClassroomDTO {
	admins := []uint64{}
	students := []uint64{}
	for _, m := range members {
		switch m.Role {
		case models.ClassroomRoleAdmin:
			admins = append(admins, m.UserID)
		case models.ClassroomRoleStudent:
			students = append(students, m.UserID)
		}
	}

	return ClassroomDTO{
		ID:         classroom.ID,
		Name:       classroom.Name,
		AdminsID:   admins,
		StudentsID: students,
	}
}

// ToClassroomDetailDTO converts a classroom with fully loaded member users
func ToClassroomDetailDTO(classroom models.Classroom, members []models.ClassroomMember) ClassroomDetailDTO {
	detail := ClassroomDetailDTO{
		ClassroomDTO: ToClassroomDTO(classroom, members),
		Admins:       []UserDTO{},
		Students:     []UserDTO{},
	}

	for _, m := range members {
		switch m.Role {
		case models.ClassroomRoleAdmin:
			detail.Admins = append(detail.Admins, ToUserDTO(m.User))
		case models.ClassroomRoleStudent:
			detail.Students = append(detail.Students, ToUserDTO(m.User))
		}
	}
	return detail
}
