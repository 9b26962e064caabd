package dto

import (
	"time"

	"github.com/classpoint/classroom-api/internal/models"
)

// GradeDTO represents a grade in API responses. Lesson and student details
// are filled when the corresponding relation was loaded.
type GradeDTO struct {
	ID             uint64    `json:"id"`
	LessonID       uint64    `json:"lesson_id"`
	StudentID      uint64    `json:"student_id"`
	Grade          int       `json:"grade"`
	Comment        string    `json:"comment"`
	LessonName     string    `json:"lesson_name,omitempty"`
	StudentName    string    `json:"student_name,omitempty"`
	StudentSurname string    `json:"student_surname,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ToGradeDTO converts a grade to its API representation
func ToGradeDTO(grade models.Grade) GradeDTO {
	return GradeDTO{
		ID:             grade.ID,
		LessonID:       grade.LessonID,
		StudentID:      grade.StudentID,
		Grade:          grade.Grade,
		Comment:        grade.Comment,
		LessonName:     grade.Lesson.Name,
		StudentName:    grade.Student.Name,
		StudentSurname: grade.Student.Surname,
		CreatedAt:      grade.CreatedAt,
		UpdatedAt:      grade.UpdatedAt,
	}
}

// ToGradeDTOs converts a slice of grades
func ToGradeDTOs(grades []models.Grade) []GradeDTO {
	dtos := make([]GradeDTO, len(grades))
	for i, grade := range grades {
		dtos[i] = ToGradeDTO(grade)
	}
	return dtos
}
