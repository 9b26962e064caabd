package dto

import (
	"time"

	"github.com/classpoint/classroom-api/internal/models"
)

// LessonDTO represents a lesson in API responses
type LessonDTO struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ClassroomID uint64    `json:"classroom_id"`
	GameIDs     []uint64  `json:"game_ids"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToLessonDTO converts a lesson to its API representation
func ToLessonDTO(lesson models.Lesson) LessonDTO {
	gameIDs := lesson.GameIDs
	if gameIDs == nil {
		gameIDs = models.IDList{}
	}
	return LessonDTO{
		ID:          lesson.ID,
		Name:        lesson.Name,
		Description: lesson.Description,
		ClassroomID: lesson.ClassroomID,
		GameIDs:     gameIDs,
		CreatedAt:   lesson.CreatedAt,
		UpdatedAt:   lesson.UpdatedAt,
	}
}

// ToLessonDTOs converts a slice of lessons
func ToLessonDTOs(lessons []models.Lesson) []LessonDTO {
	dtos := make([]LessonDTO, len(lessons))
	for i, lesson := range lessons {
		dtos[i] = ToLessonDTO(lesson)
	}
	return dtos
}
