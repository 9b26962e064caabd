package models

import "time"

// Grade is unique per (lesson, student); writes go through an
// upsert-by-composite-key path in the grade service.
type Grade struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	LessonID  uint64    `gorm:"not null;uniqueIndex:idx_grades_lesson_student" json:"lesson_id"`
	StudentID uint64    `gorm:"not null;uniqueIndex:idx_grades_lesson_student" json:"student_id"`
	Grade     int       `gorm:"not null" json:"grade"`
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Lesson  Lesson `gorm:"foreignKey:LessonID" json:"lesson,omitempty"`
	Student User   `gorm:"foreignKey:StudentID" json:"student,omitempty"`
}
