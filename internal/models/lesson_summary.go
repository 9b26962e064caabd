package models

import "time"

// LessonSummary is the file attachment of a lesson, at most one per lesson.
// FileKey is the name under which the file is stored on disk.
type LessonSummary struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	LessonID  uint64    `gorm:"uniqueIndex;not null" json:"lesson_id"`
	FileName  string    `gorm:"type:varchar(255);not null" json:"file_name"`
	FileKey   string    `gorm:"type:varchar(255);not null" json:"file_key"`
	FileType  string    `gorm:"type:varchar(100)" json:"file_type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
