package models

import "time"

type Lesson struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	ClassroomID uint64    `gorm:"not null;index" json:"classroom_id"`
	GameIDs     IDList    `gorm:"type:text" json:"game_ids"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	Classroom Classroom `gorm:"foreignKey:ClassroomID" json:"classroom,omitempty"`
}
