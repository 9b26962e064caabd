package models

import "time"

type Classroom struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Members []ClassroomMember `gorm:"foreignKey:ClassroomID" json:"members,omitempty"`
	Lessons []Lesson          `gorm:"foreignKey:ClassroomID" json:"lessons,omitempty"`
}
