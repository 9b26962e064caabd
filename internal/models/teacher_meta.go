package models

import "time"

// TeacherMeta is a teacher's public profile used by the search endpoint.
type TeacherMeta struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	UserID       uint64    `gorm:"uniqueIndex;not null" json:"user_id"`
	TagIDs       IDList    `gorm:"type:text" json:"tag_ids"`
	AboutTeacher string    `gorm:"type:text" json:"about_teacher"`
	CanHelpWith  string    `gorm:"type:text" json:"can_help_with"`
	Resume       string    `gorm:"type:text" json:"resume"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
