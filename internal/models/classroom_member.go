package models

import "time"

type ClassroomRole string

const (
	ClassroomRoleAdmin   ClassroomRole = "admin"
	ClassroomRoleStudent ClassroomRole = "student"
)

// ClassroomMember is one membership row. The composite primary key makes a
// duplicate add impossible, and a user holds at most one role per classroom.
type ClassroomMember struct {
	ClassroomID uint64        `gorm:"primarykey" json:"classroom_id"`
	UserID      uint64        `gorm:"primarykey" json:"user_id"`
	Role        ClassroomRole `gorm:"type:varchar(20);not null" json:"role"`
	JoinedAt    time.Time     `json:"joined_at"`

	// Relations
	Classroom Classroom `gorm:"foreignKey:ClassroomID" json:"classroom,omitempty"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
