package models

import "time"

// ParentChild is a guardianship edge. The composite primary key enforces
// uniqueness of the (parent, child) pair at the store layer.
type ParentChild struct {
	ParentID  uint64    `gorm:"primarykey" json:"parent_id"`
	ChildID   uint64    `gorm:"primarykey" json:"child_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Parent User `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
	Child  User `gorm:"foreignKey:ChildID" json:"child,omitempty"`
}
