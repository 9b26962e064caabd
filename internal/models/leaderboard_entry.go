package models

import "time"

type LeaderboardEntry struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	GameID      uint64    `gorm:"not null;index" json:"game_id"`
	UserID      uint64    `gorm:"not null;index" json:"user_id"`
	ClassroomID uint64    `gorm:"not null;index" json:"classroom_id"`
	Value       int64     `gorm:"not null" json:"value"`
	CreatedAt   time.Time `json:"created_at"`

	// Relations
	Game Game `gorm:"foreignKey:GameID" json:"game,omitempty"`
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
