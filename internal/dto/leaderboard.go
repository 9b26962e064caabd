package dto

import (
	"time"

	"github.com/classpoint/classroom-api/internal/models"
	"github.com/classpoint/classroom-api/internal/utils"
)

// LeaderboardEntryDTO represents one score row in API responses
type LeaderboardEntryDTO struct {
	ID          uint64    `json:"id"`
	GameID      uint64    `json:"game_id"`
	ClassroomID uint64    `json:"classroom_id"`
	UserID      uint64    `json:"user_id"`
	Score       int64     `json:"score"`
	Username    string    `json:"username,omitempty"`
	Name        string    `json:"name,omitempty"`
	Surname     string    `json:"surname,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// LeaderboardPageDTO is a paginated score listing
type LeaderboardPageDTO struct {
	Data       []LeaderboardEntryDTO    `json:"data"`
	Pagination utils.PaginationResponse `json:"pagination"`
}

// ToLeaderboardEntryDTO converts a score row to its API representation
func ToLeaderboardEntryDTO(entry models.LeaderboardEntry) LeaderboardEntryDTO {
	return LeaderboardEntryDTO{
		ID:          entry.ID,
		GameID:      entry.GameID,
		ClassroomID: entry.ClassroomID,
		UserID:      entry.UserID,
		Score:       entry.Value,
		Username:    entry.User.Username,
		Name:        entry.User.Name,
		Surname:     entry.User.Surname,
		CreatedAt:   entry.CreatedAt,
	}
}

// ToLeaderboardPageDTO assembles a page of scores with pagination metadata
func ToLeaderboardPageDTO(entries []models.LeaderboardEntry, params utils.PaginationParams, total int64) LeaderboardPageDTO {
	data := make([]LeaderboardEntryDTO, len(entries))
	for i, entry := range entries {
		data[i] = ToLeaderboardEntryDTO(entry)
	}

	return LeaderboardPageDTO{
		Data: data,
		Pagination: utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	}
}
