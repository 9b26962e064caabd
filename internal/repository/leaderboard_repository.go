package repository

import (
	"github.com/classpoint/classroom-api/internal/database"
	"github.com/classpoint/classroom-api/internal/models"
	"github.com/classpoint/classroom-api/internal/utils"
	"gorm.io/gorm"
)

// GormLeaderboardRepository is a GORM implementation of LeaderboardRepository
type GormLeaderboardRepository struct {
	db *gorm.DB
}

// NewLeaderboardRepository creates a new LeaderboardRepository
func NewLeaderboardRepository(db *gorm.DB) LeaderboardRepository {
	return &GormLeaderboardRepository{db: db}
}

func (r *GormLeaderboardRepository) Create(entry *models.LeaderboardEntry) error {
	return r.db.Create(entry).Error
}

func (r *GormLeaderboardRepository) ListByGame(gameID uint64, params utils.PaginationParams) ([]models.LeaderboardEntry, int64, error) {
	return r.list(r.db.Where("game_id = ?", gameID), params)
}

func (r *GormLeaderboardRepository) ListByClassroom(classroomID uint64, params utils.PaginationParams) ([]models.LeaderboardEntry, int64, error) {
	return r.list(r.db.Where("classroom_id = ?", classroomID), params)
}

func (r *GormLeaderboardRepository) ListByUser(userID uint64, params utils.PaginationParams) ([]models.LeaderboardEntry, int64, error) {
	return r.list(r.db.Where("user_id = ?", userID), params)
}

func (r *GormLeaderboardRepository) list(query *gorm.DB, params utils.PaginationParams) ([]models.LeaderboardEntry, int64, error) {
	query = query.Model(&models.LeaderboardEntry{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []models.LeaderboardEntry
	err := query.Preload("User").
		Order("value DESC").
		Scopes(database.Paginate(params)).
		Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}
