package repository

import (
	"github.com/classpoint/classroom-api/internal/models"
	"gorm.io/gorm"
)

// GormGameRepository is a GORM implementation of GameRepository
type GormGameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a new GameRepository
func NewGameRepository(db *gorm.DB) GameRepository {
	return &GormGameRepository{db: db}
}

func (r *GormGameRepository) Create(game *models.Game) error {
	return r.db.Create(game).Error
}

func (r *GormGameRepository) FindByID(id uint64) (*models.Game, error) {
	var game models.Game
	if err := r.db.First(&game, id).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

func (r *GormGameRepository) List() ([]models.Game, error) {
	var games []models.Game
	if err := r.db.Order("name").Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (r *GormGameRepository) Update(game *models.Game) error {
	return r.db.Save(game).Error
}

func (r *GormGameRepository) Delete(id uint64) (int64, error) {
	result := r.db.Delete(&models.Game{}, id)
	return result.RowsAffected, result.Error
}

// CountByIDs counts how many of the given game ids exist
func (r *GormGameRepository) CountByIDs(ids []uint64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.Model(&models.Game{}).
		Where("id IN ?", ids).
		Count(&count).Error
	return count, err
}
