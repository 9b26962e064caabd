package repository

import (
	"github.com/classpoint/classroom-api/internal/models"
	"gorm.io/gorm"
)

// GormTeacherMetaRepository is a GORM implementation of TeacherMetaRepository
type GormTeacherMetaRepository struct {
	db *gorm.DB
}

// NewTeacherMetaRepository creates a new TeacherMetaRepository
func NewTeacherMetaRepository(db *gorm.DB) TeacherMetaRepository {
	return &GormTeacherMetaRepository{db: db}
}

func (r *GormTeacherMetaRepository) Create(meta *models.TeacherMeta) error {
	return r.db.Create(meta).Error
}

func (r *GormTeacherMetaRepository) FindByUserID(userID uint64) (*models.TeacherMeta, error) {
	var meta models.TeacherMeta
	if err := r.db.Where("user_id = ?", userID).First(&meta).Error; err != nil {
		return nil, err
	}
	return &meta, nil
}

func (r *GormTeacherMetaRepository) Update(meta *models.TeacherMeta) error {
	return r.db.Save(meta).Error
}

func (r *GormTeacherMetaRepository) Delete(userID uint64) (int64, error) {
	result := r.db.Where("user_id = ?", userID).Delete(&models.TeacherMeta{})
	return result.RowsAffected, result.Error
}

// ListAll returns every teacher profile with user details; tag filtering
// happens in the service because tag ids live in a serialized column
func (r *GormTeacherMetaRepository) ListAll() ([]models.TeacherMeta, error) {
	var metas []models.TeacherMeta
	if err := r.db.Preload("User").Find(&metas).Error; err != nil {
		return nil, err
	}
	return metas, nil
}
