package repository

import (
	"github.com/classpoint/classroom-api/internal/models"
	"gorm.io/gorm"
)

// GormLessonRepository is a GORM implementation of LessonRepository
type GormLessonRepository struct {
	db *gorm.DB
}

// NewLessonRepository creates a new LessonRepository
func NewLessonRepository(db *gorm.DB) LessonRepository {
	return &GormLessonRepository{db: db}
}

// Create creates a new lesson
func (r *GormLessonRepository) Create(lesson *models.Lesson) error {
	return r.db.Create(lesson).Error
}

// FindByID finds a lesson by ID
func (r *GormLessonRepository) FindByID(id uint64) (*models.Lesson, error) {
	var lesson models.Lesson
	if err := r.db.First(&lesson, id).Error; err != nil {
		return nil, err
	}
	return &lesson, nil
}

// ListByClassroom lists a classroom's lessons in creation order
func (r *GormLessonRepository) ListByClassroom(classroomID uint64) ([]models.Lesson, error) {
	var lessons []models.Lesson
	if err := r.db.Where("classroom_id = ?", classroomID).
		Order("created_at").
		Find(&lessons).Error; err != nil {
		return nil, err
	}
	return lessons, nil
}

// Update updates a lesson
func (r *GormLessonRepository) Update(lesson *models.Lesson) error {
	return r.db.Save(lesson).Error
}

// Delete removes a lesson and its summary record in a transaction
func (r *GormLessonRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("lesson_id = ?", id).
			Delete(&models.LessonSummary{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Lesson{}, id).Error
	})
}

// FindSummary finds the summary record of a lesson
func (r *GormLessonRepository) FindSummary(lessonID uint64) (*models.LessonSummary, error) {
	var summary models.LessonSummary
	if err := r.db.Where("lesson_id = ?", lessonID).First(&summary).Error; err != nil {
		return nil, err
	}
	return &summary, nil
}

// SaveSummary creates or updates the summary record
func (r *GormLessonRepository) SaveSummary(summary *models.LessonSummary) error {
	return r.db.Save(summary).Error
}

// DeleteSummary removes the summary record of a lesson
func (r *GormLessonRepository) DeleteSummary(lessonID uint64) error {
	return r.db.Where("lesson_id = ?", lessonID).
		Delete(&models.LessonSummary{}).Error
}
