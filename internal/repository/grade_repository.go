package repository

import (
	"errors"
	"time"

	"github.com/classpoint/classroom-api/internal/models"
	"gorm.io/gorm"
)

// GormGradeRepository is a GORM implementation of GradeRepository
type GormGradeRepository struct {
	db *gorm.DB
}

// NewGradeRepository creates a new GradeRepository
func NewGradeRepository(db *gorm.DB) GradeRepository {
	return &GormGradeRepository{db: db}
}

// Upsert writes the grade for (lesson, student). The find-then-branch runs
// inside one transaction and the unique index on the pair backs it up, so
// concurrent writers for the same key cannot produce duplicate rows.
func (r *GormGradeRepository) Upsert(grade *models.Grade) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Grade
		err := tx.Where("lesson_id = ? AND student_id = ?", grade.LessonID, grade.StudentID).
			First(&existing).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(grade).Error
		}
		if err != nil {
			return err
		}

		existing.Grade = grade.Grade
		existing.Comment = grade.Comment
		existing.UpdatedAt = time.Now()
		if err := tx.Save(&existing).Error; err != nil {
			return err
		}

		*grade = existing
		return nil
	})
}

// FindByLessonAndStudent finds the grade row for the composite key
func (r *GormGradeRepository) FindByLessonAndStudent(lessonID, studentID uint64) (*models.Grade, error) {
	var grade models.Grade
	if err := r.db.Where("lesson_id = ? AND student_id = ?", lessonID, studentID).
		First(&grade).Error; err != nil {
		return nil, err
	}
	return &grade, nil
}

// ListByStudent lists a student's grades, newest first
func (r *GormGradeRepository) ListByStudent(studentID uint64) ([]models.Grade, error) {
	var grades []models.Grade
	if err := r.db.Preload("Lesson").
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&grades).Error; err != nil {
		return nil, err
	}
	return grades, nil
}

// ListByLesson lists a lesson's grades with student details, newest first
func (r *GormGradeRepository) ListByLesson(lessonID uint64) ([]models.Grade, error) {
	var grades []models.Grade
	if err := r.db.Preload("Student").
		Where("lesson_id = ?", lessonID).
		Order("created_at DESC").
		Find(&grades).Error; err != nil {
		return nil, err
	}
	return grades, nil
}

// ListByClassroom lists every grade given in a classroom's lessons
func (r *GormGradeRepository) ListByClassroom(classroomID uint64) ([]models.Grade, error) {
	var grades []models.Grade
	err := r.db.Preload("Lesson").Preload("Student").
		Joins("JOIN lessons ON lessons.id = grades.lesson_id").
		Where("lessons.classroom_id = ?", classroomID).
		Order("grades.created_at DESC").
		Find(&grades).Error
	if err != nil {
		return nil, err
	}
	return grades, nil
}

// Delete removes the grade row for the composite key, returning the number
// of rows removed
func (r *GormGradeRepository) Delete(lessonID, studentID uint64) (int64, error) {
	result := r.db.Where("lesson_id = ? AND student_id = ?", lessonID, studentID).
		Delete(&models.Grade{})
	return result.RowsAffected, result.Error
}
