package services

import (
	"errors"
	"fmt"

	"github.com/classpoint/classroom-api/internal/constants"
	"github.com/classpoint/classroom-api/internal/models"
	"github.com/classpoint/classroom-api/internal/repository"
)

var (
	ErrGradeOutOfRange = fmt.Errorf("grade must be between %d and %d", constants.MinGrade, constants.MaxGrade)
	ErrGradeNotFound   = errors.New("grade not found")
)

// GradeService provides business logic for grading.
type GradeService struct {
	gradeRepo  repository.GradeRepository
	lessonRepo repository.LessonRepository
}

// NewGradeService creates a new GradeService.
func NewGradeService(gradeRepo repository.GradeRepository, lessonRepo repository.LessonRepository) *GradeService {
	return &GradeService{
		gradeRepo:  gradeRepo,
		lessonRepo: lessonRepo,
	}
}

// SetGradeInput represents an upsert of a student's grade for a lesson.
type SetGradeInput struct {
	LessonID  uint64
	StudentID uint64
	Grade     int
	Comment   string
}

// SetGrade validates the value, verifies the lesson, and writes the grade
// row for (lesson, student) — creating it or updating it in place.
func (s *GradeService) SetGrade(input SetGradeInput) (*models.Grade, error) {
	if input.Grade < constants.MinGrade || input.Grade > constants.MaxGrade {
		return nil, ErrGradeOutOfRange
	}

	if _, err := s.lessonRepo.FindByID(input.LessonID); err != nil {
		return nil, ErrLessonNotFound
	}

	grade := &models.Grade{
		LessonID:  input.LessonID,
		StudentID: input.StudentID,
		Grade:     input.Grade,
		Comment:   input.Comment,
	}

	if err := s.gradeRepo.Upsert(grade); err != nil {
		return nil, fmt.Errorf("failed to set grade: %w", err)
	}
	return grade, nil
}

// GetStudentGrades returns every grade of a student, newest first.
func (s *GradeService) GetStudentGrades(studentID uint64) ([]models.Grade, error) {
	grades, err := s.gradeRepo.ListByStudent(studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get student grades: %w", err)
	}
	return grades, nil
}

// GetLessonGrades returns every grade given for a lesson.
func (s *GradeService) GetLessonGrades(lessonID uint64) ([]models.Grade, error) {
	if _, err := s.lessonRepo.FindByID(lessonID); err != nil {
		return nil, ErrLessonNotFound
	}

	grades, err := s.gradeRepo.ListByLesson(lessonID)
	if err != nil {
		return nil, fmt.Errorf("failed to get lesson grades: %w", err)
	}
	return grades, nil
}

// GetClassroomGrades returns every grade given in a classroom's lessons.
func (s *GradeService) GetClassroomGrades(classroomID uint64) ([]models.Grade, error) {
	grades, err := s.gradeRepo.ListByClassroom(classroomID)
	if err != nil {
		return nil, fmt.Errorf("failed to get classroom grades: %w", err)
	}
	return grades, nil
}

// DeleteGrade removes the grade for (lesson, student).
func (s *GradeService) DeleteGrade(lessonID, studentID uint64) error {
	affected, err := s.gradeRepo.Delete(lessonID, studentID)
	if err != nil {
		return fmt.Errorf("failed to delete grade: %w", err)
	}
	if affected == 0 {
		return ErrGradeNotFound
	}
	return nil
}
