package services

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strings"
	"time"

	"github.com/classpoint/classroom-api/internal/models"
	"github.com/classpoint/classroom-api/internal/repository"
	"github.com/classpoint/classroom-api/internal/storage"
	"github.com/classpoint/classroom-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrLessonNotFound  = errors.New("lesson not found")
	ErrLessonNameEmpty = errors.New("lesson name is required")
	ErrGamesNotFound   = errors.New("one or more games not found")
	ErrSummaryNotFound = errors.New("no summary file found")
)

// LessonService provides business logic for lessons and their summary files.
type LessonService struct {
	lessonRepo repository.LessonRepository
	gameRepo   repository.GameRepository
	files      *storage.FileStore
}

// NewLessonService creates a new LessonService.
func NewLessonService(lessonRepo repository.LessonRepository, gameRepo repository.GameRepository, files *storage.FileStore) *LessonService {
	return &LessonService{
		lessonRepo: lessonRepo,
		gameRepo:   gameRepo,
		files:      files,
	}
}

// CreateLessonInput represents parameters to create a lesson.
type CreateLessonInput struct {
	Name        string
	Description string
	ClassroomID uint64
	GameIDs     []uint64
}

// CreateLesson creates a lesson after verifying every referenced game exists.
func (s *LessonService) CreateLesson(input CreateLessonInput) (*models.Lesson, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrLessonNameEmpty
	}

	if err := s.verifyGames(input.GameIDs); err != nil {
		return nil, err
	}

	lesson := &models.Lesson{
		Name:        input.Name,
		Description: input.Description,
		ClassroomID: input.ClassroomID,
		GameIDs:     models.IDList(input.GameIDs),
	}

	if err := s.lessonRepo.Create(lesson); err != nil {
		return nil, fmt.Errorf("failed to create lesson: %w", err)
	}
	return lesson, nil
}

// UpdateLessonInput represents partial updates to a lesson.
type UpdateLessonInput struct {
	Name        *string
	Description *string
	GameIDs     []uint64
}

// UpdateLesson applies the provided fields to an existing lesson.
func (s *LessonService) UpdateLesson(id uint64, input UpdateLessonInput) (*models.Lesson, error) {
	lesson, err := s.GetLesson(id)
	if err != nil {
		return nil, err
	}

	if input.GameIDs != nil {
		if err := s.verifyGames(input.GameIDs); err != nil {
			return nil, err
		}
		lesson.GameIDs = models.IDList(input.GameIDs)
	}
	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, ErrLessonNameEmpty
		}
		lesson.Name = *input.Name
	}
	if input.Description != nil {
		lesson.Description = *input.Description
	}

	if err := s.lessonRepo.Update(lesson); err != nil {
		return nil, fmt.Errorf("failed to update lesson: %w", err)
	}
	return lesson, nil
}

// DeleteLesson removes a lesson, its summary record, and the summary file.
func (s *LessonService) DeleteLesson(id uint64) error {
	if _, err := s.GetLesson(id); err != nil {
		return err
	}

	// Best effort on the file; the record delete is what matters
	if summary, err := s.lessonRepo.FindSummary(id); err == nil {
		_ = s.files.Remove(summary.FileKey)
	}

	if err := s.lessonRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete lesson: %w", err)
	}
	return nil
}

// GetLesson retrieves a lesson by ID.
func (s *LessonService) GetLesson(id uint64) (*models.Lesson, error) {
	lesson, err := s.lessonRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLessonNotFound
		}
		return nil, fmt.Errorf("failed to find lesson: %w", err)
	}
	return lesson, nil
}

// ListClassroomLessons returns a classroom's lessons in creation order.
func (s *LessonService) ListClassroomLessons(classroomID uint64) ([]models.Lesson, error) {
	lessons, err := s.lessonRepo.ListByClassroom(classroomID)
	if err != nil {
		return nil, fmt.Errorf("failed to list lessons: %w", err)
	}
	return lessons, nil
}

// UploadSummary stores the uploaded file and creates or replaces the lesson's
// summary record. The previous file is removed only after the new record is
// written.
func (s *LessonService) UploadSummary(lessonID uint64, file *multipart.FileHeader) (*models.LessonSummary, error) {
	if _, err := s.GetLesson(lessonID); err != nil {
		return nil, err
	}

	key := utils.GenerateFileKey(file.Filename)
	if err := s.files.Save(key, file); err != nil {
		return nil, fmt.Errorf("failed to store summary file: %w", err)
	}

	var oldKey string
	summary, err := s.lessonRepo.FindSummary(lessonID)
	switch {
	case err == nil:
		oldKey = summary.FileKey
		summary.FileName = file.Filename
		summary.FileKey = key
		summary.FileType = file.Header.Get("Content-Type")
		summary.UpdatedAt = time.Now()
	case errors.Is(err, gorm.ErrRecordNotFound):
		summary = &models.LessonSummary{
			LessonID: lessonID,
			FileName: file.Filename,
			FileKey:  key,
			FileType: file.Header.Get("Content-Type"),
		}
	default:
		_ = s.files.Remove(key)
		return nil, fmt.Errorf("failed to look up summary: %w", err)
	}

	if err := s.lessonRepo.SaveSummary(summary); err != nil {
		_ = s.files.Remove(key)
		return nil, fmt.Errorf("failed to save summary record: %w", err)
	}

	if oldKey != "" {
		_ = s.files.Remove(oldKey)
	}
	return summary, nil
}

// GetSummary returns the summary record and the on-disk path of its file.
func (s *LessonService) GetSummary(lessonID uint64) (*models.LessonSummary, string, error) {
	if _, err := s.GetLesson(lessonID); err != nil {
		return nil, "", err
	}

	summary, err := s.lessonRepo.FindSummary(lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrSummaryNotFound
		}
		return nil, "", fmt.Errorf("failed to find summary: %w", err)
	}

	if !s.files.Exists(summary.FileKey) {
		return nil, "", ErrSummaryNotFound
	}
	return summary, s.files.Path(summary.FileKey), nil
}

// DeleteSummary removes the summary record and its file.
func (s *LessonService) DeleteSummary(lessonID uint64) error {
	summary, err := s.lessonRepo.FindSummary(lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSummaryNotFound
		}
		return fmt.Errorf("failed to find summary: %w", err)
	}

	if err := s.files.Remove(summary.FileKey); err != nil {
		return err
	}

	if err := s.lessonRepo.DeleteSummary(lessonID); err != nil {
		return fmt.Errorf("failed to delete summary record: %w", err)
	}
	return nil
}

func (s *LessonService) verifyGames(gameIDs []uint64) error {
	if len(gameIDs) == 0 {
		return nil
	}

	unique := make(map[uint64]struct{}, len(gameIDs))
	for _, id := range gameIDs {
		unique[id] = struct{}{}
	}
	ids := make([]uint64, 0, len(unique))
	for id := range unique {
		ids = append(ids, id)
	}

	count, err := s.gameRepo.CountByIDs(ids)
	if err != nil {
		return fmt.Errorf("failed to verify games: %w", err)
	}
	if count != int64(len(ids)) {
		return ErrGamesNotFound
	}
	return nil
}
