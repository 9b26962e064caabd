package services

import (
	"errors"
	"fmt"

	"github.com/classpoint/classroom-api/internal/models"
	"github.com/classpoint/classroom-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTeacherMetaNotFound = errors.New("teacher metadata not found")
	ErrTeacherMetaExists   = errors.New("teacher metadata already exists")
	ErrNoTagsProvided      = errors.New("no tags provided")
)

// TeacherMetaService provides business logic for teacher profiles and search.
type TeacherMetaService struct {
	metaRepo repository.TeacherMetaRepository
	tagRepo  repository.TagRepository
}

// NewTeacherMetaService creates a new TeacherMetaService.
func NewTeacherMetaService(metaRepo repository.TeacherMetaRepository, tagRepo repository.TagRepository) *TeacherMetaService {
	return &TeacherMetaService{
		metaRepo: metaRepo,
		tagRepo:  tagRepo,
	}
}

// TeacherMetaInput holds profile fields.
type TeacherMetaInput struct {
	TagIDs       []uint64
	AboutTeacher string
	CanHelpWith  string
	Resume       string
}

// GetProfile returns the teacher's profile.
func (s *TeacherMetaService) GetProfile(userID uint64) (*models.TeacherMeta, error) {
	meta, err := s.metaRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherMetaNotFound
		}
		return nil, fmt.Errorf("failed to find teacher metadata: %w", err)
	}
	return meta, nil
}

// CreateProfile creates the teacher's profile; at most one per teacher.
func (s *TeacherMetaService) CreateProfile(userID uint64, input TeacherMetaInput) (*models.TeacherMeta, error) {
	if _, err := s.metaRepo.FindByUserID(userID); err == nil {
		return nil, ErrTeacherMetaExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check teacher metadata: %w", err)
	}

	meta := &models.TeacherMeta{
		UserID:       userID,
		TagIDs:       models.IDList(input.TagIDs),
		AboutTeacher: input.AboutTeacher,
		CanHelpWith:  input.CanHelpWith,
		Resume:       input.Resume,
	}

	if err := s.metaRepo.Create(meta); err != nil {
		return nil, fmt.Errorf("failed to create teacher metadata: %w", err)
	}
	return meta, nil
}

// UpdateProfile replaces the teacher's profile fields.
func (s *TeacherMetaService) UpdateProfile(userID uint64, input TeacherMetaInput) (*models.TeacherMeta, error) {
	meta, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	if input.TagIDs != nil {
		meta.TagIDs = models.IDList(input.TagIDs)
	}
	if input.AboutTeacher != "" {
		meta.AboutTeacher = input.AboutTeacher
	}
	if input.CanHelpWith != "" {
		meta.CanHelpWith = input.CanHelpWith
	}
	if input.Resume != "" {
		meta.Resume = input.Resume
	}

	if err := s.metaRepo.Update(meta); err != nil {
		return nil, fmt.Errorf("failed to update teacher metadata: %w", err)
	}
	return meta, nil
}

// DeleteProfile removes the teacher's profile.
func (s *TeacherMetaService) DeleteProfile(userID uint64) error {
	affected, err := s.metaRepo.Delete(userID)
	if err != nil {
		return fmt.Errorf("failed to delete teacher metadata: %w", err)
	}
	if affected == 0 {
		return ErrTeacherMetaNotFound
	}
	return nil
}

// SearchByTagNames returns the profiles whose tag list intersects the tags
// named in the query.
func (s *TeacherMetaService) SearchByTagNames(tagNames []string) ([]models.TeacherMeta, error) {
	if len(tagNames) == 0 {
		return nil, ErrNoTagsProvided
	}

	tags, err := s.tagRepo.FindByNames(tagNames)
	if err != nil {
		return nil, fmt.Errorf("failed to look up tags: %w", err)
	}
	if len(tags) == 0 {
		return []models.TeacherMeta{}, nil
	}

	metas, err := s.metaRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list teacher metadata: %w", err)
	}

	matched := []models.TeacherMeta{}
	for _, meta := range metas {
		for _, tag := range tags {
			if meta.TagIDs.Contains(tag.ID) {
				matched = append(matched, meta)
				break
			}
		}
	}
	return matched, nil
}
