package services

import (
	"errors"
	"fmt"

	"github.com/classpoint/classroom-api/internal/models"
	"github.com/classpoint/classroom-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrChildNotFound    = errors.New("child not found")
	ErrChildNotAStudent = errors.New("user is not a student")
)

// ParentService provides business logic for guardianship management.
type ParentService struct {
	parentChildRepo repository.ParentChildRepository
	userRepo        repository.UserRepository
}

// NewParentService creates a new ParentService.
func NewParentService(parentChildRepo repository.ParentChildRepository, userRepo repository.UserRepository) *ParentService {
	return &ParentService{
		parentChildRepo: parentChildRepo,
		userRepo:        userRepo,
	}
}

// ListChildren returns the children linked to the parent.
func (s *ParentService) ListChildren(parentID uint64) ([]models.User, error) {
	children, err := s.parentChildRepo.ListChildren(parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list children: %w", err)
	}
	return children, nil
}

// AddChild links an existing student account to the parent.
func (s *ParentService) AddChild(parentID, childID uint64) error {
	child, err := s.userRepo.FindByID(childID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrChildNotFound
		}
		return fmt.Errorf("failed to find child: %w", err)
	}

	if child.Role != models.RoleStudent {
		return ErrChildNotAStudent
	}

	edge := &models.ParentChild{ParentID: parentID, ChildID: childID}
	if err := s.parentChildRepo.Link(edge); err != nil {
		return fmt.Errorf("failed to link child: %w", err)
	}
	return nil
}

// RemoveChild unlinks a child from the parent.
func (s *ParentService) RemoveChild(parentID, childID uint64) error {
	if err := s.parentChildRepo.Unlink(parentID, childID); err != nil {
		return fmt.Errorf("failed to unlink child: %w", err)
	}
	return nil
}

// IsGuardian reports whether the parent holds a guardianship edge to the child.
func (s *ParentService) IsGuardian(parentID, childID uint64) (bool, error) {
	return s.parentChildRepo.IsGuardian(parentID, childID)
}
