package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/classpoint/classroom-api/internal/models"
	"github.com/classpoint/classroom-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrClassroomNotFound    = errors.New("classroom not found")
	ErrInvalidClassroomName = errors.New("classroom name cannot be empty")
	ErrNoUserIDsProvided    = errors.New("at least one user ID is required")
)

// ClassroomService provides business logic for classrooms and membership.
type ClassroomService struct {
	classroomRepo repository.ClassroomRepository
	userRepo      repository.UserRepository
}

// NewClassroomService creates a new ClassroomService.
func NewClassroomService(classroomRepo repository.ClassroomRepository, userRepo repository.UserRepository) *ClassroomService {
	return &ClassroomService{
		classroomRepo: classroomRepo,
		userRepo:      userRepo,
	}
}

// CreateClassroom creates a classroom with the creating teacher as sole admin.
func (s *ClassroomService) CreateClassroom(name string, creatorID uint64) (*models.Classroom, []models.ClassroomMember, error) {
	if strings.TrimSpace(name) == "" {
		return nil, nil, ErrInvalidClassroomName
	}

	classroom := &models.Classroom{Name: name}
	admin := &models.ClassroomMember{
		UserID:   creatorID,
		Role:     models.ClassroomRoleAdmin,
		JoinedAt: time.Now(),
	}

	if err := s.classroomRepo.Create(classroom, admin); err != nil {
		return nil, nil, fmt.Errorf("failed to create classroom: %w", err)
	}

	return classroom, []models.ClassroomMember{*admin}, nil
}

// DeleteClassroom removes a classroom and clears every member's back-reference.
func (s *ClassroomService) DeleteClassroom(classroomID uint64) error {
	if _, err := s.classroomRepo.FindByID(classroomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClassroomNotFound
		}
		return fmt.Errorf("failed to find classroom: %w", err)
	}

	if err := s.classroomRepo.Delete(classroomID); err != nil {
		return fmt.Errorf("failed to delete classroom: %w", err)
	}
	return nil
}

// AddMembers adds users to a classroom. Teachers get admin rows, students get
// student rows, parents are silently skipped. Adding an existing member is a
// no-op. All affected users get their classroom back-reference set.
func (s *ClassroomService) AddMembers(classroomID uint64, userIDs []uint64) error {
	if len(userIDs) == 0 {
		return ErrNoUserIDsProvided
	}

	if _, err := s.classroomRepo.FindByID(classroomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClassroomNotFound
		}
		return fmt.Errorf("failed to find classroom: %w", err)
	}

	users, err := s.userRepo.FindByIDs(userIDs)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	now := time.Now()
	var members []models.ClassroomMember
	var affected []uint64
	for _, user := range users {
		var role models.ClassroomRole
		switch user.Role {
		case models.RoleTeacher:
			role = models.ClassroomRoleAdmin
		case models.RoleStudent:
			role = models.ClassroomRoleStudent
		default:
			// Parents never hold classroom membership
			continue
		}
		members = append(members, models.ClassroomMember{
			ClassroomID: classroomID,
			UserID:      user.ID,
			Role:        role,
			JoinedAt:    now,
		})
		affected = append(affected, user.ID)
	}

	if err := s.classroomRepo.AddMembers(members); err != nil {
		return fmt.Errorf("failed to add members: %w", err)
	}

	if err := s.userRepo.SetClassroom(affected, classroomID); err != nil {
		return fmt.Errorf("failed to update user classroom references: %w", err)
	}
	return nil
}

// RemoveMembers drops users from a classroom regardless of their role in it.
// Removing a non-member is a no-op. Back-references are cleared only where
// they actually point at this classroom.
func (s *ClassroomService) RemoveMembers(classroomID uint64, userIDs []uint64) error {
	if len(userIDs) == 0 {
		return ErrNoUserIDsProvided
	}

	if _, err := s.classroomRepo.FindByID(classroomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrClassroomNotFound
		}
		return fmt.Errorf("failed to find classroom: %w", err)
	}

	if err := s.classroomRepo.RemoveMembers(classroomID, userIDs); err != nil {
		return fmt.Errorf("failed to remove members: %w", err)
	}

	if err := s.userRepo.ClearClassroom(classroomID, userIDs); err != nil {
		return fmt.Errorf("failed to clear user classroom references: %w", err)
	}
	return nil
}

// GetClassroomWithMembers returns a classroom and its membership rows.
func (s *ClassroomService) GetClassroomWithMembers(classroomID uint64) (*models.Classroom, []models.ClassroomMember, error) {
	classroom, err := s.classroomRepo.FindByID(classroomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrClassroomNotFound
		}
		return nil, nil, fmt.Errorf("failed to find classroom: %w", err)
	}

	members, err := s.classroomRepo.ListMembers(classroomID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list classroom members: %w", err)
	}

	return classroom, members, nil
}

// IsMember reports whether the user holds any membership row in the classroom.
func (s *ClassroomService) IsMember(classroomID, userID uint64) (bool, error) {
	_, err := s.classroomRepo.FindMember(classroomID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check membership: %w", err)
	}
	return true, nil
}

// ListAdministered returns classrooms where the teacher holds admin rights.
func (s *ClassroomService) ListAdministered(teacherID uint64) ([]models.Classroom, error) {
	classrooms, err := s.classroomRepo.ListAdministeredBy(teacherID)
	if err != nil {
		return nil, fmt.Errorf("failed to list classrooms: %w", err)
	}
	return classrooms, nil
}
