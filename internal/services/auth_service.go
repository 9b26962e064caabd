package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/classpoint/classroom-api/internal/constants"
	"github.com/classpoint/classroom-api/internal/models"
	"github.com/classpoint/classroom-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken        = errors.New("username already exists")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrInvalidRole          = errors.New("invalid role")
	ErrStudentSignup        = errors.New("student accounts are created by a parent")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// AuthService handles signup, login, and child registration.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// SignupInput represents the required information to create a new account.
type SignupInput struct {
	Username string
	Password string
	Name     string
	Surname  string
	Role     models.Role
}

// Signup creates a parent or teacher account. Student accounts are not
// self-service; they come through RegisterChild.
func (s *AuthService) Signup(input SignupInput) (*models.User, error) {
	if !input.Role.Valid() {
		return nil, ErrInvalidRole
	}
	if input.Role == models.RoleStudent {
		return nil, ErrStudentSignup
	}

	user, err := s.createUser(input)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// RegisterChildInput holds the data for a parent-created student account.
type RegisterChildInput struct {
	ParentID uint64
	Username string
	Password string
	Name     string
	Surname  string
}

// RegisterChild creates a student account and links it to the parent as a
// guardianship edge in one transaction.
func (s *AuthService) RegisterChild(input RegisterChildInput) (*models.User, error) {
	child, err := s.createUser(SignupInput{
		Username: input.Username,
		Password: input.Password,
		Name:     input.Name,
		Surname:  input.Surname,
		Role:     models.RoleStudent,
	})
	if err != nil {
		return nil, err
	}

	edge := &models.ParentChild{ParentID: input.ParentID}
	if err := s.userRepo.CreateChildWithGuardian(child, edge); err != nil {
		return nil, fmt.Errorf("failed to register child: %w", err)
	}
	return child, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Username string
	Password string
}

// Login verifies credentials and returns the authenticated user.
func (s *AuthService) Login(input LoginInput) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// ListUsers returns every account.
func (s *AuthService) ListUsers() ([]models.User, error) {
	users, err := s.userRepo.ListAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// ListClassroomUsers returns the users currently placed in a classroom.
func (s *AuthService) ListClassroomUsers(classroomID uint64) ([]models.User, error) {
	users, err := s.userRepo.ListByClassroom(classroomID)
	if err != nil {
		return nil, fmt.Errorf("failed to list classroom users: %w", err)
	}
	return users, nil
}

// createUser validates shared signup rules and builds the unsaved user record.
func (s *AuthService) createUser(input SignupInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	return &models.User{
		Username:     username,
		PasswordHash: string(hashedPassword),
		Role:         input.Role,
		Name:         input.Name,
		Surname:      input.Surname,
	}, nil
}
