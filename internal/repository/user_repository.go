package repository

import (
	"github.com/classpoint/classroom-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// CreateChildWithGuardian creates the child account and the guardianship edge atomically.
func (r *GormUserRepository) CreateChildWithGuardian(child *models.User, edge *models.ParentChild) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(child).Error; err != nil {
			return err
		}

		edge.ChildID = child.ID
		return tx.Create(edge).Error
	})
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername finds a user by username
func (r *GormUserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByIDs returns the users whose ids are in the given set
func (r *GormUserRepository) FindByIDs(ids []uint64) ([]models.User, error) {
	var users []models.User
	if len(ids) == 0 {
		return users, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ListAll returns every user
func (r *GormUserRepository) ListAll() ([]models.User, error) {
	var users []models.User
	if err := r.db.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ListByClassroom returns users whose classroom back-reference points at the classroom
func (r *GormUserRepository) ListByClassroom(classroomID uint64) ([]models.User, error) {
	var users []models.User
	if err := r.db.Where("classroom_id = ?", classroomID).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// SetClassroom sets the classroom back-reference on the given users
func (r *GormUserRepository) SetClassroom(userIDs []uint64, classroomID uint64) error {
	if len(userIDs) == 0 {
		return nil
	}
	return r.db.Model(&models.User{}).
		Where("id IN ?", userIDs).
		Update("classroom_id", classroomID).Error
}

// ClearClassroom clears the back-reference for the given users where it
// currently points at the classroom
func (r *GormUserRepository) ClearClassroom(classroomID uint64, userIDs []uint64) error {
	if len(userIDs) == 0 {
		return nil
	}
	return r.db.Model(&models.User{}).
		Where("classroom_id = ? AND id IN ?", classroomID, userIDs).
		Update("classroom_id", nil).Error
}
