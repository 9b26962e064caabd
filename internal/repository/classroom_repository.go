package repository

import (
	"github.com/classpoint/classroom-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormClassroomRepository is a GORM implementation of ClassroomRepository
type GormClassroomRepository struct {
	db *gorm.DB
}

// NewClassroomRepository creates a new ClassroomRepository
func NewClassroomRepository(db *gorm.DB) ClassroomRepository {
	return &GormClassroomRepository{db: db}
}

// Create creates a classroom and its initial admin membership atomically
func (r *GormClassroomRepository) Create(classroom *models.Classroom, admin *models.ClassroomMember) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(classroom).Error; err != nil {
			return err
		}

		admin.ClassroomID = classroom.ID
		if err := tx.Create(admin).Error; err != nil {
			return err
		}

		// Creator's back-reference follows the membership row
		return tx.Model(&models.User{}).
			Where("id = ?", admin.UserID).
			Update("classroom_id", classroom.ID).Error
	})
}

// FindByID finds a classroom by ID
func (r *GormClassroomRepository) FindByID(id uint64) (*models.Classroom, error) {
	var classroom models.Classroom
	if err := r.db.First(&classroom, id).Error; err != nil {
		return nil, err
	}
	return &classroom, nil
}

// Delete removes the classroom and all related state in a transaction.
// User back-references are cleared before the row goes away so no user is
// ever left pointing at a missing classroom.
func (r *GormClassroomRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).
			Where("classroom_id = ?", id).
			Update("classroom_id", nil).Error; err != nil {
			return err
		}

		if err := tx.Where("classroom_id = ?", id).
			Delete(&models.ClassroomMember{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Classroom{}, id).Error
	})
}

// AddMembers inserts membership rows; duplicates are skipped so the add is
// idempotent and an existing role is never overwritten
func (r *GormClassroomRepository) AddMembers(members []models.ClassroomMember) error {
	if len(members) == 0 {
		return nil
	}
	return r.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "classroom_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).
		Create(&members).Error
}

// RemoveMembers deletes membership rows for the given users
func (r *GormClassroomRepository) RemoveMembers(classroomID uint64, userIDs []uint64) error {
	if len(userIDs) == 0 {
		return nil
	}
	return r.db.Where("classroom_id = ? AND user_id IN ?", classroomID, userIDs).
		Delete(&models.ClassroomMember{}).Error
}

// FindMember finds a specific membership row
func (r *GormClassroomRepository) FindMember(classroomID, userID uint64) (*models.ClassroomMember, error) {
	var member models.ClassroomMember
	if err := r.db.Where("classroom_id = ? AND user_id = ?", classroomID, userID).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// ListMembers lists all membership rows of a classroom with user details
func (r *GormClassroomRepository) ListMembers(classroomID uint64) ([]models.ClassroomMember, error) {
	var members []models.ClassroomMember
	if err := r.db.Preload("User").
		Where("classroom_id = ?", classroomID).
		Order("joined_at").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// ListAdministeredBy lists classrooms where the user holds an admin row
func (r *GormClassroomRepository) ListAdministeredBy(userID uint64) ([]models.Classroom, error) {
	var classrooms []models.Classroom
	err := r.db.
		Joins("JOIN classroom_members ON classroom_members.classroom_id = classrooms.id").
		Where("classroom_members.user_id = ? AND classroom_members.role = ?", userID, models.ClassroomRoleAdmin).
		Find(&classrooms).Error
	if err != nil {
		return nil, err
	}
	return classrooms, nil
}
