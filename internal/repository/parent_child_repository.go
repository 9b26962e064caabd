package repository

import (
	"github.com/classpoint/classroom-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormParentChildRepository is a GORM implementation of ParentChildRepository
type GormParentChildRepository struct {
	db *gorm.DB
}

// NewParentChildRepository creates a new ParentChildRepository
func NewParentChildRepository(db *gorm.DB) ParentChildRepository {
	return &GormParentChildRepository{db: db}
}

// Link creates a guardianship edge; linking an already-linked child is a no-op
func (r *GormParentChildRepository) Link(edge *models.ParentChild) error {
	return r.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "parent_id"}, {Name: "child_id"}},
			DoNothing: true,
		}).
		Create(edge).Error
}

// Unlink removes a guardianship edge
func (r *GormParentChildRepository) Unlink(parentID, childID uint64) error {
	return r.db.Where("parent_id = ? AND child_id = ?", parentID, childID).
		Delete(&models.ParentChild{}).Error
}

// IsGuardian reports whether the edge (parentID, childID) exists
func (r *GormParentChildRepository) IsGuardian(parentID, childID uint64) (bool, error) {
	var count int64
	err := r.db.Model(&models.ParentChild{}).
		Where("parent_id = ? AND child_id = ?", parentID, childID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListChildren returns the child users linked to the parent
func (r *GormParentChildRepository) ListChildren(parentID uint64) ([]models.User, error) {
	var children []models.User
	err := r.db.
		Joins("JOIN parent_children ON parent_children.child_id = users.id").
		Where("parent_children.parent_id = ?", parentID).
		Find(&children).Error
	if err != nil {
		return nil, err
	}
	return children, nil
}
