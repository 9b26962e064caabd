package repository

import (
	"github.com/classpoint/classroom-api/internal/models"
	"github.com/classpoint/classroom-api/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// CreateChildWithGuardian creates a student account and the guardianship
	// edge to the registering parent within a single transaction.
	CreateChildWithGuardian(child *models.User, edge *models.ParentChild) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// FindByIDs returns the users whose ids are in the given set
	FindByIDs(ids []uint64) ([]models.User, error)

	// ListAll returns every user
	ListAll() ([]models.User, error)

	// ListByClassroom returns users whose classroom back-reference points at the classroom
	ListByClassroom(classroomID uint64) ([]models.User, error)

	// SetClassroom sets the classroom back-reference on the given users
	SetClassroom(userIDs []uint64, classroomID uint64) error

	// ClearClassroom clears the back-reference for the given users, but only
	// where it currently points at the classroom (defends against stale state)
	ClearClassroom(classroomID uint64, userIDs []uint64) error
}

// ClassroomRepository defines the interface for classroom data access
type ClassroomRepository interface {
	// Create creates a classroom and its initial admin membership atomically
	Create(classroom *models.Classroom, admin *models.ClassroomMember) error

	// FindByID finds a classroom by ID
	FindByID(id uint64) (*models.Classroom, error)

	// Delete removes the classroom, its membership rows, and every user's
	// back-reference to it in one transaction
	Delete(id uint64) error

	// AddMembers inserts membership rows; rows that already exist are skipped
	AddMembers(members []models.ClassroomMember) error

	// RemoveMembers deletes membership rows for the given users; removing a
	// non-member is a no-op
	RemoveMembers(classroomID uint64, userIDs []uint64) error

	// FindMember finds a specific membership row
	FindMember(classroomID, userID uint64) (*models.ClassroomMember, error)

	// ListMembers lists all membership rows of a classroom with user details
	ListMembers(classroomID uint64) ([]models.ClassroomMember, error)

	// ListAdministeredBy lists classrooms where the user holds an admin row
	ListAdministeredBy(userID uint64) ([]models.Classroom, error)
}

// ParentChildRepository defines the interface for guardianship data access
type ParentChildRepository interface {
	// Link creates a guardianship edge; an existing edge is left untouched
	Link(edge *models.ParentChild) error

	// Unlink removes a guardianship edge
	Unlink(parentID, childID uint64) error

	// IsGuardian reports whether the edge (parentID, childID) exists
	IsGuardian(parentID, childID uint64) (bool, error)

	// ListChildren returns the child users linked to the parent
	ListChildren(parentID uint64) ([]models.User, error)
}

// LessonRepository defines the interface for lesson and summary data access
type LessonRepository interface {
	Create(lesson *models.Lesson) error
	FindByID(id uint64) (*models.Lesson, error)
	ListByClassroom(classroomID uint64) ([]models.Lesson, error)
	Update(lesson *models.Lesson) error
	Delete(id uint64) error

	FindSummary(lessonID uint64) (*models.LessonSummary, error)
	SaveSummary(summary *models.LessonSummary) error
	DeleteSummary(lessonID uint64) error
}

// GradeRepository defines the interface for grade data access
type GradeRepository interface {
	// Upsert creates the grade row for (lesson, student) or updates it in
	// place, inside a single transaction
	Upsert(grade *models.Grade) error

	FindByLessonAndStudent(lessonID, studentID uint64) (*models.Grade, error)
	ListByStudent(studentID uint64) ([]models.Grade, error)
	ListByLesson(lessonID uint64) ([]models.Grade, error)
	ListByClassroom(classroomID uint64) ([]models.Grade, error)
	Delete(lessonID, studentID uint64) (int64, error)
}

// GameRepository defines the interface for game data access
type GameRepository interface {
	Create(game *models.Game) error
	FindByID(id uint64) (*models.Game, error)
	List() ([]models.Game, error)
	Update(game *models.Game) error
	Delete(id uint64) (int64, error)

	// CountByIDs counts how many of the given game ids exist
	CountByIDs(ids []uint64) (int64, error)
}

// TagRepository defines the interface for tag data access
type TagRepository interface {
	Create(tag *models.Tag) error
	List() ([]models.Tag, error)
	FindByName(name string) (*models.Tag, error)
	FindByNames(names []string) ([]models.Tag, error)
}

// LeaderboardRepository defines the interface for leaderboard data access
type LeaderboardRepository interface {
	Create(entry *models.LeaderboardEntry) error
	ListByGame(gameID uint64, params utils.PaginationParams) ([]models.LeaderboardEntry, int64, error)
	ListByClassroom(classroomID uint64, params utils.PaginationParams) ([]models.LeaderboardEntry, int64, error)
	ListByUser(userID uint64, params utils.PaginationParams) ([]models.LeaderboardEntry, int64, error)
}

// TeacherMetaRepository defines the interface for teacher profile data access
type TeacherMetaRepository interface {
	Create(meta *models.TeacherMeta) error
	FindByUserID(userID uint64) (*models.TeacherMeta, error)
	Update(meta *models.TeacherMeta) error
	Delete(userID uint64) (int64, error)
	ListAll() ([]models.TeacherMeta, error)
}
