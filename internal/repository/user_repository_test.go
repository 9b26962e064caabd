package repository

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db, mock
}

func TestUserRepository_SetClassroom(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "users" SET "classroom_id"=$1,"updated_at"=$2 WHERE id IN ($3,$4)`)).
		WithArgs(7, sqlmock.AnyArg(), 1, 2).
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.SetClassroom([]uint64{1, 2}, 7))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ClearClassroomIsGuarded(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	// The update must only touch rows whose back-reference points at this
	// classroom, so a user who already moved elsewhere is left alone.
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "users" SET "classroom_id"=$1,"updated_at"=$2 WHERE classroom_id = $3 AND id IN ($4)`)).
		WithArgs(nil, sqlmock.AnyArg(), 7, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.ClearClassroom(7, []uint64{1}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_EmptyIDSetsAreNoOps(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	// No ids, no SQL
	require.NoError(t, repo.SetClassroom(nil, 7))
	require.NoError(t, repo.ClearClassroom(7, nil))

	users, err := repo.FindByIDs(nil)
	require.NoError(t, err)
	require.Empty(t, users)

	require.NoError(t, mock.ExpectationsWereMet())
}
