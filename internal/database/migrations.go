package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds performance-critical indexes to the database
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Membership lookups back every authorization gate
		{"classroom_members", "idx_classroom_members_classroom_id", "classroom_id"},
		{"classroom_members", "idx_classroom_members_user_id", "user_id"},

		// Guardianship checks
		{"parent_children", "idx_parent_children_parent_id", "parent_id"},
		{"parent_children", "idx_parent_children_child_id", "child_id"},

		// Grade reads per lesson / per student
		{"grades", "idx_grades_lesson_id", "lesson_id"},
		{"grades", "idx_grades_student_id", "student_id"},

		// Leaderboard queries sort on value
		{"leaderboard_entries", "idx_leaderboard_game_value", "game_id, value DESC"},
		{"leaderboard_entries", "idx_leaderboard_classroom_value", "classroom_id, value DESC"},
		{"leaderboard_entries", "idx_leaderboard_user_value", "user_id, value DESC"},
	}

	for _, idx := range indexes {
		// Check if index already exists
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM pg_indexes
			WHERE tablename = ? AND indexname = ?
		`, idx.table, idx.name).Count(&count).Error

		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}

		if count > 0 {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		fmt.Printf("Created index %s on %s(%s)\n", idx.name, idx.table, idx.columns)
	}

	return nil
}
