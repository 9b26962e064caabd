package utils

import (
	"path/filepath"

	"github.com/google/uuid"
)

// GenerateFileKey returns a unique storage name for an uploaded file,
// keeping the original extension so downloads get a sensible content type.
func GenerateFileKey(originalName string) string {
	return uuid.NewString() + filepath.Ext(originalName)
}
