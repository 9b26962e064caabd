package middleware

import (
	"strconv"

	"github.com/classpoint/classroom-api/internal/database"
	apierrors "github.com/classpoint/classroom-api/internal/errors"
	"github.com/classpoint/classroom-api/internal/models"
	"github.com/gin-gonic/gin"
)

// RequireStudentAccess gates endpoints scoped to a specific student, named by
// the given URL parameter. Access is allowed to the student themselves, to
// any teacher, and to a parent holding a guardianship edge to the student.
func RequireStudentAccess(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		targetID, err := strconv.ParseUint(c.Param(param), 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid user ID")
			c.Abort()
			return
		}

		user, ok := GetCurrentUser(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		if user.ID == targetID || user.Role == models.RoleTeacher {
			c.Next()
			return
		}

		if user.Role == models.RoleParent {
			var count int64
			err := database.GetDB().Model(&models.ParentChild{}).
				Where("parent_id = ? AND child_id = ?", user.ID, targetID).
				Count(&count).Error
			if err == nil && count > 0 {
				c.Next()
				return
			}
		}

		apierrors.Forbidden(c, "Not authorized to access this student's data")
		c.Abort()
	}
}
