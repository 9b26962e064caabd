package middleware

import (
	"strconv"

	"github.com/classpoint/classroom-api/internal/database"
	apierrors "github.com/classpoint/classroom-api/internal/errors"
	"github.com/classpoint/classroom-api/internal/models"
	"github.com/gin-gonic/gin"
)

// ContextKeyClassroom is where classroom gates store the loaded classroom.
const ContextKeyClassroom = "classroom"

// RequireClassroomAdmin allows the request only if the requester holds an
// admin membership row in the classroom named by the :id parameter.
// A missing classroom is reported before the admin check.
func RequireClassroomAdmin() gin.HandlerFunc {
	return requireMembership(true)
}

// RequireClassroomMember allows the request for any member of the classroom,
// admin or student.
func RequireClassroomMember() gin.HandlerFunc {
	return requireMembership(false)
}

func requireMembership(adminOnly bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		classroomID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid classroom ID")
			c.Abort()
			return
		}

		userID, exists := GetUserID(c)
		if !exists {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		var classroom models.Classroom
		if err := database.GetDB().First(&classroom, classroomID).Error; err != nil {
			apierrors.NotFound(c, "Classroom not found")
			c.Abort()
			return
		}

		var member models.ClassroomMember
		err = database.GetDB().
			Where("classroom_id = ? AND user_id = ?", classroomID, userID).
			First(&member).Error
		if err != nil {
			apierrors.Forbidden(c, "You are not a member of this classroom")
			c.Abort()
			return
		}

		if adminOnly && member.Role != models.ClassroomRoleAdmin {
			apierrors.Forbidden(c, "Only classroom admins can perform this action")
			c.Abort()
			return
		}

		c.Set(ContextKeyClassroom, classroom)
		c.Next()
	}
}
