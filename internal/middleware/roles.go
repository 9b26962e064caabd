package middleware

import (
	apierrors "github.com/classpoint/classroom-api/internal/errors"
	"github.com/classpoint/classroom-api/internal/models"
	"github.com/gin-gonic/gin"
)

// RequireRole rejects requests whose live role differs from the required one.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetCurrentUser(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		if user.Role != role {
			apierrors.Forbidden(c, "Only "+string(role)+"s can perform this action")
			c.Abort()
			return
		}

		c.Next()
	}
}
