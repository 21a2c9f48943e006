package middlewares

import (
	"gin-tasktracker/constants"
	"gin-tasktracker/models"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RequireAdmin lets only admin accounts through. It must run after
// AuthMiddleware, and reads the flag from the account loaded for this
// request rather than from the token.
func RequireAdmin(log logrus.FieldLogger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user, exists := ctx.Get(constants.ContextUserKey)
		if !exists {
			abortUnauthorized(ctx)
			return
		}

		userModel, ok := user.(*models.User)
		if !ok {
			abortUnauthorized(ctx)
			return
		}

		if !userModel.IsAdmin {
			log.WithFields(logrus.Fields{
				"user_id": userModel.ID,
				"path":    ctx.FullPath(),
			}).Warn("Admin access denied")
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": constants.ErrNotEnoughPermissions})
			return
		}

		ctx.Next()
	}
}
