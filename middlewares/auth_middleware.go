package middlewares

import (
	"errors"
	"gin-tasktracker/apperrors"
	"gin-tasktracker/constants"
	"gin-tasktracker/services"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const bearerPrefix = "Bearer "

func bearerToken(header string) (string, bool) {
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	return token, token != ""
}

func abortUnauthorized(ctx *gin.Context) {
	ctx.Header("WWW-Authenticate", "Bearer")
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": constants.ErrNotAuthenticated})
}

// AuthMiddleware resolves the bearer token to an account and stores both
// on the context. Every resolution failure, including a token whose
// account no longer exists, is reported as 401 with the same body.
func AuthMiddleware(resolver services.IIdentityResolver, log logrus.FieldLogger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, ok := bearerToken(ctx.GetHeader("Authorization"))
		if !ok {
			abortUnauthorized(ctx)
			return
		}

		user, err := resolver.Resolve(ctx.Request.Context(), tokenString)
		if err != nil {
			if errors.Is(err, apperrors.ErrUnauthorized) || errors.Is(err, apperrors.ErrNotFound) {
				log.WithError(err).WithField(constants.ContextRequestIDKey, ctx.GetString(constants.ContextRequestIDKey)).Debug("Rejected bearer token")
				abortUnauthorized(ctx)
				return
			}
			log.WithError(err).Error("Failed to resolve bearer token")
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": constants.ErrUnexpected})
			return
		}

		ctx.Set(constants.ContextUserKey, user)
		ctx.Set(constants.ContextTokenKey, tokenString)

		ctx.Next()
	}
}
