// File: internal/middleware/auth.go
package middleware

import (
	"talento_backend/internal/common"
	"talento_backend/internal/firebase"
	"talento_backend/internal/shared"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthMiddleware creates a Gin middleware that authenticates requests with
// a Firebase ID token. On success the local user is resolved (and lazily
// provisioned on first sign-in) and its ID, email and role are placed in
// the context for downstream handlers.
func AuthMiddleware(fbService firebase.Service, userService shared.Service, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := common.GetTokenFromContext(c)
		if tokenString == "" {
			logger.Debug("Authorization token missing or malformed")
			common.RespondWithError(c, common.ErrUnauthorized.WithDetails("Authorization header format must be 'Bearer <token>'."))
			return
		}

		token, err := fbService.VerifyIDToken(c.Request.Context(), tokenString)
		if err != nil {
			logger.Warn("Firebase token verification failed", zap.Error(err))
			common.RespondWithError(c, common.ErrUnauthorized.WithDetails("Invalid or expired token."))
			return
		}

		user, wasCreated, err := userService.GetOrCreateUserFromFirebaseClaims(c.Request.Context(), token)
		if err != nil {
			logger.Error("Failed to resolve user from token claims",
				zap.Error(err),
				zap.String("userID", token.UID),
			)
			common.RespondWithError(c, common.ErrInternalServer.WithDetails("Failed to resolve user account."))
			return
		}

		c.Set(common.UserIDKey, user.ID)
		if user.Email != nil {
			c.Set(common.UserEmailKey, *user.Email)
		}
		c.Set(common.UserRoleKey, user.Role)

		logger.Debug("User authenticated successfully",
			zap.String("userID", user.ID),
			zap.String("role", user.Role),
			zap.Bool("provisioned", wasCreated),
		)

		c.Next()
	}
}

// RoleAuthMiddleware creates a middleware to check if the authenticated user has one of the required roles.
func RoleAuthMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := common.GetUserRoleFromContext(c)
		if userRole == "" {
			// This should ideally not happen if AuthMiddleware ran successfully
			common.RespondWithError(c, common.ErrForbidden.WithDetails("User role not found in context."))
			return
		}

		isAllowed := false
		for _, role := range allowedRoles {
			if userRole == role {
				isAllowed = true
				break
			}
		}

		if !isAllowed {
			common.RespondWithError(c, common.ErrForbidden.WithDetails("You do not have sufficient permissions for this resource."))
			return
		}
		c.Next()
	}
}
