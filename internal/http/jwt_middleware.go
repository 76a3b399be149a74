package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"job-portal/internal/service"
)

const authUserIDKey = "auth_user_id"

type userIDContextKey struct{}

// TokenVerifier valida un token y devuelve el user id que contiene.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// TokenRejectionRecorder cuenta tokens rechazados por motivo.
type TokenRejectionRecorder interface {
	RecordTokenRejection(reason string)
}

// JWTAuthMiddleware exige "Authorization: Bearer <token>" valido y guarda el
// user id en el contexto. Cualquier fallo corta la request con 401.
func JWTAuthMiddleware(logger *zap.Logger, verifier TokenVerifier, rejections TokenRejectionRecorder) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		if verifier == nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Authentication not configured"})
			return
		}

		header := c.GetHeader("Authorization")
		if strings.TrimSpace(header) == "" {
			logger.Debug("no token provided", zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
			return
		}

		parts := strings.Fields(header)
		if len(parts) != 2 || parts[0] != "Bearer" {
			logger.Debug("invalid token format", zap.String("path", c.Request.URL.Path))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token format"})
			return
		}

		userID, err := verifier.Verify(parts[1])
		if err != nil {
			reason := service.TokenErrorReason(err)
			logger.Debug("failed to authenticate token",
				zap.String("reason", reason),
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
			if rejections != nil {
				rejections.RecordTokenRejection(reason)
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Failed to authenticate token"})
			return
		}

		c.Set(authUserIDKey, userID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), userIDContextKey{}, userID))
		c.Next()
	}
}

// GetAuthUserID obtiene el user id autenticado desde el contexto de gin.
func GetAuthUserID(c *gin.Context) (string, bool) {
	val, ok := c.Get(authUserIDKey)
	if !ok {
		return "", false
	}
	userID, ok := val.(string)
	return userID, ok && userID != ""
}

// UserIDFromContext obtiene el user id autenticado desde un context.Context.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDContextKey{}).(string)
	return userID, ok && userID != ""
}
