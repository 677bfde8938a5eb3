package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"libris/internal/infrastructure/auth"
	"libris/internal/shared/authorization"
	"libris/internal/shared/constants"
	"libris/internal/shared/logger"
	"libris/internal/shared/utils"
)

// AuthMiddleware guards the API: it authenticates the request token and
// then authorizes the request against the role's access list.
type AuthMiddleware struct {
	tokens *auth.JWTCodec
	acl    authorization.ACL
	logger logger.Interface
}

func NewAuthMiddleware(tokens *auth.JWTCodec, acl authorization.ACL, log logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
		acl:    acl,
		logger: log.Named("auth"),
	}
}

// RequireAuth rejects the request with 401 unless it carries a valid
// token whose role is allowed to perform this method on this resource.
// A malformed or expired token is treated the same as a missing one.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgUnauthorized)
			c.Abort()
			return
		}

		claims, err := m.tokens.Verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify token",
				"path", c.Request.URL.Path,
				"error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgUnauthorized)
			c.Abort()
			return
		}

		role := authorization.ParseRole(string(claims.Role))
		segment := authorization.ResourceSegment(c.Request.URL.Path)
		if !m.acl.Allows(role, segment, c.Request.Method) {
			m.logger.Warnw("access denied",
				"user_id", claims.UserID,
				"role", role,
				"segment", segment,
				"method", c.Request.Method)
			utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgUnauthorized)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserID)
		c.Set(constants.ContextKeyUserName, claims.Name)
		c.Set(constants.ContextKeyUserRole, string(role))
		c.Set(constants.ContextKeyStatus, claims.Status)

		c.Next()
	}
}

// extractToken reads the token from the authorization header, the token
// header, or the token query parameter, in that order. A Bearer prefix
// on the authorization header is stripped.
func extractToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
			return strings.TrimSpace(header[7:])
		}
		return header
	}

	if header := c.GetHeader("token"); header != "" {
		return header
	}

	return c.Query("token")
}
