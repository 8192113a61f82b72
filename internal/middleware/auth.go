package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/saludbot/admin-api/internal/service/auth"
	apperrors "github.com/saludbot/admin-api/pkg/errors"
	"github.com/saludbot/admin-api/pkg/httputil"
)

const (
	// SessionCookieName is the cookie carrying the session token
	SessionCookieName = "token"

	// Context keys set for downstream handlers
	ContextEmployeeCode = "employeeCode"
	ContextDisplayName  = "displayName"
)

type AuthMiddleware struct {
	authService *auth.Service
}

func NewAuthMiddleware(authService *auth.Service) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// Authenticate verifies the session cookie and sets the caller identity in
// context. Missing, malformed and expired tokens all get the same response.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			httputil.RespondWithError(c, apperrors.Unauthorized(err))
			c.Abort()
			return
		}

		identity, err := m.authService.ValidateToken(token)
		if err != nil {
			httputil.RespondWithError(c, err)
			c.Abort()
			return
		}

		c.Set(ContextEmployeeCode, identity.EmployeeCode)
		c.Set(ContextDisplayName, identity.DisplayName)
		c.Next()
	}
}
