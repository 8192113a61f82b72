package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saludbot/admin-api/internal/middleware"
	"github.com/saludbot/admin-api/internal/model"
	"github.com/saludbot/admin-api/internal/service/auth"
	apperrors "github.com/saludbot/admin-api/pkg/errors"
	"github.com/saludbot/admin-api/pkg/httputil"
)

// cookieMaxAge matches the token expiry: 8 hours.
const cookieMaxAge = 8 * 60 * 60

type Handler struct {
	service      *auth.Service
	secureCookie bool
}

func NewHandler(service *auth.Service, secureCookie bool) *Handler {
	return &Handler{service: service, secureCookie: secureCookie}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/logout", h.Logout)
	}
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.Validation("missing credentials", err))
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.EmployeeCode, req.Password)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookieName, token, cookieMaxAge, "/", "", h.secureCookie, true)

	httputil.RespondWithSuccess(c, gin.H{"message": "login successful"})
}

// Logout clears the session cookie. The token itself stays valid until its
// natural expiry; there is no server-side revocation.
func (h *Handler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", h.secureCookie, true)

	httputil.RespondWithSuccess(c, gin.H{"message": "session closed"})
}
