package insurer

import (
	"github.com/gin-gonic/gin"

	"github.com/saludbot/admin-api/internal/service/insurer"
	"github.com/saludbot/admin-api/pkg/httputil"
)

type Handler struct {
	service *insurer.Service
}

func NewHandler(service *insurer.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/insurers", h.ListInsurers)
}

func (h *Handler) ListInsurers(c *gin.Context) {
	insurers, err := h.service.ListInsurers(c.Request.Context())
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, insurers)
}
