package physician

import (
	"github.com/gin-gonic/gin"

	"github.com/saludbot/admin-api/internal/model"
	"github.com/saludbot/admin-api/internal/service/physician"
	apperrors "github.com/saludbot/admin-api/pkg/errors"
	"github.com/saludbot/admin-api/pkg/httputil"
)

type Handler struct {
	service *physician.Service
}

func NewHandler(service *physician.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	physicians := r.Group("/physicians")
	{
		physicians.GET("", h.ListRoster)
		physicians.POST("/visibility", h.ToggleVisibility)
		physicians.POST("/specialty", h.ChangeSpecialty)
		physicians.POST("/contract", h.ChangeContract)
	}
}

func (h *Handler) ListRoster(c *gin.Context) {
	var filter model.RosterFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		httputil.RespondWithError(c, apperrors.Validation("invalid filter", err))
		return
	}

	roster, err := h.service.ListRoster(c.Request.Context(), &filter)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, roster)
}

func (h *Handler) ToggleVisibility(c *gin.Context) {
	var req model.ToggleVisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.Validation("missing employee code", err))
		return
	}

	visible, err := h.service.ToggleVisibility(c.Request.Context(), req.EmployeeCode)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, gin.H{"visible": visible})
}

func (h *Handler) ChangeSpecialty(c *gin.Context) {
	var req model.ChangeSpecialtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.Validation("missing parameters", err))
		return
	}

	if err := h.service.ChangeSpecialty(c.Request.Context(), req.EmployeeCode, req.NewSpecialtyCode); err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, gin.H{"message": "specialty updated"})
}

func (h *Handler) ChangeContract(c *gin.Context) {
	var req model.ChangeContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithError(c, apperrors.Validation("missing employee code", err))
		return
	}

	contract, err := h.service.ChangeContract(c.Request.Context(), req.EmployeeCode, req.NewContractCode)
	if err != nil {
		httputil.RespondWithError(c, err)
		return
	}

	httputil.RespondWithSuccess(c, gin.H{"contract": contract})
}
