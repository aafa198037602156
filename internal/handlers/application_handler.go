package handlers

import (
	"net/http"

	"careernode_backend/internal/middleware"
	"careernode_backend/internal/services"
	"careernode_backend/internal/services/dto"
	"careernode_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup, optionalAuth gin.HandlerFunc) {
	applications := rg.Group("/applications", optionalAuth)
	{
		applications.POST("", h.Create)
		applications.GET("/my", h.ListMine)
	}
}

func (h *ApplicationHandler) Create(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	var req dto.CreateApplicationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	application, err := h.applicationService.Create(h.GetDB(c), actor, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, application)
}

func (h *ApplicationHandler) ListMine(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	applications, err := h.applicationService.ListMine(h.GetDB(c), actor)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}
