package handlers

import (
	"net/http"

	"careernode_backend/internal/middleware"
	"careernode_backend/internal/services"
	"careernode_backend/internal/services/dto"
	"careernode_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	*BaseHandler
	categoryService services.CategoryService
}

func NewCategoryHandler(base *BaseHandler, categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		BaseHandler:     base,
		categoryService: categoryService,
	}
}

func (h *CategoryHandler) RegisterRoutes(rg *gin.RouterGroup, optionalAuth gin.HandlerFunc) {
	categories := rg.Group("/categories", optionalAuth)
	{
		categories.GET("", h.List)
		categories.POST("", h.Create)
		categories.DELETE("/:id", h.Delete)
	}
}

func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List(h.GetDB(c))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	var req dto.CreateCategoryRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	category, err := h.categoryService.Create(h.GetDB(c), actor, req.Name)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	if err := h.categoryService.Delete(h.GetDB(c), actor, c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.RespondNoContent(c)
}
