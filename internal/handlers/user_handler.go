package handlers

import (
	"net/http"
	"strconv"

	"careernode_backend/internal/middleware"
	"careernode_backend/internal/services"
	"careernode_backend/internal/services/dto"
	"careernode_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	users := rg.Group("/users", authRequired)
	{
		users.GET("/me", h.GetMe)
		users.PATCH("/me", h.UpdateMe)
		users.DELETE("/me", h.DeleteMe)

		// Admin-only; the service enforces the role
		users.GET("", h.ListUsers)
		users.DELETE("/:id", h.DeleteUser)
	}
}

func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := h.GetAuthUserID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetProfile(h.GetDB(c), userID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID, ok := h.GetAuthUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateProfile(h.GetDB(c), userID, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) DeleteMe(c *gin.Context) {
	userID, ok := h.GetAuthUserID(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteAccount(h.GetDB(c), userID); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.RespondNoContent(c)
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	limit := parseQueryInt(c, "limit", 50)
	offset := parseQueryInt(c, "offset", 0)

	resp, err := h.userService.ListUsers(h.GetDB(c), actor, limit, offset)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	if err := h.userService.AdminDeleteUser(h.GetDB(c), actor, c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.RespondNoContent(c)
}

// parseQueryInt reads an integer query parameter, falling back on garbage
func parseQueryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
