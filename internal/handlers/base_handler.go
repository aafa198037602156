package handlers

import (
	"net/http"

	"careernode_backend/internal/validator"
	"careernode_backend/pkg/apperrors"
	"careernode_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BaseHandler carries the pieces every handler needs
type BaseHandler struct {
	Validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{Validator: v}
}

// GetDB pulls the request-scoped database handle installed by DBMiddleware.
// Tests swap in a transaction through the same key.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	db, exists := c.Get(string(contextkeys.DBContextKey))
	if !exists {
		return nil
	}
	gormDB, ok := db.(*gorm.DB)
	if !ok {
		return nil
	}
	return gormDB
}

// BindAndValidateJSON binds the JSON body and runs struct validation.
// On failure it writes the error response and returns false.
func (h *BaseHandler) BindAndValidateJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}

	if err := h.Validator.Validate(obj); err != nil {
		if ve, ok := err.(*validator.ValidationError); ok {
			apperrors.HandleError(c, apperrors.ValidationError(ve.Errors))
			return false
		}
		apperrors.HandleError(c, apperrors.InternalError(err))
		return false
	}

	return true
}

// BindQuery binds recognized query parameters. Unknown parameters are
// ignored; a list request never fails on its query string.
func (h *BaseHandler) BindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters"))
		return false
	}
	return true
}

// GetAuthUserID returns the authenticated user id set by the auth middleware
func (h *BaseHandler) GetAuthUserID(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get("userID")
	if !exists {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return "", false
	}
	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authentication required"))
		return "", false
	}
	return userID, true
}

// RespondNoContent is the shared 204 response
func (h *BaseHandler) RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
