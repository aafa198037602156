package handlers

import (
	"net/http"

	"careernode_backend/internal/middleware"
	"careernode_backend/internal/services"
	"careernode_backend/internal/services/dto"
	"careernode_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

// RegisterRoutes mounts the job routes under one optional-auth group.
// Reads are public; writes go through the policy layer, which turns a
// denial into 401 or 403 depending on whether the actor authenticated.
func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup, optionalAuth gin.HandlerFunc) {
	jobs := rg.Group("/jobs", optionalAuth)
	{
		jobs.GET("", h.List)
		jobs.GET("/my", h.ListMine)
		jobs.GET("/:id", h.Get)
		jobs.POST("", h.Create)
		jobs.PATCH("/:id", h.Update)
		jobs.DELETE("/:id", h.Delete)
		jobs.GET("/:id/applications", h.ListApplications)
	}
}

func (h *JobHandler) List(c *gin.Context) {
	var query dto.JobListQuery
	if !h.BindQuery(c, &query) {
		return
	}

	jobs, err := h.jobService.List(h.GetDB(c), &query)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.jobService.Get(h.GetDB(c), c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Create(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.Create(h.GetDB(c), actor, &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) Update(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	var req dto.UpdateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.Update(h.GetDB(c), actor, c.Param("id"), &req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	if err := h.jobService.Delete(h.GetDB(c), actor, c.Param("id")); err != nil {
		apperrors.HandleError(c, err)
		return
	}

	h.RespondNoContent(c)
}

func (h *JobHandler) ListMine(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	jobs, err := h.jobService.ListMine(h.GetDB(c), actor)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) ListApplications(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	applications, err := h.jobService.ListApplications(h.GetDB(c), actor, c.Param("id"))
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}
