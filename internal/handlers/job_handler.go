package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jobportal/api/internal/auth"
	"github.com/jobportal/api/internal/dtos"
	"github.com/jobportal/api/internal/services"
)

type JobHandler struct {
	base
	Jobs *services.JobService
}

func NewJobHandler(jobs *services.JobService, log *zap.Logger, production bool) *JobHandler {
	return &JobHandler{base: base{Log: log, Production: production}, Jobs: jobs}
}

// List is GET /jobs.
func (h *JobHandler) List(c *gin.Context) {
	var q dtos.JobListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, h.Jobs.List(q))
}

// Get is GET /jobs/:id.
func (h *JobHandler) Get(c *gin.Context) {
	detail, err := h.Jobs.Get(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Create is POST /jobs (admin/employer).
func (h *JobHandler) Create(c *gin.Context) {
	caller, _ := auth.CurrentUser(c)

	var req dtos.JobCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	job := h.Jobs.Create(caller, req)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Job posted successfully",
		"job":     job,
	})
}

// Update is PUT /jobs/:id (owner or admin).
func (h *JobHandler) Update(c *gin.Context) {
	caller, _ := auth.CurrentUser(c)

	var req dtos.JobUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	job, err := h.Jobs.Update(caller, c.Param("id"), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Job updated successfully",
		"job":     job,
	})
}

// Delete is DELETE /jobs/:id (owner or admin).
func (h *JobHandler) Delete(c *gin.Context) {
	caller, _ := auth.CurrentUser(c)

	if err := h.Jobs.Delete(caller, c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}

// Mine is GET /jobs/my/jobs (admin/employer).
func (h *JobHandler) Mine(c *gin.Context) {
	caller, _ := auth.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{"jobs": h.Jobs.ListMine(caller)})
}
