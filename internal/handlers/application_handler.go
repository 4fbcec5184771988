package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jobportal/api/internal/auth"
	"github.com/jobportal/api/internal/dtos"
	"github.com/jobportal/api/internal/services"
	"github.com/jobportal/api/internal/upload"
)

type ApplicationHandler struct {
	base
	Applications *services.ApplicationService
	Uploads      *upload.Saver
}

func NewApplicationHandler(apps *services.ApplicationService, uploads *upload.Saver, log *zap.Logger, production bool) *ApplicationHandler {
	return &ApplicationHandler{
		base:         base{Log: log, Production: production},
		Applications: apps,
		Uploads:      uploads,
	}
}

// Submit is POST /applications/:jobId (public, multipart with a resume
// file). A missing job yields 404; an inactive job or missing resume yields
// 400.
func (h *ApplicationHandler) Submit(c *gin.Context) {
	var req dtos.ApplicationSubmitRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err)
		return
	}

	resumeURL := ""
	if file, err := c.FormFile("resume"); err == nil {
		url, err := h.Uploads.SaveResume(c, file)
		if err != nil {
			h.fail(c, err)
			return
		}
		resumeURL = url
	}

	receipt, err := h.Applications.Submit(c.Param("jobId"), req, resumeURL)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Application submitted successfully",
		"application": receipt,
	})
}

// List is GET /applications (admin).
func (h *ApplicationHandler) List(c *gin.Context) {
	var q dtos.ApplicationListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, h.Applications.List(q))
}

// ListMine is GET /applications/my-jobs (admin/employer): applications for
// jobs the caller created.
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	caller, _ := auth.CurrentUser(c)

	var q dtos.ApplicationListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, h.Applications.ListForOwner(caller, q))
}

// Get is GET /applications/:id (admin, or employer owning the job).
func (h *ApplicationHandler) Get(c *gin.Context) {
	caller, _ := auth.CurrentUser(c)

	row, err := h.Applications.Get(caller, c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// UpdateStatus is PATCH /applications/:id/status (admin, or employer owning
// the job).
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	caller, _ := auth.CurrentUser(c)

	var req dtos.ApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	app, err := h.Applications.UpdateStatus(caller, c.Param("id"), req.Status)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Application status updated successfully",
		"application": app,
	})
}

// Stats is GET /applications/stats/overview (admin/employer).
func (h *ApplicationHandler) Stats(c *gin.Context) {
	caller, _ := auth.CurrentUser(c)
	c.JSON(http.StatusOK, h.Applications.Stats(caller))
}
