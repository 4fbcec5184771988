package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jobportal/api/internal/dtos"
	"github.com/jobportal/api/internal/services"
)

type ContactHandler struct {
	base
	Contacts *services.ContactService
}

func NewContactHandler(contacts *services.ContactService, log *zap.Logger, production bool) *ContactHandler {
	return &ContactHandler{base: base{Log: log, Production: production}, Contacts: contacts}
}

// Submit is POST /contact (public).
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dtos.ContactSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	msg := h.Contacts.Submit(req)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Your message has been sent successfully. We will get back to you soon.",
		"id":      msg.ID,
	})
}

// List is GET /contact (admin).
func (h *ContactHandler) List(c *gin.Context) {
	var q dtos.ContactListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, h.Contacts.List(q))
}

// Get is GET /contact/:id (admin). Viewing a new message marks it read.
func (h *ContactHandler) Get(c *gin.Context) {
	msg, err := h.Contacts.Get(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}

// UpdateStatus is PATCH /contact/:id/status (admin).
func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	var req dtos.ContactStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	msg, err := h.Contacts.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":        "Message status updated successfully",
		"contactMessage": msg,
	})
}

// Delete is DELETE /contact/:id (admin).
func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.Contacts.Delete(c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contact message deleted successfully"})
}

// Stats is GET /contact/stats/overview (admin).
func (h *ContactHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.Contacts.Stats())
}
