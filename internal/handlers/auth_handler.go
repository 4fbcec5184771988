package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jobportal/api/internal/auth"
	"github.com/jobportal/api/internal/dtos"
	"github.com/jobportal/api/internal/services"
)

type AuthHandler struct {
	base
	Auth *services.AuthService
}

func NewAuthHandler(authSvc *services.AuthService, log *zap.Logger, production bool) *AuthHandler {
	return &AuthHandler{base: base{Log: log, Production: production}, Auth: authSvc}
}

// Register is POST /auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := h.Auth.Register(req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login is POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := h.Auth.Login(req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Me is GET /auth/me (authenticated).
func (h *AuthHandler) Me(c *gin.Context) {
	caller, _ := auth.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{"user": caller})
}
