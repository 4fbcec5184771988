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

type CompanyHandler struct {
	base
	Companies *services.CompanyService
	Uploads   *upload.Saver
}

func NewCompanyHandler(companies *services.CompanyService, uploads *upload.Saver, log *zap.Logger, production bool) *CompanyHandler {
	return &CompanyHandler{
		base:      base{Log: log, Production: production},
		Companies: companies,
		Uploads:   uploads,
	}
}

// saveLogo stores the optional logo file, returning "" when none was sent.
func (h *CompanyHandler) saveLogo(c *gin.Context) (string, error) {
	file, err := c.FormFile("logo")
	if err != nil {
		return "", nil
	}
	return h.Uploads.SaveLogo(c, file)
}

// List is GET /companies.
func (h *CompanyHandler) List(c *gin.Context) {
	var q dtos.CompanyListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, h.Companies.List(q))
}

// Get is GET /companies/:id.
func (h *CompanyHandler) Get(c *gin.Context) {
	detail, err := h.Companies.Get(c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// Create is POST /companies (admin/employer, multipart).
func (h *CompanyHandler) Create(c *gin.Context) {
	caller, _ := auth.CurrentUser(c)

	var req dtos.CompanyCreateRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err)
		return
	}

	logoURL, err := h.saveLogo(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	company := h.Companies.Create(caller, req, logoURL)
	c.JSON(http.StatusCreated, gin.H{
		"message": "Company created successfully",
		"company": company,
	})
}

// Update is PUT /companies/:id (owner or admin, multipart).
func (h *CompanyHandler) Update(c *gin.Context) {
	caller, _ := auth.CurrentUser(c)

	var req dtos.CompanyUpdateRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err)
		return
	}

	logoURL, err := h.saveLogo(c)
	if err != nil {
		h.fail(c, err)
		return
	}

	company, err := h.Companies.Update(caller, c.Param("id"), req, logoURL)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Company updated successfully",
		"company": company,
	})
}

// Delete is DELETE /companies/:id (owner or admin; refused while active jobs
// reference the company).
func (h *CompanyHandler) Delete(c *gin.Context) {
	caller, _ := auth.CurrentUser(c)

	if err := h.Companies.Delete(caller, c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Company deleted successfully"})
}

// Mine is GET /companies/my/companies (admin/employer).
func (h *CompanyHandler) Mine(c *gin.Context) {
	caller, _ := auth.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{"companies": h.Companies.ListMine(caller)})
}
