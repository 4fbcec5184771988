package dtos

import "github.com/jobportal/api/internal/models"

type CompanyListQuery struct {
	Page     int    `form:"page,default=1"`
	Limit    int    `form:"limit,default=10"`
	Search   string `form:"search"`
	Industry string `form:"industry"`
}

// CompanyCreateRequest binds from multipart form data; the logo file rides
// alongside under the "logo" field.
type CompanyCreateRequest struct {
	Name        string `form:"name" binding:"required"`
	Description string `form:"description" binding:"required,min=10"`
	Industry    string `form:"industry" binding:"required"`
	Size        string `form:"size" binding:"required"`
	Founded     string `form:"founded"`
	Website     string `form:"website" binding:"required"`
	Location    string `form:"location" binding:"required"`
}

type CompanyUpdateRequest struct {
	Name        *string `form:"name"`
	Description *string `form:"description" binding:"omitempty,min=10"`
	Industry    *string `form:"industry"`
	Size        *string `form:"size"`
	Founded     *string `form:"founded"`
	Website     *string `form:"website"`
	Location    *string `form:"location"`
}

// CompanyWithJobCount is a listing row with its active-job tally.
type CompanyWithJobCount struct {
	models.Company
	JobCount int `json:"jobCount"`
}

// CompanyDetail is a company joined with its active jobs.
type CompanyDetail struct {
	models.Company
	Jobs     []models.Job `json:"jobs"`
	JobCount int          `json:"jobCount"`
}

type CompanyListResponse struct {
	Companies  []CompanyWithJobCount `json:"companies"`
	Pagination CompaniesPagination   `json:"pagination"`
}
