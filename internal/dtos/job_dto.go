package dtos

import (
	"time"

	"github.com/jobportal/api/internal/models"
)

type JobListQuery struct {
	Page     int    `form:"page,default=1"`
	Limit    int    `form:"limit,default=10"`
	Search   string `form:"search"`
	Location string `form:"location"`
	Type     string `form:"type"`
	Company  string `form:"company"`
	Status   string `form:"status,default=active"`
}

type JobCreateRequest struct {
	Title               string     `json:"title" binding:"required"`
	Company             string     `json:"company" binding:"required"`
	CompanyID           string     `json:"companyId"`
	Location            string     `json:"location" binding:"required"`
	Type                string     `json:"type" binding:"required,oneof=Full-time Part-time Contract Internship"`
	Salary              string     `json:"salary" binding:"required"`
	Description         string     `json:"description" binding:"required,min=10"`
	Requirements        []string   `json:"requirements" binding:"required,min=1"`
	Responsibilities    []string   `json:"responsibilities"`
	Benefits            []string   `json:"benefits"`
	ApplicationDeadline *time.Time `json:"applicationDeadline"`
}

// JobUpdateRequest carries optional fields; absent fields leave the job
// unchanged. ID, creator, posted date and applications count cannot be
// patched.
type JobUpdateRequest struct {
	Title               *string    `json:"title"`
	Company             *string    `json:"company"`
	CompanyID           *string    `json:"companyId"`
	Location            *string    `json:"location"`
	Type                *string    `json:"type" binding:"omitempty,oneof=Full-time Part-time Contract Internship"`
	Salary              *string    `json:"salary"`
	Description         *string    `json:"description" binding:"omitempty,min=10"`
	Requirements        *[]string  `json:"requirements"`
	Responsibilities    *[]string  `json:"responsibilities"`
	Benefits            *[]string  `json:"benefits"`
	Status              *string    `json:"status" binding:"omitempty,oneof=active paused closed"`
	ApplicationDeadline *time.Time `json:"applicationDeadline"`
}

// JobDetail is a job joined with its company record.
type JobDetail struct {
	models.Job
	CompanyDetails *models.Company `json:"companyDetails,omitempty"`
}

type JobListResponse struct {
	Jobs       []models.Job   `json:"jobs"`
	Pagination JobsPagination `json:"pagination"`
}
