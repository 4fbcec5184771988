package dtos

import "github.com/jobportal/api/internal/models"

type ApplicationListQuery struct {
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=10"`
	Status string `form:"status"`
	JobID  string `form:"jobId"`
	Search string `form:"search"`
}

// ApplicationSubmitRequest binds from multipart form data; the resume file
// rides alongside under the "resume" field.
type ApplicationSubmitRequest struct {
	FirstName    string `form:"firstName" binding:"required"`
	LastName     string `form:"lastName" binding:"required"`
	Email        string `form:"email" binding:"required,email"`
	Phone        string `form:"phone" binding:"required"`
	Location     string `form:"location" binding:"required"`
	Experience   string `form:"experience" binding:"required"`
	Availability string `form:"availability" binding:"required"`
	CoverLetter  string `form:"coverLetter"`
	Portfolio    string `form:"portfolio"`
	LinkedIn     string `form:"linkedin"`
}

type ApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ApplicationWithJob is an application joined with its job's headline fields.
type ApplicationWithJob struct {
	models.Application
	JobTitle    string `json:"jobTitle,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
}

type ApplicationListResponse struct {
	Applications []ApplicationWithJob   `json:"applications"`
	Pagination   ApplicationsPagination `json:"pagination"`
}

// ApplicationReceipt is the trimmed acknowledgement returned on submission.
type ApplicationReceipt struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	AppliedDate string `json:"appliedDate"`
}

type ApplicationStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Reviewed  int `json:"reviewed"`
	Interview int `json:"interview"`
	Rejected  int `json:"rejected"`
	Accepted  int `json:"accepted"`
}
