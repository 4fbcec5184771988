package dtos

import "github.com/jobportal/api/internal/models"

type ContactListQuery struct {
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=10"`
	Status string `form:"status"`
	Search string `form:"search"`
}

type ContactSubmitRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required,min=10"`
}

type ContactStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ContactListResponse struct {
	Messages   []models.ContactMessage `json:"messages"`
	Pagination MessagesPagination      `json:"pagination"`
}

type ContactStats struct {
	Total   int `json:"total"`
	New     int `json:"new"`
	Read    int `json:"read"`
	Replied int `json:"replied"`
}
