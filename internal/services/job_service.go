package services

import (
	"go.uber.org/zap"

	"github.com/jobportal/api/internal/apperr"
	"github.com/jobportal/api/internal/dtos"
	"github.com/jobportal/api/internal/models"
	"github.com/jobportal/api/internal/store"
)

type JobService struct {
	Store *store.Store
	Log   *zap.Logger
}

func NewJobService(st *store.Store, log *zap.Logger) *JobService {
	return &JobService{Store: st, Log: log}
}

// canManage reports whether the caller may mutate an entity created by
// ownerID: admins always, anyone else only for their own entities.
func canManage(caller models.User, ownerID string) bool {
	return caller.Role == models.RoleAdmin || caller.ID == ownerID
}

// List returns jobs filtered and paginated per the query. The status filter
// defaults to active so public listings never leak paused or closed posts.
func (s *JobService) List(q dtos.JobListQuery) dtos.JobListResponse {
	preds := []func(models.Job) bool{
		func(j models.Job) bool { return j.Status == q.Status },
	}
	if q.Search != "" {
		preds = append(preds, func(j models.Job) bool {
			return store.ContainsFold(j.Title, q.Search) ||
				store.ContainsFold(j.Description, q.Search) ||
				store.AnyContainsFold(j.Requirements, q.Search)
		})
	}
	if q.Location != "" {
		preds = append(preds, func(j models.Job) bool {
			return store.ContainsFold(j.Location, q.Location)
		})
	}
	if q.Type != "" {
		preds = append(preds, func(j models.Job) bool { return j.Type == q.Type })
	}
	if q.Company != "" {
		preds = append(preds, func(j models.Job) bool {
			return store.ContainsFold(j.Company, q.Company)
		})
	}

	filtered := store.Filter(s.Store.Jobs(), preds...)
	page, info := store.Paginate(filtered, store.PageRequest{Page: q.Page, Limit: q.Limit})

	return dtos.JobListResponse{
		Jobs: page,
		Pagination: dtos.JobsPagination{
			Pagination: dtos.Pagination{
				CurrentPage: info.CurrentPage,
				TotalPages:  info.TotalPages,
				HasNext:     info.HasNext,
				HasPrev:     info.HasPrev,
			},
			TotalJobs: info.Total,
		},
	}
}

// Get returns a job joined with its company record.
func (s *JobService) Get(id string) (dtos.JobDetail, error) {
	job, ok := s.Store.Job(id)
	if !ok {
		return dtos.JobDetail{}, apperr.NotFound("Job not found")
	}
	detail := dtos.JobDetail{Job: job}
	if company, ok := s.Store.Company(job.CompanyID); ok {
		detail.CompanyDetails = &company
	}
	return detail, nil
}

// Create posts a new job owned by the caller. Status is always active on
// creation.
func (s *JobService) Create(caller models.User, req dtos.JobCreateRequest) models.Job {
	job := s.Store.AddJob(models.Job{
		Title:               req.Title,
		Company:             req.Company,
		CompanyID:           req.CompanyID,
		Location:            req.Location,
		Type:                req.Type,
		Salary:              req.Salary,
		Description:         req.Description,
		Requirements:        req.Requirements,
		Responsibilities:    req.Responsibilities,
		Benefits:            req.Benefits,
		Status:              models.JobStatusActive,
		ApplicationDeadline: req.ApplicationDeadline,
		CreatedBy:           caller.ID,
	})
	s.Log.Info("job created",
		zap.String("jobId", job.ID),
		zap.String("createdBy", caller.ID))
	return job
}

// Update patches a job. Only the owner or an admin may update.
func (s *JobService) Update(caller models.User, id string, req dtos.JobUpdateRequest) (models.Job, error) {
	job, ok := s.Store.Job(id)
	if !ok {
		return models.Job{}, apperr.NotFound("Job not found")
	}
	if !canManage(caller, job.CreatedBy) {
		return models.Job{}, apperr.NotAuthorized("Not authorized to update this job")
	}

	updated, err := s.Store.UpdateJob(id, store.JobPatch{
		Title:               req.Title,
		Company:             req.Company,
		CompanyID:           req.CompanyID,
		Location:            req.Location,
		Type:                req.Type,
		Salary:              req.Salary,
		Description:         req.Description,
		Requirements:        req.Requirements,
		Responsibilities:    req.Responsibilities,
		Benefits:            req.Benefits,
		Status:              req.Status,
		ApplicationDeadline: req.ApplicationDeadline,
	})
	if err != nil {
		return models.Job{}, apperr.NotFound("Job not found")
	}
	return updated, nil
}

// Delete removes a job. Only the owner or an admin may delete.
func (s *JobService) Delete(caller models.User, id string) error {
	job, ok := s.Store.Job(id)
	if !ok {
		return apperr.NotFound("Job not found")
	}
	if !canManage(caller, job.CreatedBy) {
		return apperr.NotAuthorized("Not authorized to delete this job")
	}
	if err := s.Store.RemoveJob(id); err != nil {
		return apperr.NotFound("Job not found")
	}
	s.Log.Info("job deleted",
		zap.String("jobId", id),
		zap.String("deletedBy", caller.ID))
	return nil
}

// ListMine returns every job the caller created, regardless of status.
func (s *JobService) ListMine(caller models.User) []models.Job {
	return store.Filter(s.Store.Jobs(), func(j models.Job) bool {
		return j.CreatedBy == caller.ID
	})
}
