package services

import (
	"time"

	"go.uber.org/zap"

	"github.com/jobportal/api/internal/apperr"
	"github.com/jobportal/api/internal/dtos"
	"github.com/jobportal/api/internal/models"
	"github.com/jobportal/api/internal/notify"
	"github.com/jobportal/api/internal/store"
)

type ApplicationService struct {
	Store    *store.Store
	Notifier *notify.Dispatcher
	Log      *zap.Logger
}

func NewApplicationService(st *store.Store, n *notify.Dispatcher, log *zap.Logger) *ApplicationService {
	return &ApplicationService{Store: st, Notifier: n, Log: log}
}

// Submit files an application against a job. The job must exist and be
// active; the resume must already be stored and its URL supplied. On success
// two independent notifications are queued: a confirmation to the applicant
// and a notice to the job's owner. Neither can fail the submission.
func (s *ApplicationService) Submit(jobID string, req dtos.ApplicationSubmitRequest, resumeURL string) (dtos.ApplicationReceipt, error) {
	job, ok := s.Store.Job(jobID)
	if !ok {
		return dtos.ApplicationReceipt{}, apperr.NotFound("Job not found")
	}
	if job.Status != models.JobStatusActive {
		return dtos.ApplicationReceipt{}, apperr.Conflict("This job is no longer accepting applications")
	}
	if resumeURL == "" {
		return dtos.ApplicationReceipt{}, apperr.Validation("Resume file is required")
	}

	app := s.Store.AddApplication(models.Application{
		JobID:        jobID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Location:     req.Location,
		Experience:   req.Experience,
		CoverLetter:  req.CoverLetter,
		ResumeURL:    resumeURL,
		Portfolio:    req.Portfolio,
		LinkedIn:     req.LinkedIn,
		Availability: req.Availability,
	})

	s.Notifier.Enqueue(notify.ApplicationConfirmation(app.Email, job.Title, job.Company))
	if owner, ok := s.Store.User(job.CreatedBy); ok {
		s.Notifier.Enqueue(notify.NewApplicationNotice(
			owner.Email, app.FirstName+" "+app.LastName, job.Title))
	}

	s.Log.Info("application submitted",
		zap.String("applicationId", app.ID),
		zap.String("jobId", jobID))

	return dtos.ApplicationReceipt{
		ID:          app.ID,
		Status:      app.Status,
		AppliedDate: app.AppliedDate.Format(time.RFC3339),
	}, nil
}

func (s *ApplicationService) withJob(app models.Application) dtos.ApplicationWithJob {
	row := dtos.ApplicationWithJob{Application: app}
	if job, ok := s.Store.Job(app.JobID); ok {
		row.JobTitle = job.Title
		row.CompanyName = job.Company
	}
	return row
}

func (s *ApplicationService) list(apps []models.Application, q dtos.ApplicationListQuery) dtos.ApplicationListResponse {
	var preds []func(models.Application) bool
	if q.Status != "" {
		preds = append(preds, func(a models.Application) bool { return a.Status == q.Status })
	}
	if q.JobID != "" {
		preds = append(preds, func(a models.Application) bool { return a.JobID == q.JobID })
	}
	if q.Search != "" {
		preds = append(preds, func(a models.Application) bool {
			return store.ContainsFold(a.FirstName, q.Search) ||
				store.ContainsFold(a.LastName, q.Search) ||
				store.ContainsFold(a.Email, q.Search)
		})
	}

	filtered := store.Filter(apps, preds...)
	page, info := store.Paginate(filtered, store.PageRequest{Page: q.Page, Limit: q.Limit})

	rows := make([]dtos.ApplicationWithJob, 0, len(page))
	for _, a := range page {
		rows = append(rows, s.withJob(a))
	}

	return dtos.ApplicationListResponse{
		Applications: rows,
		Pagination: dtos.ApplicationsPagination{
			Pagination: dtos.Pagination{
				CurrentPage: info.CurrentPage,
				TotalPages:  info.TotalPages,
				HasNext:     info.HasNext,
				HasPrev:     info.HasPrev,
			},
			TotalApplications: info.Total,
		},
	}
}

// List returns all applications filtered and paginated. Admin only; role is
// enforced at the route.
func (s *ApplicationService) List(q dtos.ApplicationListQuery) dtos.ApplicationListResponse {
	return s.list(s.Store.Applications(), q)
}

// ListForOwner returns applications against jobs the caller created.
func (s *ApplicationService) ListForOwner(caller models.User, q dtos.ApplicationListQuery) dtos.ApplicationListResponse {
	owned := make(map[string]bool)
	for _, j := range s.Store.Jobs() {
		if j.CreatedBy == caller.ID {
			owned[j.ID] = true
		}
	}
	apps := store.Filter(s.Store.Applications(), func(a models.Application) bool {
		return owned[a.JobID]
	})
	return s.list(apps, q)
}

// mayAccess reports whether the caller may see an application: admins
// always, employers only when they own the referenced job.
func (s *ApplicationService) mayAccess(caller models.User, app models.Application) bool {
	if caller.Role == models.RoleAdmin {
		return true
	}
	job, ok := s.Store.Job(app.JobID)
	return ok && job.CreatedBy == caller.ID
}

// Get returns one application joined with its job's headline fields.
func (s *ApplicationService) Get(caller models.User, id string) (dtos.ApplicationWithJob, error) {
	app, ok := s.Store.Application(id)
	if !ok {
		return dtos.ApplicationWithJob{}, apperr.NotFound("Application not found")
	}
	if !s.mayAccess(caller, app) {
		return dtos.ApplicationWithJob{}, apperr.NotAuthorized("Not authorized to view this application")
	}
	return s.withJob(app), nil
}

// UpdateStatus transitions an application to one of the five lifecycle
// statuses.
func (s *ApplicationService) UpdateStatus(caller models.User, id, status string) (models.Application, error) {
	if !models.ValidApplicationStatus(status) {
		return models.Application{}, apperr.Validation("Invalid status")
	}
	app, ok := s.Store.Application(id)
	if !ok {
		return models.Application{}, apperr.NotFound("Application not found")
	}
	if !s.mayAccess(caller, app) {
		return models.Application{}, apperr.NotAuthorized("Not authorized to update this application")
	}
	updated, err := s.Store.UpdateApplicationStatus(id, status)
	if err != nil {
		return models.Application{}, apperr.NotFound("Application not found")
	}
	return updated, nil
}

// Stats tallies applications by status, scoped to the caller's jobs for
// employers.
func (s *ApplicationService) Stats(caller models.User) dtos.ApplicationStats {
	apps := s.Store.Applications()
	if caller.Role == models.RoleEmployer {
		owned := make(map[string]bool)
		for _, j := range s.Store.Jobs() {
			if j.CreatedBy == caller.ID {
				owned[j.ID] = true
			}
		}
		apps = store.Filter(apps, func(a models.Application) bool { return owned[a.JobID] })
	}

	stats := dtos.ApplicationStats{Total: len(apps)}
	for _, a := range apps {
		switch a.Status {
		case models.ApplicationStatusPending:
			stats.Pending++
		case models.ApplicationStatusReviewed:
			stats.Reviewed++
		case models.ApplicationStatusInterview:
			stats.Interview++
		case models.ApplicationStatusRejected:
			stats.Rejected++
		case models.ApplicationStatusAccepted:
			stats.Accepted++
		}
	}
	return stats
}
