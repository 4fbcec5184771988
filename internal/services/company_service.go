package services

import (
	"go.uber.org/zap"

	"github.com/jobportal/api/internal/apperr"
	"github.com/jobportal/api/internal/dtos"
	"github.com/jobportal/api/internal/models"
	"github.com/jobportal/api/internal/store"
)

type CompanyService struct {
	Store *store.Store
	Log   *zap.Logger
}

func NewCompanyService(st *store.Store, log *zap.Logger) *CompanyService {
	return &CompanyService{Store: st, Log: log}
}

func (s *CompanyService) activeJobCount(companyID string) int {
	n := 0
	for _, j := range s.Store.Jobs() {
		if j.CompanyID == companyID && j.Status == models.JobStatusActive {
			n++
		}
	}
	return n
}

// List returns companies filtered and paginated, each with its active-job
// count.
func (s *CompanyService) List(q dtos.CompanyListQuery) dtos.CompanyListResponse {
	var preds []func(models.Company) bool
	if q.Search != "" {
		preds = append(preds, func(c models.Company) bool {
			return store.ContainsFold(c.Name, q.Search) ||
				store.ContainsFold(c.Description, q.Search)
		})
	}
	if q.Industry != "" {
		preds = append(preds, func(c models.Company) bool {
			return store.ContainsFold(c.Industry, q.Industry)
		})
	}

	filtered := store.Filter(s.Store.Companies(), preds...)
	page, info := store.Paginate(filtered, store.PageRequest{Page: q.Page, Limit: q.Limit})

	rows := make([]dtos.CompanyWithJobCount, 0, len(page))
	for _, c := range page {
		rows = append(rows, dtos.CompanyWithJobCount{
			Company:  c,
			JobCount: s.activeJobCount(c.ID),
		})
	}

	return dtos.CompanyListResponse{
		Companies: rows,
		Pagination: dtos.CompaniesPagination{
			Pagination: dtos.Pagination{
				CurrentPage: info.CurrentPage,
				TotalPages:  info.TotalPages,
				HasNext:     info.HasNext,
				HasPrev:     info.HasPrev,
			},
			TotalCompanies: info.Total,
		},
	}
}

// Get returns a company joined with its active jobs.
func (s *CompanyService) Get(id string) (dtos.CompanyDetail, error) {
	company, ok := s.Store.Company(id)
	if !ok {
		return dtos.CompanyDetail{}, apperr.NotFound("Company not found")
	}

	jobs := store.Filter(s.Store.Jobs(), func(j models.Job) bool {
		return j.CompanyID == id && j.Status == models.JobStatusActive
	})
	return dtos.CompanyDetail{
		Company:  company,
		Jobs:     jobs,
		JobCount: len(jobs),
	}, nil
}

// Create registers a company owned by the caller.
func (s *CompanyService) Create(caller models.User, req dtos.CompanyCreateRequest, logoURL string) models.Company {
	company := s.Store.AddCompany(models.Company{
		Name:        req.Name,
		Description: req.Description,
		Industry:    req.Industry,
		Size:        req.Size,
		Founded:     req.Founded,
		Website:     req.Website,
		Location:    req.Location,
		Logo:        logoURL,
		CreatedBy:   caller.ID,
	})
	s.Log.Info("company created",
		zap.String("companyId", company.ID),
		zap.String("createdBy", caller.ID))
	return company
}

// Update patches a company. Only the owner or an admin may update. The logo
// is replaced only when a new one was uploaded.
func (s *CompanyService) Update(caller models.User, id string, req dtos.CompanyUpdateRequest, logoURL string) (models.Company, error) {
	company, ok := s.Store.Company(id)
	if !ok {
		return models.Company{}, apperr.NotFound("Company not found")
	}
	if !canManage(caller, company.CreatedBy) {
		return models.Company{}, apperr.NotAuthorized("Not authorized to update this company")
	}

	patch := store.CompanyPatch{
		Name:        req.Name,
		Description: req.Description,
		Industry:    req.Industry,
		Size:        req.Size,
		Founded:     req.Founded,
		Website:     req.Website,
		Location:    req.Location,
	}
	if logoURL != "" {
		patch.Logo = &logoURL
	}

	updated, err := s.Store.UpdateCompany(id, patch)
	if err != nil {
		return models.Company{}, apperr.NotFound("Company not found")
	}
	return updated, nil
}

// Delete removes a company. Only the owner or an admin may delete, and never
// while an active job still references the company.
func (s *CompanyService) Delete(caller models.User, id string) error {
	company, ok := s.Store.Company(id)
	if !ok {
		return apperr.NotFound("Company not found")
	}
	if !canManage(caller, company.CreatedBy) {
		return apperr.NotAuthorized("Not authorized to delete this company")
	}
	if s.activeJobCount(id) > 0 {
		return apperr.Conflict("Cannot delete company with active job postings. Please close all jobs first.")
	}
	if err := s.Store.RemoveCompany(id); err != nil {
		return apperr.NotFound("Company not found")
	}
	s.Log.Info("company deleted",
		zap.String("companyId", id),
		zap.String("deletedBy", caller.ID))
	return nil
}

// ListMine returns the caller's companies, each with its total job count.
func (s *CompanyService) ListMine(caller models.User) []dtos.CompanyWithJobCount {
	mine := store.Filter(s.Store.Companies(), func(c models.Company) bool {
		return c.CreatedBy == caller.ID
	})
	rows := make([]dtos.CompanyWithJobCount, 0, len(mine))
	for _, c := range mine {
		n := 0
		for _, j := range s.Store.Jobs() {
			if j.CompanyID == c.ID {
				n++
			}
		}
		rows = append(rows, dtos.CompanyWithJobCount{Company: c, JobCount: n})
	}
	return rows
}
