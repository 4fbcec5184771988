// Package store owns the in-memory entity collections. All reads and writes
// of entity data go through a Store constructed with New and injected into
// the services that need it.
package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jobportal/api/internal/models"
)

// ErrNotFound is returned by update/remove operations when no entity with
// the given id exists. It is never a silent no-op.
var ErrNotFound = errors.New("store: entity not found")

// collection keeps entities addressable by id while preserving insertion
// order for listings.
type collection[T any] struct {
	byID  map[string]T
	order []string
}

func newCollection[T any]() collection[T] {
	return collection[T]{byID: make(map[string]T)}
}

func (c *collection[T]) add(id string, v T) {
	c.byID[id] = v
	c.order = append(c.order, id)
}

func (c *collection[T]) get(id string) (T, bool) {
	v, ok := c.byID[id]
	return v, ok
}

func (c *collection[T]) replace(id string, v T) bool {
	if _, ok := c.byID[id]; !ok {
		return false
	}
	c.byID[id] = v
	return true
}

func (c *collection[T]) remove(id string) bool {
	if _, ok := c.byID[id]; !ok {
		return false
	}
	delete(c.byID, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

func (c *collection[T]) snapshot() []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

// Store holds the five entity collections. State is volatile; it lives for
// the process lifetime and is never persisted.
type Store struct {
	mu sync.RWMutex

	users        collection[models.User]
	jobs         collection[models.Job]
	companies    collection[models.Company]
	applications collection[models.Application]
	contacts     collection[models.ContactMessage]

	log *zap.Logger
}

func New(log *zap.Logger) *Store {
	return &Store{
		users:        newCollection[models.User](),
		jobs:         newCollection[models.Job](),
		companies:    newCollection[models.Company](),
		applications: newCollection[models.Application](),
		contacts:     newCollection[models.ContactMessage](),
		log:          log,
	}
}

func newID() string { return uuid.NewString() }

// ----- Users -----

// AddUser assigns id and timestamps and appends the user. Email uniqueness
// is a service-level concern; the store does not enforce it.
func (s *Store) AddUser(u models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	u.ID = newID()
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.CreatedAt = now
	u.UpdatedAt = now
	s.users.add(u.ID, u)
	return u
}

func (s *Store) User(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users.get(id)
}

func (s *Store) UserByEmail(email string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	email = strings.ToLower(strings.TrimSpace(email))
	for _, id := range s.users.order {
		u := s.users.byID[id]
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

// ----- Jobs -----

// AddJob assigns id, posted date, a zero applications counter, and the
// active status unless one was supplied.
func (s *Store) AddJob(j models.Job) models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	j.ID = newID()
	j.PostedDate = time.Now().UTC()
	j.ApplicationsCount = 0
	if j.Status == "" {
		j.Status = models.JobStatusActive
	}
	s.jobs.add(j.ID, j)
	return j
}

func (s *Store) Job(id string) (models.Job, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.jobs.get(id)
}

func (s *Store) Jobs() []models.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.jobs.snapshot()
}

// JobPatch carries the mutable job fields. Nil fields leave the original
// value untouched.
type JobPatch struct {
	Title               *string
	Company             *string
	CompanyID           *string
	Location            *string
	Type                *string
	Salary              *string
	Description         *string
	Requirements        *[]string
	Responsibilities    *[]string
	Benefits            *[]string
	Status              *string
	ApplicationDeadline *time.Time
}

// UpdateJob merges patch over the stored job. ID, creator, posted date and
// the applications counter are preserved regardless of the patch.
func (s *Store) UpdateJob(id string, patch JobPatch) (models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	j, ok := s.jobs.get(id)
	if !ok {
		return models.Job{}, ErrNotFound
	}
	if patch.Title != nil {
		j.Title = *patch.Title
	}
	if patch.Company != nil {
		j.Company = *patch.Company
	}
	if patch.CompanyID != nil {
		j.CompanyID = *patch.CompanyID
	}
	if patch.Location != nil {
		j.Location = *patch.Location
	}
	if patch.Type != nil {
		j.Type = *patch.Type
	}
	if patch.Salary != nil {
		j.Salary = *patch.Salary
	}
	if patch.Description != nil {
		j.Description = *patch.Description
	}
	if patch.Requirements != nil {
		j.Requirements = *patch.Requirements
	}
	if patch.Responsibilities != nil {
		j.Responsibilities = *patch.Responsibilities
	}
	if patch.Benefits != nil {
		j.Benefits = *patch.Benefits
	}
	if patch.Status != nil {
		j.Status = *patch.Status
	}
	if patch.ApplicationDeadline != nil {
		j.ApplicationDeadline = patch.ApplicationDeadline
	}
	s.jobs.replace(id, j)
	return j, nil
}

func (s *Store) RemoveJob(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.jobs.remove(id) {
		return ErrNotFound
	}
	return nil
}

// ----- Companies -----

func (s *Store) AddCompany(c models.Company) models.Company {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = newID()
	c.CreatedAt = time.Now().UTC()
	s.companies.add(c.ID, c)
	return c
}

func (s *Store) Company(id string) (models.Company, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.companies.get(id)
}

func (s *Store) Companies() []models.Company {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.companies.snapshot()
}

// CompanyPatch carries the mutable company fields. Nil fields leave the
// original value untouched.
type CompanyPatch struct {
	Name        *string
	Description *string
	Industry    *string
	Size        *string
	Founded     *string
	Website     *string
	Location    *string
	Logo        *string
}

// UpdateCompany merges patch over the stored company. ID, creator and
// creation timestamp are preserved regardless of the patch.
func (s *Store) UpdateCompany(id string, patch CompanyPatch) (models.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.companies.get(id)
	if !ok {
		return models.Company{}, ErrNotFound
	}
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Description != nil {
		c.Description = *patch.Description
	}
	if patch.Industry != nil {
		c.Industry = *patch.Industry
	}
	if patch.Size != nil {
		c.Size = *patch.Size
	}
	if patch.Founded != nil {
		c.Founded = *patch.Founded
	}
	if patch.Website != nil {
		c.Website = *patch.Website
	}
	if patch.Location != nil {
		c.Location = *patch.Location
	}
	if patch.Logo != nil {
		c.Logo = *patch.Logo
	}
	s.companies.replace(id, c)
	return c, nil
}

func (s *Store) RemoveCompany(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.companies.remove(id) {
		return ErrNotFound
	}
	return nil
}

// ----- Applications -----

// AddApplication assigns id, applied date and the pending status, appends
// the application, and bumps the referenced job's applications counter by
// exactly one. A missing job does not fail the insert; the counter bump is
// simply skipped.
func (s *Store) AddApplication(a models.Application) models.Application {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = newID()
	a.Status = models.ApplicationStatusPending
	a.AppliedDate = time.Now().UTC()
	s.applications.add(a.ID, a)

	if j, ok := s.jobs.get(a.JobID); ok {
		j.ApplicationsCount++
		s.jobs.replace(j.ID, j)
	} else {
		s.log.Warn("application references unknown job",
			zap.String("applicationId", a.ID),
			zap.String("jobId", a.JobID))
	}
	return a
}

func (s *Store) Application(id string) (models.Application, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.applications.get(id)
}

func (s *Store) Applications() []models.Application {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.applications.snapshot()
}

// UpdateApplicationStatus transitions an application's lifecycle status.
func (s *Store) UpdateApplicationStatus(id, status string) (models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.applications.get(id)
	if !ok {
		return models.Application{}, ErrNotFound
	}
	a.Status = status
	s.applications.replace(id, a)
	return a, nil
}

// ----- Contact messages -----

func (s *Store) AddContactMessage(m models.ContactMessage) models.ContactMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	m.ID = newID()
	m.Status = models.ContactStatusNew
	m.CreatedAt = time.Now().UTC()
	s.contacts.add(m.ID, m)
	return m
}

func (s *Store) ContactMessage(id string) (models.ContactMessage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.contacts.get(id)
}

func (s *Store) ContactMessages() []models.ContactMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.contacts.snapshot()
}

func (s *Store) UpdateContactMessageStatus(id, status string) (models.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.contacts.get(id)
	if !ok {
		return models.ContactMessage{}, ErrNotFound
	}
	m.Status = status
	s.contacts.replace(id, m)
	return m, nil
}

func (s *Store) RemoveContactMessage(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.contacts.remove(id) {
		return ErrNotFound
	}
	return nil
}
