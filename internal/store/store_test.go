package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jobportal/api/internal/models"
)

func newTestStore() *Store {
	return New(zap.NewNop())
}

func TestAddJobDefaults(t *testing.T) {
	st := newTestStore()

	job := st.AddJob(models.Job{
		Title:     "Backend Engineer",
		Company:   "Acme",
		CreatedBy: "u1",
	})

	assert.NotEmpty(t, job.ID)
	assert.Equal(t, models.JobStatusActive, job.Status)
	assert.Equal(t, 0, job.ApplicationsCount)
	assert.False(t, job.PostedDate.IsZero())

	jobs := st.Jobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, job.ID, jobs[0].ID)
}

func TestAddApplicationIncrementsCounter(t *testing.T) {
	st := newTestStore()
	job := st.AddJob(models.Job{Title: "Role", CreatedBy: "u1"})

	for i := 1; i <= 3; i++ {
		app := st.AddApplication(models.Application{JobID: job.ID, Email: "a@b.com"})
		assert.Equal(t, models.ApplicationStatusPending, app.Status)
		assert.False(t, app.AppliedDate.IsZero())

		got, ok := st.Job(job.ID)
		require.True(t, ok)
		assert.Equal(t, i, got.ApplicationsCount)
	}
}

func TestAddApplicationUnknownJob(t *testing.T) {
	st := newTestStore()

	// No referential integrity at the store level: the application is
	// created, the counter bump is skipped.
	app := st.AddApplication(models.Application{JobID: "missing"})
	assert.NotEmpty(t, app.ID)
	assert.Len(t, st.Applications(), 1)
}

func TestUpdateJobPreservesImmutableFields(t *testing.T) {
	st := newTestStore()
	job := st.AddJob(models.Job{Title: "Old", CreatedBy: "owner"})
	st.AddApplication(models.Application{JobID: job.ID})

	title := "New"
	status := models.JobStatusPaused
	updated, err := st.UpdateJob(job.ID, JobPatch{Title: &title, Status: &status})
	require.NoError(t, err)

	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, models.JobStatusPaused, updated.Status)
	assert.Equal(t, job.ID, updated.ID)
	assert.Equal(t, "owner", updated.CreatedBy)
	assert.Equal(t, job.PostedDate, updated.PostedDate)
	assert.Equal(t, 1, updated.ApplicationsCount)
}

func TestUpdateJobPartialPatch(t *testing.T) {
	st := newTestStore()
	job := st.AddJob(models.Job{Title: "Title", Location: "Remote", CreatedBy: "u1"})

	loc := "Berlin"
	updated, err := st.UpdateJob(job.ID, JobPatch{Location: &loc})
	require.NoError(t, err)
	assert.Equal(t, "Title", updated.Title)
	assert.Equal(t, "Berlin", updated.Location)
}

func TestUpdateAndRemoveMissing(t *testing.T) {
	st := newTestStore()

	_, err := st.UpdateJob("nope", JobPatch{})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, st.RemoveJob("nope"), ErrNotFound)
	assert.ErrorIs(t, st.RemoveCompany("nope"), ErrNotFound)
	assert.ErrorIs(t, st.RemoveContactMessage("nope"), ErrNotFound)

	_, err = st.UpdateApplicationStatus("nope", models.ApplicationStatusReviewed)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveJobKeepsOrder(t *testing.T) {
	st := newTestStore()
	a := st.AddJob(models.Job{Title: "A"})
	b := st.AddJob(models.Job{Title: "B"})
	c := st.AddJob(models.Job{Title: "C"})

	require.NoError(t, st.RemoveJob(b.ID))

	jobs := st.Jobs()
	require.Len(t, jobs, 2)
	assert.Equal(t, a.ID, jobs[0].ID)
	assert.Equal(t, c.ID, jobs[1].ID)

	_, ok := st.Job(b.ID)
	assert.False(t, ok)
}

func TestUpdateCompanyPreservesImmutableFields(t *testing.T) {
	st := newTestStore()
	company := st.AddCompany(models.Company{Name: "Acme", CreatedBy: "owner"})

	name := "Acme GmbH"
	updated, err := st.UpdateCompany(company.ID, CompanyPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Acme GmbH", updated.Name)
	assert.Equal(t, company.ID, updated.ID)
	assert.Equal(t, "owner", updated.CreatedBy)
	assert.Equal(t, company.CreatedAt, updated.CreatedAt)
}

func TestUserByEmailCaseNormalized(t *testing.T) {
	st := newTestStore()
	st.AddUser(models.User{Email: "  Jane@Example.COM ", Role: models.RoleJobseeker})

	u, ok := st.UserByEmail("jane@example.com")
	require.True(t, ok)
	assert.Equal(t, "jane@example.com", u.Email)

	_, ok = st.UserByEmail("unknown@example.com")
	assert.False(t, ok)
}

func TestIdempotentReads(t *testing.T) {
	st := newTestStore()
	job := st.AddJob(models.Job{Title: "Stable"})

	first, ok := st.Job(job.ID)
	require.True(t, ok)
	second, ok := st.Job(job.ID)
	require.True(t, ok)
	assert.Equal(t, first, second)
}

func TestSeed(t *testing.T) {
	st := newTestStore()
	st.Seed()

	admin, ok := st.User("1")
	require.True(t, ok)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.Equal(t, "admin@jobportal.com", admin.Email)

	job, ok := st.Job("1")
	require.True(t, ok)
	assert.Equal(t, models.JobStatusActive, job.Status)
	assert.Equal(t, "1", job.CompanyID)

	_, ok = st.Company("1")
	assert.True(t, ok)
}
