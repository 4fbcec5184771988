package models

import "time"

// User roles.
const (
	RoleAdmin     = "admin"
	RoleEmployer  = "employer"
	RoleJobseeker = "jobseeker"
)

// Job lifecycle statuses.
const (
	JobStatusActive = "active"
	JobStatusPaused = "paused"
	JobStatusClosed = "closed"
)

// Application lifecycle statuses.
const (
	ApplicationStatusPending   = "pending"
	ApplicationStatusReviewed  = "reviewed"
	ApplicationStatusInterview = "interview"
	ApplicationStatusRejected  = "rejected"
	ApplicationStatusAccepted  = "accepted"
)

// Contact message lifecycle statuses.
const (
	ContactStatusNew     = "new"
	ContactStatusRead    = "read"
	ContactStatusReplied = "replied"
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Role         string    `json:"role"`
	IsVerified   bool      `json:"isVerified"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type Job struct {
	ID                  string     `json:"id"`
	Title               string     `json:"title"`
	Company             string     `json:"company"`
	CompanyID           string     `json:"companyId"`
	Location            string     `json:"location"`
	Type                string     `json:"type"`
	Salary              string     `json:"salary"`
	Description         string     `json:"description"`
	Requirements        []string   `json:"requirements"`
	Responsibilities    []string   `json:"responsibilities"`
	Benefits            []string   `json:"benefits"`
	Status              string     `json:"status"`
	PostedDate          time.Time  `json:"postedDate"`
	ApplicationDeadline *time.Time `json:"applicationDeadline,omitempty"`
	CreatedBy           string     `json:"createdBy"`
	// ApplicationsCount is maintained by the store when applications are
	// added; it is never written directly by callers.
	ApplicationsCount int `json:"applicationsCount"`
}

type Company struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Industry    string    `json:"industry"`
	Size        string    `json:"size"`
	Founded     string    `json:"founded"`
	Website     string    `json:"website"`
	Location    string    `json:"location"`
	Logo        string    `json:"logo,omitempty"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Application struct {
	ID           string    `json:"id"`
	JobID        string    `json:"jobId"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Location     string    `json:"location"`
	Experience   string    `json:"experience"`
	CoverLetter  string    `json:"coverLetter"`
	ResumeURL    string    `json:"resumeUrl"`
	Portfolio    string    `json:"portfolio,omitempty"`
	LinkedIn     string    `json:"linkedin,omitempty"`
	Availability string    `json:"availability"`
	Status       string    `json:"status"`
	AppliedDate  time.Time `json:"appliedDate"`
}

type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func ValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleEmployer, RoleJobseeker:
		return true
	}
	return false
}

func ValidJobType(t string) bool {
	switch t {
	case "Full-time", "Part-time", "Contract", "Internship":
		return true
	}
	return false
}

func ValidJobStatus(s string) bool {
	switch s {
	case JobStatusActive, JobStatusPaused, JobStatusClosed:
		return true
	}
	return false
}

func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed,
		ApplicationStatusInterview, ApplicationStatusRejected,
		ApplicationStatusAccepted:
		return true
	}
	return false
}

func ValidContactStatus(s string) bool {
	switch s {
	case ContactStatusNew, ContactStatusRead, ContactStatusReplied:
		return true
	}
	return false
}
