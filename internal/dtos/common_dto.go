package dtos

// Pagination is the summary attached to every listing response.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	HasNext     bool `json:"hasNext"`
	HasPrev     bool `json:"hasPrev"`
}

type JobsPagination struct {
	Pagination
	TotalJobs int `json:"totalJobs"`
}

type CompaniesPagination struct {
	Pagination
	TotalCompanies int `json:"totalCompanies"`
}

type ApplicationsPagination struct {
	Pagination
	TotalApplications int `json:"totalApplications"`
}

type MessagesPagination struct {
	Pagination
	TotalMessages int `json:"totalMessages"`
}
