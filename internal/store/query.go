package store

import "strings"

// Pagination bounds. Page and limit below their minimums are clamped rather
// than rejected; limit is capped so a single request cannot page the whole
// collection at once.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageRequest is a caller-supplied pagination window.
type PageRequest struct {
	Page  int
	Limit int
}

func (p PageRequest) normalized() PageRequest {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// PageInfo summarizes a paginated result.
type PageInfo struct {
	CurrentPage int
	TotalPages  int
	Total       int
	HasNext     bool
	HasPrev     bool
}

// Paginate slices items for the requested page. Out-of-range pages yield an
// empty slice with correct metadata; an empty input yields zero total pages
// with both flags false.
func Paginate[T any](items []T, req PageRequest) ([]T, PageInfo) {
	req = req.normalized()

	total := len(items)
	start := (req.Page - 1) * req.Limit
	end := start + req.Limit

	info := PageInfo{
		CurrentPage: req.Page,
		TotalPages:  (total + req.Limit - 1) / req.Limit,
		Total:       total,
		HasNext:     end < total,
		HasPrev:     start > 0,
	}

	if start >= total {
		return []T{}, info
	}
	if end > total {
		end = total
	}
	return items[start:end], info
}

// Filter applies predicates in sequence with AND semantics. Nil predicates
// are skipped: an absent criterion means no constraint, not "match empty".
func Filter[T any](items []T, preds ...func(T) bool) []T {
	out := items
	for _, pred := range preds {
		if pred == nil {
			continue
		}
		filtered := make([]T, 0, len(out))
		for _, it := range out {
			if pred(it) {
				filtered = append(filtered, it)
			}
		}
		out = filtered
	}
	return out
}

// ContainsFold reports whether s contains substr, case-insensitively.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// AnyContainsFold reports whether any element contains substr,
// case-insensitively.
func AnyContainsFold(items []string, substr string) bool {
	for _, it := range items {
		if ContainsFold(it, substr) {
			return true
		}
	}
	return false
}
