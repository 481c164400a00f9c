package api

// Page bounds applied to every list endpoint.
const (
	MinLimit     = 1
	MaxLimit     = 100
	DefaultLimit = 20
)

// Pagination holds clamped page parameters and the derived offset.
type Pagination struct {
	Page   int `json:"page"`
	Limit  int `json:"limit"`
	Offset int `json:"-"`
}

// ClampPagination forces page >= 1 and limit into [1,100] regardless of the
// caller's input, then derives the row offset.
func ClampPagination(page, limit int) Pagination {
	if page < 1 {
		page = 1
	}
	if limit < MinLimit {
		limit = MinLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Pagination{Page: page, Limit: limit, Offset: (page - 1) * limit}
}
