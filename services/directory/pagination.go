package directory

// Default paging applied when the client sends nothing usable.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Pagination is the uniform paging block returned by every list endpoint.
type Pagination struct {
	Page       int64 `json:"page"`
	Limit      int64 `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// normalizePaging applies the defaults. Pages are 1-based and never clamped:
// a page beyond range simply yields an empty result set.
func normalizePaging(page, limit int64) (int64, int64) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return page, limit
}

// paginate computes the paging block; totalPages is ceil(total/limit).
func paginate(page, limit, total int64) Pagination {
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}
}
