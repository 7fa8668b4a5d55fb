// Package orm holds small helpers shared by the repositories: the pagination
// metadata type and a GORM scope implementing offset arithmetic.
package orm

import "gorm.io/gorm"

// Pagination describes one page of a listing.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NewPagination normalises page/limit and computes the page count as
// ceil(total/limit).
func NewPagination(page, limit int, total int64) Pagination {
	page, limit = Normalize(page, limit)

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// Normalize clamps page to >= 1 and replaces a non-positive limit with the
// default page size of 5.
func Normalize(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 5
	}
	return page, limit
}

// Paginate is a GORM scope applying offset = (page-1)*limit.
func Paginate(page, limit int) func(*gorm.DB) *gorm.DB {
	page, limit = Normalize(page, limit)
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset((page - 1) * limit).Limit(limit)
	}
}
