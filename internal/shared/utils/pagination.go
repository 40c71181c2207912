package utils

import (
	"github.com/tradesift-io/tradesift/internal/shared/constants"
)

// Pagination holds validated pagination parameters.
type Pagination struct {
	PageIndex int
	PageSize  int
}

// ValidatePagination validates and normalizes pagination parameters.
// PageIndex defaults to DefaultPage if less than 1.
// PageSize defaults to DefaultPageSize if less than 1, and is capped at MaxPageSize.
func ValidatePagination(pageIndex, pageSize int) Pagination {
	if pageIndex < 1 {
		pageIndex = constants.DefaultPage
	}

	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}

	return Pagination{
		PageIndex: pageIndex,
		PageSize:  pageSize,
	}
}

// Offset returns the zero-based skip for the page window.
func (p Pagination) Offset() int {
	return (p.PageIndex - 1) * p.PageSize
}

// TotalPages calculates total pages for a given total count.
func TotalPages(total int64, pageSize int) int {
	if total == 0 || pageSize == 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
