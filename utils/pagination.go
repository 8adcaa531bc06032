package utils

import "math"

// Pagination represents the pagination details.
type Pagination struct {
	TotalItems  int `json:"totalItems"`
	CurrentPage int `json:"currentPage"`
	PageSize    int `json:"pageSize"`
	TotalPages  int `json:"totalPages"`
}

// CreatePagination creates a Pagination object. page is 1-based.
func CreatePagination(totalItems, page, pageSize int) *Pagination {
	if pageSize <= 0 {
		pageSize = 10 // Default page size
	}
	if page <= 0 {
		page = 1 // Default page
	}

	totalPages := int(math.Ceil(float64(totalItems) / float64(pageSize)))

	return &Pagination{
		TotalItems:  totalItems,
		CurrentPage: page,
		PageSize:    pageSize,
		TotalPages:  totalPages,
	}
}

// PageBounds returns the [start, end) slice bounds of a 0-based page over
// totalItems rows. Out of range pages yield an empty window.
func PageBounds(totalItems, pageIndex, pageSize int) (int, int) {
	if pageSize <= 0 || pageIndex < 0 {
		return 0, 0
	}
	start := pageIndex * pageSize
	if start >= totalItems {
		return totalItems, totalItems
	}
	end := start + pageSize
	if end > totalItems {
		end = totalItems
	}
	return start, end
}
