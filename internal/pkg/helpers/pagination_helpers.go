package helpers

import (
	"fmt"
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/collegehub/internal/app/models/dto"
	"github.com/yigit/collegehub/internal/pkg/apperrors"
)

const (
	// UnfilteredPageSize is used when a college search carries no active filter
	UnfilteredPageSize = 20
	// FilteredPageSize is used as soon as any filter is active
	FilteredPageSize = 50
	DefaultPage      = 1 // Default page is 1-based

	// MaxPage is the largest page whose offset fits in an int64 at any page size
	MaxPage int64 = math.MaxInt64 / FilteredPageSize
)

// PageSizeFor returns the page size for the given filter state.
func PageSizeFor(filtered bool) int {
	if filtered {
		return FilteredPageSize
	}
	return UnfilteredPageSize
}

// CalculateOffsetLimit calculates the offset and limit for queries based on 1-based page index.
func CalculateOffsetLimit(page, size int) (offset int64, limit int64) {
	if size <= 0 {
		size = UnfilteredPageSize
	}
	if page < 1 {
		page = DefaultPage
	}

	// 1-based page to 0-based offset, saturating instead of overflowing
	limit = int64(size)
	if skipped := int64(page - 1); skipped > math.MaxInt64/limit {
		offset = math.MaxInt64 / limit * limit
	} else {
		offset = skipped * limit
	}
	return offset, limit
}

// NewPaginationInfo creates a standard PaginationInfo DTO.
// page should be the 1-based page number.
func NewPaginationInfo(totalItems int64, page, size int) dto.PaginationInfo {
	if size <= 0 {
		size = UnfilteredPageSize
	}
	if page < 1 {
		page = DefaultPage
	}

	totalPages := 0
	if totalItems > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(size)))
	}

	return dto.PaginationInfo{
		CurrentPage: page,
		TotalPages:  totalPages,
		PageSize:    size,
		TotalItems:  totalItems,
	}
}

// ParsePageParam extracts the 1-based "page" query parameter. A missing
// parameter means the first page; anything that is not a positive integer is rejected.
func ParsePageParam(c *gin.Context) (int, error) {
	pageStr, ok := c.GetQuery("page")
	if !ok || pageStr == "" {
		return DefaultPage, nil
	}

	page, err := strconv.ParseInt(pageStr, 10, 64)
	if err != nil || page < 1 {
		return 0, apperrors.NewBadRequestError("page must be a positive integer")
	}
	if page > MaxPage || page > math.MaxInt {
		return 0, apperrors.NewBadRequestError(fmt.Sprintf("page must not exceed %d", min(MaxPage, math.MaxInt)))
	}
	return int(page), nil
}
