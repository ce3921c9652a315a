package helpers

import (
	"errors"
	"math"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/collegehub/internal/pkg/apperrors"
)

func TestPageSizeFor(t *testing.T) {
	assert.Equal(t, 20, PageSizeFor(false))
	assert.Equal(t, 50, PageSizeFor(true))
}

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		page, size     int
		offset, limit int64
	}{
		{1, 20, 0, 20},
		{3, 20, 40, 20},
		{2, 50, 50, 50},
		{0, 50, 0, 50},
		{-4, 0, 0, 20},
		{int(MaxPage), 50, (MaxPage - 1) * 50, 50},
	}
	for _, tt := range tests {
		offset, limit := CalculateOffsetLimit(tt.page, tt.size)
		assert.Equal(t, tt.offset, offset, "page=%d size=%d", tt.page, tt.size)
		assert.Equal(t, tt.limit, limit, "page=%d size=%d", tt.page, tt.size)
	}
}

func TestCalculateOffsetLimit_HugePageSaturates(t *testing.T) {
	for _, size := range []int{UnfilteredPageSize, FilteredPageSize} {
		offset, limit := CalculateOffsetLimit(math.MaxInt, size)
		assert.GreaterOrEqual(t, offset, int64(0), "size=%d", size)
		assert.Equal(t, int64(size), limit)
		assert.Zero(t, offset%limit)
	}
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(101, 2, 50)
	assert.Equal(t, 2, info.CurrentPage)
	assert.Equal(t, 3, info.TotalPages)
	assert.Equal(t, 50, info.PageSize)
	assert.Equal(t, int64(101), info.TotalItems)

	empty := NewPaginationInfo(0, 1, 20)
	assert.Equal(t, 0, empty.TotalPages)
}

func TestParsePageParam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		query   string
		want    int
		wantErr bool
	}{
		{"", 1, false},
		{"?page=", 1, false},
		{"?page=4", 4, false},
		{"?page=0", 0, true},
		{"?page=-2", 0, true},
		{"?page=two", 0, true},
		{"?page=" + strconv.FormatInt(MaxPage, 10), int(MaxPage), false},
		{"?page=" + strconv.FormatInt(MaxPage+1, 10), 0, true},
		{"?page=9223372036854775807", 0, true},
		{"?page=99999999999999999999", 0, true},
	}
	for _, tt := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("POST", "/colleges/filters"+tt.query, nil)

		page, err := ParsePageParam(c)
		if tt.wantErr {
			require.Error(t, err, tt.query)
			assert.True(t, errors.Is(err, apperrors.ErrBadRequest))
			continue
		}
		require.NoError(t, err, tt.query)
		assert.Equal(t, tt.want, page, tt.query)
	}
}
