package dto

import (
	"github.com/shopspring/decimal"
	"github.com/yigit/collegehub/internal/app/models"
)

// CollegeListResponse is returned by GET /colleges
type CollegeListResponse struct {
	UniqueFilterOptions []models.UniqueFilterOptions `json:"uniqueFilterOptions"`
	Colleges            []models.College             `json:"colleges,omitempty"`
}

// CollegeDetailResponse is returned by GET /colleges/{id}.
// CurrencyConversion is null when no rates could be obtained.
type CollegeDetailResponse struct {
	College            *models.CollegeDetail      `json:"college"`
	CurrencyConversion map[string]decimal.Decimal `json:"currencyConversion"`
	CurrencyBase       string                     `json:"currencyBase,omitempty" example:"INR"`
	CurrencyStale      bool                       `json:"currencyStale,omitempty"`
}

// CollegeFilterRequest is the body of POST /colleges/filters. Empty fields are ignored.
type CollegeFilterRequest struct {
	Country     string `json:"country" binding:"max=100" example:"India"`
	Program     string `json:"program" binding:"max=200" example:"MBA"`
	Type        string `json:"type" binding:"max=100" example:"Full Time"`
	CourseName  string `json:"courseName" binding:"max=200" example:"data science"`
	CollegeName string `json:"collegeName" binding:"max=200" example:"institute"`
}

// ToFilter converts the request into a search filter for the given page
func (r CollegeFilterRequest) ToFilter(page int) models.CollegeFilter {
	return models.CollegeFilter{
		Country:     r.Country,
		Program:     r.Program,
		Type:        r.Type,
		CourseName:  r.CourseName,
		CollegeName: r.CollegeName,
		Page:        page,
	}.Normalize()
}

// CollegeFilterResponse is returned by POST /colleges/filters
type CollegeFilterResponse struct {
	Data       []models.CollegeCourseRow `json:"data"`
	TotalCount int64                     `json:"totalCount"`
	Pagination PaginationInfo            `json:"pagination"`
}

// CollegeCountResponse is returned by GET /countries/{country}/colleges/count
type CollegeCountResponse struct {
	Country string `json:"country" example:"India"`
	Count   int64  `json:"count" example:"42"`
}
