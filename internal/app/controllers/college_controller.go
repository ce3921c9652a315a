package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/collegehub/internal/app/models/dto"
	"github.com/yigit/collegehub/internal/app/services"
	"github.com/yigit/collegehub/internal/middleware"
	"github.com/yigit/collegehub/internal/pkg/apperrors"
	"github.com/yigit/collegehub/internal/pkg/helpers"
)

// CollegeController handles college-related operations
type CollegeController struct {
	collegeService services.CollegeService
}

// NewCollegeController creates a new CollegeController
func NewCollegeController(collegeService services.CollegeService) *CollegeController {
	return &CollegeController{
		collegeService: collegeService,
	}
}

// ListColleges returns the filter options used to build the search UI
// @Summary List filter options
// @Description Returns the precomputed countries, programs and course types. With withColleges=true the bare college list is included.
// @Tags colleges
// @Produce json
// @Param withColleges query bool false "Include the list of colleges"
// @Success 200 {object} dto.CollegeListResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameter"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /colleges [get]
func (c *CollegeController) ListColleges(ctx *gin.Context) {
	withColleges := false
	if raw := ctx.Query("withColleges"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("withColleges must be a boolean"))
			return
		}
		withColleges = v
	}

	options, err := c.collegeService.ListFilterOptions(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.CollegeListResponse{UniqueFilterOptions: options}
	if withColleges {
		colleges, err := c.collegeService.ListColleges(ctx.Request.Context())
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		resp.Colleges = colleges
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetCollege returns one college with its courses, scholarships and currency rates
// @Summary Get college details
// @Description Returns the college, its courses and scholarships without html bodies, and conversion rates from the base currency. currencyConversion is null when rates are unavailable.
// @Tags colleges
// @Produce json
// @Param id path string true "College ID"
// @Success 200 {object} dto.CollegeDetailResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid college ID"
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /colleges/{id} [get]
func (c *CollegeController) GetCollege(ctx *gin.Context) {
	resp, err := c.collegeService.GetCollegeDetail(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// FilterColleges searches colleges by country, name and course attributes
// @Summary Filter colleges
// @Description Returns one row per matching college course, ordered by the college's total course count. Pages hold 20 rows without filters and 50 rows when any filter is set.
// @Tags colleges
// @Accept json
// @Produce json
// @Param page query int false "Page number (1-based)" minimum(1)
// @Param request body dto.CollegeFilterRequest false "Filters; empty values are ignored"
// @Success 200 {object} dto.CollegeFilterResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /colleges/filters [post]
func (c *CollegeController) FilterColleges(ctx *gin.Context) {
	page, err := helpers.ParsePageParam(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	req, ok := middleware.ValidatedBody[dto.CollegeFilterRequest](ctx)
	if !ok {
		req = &dto.CollegeFilterRequest{}
	}

	result, err := c.collegeService.FilterColleges(ctx.Request.Context(), req.ToFilter(page))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CollegeFilterResponse{
		Data:       result.Rows,
		TotalCount: result.TotalCount,
		Pagination: helpers.NewPaginationInfo(result.TotalCount, result.Page, result.PageSize),
	})
}

// CountByCountry returns the number of colleges in a country
// @Summary Count colleges in a country
// @Tags colleges
// @Produce json
// @Param country path string true "Country name"
// @Success 200 {object} dto.CollegeCountResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid country"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /countries/{country}/colleges/count [get]
func (c *CollegeController) CountByCountry(ctx *gin.Context) {
	country := ctx.Param("country")
	count, err := c.collegeService.CountByCountry(ctx.Request.Context(), country)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.CollegeCountResponse{Country: country, Count: count})
}
