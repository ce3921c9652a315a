package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/collegehub/internal/app/services"
	"github.com/yigit/collegehub/internal/middleware"
)

// CourseController serves course bodies
type CourseController struct {
	courseService services.ContentService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.ContentService) *CourseController {
	return &CourseController{courseService: courseService}
}

// GetCourse returns the html body of one course
// @Summary Get course content
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} models.Content
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	content, err := c.courseService.GetContent(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, content)
}

// ScholarshipController serves scholarship bodies
type ScholarshipController struct {
	scholarshipService services.ContentService
}

// NewScholarshipController creates a new ScholarshipController
func NewScholarshipController(scholarshipService services.ContentService) *ScholarshipController {
	return &ScholarshipController{scholarshipService: scholarshipService}
}

// GetScholarship returns the html body of one scholarship
// @Summary Get scholarship content
// @Tags scholarships
// @Produce json
// @Param id path string true "Scholarship ID"
// @Success 200 {object} models.Content
// @Failure 400 {object} dto.ErrorResponse "Invalid scholarship ID"
// @Failure 404 {object} dto.ErrorResponse "Scholarship not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /scholarships/{id} [get]
func (c *ScholarshipController) GetScholarship(ctx *gin.Context) {
	content, err := c.scholarshipService.GetContent(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, content)
}
