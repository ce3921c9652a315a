package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/yigit/collegehub/internal/app/controllers"
	"github.com/yigit/collegehub/internal/app/models/dto"
	"github.com/yigit/collegehub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	collegeController *controllers.CollegeController,
	courseController *controllers.CourseController,
	scholarshipController *controllers.ScholarshipController,
	healthController *controllers.HealthController,
) {
	colleges := router.Group("/colleges")
	{
		colleges.GET("", collegeController.ListColleges)
		colleges.GET("/:id", collegeController.GetCollege)
		colleges.POST("/filters",
			middleware.ValidateRequest(func() interface{} { return &dto.CollegeFilterRequest{} }),
			collegeController.FilterColleges,
		)
	}

	router.GET("/countries/:country/colleges/count", collegeController.CountByCountry)
	router.GET("/courses/:id", courseController.GetCourse)
	router.GET("/scholarships/:id", scholarshipController.GetScholarship)

	// Operational endpoints
	router.GET("/health", healthController.Health)
	router.GET("/ping", healthController.Ping)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
