package routes

import (
	"net/http"

	"students-api/internal/api/handlers"
	"students-api/internal/api/middleware"
	"students-api/internal/config"
	"students-api/internal/logger"
	"students-api/internal/metrics"
	"students-api/internal/repository"
	"students-api/internal/service"
	"students-api/internal/validation"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. Request metrics
// and /metrics are served from collector when cfg enables them and it is not nil.
func SetupRoutes(db *gorm.DB, cfg *config.Config, collector *metrics.PrometheusCollector) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	if cfg.MetricsEnabled && collector != nil {
		router.Use(middleware.Metrics(collector))
		router.GET("/metrics", gin.WrapH(metrics.Handler(collector.Gatherer())))
	}

	validator := validation.New()

	// Initialize repositories
	groupRepo := repository.NewGroupRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	enrollmentRepo := repository.NewStudentCourseRepository(db)

	// Initialize services
	studentService := service.NewStudentService(studentRepo, enrollmentRepo, validator)
	groupService := service.NewGroupService(groupRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	studentHandler := handlers.NewStudentHandler(studentService)
	groupHandler := handlers.NewGroupHandler(groupService)

	// Health check routes
	router.GET("/health", healthHandler.Ready)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/groups_LE/:n/", groupHandler.GetGroupsWithFewerOrEqualStudents)

		students := v1.Group("/students")
		{
			students.GET("/", studentHandler.ListStudents)
			students.POST("/add/", studentHandler.AddStudent)
			students.GET("/from_course/:course_name/", studentHandler.GetStudentsFromCourse)
			students.POST("/add_course/", studentHandler.AddStudentToCourse)
			students.DELETE("/remove_course/", studentHandler.RemoveStudentFromCourse)
			students.GET("/:id/", studentHandler.GetStudent)
			students.DELETE("/:id/", studentHandler.DeleteStudent)
		}

		// Singular aliases
		student := v1.Group("/student")
		{
			student.POST("/add/", studentHandler.AddStudent)
			student.GET("/:id/", studentHandler.GetStudent)
			student.DELETE("/:id/", studentHandler.DeleteStudent)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString(logger.RequestIDKey),
		})
	})

	return router
}
