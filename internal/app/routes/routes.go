package routes

import (
	"net/http"

	"github.com/edupoint/schooladmin/internal/app/controllers"
	"github.com/edupoint/schooladmin/internal/app/models"
	"github.com/edupoint/schooladmin/internal/middleware"
	"github.com/edupoint/schooladmin/internal/pkg/auth"
	"github.com/gin-gonic/gin"
)

// SetupRoutes wires the HTTP surface. All administrative record routes
// require an authenticated admin or teacher.
func SetupRoutes(router *gin.Engine, ctrls *controllers.Controllers, jwtService *auth.JWTService) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	v1.Use(middleware.JWTAuthMiddleware(jwtService))
	v1.Use(middleware.RoleRequiredMiddleware(models.RoleAdmin, models.RoleTeacher))

	students := v1.Group("/students")
	{
		students.GET("", ctrls.StudentController.GetAllStudents)
		students.POST("", ctrls.StudentController.AddNewStudent)
		students.GET("/:id", ctrls.StudentController.GetStudentDetail)
		students.PUT("/:id", ctrls.StudentController.UpdateStudent)
		students.POST("/:id/status", ctrls.StudentController.SetStudentStatus)
		students.DELETE("/:id", ctrls.StudentController.RemoveStudent)
	}

	classes := v1.Group("/classes")
	{
		classes.GET("", ctrls.ClassController.GetAllClasses)
		classes.POST("", ctrls.ClassController.AddNewClass)
		classes.GET("/:id", ctrls.ClassController.GetClassDetail)
		classes.PUT("/:id", ctrls.ClassController.UpdateClass)
		classes.DELETE("/:id", ctrls.ClassController.RemoveClass)
	}
}
