package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/lmrivero/chatsurvey/internal/app/controllers"
	"github.com/lmrivero/chatsurvey/internal/app/models"
	"github.com/lmrivero/chatsurvey/internal/middleware"
)

// Controllers aggregates the controllers wired into the router
type Controllers struct {
	Auth          *controllers.AuthController
	User          *controllers.UserController
	StudentSurvey *controllers.StudentSurveyController
	TeacherSurvey *controllers.TeacherSurveyController
	Health        *controllers.HealthController
}

// SetupRoutes registers all API routes on the router
func SetupRoutes(router *gin.Engine, c *Controllers, authMW *middleware.AuthMiddleware) {
	api := router.Group("/api")

	api.GET("/health", c.Health.Check)

	auth := api.Group("/auth")
	{
		auth.POST("/register", c.Auth.Register)
		auth.POST("/login", c.Auth.Login)
		auth.GET("/profile", authMW.Authenticate(), c.Auth.Profile)
	}

	users := api.Group("/users")
	users.Use(authMW.Authenticate())
	{
		users.GET("", authMW.RequireRoles(models.RoleAdmin), c.User.List)
		users.POST("", authMW.RequireRoles(models.RoleAdmin), c.User.Create)
		// Get and Update enforce self-or-admin ownership in the service
		users.GET("/:id", c.User.Get)
		users.PUT("/:id", c.User.Update)
		users.DELETE("/:id", authMW.RequireRoles(models.RoleAdmin), c.User.Delete)
	}

	studentSurveys := api.Group("/student-surveys")
	studentSurveys.Use(authMW.Authenticate())
	{
		studentSurveys.POST("", c.StudentSurvey.Create)
		studentSurveys.GET("", authMW.RequireRoles(models.RoleAdmin), c.StudentSurvey.List)
		studentSurveys.GET("/my-surveys", c.StudentSurvey.ListMine)
		studentSurveys.GET("/statistics", c.StudentSurvey.Statistics)
		studentSurveys.GET("/:id", c.StudentSurvey.Get)
		studentSurveys.PUT("/:id", c.StudentSurvey.Update)
		studentSurveys.DELETE("/:id", c.StudentSurvey.Delete)
	}

	teacherSurveys := api.Group("/teacher-surveys")
	teacherSurveys.Use(authMW.Authenticate())
	{
		teacherSurveys.POST("", authMW.RequireRoles(models.RoleTeacher, models.RoleAdmin), c.TeacherSurvey.Create)
		teacherSurveys.GET("", authMW.RequireRoles(models.RoleAdmin), c.TeacherSurvey.List)
		teacherSurveys.GET("/my-surveys", authMW.RequireRoles(models.RoleTeacher, models.RoleAdmin), c.TeacherSurvey.ListMine)
		teacherSurveys.GET("/statistics", c.TeacherSurvey.Statistics)
		teacherSurveys.GET("/:id", c.TeacherSurvey.Get)
		teacherSurveys.PUT("/:id", c.TeacherSurvey.Update)
		teacherSurveys.DELETE("/:id", c.TeacherSurvey.Delete)
	}
}
