package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/ssgi/placementms/internal/app/controllers"
	"github.com/ssgi/placementms/internal/middleware"
	"github.com/ssgi/placementms/internal/pkg/auth"
)

// Controllers groups all HTTP controllers used by the router.
type Controllers struct {
	Student *controllers.StudentController
	Admin   *controllers.AdminController
	Company *controllers.CompanyController
}

// RegisterRoutes sets up all API routes on the given engine.
func RegisterRoutes(router *gin.Engine, ctrl Controllers, authMiddleware *middleware.AuthMiddleware) {
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")

	students := v1.Group("/students")
	{
		students.POST("/register", ctrl.Student.Register)
		students.POST("/login", ctrl.Student.Login)
		students.GET("/verify-token/:token", ctrl.Student.VerifyToken)
		students.GET("/:studentId/profile", ctrl.Student.GetProfile)
		students.POST("/:studentId/details", ctrl.Student.CreateProfile)
		students.PUT("/:studentId/profile", ctrl.Student.UpdateProfile)
		students.PUT("/:studentId/marksheets", ctrl.Student.UploadMarksheets)
		students.GET("/:studentId/notifications", ctrl.Student.GetNotifications)
	}

	admins := v1.Group("/admin")
	{
		admins.POST("/register", ctrl.Admin.Register)
		admins.POST("/login", ctrl.Admin.Login)

		protected := admins.Group("")
		protected.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(auth.RoleAdmin))
		{
			protected.GET("/students", ctrl.Admin.ListStudents)
			protected.GET("/students/:studentId", ctrl.Admin.GetStudent)
			protected.PUT("/students/:studentId/verify", ctrl.Admin.VerifyStudent)
			protected.POST("/notifications", ctrl.Admin.SendNotification)
		}
	}

	companies := v1.Group("/companies")
	{
		companies.GET("", ctrl.Company.List)

		mutating := companies.Group("")
		mutating.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(auth.RoleAdmin))
		{
			mutating.POST("", ctrl.Company.Create)
			mutating.PUT("/:id", ctrl.Company.Update)
			mutating.DELETE("/:id", ctrl.Company.Delete)
			mutating.PUT("/:id/logo", ctrl.Company.UploadLogo)
		}
	}
}
