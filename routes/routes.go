package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/bkiskm0705-stack/nutrition-app/controllers"
	"github.com/bkiskm0705-stack/nutrition-app/middlewares"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/login", controllers.Login)
		auth.POST("/admin", controllers.AdminLogin)
	}

	// Participant routes
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/profile", controllers.GetProfile)
		api.POST("/profile", controllers.RegisterProfile)
		api.POST("/records", controllers.SubmitRecords)
		api.GET("/summary", controllers.GetSummary)
		api.POST("/upload", controllers.UploadImage)
	}

	// Admin dashboard routes
	admin := r.Group("/admin")
	admin.Use(middlewares.AdminMiddleware())
	{
		admin.GET("/athletes", controllers.ListAthletes)
		admin.GET("/athletes/:name", controllers.GetAthlete)
		admin.GET("/athletes/:name/summary", controllers.GetDeletionSummary)
		admin.DELETE("/athletes/:name", controllers.DeleteAthlete)
		admin.GET("/daily", controllers.GetDailyRollup)
	}

	return r
}
