package routes

import (
	"grievance-api/controllers"
	"grievance-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Authentication
			public.POST("/login", controllers.Login)

			// Submitter-facing grievance intake and replies
			public.POST("/grievances", controllers.SubmitGrievance)
			public.POST("/grievances/:id/replies", controllers.CreateSubmitterReply)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Grievance API is running",
				})
			})
		}

		// Admin routes (require authentication)
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthMiddleware())
		{
			// Admin profile
			admin.GET("/profile", controllers.GetProfile)

			// Grievances
			grievances := admin.Group("/grievances")
			{
				grievances.GET("", controllers.GetGrievances)
				grievances.GET("/:id", controllers.GetGrievance)
				grievances.PUT("/:id/status", controllers.UpdateGrievanceStatus)

				// Reply thread
				grievances.GET("/:id/replies", controllers.GetReplies)
				grievances.POST("/:id/replies", controllers.CreateReply)
			}

			// Dashboard
			dashboard := admin.Group("/dashboard")
			{
				dashboard.GET("/stats", controllers.GetDashboardStats)
			}
		}
	}
}
