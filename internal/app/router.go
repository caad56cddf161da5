package app

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"malama_health_backend/internal/config"
	"malama_health_backend/internal/middleware"
	"malama_health_backend/pkg/monitoring"
)

func (a *App) registerRoutes(router *gin.Engine, ctrls *controllers, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Token validation on reads is advisory: claims are attached when a
	// valid token is present so handlers can personalize responses, but
	// requests without one are still served.
	api := router.Group("/api", middleware.TryAuthMiddleware(cfg))

	api.GET("/health", ctrls.health.HealthCheck)

	users := api.Group("/users")
	{
		users.GET("", ctrls.user.GetUsers)
		users.GET("/:id", ctrls.user.GetUser)
		users.POST("/register", ctrls.user.Register)
		users.POST("/login", ctrls.user.Login)

		authed := users.Group("", middleware.AuthMiddleware(cfg))
		{
			authed.PUT("/:id", ctrls.user.UpdateUser)
			authed.PUT("/:id/preferences", ctrls.user.UpdatePreferences)
			authed.DELETE("/:id", ctrls.user.DeleteUser)
		}
	}

	forum := api.Group("/forum")
	{
		forum.GET("", ctrls.forum.GetPosts)
		forum.GET("/:id", ctrls.forum.GetPost)
		forum.GET("/category/:category", ctrls.forum.GetPostsByCategory)
		forum.POST("", ctrls.forum.CreatePost)
		forum.PUT("/:id", ctrls.forum.UpdatePost)
		forum.DELETE("/:id", ctrls.forum.DeletePost)
		forum.POST("/:id/comments", ctrls.forum.AddComment)
		forum.POST("/:id/like", ctrls.forum.LikePost)
	}

	resources := api.Group("/resources")
	{
		resources.GET("", ctrls.resource.GetResources)
		resources.GET("/:id", ctrls.resource.GetResource)
		resources.GET("/category/:category", ctrls.resource.GetResourcesByCategory)
		resources.POST("", ctrls.resource.CreateResource)
		resources.PUT("/:id", ctrls.resource.UpdateResource)
		resources.DELETE("/:id", ctrls.resource.DeleteResource)
	}

	learning := api.Group("/learning")
	{
		modules := learning.Group("/modules")
		{
			modules.GET("", ctrls.learning.GetModules)
			modules.GET("/:id", ctrls.learning.GetModule)
			modules.GET("/category/:category", ctrls.learning.GetModulesByCategory)
			modules.POST("", ctrls.learning.CreateModule)
			modules.PUT("/:id", ctrls.learning.UpdateModule)
			modules.DELETE("/:id", ctrls.learning.DeleteModule)
			modules.POST("/:id/lessons", ctrls.learning.AddLesson)
			modules.POST("/:id/quizzes", ctrls.learning.AddQuiz)
			modules.POST("/:id/complete", ctrls.learning.CompleteModule)
		}

		results := learning.Group("/quiz-results")
		{
			results.POST("", ctrls.learning.SubmitQuizResult)
			results.GET("/user/:userId", ctrls.learning.GetQuizResultsByUser)
			results.GET("/module/:moduleId", ctrls.learning.GetQuizResultsByModule)
		}
	}
}
