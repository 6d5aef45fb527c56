package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portfolioBackend/internal/config"
	"portfolioBackend/internal/domain"
	"portfolioBackend/internal/handler"
	"portfolioBackend/internal/middleware"
	"portfolioBackend/internal/security"
	"portfolioBackend/internal/service"
)

func setupRouter(
	cfg *config.Config,
	authService service.AuthService,
	accountRepo domain.AccountRepository,
	rateLimiter *security.RateLimiter,
	userHandler *handler.UserHandler,
	skillHandler *handler.SkillHandler,
	projectHandler *handler.ProjectHandler,
	contactHandler *handler.ContactHandler,
) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(cfg.FrontendURL))

	authenticated := middleware.Authenticate(authService, accountRepo)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Portfolio Backend Server is Running",
			"version": "1.0.0",
			"endpoints": gin.H{
				"user":     "/api/v1/user",
				"skills":   "/api/v1/skill",
				"projects": "/api/v1/project",
				"contact":  "/api/v1/contact",
			},
		})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   "Server is healthy",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	api := router.Group("/api/v1")
	api.Use(rateLimiter.GinMiddleware())
	{
		user := api.Group("/user")
		{
			user.POST("/login", userHandler.Login)
			user.GET("/logout", userHandler.Logout)
			user.GET("/me", userHandler.GetMe)
			user.GET("/resume/download", userHandler.DownloadResume)

			user.GET("/admin/check", authenticated, userHandler.AdminCheck)
			user.PUT("/update/profile", authenticated, userHandler.UpdateProfile)
			user.PUT("/resume/update", authenticated, userHandler.UpdateResume)
		}

		skill := api.Group("/skill")
		{
			skill.GET("/all", skillHandler.GetSkills)

			skill.POST("/add", authenticated, skillHandler.AddSkill)
			skill.PUT("/:id", authenticated, skillHandler.UpdateSkill)
			skill.DELETE("/:id", authenticated, skillHandler.DeleteSkill)
		}

		project := api.Group("/project")
		{
			project.GET("/all", projectHandler.GetProjects)

			project.POST("/add", authenticated, projectHandler.AddProject)
			project.PUT("/:id", authenticated, projectHandler.UpdateProject)
			project.DELETE("/:id", authenticated, projectHandler.DeleteProject)
		}

		contact := api.Group("/contact")
		{
			contact.POST("/send", contactHandler.Send)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": fmt.Sprintf("Route %s not found", c.Request.URL.Path),
		})
	})

	return router
}
