package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stemsi/schoolms-backend/internal/config"
	"github.com/stemsi/schoolms-backend/internal/handler"
	"github.com/stemsi/schoolms-backend/internal/middleware"
	"github.com/stemsi/schoolms-backend/internal/response"
	"github.com/stemsi/schoolms-backend/internal/service"
)

// Handlers groups the HTTP handlers wired into the router.
type Handlers struct {
	Auth      *handler.AuthHandler
	View      *handler.ViewHandler
	Dashboard *handler.DashboardHandler
	Student   *handler.StudentHandler
	Grade     *handler.GradeHandler
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(authService *service.AuthService, h Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Request-ID")
	r.Use(cors.New(corsConfig))

	r.Use(response.RequestIDMiddleware())
	r.Use(middleware.Brotli())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	loginLimiter := middleware.NewRateLimiter(30, time.Minute)

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", loginLimiter.Middleware(), h.Auth.Login)
			auth.POST("/logout", h.Auth.Logout)
			auth.GET("/session", h.Auth.GetSession)
		}

		protected := api.Group("")
		protected.Use(middleware.RequireIdentity(authService))
		{
			protected.GET("/dashboard", h.Dashboard.Get)

			protected.GET("/views/:name", h.View.Navigate)
			protected.GET("/history", h.View.History)

			students := protected.Group("/students")
			{
				students.GET("", h.Student.List)
				students.POST("", h.Student.Create)
				students.GET("/:id", h.Student.Get)
				students.PUT("/:id", h.Student.Update)
				students.DELETE("/:id", h.Student.Delete)
			}

			protected.POST("/grades", h.Grade.SaveGrade)
			protected.POST("/classes/:id/grades", h.Grade.SaveAllGrades)
		}
	}

	return r
}
