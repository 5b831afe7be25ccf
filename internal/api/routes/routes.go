package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/leopard-dev/portfolio-backend/config"
	"github.com/leopard-dev/portfolio-backend/internal/api/handlers"
	"github.com/leopard-dev/portfolio-backend/internal/api/middleware"
)

type Deps struct {
	Auth        *handlers.AuthHandler
	Profile     *handlers.ProfileHandler
	Skill       *handlers.SkillHandler
	Project     *handlers.ProjectHandler
	Testimonial *handlers.TestimonialHandler
	Education   *handlers.EducationHandler
	Gallery     *handlers.GalleryHandler
	Contact     *handlers.ContactHandler
	Upload      *handlers.UploadHandler
	Health      *handlers.HealthHandler
}

// NewRouter builds the gin engine with the full middleware chain and all
// entity routes mounted.
func NewRouter(cfg *config.Config, log *logrus.Logger, d Deps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.SecureHeaders())
	r.Use(middleware.RequestLogger(log))
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		body := gin.H{"success": false, "message": "Something went wrong!"}
		if !cfg.Production() {
			body["error"] = recovered
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, body)
	}))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Requested-With", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Uploaded images are served straight from disk. The public prefix
	// mirrors the storage directory, so stored paths resolve as-is.
	r.Static("/"+cfg.UploadDir, cfg.UploadDir)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "API endpoint not found",
		})
	})

	authRequired := middleware.JWTAuth(cfg.JWTSecret)
	adminOnly := middleware.RequireAdmin()

	api := r.Group("/api")
	api.Use(middleware.RateLimit(cfg.RateLimitMax))
	{
		api.GET("/health", d.Health.Check)

		auth := api.Group("/auth")
		{
			auth.POST("/login", d.Auth.Login)
			auth.GET("/me", authRequired, d.Auth.Me)
		}

		profile := api.Group("/profile")
		{
			profile.GET("", d.Profile.Get)
			profile.PUT("", authRequired, adminOnly, d.Profile.Update)
		}

		skills := api.Group("/skills")
		{
			skills.GET("", d.Skill.List)
			skills.POST("", authRequired, adminOnly, d.Skill.Create)
			skills.PUT("/:id", authRequired, adminOnly, d.Skill.Update)
			skills.DELETE("/:id", authRequired, adminOnly, d.Skill.Delete)
		}

		projects := api.Group("/projects")
		{
			projects.GET("", d.Project.List)
			projects.GET("/:id", d.Project.Get)
			projects.POST("", authRequired, adminOnly, d.Project.Create)
			projects.PUT("/:id", authRequired, adminOnly, d.Project.Update)
			projects.DELETE("/:id", authRequired, adminOnly, d.Project.Delete)
		}

		testimonials := api.Group("/testimonials")
		{
			testimonials.GET("", d.Testimonial.List)
			testimonials.POST("", authRequired, adminOnly, d.Testimonial.Create)
			testimonials.PUT("/:id", authRequired, adminOnly, d.Testimonial.Update)
			testimonials.DELETE("/:id", authRequired, adminOnly, d.Testimonial.Delete)
		}

		education := api.Group("/education")
		{
			education.GET("", d.Education.List)
			education.GET("/:id", d.Education.Get)
			education.POST("", authRequired, adminOnly, d.Education.Create)
			education.PUT("/:id", authRequired, adminOnly, d.Education.Update)
			education.DELETE("/:id", authRequired, adminOnly, d.Education.Delete)
		}

		gallery := api.Group("/gallery")
		{
			gallery.GET("", d.Gallery.List)
			gallery.GET("/categories", d.Gallery.Categories)
			gallery.GET("/:id", d.Gallery.Get)
			gallery.POST("", authRequired, adminOnly, d.Gallery.Create)
			gallery.PUT("/:id", authRequired, adminOnly, d.Gallery.Update)
			gallery.DELETE("/:id", authRequired, adminOnly, d.Gallery.Delete)
		}

		contact := api.Group("/contact")
		{
			contact.POST("", d.Contact.Submit)
			contact.GET("/messages", authRequired, adminOnly, d.Contact.List)
			contact.PUT("/messages/:id/status", authRequired, adminOnly, d.Contact.UpdateStatus)
			contact.DELETE("/messages/:id", authRequired, adminOnly, d.Contact.Delete)
			contact.GET("/stats", authRequired, adminOnly, d.Contact.Stats)
		}

		upload := api.Group("/upload")
		{
			upload.POST("/single", authRequired, d.Upload.Single)
		}
	}

	return r
}
