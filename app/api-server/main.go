package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/leopard-dev/portfolio-backend/config"
	"github.com/leopard-dev/portfolio-backend/internal/api/handlers"
	"github.com/leopard-dev/portfolio-backend/internal/api/routes"
	"github.com/leopard-dev/portfolio-backend/internal/cache"
	"github.com/leopard-dev/portfolio-backend/internal/db"
	"github.com/leopard-dev/portfolio-backend/internal/logger"
	pgrepo "github.com/leopard-dev/portfolio-backend/internal/repositories/postgres"
	"github.com/leopard-dev/portfolio-backend/internal/services"
	"github.com/leopard-dev/portfolio-backend/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New()

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	// PostgreSQL
	if err := config.InitPostgres(cfg.PostgresURI); err != nil {
		log.WithError(err).Fatal("PostgreSQL init error")
	}
	log.Info("PostgreSQL connected")

	if err := db.Migrate(config.PostgresDB); err != nil {
		log.WithError(err).Fatal("migration error")
	}
	if err := db.Seed(config.PostgresDB, log, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.WithError(err).Fatal("seed error")
	}

	// Redis is optional: without it the API serves every read from Postgres.
	var listCache cache.Cache
	if cfg.RedisAddr != "" {
		if err := config.InitRedis(cfg.RedisAddr); err != nil {
			log.WithError(err).Fatal("Redis init error")
		}
		listCache = cache.NewRedisCache(config.RedisClient)
		log.Info("Redis connected")
	} else {
		log.Info("REDIS_ADDR not set, caching disabled")
	}

	disk, err := storage.NewLocalDisk(cfg.UploadDir)
	if err != nil {
		log.WithError(err).Fatal("storage init error")
	}

	// Repositories
	users := pgrepo.NewUserRepo(config.PostgresDB)
	profiles := pgrepo.NewProfileRepo(config.PostgresDB)
	skills := pgrepo.NewSkillRepo(config.PostgresDB)
	projects := pgrepo.NewProjectRepo(config.PostgresDB)
	testimonials := pgrepo.NewTestimonialRepo(config.PostgresDB)
	education := pgrepo.NewEducationRepo(config.PostgresDB)
	gallery := pgrepo.NewGalleryRepo(config.PostgresDB)
	contact := pgrepo.NewContactRepo(config.PostgresDB)

	// Services
	uploads := services.NewUploadService(disk, log)
	authSvc := services.NewAuthService(users, cfg.JWTSecret)
	profileSvc := services.NewProfileService(profiles, uploads)
	skillSvc := services.NewSkillService(skills, listCache)
	projectSvc := services.NewProjectService(projects, uploads, listCache)
	testimonialSvc := services.NewTestimonialService(testimonials, uploads)
	educationSvc := services.NewEducationService(education)
	gallerySvc := services.NewGalleryService(gallery, uploads, listCache)
	contactSvc := services.NewContactService(contact)

	r := routes.NewRouter(cfg, log, routes.Deps{
		Auth:        handlers.NewAuthHandler(authSvc),
		Profile:     handlers.NewProfileHandler(profileSvc, uploads),
		Skill:       handlers.NewSkillHandler(skillSvc),
		Project:     handlers.NewProjectHandler(projectSvc, uploads),
		Testimonial: handlers.NewTestimonialHandler(testimonialSvc, uploads),
		Education:   handlers.NewEducationHandler(educationSvc),
		Gallery:     handlers.NewGalleryHandler(gallerySvc, uploads),
		Contact:     handlers.NewContactHandler(contactSvc),
		Upload:      handlers.NewUploadHandler(uploads, cfg.BaseURL, cfg.Production()),
		Health:      handlers.NewHealthHandler(),
	})

	log.WithField("port", cfg.Port).Info("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server error")
	}
}
