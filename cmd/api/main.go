package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/pretheevi/skillswapserver/internal/config"
	"github.com/pretheevi/skillswapserver/internal/database"
	"github.com/pretheevi/skillswapserver/internal/middleware"
	"github.com/pretheevi/skillswapserver/internal/modules/auth"
	"github.com/pretheevi/skillswapserver/internal/modules/chat"
	"github.com/pretheevi/skillswapserver/internal/modules/comment"
	"github.com/pretheevi/skillswapserver/internal/modules/follow"
	"github.com/pretheevi/skillswapserver/internal/modules/profile"
	"github.com/pretheevi/skillswapserver/internal/modules/skill"
	jwtsvc "github.com/pretheevi/skillswapserver/internal/pkg/jwt"
	"github.com/pretheevi/skillswapserver/internal/repository"
	"github.com/pretheevi/skillswapserver/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	// No partial-schema mode: a failed initialization aborts startup.
	if err := database.Initialize(db); err != nil {
		log.Fatal(err)
	}

	var store storage.Store
	switch cfg.StorageBackend {
	case "s3":
		store, err = storage.NewS3Store(context.Background(), storage.S3Config{
			Endpoint:  cfg.S3Endpoint,
			Region:    cfg.S3Region,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Bucket:    cfg.S3Bucket,
			PublicURL: cfg.S3PublicURL,
			KeyPrefix: cfg.S3KeyPrefix,
		})
		if err != nil {
			log.Fatal(err)
		}
	default:
		store = storage.NewLocalStore(cfg.UploadsDir, cfg.StaticBase)
	}

	userRepo := repository.NewUserRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	mediaRepo := repository.NewSkillMediaRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	followRepo := repository.NewFollowRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	followService := follow.NewService(followRepo, userRepo)
	followHandler := follow.NewHandler(followService)

	profileService := profile.NewService(userRepo, followService, store)
	profileHandler := profile.NewHandler(profileService)

	skillService := skill.NewService(skillRepo, mediaRepo, commentRepo, store)
	skillHandler := skill.NewHandler(skillService)

	commentService := comment.NewService(commentRepo, skillRepo)
	commentHandler := comment.NewHandler(commentService)

	hub := chat.NewHub()
	chatHandler := chat.NewHandler(hub, j)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.RequestLogger())

	if cfg.StorageBackend == "local" {
		r.Static(cfg.StaticBase, cfg.UploadsDir)
	}

	chatHandler.RegisterRoutes(r)

	api := r.Group("/api")
	{
		// public
		authHandler.RegisterRoutes(api)

		// protected
		protected := api.Group("/")
		protected.Use(middleware.Auth(j))
		{
			profileHandler.RegisterRoutes(protected)
			skillHandler.RegisterRoutes(protected)
			commentHandler.RegisterRoutes(protected)
			followHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
