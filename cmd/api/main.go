package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"apiaryadmin/internal/config"
	"apiaryadmin/internal/database"
	"apiaryadmin/internal/middleware"
	"apiaryadmin/internal/modules/apiary"
	"apiaryadmin/internal/modules/auth"
	"apiaryadmin/internal/modules/hive"
	"apiaryadmin/internal/modules/inspection"
	"apiaryadmin/internal/pkg/token"
	"apiaryadmin/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is empty")
	}

	cfg, err := config.LoadAuthRuntimeConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	apiaryRepo := repository.NewApiaryRepository(db)
	hiveRepo := repository.NewHiveRepository(db)
	inspectionRepo := repository.NewInspectionRepository(db)

	codec := token.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	sessionService := auth.NewSessionService(sessionRepo)
	authService := auth.NewService(userRepo, sessionService, codec, cfg.SessionTTL)
	authHandler := auth.NewHandler(authService, auth.CookieConfig{
		Secure:   cfg.CookieSecure,
		SameSite: cfg.CookieSameSite,
		Path:     cfg.CookiePath,
	})

	apiaryService := apiary.NewService(apiaryRepo)
	apiaryHandler := apiary.NewHandler(apiaryService)

	hiveService := hive.NewService(hiveRepo, apiaryRepo)
	hiveHandler := hive.NewHandler(hiveService)

	inspectionService := inspection.NewService(inspectionRepo, hiveRepo)
	inspectionHandler := inspection.NewHandler(inspectionService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(codec))
		{
			authHandler.RegisterProtectedRoutes(protected)
			apiaryHandler.RegisterRoutes(protected)
			hiveHandler.RegisterRoutes(protected)
			inspectionHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
