package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"scraply/internal/cache"
	"scraply/internal/config"
	"scraply/internal/database"
	"scraply/internal/middleware"
	"scraply/internal/modules/assistant"
	"scraply/internal/modules/auth"
	"scraply/internal/modules/blog"
	"scraply/internal/modules/booking"
	"scraply/internal/modules/facility"
	"scraply/internal/modules/pledge"
	"scraply/internal/modules/popup"
	"scraply/internal/modules/predict"
	"scraply/internal/modules/user"
	jwtsvc "scraply/internal/pkg/jwt"
	"scraply/internal/pkg/response"
	"scraply/internal/repository"
)

func main() {
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	db, err := database.Connect(cfg.DatabaseURL, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("database connection failed")
	}
	if err := repository.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("migration failed")
	}

	redisCache := cache.New(cfg.RedisAddr, cfg.RedisPassword)
	if redisCache == nil {
		logger.Info().Msg("redis not configured, popup cache disabled")
	}

	userRepo := repository.NewUserRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	facilityRepo := repository.NewFacilityRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	popupRepo := repository.NewPopupRepository(db)
	pledgeRepo := repository.NewPledgeRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	userHandler := user.NewHandler(user.NewService(userRepo))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo))
	facilityHandler := facility.NewHandler(facility.NewService(facilityRepo))
	blogHandler := blog.NewHandler(blog.NewService(blogRepo))
	popupHandler := popup.NewHandler(popup.NewService(popupRepo, redisCache, cfg.PopupCacheTTL))
	pledgeHandler := pledge.NewHandler(pledge.NewService(pledgeRepo))
	predictHandler := predict.NewHandler(predict.NewClient(cfg.PredictURL))

	chatHub := assistant.NewHub()
	defer chatHub.Close()
	chatService := assistant.NewService(
		assistant.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.ChatModel),
		logger,
	)
	chatHandler := assistant.NewHandler(chatService, chatHub, j, logger)

	if config.IsProdLike(cfg.AppEnv) {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.CORSOrigins))

	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			response.Success(c, http.StatusOK, gin.H{"status": "ok"})
		})

		// public
		authHandler.RegisterRoutes(v1)
		facilityHandler.RegisterRoutes(v1)
		blogHandler.RegisterRoutes(v1)
		popupHandler.RegisterPublicRoutes(v1)
		predictHandler.RegisterRoutes(v1)

		chatGroup := v1.Group("/")
		chatGroup.Use(middleware.RateLimit(cfg.ChatRPS, cfg.ChatBurst))
		{
			chatHandler.RegisterRoutes(chatGroup)
		}

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j, userRepo))
		{
			userHandler.RegisterRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			pledgeHandler.RegisterRoutes(protected)

			admin := protected.Group("/")
			admin.Use(middleware.AdminOnly())
			{
				popupHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info().Str("addr", cfg.ListenAddr).Msg("starting server")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
