package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/config"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/database"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/auth"
	adminctrl "github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/controller/admin"
	userctrl "github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/controller/user"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/logger"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/middleware"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/model"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/repository"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/service"
	"github.com/vivekrajtheetla-ship-it/PlacePrePortal--Isaii/internal/storage"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Placement Preparation API
// @version 1.0
// @description API for placement preparation: quizzes with scoring and progress tracking, interview logging, resume management and reports.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:5000
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
			func(cfg *config.Config) *auth.TokenService {
				return auth.NewTokenService(cfg.JWT.Secret, cfg.JWT.ExpireHours)
			},
			func(cfg *config.Config) (*storage.S3, error) {
				return storage.NewS3(context.Background(), cfg.S3)
			},
		),

		// Repositories Layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewQuizRepository,
			repository.NewQuizResultRepository,
			repository.NewInterviewRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewAuthService,
			service.NewQuizCatalogService,
			service.NewAdminQuizService,
			service.NewScoringService,
			func(
				quizRepo repository.QuizRepository,
				resultRepo repository.QuizResultRepository,
				userRepo repository.UserRepository,
				scoring service.ScoringService,
				db *gorm.DB,
			) service.QuizSubmissionService {
				return service.NewQuizSubmissionService(quizRepo, resultRepo, userRepo, scoring, db)
			},
			func(interviewRepo repository.InterviewRepository, userRepo repository.UserRepository, db *gorm.DB) service.InterviewService {
				return service.NewInterviewService(interviewRepo, userRepo, db)
			},
			service.NewReportService,
		),

		// API Controllers Layer
		fx.Provide(
			adminctrl.NewAdminQuizController,
			userctrl.NewAuthController,
			userctrl.NewQuizController,
			userctrl.NewInterviewController,
			userctrl.NewUploadController,
			userctrl.NewReportController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.DebugMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	tokens *auth.TokenService,
	db *gorm.DB,
	adminQuizCtrl *adminctrl.AdminQuizController,
	authCtrl *userctrl.AuthController,
	quizCtrl *userctrl.QuizController,
	interviewCtrl *userctrl.InterviewController,
	uploadCtrl *userctrl.UploadController,
	reportCtrl *userctrl.ReportController,
) {
	api := router.Group("/api/v1")

	api.GET("/health", func(ctx *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx.Request.Context())
		}
		if err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "down"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"status": "ok", "database": "up"})
	})

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", authCtrl.Register)
		authGroup.POST("/login", authCtrl.Login)
		authGroup.GET("/me", middleware.Auth(tokens), authCtrl.Me)
		authGroup.PUT("/profile", middleware.Auth(tokens), authCtrl.UpdateProfile)
	}

	quizGroup := api.Group("/quizzes", middleware.Auth(tokens))
	{
		quizGroup.GET("", quizCtrl.GetAllQuizzes)
		quizGroup.GET("/results/me", quizCtrl.GetMyResults)
		quizGroup.GET("/:quiz_id", quizCtrl.GetQuizDetails)
		quizGroup.POST("/:quiz_id/submit", quizCtrl.SubmitQuiz)
	}

	interviewGroup := api.Group("/interviews", middleware.Auth(tokens))
	{
		interviewGroup.GET("", interviewCtrl.ListMine)
		interviewGroup.POST("", interviewCtrl.Create)
		interviewGroup.GET("/public/experiences", interviewCtrl.PublicExperiences)
		interviewGroup.GET("/:id", interviewCtrl.GetByID)
		interviewGroup.PUT("/:id", interviewCtrl.Update)
		interviewGroup.DELETE("/:id", interviewCtrl.Delete)
	}

	uploadGroup := api.Group("/upload", middleware.Auth(tokens))
	{
		uploadGroup.POST("/resume", uploadCtrl.UploadResume)
		uploadGroup.GET("/resume", uploadCtrl.DownloadResume)
		uploadGroup.DELETE("/resume", uploadCtrl.DeleteResume)
	}

	api.GET("/reports/me", middleware.Auth(tokens), reportCtrl.GetMyReport)

	// Admin routes. Quiz creation is the content seeding path.
	adminGroup := router.Group("/api/v1/admin")
	{
		adminGroup.POST("/quizzes", adminQuizCtrl.CreateQuiz)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Placement preparation API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Quiz{},
		&model.Question{},
		&model.QuizResult{},
		&model.ScoredAnswer{},
		&model.Interview{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
