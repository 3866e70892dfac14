package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/quangdng/talentgate/config"
	"github.com/quangdng/talentgate/database"
	_ "github.com/quangdng/talentgate/docs" // Swagger docs - auto-generated
	publicctrl "github.com/quangdng/talentgate/internal/controller/public"
	staffctrl "github.com/quangdng/talentgate/internal/controller/staff"
	"github.com/quangdng/talentgate/internal/logger"
	"github.com/quangdng/talentgate/internal/model"
	"github.com/quangdng/talentgate/internal/repository"
	"github.com/quangdng/talentgate/internal/service"
)

// @title TalentGate Recruitment API
// @version 1.0
// @description Recruitment-management backend: public application intake, form/question authoring, and the staff review surface.
// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewApplicationRepository,
			repository.NewApplicantRepository,
			repository.NewFormRepository,
			repository.NewQuestionRepository,
			repository.NewAnswerRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewApplicationService,
			service.NewApplicantService,
			service.NewFormService,
			service.NewReviewService,
			service.NewEntryService,
		),

		// API Controllers Layer
		fx.Provide(
			publicctrl.NewApplicationController,
			publicctrl.NewApplicantController,
			publicctrl.NewEntryController,
			staffctrl.NewFormController,
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

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// Attach a request ID before anything logs.
	r.Use(func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	})

	// Route gin's request log through zerolog.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("http_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
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
	db *gorm.DB,
	applicationCtrl *publicctrl.ApplicationController,
	applicantCtrl *publicctrl.ApplicantController,
	entryCtrl *publicctrl.EntryController,
	formCtrl *staffctrl.FormController,
) {
	// Public intake
	router.POST("/applications", applicationCtrl.SubmitApplication)

	api := router.Group("/api")
	{
		api.POST("/applicants", applicantCtrl.CreateApplicant)

		forms := api.Group("/forms")
		forms.GET("/feed", formCtrl.GetFormFeed)
		forms.GET("/:id", formCtrl.GetForm)
		forms.DELETE("/:id", formCtrl.DeleteForm)
		forms.GET("/:id/entries", formCtrl.ListEntries)
		forms.GET("/:id/entries/:entryId", formCtrl.GetEntry)
		forms.POST("/:id/entries", entryCtrl.SubmitEntry)

		// Authoring, consumed by the create-application-form client
		forms.POST("/application", formCtrl.CreateForm)
		forms.POST("/entry/question", formCtrl.AddQuestion)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("TalentGate API server starting on port %s", cfg.Server.Port)
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
			if err := server.Shutdown(shutdownCtx); err != nil {
				return err
			}
			return database.Close(db)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Applicant{},
		&model.Application{},
		&model.Form{},
		&model.Question{},
		&model.Answer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
