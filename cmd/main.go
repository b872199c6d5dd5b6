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
	"github.com/yacinebd/scolaris/config"
	"github.com/yacinebd/scolaris/database"
	_ "github.com/yacinebd/scolaris/docs"
	adminctrl "github.com/yacinebd/scolaris/internal/controller/admin"
	studentctrl "github.com/yacinebd/scolaris/internal/controller/student"
	"github.com/yacinebd/scolaris/internal/logger"
	"github.com/yacinebd/scolaris/internal/model"
	"github.com/yacinebd/scolaris/internal/repository"
	"github.com/yacinebd/scolaris/internal/service"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Scolaris Quiz Engine API
// @version 1.0
// @description School administration backend centered on the quiz/examination engine: modules, quizzes, attempts, answers and automatic grading.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		// Repositories
		fx.Provide(
			repository.NewModuleRepository,
			repository.NewQuizRepository,
			repository.NewQuestionRepository,
			repository.NewAttemptRepository,
			repository.NewAnswerRepository,
			repository.NewClassRepository,
			repository.NewStudentRepository,
		),

		// Services
		fx.Provide(
			service.NewModuleService,
			service.NewRosterService,
			service.NewAdminQuizService,
			service.NewStudentQuizService,
			service.NewAttemptService,
			service.NewAnswerService,
			service.NewResultService,
		),

		// Controllers
		fx.Provide(
			adminctrl.NewAdminModuleController,
			adminctrl.NewAdminQuizController,
			studentctrl.NewStudentController,
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
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages the server
// lifecycle through fx hooks.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	adminModuleCtrl *adminctrl.AdminModuleController,
	adminQuizCtrl *adminctrl.AdminQuizController,
	studentCtrl *studentctrl.StudentController,
) {
	adminAPIGroup := router.Group("/api/v1/admin")
	{
		modulesGroup := adminAPIGroup.Group("/modules")
		modulesGroup.POST("", adminModuleCtrl.CreateModule)
		modulesGroup.GET("", adminModuleCtrl.ListModules)
		modulesGroup.PUT("/:module_id/publish", adminModuleCtrl.PublishModule)
		modulesGroup.PUT("/:module_id/classes", adminModuleCtrl.SetModuleClasses)
		modulesGroup.POST("/:module_id/quizzes", adminQuizCtrl.CreateQuiz)
		modulesGroup.GET("/:module_id/quizzes", adminQuizCtrl.ListQuizzes)

		quizzesGroup := adminAPIGroup.Group("/quizzes")
		quizzesGroup.GET("/:quiz_id", adminQuizCtrl.GetQuiz)
		quizzesGroup.DELETE("/:quiz_id", adminQuizCtrl.DeleteQuiz)
		quizzesGroup.PUT("/:quiz_id/publish", adminQuizCtrl.PublishQuiz)
		quizzesGroup.POST("/:quiz_id/questions", adminQuizCtrl.AddQuestion)
		quizzesGroup.GET("/:quiz_id/attempts", adminQuizCtrl.ListAttempts)

		adminAPIGroup.DELETE("/questions/:question_id", adminQuizCtrl.DeleteQuestion)

		adminAPIGroup.POST("/classes", adminModuleCtrl.CreateClass)
		adminAPIGroup.GET("/classes", adminModuleCtrl.ListClasses)
		adminAPIGroup.GET("/classes/:class_id/students", adminModuleCtrl.ListStudents)
		adminAPIGroup.POST("/students", adminModuleCtrl.CreateStudent)
	}

	userAPIGroup := router.Group("/api/v1")
	{
		userAPIGroup.GET("/quizzes", studentCtrl.ListQuizzes)
		userAPIGroup.GET("/quizzes/:quiz_id", studentCtrl.GetQuiz)
		userAPIGroup.POST("/quizzes/:quiz_id/attempts", studentCtrl.StartAttempt)

		userAPIGroup.GET("/attempts/:attempt_id/next-question", studentCtrl.NextQuestion)
		userAPIGroup.POST("/attempts/:attempt_id/answers", studentCtrl.RecordAnswer)
		userAPIGroup.GET("/attempts/:attempt_id/result", studentCtrl.AttemptResult)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Scolaris API server starting on port %s", cfg.Server.Port)
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
		&model.Class{},
		&model.Student{},
		&model.Module{},
		&model.Quiz{},
		&model.Question{},
		&model.Choice{},
		&model.Attempt{},
		&model.Answer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
