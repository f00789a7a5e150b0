package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lmrivero/chatsurvey/internal/app/controllers"
	"github.com/lmrivero/chatsurvey/internal/app/migrations"
	"github.com/lmrivero/chatsurvey/internal/app/repositories"
	"github.com/lmrivero/chatsurvey/internal/app/routes"
	"github.com/lmrivero/chatsurvey/internal/app/services"
	"github.com/lmrivero/chatsurvey/internal/config"
	"github.com/lmrivero/chatsurvey/internal/db"
	"github.com/lmrivero/chatsurvey/internal/middleware"
	"github.com/lmrivero/chatsurvey/internal/pkg/auth"
	"github.com/lmrivero/chatsurvey/internal/pkg/helpers"
	"github.com/lmrivero/chatsurvey/internal/pkg/logger"
	"github.com/lmrivero/chatsurvey/internal/seed"
)

// Dependencies holds the wired application components
type Dependencies struct {
	Config       *config.Config
	DB           *db.PostgresDB
	Repositories *repositories.Repositories
	JWTService   *auth.JWTService
	Router       *gin.Engine
}

// LoadConfigAndSetupLogger reads configuration and configures logging
func LoadConfigAndSetupLogger(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format != "json",
	})

	logger.Info().
		Str("port", cfg.Server.Port).
		Str("mode", cfg.Server.Mode).
		Msg("Configuration loaded")

	return cfg, nil
}

// SetupDatabase connects to PostgreSQL, runs migrations and seeds the
// default admin account.
func SetupDatabase(cfg *config.Config) (*db.PostgresDB, *repositories.Repositories, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	migrator := migrations.NewMigrator(database.Pool)
	if err := migrator.MigrateFromDirectory("migrations"); err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	repos := repositories.NewRepositories(database.Pool)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := seed.EnsureAdminUser(ctx, cfg, repos.UserRepository); err != nil {
		database.Close()
		return nil, nil, err
	}

	return database, repos, nil
}

// BuildDependencies wires services, controllers and the router
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, repos *repositories.Repositories) *Dependencies {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, 24*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	appLogger := logger.Get()

	authService := services.NewAuthService(repos.UserRepository, jwtService, appLogger)
	userService := services.NewUserService(repos.UserRepository, appLogger)
	studentSurveyService := services.NewStudentSurveyService(repos.StudentSurveyRepository, appLogger)
	teacherSurveyService := services.NewTeacherSurveyService(repos.TeacherSurveyRepository, appLogger)

	ctrls := &routes.Controllers{
		Auth:          controllers.NewAuthController(authService),
		User:          controllers.NewUserController(userService),
		StudentSurvey: controllers.NewStudentSurveyController(studentSurveyService),
		TeacherSurvey: controllers.NewTeacherSurveyController(teacherSurveyService),
		Health:        controllers.NewHealthController(database),
	}

	authMW := middleware.NewAuthMiddleware(jwtService, repos.UserRepository)

	router := setupRouter(cfg, ctrls, authMW)

	return &Dependencies{
		Config:       cfg,
		DB:           database,
		Repositories: repos,
		JWTService:   jwtService,
		Router:       router,
	}
}

// setupRouter configures gin and registers routes
func setupRouter(cfg *config.Config, ctrls *routes.Controllers, authMW *middleware.AuthMiddleware) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	routes.SetupRoutes(router, ctrls, authMW)

	return router
}
