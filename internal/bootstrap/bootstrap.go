package bootstrap

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/examtable/internal/app/controllers"
	appRepos "github.com/yigit/examtable/internal/app/repositories"
	appRoutes "github.com/yigit/examtable/internal/app/routes"
	appServices "github.com/yigit/examtable/internal/app/services"
	"github.com/yigit/examtable/internal/config"
	"github.com/yigit/examtable/internal/db"
	appMiddleware "github.com/yigit/examtable/internal/middleware"
	"github.com/yigit/examtable/internal/pkg/logger"
	"github.com/yigit/examtable/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CatalogService      appServices.CatalogService
	SchedulingService   appServices.SchedulingService
	InvigilatorService  appServices.InvigilatorService
	FacultyController   *appControllers.FacultyController
	ExamController      *appControllers.ExamController
	TimetableController *appControllers.TimetableController
	AccessMiddleware    *appMiddleware.AccessMiddleware
	Repos               *appRepos.Repositories
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, applies migrations and
// seeds the initial faculty role on an empty access store.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.Migrate(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to apply migrations")
		database.Close()
		return nil, err
	}

	if err := seed.EnsureFacultyRole(ctx, database.Pool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed initial faculty role")
		database.Close()
		return nil, err
	}

	return database, nil
}

// BuildDependencies wires repositories, services, controllers and middleware
func BuildDependencies(database *db.PostgresDB, lgr zerolog.Logger) *Dependencies {
	repos := appRepos.NewRepositories(database.Pool)

	catalogService := appServices.NewCatalogService(
		repos.VenueRepository,
		repos.SessionRepository,
		repos.InvigilatorRepository,
		repos.RoleRepository,
	)
	schedulingService := appServices.NewSchedulingService(
		database,
		repos.ExamRepository,
		repos.VenueRepository,
		repos.SessionRepository,
	)
	invigilatorService := appServices.NewInvigilatorService(
		database,
		repos.InvigilatorRepository,
		repos.ExamRepository,
	)

	return &Dependencies{
		CatalogService:      catalogService,
		SchedulingService:   schedulingService,
		InvigilatorService:  invigilatorService,
		FacultyController:   appControllers.NewFacultyController(catalogService),
		ExamController:      appControllers.NewExamController(schedulingService, invigilatorService),
		TimetableController: appControllers.NewTimetableController(schedulingService),
		AccessMiddleware:    appMiddleware.NewAccessMiddleware(repos.RoleRepository),
		Repos:               repos,
		Logger:              lgr,
	}
}

// SetupRouter builds the gin engine and registers all routes
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(
		router,
		deps.FacultyController,
		deps.ExamController,
		deps.TimetableController,
		deps.AccessMiddleware,
	)

	lgr.Info().Msg("Router configured")
	return router
}
