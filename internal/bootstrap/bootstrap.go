package bootstrap

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/ssgi/placementms/docs" // generated swagger docs
	appControllers "github.com/ssgi/placementms/internal/app/controllers"
	appRepos "github.com/ssgi/placementms/internal/app/repositories"
	appRoutes "github.com/ssgi/placementms/internal/app/routes"
	appServices "github.com/ssgi/placementms/internal/app/services"
	"github.com/ssgi/placementms/internal/config"
	"github.com/ssgi/placementms/internal/db"
	appMiddleware "github.com/ssgi/placementms/internal/middleware"
	pkgAuth "github.com/ssgi/placementms/internal/pkg/auth"
	"github.com/ssgi/placementms/internal/pkg/logger"
	"github.com/ssgi/placementms/internal/pkg/mediastore"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	StudentService      appServices.StudentService
	AdminService        appServices.AdminService
	CompanyService      appServices.CompanyService
	NotificationService appServices.NotificationService
	StudentController   *appControllers.StudentController
	AdminController     *appControllers.AdminController
	CompanyController   *appControllers.CompanyController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	Repos               *appRepos.Repositories
	JWTService          *pkgAuth.JWTService
	MediaStore          mediastore.Uploader
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

// SetupDatabase establishes the MongoDB connection.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.MongoDB, error) {
	lgr.Info().Str("database", cfg.Database.Name).Msg("Establishing database connection...")

	database, err := db.NewMongoDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	lgr.Info().Msg("Database connection successfully established.")
	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.MongoDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Database)

	media, err := mediastore.NewCloudinaryStore(cfg.Cloudinary.URL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize media store")
		return nil, fmt.Errorf("failed to initialize media store: %w", err)
	}
	deps.MediaStore = media

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenExpiration(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, deps.MediaStore, deps.JWTService)
	deps.AdminService = appServices.NewAdminService(deps.Repos.AdminRepository, deps.Repos.StudentRepository, deps.JWTService)
	deps.CompanyService = appServices.NewCompanyService(deps.Repos.CompanyRepository, deps.MediaStore)
	deps.NotificationService = appServices.NewNotificationService(deps.Repos.NotificationRepository, deps.Repos.StudentRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.StudentController = appControllers.NewStudentController(deps.StudentService, deps.NotificationService)
	deps.AdminController = appControllers.NewAdminController(deps.AdminService, deps.NotificationService)
	deps.CompanyController = appControllers.NewCompanyController(deps.CompanyService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()
	router.Use(appMiddleware.CORS())

	appRoutes.RegisterRoutes(router, appRoutes.Controllers{
		Student: deps.StudentController,
		Admin:   deps.AdminController,
		Company: deps.CompanyController,
	}, deps.AuthMiddleware)

	return router
}
