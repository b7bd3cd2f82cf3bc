package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/memberhub/internal/app/controllers"
	appMigrations "github.com/yigit/memberhub/internal/app/migrations"
	appRepos "github.com/yigit/memberhub/internal/app/repositories"
	appRoutes "github.com/yigit/memberhub/internal/app/routes"
	appServices "github.com/yigit/memberhub/internal/app/services"
	"github.com/yigit/memberhub/internal/config"
	"github.com/yigit/memberhub/internal/db"
	appMiddleware "github.com/yigit/memberhub/internal/middleware"
	pkgAuth "github.com/yigit/memberhub/internal/pkg/auth"
	"github.com/yigit/memberhub/internal/pkg/email"
	"github.com/yigit/memberhub/internal/pkg/filestorage"
	"github.com/yigit/memberhub/internal/pkg/helpers"
	"github.com/yigit/memberhub/internal/pkg/logger"
	"github.com/yigit/memberhub/internal/pkg/websocket"
	"github.com/yigit/memberhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	MemberService     appServices.MemberService
	EventService      appServices.EventService
	PostService       appServices.PostService
	ProjectService    appServices.ProjectService
	TechnologyService appServices.TechnologyService
	FileService       appServices.FileService
	UploadService     appServices.FileUploadService

	MemberController     *appControllers.MemberController
	EventController      *appControllers.EventController
	PostController       *appControllers.PostController
	ProjectController    *appControllers.ProjectController
	TechnologyController *appControllers.TechnologyController
	FileController       *appControllers.FileController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	Hasher         pkgAuth.PasswordHasher
	Mailer         email.EmailService
	FileStorage    *filestorage.LocalStorage
	Hub            *websocket.Hub
	WSHandler      *websocket.Handler
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool
	lgr.Info().Msg("Database connection successfully established.")

	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	migrator := appMigrations.NewMigrator(dbPool, logger.Component("migrations"))
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.UploadsPath)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})
	deps.Hasher = pkgAuth.NewBcryptHasher(pkgAuth.BcryptCost)
	deps.Mailer = email.NewEmailService(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
		UseTLS:    cfg.SMTP.UseTLS,
		AppURL:    cfg.SMTP.AppURL,
	}, logger.Component("email"))

	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := seed.EnsureAdmin(seedCtx, deps.Repos.MemberRepository, deps.Hasher, seed.AdminAccount{
		Email:     cfg.Seed.AdminEmail,
		Password:  cfg.Seed.AdminPassword,
		FirstName: cfg.Seed.AdminFirstName,
		LastName:  cfg.Seed.AdminLastName,
	}, logger.Component("seed")); err != nil {
		// Startup continues; an admin can still be promoted by hand
		lgr.Error().Err(err).Msg("Failed to seed admin account, proceeding anyway...")
	}

	deps.Hub = websocket.NewHub(logger.Component("moderation"))
	deps.WSHandler = websocket.NewHandler(deps.Hub, logger.Component("moderation"))
	feed := appServices.NewReviewFeed(deps.Hub)

	deps.UploadService = appServices.NewFileUploadService(deps.FileStorage, deps.Repos.FileRepository, logger.Component("uploads"))

	deps.MemberService = appServices.NewMemberService(
		deps.Repos.MemberRepository,
		deps.Repos.FileRepository,
		deps.UploadService,
		deps.Hasher,
		deps.JWTService,
		deps.Mailer,
		logger.Component("members"),
	)
	deps.EventService = appServices.NewEventService(deps.Repos.EventRepository, deps.UploadService, feed, logger.Component("events"))
	deps.PostService = appServices.NewPostService(deps.Repos.PostRepository, deps.UploadService, feed, logger.Component("posts"))
	deps.ProjectService = appServices.NewProjectService(
		deps.Repos.ProjectRepository,
		deps.Repos.TechnologyRepository,
		deps.UploadService,
		feed,
		logger.Component("projects"),
	)
	deps.TechnologyService = appServices.NewTechnologyService(deps.Repos.TechnologyRepository, logger.Component("technologies"))
	deps.FileService = appServices.NewFileService(
		deps.Repos.FileRepository,
		deps.Repos.TechnologyRepository,
		deps.UploadService,
		logger.Component("files"),
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.MemberRepository, logger.Component("auth"))

	deps.MemberController = appControllers.NewMemberController(deps.MemberService)
	deps.EventController = appControllers.NewEventController(deps.EventService)
	deps.PostController = appControllers.NewPostController(deps.PostService)
	deps.ProjectController = appControllers.NewProjectController(deps.ProjectService)
	deps.TechnologyController = appControllers.NewTechnologyController(deps.TechnologyService)
	deps.FileController = appControllers.NewFileController(deps.FileService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := appMiddleware.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(logger.Component("http")))
	router.MaxMultipartMemory = cfg.Server.MaxMultipartMemory

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.MemberController,
		deps.EventController,
		deps.PostController,
		deps.ProjectController,
		deps.TechnologyController,
		deps.FileController,
		deps.WSHandler,
		deps.AuthMiddleware,
	)

	return router, nil
}
