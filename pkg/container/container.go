package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"gallery-backend/internal/config"
	infraCache "gallery-backend/internal/infrastructure/cache"
	"gallery-backend/internal/infrastructure/database"
	"gallery-backend/internal/infrastructure/storage"
	"gallery-backend/pkg/cache"
	"gallery-backend/pkg/jwt"

	adminHandler "gallery-backend/internal/domains/admin/handler"
	adminRepo "gallery-backend/internal/domains/admin/repository"
	adminService "gallery-backend/internal/domains/admin/service"
	artistHandler "gallery-backend/internal/domains/artist/handler"
	artistRepo "gallery-backend/internal/domains/artist/repository"
	artistService "gallery-backend/internal/domains/artist/service"
	collectionHandler "gallery-backend/internal/domains/collection/handler"
	collectionRepo "gallery-backend/internal/domains/collection/repository"
	collectionService "gallery-backend/internal/domains/collection/service"
	uploadHandler "gallery-backend/internal/domains/upload/handler"
	uploadService "gallery-backend/internal/domains/upload/service"
)

// Container holds the full dependency graph. Everything in here is a
// singleton built once at startup; construction order is config, then
// infrastructure, then repositories, services and handlers.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	Storage    *storage.MinIOStorage
	JWTManager *jwt.Manager

	ArtistRepo     artistRepo.RepositoryInterface
	CollectionRepo collectionRepo.RepositoryInterface
	AdminRepo      adminRepo.RepositoryInterface

	ArtistService     artistService.ServiceInterface
	CollectionService collectionService.ServiceInterface
	AuthService       adminService.AuthServiceInterface
	DashboardService  adminService.DashboardServiceInterface
	UploadService     uploadService.ServiceInterface

	ArtistHandler     *artistHandler.ArtistHandler
	CollectionHandler *collectionHandler.CollectionHandler
	AuthHandler       *adminHandler.AuthHandler
	DashboardHandler  *adminHandler.DashboardHandler
	UploadHandler     *uploadHandler.UploadHandler
}

// NewContainer builds and wires the whole application.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("config loaded (environment: %s)", cfg.App.Environment)

	db := database.NewPostgresDB(&cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}
	c.DB = db
	log.Println("database connected")

	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			// Cache is an optimization, not a dependency.
			log.Printf("redis connection failed (non-critical): %v", err)
		} else {
			log.Println("redis connected")
		}
	}
	c.Cache = redisCache

	store, err := storage.NewMinIOStorage(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to init object storage: %w", err)
	}
	c.Storage = store
	log.Println("object storage ready")

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.TokenExpiry)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	return c, nil
}

func (c *Container) initRepositories() {
	c.ArtistRepo = artistRepo.NewPostgresRepository(c.DB.Pool, c.Cache)
	c.CollectionRepo = collectionRepo.NewPostgresRepository(c.DB.Pool, c.Cache)
	c.AdminRepo = adminRepo.NewPostgresRepository(c.DB.Pool)
}

func (c *Container) initServices() {
	c.ArtistService = artistService.NewArtistService(c.ArtistRepo, c.Storage)
	c.CollectionService = collectionService.NewCollectionService(c.CollectionRepo)
	c.AuthService = adminService.NewAuthService(c.AdminRepo, c.JWTManager)
	c.DashboardService = adminService.NewDashboardService(
		c.ArtistRepo,
		c.CollectionRepo,
		c.Storage,
		c.Config.Storage.QuotaBytes,
	)
	c.UploadService = uploadService.NewUploadService(
		c.Storage,
		storage.NewImageProcessor(),
		c.ArtistService,
		c.Config.Upload.MaxSizeBytes,
		c.Config.Upload.PresignExpiry,
	)
}

func (c *Container) initHandlers() {
	cookieMaxAge := int(c.Config.JWT.TokenExpiry.Seconds())
	cookieSecure := c.Config.App.Environment == "production"

	c.ArtistHandler = artistHandler.NewArtistHandler(c.ArtistService)
	c.CollectionHandler = collectionHandler.NewCollectionHandler(c.CollectionService)
	c.AuthHandler = adminHandler.NewAuthHandler(c.AuthService, cookieMaxAge, cookieSecure)
	c.DashboardHandler = adminHandler.NewDashboardHandler(c.DashboardService)
	c.UploadHandler = uploadHandler.NewUploadHandler(c.UploadService)
}

// Cleanup releases infrastructure connections. Safe to call once on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
		log.Println("database connection closed")
	}
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Printf("failed to close redis: %v", err)
		}
	}
}
