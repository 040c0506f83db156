package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/BleepBlorpBlop/soundstories-app/internal/config"
	infraCache "github.com/BleepBlorpBlop/soundstories-app/internal/infrastructure/cache"
	"github.com/BleepBlorpBlop/soundstories-app/internal/infrastructure/database"
	"github.com/BleepBlorpBlop/soundstories-app/internal/infrastructure/spotify"
	"github.com/BleepBlorpBlop/soundstories-app/internal/infrastructure/storage"
	"github.com/BleepBlorpBlop/soundstories-app/pkg/cache"
	"github.com/BleepBlorpBlop/soundstories-app/pkg/jwt"

	"github.com/BleepBlorpBlop/soundstories-app/internal/domains/calendar"
	calendarHandler "github.com/BleepBlorpBlop/soundstories-app/internal/domains/calendar/handler"
	calendarService "github.com/BleepBlorpBlop/soundstories-app/internal/domains/calendar/service"
	"github.com/BleepBlorpBlop/soundstories-app/internal/domains/recommendation"
	recommendationHandler "github.com/BleepBlorpBlop/soundstories-app/internal/domains/recommendation/handler"
	recommendationRepo "github.com/BleepBlorpBlop/soundstories-app/internal/domains/recommendation/repository"
	recommendationService "github.com/BleepBlorpBlop/soundstories-app/internal/domains/recommendation/service"
	searchHandler "github.com/BleepBlorpBlop/soundstories-app/internal/domains/search/handler"
	"github.com/BleepBlorpBlop/soundstories-app/internal/domains/user"
	userHandler "github.com/BleepBlorpBlop/soundstories-app/internal/domains/user/handler"
	userRepo "github.com/BleepBlorpBlop/soundstories-app/internal/domains/user/repository"
	userService "github.com/BleepBlorpBlop/soundstories-app/internal/domains/user/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds ALL application dependencies.
// This struct is the root of the dependency graph.
// Pattern: Service Locator + Dependency Injection
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	// Shared across all domains, singleton for the app lifetime

	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	Storage    *storage.MinIOStorage
	Spotify    *spotify.Client
	JWTManager *jwt.Manager

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================

	RecommendationRepo recommendation.Repository
	UserRepo           user.Repository

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================

	RecommendationService recommendation.Service
	CalendarService       calendar.Service
	UserService           user.Service

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================

	RecommendationHandler *recommendationHandler.RecommendationHandler
	CalendarHandler       *calendarHandler.CalendarHandler
	SearchHandler         *searchHandler.SearchHandler
	UserHandler           *userHandler.UserHandler
}

// NewContainer builds and initializes the whole dependency graph.
//
// Initialization order matters:
// 1. Config (depends on nothing)
// 2. Infrastructure (DB, Cache, Storage, Spotify) - depends on Config
// 3. Repositories - depend on Infrastructure
// 4. Services - depend on Repositories
// 5. Handlers - depend on Services
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	log.Println("🗄️  Connecting to PostgreSQL...")

	db := database.NewPostgresDB(cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	log.Println("✅ Database connected")

	// ========================================
	// STEP 3: INITIALIZE CACHE
	// ========================================
	log.Println("🔴 Connecting to Redis...")

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			// Redis failure is non-critical - log warning and continue
			log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
		} else {
			log.Println("✅ Redis connected")
		}
	}
	c.Cache = redisCache

	// ========================================
	// STEP 4: INITIALIZE OBJECT STORAGE
	// ========================================
	log.Println("📦 Connecting to MinIO...")

	minioStorage, err := storage.NewMinIOStorage(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("failed to init minio storage: %w", err)
	}
	c.Storage = minioStorage
	log.Println("✅ MinIO connected")

	// ========================================
	// STEP 5: EXTERNAL CLIENTS + AUTH
	// ========================================
	c.Spotify = spotify.NewClient(cfg.Spotify, c.Cache)
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// ========================================
	// STEP 6: REPOSITORIES
	// ========================================
	log.Println("🗃️  Initializing repositories...")

	c.RecommendationRepo = recommendationRepo.NewPostgresRepository(c.DB.Pool)
	c.UserRepo = userRepo.NewPostgresRepository(c.DB.Pool)
	log.Println("✅ Repositories initialized")

	// ========================================
	// STEP 7: SERVICES
	// ========================================
	log.Println("⚙️  Initializing services...")

	c.RecommendationService = recommendationService.NewRecommendationService(c.RecommendationRepo, c.Cache, cfg.Calendar)
	c.CalendarService = calendarService.NewCalendarService(c.RecommendationRepo, c.Storage, c.Cache, cfg.Calendar)
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)
	log.Println("✅ Services initialized")

	// Seed the bootstrap admin so the first sign-in works out of the box
	if err := c.UserService.EnsureAdmin(context.Background(), cfg.Admin.Email, cfg.Admin.Name, cfg.Admin.Password); err != nil {
		return nil, fmt.Errorf("failed to seed admin account: %w", err)
	}

	// ========================================
	// STEP 8: HANDLERS
	// ========================================
	log.Println("🎯 Initializing handlers...")

	c.RecommendationHandler = recommendationHandler.NewRecommendationHandler(c.RecommendationService)
	c.CalendarHandler = calendarHandler.NewCalendarHandler(c.CalendarService)
	c.SearchHandler = searchHandler.NewSearchHandler(c.Spotify)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	log.Println("✅ Handlers initialized")

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// Cleanup releases all infrastructure resources
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.DB != nil {
		c.DB.Close()
	}
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Printf("⚠️  Failed to close redis client: %v", err)
		}
	}

	log.Println("✅ Cleanup complete")
}
