package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BleepBlorpBlop/soundstories-app/internal/shared/middleware"
	"github.com/BleepBlorpBlop/soundstories-app/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupPublicRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", c.UserHandler.Login)
	}
}

// ========================================
// PUBLIC ROUTES
// ========================================
// Anonymous visitors: the past listing, the subscription info and the
// search proxy backing the admin form's autocomplete.
func setupPublicRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.GET("/recommendations/past", c.RecommendationHandler.ListPast)
	v1.GET("/calendar", c.CalendarHandler.GetSubscription)
	v1.GET("/search", c.SearchHandler.Search)
}

// ========================================
// ADMIN ROUTES
// ========================================
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(c.JWTManager), middleware.AdminMiddleware())
	{
		admin.GET("/me", c.UserHandler.Me)

		admin.POST("/recommendations", c.RecommendationHandler.Create)
		admin.GET("/recommendations", c.RecommendationHandler.List)
		admin.GET("/recommendations/:id", c.RecommendationHandler.Get)
		admin.DELETE("/recommendations/:id", c.RecommendationHandler.Delete)

		admin.POST("/calendar/generate", c.CalendarHandler.Generate)
	}
}

// healthCheckHandler reports liveness plus the state of the collaborators
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		dbErr := c.DB.HealthCheck(ctx.Request.Context())
		cacheErr := c.Cache.Ping(ctx.Request.Context())

		httpStatus, status := healthStatus(dbErr, cacheErr)

		ctx.JSON(httpStatus, gin.H{
			"status":   status,
			"version":  c.Config.App.Version,
			"database": componentStatus(dbErr),
			"cache":    componentStatus(cacheErr),
		})
	}
}

// healthStatus folds component states into one signal: the database is
// required, the cache only degrades reads (listings fall through to the
// store, Spotify re-requests a token), so a cache outage stays a 200.
func healthStatus(dbErr, cacheErr error) (int, string) {
	switch {
	case dbErr != nil:
		return http.StatusServiceUnavailable, "down"
	case cacheErr != nil:
		return http.StatusOK, "degraded"
	default:
		return http.StatusOK, "ok"
	}
}

func componentStatus(err error) string {
	if err != nil {
		return "down"
	}
	return "ok"
}
