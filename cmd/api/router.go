package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gallery-backend/internal/shared/middleware"
	"gallery-backend/pkg/container"
)

// SetupRouter wires every route group. Reads stay public so the gallery
// frontend can render without a session; every mutating route and the
// admin surfaces sit behind the auth middleware.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	authRequired := middleware.Auth(c.JWTManager)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c, authRequired)
		setupArtistRoutes(v1, c, authRequired)
		setupCollectionRoutes(v1, c, authRequired)
		setupUploadRoutes(v1, c, authRequired)
		setupDashboardRoutes(v1, c, authRequired)
	}

	return router
}

func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container, authRequired gin.HandlerFunc) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", c.AuthHandler.Login)
		auth.POST("/logout", c.AuthHandler.Logout)
		auth.GET("/check", authRequired, c.AuthHandler.Check)
	}
}

func setupArtistRoutes(v1 *gin.RouterGroup, c *container.Container, authRequired gin.HandlerFunc) {
	artists := v1.Group("/artists")
	{
		artists.GET("", c.ArtistHandler.GetAll)
		artists.GET("/:slug", c.ArtistHandler.GetBySlug)

		artists.POST("", authRequired, c.ArtistHandler.Create)
		artists.PUT("/:slug", authRequired, c.ArtistHandler.Update)
		artists.DELETE("/:slug", authRequired, c.ArtistHandler.Delete)
		artists.DELETE("/:slug/artworks/:index", authRequired, c.ArtistHandler.RemoveArtwork)
	}
}

func setupCollectionRoutes(v1 *gin.RouterGroup, c *container.Container, authRequired gin.HandlerFunc) {
	collections := v1.Group("/collections")
	{
		collections.GET("", c.CollectionHandler.GetAll)
		collections.GET("/:id", c.CollectionHandler.GetByID)

		collections.POST("", authRequired, c.CollectionHandler.Create)
		collections.POST("/bulk", authRequired, c.CollectionHandler.BulkCreate)
		collections.PUT("/:id", authRequired, c.CollectionHandler.Update)
		collections.DELETE("/:id", authRequired, c.CollectionHandler.Delete)
	}
}

func setupUploadRoutes(v1 *gin.RouterGroup, c *container.Container, authRequired gin.HandlerFunc) {
	uploads := v1.Group("/uploads")
	uploads.Use(authRequired)
	{
		uploads.POST("", c.UploadHandler.Upload)
		uploads.POST("/artwork", c.UploadHandler.UploadArtwork)
		uploads.DELETE("", c.UploadHandler.Delete)
		uploads.POST("/presign", c.UploadHandler.Presign)
	}
}

func setupDashboardRoutes(v1 *gin.RouterGroup, c *container.Container, authRequired gin.HandlerFunc) {
	admin := v1.Group("/admin")
	admin.Use(authRequired)
	{
		admin.GET("/dashboard/stats", c.DashboardHandler.Stats)
	}
}

// healthCheckHandler reports liveness plus dependency status. Redis being
// down degrades the report but not the status code; the database is
// authoritative.
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()

		status := http.StatusOK
		overall := "ok"
		dbStatus := "up"
		if err := c.DB.HealthCheck(checkCtx); err != nil {
			dbStatus = "down"
			overall = "degraded"
			status = http.StatusServiceUnavailable
		}

		redisStatus := "up"
		if err := c.Cache.Ping(checkCtx); err != nil {
			redisStatus = "down"
		}

		ctx.JSON(status, gin.H{
			"status":   overall,
			"version":  c.Config.App.Version,
			"database": dbStatus,
			"redis":    redisStatus,
		})
	}
}
