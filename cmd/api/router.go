package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"itemstore-backend/internal/shared/middleware"
	"itemstore-backend/pkg/container"
)

// SetupRouter wires middleware and routes. All API routes live under the
// configured prefix (default /api); the root route stays outside it.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	router.GET("/", rootHandler(c))
	router.GET("/health", healthCheckHandler(c))

	api := router.Group(c.Config.API.Prefix)
	{
		// Also reachable under the prefix for clients that only see the
		// API surface.
		api.GET("/health", healthCheckHandler(c))

		setupUserRoutes(api, c)
		setupItemRoutes(api, c)
		setupAsyncRoutes(api, c)
	}

	return router
}

func setupUserRoutes(api *gin.RouterGroup, c *container.Container) {
	users := api.Group("/users")
	{
		users.POST("", c.UserHandler.Create)
		users.GET("", c.UserHandler.List)
		users.GET("/:id", c.UserHandler.GetByID)
		users.PATCH("/:id", c.UserHandler.Update)
		users.DELETE("/:id", c.UserHandler.Delete)
	}
}

func setupItemRoutes(api *gin.RouterGroup, c *container.Container) {
	items := api.Group("/items")
	{
		items.POST("", c.ItemHandler.Create)
		items.GET("", c.ItemHandler.List)
		items.GET("/:id", c.ItemHandler.GetByID)
		items.PATCH("/:id", c.ItemHandler.Update)
		items.DELETE("/:id", c.ItemHandler.Delete)
	}
}

func setupAsyncRoutes(api *gin.RouterGroup, c *container.Container) {
	api.GET("/async-hello", c.AsyncHandler.Hello)
	api.GET("/simulate-task/:task_id", c.AsyncHandler.SimulateTask)
	api.GET("/concurrent-fetch", c.AsyncHandler.ConcurrentFetch)
	api.GET("/gather-example", c.AsyncHandler.GatherExample)
	api.POST("/background-task", c.AsyncHandler.BackgroundTask)
}

func rootHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":    appCtx.Config.App.Name,
			"version": appCtx.Config.App.Version,
			"docs":    appCtx.Config.API.Prefix + "/health",
		})
	}
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		statusCode := http.StatusOK

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := appCtx.DB.HealthCheck(ctx); err != nil {
			dbStatus = "error: " + err.Error()
			health["status"] = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		health["services"] = gin.H{"database": dbStatus}

		c.JSON(statusCode, health)
	}
}
