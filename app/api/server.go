package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewServer creates a new HTTP server with all routes configured
func NewServer(handler *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())

	// CORS middleware for API endpoints
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	setupRoutes(r, handler)

	return r
}

// setupRoutes configures all the application routes
func setupRoutes(r *gin.Engine, handler *Handler) {
	r.GET("/health", handler.GetHealth)
	r.GET("/stats", handler.GetStats)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/events", handler.ListEvents)
	r.POST("/events/:id/select", handler.SelectEvent)
	r.POST("/events/:id/analyze", handler.AnalyzeEvent)
	r.DELETE("/events/selection", handler.ClearSelection)

	r.GET("/feeds", handler.ListFeeds)
	r.POST("/feeds", handler.AddFeed)
	r.POST("/feeds/toggle", handler.ToggleFeed)

	r.GET("/personas", handler.ListPersonas)
	r.POST("/personas/:id/toggle", handler.TogglePersona)

	r.GET("/pillars", handler.GetPillars)

	r.GET("/chat/messages", handler.ListMessages)
	r.POST("/chat/messages", handler.SendMessage)
	r.DELETE("/chat/messages", handler.ClearMessages)

	// Favicon handler (return 204 to avoid 404s)
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(204)
	})
}
