package gateway

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"shareit/pkg/response"
)

func (g *Gateway) mapHandlers() {
	g.gin.Use(gin.Recovery(), g.mw.RequestID(), g.mw.AccessLog(), g.metrics.Instrument())

	g.gin.GET("/health", g.healthCheck)
	g.gin.GET("/live", g.healthCheck)
	g.gin.GET("/metrics", gin.WrapH(g.metrics.Handler()))
	g.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	required := []gin.HandlerFunc{g.requireCaller(), g.rateLimit(), g.proxy}
	optional := []gin.HandlerFunc{g.optionalCaller(), g.rateLimit(), g.proxy}
	anonymous := []gin.HandlerFunc{g.rateLimit(), g.proxy}

	users := g.gin.Group("/users")
	{
		users.POST("", anonymous...)
		users.GET("", anonymous...)
		users.GET("/:id", anonymous...)
		users.PATCH("/:id", anonymous...)
		users.DELETE("/:id", anonymous...)
	}

	items := g.gin.Group("/items")
	{
		items.POST("", required...)
		items.GET("", required...)
		items.GET("/search", optional...)
		items.GET("/:id", optional...)
		items.PATCH("/:id", required...)
		items.POST("/:id/comment", required...)
	}

	bookings := g.gin.Group("/bookings")
	{
		bookings.POST("", required...)
		bookings.GET("", required...)
		bookings.GET("/owner", required...)
		bookings.GET("/:id", required...)
		bookings.PATCH("/:id", required...)
	}

	requests := g.gin.Group("/requests")
	{
		requests.POST("", required...)
		requests.GET("", required...)
		requests.GET("/all", required...)
		requests.GET("/:id", required...)
	}
}

// healthCheck godoc
// @Summary Gateway health check
// @Tags    Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router  /health [get]
func (g *Gateway) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"service": "shareit-gateway",
	})
}
