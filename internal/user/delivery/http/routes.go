package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps /users. The user directory does not need a caller header.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	users := rg.Group("/users")
	{
		users.POST("", h.Create)
		users.GET("", h.List)
		users.GET("/:id", h.Detail)
		users.PATCH("/:id", h.Update)
		users.DELETE("/:id", h.Delete)
	}
}
