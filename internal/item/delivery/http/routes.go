package http

import (
	"github.com/gin-gonic/gin"

	"shareit/internal/middleware"
)

// RegisterRoutes maps the write and search routes of /items. Item views are
// registered by the itemview delivery on the same group.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	items := rg.Group("/items")
	{
		items.POST("", mw.Identity(), h.Create)
		items.PATCH("/:id", mw.Identity(), h.Update)
		items.GET("/search", h.Search)
	}
}
