package http

import (
	"github.com/gin-gonic/gin"

	"shareit/internal/middleware"
)

// RegisterRoutes maps the read routes of /items. A single item is visible
// anonymously; the owner list needs the caller header.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	items := rg.Group("/items")
	{
		items.GET("", mw.Identity(), h.OwnerList)
		items.GET("/:id", mw.OptionalIdentity(), h.Detail)
	}
}
