package middleware

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"shareit/internal/model"
	pkgErrors "shareit/pkg/errors"
	"shareit/pkg/response"
)

// ParseCallerID validates a raw caller header value: a positive integer.
func ParseCallerID(header, raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("missing required header %s", header)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("header %s must be a positive integer, got %q", header, raw)
	}
	return id, nil
}

// Identity rejects the request with 400 unless the caller header holds a
// positive integer. The parsed id is stored as model.Scope on the request
// context.
func (m Middleware) Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := ParseCallerID(m.header, c.GetHeader(m.header))
		if err != nil {
			m.l.Warnf(c.Request.Context(), "middleware.Identity: %v", err)
			response.Error(c, pkgErrors.NewBadRequest(err.Error()))
			return
		}
		m.setScope(c, id)
		c.Next()
	}
}

// OptionalIdentity stores the scope when the header is present and valid,
// rejects a malformed value and lets anonymous requests through.
func (m Middleware) OptionalIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(m.header)
		if strings.TrimSpace(raw) == "" {
			c.Next()
			return
		}
		id, err := ParseCallerID(m.header, raw)
		if err != nil {
			response.Error(c, pkgErrors.NewBadRequest(err.Error()))
			return
		}
		m.setScope(c, id)
		c.Next()
	}
}

func (m Middleware) setScope(c *gin.Context, id int64) {
	ctx := model.SetScopeToContext(c.Request.Context(), model.Scope{UserID: id})
	c.Request = c.Request.WithContext(ctx)
}
