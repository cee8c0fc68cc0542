package gateway

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"shareit/internal/middleware"
	pkgErrors "shareit/pkg/errors"
	"shareit/pkg/log"
	"shareit/pkg/response"
)

const callerKey = "gateway.caller"

// requireCaller rejects the request unless the caller header holds a
// positive integer.
func (g *Gateway) requireCaller() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := middleware.ParseCallerID(g.header, c.GetHeader(g.header))
		if err != nil {
			g.l.Warnf(c.Request.Context(), "gateway.requireCaller: %v", err)
			response.Error(c, pkgErrors.NewBadRequest(err.Error()))
			return
		}
		c.Set(callerKey, strconv.FormatInt(id, 10))
		c.Next()
	}
}

// optionalCaller validates the header only when it is present.
func (g *Gateway) optionalCaller() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(g.header)
		if strings.TrimSpace(raw) == "" {
			c.Next()
			return
		}
		id, err := middleware.ParseCallerID(g.header, raw)
		if err != nil {
			response.Error(c, pkgErrors.NewBadRequest(err.Error()))
			return
		}
		c.Set(callerKey, strconv.FormatInt(id, 10))
		c.Next()
	}
}

// rateLimit charges the caller id, or the client address for anonymous calls.
func (g *Gateway) rateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetString(callerKey)
		if key == "" {
			key = "ip:" + c.ClientIP()
		}
		if !g.limiter.Allow(key) {
			g.l.Warnf(c.Request.Context(), "gateway.rateLimit: rate limit exceeded for %s", key)
			response.Error(c, pkgErrors.ErrTooManyRequests)
			return
		}
		c.Next()
	}
}

// proxy relays the request to the server and copies the answer back.
func (g *Gateway) proxy(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(c, pkgErrors.ErrRequestTooLarge)
			return
		}
		response.Error(c, pkgErrors.NewBadRequest("unreadable request body"))
		return
	}

	resp, err := g.client.Forward(ctx, ForwardRequest{
		Method:      c.Request.Method,
		Path:        c.Request.URL.Path,
		RawQuery:    c.Request.URL.RawQuery,
		Body:        body,
		ContentType: c.GetHeader("Content-Type"),
		CallerID:    c.GetString(callerKey),
		RequestID:   log.RequestID(ctx),
	})
	if err != nil {
		g.l.Errorf(ctx, "gateway.proxy: %v", err)
		response.Error(c, pkgErrors.ErrBadGateway)
		return
	}

	contentType := resp.ContentType
	if contentType == "" {
		contentType = "application/json; charset=utf-8"
	}
	c.Data(resp.StatusCode, contentType, resp.Body)
}
