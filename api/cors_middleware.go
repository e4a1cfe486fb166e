package api

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
)

const anyOrigin = "*"

// handling CORS
func (s *Service) corsMiddleware() gin.HandlerFunc {
	allowedHeaders := strings.Join([]string{
		"Content-Type",
		"Authorization",
		requestIDHeader,
	}, ",")

	return func(ctx *gin.Context) {
		origin := ctx.Request.Header.Get("Origin")

		switch {
		case slices.Contains(s.config.AllowedOrigins, anyOrigin):
			ctx.Header("Access-Control-Allow-Origin", anyOrigin)
		case origin != "" && slices.Contains(s.config.AllowedOrigins, origin):
			ctx.Header("Access-Control-Allow-Origin", origin)
			ctx.Header("Vary", "Origin")
		}

		// the API is read-only apart from expansion and the admin reload
		ctx.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		ctx.Header("Access-Control-Allow-Headers", allowedHeaders)
		ctx.Header("Access-Control-Expose-Headers", requestIDHeader+","+cacheHeader)

		// If someone sends preflight (OPTIONS), respond 204 and return
		if ctx.Request.Method == http.MethodOptions {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}

		ctx.Next()
	}
}

// checkOrigin applies the CORS allow-list to websocket upgrades.
// Requests without an Origin header do not come from a browser and are accepted.
func (s *Service) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	return slices.Contains(s.config.AllowedOrigins, anyOrigin) ||
		slices.Contains(s.config.AllowedOrigins, origin)
}
