package api

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/TJurijs/5esrd-api/tmpstore"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	cacheHeader = "X-Cache"
	cacheHit    = "HIT"
	cacheMiss   = "MISS"
)

// bodyRecorder keeps a copy of everything written to the response.
type bodyRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// cacheMiddleware serves successful GET responses from the cache, keyed by request URI.
// Cache failures are logged and the request is served as if the cache were empty.
// A non-positive CACHE_TTL turns caching off.
func (s *Service) cacheMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.Request.Method != http.MethodGet || s.config.CacheTTL <= 0 {
			ctx.Next()
			return
		}

		key := ctx.Request.URL.RequestURI()

		cached, err := s.cache.GetResponse(ctx, key)
		if err == nil {
			ctx.Header(cacheHeader, cacheHit)
			ctx.Data(cached.Status, gin.MIMEJSON+"; charset=utf-8", cached.Body)
			ctx.Abort()
			return
		}

		if !errors.Is(err, tmpstore.ErrCacheMiss) {
			log.Warn().Err(err).Str("key", key).Msg("cannot read cached response")
		}

		ctx.Header(cacheHeader, cacheMiss)

		rec := &bodyRecorder{ResponseWriter: ctx.Writer}
		ctx.Writer = rec

		ctx.Next()

		if rec.Status() != http.StatusOK {
			return
		}

		resp := tmpstore.CachedResponse{Status: rec.Status(), Body: rec.body.Bytes()}
		if err := s.cache.SaveResponse(ctx, key, resp, s.config.CacheTTL); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("cannot cache response")
		}
	}
}
