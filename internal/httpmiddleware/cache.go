package httpmiddleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tair/shop-backoffice/pkg/logger"
)

// CacheConfig holds response cache configuration
type CacheConfig struct {
	DefaultTTL      time.Duration
	CacheableStatus []int
}

// DefaultCacheConfig returns the default cache configuration. The TTL is
// short because the dashboard polls list endpoints aggressively.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		DefaultTTL:      30 * time.Second,
		CacheableStatus: []int{http.StatusOK},
	}
}

// Cache implements GET response caching with Redis. A nil client disables
// caching entirely. A committed mutation drops every cached entry: a write
// through one resource moves the stock mirror seen through another, so any
// cached read may be stale after it.
func Cache(redisClient *redis.Client, config CacheConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if redisClient == nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()

			if r.Method != http.MethodGet {
				rec := &recordingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
				next.ServeHTTP(rec, r)

				if mutationCommitted(r.Method, rec.statusCode) {
					invalidate(ctx, redisClient)
				}
				return
			}

			cacheKey := cacheKeyFor(r)

			cached, err := redisClient.Get(ctx, cacheKey).Bytes()
			if err == nil && len(cached) > 0 {
				logger.Debug(ctx).
					Str("path", r.URL.Path).
					Str("cache_key", cacheKey).
					Msg("Cache hit")

				w.Header().Set("X-Cache", "HIT")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				w.Write(cached)
				return
			}

			rec := &recordingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			rec.Header().Set("X-Cache", "MISS")
			next.ServeHTTP(rec, r)

			if !statusCacheable(rec.statusCode, config.CacheableStatus) {
				return
			}

			if err := redisClient.Set(ctx, cacheKey, rec.body.Bytes(), config.DefaultTTL).Err(); err != nil {
				logger.Warn(ctx).
					Err(err).
					Str("cache_key", cacheKey).
					Msg("Failed to cache response")
			}
		})
	}
}

// recordingResponseWriter tees the response body so it can be cached
type recordingResponseWriter struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func (rw *recordingResponseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *recordingResponseWriter) Write(b []byte) (int, error) {
	rw.body.Write(b)
	return rw.ResponseWriter.Write(b)
}

const cacheKeyPrefix = "httpcache:"

func cacheKeyFor(r *http.Request) string {
	sum := sha256.Sum256([]byte(r.URL.Path + "?" + r.URL.RawQuery))
	return fmt.Sprintf("%s%s", cacheKeyPrefix, hex.EncodeToString(sum[:16]))
}

// mutationCommitted reports whether a non-GET request changed server state.
// Rejected writes (4xx) and failed writes (5xx) leave the store as it was,
// so the cached reads stay valid.
func mutationCommitted(method string, status int) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return status < http.StatusBadRequest
	}
	return false
}

// invalidate drops every cached response. Invalidation failures degrade to
// the TTL bound rather than failing the write.
func invalidate(ctx context.Context, redisClient *redis.Client) {
	iter := redisClient.Scan(ctx, 0, cacheKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := redisClient.Del(ctx, iter.Val()).Err(); err != nil {
			logger.Warn(ctx).
				Err(err).
				Str("cache_key", iter.Val()).
				Msg("Failed to invalidate cached response")
		}
	}
	if err := iter.Err(); err != nil {
		logger.Warn(ctx).Err(err).Msg("Cache invalidation scan failed")
	}
}

func statusCacheable(status int, cacheable []int) bool {
	for _, s := range cacheable {
		if s == status {
			return true
		}
	}
	return false
}
