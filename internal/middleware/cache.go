package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	internalRedis "safar/internal/redis"
)

// responseWriter wraps gin.ResponseWriter to capture the response body.
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// CacheMiddleware returns middleware that serves search responses from the
// cache. Cache failures are invisible: a Redis error means the request just
// proceeds uncached. Only 200 responses are stored.
func CacheMiddleware(cache *internalRedis.SearchCache, keyPrefix string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cache == nil {
			c.Next()
			return
		}

		key, ok := cacheKey(c, keyPrefix)
		if !ok {
			c.Next()
			return
		}

		ctx := c.Request.Context()

		cached, err := cache.Get(ctx, key)
		if err == nil && cached != nil {
			c.Data(cached.StatusCode, "application/json", cached.Body)
			c.Abort()
			return
		}

		w := &responseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = w

		c.Next()

		if c.Writer.Status() == http.StatusOK {
			_ = cache.Set(ctx, key, &internalRedis.CachedResponse{
				StatusCode: c.Writer.Status(),
				Body:       w.body.Bytes(),
			})
		}
	}
}

// cacheKey derives the cache key from the request's query and body. The body
// is restored so the handler can still read it.
func cacheKey(c *gin.Context, prefix string) (string, bool) {
	sum := sha256.New()
	sum.Write([]byte(c.Request.Method))
	sum.Write([]byte(c.Request.URL.Path))
	sum.Write([]byte(c.Request.URL.RawQuery))

	if c.Request.Body != nil {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			return "", false
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		sum.Write(body)
	}

	return "cache:" + prefix + ":" + hex.EncodeToString(sum.Sum(nil)), true
}
