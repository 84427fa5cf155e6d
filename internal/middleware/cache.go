package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// CacheConfig controls Cache-Control on read endpoints
type CacheConfig struct {
	MaxAge  time.Duration
	Private bool
	Vary    []string
	// NoStorePrefixes lists route templates whose responses carry personal
	// data and must never be cached, e.g. "/api/bookings".
	NoStorePrefixes []string
}

func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		MaxAge: time.Minute,
		Vary:   []string{"Accept"},
		NoStorePrefixes: []string{
			"/api/bookings",
			"/api/workshops/:id/bookings",
		},
	}
}

// Cache marks 2xx GET responses as cacheable. Errors, writes and routes under
// NoStorePrefixes get no-store. Directory data changes when bookings land, so
// keep MaxAge short.
func Cache(config CacheConfig) gin.HandlerFunc {
	scope := "public"
	if config.Private {
		scope = "private"
	}
	directive := scope + ", max-age=" + strconv.Itoa(int(config.MaxAge.Seconds()))
	vary := strings.Join(config.Vary, ", ")

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet || config.MaxAge <= 0 || noStore(config.NoStorePrefixes, c.FullPath()) {
			c.Header("Cache-Control", "no-store")
			c.Next()
			return
		}

		c.Writer = &cacheWriter{ResponseWriter: c.Writer, directive: directive, vary: vary}
		c.Next()
	}
}

func noStore(prefixes []string, path string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// cacheWriter picks the Cache-Control value once the status is known, just
// before the headers go out.
type cacheWriter struct {
	gin.ResponseWriter
	directive string
	vary      string
	decided   bool
}

func (w *cacheWriter) decide(status int) {
	if w.decided {
		return
	}
	w.decided = true

	if status < 200 || status >= 300 {
		w.Header().Set("Cache-Control", "no-store")
		return
	}
	w.Header().Set("Cache-Control", w.directive)
	if w.vary != "" {
		w.Header().Set("Vary", w.vary)
	}
}

func (w *cacheWriter) WriteHeader(code int) {
	w.decide(code)
	w.ResponseWriter.WriteHeader(code)
}

func (w *cacheWriter) WriteHeaderNow() {
	w.decide(w.Status())
	w.ResponseWriter.WriteHeaderNow()
}

func (w *cacheWriter) Write(data []byte) (int, error) {
	w.decide(w.Status())
	return w.ResponseWriter.Write(data)
}

func (w *cacheWriter) WriteString(s string) (int, error) {
	w.decide(w.Status())
	return w.ResponseWriter.WriteString(s)
}
