package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/jwalitptl/clinic-directory/internal/handler/health"
	"github.com/jwalitptl/clinic-directory/internal/middleware"
	"github.com/jwalitptl/clinic-directory/pkg/httputil"
	"github.com/jwalitptl/clinic-directory/pkg/metrics"
	"github.com/jwalitptl/clinic-directory/pkg/validator"
)

type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type RouterConfig struct {
	RateLimitEnabled bool
	RateLimit        middleware.RateLimiterConfig
	CORSConfig       middleware.CORSConfig
	CacheConfig      middleware.CacheConfig
	SizeLimit        middleware.SizeLimitConfig
}

type Router struct {
	engine   *gin.Engine
	api      []Handler
	health   *health.Handler
	gatherer prometheus.Gatherer
	config   RouterConfig
}

// NewRouter builds the engine and its middleware chain. Routes are added by
// Setup.
func NewRouter(
	config RouterConfig,
	api []Handler,
	healthH *health.Handler,
	m *metrics.Metrics,
	gatherer prometheus.Gatherer,
	logger zerolog.Logger,
) *Router {
	validator.RegisterJSONTagNames()

	engine := gin.New()
	engine.HandleMethodNotAllowed = true

	r := &Router{
		engine:   engine,
		api:      api,
		health:   healthH,
		gatherer: gatherer,
		config:   config,
	}

	engine.Use(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.Metrics(m),
		middleware.SecurityHeaders(),
		middleware.CORS(config.CORSConfig),
		middleware.SizeLimit(config.SizeLimit),
	)

	if config.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(config.RateLimit)
		engine.Use(rateLimiter.RateLimit())
	}

	engine.NoRoute(func(c *gin.Context) {
		httputil.RespondWithMessage(c, http.StatusNotFound, "Route not found")
	})
	engine.NoMethod(func(c *gin.Context) {
		httputil.RespondWithMessage(c, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return r
}

func (r *Router) Setup() {
	r.health.RegisterRoutes(r.engine)
	r.engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})))

	api := r.engine.Group("/api")
	api.Use(middleware.Cache(r.config.CacheConfig))
	for _, h := range r.api {
		h.RegisterRoutes(api)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
