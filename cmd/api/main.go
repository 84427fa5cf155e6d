package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/jwalitptl/clinic-directory/internal/config"
	"github.com/jwalitptl/clinic-directory/internal/email"
	bookingHandler "github.com/jwalitptl/clinic-directory/internal/handler/booking"
	clinicHandler "github.com/jwalitptl/clinic-directory/internal/handler/clinic"
	contactHandler "github.com/jwalitptl/clinic-directory/internal/handler/contact"
	"github.com/jwalitptl/clinic-directory/internal/handler/health"
	workshopHandler "github.com/jwalitptl/clinic-directory/internal/handler/workshop"
	"github.com/jwalitptl/clinic-directory/internal/middleware"
	"github.com/jwalitptl/clinic-directory/internal/repository/memory"
	"github.com/jwalitptl/clinic-directory/internal/router"
	bookingService "github.com/jwalitptl/clinic-directory/internal/service/booking"
	clinicService "github.com/jwalitptl/clinic-directory/internal/service/clinic"
	contactService "github.com/jwalitptl/clinic-directory/internal/service/contact"
	workshopService "github.com/jwalitptl/clinic-directory/internal/service/workshop"
	"github.com/jwalitptl/clinic-directory/internal/worker"
	"github.com/jwalitptl/clinic-directory/pkg/logger"
	"github.com/jwalitptl/clinic-directory/pkg/messaging"
	"github.com/jwalitptl/clinic-directory/pkg/messaging/redis"
	"github.com/jwalitptl/clinic-directory/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	gin.SetMode(cfg.Server.Mode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Store
	store := memory.NewStore()
	if cfg.Seed.Enabled {
		memory.Seed(ctx, store)
		stats := store.Stats()
		appLogger.Info().Int("clinics", stats.Clinics).Int("workshops", stats.Workshops).Msg("Seeded directory")
	}

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New("directory", reg)

	// Event publishing
	checks := map[string]health.Check{}
	var publisher messaging.Publisher = messaging.NopPublisher{}
	if cfg.Redis.URL != "" {
		redisPublisher, err := redis.NewPublisher(ctx, redis.Config{
			URL:          cfg.Redis.URL,
			Channel:      cfg.Redis.Channel,
			MaxRetries:   3,
			RetryBackoff: 100 * time.Millisecond,
		}, appLogger.With().Str("component", "redis").Logger())
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to Redis")
		}
		publisher = redisPublisher
		checks["redis"] = redisPublisher.Ping
	}
	defer publisher.Close()

	dispatcher, err := worker.NewEventDispatcher(publisher, worker.EventDispatcherConfig{
		BufferSize:    cfg.Events.BufferSize,
		RetryAttempts: cfg.Events.RetryAttempts,
		RetryDelay:    cfg.Events.RetryDelay,
	}, appLogger.With().Str("component", "dispatcher").Logger(), m)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid event dispatcher configuration")
	}

	// The dispatcher outlives the signal context: it is stopped only after the
	// server has finished in-flight requests that may still enqueue events.
	dispatcherCtx, stopDispatcher := context.WithCancel(context.Background())
	defer stopDispatcher()

	dispatcherDone := make(chan struct{})
	go func() {
		dispatcher.Start(dispatcherCtx)
		close(dispatcherDone)
	}()

	// Mail
	var mailer email.Service = email.NewLogService(appLogger.With().Str("component", "mailer").Logger())
	if cfg.SMTP.Host != "" {
		mailer = email.NewSMTPService(email.Config{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
			To:       cfg.SMTP.To,
		})
	}

	// Services
	clinicSvc := clinicService.NewService(store)
	workshopSvc := workshopService.NewService(store, store)
	bookingSvc := bookingService.NewService(store, store, dispatcher, m, appLogger)
	contactSvc := contactService.NewService(mailer, m, appLogger)

	// Router
	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	cacheConfig := middleware.DefaultCacheConfig()
	cacheConfig.MaxAge = cfg.Cache.MaxAge

	r := router.NewRouter(router.RouterConfig{
		RateLimitEnabled: cfg.RateLimit.Enabled,
		RateLimit: middleware.RateLimiterConfig{
			Rate:  rate.Limit(cfg.RateLimit.RPS),
			Burst: cfg.RateLimit.Burst,
			TTL:   cfg.RateLimit.TTL,
		},
		CORSConfig:  corsConfig,
		CacheConfig: cacheConfig,
		SizeLimit: middleware.SizeLimitConfig{
			MaxBodySize:   cfg.Server.MaxBodyBytes,
			MaxHeaderSize: 1 << 14,
		},
	}, []router.Handler{
		clinicHandler.NewHandler(clinicSvc),
		workshopHandler.NewHandler(workshopSvc),
		bookingHandler.NewHandler(bookingSvc),
		contactHandler.NewHandler(contactSvc),
	}, health.NewHandler(checks), m, reg, appLogger)
	r.Setup()

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		appLogger.Info().Str("addr", srv.Addr).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	appLogger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("Server forced to shutdown")
	}

	stopDispatcher()
	drainCtx, cancelDrain := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelDrain()
	select {
	case <-dispatcherDone:
	case <-drainCtx.Done():
		appLogger.Warn().Msg("Event dispatcher did not drain before shutdown timeout")
	}

	appLogger.Info().Msg("Server exited properly")
}
