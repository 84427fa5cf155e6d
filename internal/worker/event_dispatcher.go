package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jwalitptl/clinic-directory/pkg/messaging"
	"github.com/jwalitptl/clinic-directory/pkg/metrics"
)

type EventDispatcherConfig struct {
	BufferSize    int
	RetryAttempts int
	RetryDelay    time.Duration
}

type event struct {
	eventType string
	payload   interface{}
}

// EventDispatcher is an in-process outbox. Events are queued without blocking
// the request path and published by Start.
type EventDispatcher struct {
	queue     chan event
	publisher messaging.Publisher
	config    EventDispatcherConfig
	logger    zerolog.Logger
	metrics   *metrics.Metrics

	// mu guards stopped; Enqueue holds it shared so no send can race the final drain
	mu      sync.RWMutex
	stopped bool
}

func NewEventDispatcher(
	publisher messaging.Publisher,
	config EventDispatcherConfig,
	logger zerolog.Logger,
	metrics *metrics.Metrics,
) (*EventDispatcher, error) {
	if config.BufferSize <= 0 {
		return nil, fmt.Errorf("buffer size must be greater than 0")
	}
	if config.RetryAttempts <= 0 {
		return nil, fmt.Errorf("retry attempts must be greater than 0")
	}
	if config.RetryDelay < 0 {
		return nil, fmt.Errorf("retry delay must not be negative")
	}

	return &EventDispatcher{
		queue:     make(chan event, config.BufferSize),
		publisher: publisher,
		config:    config,
		logger:    logger,
		metrics:   metrics,
	}, nil
}

// Enqueue reports false when the event was dropped, either because the queue
// is full or because the dispatcher has already stopped.
func (d *EventDispatcher) Enqueue(eventType string, payload interface{}) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		d.metrics.EventsDropped.Inc()
		d.logger.Warn().Str("event_type", eventType).Msg("Event dispatcher stopped, dropping event")
		return false
	}

	select {
	case d.queue <- event{eventType: eventType, payload: payload}:
		d.metrics.EventQueueSize.Set(float64(len(d.queue)))
		return true
	default:
		d.metrics.EventsDropped.Inc()
		d.logger.Warn().Str("event_type", eventType).Msg("Event queue full, dropping event")
		return false
	}
}

// Start publishes queued events until ctx is cancelled, then drains what is
// left in the queue before returning. Events enqueued after that are dropped,
// so cancel ctx only once producers have stopped.
func (d *EventDispatcher) Start(ctx context.Context) {
	d.logger.Info().Msg("Starting event dispatcher")

	for {
		select {
		case <-ctx.Done():
			d.mu.Lock()
			d.stopped = true
			d.mu.Unlock()

			d.drain()
			d.logger.Info().Msg("Shutting down event dispatcher")
			return
		case ev := <-d.queue:
			d.process(ctx, ev)
		}
	}
}

func (d *EventDispatcher) drain() {
	ctx := context.Background()
	for {
		select {
		case ev := <-d.queue:
			d.process(ctx, ev)
		default:
			return
		}
	}
}

func (d *EventDispatcher) process(ctx context.Context, ev event) {
	d.metrics.EventQueueSize.Set(float64(len(d.queue)))

	err := d.retry(ctx, ev.eventType, func() error {
		return d.publisher.Publish(ctx, ev.eventType, ev.payload)
	})
	if err != nil {
		d.metrics.EventsFailed.Inc()
		d.logger.Error().Err(err).Str("event_type", ev.eventType).Msg("Failed to publish event")
		return
	}

	d.metrics.EventsPublished.Inc()
	d.logger.Debug().Str("event_type", ev.eventType).Msg("Event published")
}

func (d *EventDispatcher) retry(ctx context.Context, eventType string, fn func() error) error {
	var err error
	for i := 0; i < d.config.RetryAttempts; i++ {
		if i > 0 {
			d.metrics.EventRetries.WithLabelValues(eventType).Inc()
		}
		if err = fn(); err == nil {
			return nil
		}
		if i < d.config.RetryAttempts-1 {
			select {
			case <-ctx.Done():
				return err
			case <-time.After(d.config.RetryDelay):
			}
		}
	}
	return err
}
