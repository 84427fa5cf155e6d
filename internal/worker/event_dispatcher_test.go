package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-directory/pkg/metrics"
)

type fakePublisher struct {
	mu       sync.Mutex
	failures int
	calls    int
	types    []string
}

func (f *fakePublisher) Publish(_ context.Context, eventType string, _ interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failures > 0 {
		f.failures--
		return errors.New("broker unavailable")
	}
	f.types = append(f.types, eventType)
	return nil
}

func (f *fakePublisher) Close() error { return nil }

func (f *fakePublisher) published() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.types...)
}

func newDispatcher(t *testing.T, pub *fakePublisher, cfg EventDispatcherConfig) (*EventDispatcher, *metrics.Metrics) {
	t.Helper()
	m := metrics.NewNop()
	d, err := NewEventDispatcher(pub, cfg, zerolog.Nop(), m)
	require.NoError(t, err)
	return d, m
}

func TestNewEventDispatcher_InvalidConfig(t *testing.T) {
	_, err := NewEventDispatcher(&fakePublisher{}, EventDispatcherConfig{BufferSize: 0, RetryAttempts: 1}, zerolog.Nop(), metrics.NewNop())
	assert.Error(t, err)

	_, err = NewEventDispatcher(&fakePublisher{}, EventDispatcherConfig{BufferSize: 1, RetryAttempts: 0}, zerolog.Nop(), metrics.NewNop())
	assert.Error(t, err)
}

func TestEventDispatcher_PublishesQueuedEvents(t *testing.T) {
	pub := &fakePublisher{}
	d, m := newDispatcher(t, pub, EventDispatcherConfig{BufferSize: 10, RetryAttempts: 1})

	require.True(t, d.Enqueue("booking.created", map[string]string{"id": "1"}))
	require.True(t, d.Enqueue("booking.created", map[string]string{"id": "2"}))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		d.Start(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return len(pub.published()) == 2 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done

	assert.Equal(t, 2.0, testutil.ToFloat64(m.EventsPublished))
}

func TestEventDispatcher_RetriesThenSucceeds(t *testing.T) {
	pub := &fakePublisher{failures: 2}
	d, m := newDispatcher(t, pub, EventDispatcherConfig{BufferSize: 1, RetryAttempts: 3, RetryDelay: time.Millisecond})

	d.process(context.Background(), event{eventType: "booking.created"})

	assert.Equal(t, 3, pub.calls)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsPublished))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.EventRetries.WithLabelValues("booking.created")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.EventsFailed))
}

func TestEventDispatcher_GivesUpAfterRetries(t *testing.T) {
	pub := &fakePublisher{failures: 5}
	d, m := newDispatcher(t, pub, EventDispatcherConfig{BufferSize: 1, RetryAttempts: 2, RetryDelay: time.Millisecond})

	d.process(context.Background(), event{eventType: "booking.created"})

	assert.Equal(t, 2, pub.calls)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsFailed))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.EventsPublished))
}

func TestEventDispatcher_DropsWhenFull(t *testing.T) {
	d, m := newDispatcher(t, &fakePublisher{}, EventDispatcherConfig{BufferSize: 1, RetryAttempts: 1})

	assert.True(t, d.Enqueue("booking.created", nil))
	assert.False(t, d.Enqueue("booking.created", nil))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsDropped))
}

func TestEventDispatcher_DrainsOnShutdown(t *testing.T) {
	pub := &fakePublisher{}
	d, _ := newDispatcher(t, pub, EventDispatcherConfig{BufferSize: 5, RetryAttempts: 1})

	for i := 0; i < 3; i++ {
		require.True(t, d.Enqueue("booking.created", i))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d.Start(ctx)

	assert.Len(t, pub.published(), 3)
}

func TestEventDispatcher_EnqueueAfterStopIsDropped(t *testing.T) {
	pub := &fakePublisher{}
	d, m := newDispatcher(t, pub, EventDispatcherConfig{BufferSize: 5, RetryAttempts: 1})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d.Start(ctx)

	assert.False(t, d.Enqueue("booking.created", map[string]string{"id": "late"}))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsDropped))
	assert.Empty(t, pub.published())
	assert.Zero(t, len(d.queue))
}

func TestEventDispatcher_ConcurrentEnqueueDuringShutdown(t *testing.T) {
	pub := &fakePublisher{}
	d, m := newDispatcher(t, pub, EventDispatcherConfig{BufferSize: 1000, RetryAttempts: 1})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		d.Start(ctx)
		close(done)
	}()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if d.Enqueue("booking.created", nil) {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	cancel()
	wg.Wait()
	<-done

	// every event is either published or counted as dropped
	assert.Len(t, pub.published(), accepted)
	assert.Equal(t, float64(50-accepted), testutil.ToFloat64(m.EventsDropped))
}
