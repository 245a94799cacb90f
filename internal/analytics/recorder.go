package analytics

import (
	"context"
	"sync"
	"time"

	"github.com/MrSnakeDoc/sharelink/internal/domain"
	"github.com/MrSnakeDoc/sharelink/internal/logger"
)

const (
	// DefaultRedisTimeout bounds a single Redis write.
	DefaultRedisTimeout = 500 * time.Millisecond
	// DefaultQueueSize is how many events may wait for the Redis worker.
	DefaultQueueSize = 256
)

// Recorder tracks user actions. Record never fails from the caller's point
// of view: implementations absorb their own errors.
type Recorder interface {
	Record(ctx context.Context, ev domain.AnalyticsEvent)
}

// RecorderFunc adapts a function to Recorder.
type RecorderFunc func(ctx context.Context, ev domain.AnalyticsEvent)

func (f RecorderFunc) Record(ctx context.Context, ev domain.AnalyticsEvent) { f(ctx, ev) }

// Multi fans an event out to every non-nil recorder, in order.
func Multi(recorders ...Recorder) Recorder {
	list := make([]Recorder, 0, len(recorders))
	for _, r := range recorders {
		if r != nil {
			list = append(list, r)
		}
	}
	return RecorderFunc(func(ctx context.Context, ev domain.AnalyticsEvent) {
		for _, r := range list {
			r.Record(ctx, ev)
		}
	})
}

// Nop discards events.
var Nop Recorder = RecorderFunc(func(context.Context, domain.AnalyticsEvent) {})

// LogRecorder writes one info line per event.
type LogRecorder struct {
	log logger.Logger
}

func NewLogRecorder(log logger.Logger) *LogRecorder {
	return &LogRecorder{log: log}
}

func (r *LogRecorder) Record(_ context.Context, ev domain.AnalyticsEvent) {
	r.log.Info("[Analytics] "+ev.Category+" - "+ev.Action+" - "+ev.Label,
		logger.String("action", ev.Action),
		logger.String("category", ev.Category),
		logger.String("label", ev.Label))
}

// EventIncrementer persists one analytics event (see redis.Store).
type EventIncrementer interface {
	IncrementEvent(ctx context.Context, ev domain.AnalyticsEvent) error
}

// RedisRecorder increments counters in Redis from a single background worker.
// Record only enqueues; when the queue is full the event is dropped. Write
// failures are logged at debug.
type RedisRecorder struct {
	store   EventIncrementer
	log     logger.Logger
	timeout time.Duration

	queue    chan domain.AnalyticsEvent
	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce sync.Once
}

func NewRedisRecorder(store EventIncrementer, log logger.Logger, timeout time.Duration) *RedisRecorder {
	return newRedisRecorder(store, log, timeout, DefaultQueueSize)
}

func newRedisRecorder(store EventIncrementer, log logger.Logger, timeout time.Duration, size int) *RedisRecorder {
	if timeout <= 0 {
		timeout = DefaultRedisTimeout
	}
	r := &RedisRecorder{
		store:   store,
		log:     log,
		timeout: timeout,
		queue:   make(chan domain.AnalyticsEvent, size),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
	go r.run()
	return r
}

// Record enqueues ev and returns immediately.
func (r *RedisRecorder) Record(_ context.Context, ev domain.AnalyticsEvent) {
	select {
	case <-r.stopCh:
		r.log.Debug("redis recorder closed, dropping analytics event",
			logger.String("action", ev.Action))
		return
	default:
	}

	select {
	case r.queue <- ev:
	default:
		r.log.Debug("redis recorder queue full, dropping analytics event",
			logger.String("action", ev.Action))
	}
}

// Close stops the worker after it has written every queued event.
func (r *RedisRecorder) Close() {
	r.stopOnce.Do(func() { close(r.stopCh) })
	<-r.doneCh
}

func (r *RedisRecorder) run() {
	defer close(r.doneCh)
	for {
		select {
		case ev := <-r.queue:
			r.write(ev)
		case <-r.stopCh:
			for {
				select {
				case ev := <-r.queue:
					r.write(ev)
				default:
					return
				}
			}
		}
	}
}

func (r *RedisRecorder) write(ev domain.AnalyticsEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if err := r.store.IncrementEvent(ctx, ev); err != nil {
		r.log.Debug("failed to record analytics event in redis",
			logger.String("action", ev.Action),
			logger.Error(err))
	}
}
