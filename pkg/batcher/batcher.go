// Package batcher provides a generic buffered batch processor with rate limiting.
package batcher

import (
	"context"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Batcher buffers items and flushes them when the buffer reaches capacity or
// the flush interval elapses, whichever comes first. Flushes are rate limited.
type Batcher[T any] struct {
	flush         func(context.Context, []T) error
	items         chan T
	capacity      int
	flushInterval time.Duration
	limiter       ratelimit.Limiter
	logger        *zap.Logger

	wg   sync.WaitGroup
	stop chan struct{}
}

// New constructs a Batcher flushing through cb.
func New[T any](logger *zap.Logger, cb func(context.Context, []T) error, capacity int, flushInterval time.Duration, flushesPerSecond int) *Batcher[T] {
	return &Batcher[T]{
		logger:        logger,
		flush:         cb,
		items:         make(chan T, capacity*2),
		capacity:      capacity,
		flushInterval: flushInterval,
		limiter:       ratelimit.New(flushesPerSecond),
		stop:          make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop flushes the remaining buffer and stops the loop.
func (b *Batcher[T]) Stop() {
	close(b.stop)
	b.wg.Wait()
}

// Add queues an item, respecting context cancellation. Adding to a stopped
// Batcher returns context.Canceled.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return context.Canceled
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case b.items <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.flushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.capacity)

	flush := func() {
		if len(buf) == 0 {
			return
		}

		b.limiter.Take()
		if err := b.flush(ctx, buf); err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(buf)), zap.Error(err))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		}
		buf = buf[:0]
	}

	for {
		select {
		case <-ctx.Done():
			flush()
			return

		case <-b.stop:
			// Drain whatever Add managed to queue before Stop.
			for {
				select {
				case item := <-b.items:
					buf = append(buf, item)
					if len(buf) >= b.capacity {
						flush()
					}
				default:
					flush()
					return
				}
			}

		case item := <-b.items:
			buf = append(buf, item)
			if len(buf) >= b.capacity {
				flush()
			}

		case <-ticker.C:
			flush()
		}
	}
}
