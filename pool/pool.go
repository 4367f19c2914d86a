// Package pool exposes a priority aware worker pool which executes tasks drained from a 'queue.Queue', the most
// urgent tasks are always dispatched first.
package pool

import (
	"context"
	"sync"
	"time"

	"github.com/couchbase/taskq/log"
	"github.com/couchbase/taskq/maths"
	"github.com/couchbase/taskq/queue"
)

// Task is a unit of work executed by the worker pool, where possible, the task should honor the cancellation of the
// given context and return as quickly/cleanly as possible.
type Task func(ctx context.Context) error

// Pool is a worker pool which concurrently executes tasks drained from a priority task queue using a configurable
// number of workers.
//
// NOTE: Fails fast in the event of an error, the pool stops dispatching tasks and subsequent calls to 'Stop' return
// the error which caused the pool to stop processing.
type Pool struct {
	opts Options

	queue *queue.Queue[Task]
	err   error

	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	draining chan struct{}
	cleanup  sync.Once

	lock sync.RWMutex
}

// NewPool returns a new worker pool executing tasks drained from the given queue.
//
// NOTE: Tasks may be added to the queue both before the pool is created and concurrently whilst it is running, the
// queue itself never blocks so workers poll with capped exponential backoff whilst it is empty.
func NewPool(q *queue.Queue[Task], opts Options) *Pool {
	// Fill out any missing fields with the sane defaults
	opts.defaults()

	ctx, cancel := context.WithCancel(opts.Context)

	pool := &Pool{
		opts:     opts,
		queue:    q,
		draining: make(chan struct{}),
		ctx:      ctx,
		cancel:   cancel,
	}

	pool.wg.Add(opts.Size)

	for w := 0; w < opts.Size; w++ {
		go pool.work()
	}

	return pool
}

// work processes queued tasks until it hits the first error, at which point the pool will begin teardown.
func (p *Pool) work() {
	defer p.wg.Done()

	backoff := p.opts.PollInterval

	for p.ctx.Err() == nil {
		// Both empty queue contracts surface here as a nil item, the error carries no extra information
		item, _ := p.queue.Take()

		if item == nil {
			if p.stopping() {
				return
			}

			p.sleep(backoff)
			backoff = maths.Min(backoff*2, p.opts.MaxPollInterval)

			continue
		}

		backoff = p.opts.PollInterval

		if err := p.wait(); err != nil {
			if p.ctx.Err() == nil && !p.setErr(err) {
				p.logf(log.LevelError, "%s Failed to wait for dispatch: %v", p.opts.LogPrefix, err)
			}

			return
		}

		err := item.Payload(p.ctx)

		if err == nil {
			continue
		}

		// The worker pool may already be tearing down, in which case we should log the task error so that it's not
		// missed whilst debugging.
		if !p.setErr(err) {
			p.logf(log.LevelError, "%s Failed to execute %s priority task: %v", p.opts.LogPrefix, item.Priority, err)
		}

		return
	}
}

// Size returns the number of workers in the pool.
func (p *Pool) Size() int {
	return p.opts.Size
}

// Stop the worker pool gracefully, workers continue executing tasks until the queue is empty. Subsequent calls to
// 'Stop' will only return the error which caused the pool to tear down (if there was one).
//
// NOTE: Callers should stop adding tasks before stopping the pool, tasks added whilst draining may or may not be
// executed.
func (p *Pool) Stop() error {
	p.cleanup.Do(func() {
		close(p.draining)
		p.wg.Wait()
		p.cancel()
	})

	return p.getErr()
}

// wait blocks until the rate limiter permits dispatching another task, a nil limiter permits immediately.
func (p *Pool) wait() error {
	if p.opts.RateLimit == nil {
		return nil
	}

	return p.opts.RateLimit.Wait(p.ctx)
}

// sleep waits for the given duration returning early once teardown begins.
func (p *Pool) sleep(duration time.Duration) {
	timer := time.NewTimer(duration)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-p.draining:
	case <-p.ctx.Done():
	}
}

// stopping returns a boolean indicating whether 'Stop' has been called.
func (p *Pool) stopping() bool {
	select {
	case <-p.draining:
		return true
	default:
		return false
	}
}

// logf logs via the configured logger falling back to the package level logger.
func (p *Pool) logf(level log.Level, format string, args ...any) {
	if p.opts.Logger != nil {
		p.opts.Logger.Log(level, format, args...)
		return
	}

	log.Logf(level, format, args...)
}

// getErr is a thread safe getter for the internal error attribute.
func (p *Pool) getErr() error {
	p.lock.RLock()
	defer p.lock.RUnlock()

	return p.err
}

// setErr is a thread safe setter for the internal error attribute, returns a boolean indicating if this is the first
// error which indicates that the worker pool has begun tear down.
func (p *Pool) setErr(err error) bool {
	p.lock.Lock()
	defer p.lock.Unlock()

	// This is a secondary error, we're already tearing down ignore the request
	if p.err != nil {
		return false
	}

	// Set the error and begin teardown
	p.err = err
	p.cancel()

	return true
}
