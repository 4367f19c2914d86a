package pool

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/couchbase/taskq/log"
	"github.com/couchbase/taskq/system"
)

// Options encapsulates the available options which can be used when creating a worker pool.
type Options struct {
	// Context used by the worker pool, if omitted a background context will be used.
	Context context.Context

	// Size dictates the number of goroutines created to process queued tasks. Defaults to the number of vCPUs.
	Size int

	// PollInterval is the initial amount of time a worker waits before re-checking an empty queue. Defaults to 50ms.
	PollInterval time.Duration

	// MaxPollInterval caps the backoff applied whilst the queue remains empty. Defaults to 2.5s.
	MaxPollInterval time.Duration

	// RateLimit limits how quickly tasks are dispatched to workers, when omitted dispatch is not limited.
	RateLimit *rate.Limiter

	// LogPrefix is the prefix used when logging errors which occur once teardown has already begun. Defaults to
	// '(pool)'.
	LogPrefix string

	// Logger used by the pool, when omitted the package level logger from 'log' is used.
	Logger log.Logger
}

// defaults fills any missing attributes to a sane default.
func (o *Options) defaults() {
	if o.Context == nil {
		o.Context = context.Background()
	}

	if o.Size == 0 {
		o.Size = system.NumCPU()
	}

	if o.PollInterval == 0 {
		o.PollInterval = 50 * time.Millisecond
	}

	if o.MaxPollInterval == 0 {
		o.MaxPollInterval = 2*time.Second + 500*time.Millisecond
	}

	if o.LogPrefix == "" {
		o.LogPrefix = "(pool)"
	}
}
