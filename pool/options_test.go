package pool

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/couchbase/taskq/system"
)

func TestOptionsDefaults(t *testing.T) {
	var opts Options

	opts.defaults()

	require.Equal(t, context.Background(), opts.Context)
	require.Equal(t, system.NumCPU(), opts.Size)
	require.Equal(t, 50*time.Millisecond, opts.PollInterval)
	require.Equal(t, 2*time.Second+500*time.Millisecond, opts.MaxPollInterval)
	require.Equal(t, "(pool)", opts.LogPrefix)
	require.Nil(t, opts.RateLimit)
	require.Nil(t, opts.Logger)
}

func TestOptionsDefaultsNotOverridden(t *testing.T) {
	opts := Options{Size: 2, PollInterval: time.Second, MaxPollInterval: time.Minute, LogPrefix: "(custom)"}

	opts.defaults()

	require.Equal(t, 2, opts.Size)
	require.Equal(t, time.Second, opts.PollInterval)
	require.Equal(t, time.Minute, opts.MaxPollInterval)
	require.Equal(t, "(custom)", opts.LogPrefix)
}
