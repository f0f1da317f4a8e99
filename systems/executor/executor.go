// Package executor contains a bounded pool for blocking device operations.
// Command dispatch must not block the hub's event loops, so every
// integration call which may perform hardware or network I/O is
// submitted here and awaited through the returned channel.
package executor

import (
	"context"

	"github.com/lockhub-io/server/plugins/common"
	"github.com/lockhub-io/server/providers"
	"golang.org/x/sync/semaphore"
)

const (
	// Logger system.
	logSystem = "executor"
)

// Executor implementation.
type provider struct {
	logger common.ILoggerProvider
	slots  *semaphore.Weighted

	ctx    context.Context
	cancel context.CancelFunc
}

// ConstructExecutor has data required for a new executor.
type ConstructExecutor struct {
	Logger  common.ILoggerProvider
	Workers int
}

// NewExecutor constructs a new bounded executor.
func NewExecutor(ctor *ConstructExecutor) providers.IExecutorProvider {
	workers := ctor.Workers
	if workers <= 0 {
		workers = 4
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &provider{
		logger: ctor.Logger,
		slots:  semaphore.NewWeighted(int64(workers)),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Submit schedules a blocking job on the pool.
// The result channel is buffered, so an abandoned waiter never
// blocks the pool slot. A job which already acquired a slot runs
// to completion even if the executor is stopped meanwhile.
func (p *provider) Submit(job func() error) <-chan error {
	result := make(chan error, 1)

	go func() {
		if err := p.slots.Acquire(p.ctx, 1); err != nil {
			p.logger.Warn("Executor is stopped, job rejected", common.LogSystemToken, logSystem)
			result <- err
			return
		}

		defer p.slots.Release(1)
		result <- job()
	}()

	return result
}

// Stop rejects all queued jobs which did not acquire a slot yet.
func (p *provider) Stop() {
	p.cancel()
}
