package executor

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fortytw2/leaktest"
	"github.com/lockhub-io/server/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

// Tests that submitted jobs run and deliver their results.
func TestSubmit(t *testing.T) {
	defer leaktest.CheckTimeout(t, 5*time.Second)()

	ex := NewExecutor(&ConstructExecutor{Logger: mocks.FakeNewLogger(nil), Workers: 2})
	defer ex.Stop()

	err := <-ex.Submit(func() error {
		return nil
	})
	assert.NoError(t, err, "success job")

	testErr := errors.New("device failed")
	err = <-ex.Submit(func() error {
		return testErr
	})
	assert.Equal(t, testErr, err, "failed job")
}

// Tests that pool never runs more jobs than configured.
func TestBoundedConcurrency(t *testing.T) {
	ex := NewExecutor(&ConstructExecutor{Logger: mocks.FakeNewLogger(nil), Workers: 2})
	defer ex.Stop()

	var running int32
	var peak int32
	var wg sync.WaitGroup
	results := make([]<-chan error, 0)

	for ii := 0; ii < 10; ii++ {
		wg.Add(1)
		results = append(results, ex.Submit(func() error {
			defer wg.Done()
			cur := atomic.AddInt32(&running, 1)
			for {
				old := atomic.LoadInt32(&peak)
				if cur <= old || atomic.CompareAndSwapInt32(&peak, old, cur) {
					break
				}
			}

			time.Sleep(50 * time.Millisecond)
			atomic.AddInt32(&running, -1)
			return nil
		}))
	}

	wg.Wait()
	for _, v := range results {
		assert.NoError(t, <-v)
	}

	assert.True(t, atomic.LoadInt32(&peak) <= 2, "peak concurrency")
}

// Tests that stop rejects queued jobs.
func TestStopRejectsQueued(t *testing.T) {
	ex := NewExecutor(&ConstructExecutor{Logger: mocks.FakeNewLogger(nil), Workers: 1})

	started := make(chan bool, 1)
	release := make(chan bool)
	first := ex.Submit(func() error {
		started <- true
		<-release
		return nil
	})

	<-started
	queued := ex.Submit(func() error {
		return nil
	})

	ex.Stop()
	assert.Error(t, <-queued, "queued job")

	close(release)
	assert.NoError(t, <-first, "running job completes after stop")
}
