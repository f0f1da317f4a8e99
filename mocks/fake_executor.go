//+build !release

package mocks

// Fake executor runs jobs synchronously on the caller goroutine.
type fakeExecutor struct {
	jobsRun int
}

func (f *fakeExecutor) Submit(job func() error) <-chan error {
	f.jobsRun++
	res := make(chan error, 1)
	res <- job()
	return res
}

func (f *fakeExecutor) Stop() {
}

// JobsRun returns number of executed jobs.
func (f *fakeExecutor) JobsRun() int {
	return f.jobsRun
}

// FakeNewExecutor creates a fake executor provider.
func FakeNewExecutor() *fakeExecutor {
	return &fakeExecutor{}
}
