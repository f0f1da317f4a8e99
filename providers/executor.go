package providers

// IExecutorProvider defines a bounded pool for blocking device operations.
// Submit never blocks the caller; the returned channel receives the job
// result once a pool slot ran it. A job which already started is not
// aborted when the waiter gives up.
type IExecutorProvider interface {
	Submit(job func() error) <-chan error
	Stop()
}
