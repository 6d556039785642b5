package pkg

// A Runnable is a long-lived component with an explicit start and an
// observable end of life. Err reports why Done closed.
type Runnable interface {
	Start() error
	Done() <-chan struct{}
	Err() error
}
