package ringbuffer

import "sync"

type putRequest[T any] struct {
	item T
	resp chan error
}

type getResponse[T any] struct {
	item T
	err  error
}

type stateResponse struct {
	empty bool
	full  bool
	n     int
}

// Serialized is a thread-safe wrapper around RingBuffer. A background goroutine
// owns the buffer and every call is serialized through channels, so any number
// of goroutines may produce and consume concurrently. Calls never wait for
// space or data: Put and Get fail immediately with ErrBufferFull and
// ErrBufferEmpty exactly like the underlying RingBuffer.
type Serialized[T any] struct {
	rb *RingBuffer[T]

	putChan      chan putRequest[T]
	getChan      chan chan getResponse[T]
	stateChan    chan chan stateResponse
	snapshotChan chan chan []T
	drainChan    chan chan []T

	stopOnce sync.Once
	done     chan struct{}
	stopped  chan struct{}
}

// NewSerialized creates a Serialized buffer holding at most capacity items
// and starts its background goroutine. Call Stop to release it.
func NewSerialized[T any](capacity int) (*Serialized[T], error) {
	rb, err := New[T](capacity)
	if err != nil {
		return nil, err
	}
	s := &Serialized[T]{
		rb:           rb,
		putChan:      make(chan putRequest[T]),
		getChan:      make(chan chan getResponse[T]),
		stateChan:    make(chan chan stateResponse),
		snapshotChan: make(chan chan []T),
		drainChan:    make(chan chan []T),
		done:         make(chan struct{}),
		stopped:      make(chan struct{}),
	}

	go s.run()

	return s, nil
}

// Put adds an item. It returns ErrStopped after Stop.
func (s *Serialized[T]) Put(item T) error {
	req := putRequest[T]{item: item, resp: make(chan error, 1)}
	if !send(s.done, s.putChan, req) {
		return ErrStopped
	}
	return <-req.resp
}

// Get removes and returns the oldest item. It returns ErrStopped after Stop.
func (s *Serialized[T]) Get() (T, error) {
	respChan := make(chan getResponse[T], 1)
	if !send(s.done, s.getChan, respChan) {
		var zero T
		return zero, ErrStopped
	}
	resp := <-respChan
	return resp.item, resp.err
}

// TryGet removes and returns the oldest item and true, or the zero value and
// false if the buffer is empty or stopped.
func (s *Serialized[T]) TryGet() (T, bool) {
	item, err := s.Get()
	return item, err == nil
}

// IsEmpty reports whether the buffer holds no items.
func (s *Serialized[T]) IsEmpty() bool {
	return s.state().empty
}

// IsFull reports whether every slot is occupied.
func (s *Serialized[T]) IsFull() bool {
	return s.state().full
}

// Len returns the number of items currently held.
func (s *Serialized[T]) Len() int {
	return s.state().n
}

// Cap returns the capacity fixed at construction.
func (s *Serialized[T]) Cap() int {
	return s.rb.Cap()
}

// Snapshot returns a copy of the held items ordered from oldest to newest
// without removing them.
func (s *Serialized[T]) Snapshot() []T {
	respChan := make(chan []T, 1)
	if !send(s.done, s.snapshotChan, respChan) {
		return []T{}
	}
	return <-respChan
}

// Drain atomically removes and returns all held items ordered from oldest to
// newest. The drained items are not cleaned up.
func (s *Serialized[T]) Drain() []T {
	respChan := make(chan []T, 1)
	if !send(s.done, s.drainChan, respChan) {
		return nil
	}
	return <-respChan
}

// Stop shuts down the background goroutine and calls Cleanup() on any
// remaining items that implement the Cleanable interface. It returns once the
// goroutine has exited and is safe to call more than once.
func (s *Serialized[T]) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
	})
	<-s.stopped
}

func (s *Serialized[T]) state() stateResponse {
	respChan := make(chan stateResponse, 1)
	if !send(s.done, s.stateChan, respChan) {
		return stateResponse{empty: true}
	}
	return <-respChan
}

// run is the core loop that serializes access to the buffer.
func (s *Serialized[T]) run() {
	defer close(s.stopped)

	for {
		select {
		case req := <-s.putChan:
			req.resp <- s.rb.Put(req.item)

		case respChan := <-s.getChan:
			item, err := s.rb.Get()
			respChan <- getResponse[T]{item: item, err: err}

		case respChan := <-s.stateChan:
			respChan <- stateResponse{
				empty: s.rb.IsEmpty(),
				full:  s.rb.IsFull(),
				n:     s.rb.Len(),
			}

		case respChan := <-s.snapshotChan:
			respChan <- s.rb.Snapshot()

		case respChan := <-s.drainChan:
			respChan <- s.rb.Drain()

		case <-s.done:
			for _, item := range s.rb.Drain() {
				if cleanable, ok := any(item).(Cleanable); ok {
					cleanable.Cleanup()
				}
			}
			return
		}
	}
}

// send delivers req on ch unless done is closed first.
func send[R any](done <-chan struct{}, ch chan R, req R) bool {
	select {
	case ch <- req:
		return true
	case <-done:
		return false
	}
}
