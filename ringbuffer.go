package ringbuffer

import (
	"fmt"
	"reflect"
)

// RingBuffer is a generic, fixed-capacity FIFO ring buffer. It never overwrites
// and never grows: Put fails when the buffer is full and Get fails when it is
// empty. A RingBuffer is not safe for concurrent use; see Serialized.
type RingBuffer[T any] struct {
	data []T
	// head is the index where the next item will be added.
	head int
	// tail is the index of the next item to be retrieved.
	tail int
	// isFull is true when the buffer is at capacity. This helps distinguish
	// between a full and an empty buffer when head == tail.
	isFull bool
}

// New creates a new RingBuffer holding at most capacity items. It returns
// ErrInvalidCapacity if capacity is less than 1.
func New[T any](capacity int) (*RingBuffer[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	return &RingBuffer[T]{data: make([]T, capacity)}, nil
}

// MustNew is like New but panics if capacity is invalid.
func MustNew[T any](capacity int) *RingBuffer[T] {
	rb, err := New[T](capacity)
	if err != nil {
		panic(err)
	}
	return rb
}

// Put adds an item to the buffer. It returns ErrInvalidArgument for a nil
// item and ErrBufferFull when no slot is free; in both cases the buffer is
// left unchanged.
func (rb *RingBuffer[T]) Put(item T) error {
	if isNil(item) {
		return ErrInvalidArgument
	}
	if rb.isFull {
		return ErrBufferFull
	}
	rb.data[rb.head] = item
	rb.head = rb.next(rb.head)
	if rb.head == rb.tail {
		rb.isFull = true
	}
	return nil
}

// Get removes and returns the oldest item. It returns the zero value and
// ErrBufferEmpty if there is nothing to read.
func (rb *RingBuffer[T]) Get() (T, error) {
	item, ok := rb.TryGet()
	if !ok {
		return item, ErrBufferEmpty
	}
	return item, nil
}

// TryGet removes and returns the oldest item and true. If the buffer is
// empty, it returns the zero value for the type and false.
func (rb *RingBuffer[T]) TryGet() (T, bool) {
	var zero T
	if rb.IsEmpty() {
		return zero, false
	}
	item := rb.data[rb.tail]
	rb.data[rb.tail] = zero
	rb.tail = rb.next(rb.tail)
	rb.isFull = false
	return item, true
}

// IsEmpty reports whether the buffer holds no items.
func (rb *RingBuffer[T]) IsEmpty() bool {
	return !rb.isFull && rb.head == rb.tail
}

// IsFull reports whether every slot is occupied.
func (rb *RingBuffer[T]) IsFull() bool {
	return rb.isFull
}

// Len returns the number of items currently held.
func (rb *RingBuffer[T]) Len() int {
	switch {
	case rb.isFull:
		return len(rb.data)
	case rb.head >= rb.tail:
		return rb.head - rb.tail
	default:
		return len(rb.data) - (rb.tail - rb.head)
	}
}

// Cap returns the capacity fixed at construction.
func (rb *RingBuffer[T]) Cap() int {
	return len(rb.data)
}

// Snapshot returns a copy of the held items ordered from oldest to newest.
// It does not modify the buffer. An empty buffer yields an empty, non-nil slice.
func (rb *RingBuffer[T]) Snapshot() []T {
	items := make([]T, rb.Len())
	if len(items) == 0 {
		return items
	}
	if rb.head > rb.tail {
		copy(items, rb.data[rb.tail:rb.head])
		return items
	}
	// Wrapped, or full with head == tail.
	copied := copy(items, rb.data[rb.tail:])
	copy(items[copied:], rb.data[:rb.head])
	return items
}

// Drain removes and returns all held items ordered from oldest to newest.
// It returns nil if the buffer is empty.
func (rb *RingBuffer[T]) Drain() []T {
	if rb.IsEmpty() {
		return nil
	}
	items := rb.Snapshot()
	rb.Reset()
	return items
}

// Reset drops every held item and returns the buffer to its initial state.
func (rb *RingBuffer[T]) Reset() {
	clear(rb.data)
	rb.head = 0
	rb.tail = 0
	rb.isFull = false
}

func (rb *RingBuffer[T]) next(i int) int {
	i++
	if i == len(rb.data) {
		return 0
	}
	return i
}

// isNil reports whether v is a nil interface, pointer, map, slice, channel or
// function. Values of other kinds are never nil.
func isNil[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
