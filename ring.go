package ringbuffer

// Ring is the contract shared by RingBuffer and Serialized.
type Ring[T any] interface {
	// Put appends item, failing with ErrBufferFull when no slot is free.
	Put(item T) error
	// Get removes the oldest item, failing with ErrBufferEmpty when there is none.
	Get() (T, error)
	IsEmpty() bool
	IsFull() bool
	// Len returns the number of items currently held.
	Len() int
	// Cap returns the fixed capacity.
	Cap() int
	// Snapshot returns the held items oldest first without removing them.
	Snapshot() []T
}

// Cleanable is an interface for types that require explicit cleanup
// when they are dropped by a Serialized buffer on Stop.
type Cleanable interface {
	// Cleanup performs any necessary resource release.
	Cleanup()
}

var (
	_ Ring[any] = (*RingBuffer[any])(nil)
	_ Ring[any] = (*Serialized[any])(nil)
)
