/*
Package ringbuffer provides a generic, fixed-capacity FIFO circular buffer.

A RingBuffer never overwrites and never grows. When every slot is occupied,
Put fails with ErrBufferFull; when nothing is held, Get fails with
ErrBufferEmpty. A failed call leaves the buffer exactly as it was, so the caller
decides whether to retry, drop or propagate.

It uses Go's generics, allowing it to store elements of any type.

Usage:

Create a new ring buffer of a specific type and capacity:

	rb, err := ringbuffer.New[string](3)
	if err != nil {
		// capacity was less than 1
	}

Add and retrieve items in FIFO order:

	_ = rb.Put("hello")
	_ = rb.Put("world")

	item, err := rb.Get() // "hello"

Errors are sentinel values and are matched with errors.Is:

	if err := rb.Put(item); errors.Is(err, ringbuffer.ErrBufferFull) {
		// drop, retry later, or report upstream
	}

Nil pointers, maps, slices, channels, functions and interfaces are rejected
with ErrInvalidArgument.

Snapshots:

Snapshot returns a copy of the held items ordered from oldest to newest
without removing them. Drain does the same but also empties the buffer.

	items := rb.Snapshot()
	fmt.Printf("Holding %d items.\n", len(items))

Concurrent Use:

A RingBuffer is not safe for concurrent use. Serialized wraps one in a
background goroutine and serializes every call through channels. It keeps the
same non-blocking semantics: Put and Get still fail immediately instead of
waiting.

	s, err := ringbuffer.NewSerialized[*MyResource](5)
	if err != nil {
		// ...
	}
	defer s.Stop() // Clean up the background goroutine when done.

Automatic Cleanup:

Types that require cleanup (e.g., to release file handles or network connections)
can implement the `Cleanable` interface. The `Cleanup()` method will be called
on every item still held by a Serialized buffer when `Stop()` is called.

	type MyResource struct {
		// ... fields
	}

	func (r *MyResource) Cleanup() {
		// ... release resources here
	}
*/
package ringbuffer
