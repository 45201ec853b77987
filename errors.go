package ringbuffer

import "errors"

var (
	// ErrInvalidCapacity is returned by the constructors for a capacity below 1.
	ErrInvalidCapacity = errors.New("ringbuffer: invalid capacity")
	// ErrInvalidArgument is returned by Put when given a nil value.
	ErrInvalidArgument = errors.New("ringbuffer: invalid argument")
	// ErrBufferFull is returned by Put when every slot is occupied.
	ErrBufferFull = errors.New("ringbuffer: buffer is full")
	// ErrBufferEmpty is returned by Get when there is nothing to read.
	ErrBufferEmpty = errors.New("ringbuffer: buffer is empty")
	// ErrStopped is returned by a Serialized buffer after Stop.
	ErrStopped = errors.New("ringbuffer: buffer is stopped")
)
