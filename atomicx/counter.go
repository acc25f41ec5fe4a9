package atomicx

import "sync/atomic"

// Counter is a lock-free, non-negative accumulator used for Wood's
// ongoing-work reservation count. It is a
// counting reservation, not a mutex: many holders may increment it at once,
// the zero value only ever means "nobody is holding it right now."
type Counter struct {
	val uint32
}

// Add adds delta (which may be negative) and returns the new value.
func (c *Counter) Add(delta int32) uint32 {
	return atomic.AddUint32(&c.val, uint32(delta))
}

// Load reads the current value.
func (c *Counter) Load() uint32 {
	return atomic.LoadUint32(&c.val)
}

// IsZero reports whether the counter currently reads zero.
func (c *Counter) IsZero() bool {
	return c.Load() == 0
}

// Counter64 is the u64 variant used for Wood.TotalPicked, where the count is
// monotonically increasing and never decremented.
type Counter64 struct {
	val uint64
}

// Add adds delta and returns the new value.
func (c *Counter64) Add(delta uint64) uint64 {
	return atomic.AddUint64(&c.val, delta)
}

// Load reads the current value.
func (c *Counter64) Load() uint64 {
	return atomic.LoadUint64(&c.val)
}
