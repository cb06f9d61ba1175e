package workload

import (
	"sync"
	"sync/atomic"
)

// AppendBuffer is a fixed-capacity append-only byte buffer.
type AppendBuffer interface {
	// Write appends p. It returns the bytes written and whether the buffer
	// is full and must be reset before accepting more data.
	Write(p []byte) (n int, full bool)
	Reset()
	Bytes() []byte
	IsFull() bool
}

// AtomicBuffer reserves space with compare-and-swap on the write offset.
type AtomicBuffer struct {
	data     []byte
	offset   atomic.Int32
	capacity int32
	full     atomic.Bool
}

// NewAtomicBuffer creates a buffer holding up to capacity bytes.
func NewAtomicBuffer(capacity int) *AtomicBuffer {
	return &AtomicBuffer{
		data:     make([]byte, capacity),
		capacity: int32(capacity),
	}
}

// Write appends p if it fits in the remaining space.
func (b *AtomicBuffer) Write(p []byte) (int, bool) {
	if len(p) == 0 {
		return 0, false
	}

	for {
		if b.full.Load() {
			return 0, true
		}

		current := b.offset.Load()
		next := current + int32(len(p))
		if next > b.capacity {
			b.full.Store(true)
			return 0, true
		}

		if !b.offset.CompareAndSwap(current, next) {
			continue
		}

		copy(b.data[current:next], p)
		if next >= b.capacity {
			b.full.Store(true)
			return len(p), true
		}
		return len(p), false
	}
}

// Reset clears the buffer for reuse.
func (b *AtomicBuffer) Reset() {
	b.offset.Store(0)
	b.full.Store(false)
}

// Bytes returns the written portion of the buffer.
func (b *AtomicBuffer) Bytes() []byte {
	return b.data[:b.offset.Load()]
}

// IsFull reports whether the buffer rejected a write for lack of space.
func (b *AtomicBuffer) IsFull() bool {
	return b.full.Load()
}

// MutexBuffer serializes writers with a mutex.
type MutexBuffer struct {
	mu     sync.Mutex
	data   []byte
	offset int
	full   bool
}

// NewMutexBuffer creates a buffer holding up to capacity bytes.
func NewMutexBuffer(capacity int) *MutexBuffer {
	return &MutexBuffer{data: make([]byte, capacity)}
}

// Write appends p if it fits in the remaining space.
func (b *MutexBuffer) Write(p []byte) (int, bool) {
	if len(p) == 0 {
		return 0, false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.full {
		return 0, true
	}
	next := b.offset + len(p)
	if next > len(b.data) {
		b.full = true
		return 0, true
	}

	copy(b.data[b.offset:next], p)
	b.offset = next
	if next >= len(b.data) {
		b.full = true
		return len(p), true
	}
	return len(p), false
}

// Reset clears the buffer for reuse.
func (b *MutexBuffer) Reset() {
	b.mu.Lock()
	b.offset = 0
	b.full = false
	b.mu.Unlock()
}

// Bytes returns the written portion of the buffer.
func (b *MutexBuffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.data[:b.offset]
}

// IsFull reports whether the buffer rejected a write for lack of space.
func (b *MutexBuffer) IsFull() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.full
}

// AppendOnce writes p into b, resetting b first when it reports full. It is
// the unit of work timed for buffer strategies.
func AppendOnce(b AppendBuffer, p []byte) {
	if _, full := b.Write(p); full {
		b.Reset()
	}
}
