package workload

import (
	"fmt"
	"os"
	"path/filepath"
	"unsafe"
)

// blockSize is the alignment required for direct I/O on common filesystems.
const blockSize = 4096

// WriterConfig holds the configuration for a positional file writer
type WriterConfig struct {
	// Path is the scratch file written to (required)
	Path string

	// BlockSize is the size of each write, rounded up to 4096 bytes (default: 4096)
	BlockSize int

	// Capacity is the file size after which writes wrap to offset 0 (default: 4MB)
	Capacity int64

	// Direct requests O_DIRECT|O_DSYNC where the platform supports it
	Direct bool
}

// Validate fills in defaults and checks required fields
func (c *WriterConfig) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("writer path is required")
	}
	if c.BlockSize <= 0 {
		c.BlockSize = blockSize
	}
	c.BlockSize = int(alignUp(int64(c.BlockSize), blockSize))
	if c.Capacity <= 0 {
		c.Capacity = 4 * 1024 * 1024
	}
	if c.Capacity < int64(c.BlockSize) {
		c.Capacity = int64(c.BlockSize)
	}
	return nil
}

// alignUp rounds n up to the next multiple of align (power of 2).
func alignUp(n, align int64) int64 {
	return (n + align - 1) &^ (align - 1)
}

// allocAligned allocates a byte slice whose first byte is aligned to
// blockSize, as O_DIRECT requires.
func allocAligned(size int) []byte {
	buf := make([]byte, size+blockSize)
	addr := uintptr(unsafe.Pointer(&buf[0]))
	offset := int(blockSize - addr%blockSize)
	if offset == blockSize {
		offset = 0
	}
	return buf[offset : offset+size]
}

func ensureDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// WriteBlock writes one block at the writer's current offset. It is the unit
// of work timed for disk strategies; errors are counted rather than returned.
func WriteBlock(w *Writer) {
	if _, err := w.Write(); err != nil {
		w.errors++
	}
}

// Errors returns the number of failed writes made through WriteBlock.
func (w *Writer) Errors() int64 {
	return w.errors
}

// Block returns the buffer written by every Write call.
func (w *Writer) Block() []byte {
	return w.block
}

// Offset returns the position of the next write.
func (w *Writer) Offset() int64 {
	return w.offset
}

// Direct reports whether the file was opened for direct I/O.
func (w *Writer) Direct() bool {
	return w.direct
}

// advance moves the offset past n bytes, wrapping at capacity.
func (w *Writer) advance(n int) {
	w.offset += int64(n)
	if w.offset+int64(len(w.block)) > w.capacity {
		w.offset = 0
	}
}
