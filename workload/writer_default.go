//go:build !linux

package workload

import (
	"fmt"
	"os"
)

// Writer writes a fixed block at increasing offsets using WriteAt.
// Direct I/O is not available on this platform; Direct only adds O_SYNC.
type Writer struct {
	file     *os.File
	block    []byte
	offset   int64
	capacity int64
	direct   bool
	errors   int64
}

// NewWriter opens cfg.Path for positional writes.
func NewWriter(cfg WriterConfig) (*Writer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := ensureDir(cfg.Path); err != nil {
		return nil, err
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if cfg.Direct {
		flags |= os.O_SYNC
	}
	file, err := os.OpenFile(cfg.Path, flags, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", cfg.Path, err)
	}

	block := allocAligned(cfg.BlockSize)
	for i := range block {
		block[i] = byte(i)
	}

	return &Writer{
		file:     file,
		block:    block,
		capacity: cfg.Capacity,
	}, nil
}

// Write writes the block at the current offset.
func (w *Writer) Write() (int, error) {
	n, err := w.file.WriteAt(w.block, w.offset)
	if err != nil {
		return n, fmt.Errorf("write failed: %w", err)
	}
	w.advance(n)
	return n, nil
}

// Close closes the file.
func (w *Writer) Close() error {
	return w.file.Close()
}
