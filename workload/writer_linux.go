//go:build linux

package workload

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Writer writes a fixed block at increasing offsets using pwritev.
type Writer struct {
	file     *os.File
	fd       int
	block    []byte
	offset   int64
	capacity int64
	direct   bool
	errors   int64
}

// NewWriter opens cfg.Path for positional writes. When cfg.Direct is set the
// file is opened with O_DIRECT|O_DSYNC; filesystems that refuse O_DIRECT
// (tmpfs) fall back to O_DSYNC only.
func NewWriter(cfg WriterConfig) (*Writer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := ensureDir(cfg.Path); err != nil {
		return nil, err
	}

	flags := unix.O_WRONLY | unix.O_CREAT | unix.O_TRUNC
	direct := cfg.Direct
	if direct {
		flags |= unix.O_DIRECT | unix.O_DSYNC
	}

	fd, err := unix.Open(cfg.Path, flags, 0o644)
	if err != nil && direct && errors.Is(err, unix.EINVAL) {
		direct = false
		fd, err = unix.Open(cfg.Path, flags&^unix.O_DIRECT, 0o644)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", cfg.Path, err)
	}

	file := os.NewFile(uintptr(fd), cfg.Path)
	if file == nil {
		_ = unix.Close(fd)
		return nil, fmt.Errorf("failed to create file descriptor")
	}

	block := allocAligned(cfg.BlockSize)
	for i := range block {
		block[i] = byte(i)
	}

	return &Writer{
		file:     file,
		fd:       fd,
		block:    block,
		capacity: cfg.Capacity,
		direct:   direct,
	}, nil
}

// Write writes the block at the current offset.
func (w *Writer) Write() (int, error) {
	n, err := unix.Pwritev(w.fd, [][]byte{w.block}, w.offset)
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
