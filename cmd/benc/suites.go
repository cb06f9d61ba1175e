package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/neehar-mavuduru/benc/bench"
	"github.com/neehar-mavuduru/benc/workload"
)

// environment carries what suites need beyond the parent suite.
type environment struct {
	scratchDir string
	logger     *slog.Logger
}

// suiteDef is a built-in suite. run adds the suite as a group of root.
type suiteDef struct {
	name        string
	description string
	run         func(root *bench.Suite, env *environment) error
}

var builtinSuites = []suiteDef{
	{
		name:        "fib",
		description: "recursive fibonacci of 5 and 10",
		run:         runFibSuite,
	},
	{
		name:        "buffer",
		description: "append into a 64KB buffer: atomic CAS vs mutex",
		run:         runBufferSuite,
	},
	{
		name:        "disk",
		description: "4KB positional writes: direct+dsync vs page cache",
		run:         runDiskSuite,
	},
}

func lookupSuite(name string) (suiteDef, bool) {
	for _, def := range builtinSuites {
		if def.name == name {
			return def, true
		}
	}
	return suiteDef{}, false
}

// result keeps workload return values reachable so calls are not optimized away.
var result int

func fib(n int) {
	result = workload.Fib(n)
}

func runFibSuite(root *bench.Suite, _ *environment) error {
	return root.Group("fib", func(g *bench.Suite) {
		if err := bench.MeasureWith(g, "fast", fib, 5); err != nil {
			return
		}
		_ = bench.MeasureWith(g, "slow", fib, 10)
	}, nil)
}

const (
	bufferCapacity = 64 * 1024
	payloadSize    = 200
)

func runBufferSuite(root *bench.Suite, _ *environment) error {
	payload := make([]byte, payloadSize)
	for i := range payload {
		payload[i] = 'a' + byte(i%26)
	}

	return bench.GroupWith(root, "buffer", func(g *bench.Suite, p []byte) {
		strategies := []struct {
			name   string
			buffer workload.AppendBuffer
		}{
			{"atomic", workload.NewAtomicBuffer(bufferCapacity)},
			{"mutex", workload.NewMutexBuffer(bufferCapacity)},
		}
		for _, st := range strategies {
			if err := bench.MeasureWith(g, st.name, func(b workload.AppendBuffer) {
				workload.AppendOnce(b, p)
			}, st.buffer); err != nil {
				return
			}
		}
	}, payload)
}

func runDiskSuite(root *bench.Suite, env *environment) error {
	dir := env.scratchDir
	if dir == "" {
		tmp, err := os.MkdirTemp("", "benc-disk-*")
		if err != nil {
			return fmt.Errorf("failed to create scratch dir: %w", err)
		}
		defer os.RemoveAll(tmp)
		dir = tmp
	}

	direct, err := workload.NewWriter(workload.WriterConfig{
		Path:   filepath.Join(dir, "direct.bin"),
		Direct: true,
	})
	if err != nil {
		return err
	}
	defer direct.Close()
	if !direct.Direct() {
		env.logger.Warn("O_DIRECT not supported by scratch filesystem, using O_DSYNC only", "dir", dir)
	}

	buffered, err := workload.NewWriter(workload.WriterConfig{
		Path: filepath.Join(dir, "buffered.bin"),
	})
	if err != nil {
		return err
	}
	defer buffered.Close()

	err = root.Group("disk", func(g *bench.Suite) {
		if err := bench.MeasureWith(g, "direct", workload.WriteBlock, direct); err != nil {
			return
		}
		_ = bench.MeasureWith(g, "buffered", workload.WriteBlock, buffered)
	}, nil)
	if err != nil {
		return err
	}

	if n := direct.Errors() + buffered.Errors(); n > 0 {
		return fmt.Errorf("disk suite: %d writes failed", n)
	}
	return nil
}
