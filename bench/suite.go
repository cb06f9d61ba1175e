// Package bench runs named units of work until a target amount of measured
// time has accumulated and ranks them by throughput.
//
// A Suite is created with New, measurements are added with Measure and nested
// suites with Group. Compare finalizes a suite: it prints the ranking when two
// or more measurements exist and releases everything the suite owns.
//
//	b, err := bench.New("bench", bench.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	b.Group("publish", func(g *bench.Suite) {
//		g.Measure("fast", func() { fib(5) })
//		g.Measure("slow", func() { fib(10) })
//	}, nil)
//	b.Compare()
//
// Suites are not safe for concurrent use.
package bench

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/neehar-mavuduru/benc/clock"
)

// Banner is printed once, above the root suite header.
const Banner = "benc.h v1.0.0"

// indentStep is the extra indentation of each nested group.
const indentStep = 2

// ErrSuiteClosed is returned when a finalized suite is used.
var ErrSuiteClosed = errors.New("suite is finalized")

// State is the lifecycle position of a Suite.
type State int

const (
	// Created suites have not yet written their header.
	Created State = iota
	// Active suites accept measurements and groups.
	Active
	// Finalizing suites are producing their ranking.
	Finalizing
	// Destroyed suites have released their measurements.
	Destroyed
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case Created:
		return "created"
	case Active:
		return "active"
	case Finalizing:
		return "finalizing"
	case Destroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Suite is a named group of measurements and nested groups.
type Suite struct {
	name   string
	out    io.Writer
	indent int
	data   any
	target time.Duration
	path   []string

	measurements *List[*Measurement]

	cfg      Config
	clock    clock.Clock
	logger   *slog.Logger
	observer Observer

	state State
	// err is the first fatal error; once set the suite only reports it.
	err error
}

// New creates a root suite and writes the banner and suite header.
func New(name string, cfg Config) (*Suite, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return newSuite(name, cfg, 0, []string{name})
}

// Run creates a root suite, passes it to fn and finalizes it when fn returns.
// It returns the first error recorded by the suite.
func Run(name string, cfg Config, fn func(*Suite)) error {
	s, err := New(name, cfg)
	if err != nil {
		return err
	}
	fn(s)
	return s.Compare()
}

func newSuite(name string, cfg Config, indent int, path []string) (*Suite, error) {
	list, err := NewList[*Measurement](cfg.InitialCapacity, cfg.MaxMeasurements)
	if err != nil {
		return nil, fmt.Errorf("create measurement list: %w", err)
	}

	s := &Suite{
		name:         name,
		out:          cfg.Output,
		indent:       indent,
		data:         cfg.Data,
		target:       cfg.TargetDuration,
		path:         path,
		measurements: list,
		cfg:          cfg,
		clock:        cfg.Clock,
		logger:       cfg.Logger.With("suite", strings.Join(path, "/")),
		observer:     cfg.Observer,
		state:        Created,
	}

	if indent == 0 {
		if err := s.printf("%s\n", Banner); err != nil {
			return nil, err
		}
	}
	if err := s.printf("%s# %s\n", s.pad(), name); err != nil {
		return nil, err
	}

	s.state = Active
	s.logger.Debug("suite created", "indent", indent, "target", s.target)
	return s, nil
}

// Group runs fn against a nested suite named name and finalizes the nested
// suite before returning. The nested suite inherits the output, clock, logger,
// observer and target duration; data is exposed through its Data method.
func (s *Suite) Group(name string, fn func(*Suite), data any) error {
	if err := s.usable(); err != nil {
		return err
	}

	cfg := s.cfg
	cfg.Data = data
	cfg.TargetDuration = s.target

	child, err := newSuite(name, cfg, s.indent+indentStep, append(slices.Clone(s.path), name))
	if err != nil {
		return s.fail(fmt.Errorf("group %q: %w", name, err))
	}

	fn(child)

	err = child.err
	if child.state == Active {
		err = child.Compare()
	}
	if err != nil {
		return s.fail(fmt.Errorf("group %q: %w", name, err))
	}
	return nil
}

// GroupWith is Group with a typed value handed to fn.
func GroupWith[T any](s *Suite, name string, fn func(*Suite, T), data T) error {
	return s.Group(name, func(child *Suite) { fn(child, data) }, data)
}

// Name returns the suite name.
func (s *Suite) Name() string {
	return s.name
}

// Path returns the suite names from the root down to this suite.
func (s *Suite) Path() []string {
	return slices.Clone(s.path)
}

// Indent returns the number of spaces the suite's lines are indented by.
func (s *Suite) Indent() int {
	return s.indent
}

// Data returns the opaque value the suite was created with.
func (s *Suite) Data() any {
	return s.data
}

// TargetDuration returns the accumulated measured time each measurement
// samples for.
func (s *Suite) TargetDuration() time.Duration {
	return s.target
}

// SetTargetDuration changes the target for subsequent measurements and groups.
// Non-positive values are ignored.
func (s *Suite) SetTargetDuration(d time.Duration) {
	if d > 0 {
		s.target = d
	}
}

// State returns the lifecycle state.
func (s *Suite) State() State {
	return s.state
}

// Err returns the first fatal error recorded by the suite, if any.
func (s *Suite) Err() error {
	return s.err
}

// Measurements returns the summaries of the suite's measurements in the order
// they were run. It is empty once the suite is finalized.
func (s *Suite) Measurements() []Summary {
	out := make([]Summary, 0, s.measurements.Len())
	for _, m := range s.measurements.All() {
		out = append(out, m.Summary())
	}
	return out
}

func (s *Suite) usable() error {
	if s.state != Active {
		return ErrSuiteClosed
	}
	return s.err
}

// fail records err as the suite's fatal error unless one is already set.
func (s *Suite) fail(err error) error {
	if s.err == nil {
		s.err = err
		s.logger.Error("suite failed", "error", err)
	}
	return err
}

func (s *Suite) pad() string {
	return strings.Repeat(" ", s.indent)
}

func (s *Suite) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(s.out, format, args...); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// flush pushes buffered output to the sink when the sink buffers.
func (s *Suite) flush() error {
	f, ok := s.out.(interface{ Flush() error })
	if !ok {
		return nil
	}
	if err := f.Flush(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}
	return nil
}
