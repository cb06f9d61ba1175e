package bench

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/neehar-mavuduru/benc/clock"
)

// DefaultTargetDuration is the accumulated measured time each measurement
// runs for unless configured otherwise.
const DefaultTargetDuration = time.Second

// Config holds the configuration for a root suite. Child groups inherit
// everything except Data.
type Config struct {
	// Output is where the report is written (default: os.Stdout)
	Output io.Writer

	// Data is an opaque value exposed to the suite through Suite.Data.
	// The harness never reads or modifies it.
	Data any

	// TargetDuration is the accumulated measured time after which a
	// measurement stops sampling (default: 1s)
	TargetDuration time.Duration

	// InitialCapacity is the starting capacity of the measurement list (default: 16)
	InitialCapacity int

	// MaxMeasurements caps the measurement list of each suite (0 = unlimited)
	MaxMeasurements int

	// Clock is the time source (default: the process monotonic clock)
	Clock clock.Clock

	// Logger receives debug records about suites and measurements (default: discard)
	Logger *slog.Logger

	// Observer is notified of finished measurements and rankings (optional)
	Observer Observer
}

// DefaultConfig returns a configuration writing to stdout with a one second
// target duration.
func DefaultConfig() Config {
	return Config{
		Output:          os.Stdout,
		TargetDuration:  DefaultTargetDuration,
		InitialCapacity: DefaultCapacity,
	}
}

// Validate fills in defaults and rejects values that cannot be used.
func (c *Config) Validate() error {
	if c.TargetDuration < 0 {
		return fmt.Errorf("target duration must not be negative: %v", c.TargetDuration)
	}
	if c.MaxMeasurements < 0 {
		return fmt.Errorf("max measurements must not be negative: %d", c.MaxMeasurements)
	}
	if c.Output == nil {
		c.Output = os.Stdout
	}
	if c.TargetDuration == 0 {
		c.TargetDuration = DefaultTargetDuration
	}
	if c.InitialCapacity <= 0 {
		c.InitialCapacity = DefaultCapacity
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	if c.Clock == nil {
		mono, err := clock.Default()
		if err != nil {
			return err
		}
		c.Clock = mono
	}
	return nil
}
