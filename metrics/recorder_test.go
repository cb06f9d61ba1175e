package metrics

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neehar-mavuduru/benc/bench"
	"github.com/neehar-mavuduru/benc/clock"
)

func runSuite(t *testing.T, rec *Recorder) {
	t.Helper()

	var out bytes.Buffer
	clk := clock.NewManual(0)
	cfg := bench.Config{Output: &out, Clock: clk, Observer: rec}
	err := bench.Run("bench", cfg, func(s *bench.Suite) {
		require.NoError(t, s.Group("publish", func(g *bench.Suite) {
			require.NoError(t, g.Measure("fast", func() { clk.Advance(time.Millisecond) }))
			require.NoError(t, g.Measure("slow", func() { clk.Advance(4 * time.Millisecond) }))
		}, nil))
	})
	require.NoError(t, err)
}

func TestRecorder_Measured(t *testing.T) {
	rec := NewRecorder()
	runSuite(t, rec)

	assert.Equal(t, 1000.0, testutil.ToFloat64(rec.Throughput.WithLabelValues("bench/publish", "fast")))
	assert.Equal(t, 250.0, testutil.ToFloat64(rec.Throughput.WithLabelValues("bench/publish", "slow")))
	assert.InDelta(t, 0.004, testutil.ToFloat64(rec.MeanDuration.WithLabelValues("bench/publish", "slow")), 1e-12)
	assert.Equal(t, 1000.0, testutil.ToFloat64(rec.Iterations.WithLabelValues("bench/publish", "fast")))
	assert.Equal(t, 0.0, testutil.ToFloat64(rec.RelativeStdDev.WithLabelValues("bench/publish", "fast")))
	assert.Equal(t, 2.0, testutil.ToFloat64(rec.Measurements))
}

func TestRecorder_Compared(t *testing.T) {
	rec := NewRecorder()
	runSuite(t, rec)

	assert.Equal(t, 0.0, testutil.ToFloat64(rec.Rank.WithLabelValues("bench/publish", "fast")))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.Rank.WithLabelValues("bench/publish", "slow")))
	assert.InDelta(t, 300.0, testutil.ToFloat64(rec.SlowerPercent.WithLabelValues("bench/publish", "slow")), 1e-9)
}

func TestRecorder_WriteTextfile(t *testing.T) {
	rec := NewRecorder()
	runSuite(t, rec)

	path := filepath.Join(t.TempDir(), "benc.prom")
	require.NoError(t, rec.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `benc_throughput_ops_per_second{measurement="fast",suite="bench/publish"} 1000`)
	assert.Contains(t, string(data), "benc_measurements_total 2")
}
