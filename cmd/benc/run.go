package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/neehar-mavuduru/benc/bench"
	"github.com/neehar-mavuduru/benc/metrics"
)

func newRunCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "run [suite...]",
		Short: "Run the named suites (all when none are given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(v)
			if err != nil {
				return err
			}
			return runSuites(cmd, s, args)
		},
	}
}

func runSuites(cmd *cobra.Command, s settings, names []string) (err error) {
	selected, err := selectSuites(names)
	if err != nil {
		return err
	}

	var out io.Writer = cmd.OutOrStdout()
	if s.Output != "" {
		f, createErr := os.Create(s.Output)
		if createErr != nil {
			return fmt.Errorf("failed to create output file: %w", createErr)
		}
		buffered := bufio.NewWriter(f)
		defer func() {
			err = errors.Join(err, buffered.Flush(), f.Close())
		}()
		out = buffered
	}

	logger := newLogger(cmd.ErrOrStderr(), s.Verbose)

	cfg := bench.DefaultConfig()
	cfg.Output = out
	cfg.TargetDuration = s.Target
	cfg.Logger = logger

	var recorder *metrics.Recorder
	if s.MetricsTextfile != "" {
		recorder = metrics.NewRecorder()
		cfg.Observer = recorder
	}

	env := &environment{scratchDir: s.ScratchDir, logger: logger}
	var suiteErr error
	runErr := bench.Run("benc", cfg, func(root *bench.Suite) {
		for _, def := range selected {
			if suiteErr = def.run(root, env); suiteErr != nil {
				return
			}
		}
	})
	if suiteErr != nil {
		return suiteErr
	}
	if runErr != nil {
		return runErr
	}

	if recorder != nil {
		if err := recorder.WriteTextfile(s.MetricsTextfile); err != nil {
			return err
		}
		logger.Debug("metrics written", "path", s.MetricsTextfile)
	}
	return nil
}

func selectSuites(names []string) ([]suiteDef, error) {
	if len(names) == 0 {
		return builtinSuites, nil
	}

	selected := make([]suiteDef, 0, len(names))
	for _, name := range names {
		def, ok := lookupSuite(name)
		if !ok {
			return nil, fmt.Errorf("unknown suite %q (see 'benc list')", name)
		}
		selected = append(selected, def)
	}
	return selected, nil
}
