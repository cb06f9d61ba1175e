package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// settings is the resolved configuration of a benc invocation.
type settings struct {
	Target          time.Duration
	Output          string
	MetricsTextfile string
	ScratchDir      string
	Verbose         bool
}

// newRootCmd builds the command tree. Each call gets its own viper instance
// so flags, environment and config file never leak between invocations.
func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:   "benc",
		Short: "Run micro-benchmark suites and rank them by throughput",
		Long: `benc repeatedly executes built-in units of work until a target amount of
measured time has accumulated, reports throughput with relative standard
deviation and ranks the measurements of every suite against each other.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./benc.yaml)")
	flags.BoolP("verbose", "v", false, "Enable debug logging on stderr")
	flags.Duration("target", time.Second, "Accumulated measured time per measurement")
	flags.StringP("output", "o", "", "Write the report to this file instead of stdout")
	flags.String("metrics-textfile", "", "Write Prometheus metrics for the run to this file")
	flags.String("scratch-dir", "", "Directory for the disk suite's scratch files (default: temp dir)")
	bindFlags(v, flags)

	root.AddCommand(newRunCmd(v), newListCmd())
	return root
}

// bindFlags binds every flag to the viper key with dashes replaced by
// underscores.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" {
			return
		}
		_ = v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
	})
}

// initConfig reads the config file and environment variables.
func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("benc")
	}

	v.SetEnvPrefix("BENC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("target", time.Second)
	v.SetDefault("verbose", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

func loadSettings(v *viper.Viper) (settings, error) {
	s := settings{
		Target:          v.GetDuration("target"),
		Output:          v.GetString("output"),
		MetricsTextfile: v.GetString("metrics_textfile"),
		ScratchDir:      v.GetString("scratch_dir"),
		Verbose:         v.GetBool("verbose"),
	}
	if s.Target <= 0 {
		return s, fmt.Errorf("target must be positive, got %v", s.Target)
	}
	return s, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
