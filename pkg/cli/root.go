package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/gpu-probe/pkg/collector"
	"github.com/NVIDIA/gpu-probe/pkg/defaults"
	"github.com/NVIDIA/gpu-probe/pkg/logging"
	"github.com/NVIDIA/gpu-probe/pkg/serializer"
)

const (
	name           = "gpuprobe"
	versionDefault = "dev"
	envPrefix      = "GPUPROBE_"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Execute runs the root command with the process arguments.
// This is called by main.main().
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd builds the command. Factory options are appended to the ones
// derived from flags.
func newRootCmd(factoryOpts ...collector.Option) *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               version,
		EnableShellCompletion: true,
		Usage:                 "Report GPU capabilities of this host as a single document",
		ArgsUsage:             "[output-path]",
		Description: fmt.Sprintf(`Probe the first NVIDIA GPU on this host and report:
  - model and CUDA version
  - maximum graphics, SM, memory and video clocks (MHz)
  - framebuffer size (GiB) and memory bandwidth (GiB/s)
  - CUDA core count

Data comes from nvidia-smi (XML report) and nvidia-settings (attribute
report). When either tool is missing or its output cannot be read, the raw
output of both tools is emitted instead under settings_out, smi_text and
smi_xml. If even that fails, err_main and err_debug carry the two errors.
Only a successful probe produces a "gpu" key.

The document goes to stdout, or to output-path when given.

Version: %s
Commit:  %s
Built:   %s`, version, commit, date),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"t"},
				Value:   string(serializer.FormatJSON),
				Usage:   fmt.Sprintf("Output format (supported values: %s)", serializer.SupportedFormats()),
				Sources: cli.EnvVars(envPrefix + "FORMAT"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error); falls back to " + logging.EnvLogLevel,
				Sources: cli.EnvVars(envPrefix + "LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "smi-path",
				Value:   defaults.SMICommand,
				Usage:   "nvidia-smi executable",
				Sources: cli.EnvVars(envPrefix + "SMI_PATH"),
			},
			&cli.StringFlag{
				Name:    "settings-path",
				Value:   defaults.SettingsCommand,
				Usage:   "nvidia-settings executable",
				Sources: cli.EnvVars(envPrefix + "SETTINGS_PATH"),
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Value:   defaults.ProbeTimeout,
				Usage:   "Upper bound for the whole probe (0 disables)",
				Sources: cli.EnvVars(envPrefix + "TIMEOUT"),
			},
			&cli.BoolFlag{
				Name:    "include-host",
				Usage:   "Add cpu.num and mem.total to the document",
				Sources: cli.EnvVars(envPrefix + "INCLUDE_HOST"),
			},
			&cli.StringFlag{
				Name:    "metrics-file",
				Usage:   "Write Prometheus metrics in text format to this file after the probe",
				Sources: cli.EnvVars(envPrefix + "METRICS_FILE"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			initLogger(cmd.String("log-level"))
			return ctx, nil
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return probe(ctx, cmd, factoryOpts)
		},
	}
}

// initLogger configures slog after flags are parsed so --log-level takes
// effect before the probe runs.
func initLogger(logLevel string) {
	logging.SetDefaultStructuredLoggerWithLevel(name, version, logLevel)
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"logLevel", logLevel)
}
