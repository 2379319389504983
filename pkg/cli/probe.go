package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/gpu-probe/pkg/collector"
	"github.com/NVIDIA/gpu-probe/pkg/errors"
	"github.com/NVIDIA/gpu-probe/pkg/serializer"
	"github.com/NVIDIA/gpu-probe/pkg/snapshotter"
)

func probe(ctx context.Context, cmd *cli.Command, factoryOpts []collector.Option) (err error) {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	path, err := outputPath(cmd)
	if err != nil {
		return err
	}

	if timeout := cmd.Duration("timeout"); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	writer, err := serializer.NewFileWriterOrStdout(outFormat, path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := writer.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output: %w", cerr)
		}
	}()

	opts := append([]collector.Option{
		collector.WithSMIPath(cmd.String("smi-path")),
		collector.WithSettingsPath(cmd.String("settings-path")),
	}, factoryOpts...)

	ns := snapshotter.NodeSnapshotter{
		Version:     version,
		Factory:     collector.NewDefaultFactory(opts...),
		IncludeHost: cmd.Bool("include-host"),
		Serializer:  writer,
	}

	if err := ns.Measure(ctx); err != nil {
		return err
	}

	if metricsFile := cmd.String("metrics-file"); metricsFile != "" {
		if err := prometheus.WriteToTextfile(metricsFile, prometheus.DefaultGatherer); err != nil {
			return errors.WrapWithContext(errors.ErrCodeInternal, "failed to write metrics", err,
				map[string]any{"path": metricsFile})
		}
		slog.Debug("wrote metrics", "path", metricsFile)
	}

	return nil
}

// parseOutputFormat reads --format and rejects unknown values.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", outFormat)
	}
	return outFormat, nil
}

// outputPath returns the optional positional output path.
func outputPath(cmd *cli.Command) (string, error) {
	args := cmd.Args()
	if args.Len() > 1 {
		return "", errors.NewWithContext(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("expected at most one output path, got %d arguments", args.Len()),
			map[string]any{"args": args.Slice()})
	}
	return args.First(), nil
}
