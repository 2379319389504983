package snapshotter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/gpu-probe/pkg/collector"
	"github.com/NVIDIA/gpu-probe/pkg/collector/gpu"
	"github.com/NVIDIA/gpu-probe/pkg/collector/host"
	"github.com/NVIDIA/gpu-probe/pkg/serializer"
)

// NodeSnapshotter probes the current node and serializes the document.
type NodeSnapshotter struct {
	// Version is the probe version, logged with every run.
	Version string

	// Factory is the collector factory to use. If nil, the default factory is used.
	Factory collector.Factory

	// IncludeHost adds cpu.num and mem.total to the document.
	IncludeHost bool

	// Serializer is the serializer to use for output. If nil, a default stdout JSON serializer is used.
	Serializer serializer.Serializer
}

// Measure builds the document and serializes it.
func (n *NodeSnapshotter) Measure(ctx context.Context) error {
	doc, err := n.Snapshot(ctx)
	if err != nil {
		return err
	}

	if n.Serializer == nil {
		n.Serializer = serializer.NewStdoutWriter(serializer.FormatJSON)
	}

	if err := n.Serializer.Serialize(ctx, doc); err != nil {
		slog.Error("failed to serialize", slog.String("error", err.Error()))
		return fmt.Errorf("failed to serialize: %w", err)
	}

	return nil
}

// Snapshot runs the collectors and returns the merged document.
func (n *NodeSnapshotter) Snapshot(ctx context.Context) (Document, error) {
	if n.Factory == nil {
		n.Factory = collector.NewDefaultFactory()
	}

	log := slog.With(slog.String("run", uuid.NewString()))
	log.Debug("starting gpu probe", slog.String("version", n.Version), slog.Bool("includeHost", n.IncludeHost))

	start := time.Now()
	defer func() {
		snapshotDuration.Observe(time.Since(start).Seconds())
	}()

	var (
		report *gpu.Report
		info   *host.Info
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		collectorStart := time.Now()
		defer func() {
			snapshotCollectorDuration.WithLabelValues("gpu").Observe(time.Since(collectorStart).Seconds())
		}()
		log.Debug("collecting gpu capabilities")
		report = n.Factory.CreateGPUCollector().Collect(gctx)
		return nil
	})

	if n.IncludeHost {
		g.Go(func() error {
			collectorStart := time.Now()
			defer func() {
				snapshotCollectorDuration.WithLabelValues("host").Observe(time.Since(collectorStart).Seconds())
			}()
			log.Debug("collecting host info")
			var err error
			if info, err = n.Factory.CreateHostCollector().Collect(gctx); err != nil {
				log.Error("failed to collect host info", slog.String("error", err.Error()))
				return fmt.Errorf("failed to collect host info: %w", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		snapshotTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	doc := Document(report.Document())
	if info != nil {
		doc.merge(info.Fields())
	}

	snapshotTotal.WithLabelValues("success").Inc()
	if report.Outcome == gpu.OutcomeDetected {
		snapshotGPUDetected.Set(1)
	} else {
		snapshotGPUDetected.Set(0)
	}

	log.Info("gpu probe complete", slog.String("outcome", report.Outcome.String()), slog.Int("fields", len(doc)))
	return doc, nil
}
