// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package snapshotter runs the probe collectors and emits a single document.
//
// # Overview
//
// A NodeSnapshotter asks its collector factory for a GPU collector (and a host
// collector when IncludeHost is set), runs them concurrently with errgroup,
// merges their output into one flat document and hands it to a serializer.
//
//	s := &snapshotter.NodeSnapshotter{
//	    Version:     "v1.0.0",
//	    IncludeHost: true,
//	}
//	if err := s.Measure(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Document Shape
//
// The GPU part is one of three shapes:
//
//	{"gpu": {"model": ..., "cuda": {...}, "clocks": {...}, "memory": {...}}}
//	{"settings_out": ..., "smi_text": ..., "smi_xml": ...}
//	{"err_debug": ..., "err_main": ...}
//
// Only the first carries real capability data. Consumers test for the "gpu"
// key. With IncludeHost the document also has top-level "cpu.num" and
// "mem.total" entries.
//
// # Error Handling
//
// GPU failures never fail a snapshot; they are part of the document, and a
// deadline that expires mid-probe shows up as TIMEOUT errors in err_main and
// err_debug. Measure returns an error only when the host collector or the
// serializer fails.
//
// # Observability
//
// Each run gets a random id attached to its log records. Prometheus metrics:
//   - gpuprobe_snapshot_duration_seconds: total time per snapshot
//   - gpuprobe_snapshot_collector_duration_seconds{collector}: per-collector timing
//   - gpuprobe_snapshot_total{status}: snapshot attempts by result
//   - gpuprobe_snapshot_gpu_detected: 1 when the last snapshot carried a gpu record
package snapshotter
