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

// Package collector wires the GPU and host collectors to their dependencies.
//
// The Factory interface abstracts collector creation so callers such as the
// snapshotter can be tested with fakes:
//
//	type Factory interface {
//	    CreateGPUCollector() GPUCollector
//	    CreateHostCollector() HostCollector
//	}
//
// The DefaultFactory builds production collectors. Tool locations and the
// command runner are configurable:
//
//	factory := collector.NewDefaultFactory(
//	    collector.WithSMIPath("/usr/bin/nvidia-smi"),
//	    collector.WithSettingsPath("/usr/bin/nvidia-settings"),
//	)
//	report := factory.CreateGPUCollector().Collect(ctx)
//
// # Subpackages
//
//   - collector/gpu - GPU capability detection with raw-dump fallback
//   - collector/host - logical CPU count and physical memory
//
// GPU collection never returns an error: detection and dump failures are
// carried inside the gpu.Report. Host collection returns errors normally.
package collector
