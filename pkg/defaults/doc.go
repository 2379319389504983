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

// Package defaults provides centralized configuration constants for gpuprobe.
//
// This package defines timeout values and diagnostic tool defaults used across
// the codebase.
//
// # Usage
//
//	import "github.com/NVIDIA/gpu-probe/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.ProbeTimeout)
//	defer cancel()
//
// # Timeout Guidelines
//
// The GPU extractor itself never imposes a deadline: a hung diagnostic tool
// blocks until the caller's context ends. The CLI wraps the whole probe in
// ProbeTimeout unless --timeout overrides it; zero disables the deadline.
package defaults
