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

// Package settings reads GPU attributes from the free-form report printed by
//
//	nvidia-settings --query all
//
// Each output line is split on whitespace and handed to a fixed set of
// independent classifiers. A classifier that recognizes the line returns a
// Partial update; updates are merged into Attributes in a single pass:
//
//	Attribute 'CUDACores' (host:0[gpu:0]): 16384.
//	Attribute 'GPUMemoryInterface' (host:0[gpu:0]): 384.
//	Attribute 'GPUPerfModes' (host:0[gpu:0]): perf=0, ..., memTransferRatemax=810, ... ; perf=1, ...
//
// CUDA cores and memory interface width take the trailing value with its
// final punctuation character removed. For performance modes the largest
// memTransferRatemax across all modes and all lines wins.
//
// After the scan every attribute must have been observed with a non-zero
// value, otherwise Scan fails with ATTRIBUTE_NOT_FOUND naming it.
package settings
