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

// Package smi reads GPU capability fields from nvidia-smi's XML report.
//
// The reader runs
//
//	nvidia-smi -x -q
//
// parses the output into an in-memory Tree and extracts fields through the
// Document interface:
//
//   - Lookup finds the first element with a tag name anywhere in the tree
//   - LookupChild finds a direct child of a given element
//   - Text returns an element's trimmed character data
//
// Extraction only depends on Document, so tests build trees by hand with
// NewTree instead of running nvidia-smi:
//
//	doc := smi.NewTree(&smi.Node{Name: "nvidia_smi_log", Children: []*smi.Node{
//	    {Name: "cuda_version", Text: "12.1"},
//	}})
//
// # Extracted Fields
//
//   - product_name
//   - cuda_version
//   - max_clocks/graphics_clock, sm_clock, mem_clock, video_clock
//   - fb_memory_usage/total
//
// On hosts with several GPUs the first gpu element wins.
package smi
