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

// Package gpu builds a GPU capability record from nvidia-smi and
// nvidia-settings output.
//
// Detection runs nvidia-smi in XML mode for the model, CUDA version, maximum
// clocks and framebuffer size, then scans the nvidia-settings attribute report
// for CUDA cores, memory interface width and the highest memory transfer
// rate. Memory bandwidth is derived from the last two:
//
//	bandwidth GiB/s = maxTransferRate * busWidth / (1000 * 8)
//
// When detection fails, the Collector falls back to raw dumps of both tools
// so the host can still be diagnosed:
//
//	c := gpu.NewCollector(gpu.WithSMIPath("/usr/bin/nvidia-smi"))
//	report := c.Collect(ctx)
//	switch report.Outcome {
//	case gpu.OutcomeDetected:
//	    fmt.Println(report.Record.Model)
//	case gpu.OutcomeDumped:
//	    fmt.Println(report.Dump.SMIText)
//	case gpu.OutcomeFailed:
//	    fmt.Println(report.DetectErr, report.DumpErr)
//	}
//
// Report.Document renders one of three JSON shapes. A document carries a
// "gpu" key only when detection succeeded; the dump shape uses settings_out,
// smi_text and smi_xml, and the failure shape uses err_main and err_debug.
//
// Nothing in this package imposes a timeout. Every tool run is bounded by
// the caller's context.
package gpu
