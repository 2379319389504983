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

// Package cli implements the gpuprobe command line.
//
// # Usage
//
//	gpuprobe [flags] [output-path]
//
// Probes the first NVIDIA GPU and writes one document to output-path, or to
// stdout when no path is given. More than one positional argument is an
// error.
//
// # Flags
//
//	--format, -t       Output format: json, yaml, table (default: json)
//	--log-level        Logging verbosity (debug, info, warn, error)
//	--smi-path         nvidia-smi executable (default: nvidia-smi)
//	--settings-path    nvidia-settings executable (default: nvidia-settings)
//	--timeout          Upper bound for the whole probe (default: 5m, 0 disables)
//	--include-host     Add cpu.num and mem.total to the document
//	--metrics-file     Write Prometheus text metrics to this file
//	--version, -v      Show version information
//
// # Environment Variables
//
// Every flag can be set with a GPUPROBE_ variable (GPUPROBE_FORMAT,
// GPUPROBE_SMI_PATH, GPUPROBE_TIMEOUT and so on). LOG_LEVEL is honored when
// no log level is given.
//
// # Output
//
// A successful probe:
//
//	{
//	  "gpu": {
//	    "model": "NVIDIA GeForce RTX 4090",
//	    "cuda": {"enabled": true, "cores": 16384, "version": "12.4"},
//	    "clocks": {"graphics.mhz": 3120, "memory.mhz": 10501, "sm.mhz": 3120, "video.mhz": 2415},
//	    "memory": {"bandwidth.gib": 1008, "total.gib": 23.98828125}
//	  }
//	}
//
// When detection fails the document holds raw tool output under settings_out,
// smi_text and smi_xml; when that fails too, err_main and err_debug. The
// process still exits 0 in both cases.
//
// # Exit Codes
//
//	0  A document was written
//	1  Invalid arguments, unwritable output, host collection or serialization failure
package cli
