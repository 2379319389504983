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

// Package command runs the external diagnostic tools the probe depends on.
//
// Runner is the process boundary shared by the nvidia-smi and
// nvidia-settings readers. The exec-backed implementation resolves the tool
// through PATH, captures stdout and requires it to be valid UTF-8. The exit
// status is not inspected on its own: a tool that exits non-zero but still
// prints decodable output is treated as having produced that output.
//
// Tests substitute RunnerFunc or a map-backed fake for the real tools:
//
//	r := command.RunnerFunc(func(ctx context.Context, name string, args ...string) ([]byte, error) {
//	    return []byte("<nvidia_smi_log/>"), nil
//	})
package command
