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

package defaults

import "time"

// Probe timeouts.
const (
	// ProbeTimeout is the default deadline the CLI applies to a full probe,
	// covering detection and, when needed, the fallback dump.
	ProbeTimeout = 5 * time.Minute

	// HostCollectorTimeout bounds host CPU and memory enumeration.
	HostCollectorTimeout = 10 * time.Second
)

// Diagnostic tool defaults.
const (
	// SMICommand is the structured-output tool, resolved through PATH.
	SMICommand = "nvidia-smi"

	// SettingsCommand is the unstructured-output tool, resolved through PATH.
	SettingsCommand = "nvidia-settings"
)
