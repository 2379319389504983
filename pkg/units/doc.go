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

// Package units converts the human-readable quantities printed by NVIDIA
// diagnostic tools into canonical integers.
//
// Clock frequencies such as "1830 MHz" become Hz and memory sizes such as
// "24576 MiB" become bytes:
//
//	hz, err := units.ParseClockSpeed("1.5 GHz")    // 1500000000
//	b, err := units.ParseMemorySize("24576 MiB")   // 25769803776
//
// Parse failures are StructuredErrors coded INVALID_UNIT, MALFORMED_NUMBER or
// MALFORMED_SIZE.
package units
