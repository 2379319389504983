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

import (
	"testing"
	"time"
)

func TestTimeoutConstants(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		minValue time.Duration
		maxValue time.Duration
	}{
		{"ProbeTimeout", ProbeTimeout, 30 * time.Second, 30 * time.Minute},
		{"HostCollectorTimeout", HostCollectorTimeout, 1 * time.Second, 60 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.timeout < tt.minValue {
				t.Errorf("%s (%v) is below minimum expected value (%v)", tt.name, tt.timeout, tt.minValue)
			}
			if tt.timeout > tt.maxValue {
				t.Errorf("%s (%v) is above maximum expected value (%v)", tt.name, tt.timeout, tt.maxValue)
			}
		})
	}
}

func TestHostTimeoutLessThanProbe(t *testing.T) {
	// Host enumeration runs inside the probe deadline
	if HostCollectorTimeout >= ProbeTimeout {
		t.Errorf("HostCollectorTimeout (%v) should be less than ProbeTimeout (%v)",
			HostCollectorTimeout, ProbeTimeout)
	}
}

func TestToolCommands(t *testing.T) {
	if SMICommand == "" || SettingsCommand == "" {
		t.Fatal("tool commands must not be empty")
	}
	if SMICommand == SettingsCommand {
		t.Errorf("structured and unstructured tools must differ, both are %q", SMICommand)
	}
}
