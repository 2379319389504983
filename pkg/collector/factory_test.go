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

package collector

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/gpu-probe/pkg/collector/gpu"
	"github.com/NVIDIA/gpu-probe/pkg/collector/host"
	"github.com/NVIDIA/gpu-probe/pkg/command"
)

func TestNewDefaultFactory_Defaults(t *testing.T) {
	factory := NewDefaultFactory()

	assert.Empty(t, factory.SMIPath)
	assert.Empty(t, factory.SettingsPath)
	assert.Nil(t, factory.Runner)
}

func TestNewDefaultFactory_Options(t *testing.T) {
	fake := &command.Fake{}
	factory := NewDefaultFactory(
		WithSMIPath("/usr/local/bin/nvidia-smi"),
		WithSettingsPath("/usr/local/bin/nvidia-settings"),
		WithRunner(fake),
	)

	assert.Equal(t, "/usr/local/bin/nvidia-smi", factory.SMIPath)
	assert.Equal(t, "/usr/local/bin/nvidia-settings", factory.SettingsPath)
	assert.Same(t, fake, factory.Runner)
}

func TestDefaultFactory_CreateGPUCollector(t *testing.T) {
	fake := &command.Fake{}
	factory := NewDefaultFactory(WithRunner(fake), WithSMIPath("/opt/nvidia-smi"))

	col := factory.CreateGPUCollector()
	require.NotNil(t, col)
	require.IsType(t, &gpu.Collector{}, col)

	report := col.Collect(context.Background())
	assert.Equal(t, gpu.OutcomeFailed, report.Outcome)
	// the factory's runner and path reach the tools
	assert.Equal(t, []string{"/opt/nvidia-smi -x -q", "nvidia-settings --query all"}, fake.Calls())
}

func TestDefaultFactory_CreateHostCollector(t *testing.T) {
	col := NewDefaultFactory().CreateHostCollector()
	require.NotNil(t, col)
	assert.IsType(t, &host.Collector{}, col)
}
