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

package snapshotter

import (
	"context"
)

// Snapshotter defines the interface for producing probe documents.
type Snapshotter interface {
	Measure(ctx context.Context) error
}

// Document is the top-level probe output.
type Document map[string]any

// merge copies fields into d. Existing keys are kept.
func (d Document) merge(fields map[string]any) {
	for k, v := range fields {
		if _, ok := d[k]; !ok {
			d[k] = v
		}
	}
}
