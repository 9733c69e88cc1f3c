// Copyright 2024 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package vimwiki

import (
	_ "embed"
	"encoding/json"
	"reflect"
	"testing"
)

// scenario is one concrete top-level-structure example.
type scenario struct {
	Name       string   `json:"name"`
	Input      string   `json:"input"`
	WantBlocks []string `json:"wantBlocks"`
}

//go:embed testdata/scenarios.json
var scenariosData []byte

func loadScenarios(t *testing.T) []scenario {
	t.Helper()
	var out []scenario
	if err := json.Unmarshal(scenariosData, &out); err != nil {
		t.Fatalf("json.Unmarshal(testdata/scenarios.json): %v", err)
	}
	return out
}

// TestScenarios runs every concrete scenario, checking top-level block
// shape and the region-reconstruction property (one gap-free partition
// of the comment-stripped source).
func TestScenarios(t *testing.T) {
	for _, s := range loadScenarios(t) {
		t.Run(s.Name, func(t *testing.T) {
			page, diags := Parse([]byte(s.Input))

			var gotKinds []string
			for _, b := range page.Blocks {
				gotKinds = append(gotKinds, reflect.TypeOf(b).Elem().Name())
			}
			if !reflect.DeepEqual(gotKinds, s.WantBlocks) {
				t.Errorf("Parse(%q) block kinds = %v; want %v (diags = %v)", s.Input, gotKinds, s.WantBlocks, diags)
			}

			for i := 1; i < len(page.Blocks); i++ {
				prevEnd := page.Blocks[i-1].Region().End
				start := page.Blocks[i].Region().Start
				if start != prevEnd {
					t.Errorf("Parse(%q): Blocks[%d].Region().Start = %d; want %d (contiguous with previous block)", s.Input, i, start, prevEnd)
				}
			}
		})
	}
}
