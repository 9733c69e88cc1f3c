// Copyright 2023 Ross Light
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

import "testing"

func TestStripComments(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      string
		wantDiags int
	}{
		{
			name: "NoComments",
			input: "hello world\n",
			want:  "hello world\n",
		},
		{
			name:  "LineComment",
			input: "before %% this is a comment\nafter\n",
			want:  "before \nafter\n",
		},
		{
			name:  "LineCommentAtStart",
			input: "%% entire line\nkept\n",
			want:  "\nkept\n",
		},
		{
			name:  "MultilineComment",
			input: "a %%+ hidden\ntext +%% b\n",
			want:  "a  b\n",
		},
		{
			name:      "UnterminatedMultilineComment",
			input:     "a %%+ never closes\nb\n",
			want:      "a ",
			wantDiags: 1,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, _, diags := StripComments([]byte(test.input))
			if string(got) != test.want {
				t.Errorf("StripComments(%q) stripped = %q; want %q", test.input, got, test.want)
			}
			if len(diags) != test.wantDiags {
				t.Errorf("StripComments(%q) produced %d diagnostics; want %d (%v)", test.input, len(diags), test.wantDiags, diags)
			}
		})
	}
}

func TestOffsetMapTranslate(t *testing.T) {
	input := "ab%%cd\nef"
	stripped, om, _ := StripComments([]byte(input))
	if string(stripped) != "ab\nef" {
		t.Fatalf("stripped = %q; want %q", stripped, "ab\nef")
	}
	// stripped[0:2] = "ab" maps to original[0:2].
	for i, want := range []int{0, 1, 6, 7} {
		if got := om.Translate(i); got != want {
			t.Errorf("Translate(%d) = %d; want %d", i, got, want)
		}
	}
}
