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

func parseOneDecoration(t *testing.T, src string) *DecoratedText {
	t.Helper()
	elems, _ := ParseInline([]byte(src))
	for _, e := range elems {
		if d, ok := e.(*DecoratedText); ok {
			return d
		}
	}
	t.Fatalf("ParseInline(%q) produced no *DecoratedText among %v", src, elems)
	return nil
}

func TestParseBoldItalicStarUnderscore(t *testing.T) {
	d := parseOneDecoration(t, "*_bold italic_*")
	if d.Style != DecorationBoldItalic {
		t.Fatalf("d.Style = %v; want DecorationBoldItalic", d.Style)
	}
	if got := firstText(t, d.Content); got != "bold italic" {
		t.Errorf("d.Content text = %q; want %q", got, "bold italic")
	}
}

func TestParseBoldItalicUnderscoreStar(t *testing.T) {
	d := parseOneDecoration(t, "_*bold italic*_")
	if d.Style != DecorationBoldItalic {
		t.Fatalf("d.Style = %v; want DecorationBoldItalic", d.Style)
	}
	if got := firstText(t, d.Content); got != "bold italic" {
		t.Errorf("d.Content text = %q; want %q", got, "bold italic")
	}
}

func TestParseBold(t *testing.T) {
	d := parseOneDecoration(t, "*bold*")
	if d.Style != DecorationBold {
		t.Errorf("d.Style = %v; want DecorationBold", d.Style)
	}
}

func TestParseItalic(t *testing.T) {
	d := parseOneDecoration(t, "_italic_")
	if d.Style != DecorationItalic {
		t.Errorf("d.Style = %v; want DecorationItalic", d.Style)
	}
}
