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

import (
	"strings"
	"testing"
)

func TestParseInvalidUTF8Replaced(t *testing.T) {
	input := []byte("Hello,\x80World\n")
	page, diags := Parse(input)
	found := false
	for _, d := range diags {
		if d.Kind == InvalidUTF8 {
			found = true
		}
	}
	if !found {
		t.Errorf("diags = %v; want an InvalidUTF8 diagnostic", diags)
	}
	p, ok := page.Blocks[0].(*Paragraph)
	if !ok {
		t.Fatalf("page.Blocks[0] = %T; want *Paragraph", page.Blocks[0])
	}
	got := firstText(t, p.Lines[0])
	if !strings.Contains(got, "�") {
		t.Errorf("paragraph text = %q; want it to contain U+FFFD", got)
	}
}

func TestParseEmptyInput(t *testing.T) {
	page, diags := Parse(nil)
	if len(page.Blocks) != 0 {
		t.Errorf("len(page.Blocks) = %d; want 0", len(page.Blocks))
	}
	if len(diags) != 0 {
		t.Errorf("diags = %v; want none", diags)
	}
}

func TestParseIsTotal(t *testing.T) {
	// A grab-bag of every production's trigger character, to make sure
	// the block parser never gets stuck or panics on any single line.
	inputs := []string{
		"= h =", "----", "%title x", "{{$", "{{{", "|a|b|",
		"term::", "- x", "> x", "    x", "  x", "",
		"*bold* _italic_ `code` $m$ :tag: [[x]] {{y}}",
	}
	for _, in := range inputs {
		page, _ := Parse([]byte(in + "\n"))
		if page == nil {
			t.Errorf("Parse(%q) returned a nil Page", in)
		}
	}
}

func TestParseBlockSingle(t *testing.T) {
	block, diags := ParseBlock([]byte("= Heading =\n"))
	if len(diags) != 0 {
		t.Fatalf("diags = %v; want none", diags)
	}
	if _, ok := block.(*Header); !ok {
		t.Errorf("block = %T; want *Header", block)
	}
}

func TestParseRegionLineColumn(t *testing.T) {
	page, _ := Parse([]byte("first\nsecond\n= third =\n"))
	h := page.Blocks[1].(*Header)
	r := h.Region()
	if r.Line != 3 {
		t.Errorf("Header region Line = %d; want 3", r.Line)
	}
	if r.Column != 1 {
		t.Errorf("Header region Column = %d; want 1", r.Column)
	}
}

func TestExtractTags(t *testing.T) {
	page, _ := Parse([]byte("a line with :work:urgent: tags\n"))
	tags := ExtractTags(page)
	if !tags.Has("work") || !tags.Has("urgent") {
		t.Errorf("tags = %v; want work and urgent", tags)
	}
}
