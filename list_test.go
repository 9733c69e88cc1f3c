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

func TestParseListHyphen(t *testing.T) {
	page, _ := Parse([]byte("- one\n- two\n"))
	list := page.Blocks[0].(*List)
	if len(list.Items) != 2 {
		t.Fatalf("len(list.Items) = %d; want 2", len(list.Items))
	}
	for i, want := range []string{"one", "two"} {
		if got := firstText(t, list.Items[i].Content); got != want {
			t.Errorf("list.Items[%d] content = %q; want %q", i, got, want)
		}
		if list.Items[i].Kind != ListHyphen {
			t.Errorf("list.Items[%d].Kind = %v; want ListHyphen", i, list.Items[i].Kind)
		}
	}
}

func TestParseListNestedSublist(t *testing.T) {
	page, _ := Parse([]byte("- parent\n  - child\n"))
	list := page.Blocks[0].(*List)
	if len(list.Items) != 1 {
		t.Fatalf("len(list.Items) = %d; want 1", len(list.Items))
	}
	parent := list.Items[0]
	if len(parent.Sublists) != 1 {
		t.Fatalf("len(parent.Sublists) = %d; want 1", len(parent.Sublists))
	}
	sub := parent.Sublists[0]
	if len(sub.Items) != 1 {
		t.Fatalf("len(sub.Items) = %d; want 1", len(sub.Items))
	}
	if got := firstText(t, sub.Items[0].Content); got != "child" {
		t.Errorf("sub.Items[0] content = %q; want %q", got, "child")
	}
}

func TestParseListTodoAttribute(t *testing.T) {
	page, _ := Parse([]byte("- [X] done\n- [ ] not done\n"))
	list := page.Blocks[0].(*List)
	if !list.Items[0].HasTodo || list.Items[0].Todo != TodoComplete {
		t.Errorf("Items[0] Todo = %v, HasTodo = %v; want TodoComplete, true", list.Items[0].Todo, list.Items[0].HasTodo)
	}
	if !list.Items[1].HasTodo || list.Items[1].Todo != TodoIncomplete {
		t.Errorf("Items[1] Todo = %v, HasTodo = %v; want TodoIncomplete, true", list.Items[1].Todo, list.Items[1].HasTodo)
	}
	if got := firstText(t, list.Items[0].Content); got != "done" {
		t.Errorf("Items[0] content = %q; want %q", got, "done")
	}
}

func TestParseListRomanDisambiguation(t *testing.T) {
	page, _ := Parse([]byte("i. first\nii. second\niii. third\n"))
	list := page.Blocks[0].(*List)
	for i, item := range list.Items {
		if item.Kind != ListLowerRoman {
			t.Errorf("Items[%d].Kind = %v; want ListLowerRoman", i, item.Kind)
		}
	}
}

func TestParseListAlphaDisambiguation(t *testing.T) {
	page, _ := Parse([]byte("a. first\nb. second\nq. third\n"))
	list := page.Blocks[0].(*List)
	for i, item := range list.Items {
		if item.Kind != ListLowerAlpha {
			t.Errorf("Items[%d].Kind = %v; want ListLowerAlpha (run contains a non-roman letter)", i, item.Kind)
		}
	}
}

func TestParseListAlphaUppercase(t *testing.T) {
	page, _ := Parse([]byte("A. first\nB. second\n"))
	list := page.Blocks[0].(*List)
	for i, item := range list.Items {
		if item.Kind != ListUpperAlpha {
			t.Errorf("Items[%d].Kind = %v; want ListUpperAlpha", i, item.Kind)
		}
	}
}

func TestParseDefinitionList(t *testing.T) {
	page, _ := Parse([]byte("term:: definition\n"))
	dl := page.Blocks[0].(*DefinitionList)
	if len(dl.Entries) != 1 {
		t.Fatalf("len(dl.Entries) = %d; want 1", len(dl.Entries))
	}
	if got := firstText(t, dl.Entries[0].Term); got != "term" {
		t.Errorf("Entries[0].Term = %q; want %q", got, "term")
	}
	if len(dl.Entries[0].Defs) != 1 {
		t.Fatalf("len(Entries[0].Defs) = %d; want 1", len(dl.Entries[0].Defs))
	}
	if got := firstText(t, dl.Entries[0].Defs[0]); got != "definition" {
		t.Errorf("Entries[0].Defs[0] = %q; want %q", got, "definition")
	}
}

func TestParseBlockquoteChevron(t *testing.T) {
	page, _ := Parse([]byte("> quoted text\n"))
	bq := page.Blocks[0].(*Blockquote)
	if bq.Form != BlockquoteChevron {
		t.Errorf("bq.Form = %v; want BlockquoteChevron", bq.Form)
	}
	if got := firstText(t, bq.Lines[0]); got != "quoted text" {
		t.Errorf("bq.Lines[0] = %q; want %q", got, "quoted text")
	}
}

func TestParseBlockquoteIndented(t *testing.T) {
	page, _ := Parse([]byte("    quoted text\n"))
	bq := page.Blocks[0].(*Blockquote)
	if bq.Form != BlockquoteIndented {
		t.Errorf("bq.Form = %v; want BlockquoteIndented", bq.Form)
	}
	if got := firstText(t, bq.Lines[0]); got != "quoted text" {
		t.Errorf("bq.Lines[0] = %q; want %q", got, "quoted text")
	}
}
