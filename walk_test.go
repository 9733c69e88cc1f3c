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
	"reflect"
	"testing"
)

func TestWalkPreOrder(t *testing.T) {
	page, _ := Parse([]byte("= Title =\n\n*bold* text\n"))

	var kinds []string
	Walk(page, &WalkOptions{
		Pre: func(c *WalkCursor) bool {
			n := c.Node()
			switch {
			case n.Block != nil:
				kinds = append(kinds, reflect.TypeOf(n.Block).Elem().Name())
			case n.Inline != nil:
				kinds = append(kinds, reflect.TypeOf(n.Inline).Elem().Name())
			}
			return true
		},
	})

	want := []string{"Header", "Text", "BlankLine", "Paragraph", "DecoratedText", "Text", "Text"}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("Walk visited %v; want %v", kinds, want)
	}
}

func TestWalkPreFalseSkipsChildren(t *testing.T) {
	page, _ := Parse([]byte("*bold* text\n"))
	var visited int
	Walk(page, &WalkOptions{
		Pre: func(c *WalkCursor) bool {
			visited++
			if _, ok := c.Node().Inline.(*DecoratedText); ok {
				return false
			}
			return true
		},
	})
	// Paragraph, DecoratedText (children skipped), " text" Text = 3.
	if visited != 3 {
		t.Errorf("visited = %d; want 3", visited)
	}
}
