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

func TestParseTableBasic(t *testing.T) {
	page, _ := Parse([]byte("|a|b|\n|c|d|\n"))
	table := page.Blocks[0].(*Table)
	if len(table.Rows) != 2 {
		t.Fatalf("len(table.Rows) = %d; want 2", len(table.Rows))
	}
	for _, row := range table.Rows {
		if row.Kind != TableRowContent {
			t.Errorf("row.Kind = %v; want TableRowContent", row.Kind)
		}
		if len(row.Cells) != 2 {
			t.Fatalf("len(row.Cells) = %d; want 2", len(row.Cells))
		}
	}
	if got := firstText(t, table.Rows[0].Cells[0].Content); got != "a" {
		t.Errorf("Rows[0].Cells[0] = %q; want %q", got, "a")
	}
	if got := firstText(t, table.Rows[1].Cells[1].Content); got != "d" {
		t.Errorf("Rows[1].Cells[1] = %q; want %q", got, "d")
	}
}

func TestParseTableDividerRow(t *testing.T) {
	page, _ := Parse([]byte("|a|b|\n|-|-|\n|c|d|\n"))
	table := page.Blocks[0].(*Table)
	if len(table.Rows) != 3 {
		t.Fatalf("len(table.Rows) = %d; want 3", len(table.Rows))
	}
	if table.Rows[1].Kind != TableRowDivider {
		t.Errorf("Rows[1].Kind = %v; want TableRowDivider", table.Rows[1].Kind)
	}
}

func TestParseTableSpanMarkers(t *testing.T) {
	page, _ := Parse([]byte("|a|b|\n|>|c|\n|\\/|d|\n"))
	table := page.Blocks[0].(*Table)
	if table.Rows[1].Cells[0].Kind != TableCellSpanLeft {
		t.Errorf("Rows[1].Cells[0].Kind = %v; want TableCellSpanLeft", table.Rows[1].Cells[0].Kind)
	}
	if table.Rows[2].Cells[0].Kind != TableCellSpanAbove {
		t.Errorf("Rows[2].Cells[0].Kind = %v; want TableCellSpanAbove", table.Rows[2].Cells[0].Kind)
	}
}

func TestParseTableCentered(t *testing.T) {
	page, _ := Parse([]byte("  |a|b|\n"))
	table := page.Blocks[0].(*Table)
	if !table.Centered {
		t.Errorf("table.Centered = false; want true")
	}
}

func TestParseTableEscapedPipe(t *testing.T) {
	page, _ := Parse([]byte(`|a\|b|c|` + "\n"))
	table := page.Blocks[0].(*Table)
	if len(table.Rows[0].Cells) != 2 {
		t.Fatalf("len(Rows[0].Cells) = %d; want 2 (escaped pipe should not split the cell)", len(table.Rows[0].Cells))
	}
}
