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

import "bytes"

// isTableRow reports whether trimmed (a line with surrounding
// whitespace already trimmed) is shaped like a table row: it starts and
// ends with "|".
func isTableRow(trimmed []byte) bool {
	return len(trimmed) >= 2 && trimmed[0] == '|' && trimmed[len(trimmed)-1] == '|'
}

// isTableDivider reports whether trimmed is a "|---|:--:|---|"-style
// divider row: every cell consists only of "-" and ":".
func isTableDivider(trimmed []byte) bool {
	if !isTableRow(trimmed) {
		return false
	}
	inner := trimmed[1 : len(trimmed)-1]
	if len(inner) == 0 {
		return false
	}
	for _, b := range inner {
		if b != '-' && b != ':' && b != '|' {
			return false
		}
	}
	return true
}

// splitTableCells splits a row's interior (without the leading/trailing
// "|") into raw cell texts, honoring "\|" as a literal pipe rather than
// a cell boundary.
func splitTableCells(inner []byte) [][]byte {
	var cells [][]byte
	start := 0
	for i := 0; i < len(inner); i++ {
		if inner[i] == '\\' && i+1 < len(inner) {
			i++
			continue
		}
		if inner[i] == '|' {
			cells = append(cells, inner[start:i])
			start = i + 1
		}
	}
	cells = append(cells, inner[start:])
	return cells
}

// 7. Table: a contiguous run of "|"-delimited rows.
//
// Centering is decided once, from the first row's
// indentation: any nonzero indentation centers the whole table.
func (bp *blockParser) tryTable() (BlockElement, bool) {
	raw := bp.lineBytes(bp.i)
	trimmed := bytes.TrimSpace(raw)
	if !isTableRow(trimmed) {
		return nil, false
	}

	start := bp.i
	centered := indentWidth(raw) > 0
	var rows []TableRow

	for !bp.atEOF() {
		raw := bp.lineBytes(bp.i)
		trimmed := bytes.TrimSpace(raw)
		if !isTableRow(trimmed) {
			break
		}
		ls := bp.lines[bp.i]
		lineStart := ls.start
		leadWS := len(raw) - len(bytes.TrimLeft(raw, " \t"))
		trimStart := lineStart + leadWS

		if isTableDivider(trimmed) {
			rows = append(rows, TableRow{
				Kind:   TableRowDivider,
				Region: bp.spanRegion(bp.i, bp.i),
			})
			bp.i++
			continue
		}

		inner := trimmed[1 : len(trimmed)-1]
		rawCells := splitTableCells(inner)
		cellOffset := trimStart + 1
		var cells []TableCell
		for _, rc := range rawCells {
			cellStart := cellOffset
			cellEnd := cellOffset + len(rc)
			cellOffset = cellEnd + 1 // account for the "|" separator
			trimmedCell := bytes.TrimSpace(rc)
			region := bp.region(cellStart, cellEnd)
			switch {
			case bytes.Equal(trimmedCell, []byte(">")):
				cells = append(cells, TableCell{Kind: TableCellSpanLeft, Region: region})
			case bytes.Equal(trimmedCell, []byte(`\/`)):
				cells = append(cells, TableCell{Kind: TableCellSpanAbove, Region: region})
			default:
				leftTrimmed := bytes.TrimLeft(rc, " \t")
				leadCell := len(rc) - len(leftTrimmed)
				trimmedBoth := bytes.TrimRight(leftTrimmed, " \t")
				contentStart := cellStart + leadCell
				contentEnd := contentStart + len(trimmedBoth)
				cells = append(cells, TableCell{
					Kind:    TableCellContent,
					Content: bp.parseInlineRange(contentStart, contentEnd),
					Region:  region,
				})
			}
		}
		rows = append(rows, TableRow{Kind: TableRowContent, Cells: cells, Region: bp.spanRegion(bp.i, bp.i)})
		bp.i++
	}

	region := bp.spanRegion(start, bp.i-1)
	return &Table{blockBase: blockBase{region}, Rows: rows, Centered: centered}, true
}
