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

// listMarker is the result of recognizing a list item's marker, before
// the roman/alpha disambiguation pass resolves tentativeLetter markers
// to either [ListLowerAlpha]/[ListUpperAlpha] or
// [ListLowerRoman]/[ListUpperRoman].
type listMarker struct {
	kind           ListKind
	suffix         ListSuffix
	text           string // the counter text; empty for symbolic bullets
	contentOffset  int    // byte offset into the trimmed line where content starts
	tentativeUpper bool   // letters were uppercase, if tentativeLetter
	tentativeLetter bool
}

// parseListMarker recognizes one list-item marker at the start of
// trimmed (a line with its leading indentation already removed). It
// does not itself distinguish alpha from roman markers — see
// resolveLetterMarkers.
func parseListMarker(trimmed []byte) (listMarker, bool) {
	if len(trimmed) == 0 {
		return listMarker{}, false
	}
	switch trimmed[0] {
	case '-':
		if len(trimmed) == 1 || trimmed[1] == ' ' {
			return listMarker{kind: ListHyphen, contentOffset: markerContentOffset(trimmed, 1)}, true
		}
		return listMarker{}, false
	case '*':
		if len(trimmed) == 1 || trimmed[1] == ' ' {
			return listMarker{kind: ListAsterisk, contentOffset: markerContentOffset(trimmed, 1)}, true
		}
		return listMarker{}, false
	case '#':
		if len(trimmed) == 1 || trimmed[1] == ' ' {
			return listMarker{kind: ListPound, contentOffset: markerContentOffset(trimmed, 1)}, true
		}
		return listMarker{}, false
	}

	j := 0
	allDigit := trimmed[0] >= '0' && trimmed[0] <= '9'
	lower := trimmed[0] >= 'a' && trimmed[0] <= 'z'
	upper := trimmed[0] >= 'A' && trimmed[0] <= 'Z'
	if !allDigit && !lower && !upper {
		return listMarker{}, false
	}
	for j < len(trimmed) {
		c := trimmed[j]
		switch {
		case allDigit && c >= '0' && c <= '9':
			j++
		case lower && c >= 'a' && c <= 'z':
			j++
		case upper && c >= 'A' && c <= 'Z':
			j++
		default:
			goto scanned
		}
	}
scanned:
	if j == 0 || j > 4 && !allDigit {
		return listMarker{}, false
	}
	if j >= len(trimmed) {
		return listMarker{}, false
	}
	var suffix ListSuffix
	switch trimmed[j] {
	case '.':
		suffix = ListSuffixPeriod
	case ')':
		suffix = ListSuffixParen
	default:
		return listMarker{}, false
	}
	after := j + 1
	if after < len(trimmed) && trimmed[after] != ' ' {
		return listMarker{}, false
	}

	text := string(trimmed[:j])
	contentOffset := markerContentOffset(trimmed, after)
	if allDigit {
		return listMarker{kind: ListDigit, suffix: suffix, text: text, contentOffset: contentOffset}, true
	}
	return listMarker{
		suffix:          suffix,
		text:            text,
		contentOffset:   contentOffset,
		tentativeLetter: true,
		tentativeUpper:  upper,
	}, true
}

func markerContentOffset(trimmed []byte, markerEnd int) int {
	if markerEnd < len(trimmed) && trimmed[markerEnd] == ' ' {
		return markerEnd + 1
	}
	return markerEnd
}

// resolveLetterMarkers implements the roman-vs-alpha disambiguator:
// within one contiguous run of sibling items (one
// [List]), if every tentative-letter marker's text is composed entirely
// of roman-numeral characters, the whole run is Roman; otherwise the
// whole run is Alpha. The decision is atomic across the run, not
// per-item.
func resolveLetterMarkers(markers []listMarker) []ListKind {
	kinds := make([]ListKind, len(markers))
	allRoman := true
	anyLetter := false
	for _, m := range markers {
		if !m.tentativeLetter {
			continue
		}
		anyLetter = true
		for i := 0; i < len(m.text); i++ {
			if !isRomanDigit(m.text[i]) {
				allRoman = false
			}
		}
	}
	if !anyLetter {
		allRoman = false
	}
	for i, m := range markers {
		switch {
		case !m.tentativeLetter:
			kinds[i] = m.kind
		case allRoman && m.tentativeUpper:
			kinds[i] = ListUpperRoman
		case allRoman:
			kinds[i] = ListLowerRoman
		case m.tentativeUpper:
			kinds[i] = ListUpperAlpha
		default:
			kinds[i] = ListLowerAlpha
		}
	}
	return kinds
}

// parseTodoAttribute recognizes a "[x]" todo attribute at the start of
// content, returning the remaining content past it.
func parseTodoAttribute(content []byte) (status TodoStatus, rest []byte, ok bool) {
	if len(content) < 3 || content[0] != '[' || content[2] != ']' {
		return 0, content, false
	}
	status, known := todoAttributeChars[content[1]]
	if !known {
		return 0, content, false
	}
	rest = content[3:]
	if len(rest) > 0 && rest[0] == ' ' {
		rest = rest[1:]
	}
	return status, rest, true
}

// 9. List: an indentation-sensitive run of list items.
func (bp *blockParser) tryList() (BlockElement, bool) {
	raw := bp.lineBytes(bp.i)
	indent := indentWidth(raw)
	if _, ok := parseListMarker(trimLeadingIndent(raw)); !ok {
		return nil, false
	}
	list := bp.parseListRun(indent)
	return list, true
}

// parseListRun consumes every sibling item at exactly baseIndent,
// recursing into parseListRun at a deeper indent whenever a nested
// marker is found, and returns the resulting List. Termination follows
// a blank line, a line less indented than baseIndent, or
// a more-indented line that is not itself a list marker (treated as a
// foreign block and left for the next parseOneBlock call).
func (bp *blockParser) parseListRun(baseIndent int) *List {
	start := bp.i
	var items []ListItem
	var markers []listMarker

	for !bp.atEOF() {
		raw := bp.lineBytes(bp.i)
		if isBlankLineBytes(raw) {
			break
		}
		indent := indentWidth(raw)
		if indent < baseIndent {
			break
		}
		trimmed := trimLeadingIndent(raw)
		marker, ok := parseListMarker(trimmed)
		if indent > baseIndent {
			if !ok {
				break
			}
			sub := bp.parseListRun(indent)
			if len(items) > 0 {
				items[len(items)-1].Sublists = append(items[len(items)-1].Sublists, *sub)
			}
			continue
		}
		if !ok {
			break
		}

		ls := bp.lines[bp.i]
		contentOffset := ls.start + (len(raw) - len(trimmed)) + marker.contentOffset
		contentBytes := bp.source[contentOffset:ls.end]

		status, afterTodo, hasTodo := parseTodoAttribute(contentBytes)
		if hasTodo {
			contentOffset = ls.end - len(afterTodo)
		}
		region := bp.spanRegion(bp.i, bp.i)
		item := ListItem{
			Region:  region,
			Indent:  indent,
			Suffix:  marker.suffix,
			Marker:  marker.text,
			Content: bp.parseInlineRange(contentOffset, ls.end),
		}
		if hasTodo {
			item.Todo = status
			item.HasTodo = true
		}
		items = append(items, item)
		markers = append(markers, marker)
		bp.i++
	}

	kinds := resolveLetterMarkers(markers)
	for i := range items {
		items[i].Kind = kinds[i]
	}

	end := bp.i - 1
	if end < start {
		end = start
	}
	region := bp.spanRegion(start, end)
	return &List{blockBase: blockBase{region}, Items: items}
}

// 8. DefinitionList: one or more "term:: definition" entries sharing a
// common, unindented form, each optionally followed by ":: definition"
// continuation lines.
func (bp *blockParser) tryDefinitionList() (BlockElement, bool) {
	raw := bp.lineBytes(bp.i)
	if indentWidth(raw) != 0 {
		return nil, false
	}
	sep := findDefinitionSeparator(raw)
	if sep < 0 {
		return nil, false
	}

	start := bp.i
	var entries []DefinitionListEntry
	for !bp.atEOF() {
		raw := bp.lineBytes(bp.i)
		if indentWidth(raw) != 0 || isBlankLineBytes(raw) {
			break
		}
		sep := findDefinitionSeparator(raw)
		if sep < 0 {
			// A "::" line after a term is a continuation definition.
			def := bytes.TrimLeft(bytes.TrimPrefix(raw, []byte("::")), " \t")
			if len(entries) > 0 && bytes.HasPrefix(raw, []byte("::")) && len(bytes.TrimSpace(def)) > 0 {
				last := &entries[len(entries)-1]
				end := bp.lines[bp.i].end
				last.Defs = append(last.Defs, bp.parseInlineRange(end-len(def), end))
				bp.i++
				continue
			}
			break
		}
		ls := bp.lines[bp.i]
		sepStart := ls.start + sep
		defStart := sepStart + 2
		term := bytes.TrimRight(raw[:sep], " \t") // raw[:sep] has no leading trim to account for
		def := bytes.TrimLeft(raw[sep+2:], " \t")

		entry := DefinitionListEntry{
			Term: bp.parseInlineRange(ls.start, ls.start+len(term)),
		}
		if len(bytes.TrimSpace(def)) > 0 {
			defContentStart := defStart + (len(raw[sep+2:]) - len(def))
			entry.Defs = [][]InlineElement{bp.parseInlineRange(defContentStart, ls.end)}
		}
		entries = append(entries, entry)
		bp.i++
	}

	region := bp.spanRegion(start, bp.i-1)
	return &DefinitionList{blockBase: blockBase{region}, Entries: entries}, true
}

// findDefinitionSeparator returns the byte offset of "::" in line,
// requiring it be preceded by non-whitespace (a nonempty term), or -1.
func findDefinitionSeparator(line []byte) int {
	i := bytes.Index(line, []byte("::"))
	if i <= 0 {
		return -1
	}
	if len(bytes.TrimSpace(line[:i])) == 0 {
		return -1
	}
	return i
}

// 10. Blockquote: chevron ("> text") or indented (4+ spaces) form.
func (bp *blockParser) tryBlockquote() (BlockElement, bool) {
	raw := bp.lineBytes(bp.i)
	trimmed := trimLeadingIndent(raw)
	switch {
	case len(trimmed) > 0 && trimmed[0] == '>':
		return bp.parseChevronBlockquote()
	case indentWidth(raw) >= 4:
		return bp.parseIndentedBlockquote()
	}
	return nil, false
}

func (bp *blockParser) parseChevronBlockquote() (BlockElement, bool) {
	start := bp.i
	var lines [][]InlineElement
	for !bp.atEOF() {
		raw := bp.lineBytes(bp.i)
		trimmed := trimLeadingIndent(raw)
		if len(trimmed) == 0 || trimmed[0] != '>' {
			break
		}
		ls := bp.lines[bp.i]
		markerOffset := ls.start + (len(raw) - len(trimmed)) + 1
		if markerOffset < ls.end && bp.source[markerOffset] == ' ' {
			markerOffset++
		}
		lines = append(lines, bp.parseInlineRange(markerOffset, ls.end))
		bp.i++
	}
	region := bp.spanRegion(start, bp.i-1)
	return &Blockquote{blockBase: blockBase{region}, Form: BlockquoteChevron, Lines: lines}, true
}

func (bp *blockParser) parseIndentedBlockquote() (BlockElement, bool) {
	start := bp.i
	var lines [][]InlineElement
	for !bp.atEOF() {
		raw := bp.lineBytes(bp.i)
		if isBlankLineBytes(raw) || indentWidth(raw) < 4 {
			break
		}
		ls := bp.lines[bp.i]
		trimmed := trimLeadingIndent(raw)
		contentOffset := ls.start + (len(raw) - len(trimmed))
		lines = append(lines, bp.parseInlineRange(contentOffset, ls.end))
		bp.i++
	}
	region := bp.spanRegion(start, bp.i-1)
	return &Blockquote{blockBase: blockBase{region}, Form: BlockquoteIndented, Lines: lines}, true
}
