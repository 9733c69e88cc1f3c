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
	"bytes"
	"strconv"
	"strings"
)

// lineSpan is one line of the comment-stripped buffer, as a half-open
// byte range that excludes the line's terminator.
type lineSpan struct {
	start, end int
}

// splitLines splits data into lines, accepting "\n", "\r", and "\r\n" as
// line endings.
func splitLines(data []byte) []lineSpan {
	var lines []lineSpan
	start := 0
	i := 0
	for i < len(data) {
		switch data[i] {
		case '\n':
			lines = append(lines, lineSpan{start, i})
			i++
			start = i
		case '\r':
			lines = append(lines, lineSpan{start, i})
			i++
			if i < len(data) && data[i] == '\n' {
				i++
			}
			start = i
		default:
			i++
		}
	}
	if start < len(data) {
		lines = append(lines, lineSpan{start, len(data)})
	}
	return lines
}

// blockParser drives the second-pass main engine: it
// walks the comment-stripped buffer line by line, attempting the twelve
// block productions in priority order and dispatching to the inline
// parser for block content.
type blockParser struct {
	source []byte // comment-stripped
	lines  []lineSpan
	i      int // current line index

	om    *OffsetMap
	orig  *lineIndex
	diags []Diagnostic
}

func newBlockParser(stripped []byte, om *OffsetMap, orig *lineIndex) *blockParser {
	return &blockParser{
		source: stripped,
		lines:  splitLines(stripped),
		om:     om,
		orig:   orig,
	}
}

func (bp *blockParser) addDiag(kind DiagnosticKind, strippedStart, strippedEnd int, message string) {
	bp.addDiagRegion(kind, bp.region(strippedStart, strippedEnd), message)
}

// addDiagRegion appends a diagnostic whose Region has already been
// translated to original-source coordinates (e.g. via [spanRegion]).
func (bp *blockParser) addDiagRegion(kind DiagnosticKind, region Region, message string) {
	bp.diags = append(bp.diags, Diagnostic{Kind: kind, Region: region, Message: message})
}

// region translates a stripped-view byte range into an original-source
// Region.
func (bp *blockParser) region(strippedStart, strippedEnd int) Region {
	o1 := bp.om.Translate(strippedStart)
	o2 := bp.om.Translate(strippedEnd)
	return bp.orig.region(o1, o2)
}

func (bp *blockParser) atEOF() bool { return bp.i >= len(bp.lines) }

// lineBytes returns the stripped content of line i, excluding its
// terminator.
func (bp *blockParser) lineBytes(i int) []byte {
	ls := bp.lines[i]
	return bp.source[ls.start:ls.end]
}

// lineEndOffset returns the stripped offset immediately after line i's
// terminator (i.e. the start of line i+1, or the end of the buffer).
func (bp *blockParser) lineEndOffset(i int) int {
	if i+1 < len(bp.lines) {
		return bp.lines[i+1].start
	}
	return len(bp.source)
}

// spanRegion returns the original-source Region of the stripped-view
// range covering lines[a:b+1] including their terminators, so that
// adjacent blocks' regions partition the buffer with no gaps (Testable
// Property 3).
func (bp *blockParser) spanRegion(a, b int) Region {
	return bp.region(bp.lines[a].start, bp.lineEndOffset(b))
}

func indentWidth(line []byte) int {
	n := 0
	for _, b := range line {
		switch b {
		case ' ':
			n++
		case '\t':
			n += 4
		default:
			return n
		}
	}
	return n
}

func trimLeadingIndent(line []byte) []byte {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return line[i:]
}

// parsePage consumes every line of the buffer, producing the document's
// top-level blocks. It is total: every line is consumed by some
// production.
func (bp *blockParser) parsePage() *Page {
	var blocks []BlockElement
	for !bp.atEOF() {
		blocks = append(blocks, bp.parseOneBlock())
	}
	return &Page{Blocks: blocks}
}

// parseOneBlock attempts the twelve productions in priority order and
// returns the first match.
func (bp *blockParser) parseOneBlock() BlockElement {
	if b, ok := bp.tryBlankLine(); ok {
		return b
	}
	if b, ok := bp.tryHeader(); ok {
		return b
	}
	if b, ok := bp.tryDivider(); ok {
		return b
	}
	if b, ok := bp.tryPlaceholder(); ok {
		return b
	}
	if b, ok := bp.tryMathBlock(); ok {
		return b
	}
	if b, ok := bp.tryPreformatted(); ok {
		return b
	}
	if b, ok := bp.tryTable(); ok {
		return b
	}
	if b, ok := bp.tryDefinitionList(); ok {
		return b
	}
	if b, ok := bp.tryList(); ok {
		return b
	}
	if b, ok := bp.tryBlockquote(); ok {
		return b
	}
	if b, ok := bp.tryParagraph(); ok {
		return b
	}
	return bp.fallbackNonBlankLine()
}

// 1. BlankLine.
func (bp *blockParser) tryBlankLine() (BlockElement, bool) {
	if !isBlankLineBytes(bp.lineBytes(bp.i)) {
		return nil, false
	}
	region := bp.spanRegion(bp.i, bp.i)
	bp.i++
	return &BlankLine{blockBase{region}}, true
}

// 2. Header: ^\s*(=+)\s*(.+?)\s*\1\s*$
//
// A line only counts as header-shaped once it both opens and closes
// with a run of "=" (after whitespace trimming on each end); otherwise
// it is left for Paragraph to claim without comment. A header-shaped
// line whose two runs have unequal length, or has no content between
// them, is MalformedHeader and falls back to Paragraph.
func (bp *blockParser) tryHeader() (BlockElement, bool) {
	raw := bp.lineBytes(bp.i)
	lineStart := bp.lines[bp.i].start

	trimmed := bytes.TrimLeft(raw, " \t")
	lead := len(raw) - len(trimmed)

	open := 0
	for open < len(trimmed) && trimmed[open] == '=' {
		open++
	}
	if open == 0 {
		return nil, false
	}

	rightTrimmed := bytes.TrimRight(trimmed, " \t")
	close := 0
	for close < len(rightTrimmed) && rightTrimmed[len(rightTrimmed)-1-close] == '=' {
		close++
	}
	if close == 0 || close > len(rightTrimmed)-open {
		// No closing run distinct from the opening one: not header-shaped.
		return nil, false
	}

	region := bp.spanRegion(bp.i, bp.i)
	if open != close {
		bp.addDiagRegion(MalformedHeader, region, "header opening and closing = runs have different lengths")
		return bp.tryParagraph()
	}

	inner := rightTrimmed[open : len(rightTrimmed)-close]
	innerTrimmedLeft := bytes.TrimLeft(inner, " \t")
	leadInner := len(inner) - len(innerTrimmedLeft)
	content := bytes.TrimRight(innerTrimmedLeft, " \t")
	if len(content) == 0 {
		bp.addDiagRegion(MalformedHeader, region, "header has no content between = runs")
		return bp.tryParagraph()
	}

	contentStart := lineStart + lead + open + leadInner
	contentEnd := contentStart + len(content)

	inlines := bp.parseInlineRange(contentStart, contentEnd)
	centered := lead > 0
	level := open
	if level > 6 {
		level = 6
	}
	bp.i++
	return &Header{
		blockBase: blockBase{region},
		Level:     level,
		Centered:  centered,
		Content:   inlines,
	}, true
}

// 3. Divider: ^-{4,}\s*$
func (bp *blockParser) tryDivider() (BlockElement, bool) {
	trimmed := bp.lineBytes(bp.i)
	n := 0
	for n < len(trimmed) && trimmed[n] == '-' {
		n++
	}
	if n < 4 {
		return nil, false
	}
	if len(bytes.TrimRight(trimmed[n:], " \t")) != 0 {
		return nil, false
	}
	region := bp.spanRegion(bp.i, bp.i)
	bp.i++
	return &Divider{blockBase{region}}, true
}

// 4. Placeholder: %title, %nohtml, %template, %date at column 1.
func (bp *blockParser) tryPlaceholder() (BlockElement, bool) {
	raw := bp.lineBytes(bp.i)
	if len(raw) == 0 || raw[0] != '%' {
		return nil, false
	}
	rest := raw[1:]
	name := rest
	if sp := bytes.IndexAny(rest, " \t"); sp >= 0 {
		name = rest[:sp]
	}
	lname := strings.ToLower(string(name))
	if !placeholderNames[lname] {
		return nil, false
	}
	value := ""
	if len(name) < len(rest) {
		value = strings.TrimSpace(string(rest[len(name):]))
	}
	region := bp.spanRegion(bp.i, bp.i)
	bp.i++

	p := &Placeholder{blockBase: blockBase{region}}
	switch lname {
	case "title":
		p.Kind = PlaceholderTitle
		p.Value = value
	case "nohtml":
		p.Kind = PlaceholderNoHTML
	case "template":
		p.Kind = PlaceholderTemplate
		p.Value = value
	case "date":
		p.Kind = PlaceholderDate
		if isValidISODate(value) {
			p.Date = value
			p.HasDate = true
		} else if value != "" {
			bp.addDiagRegion(InvalidDate, region, "%date value is not YYYY-MM-DD")
		}
	}
	return p, true
}

func isValidISODate(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	y, err1 := strconv.Atoi(s[0:4])
	m, err2 := strconv.Atoi(s[5:7])
	d, err3 := strconv.Atoi(s[8:10])
	if err1 != nil || err2 != nil || err3 != nil {
		return false
	}
	if y < 0 || m < 1 || m > 12 || d < 1 || d > 31 {
		return false
	}
	return true
}

// 5. MathBlock: {{$[%env%]? ... }}$
func (bp *blockParser) tryMathBlock() (BlockElement, bool) {
	raw := bp.lineBytes(bp.i)
	trimmed := trimLeadingIndent(raw)
	if !bytes.HasPrefix(trimmed, []byte("{{$")) {
		return nil, false
	}
	header := trimmed[3:]
	env := ""
	if bytes.HasPrefix(header, []byte("%")) {
		if end := bytes.IndexByte(header[1:], '%'); end >= 0 {
			env = string(header[1 : 1+end])
		}
	}

	start := bp.i
	var lines []string
	j := bp.i + 1
	closed := false
	for j < len(bp.lines) {
		lb := bp.lineBytes(j)
		if bytes.Equal(bytes.TrimSpace(lb), []byte("}}$")) {
			closed = true
			break
		}
		lines = append(lines, string(lb))
		j++
	}
	if !closed {
		region := bp.spanRegion(start, start)
		bp.addDiagRegion(UnterminatedMathBlock, region, "{{$ block has no matching }}$")
		return bp.tryParagraph()
	}
	region := bp.spanRegion(start, j)
	bp.i = j + 1
	return &MathBlock{blockBase: blockBase{region}, Env: env, Lines: lines}, true
}

// 6. PreformattedText: {{{[lang][;metadata]? ... }}}
func (bp *blockParser) tryPreformatted() (BlockElement, bool) {
	raw := bp.lineBytes(bp.i)
	trimmed := trimLeadingIndent(raw)
	if !bytes.HasPrefix(trimmed, []byte("{{{")) {
		return nil, false
	}
	header := string(trimmed[3:])
	lang, metadata := parsePreformattedHeader(header)

	start := bp.i
	var lines []string
	j := bp.i + 1
	closed := false
	for j < len(bp.lines) {
		lb := bp.lineBytes(j)
		if bytes.Equal(bytes.TrimSpace(lb), []byte("}}}")) {
			closed = true
			break
		}
		lines = append(lines, string(lb))
		j++
	}
	if !closed {
		region := bp.spanRegion(start, start)
		bp.addDiagRegion(UnterminatedPreformatted, region, "{{{ block has no matching }}}")
		return bp.tryParagraph()
	}
	region := bp.spanRegion(start, j)
	bp.i = j + 1
	return &PreformattedText{blockBase: blockBase{region}, Lang: lang, Metadata: metadata, Lines: lines}, true
}

// parsePreformattedHeader splits "lang;key="value";key2="value2"" into a
// language tag (ending at "=" or ";", the first metadata assignment) and
// a metadata map.
func parsePreformattedHeader(header string) (lang string, metadata map[string]string) {
	metadata = make(map[string]string)
	cut := strings.IndexAny(header, "=;")
	if cut < 0 {
		return strings.TrimSpace(header), metadata
	}
	// If the delimiter is "=", back up to the start of that key so the
	// key becomes the first metadata pair instead of part of lang.
	if header[cut] == '=' {
		keyStart := cut
		for keyStart > 0 && header[keyStart-1] != ';' {
			keyStart--
		}
		lang = strings.TrimSpace(header[:keyStart])
		parsePreformattedMetadata(header[keyStart:], metadata)
		return lang, metadata
	}
	lang = strings.TrimSpace(header[:cut])
	parsePreformattedMetadata(header[cut+1:], metadata)
	return lang, metadata
}

func parsePreformattedMetadata(s string, metadata map[string]string) {
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		eq := strings.IndexByte(part, '=')
		if eq < 0 {
			continue
		}
		key := strings.TrimSpace(part[:eq])
		val := strings.TrimSpace(part[eq+1:])
		val = strings.Trim(val, `"`)
		if key != "" {
			metadata[key] = val
		}
	}
}

// 11. Paragraph: a zero-indentation non-blank line, greedily extended.
func (bp *blockParser) tryParagraph() (BlockElement, bool) {
	if indentWidth(bp.lineBytes(bp.i)) != 0 {
		return nil, false
	}
	if isBlankLineBytes(bp.lineBytes(bp.i)) {
		return nil, false
	}
	start := bp.i
	var lines [][]InlineElement
	for !bp.atEOF() {
		raw := bp.lineBytes(bp.i)
		if indentWidth(raw) != 0 || isBlankLineBytes(raw) {
			break
		}
		if bp.i > start && bp.lineStartsCompetingBlock(bp.i) {
			break
		}
		ls := bp.lines[bp.i]
		lines = append(lines, bp.parseInlineRange(ls.start, ls.end))
		bp.i++
	}
	region := bp.spanRegion(start, bp.i-1)
	return &Paragraph{blockBase: blockBase{region}, Lines: lines}, true
}

// lineStartsCompetingBlock reports whether line i should end an
// in-progress paragraph because it starts a higher-priority production:
// a divider, a header whose opening and closing "=" runs have equal
// length, a table row, a placeholder, or a "{{$" / "{{{" block opener.
// A "|" line ends a paragraph and starts a table.
func (bp *blockParser) lineStartsCompetingBlock(i int) bool {
	raw := bp.lineBytes(i)
	trimmed := bytes.TrimSpace(raw)
	if isTableRow(trimmed) {
		return true
	}
	open := len(trimmed) - len(bytes.TrimLeft(trimmed, "="))
	if rest := trimmed[open:]; open > 0 && len(rest)-len(bytes.TrimRight(rest, "=")) == open {
		return true
	}
	if bytes.HasPrefix(trimmed, []byte("{{$")) || bytes.HasPrefix(trimmed, []byte("{{{")) {
		return true
	}
	if f := bytes.Fields(trimmed); len(f) > 0 && trimmed[0] == '%' && placeholderNames[strings.ToLower(string(f[0][1:]))] {
		return true
	}
	if len(trimmed) >= 4 {
		allDash := true
		for _, c := range trimmed {
			if c != '-' {
				allDash = false
				break
			}
		}
		if allDash {
			return true
		}
	}
	return false
}

// 12. NonBlankLine: catches everything else (1-3 space indentation).
func (bp *blockParser) fallbackNonBlankLine() BlockElement {
	ls := bp.lines[bp.i]
	region := bp.spanRegion(bp.i, bp.i)
	content := bp.parseInlineRange(ls.start, ls.end)
	bp.i++
	return &NonBlankLine{blockBase: blockBase{region}, Content: content}
}
