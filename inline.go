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
	"strings"
	"unicode/utf8"
)

// inlineParser parses one contiguous span of the comment-stripped
// buffer into a sequence of [InlineElement]s, dispatching by leading
// byte among math-inline, tags, links, decorated text, keywords, and
// plain text.
type inlineParser struct {
	om    *OffsetMap
	orig  *lineIndex
	diags *[]Diagnostic
}

// ParseInline parses span, a byte slice of already comment-stripped
// source, as a sequence of inline elements. It is
// exposed as an entry point for callers (e.g. a future wiki/filesystem
// layer) that already hold a span they know to be comment-free and want
// original-source-relative regions; ordinary callers should use [Parse].
func ParseInline(span []byte) ([]InlineElement, []Diagnostic) {
	idx := newLineIndex(span)
	om := identityOffsetMap(len(span))
	var diags []Diagnostic
	ip := &inlineParser{om: om, orig: idx, diags: &diags}
	elems := ip.parseSpan(0, span, 0)
	return elems, diags
}

// identityOffsetMap builds an [OffsetMap] that maps every offset to
// itself, for use when a span is already known to be in original-source
// coordinates.
func identityOffsetMap(n int) *OffsetMap {
	toOriginal := make([]int, n+1)
	for i := range toOriginal {
		toOriginal[i] = i
	}
	return &OffsetMap{toOriginal: toOriginal}
}

// parseInlineRange parses the stripped-view byte range [start, end) as
// inline content, translating every produced region back to the
// original source and appending any diagnostics to bp.diags.
func (bp *blockParser) parseInlineRange(start, end int) []InlineElement {
	ip := &inlineParser{om: bp.om, orig: bp.orig, diags: &bp.diags}
	return ip.parseSpan(start, bp.source[start:end], 0)
}

// region translates the stripped-view range [base+lo, base+hi) into an
// original-source Region.
func (ip *inlineParser) region(base, lo, hi int) Region {
	o1 := ip.om.Translate(base + lo)
	o2 := ip.om.Translate(base + hi)
	return ip.orig.region(o1, o2)
}

func (ip *inlineParser) addDiag(kind DiagnosticKind, base, lo, hi int, message string) {
	*ip.diags = append(*ip.diags, Diagnostic{Kind: kind, Region: ip.region(base, lo, hi), Message: message})
}

// parseSpan parses data (the stripped-view bytes at stripped offset
// base) into a coalesced sequence of inline elements. depth counts
// recursion through decorations and link descriptions; once it exceeds
// [recursionLimit], the remainder of data is emitted as literal text
// with a RecursionLimitExceeded diagnostic.
func (ip *inlineParser) parseSpan(base int, data []byte, depth int) []InlineElement {
	if depth > recursionLimit {
		ip.addDiag(RecursionLimitExceeded, base, 0, len(data), "inline nesting exceeds recursion limit")
		if len(data) == 0 {
			return nil
		}
		return []InlineElement{ip.textElement(base, 0, len(data), string(data))}
	}

	var out []InlineElement
	textStart := 0
	pos := 0
	flush := func(end int) {
		if end > textStart {
			out = append(out, ip.textElement(base, textStart, end, string(data[textStart:end])))
		}
	}

	for pos < len(data) {
		if elem, n, ok := ip.tryMathInline(base, data, pos); ok {
			flush(pos)
			out = append(out, elem)
			pos += n
			textStart = pos
			continue
		}
		if elem, n, ok := ip.tryTags(base, data, pos); ok {
			flush(pos)
			out = append(out, elem)
			pos += n
			textStart = pos
			continue
		}
		if elem, n, ok := ip.tryLink(base, data, pos, depth); ok {
			flush(pos)
			out = append(out, elem)
			pos += n
			textStart = pos
			continue
		}
		if elem, n, ok := ip.tryDecoratedText(base, data, pos, depth); ok {
			flush(pos)
			out = append(out, elem)
			pos += n
			textStart = pos
			continue
		}
		if elem, n, ok := ip.tryKeyword(base, data, pos); ok {
			flush(pos)
			out = append(out, elem)
			pos += n
			textStart = pos
			continue
		}
		_, size := utf8.DecodeRune(data[pos:])
		if size <= 0 {
			size = 1
		}
		pos += size
	}
	flush(len(data))
	return out
}

func (ip *inlineParser) textElement(base, lo, hi int, value string) *Text {
	return &Text{inlineBase{ip.region(base, lo, hi)}, value}
}

// tryMathInline matches "$ ... $" math inline spans. The delimiters must
// not be separated by a line ending, since MathBlock already owns
// multi-line math.
func (ip *inlineParser) tryMathInline(base int, data []byte, pos int) (InlineElement, int, bool) {
	if data[pos] != '$' {
		return nil, 0, false
	}
	close := bytes.IndexByte(data[pos+1:], '$')
	if close < 0 {
		return nil, 0, false
	}
	inner := data[pos+1 : pos+1+close]
	if bytes.ContainsAny(inner, "\n\r") || len(inner) == 0 {
		return nil, 0, false
	}
	n := 1 + close + 1
	value := strings.TrimSpace(string(inner))
	elem := &MathInline{inlineBase{ip.region(base, pos, pos+n)}, value}
	return elem, n, true
}

// tryTags matches ":tag:tag:…:" tag runs. A tag run must be
// bounded by start-of-text/whitespace on the left so that ordinary
// colons inside words (e.g. in URLs) are not mistaken for tags; that
// case is handled earlier by tryLink.
func (ip *inlineParser) tryTags(base int, data []byte, pos int) (InlineElement, int, bool) {
	if data[pos] != ':' {
		return nil, 0, false
	}
	if pos > 0 {
		prev := data[pos-1]
		if !isSpaceOrTab(prev) && prev != '\n' {
			return nil, 0, false
		}
	}
	i := pos + 1
	var names []string
	for {
		start := i
		for i < len(data) && isTagNameByte(data[i]) {
			i++
		}
		if i == start {
			return nil, 0, false
		}
		names = append(names, string(data[start:i]))
		if i >= len(data) || data[i] != ':' {
			return nil, 0, false
		}
		i++
		if i >= len(data) || isSpaceOrTab(data[i]) || data[i] == '\n' {
			break
		}
	}
	n := i - pos
	elem := &Tags{inlineBase{ip.region(base, pos, pos+n)}, names}
	return elem, n, true
}

func isTagNameByte(b byte) bool {
	return b != ':' && b != ' ' && b != '\t' && b != '\n' && b != '\r'
}

// tryKeyword matches one of the six uppercase todo-style keywords, which
// must appear as a whole word.
func (ip *inlineParser) tryKeyword(base int, data []byte, pos int) (InlineElement, int, bool) {
	if pos > 0 && isWordByte(data[pos-1]) {
		return nil, 0, false
	}
	rest := data[pos:]
	for word, kw := range keywords {
		if len(rest) < len(word) {
			continue
		}
		if string(rest[:len(word)]) != word {
			continue
		}
		if len(rest) > len(word) && isWordByte(rest[len(word)]) {
			continue
		}
		elem := &KeywordElement{inlineBase{ip.region(base, pos, pos+len(word))}, kw}
		return elem, len(word), true
	}
	return nil, 0, false
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// decorationDelims maps each decoration style to its opening delimiter.
// Every style except bold-italic closes with the same delimiter.
var decorationDelims = []struct {
	style DecorationStyle
	delim string
}{
	{DecorationBoldItalic, "*_"}, // and "_*"; handled specially, see tryDecoratedText
	{DecorationBold, "*"},
	{DecorationItalic, "_"},
	{DecorationStrikeout, "~~"},
	{DecorationSuperscript, "^"},
	{DecorationSubscript, ",,"},
	{DecorationCode, "`"},
}

// tryDecoratedText matches one of the seven decorated-text styles.
// Same-style nesting is disallowed: the closing
// delimiter is the first occurrence of the same delimiter, so an inner
// run of the identical style is never recognized as a nested element
// (it becomes literal text inside the outer one).
func (ip *inlineParser) tryDecoratedText(base int, data []byte, pos int, depth int) (InlineElement, int, bool) {
	switch {
	case hasPrefixAt(data, pos, "*_"):
		return ip.closeDecoration(base, data, pos, depth, "*_", "_*", DecorationBoldItalic, true)
	case hasPrefixAt(data, pos, "_*"):
		return ip.closeDecoration(base, data, pos, depth, "_*", "*_", DecorationBoldItalic, true)
	case hasPrefixAt(data, pos, "~~"):
		return ip.closeDecoration(base, data, pos, depth, "~~", "~~", DecorationStrikeout, true)
	case hasPrefixAt(data, pos, ",,"):
		return ip.closeDecoration(base, data, pos, depth, ",,", ",,", DecorationSubscript, true)
	case data[pos] == '*':
		return ip.closeDecoration(base, data, pos, depth, "*", "*", DecorationBold, true)
	case data[pos] == '_':
		return ip.closeDecoration(base, data, pos, depth, "_", "_", DecorationItalic, true)
	case data[pos] == '^':
		return ip.closeDecoration(base, data, pos, depth, "^", "^", DecorationSuperscript, true)
	case data[pos] == '`':
		return ip.closeDecoration(base, data, pos, depth, "`", "`", DecorationCode, false)
	}
	return nil, 0, false
}

// closeDecoration looks for close starting just past the open delimiter,
// on the same logical span (no unescaped line ending crossed), and
// builds the decoration if found. When recurse is false (code spans),
// the interior becomes a single literal Text rather than being reparsed.
func (ip *inlineParser) closeDecoration(base int, data []byte, pos, depth int, open, close string, style DecorationStyle, recurse bool) (InlineElement, int, bool) {
	innerStart := pos + len(open)
	rel := bytes.Index(data[innerStart:], []byte(close))
	if rel < 0 {
		return nil, 0, false
	}
	innerEnd := innerStart + rel
	if innerEnd == innerStart {
		return nil, 0, false
	}
	inner := data[innerStart:innerEnd]
	if bytes.ContainsAny(inner, "\n\r") {
		return nil, 0, false
	}
	n := innerEnd + len(close) - pos

	var content []InlineElement
	if recurse {
		content = ip.parseSpan(base+innerStart, inner, depth+1)
	} else {
		content = []InlineElement{ip.textElement(base, innerStart, innerEnd, string(inner))}
	}
	elem := &DecoratedText{inlineBase{ip.region(base, pos, pos+n)}, style, content}
	return elem, n, true
}
