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
	"unicode/utf8"
)

// cursor is a zero-copy, checkpoint-restartable reader over a byte slice.
// It is the "Input" leaf component (spec §4.1). [StripComments] reads
// its input through a cursor; the block and inline parsers index the
// comment-stripped buffer directly.
//
// A cursor never advances past the end of its data. Restoring a
// checkpoint is O(1).
type cursor struct {
	data []byte
	pos  int
	line int // 1-based
	col  int // 1-based, counted in code points
}

func newCursor(data []byte) *cursor {
	return &cursor{data: data, line: 1, col: 1}
}

// mark is an opaque, O(1)-restorable cursor position.
type mark struct {
	pos, line, col int
}

func (c *cursor) checkpoint() mark {
	return mark{c.pos, c.line, c.col}
}

func (c *cursor) restore(m mark) {
	c.pos, c.line, c.col = m.pos, m.line, m.col
}

// atEOF reports whether the cursor has consumed all of its data.
func (c *cursor) atEOF() bool {
	return c.pos >= len(c.data)
}

// atLineStart reports whether the cursor sits immediately after a line
// ending, or at the beginning of the data.
func (c *cursor) atLineStart() bool {
	return c.pos == 0 || c.data[c.pos-1] == '\n'
}

// position returns the cursor's current byte offset and 1-based
// line/column.
func (c *cursor) position() (offset, line, column int) {
	return c.pos, c.line, c.col
}

// rest returns the unconsumed remainder of the cursor's data.
func (c *cursor) rest() []byte {
	return c.data[c.pos:]
}

// peek returns up to n code points starting at the cursor's position,
// without advancing.
func (c *cursor) peek(n int) []byte {
	end := c.pos
	for i := 0; i < n && end < len(c.data); i++ {
		_, size := utf8.DecodeRune(c.data[end:])
		end += size
	}
	return c.data[c.pos:end]
}

// peekByte returns the byte at the cursor's position, or (0, false) at
// EOF.
func (c *cursor) peekByte() (byte, bool) {
	if c.atEOF() {
		return 0, false
	}
	return c.data[c.pos], true
}

// advance consumes exactly n bytes (not code points), updating line and
// column tracking. It never advances past EOF.
func (c *cursor) advance(n int) []byte {
	start := c.pos
	end := start + n
	if end > len(c.data) {
		end = len(c.data)
	}
	for c.pos < end {
		r, size := utf8.DecodeRune(c.data[c.pos:])
		if size <= 0 {
			size = 1
		}
		if c.pos+size > end {
			size = end - c.pos
		}
		if r == '\n' {
			c.line++
			c.col = 1
		} else {
			c.col++
		}
		c.pos += size
	}
	return c.data[start:c.pos]
}

// consume advances past literal if the cursor is positioned at it,
// reporting whether it matched.
func (c *cursor) consume(literal string) bool {
	if bytes.HasPrefix(c.data[c.pos:], []byte(literal)) {
		c.advance(len(literal))
		return true
	}
	return false
}

// takeWhile advances while pred holds for the byte at the cursor's
// position, returning the consumed bytes.
func (c *cursor) takeWhile(pred func(byte) bool) []byte {
	start := c.pos
	for !c.atEOF() && pred(c.data[c.pos]) {
		c.advance(1)
	}
	return c.data[start:c.pos]
}

// skipLine advances to (but not past) the next line ending, or to EOF.
func (c *cursor) skipLine() {
	c.takeWhile(func(b byte) bool { return b != '\n' && b != '\r' })
}

func isSpaceOrTab(b byte) bool { return b == ' ' || b == '\t' }

func isBlankLineBytes(line []byte) bool {
	for _, b := range line {
		if b != ' ' && b != '\t' && b != '\r' && b != '\n' {
			return false
		}
	}
	return true
}
