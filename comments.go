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

// OffsetMap translates byte offsets in a comment-stripped view back to
// byte offsets in the original source. It is produced by [StripComments]
// and consumed while building every node's [Region], after which it can
// be discarded.
type OffsetMap struct {
	// toOriginal[i] is the original-source offset of stripped byte i.
	// toOriginal has length len(stripped)+1; the final entry is the
	// length of the original source, letting a one-past-the-end stripped
	// offset translate to one-past-the-end of the original.
	toOriginal []int
}

// Translate returns the original-source offset corresponding to the
// given stripped-view offset.
func (m *OffsetMap) Translate(strippedOffset int) int {
	if strippedOffset < 0 {
		strippedOffset = 0
	}
	if strippedOffset >= len(m.toOriginal) {
		strippedOffset = len(m.toOriginal) - 1
	}
	return m.toOriginal[strippedOffset]
}

// StripComments removes "%%…" line comments and "%%+…+%%" multi-line
// comments from input, returning the comment-free view, an [OffsetMap]
// for translating stripped offsets back to original offsets, and any
// diagnostics produced (currently only [UnterminatedMultilineComment]).
//
// This is a single left-to-right scan: bytes outside a comment pass
// through unchanged; comments and their delimiters are
// removed entirely, including any newlines inside a multi-line comment,
// which is how vimwiki joins lines split by such a comment. Comments do
// not nest, and there is no escape for a comment marker.
func StripComments(input []byte) ([]byte, *OffsetMap, []Diagnostic) {
	idx := newLineIndex(input)
	c := newCursor(input)

	var out []byte
	var toOriginal []int
	var diags []Diagnostic

	n := len(input)
	for !c.atEOF() {
		start, _, _ := c.position()
		switch {
		case c.consume("%%+"):
			closed := false
			for !c.atEOF() {
				if c.consume("+%%") {
					closed = true
					break
				}
				c.advance(1)
			}
			if !closed {
				diags = append(diags, Diagnostic{
					Kind:    UnterminatedMultilineComment,
					Region:  idx.region(start, n),
					Message: "%%+ comment has no matching +%%",
				})
			}

		case c.consume("%%"):
			c.skipLine()

		default:
			pos, _, _ := c.position()
			out = append(out, input[pos])
			toOriginal = append(toOriginal, pos)
			c.advance(1)
		}
	}
	toOriginal = append(toOriginal, n)

	return out, &OffsetMap{toOriginal: toOriginal}, diags
}

func hasPrefixAt(data []byte, at int, prefix string) bool {
	if at+len(prefix) > len(data) {
		return false
	}
	return bytes.Equal(data[at:at+len(prefix)], []byte(prefix))
}
