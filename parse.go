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

// Package vimwiki provides a parser for the vimwiki lightweight markup
// language: a two-pass, deterministic compiler from UTF-8 text to a
// typed, region-annotated AST. It does not render HTML, resolve links
// against a wiki or filesystem, or provide a CLI or editor integration —
// those are layers built on top of this package.
package vimwiki

import (
	"unicode/utf8"
)

// Parse parses input as a vimwiki page. It never returns a fatal error:
// every malformed construct is represented in the returned Diagnostics
// alongside the best-effort AST the parser could still build around it.
//
// Parse runs in three passes: UTF-8 validation (replacing any invalid
// byte with U+FFFD), comment stripping ([StripComments]), and block/
// inline parsing over the comment-stripped view, with every produced
// [Region] translated back to input's own coordinates.
func Parse(input []byte) (*Page, []Diagnostic) {
	clean, utf8Diags := sanitizeUTF8(input)
	stripped, om, stripDiags := StripComments(clean)

	orig := newLineIndex(clean)
	bp := newBlockParser(stripped, om, orig)
	page := bp.parsePage()

	var diags []Diagnostic
	diags = append(diags, utf8Diags...)
	diags = append(diags, stripDiags...)
	diags = append(diags, bp.diags...)
	return page, diags
}

// ParseBlock parses span as a single top-level block, as if it were one
// page consisting only of span. span must already be comment-stripped;
// callers with raw vimwiki source should call [StripComments] first or
// use [Parse]. Only the first block recognized in span is returned; any
// remaining lines are discarded.
func ParseBlock(span []byte) (BlockElement, []Diagnostic) {
	idx := newLineIndex(span)
	om := identityOffsetMap(len(span))
	bp := newBlockParser(span, om, idx)
	if bp.atEOF() {
		return nil, nil
	}
	block := bp.parseOneBlock()
	return block, bp.diags
}

// sanitizeUTF8 returns a copy of input with every invalid UTF-8 byte
// sequence replaced by U+FFFD, plus a diagnostic for each replacement.
func sanitizeUTF8(input []byte) ([]byte, []Diagnostic) {
	if utf8.Valid(input) {
		return input, nil
	}

	idx := newLineIndex(input)
	var out []byte
	var diags []Diagnostic
	for i := 0; i < len(input); {
		r, size := utf8.DecodeRune(input[i:])
		if r == utf8.RuneError && size <= 1 {
			out = append(out, []byte(string(utf8.RuneError))...)
			diags = append(diags, Diagnostic{
				Kind:    InvalidUTF8,
				Region:  idx.region(i, i+1),
				Message: "invalid UTF-8 byte replaced with U+FFFD",
			})
			i++
			continue
		}
		out = append(out, input[i:i+size]...)
		i += size
	}
	return out, diags
}
