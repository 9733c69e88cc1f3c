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

import "fmt"

// DiagnosticKind classifies a recoverable parse failure. The core never
// produces a fatal error: every DiagnosticKind corresponds to a local
// malformation with a documented fallback (see [Diagnostic]).
type DiagnosticKind uint8

const (
	_ DiagnosticKind = iota

	// UnterminatedMultilineComment is emitted when a "%%+" comment has no
	// matching "+%%" before EOF. The comment is treated as extending to
	// EOF.
	UnterminatedMultilineComment

	// UnterminatedPreformatted is emitted when a "{{{" block has no
	// matching "}}}" before EOF. The opening line is emitted as a
	// Paragraph and the remaining lines are re-parsed.
	UnterminatedPreformatted

	// UnterminatedMathBlock is the MathBlock analog of
	// UnterminatedPreformatted.
	UnterminatedMathBlock

	// MalformedHeader is emitted when a header's opening and closing "="
	// runs have different lengths. The line falls back to a Paragraph.
	MalformedHeader

	// MalformedLink is emitted when a "[[" has no matching "]]" on the
	// same line. The opening "[[" becomes literal text.
	MalformedLink

	// InvalidDate is emitted when a "%date" placeholder's value is not
	// shaped like YYYY-MM-DD. The Placeholder is still emitted, with no
	// date value.
	InvalidDate

	// RecursionLimitExceeded is emitted when inline nesting exceeds the
	// recursion cap. The remaining span is emitted as literal text.
	RecursionLimitExceeded

	// InvalidUTF8 is emitted when the input contains bytes that are not
	// valid UTF-8. Each invalid byte is replaced with U+FFFD.
	InvalidUTF8
)

func (k DiagnosticKind) String() string {
	switch k {
	case UnterminatedMultilineComment:
		return "UnterminatedMultilineComment"
	case UnterminatedPreformatted:
		return "UnterminatedPreformatted"
	case UnterminatedMathBlock:
		return "UnterminatedMathBlock"
	case MalformedHeader:
		return "MalformedHeader"
	case MalformedLink:
		return "MalformedLink"
	case InvalidDate:
		return "InvalidDate"
	case RecursionLimitExceeded:
		return "RecursionLimitExceeded"
	case InvalidUTF8:
		return "InvalidUTF8"
	default:
		return fmt.Sprintf("DiagnosticKind(%d)", uint8(k))
	}
}

// Diagnostic describes a single recoverable parse failure and where it
// occurred in the original source.
type Diagnostic struct {
	Kind    DiagnosticKind
	Region  Region
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d:%d: %s", d.Kind, d.Region.Line, d.Region.Column, d.Message)
}

// recursionLimit bounds inline nesting depth (decorations and link
// descriptions recursing into the inline parser). Grounded in
// zettelmark's maxNestingLevel guard against pathological input.
const recursionLimit = 64
