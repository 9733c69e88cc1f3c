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
// language.
package vimwiki

// Page is the root of the AST: an ordered sequence of top-level block
// elements.
type Page struct {
	Blocks []BlockElement
}

// BlockElement is a syntactic unit occupying one or more entire lines.
// It is a closed sum type: the only implementations are the ones defined
// in this file. Exhaustive switches over the concrete type are expected
// at every consumer, not open-ended polymorphism.
type BlockElement interface {
	Region() Region
	blockElement()
}

type blockBase struct {
	region Region
}

func (b blockBase) Region() Region { return b.region }
func (blockBase) blockElement()    {}

// Header is a "= text =" style heading.
type Header struct {
	blockBase
	Level    int
	Centered bool
	Content  []InlineElement
}

// Paragraph is a run of zero-indentation lines.
type Paragraph struct {
	blockBase
	Lines [][]InlineElement
}

// BlockquoteForm distinguishes indented blockquotes from "> " chevron
// blockquotes.
type BlockquoteForm uint8

const (
	BlockquoteIndented BlockquoteForm = 1 + iota
	BlockquoteChevron
)

// Blockquote is an indented or chevron-prefixed quotation.
type Blockquote struct {
	blockBase
	Form  BlockquoteForm
	Lines [][]InlineElement
}

// DefinitionListEntry is one "term:: definition" entry, possibly with
// multiple continuation definitions.
type DefinitionListEntry struct {
	Term []InlineElement
	Defs [][]InlineElement
}

// DefinitionList is a sequence of term/definition entries.
type DefinitionList struct {
	blockBase
	Entries []DefinitionListEntry
}

// List is a sequence of list items sharing one indentation level.
type List struct {
	blockBase
	Items []ListItem
}

// TableRowKind distinguishes a divider row from a content row.
type TableRowKind uint8

const (
	TableRowContent TableRowKind = 1 + iota
	TableRowDivider
)

// TableCellKind distinguishes the two span markers from ordinary
// content.
type TableCellKind uint8

const (
	TableCellContent TableCellKind = 1 + iota
	TableCellSpanAbove
	TableCellSpanLeft
)

// TableCell is one cell of a content [TableRow].
type TableCell struct {
	Kind    TableCellKind
	Content []InlineElement
	Region  Region
}

// TableRow is one row of a [Table]: either a "|---|---|" divider or a
// sequence of cells.
type TableRow struct {
	Kind   TableRowKind
	Cells  []TableCell
	Region Region
}

// Table is a pipe-delimited table.
type Table struct {
	blockBase
	Rows     []TableRow
	Centered bool
}

// MathBlock is a "{{$ … }}$" display-math block.
type MathBlock struct {
	blockBase
	Env   string // empty if absent
	Lines []string
}

// PreformattedText is a "{{{ … }}}" preformatted/code block.
type PreformattedText struct {
	blockBase
	Lang     string // empty if absent
	Metadata map[string]string
	Lines    []string
}

// PlaceholderKind distinguishes the four recognized placeholders.
type PlaceholderKind uint8

const (
	PlaceholderTitle PlaceholderKind = 1 + iota
	PlaceholderNoHTML
	PlaceholderTemplate
	PlaceholderDate
)

// Placeholder is a "%title", "%nohtml", "%template", or "%date" line.
type Placeholder struct {
	blockBase
	Kind    PlaceholderKind
	Value   string // template name or title text; empty for NoHTML
	Date    string // "YYYY-MM-DD" if Kind == PlaceholderDate and the value parsed
	HasDate bool
}

// Divider is a "----" thematic break.
type Divider struct {
	blockBase
}

// NonBlankLine is a 1-to-3-space-indented line that matched none of the
// other block productions.
type NonBlankLine struct {
	blockBase
	Content []InlineElement
}

// BlankLine is an empty or whitespace-only line.
type BlankLine struct {
	blockBase
}

// ListKind identifies the marker family of a [ListItem].
type ListKind uint8

const (
	ListHyphen ListKind = 1 + iota
	ListAsterisk
	ListPound
	ListDigit
	ListLowerAlpha
	ListUpperAlpha
	ListLowerRoman
	ListUpperRoman
)

// ListSuffix identifies the punctuation following an ordered-list
// marker's counter.
type ListSuffix uint8

const (
	ListSuffixNone ListSuffix = iota
	ListSuffixPeriod
	ListSuffixParen
)

// TodoStatus is the bracketed completion attribute of a list item.
type TodoStatus uint8

const (
	TodoIncomplete TodoStatus = 1 + iota
	TodoOneThird
	TodoTwoThirds
	TodoAlmostDone
	TodoComplete
	TodoRejected
)

// ListItem is one entry of a [List].
type ListItem struct {
	Region   Region
	Indent   int
	Kind     ListKind
	Suffix   ListSuffix
	Marker   string // the counter text, e.g. "iii", "b", "3"; empty for symbolic kinds
	Todo     TodoStatus
	HasTodo  bool
	Content  []InlineElement
	Sublists []List
}

// InlineElement is a syntactic unit that fits inside a single inline
// context. Like [BlockElement], it is a closed sum type.
type InlineElement interface {
	Region() Region
	inlineElement()
}

type inlineBase struct {
	region Region
}

func (b inlineBase) Region() Region { return b.region }
func (inlineBase) inlineElement()   {}

// Text is a coalesced run of literal text.
type Text struct {
	inlineBase
	Value string
}

// KeywordElement is one of the six recognized uppercase keywords.
type KeywordElement struct {
	inlineBase
	Keyword Keyword
}

// DecorationStyle identifies one of the seven decorated-text styles.
type DecorationStyle uint8

const (
	DecorationBold DecorationStyle = 1 + iota
	DecorationItalic
	DecorationBoldItalic
	DecorationStrikeout
	DecorationSuperscript
	DecorationSubscript
	DecorationCode
)

// DecoratedText is styled inline content. Content for [DecorationCode]
// is always exactly one [Text] element; the other six styles recurse.
type DecoratedText struct {
	inlineBase
	Style   DecorationStyle
	Content []InlineElement
}

// MathInline is a "$ … $" inline math span. Value is the trimmed
// interior text; it is not parsed further.
type MathInline struct {
	inlineBase
	Value string
}

// Tags is a ":tag:tag:…:" run of one or more tags.
type Tags struct {
	inlineBase
	Values []string
}

// LinkVariant identifies one of the six link kinds plus transclusion.
type LinkVariant uint8

const (
	LinkWiki LinkVariant = 1 + iota
	LinkIndexedInterwiki
	LinkNamedInterwiki
	LinkDiary
	LinkExternalFile
	LinkRaw
	LinkTransclusion
)

// LinkDescriptionKind distinguishes a recursively-parsed text
// description from a bare URI description.
type LinkDescriptionKind uint8

const (
	LinkDescriptionText LinkDescriptionKind = 1 + iota
	LinkDescriptionURI
)

// LinkDescription is the optional "|description" part of a link.
type LinkDescription struct {
	Kind LinkDescriptionKind
	Text []InlineElement // populated iff Kind == LinkDescriptionText
	URI  string          // populated iff Kind == LinkDescriptionURI
}

// Link is an inline link or transclusion of one of its variants.
type Link struct {
	inlineBase
	Variant     LinkVariant
	Path        string // empty if absent
	Anchor      []string
	HasDesc     bool
	Description LinkDescription
	Properties  map[string]string // transclusion "key=value" properties; nil otherwise
}
