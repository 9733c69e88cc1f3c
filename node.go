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

// Node wraps exactly one of a [BlockElement] or an [InlineElement] for
// traversal by [Walk]. Exactly one of Block or Inline is non-nil.
type Node struct {
	Block  BlockElement
	Inline InlineElement
}

// BlockNode wraps b as a Node.
func BlockNode(b BlockElement) Node { return Node{Block: b} }

// InlineNode wraps i as a Node.
func InlineNode(i InlineElement) Node { return Node{Inline: i} }

// Region returns the wrapped element's region.
func (n Node) Region() Region {
	if n.Block != nil {
		return n.Block.Region()
	}
	return n.Inline.Region()
}

// IsZero reports whether n wraps nothing.
func (n Node) IsZero() bool {
	return n.Block == nil && n.Inline == nil
}

// children returns the immediate child nodes of n. List items, table
// rows/cells, and definition-list entries are not themselves Nodes (they
// are plain structs, not sum-type variants); their inline content and
// any nested [List]s are surfaced directly as children so that [Walk]
// still reaches every InlineElement and every nested List.
func children(n Node) []Node {
	switch b := n.Block.(type) {
	case *Header:
		return inlineNodes(b.Content)
	case *Paragraph:
		return linesToNodes(b.Lines)
	case *Blockquote:
		return linesToNodes(b.Lines)
	case *DefinitionList:
		var out []Node
		for _, e := range b.Entries {
			out = append(out, inlineNodes(e.Term)...)
			out = append(out, linesToNodes(e.Defs)...)
		}
		return out
	case *List:
		var out []Node
		for _, item := range b.Items {
			out = append(out, inlineNodes(item.Content)...)
			for i := range item.Sublists {
				out = append(out, BlockNode(&item.Sublists[i]))
			}
		}
		return out
	case *Table:
		var out []Node
		for _, row := range b.Rows {
			for _, cell := range row.Cells {
				out = append(out, inlineNodes(cell.Content)...)
			}
		}
		return out
	case *NonBlankLine:
		return inlineNodes(b.Content)
	}

	switch i := n.Inline.(type) {
	case *DecoratedText:
		return inlineNodes(i.Content)
	case *Link:
		if i.HasDesc && i.Description.Kind == LinkDescriptionText {
			return inlineNodes(i.Description.Text)
		}
	}
	return nil
}

func inlineNodes(elems []InlineElement) []Node {
	out := make([]Node, len(elems))
	for i, e := range elems {
		out[i] = InlineNode(e)
	}
	return out
}

func linesToNodes(lines [][]InlineElement) []Node {
	var out []Node
	for _, line := range lines {
		out = append(out, inlineNodes(line)...)
	}
	return out
}
