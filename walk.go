// Copyright 2024 Ross Light
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

// WalkCursor describes a [Node] encountered during [Walk].
type WalkCursor struct {
	node   Node
	parent Node
}

// Node returns the current node.
func (c *WalkCursor) Node() Node { return c.node }

// Parent returns the parent of the current node, or the zero Node if
// the current node is a top-level block of the [Page].
func (c *WalkCursor) Parent() Node { return c.parent }

// WalkOptions is the set of parameters to [Walk].
type WalkOptions struct {
	// Pre, if not nil, is called for each node before its children are
	// traversed (pre-order). If Pre returns false, the node's children
	// are not traversed, and Post is not called for that node.
	Pre func(c *WalkCursor) bool
	// Post, if not nil, is called for each node after its children are
	// traversed (post-order). If Post returns false, traversal stops
	// immediately.
	Post func(c *WalkCursor) bool
}

// Walk traverses every block and inline node of page, in document order,
// calling opts.Pre and opts.Post. See [WalkOptions].
func Walk(page *Page, opts *WalkOptions) {
	type frame struct {
		node   Node
		parent Node
		post   bool
	}

	var stack []frame
	for i := len(page.Blocks) - 1; i >= 0; i-- {
		stack = append(stack, frame{node: BlockNode(page.Blocks[i])})
	}

	cursor := new(WalkCursor)
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if curr.post {
			if opts.Post != nil {
				cursor.node, cursor.parent = curr.node, curr.parent
				if !opts.Post(cursor) {
					return
				}
			}
			continue
		}

		descend := true
		if opts.Pre != nil {
			cursor.node, cursor.parent = curr.node, curr.parent
			descend = opts.Pre(cursor)
		}
		if !descend {
			continue
		}

		curr.post = true
		stack = append(stack, curr)
		kids := children(curr.node)
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: kids[i], parent: curr.node})
		}
	}
}
