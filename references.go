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

// TagSet is a set of tag names collected from a [Page] by [ExtractTags].
type TagSet map[string][]Region

// Add records an occurrence of tag at region.
func (s TagSet) Add(tag string, region Region) {
	s[tag] = append(s[tag], region)
}

// Has reports whether tag was seen at least once.
func (s TagSet) Has(tag string) bool {
	_, ok := s[tag]
	return ok
}

// ExtractTags walks page and collects every tag named by a [Tags]
// inline element, along with the region of each occurrence. It does not
// resolve tags against any external index — that is the filesystem/wiki
// layer's job.
func ExtractTags(page *Page) TagSet {
	set := make(TagSet)
	Walk(page, &WalkOptions{
		Pre: func(c *WalkCursor) bool {
			if tags, ok := c.Node().Inline.(*Tags); ok {
				for _, name := range tags.Values {
					set.Add(name, tags.Region())
				}
			}
			return true
		},
	})
	return set
}
